package ports

import (
	"context"
	"io"
)

// ImageStore es el puerto hacia el host de imágenes: recibe los bytes de un
// archivo y devuelve la URL permanente. Lo implementan el adaptador de
// Cloudinary y el de disco local.
type ImageStore interface {
	Upload(ctx context.Context, filename string, r io.Reader) (string, error)
}
