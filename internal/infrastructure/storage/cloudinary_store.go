package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/ronaldllamas12/carioca-Market/internal/application/ports"
	"github.com/ronaldllamas12/carioca-Market/pkg/config"
)

var _ ports.ImageStore = (*CloudinaryStore)(nil)

// CloudinaryStore sube imágenes a Cloudinary y devuelve la secure_url.
type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStore construye el adaptador con las credenciales de la config.
func NewCloudinaryStore(cfg config.CloudinaryConfig) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cliente cloudinary: %w", err)
	}
	return &CloudinaryStore{cld: cld, folder: cfg.Folder}, nil
}

// Upload reenvía los bytes al host y devuelve la URL permanente. Un solo
// intento; el error del host se propaga tal cual al caso de uso.
func (s *CloudinaryStore) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	res, err := s.cld.Upload.Upload(ctx, r, uploader.UploadParams{
		Folder:       s.folder,
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("subir a cloudinary: %w", err)
	}
	if res.SecureURL == "" {
		return "", fmt.Errorf("cloudinary no devolvió secure_url")
	}
	return res.SecureURL, nil
}
