package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ronaldllamas12/carioca-Market/internal/application/ports"
	"github.com/ronaldllamas12/carioca-Market/pkg/config"
)

var _ ports.ImageStore = (*LocalStore)(nil)

// LocalStore guarda imágenes en disco y devuelve la ruta pública con la que
// se sirven. Variante para entornos sin Cloudinary.
type LocalStore struct {
	dir       string
	publicURL string
}

// NewLocalStore crea el directorio de subida si no existe.
func NewLocalStore(cfg config.UploadConfig) (*LocalStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("crear directorio de subida: %w", err)
	}
	return &LocalStore{dir: cfg.Dir, publicURL: strings.TrimRight(cfg.PublicURL, "/")}, nil
}

// Upload escribe el archivo con un nombre UUID (conservando la extensión) para
// que dos subidas con el mismo nombre no se pisen.
func (s *LocalStore) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	name := uuid.New().String() + strings.ToLower(filepath.Ext(filename))
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("crear archivo: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("escribir archivo: %w", err)
	}
	return s.publicURL + "/" + name, nil
}
