package usecase

import (
	"context"
	"io"

	"github.com/ronaldllamas12/carioca-Market/internal/application/dto"
	"github.com/ronaldllamas12/carioca-Market/internal/application/ports"
	"github.com/ronaldllamas12/carioca-Market/internal/domain"
)

// UploadUseCase reenvía un archivo al host de imágenes configurado y devuelve
// la URL resultante para guardarla en un comercio o producto. Relay de un solo
// intento: sin reintentos ni backpressure.
type UploadUseCase struct {
	store ports.ImageStore
}

// NewUploadUseCase construye el caso de uso.
func NewUploadUseCase(store ports.ImageStore) *UploadUseCase {
	return &UploadUseCase{store: store}
}

// Upload sube el archivo y devuelve su URL. ErrInvalidInput si no hay archivo.
func (uc *UploadUseCase) Upload(ctx context.Context, filename string, r io.Reader) (*dto.UploadResponse, error) {
	if r == nil || filename == "" {
		return nil, domain.ErrInvalidInput
	}
	url, err := uc.store.Upload(ctx, filename, r)
	if err != nil {
		return nil, err
	}
	return &dto.UploadResponse{URL: url, Success: true}, nil
}
