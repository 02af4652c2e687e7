package usecase

import (
	"context"
	"time"

	"github.com/ronaldllamas12/carioca-Market/internal/application/dto"
	"github.com/ronaldllamas12/carioca-Market/internal/domain"
	"github.com/ronaldllamas12/carioca-Market/internal/domain/entity"
	"github.com/ronaldllamas12/carioca-Market/internal/domain/repository"
)

// ProductoUseCase casos de uso para el catálogo de productos de un comercio.
// Toda mutación exige que el comercio exista Y pertenezca al email de la
// sesión; un comercio ajeno se reporta como ErrNotFound, igual que uno
// inexistente, para no revelar su existencia.
type ProductoUseCase struct {
	comercioRepo repository.ComercioRepository
	productoRepo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(comercioRepo repository.ComercioRepository, productoRepo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{comercioRepo: comercioRepo, productoRepo: productoRepo}
}

// ListByComercio devuelve el comercio y sus productos (lista vacía permitida).
// ErrNotFound si el comercio no existe.
func (uc *ProductoUseCase) ListByComercio(ctx context.Context, comercioID string) (*dto.ComercioConProductosResponse, error) {
	comercio, err := uc.comercioRepo.GetByID(ctx, comercioID)
	if err != nil {
		return nil, err
	}
	if comercio == nil {
		return nil, domain.ErrNotFound
	}
	productos, err := uc.productoRepo.ListByComercio(ctx, comercioID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		items = append(items, *toProductoResponse(p))
	}
	return &dto.ComercioConProductosResponse{
		Comercio:  *toComercioResponse(comercio),
		Productos: items,
	}, nil
}

// Add agrega un producto al comercio de la sesión. Disponible arranca en true.
func (uc *ProductoUseCase) Add(ctx context.Context, sessionEmail, comercioID string, in dto.CreateProductoRequest) (string, error) {
	if err := uc.checkOwnership(ctx, sessionEmail, comercioID); err != nil {
		return "", err
	}
	now := time.Now()
	producto := &entity.Producto{
		ComercioID:  comercioID,
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Precio:      in.Precio,
		Imagen:      in.Imagen,
		Categoria:   in.Categoria,
		Disponible:  true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return uc.productoRepo.Create(ctx, producto)
}

// Update edita un producto del comercio de la sesión. El filtro de persistencia
// empareja {_id, comercioId}: un id válido bajo otro comercio es ErrNotFound.
// La edición es parcial: solo los campos presentes en la petición se escriben.
func (uc *ProductoUseCase) Update(ctx context.Context, sessionEmail, comercioID string, in dto.UpdateProductoRequest) error {
	if err := uc.checkOwnership(ctx, sessionEmail, comercioID); err != nil {
		return err
	}
	changes := entity.ProductoUpdate{
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		Precio:      in.Precio,
		Imagen:      in.Imagen,
		Categoria:   in.Categoria,
		Disponible:  in.Disponible,
		UpdatedAt:   time.Now(),
	}
	return uc.productoRepo.UpdateByID(ctx, in.ID, comercioID, changes)
}

// Delete elimina un producto del comercio de la sesión. ErrNotFound si el par
// {_id, comercioId} no existe; nunca borra el producto homónimo de otro comercio.
func (uc *ProductoUseCase) Delete(ctx context.Context, sessionEmail, comercioID, productoID string) error {
	if err := uc.checkOwnership(ctx, sessionEmail, comercioID); err != nil {
		return err
	}
	return uc.productoRepo.Delete(ctx, productoID, comercioID)
}

// checkOwnership verifica que el comercio exista y pertenezca a la sesión.
func (uc *ProductoUseCase) checkOwnership(ctx context.Context, sessionEmail, comercioID string) error {
	comercio, err := uc.comercioRepo.GetByIDAndAdmin(ctx, comercioID, sessionEmail)
	if err != nil {
		return err
	}
	if comercio == nil {
		return domain.ErrNotFound
	}
	return nil
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductoResponse{
		ID:          p.ID.Hex(),
		ComercioID:  p.ComercioID,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		Precio:      p.Precio,
		Imagen:      p.Imagen,
		Categoria:   p.Categoria,
		Disponible:  p.Disponible,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
