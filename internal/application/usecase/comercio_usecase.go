package usecase

import (
	"context"
	"time"

	"github.com/ronaldllamas12/carioca-Market/internal/application/dto"
	"github.com/ronaldllamas12/carioca-Market/internal/domain"
	"github.com/ronaldllamas12/carioca-Market/internal/domain/entity"
	"github.com/ronaldllamas12/carioca-Market/internal/domain/repository"
)

// ComercioUseCase casos de uso CRUD para comercios. La propiedad se verifica
// siempre aquí (adminEmail del documento vs email de la sesión); las versiones
// anteriores del sistema lo hacían de forma inconsistente endpoint por endpoint.
type ComercioUseCase struct {
	comercioRepo repository.ComercioRepository
	productoRepo repository.ProductoRepository
}

// NewComercioUseCase construye el caso de uso.
func NewComercioUseCase(comercioRepo repository.ComercioRepository, productoRepo repository.ProductoRepository) *ComercioUseCase {
	return &ComercioUseCase{comercioRepo: comercioRepo, productoRepo: productoRepo}
}

// List devuelve todos los comercios, sin filtro ni paginación. Con cero
// comercios devuelve lista vacía, no error.
func (uc *ComercioUseCase) List(ctx context.Context) ([]dto.ComercioResponse, error) {
	list, err := uc.comercioRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ComercioResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toComercioResponse(c))
	}
	return out, nil
}

// GetByID obtiene un comercio por ID. Devuelve (nil, nil) si no existe.
func (uc *ComercioUseCase) GetByID(ctx context.Context, id string) (*dto.ComercioResponse, error) {
	comercio, err := uc.comercioRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comercio == nil {
		return nil, nil
	}
	return toComercioResponse(comercio), nil
}

// Create registra un comercio a nombre del admin de la sesión. ProductosVenta
// llega como string separado por comas y se normaliza en la frontera.
func (uc *ComercioUseCase) Create(ctx context.Context, adminEmail string, in dto.CreateComercioRequest) (string, error) {
	comercio := &entity.Comercio{
		Nombre:         in.Nombre,
		Categoria:      in.Categoria,
		Imagen:         in.Imagen,
		ProductosVenta: dto.SplitProductosVenta(in.ProductosVenta),
		Telefono:       in.Telefono,
		AdminEmail:     adminEmail,
		CreatedAt:      time.Now(),
	}
	return uc.comercioRepo.Create(ctx, comercio)
}

// Update edita un comercio. Solo el admin que lo registró puede editarlo:
// ErrNotFound si no existe, ErrForbidden si la sesión no es la propietaria.
func (uc *ComercioUseCase) Update(ctx context.Context, sessionEmail, id string, in dto.UpdateComercioRequest) error {
	comercio, err := uc.comercioRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if comercio == nil {
		return domain.ErrNotFound
	}
	if comercio.AdminEmail != sessionEmail {
		return domain.ErrForbidden
	}
	comercio.Nombre = in.Nombre
	comercio.Categoria = in.Categoria
	comercio.Imagen = in.Imagen
	comercio.ProductosVenta = dto.SplitProductosVenta(in.ProductosVenta)
	comercio.Telefono = in.Telefono
	comercio.UpdatedAt = time.Now()
	return uc.comercioRepo.Update(ctx, comercio)
}

// Delete elimina un comercio y, en cascada, sus productos. Los productos no
// sobreviven huérfanos a su comercio.
func (uc *ComercioUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.comercioRepo.Delete(ctx, id); err != nil {
		return err
	}
	_, err := uc.productoRepo.DeleteByComercio(ctx, id)
	return err
}

func toComercioResponse(c *entity.Comercio) *dto.ComercioResponse {
	if c == nil {
		return nil
	}
	productos := c.ProductosVenta
	if productos == nil {
		productos = []string{}
	}
	return &dto.ComercioResponse{
		ID:             c.ID.Hex(),
		Nombre:         c.Nombre,
		Categoria:      c.Categoria,
		Imagen:         c.Imagen,
		ProductosVenta: productos,
		Telefono:       c.Telefono,
		AdminEmail:     c.AdminEmail,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}
