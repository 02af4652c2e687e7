package repository

import (
	"context"

	"github.com/ronaldllamas12/carioca-Market/internal/domain/entity"
)

// ProductoRepository define el puerto de persistencia para Producto (DIP).
// Update y Delete filtran por {_id, comercioId}: un producto de otro comercio
// con el mismo id nunca se toca.
type ProductoRepository interface {
	Create(ctx context.Context, producto *entity.Producto) (string, error)
	ListByComercio(ctx context.Context, comercioID string) ([]*entity.Producto, error)
	// UpdateByID aplica solo los campos no nil de changes sobre el producto
	// que empareja {_id, comercioId}.
	UpdateByID(ctx context.Context, id, comercioID string, changes entity.ProductoUpdate) error
	Delete(ctx context.Context, id, comercioID string) error
	// DeleteByComercio elimina todos los productos de un comercio (cascada al
	// borrar el comercio); devuelve cuántos se eliminaron.
	DeleteByComercio(ctx context.Context, comercioID string) (int64, error)
}
