package repository

import (
	"context"

	"github.com/ronaldllamas12/carioca-Market/internal/domain/entity"
)

// ComercioRepository define el puerto de persistencia para Comercio (DIP).
// Los Get devuelven (nil, nil) cuando el comercio no existe o el id es inválido.
type ComercioRepository interface {
	Create(ctx context.Context, comercio *entity.Comercio) (string, error)
	GetByID(ctx context.Context, id string) (*entity.Comercio, error)
	// GetByIDAndAdmin busca por _id Y adminEmail: la consulta de propiedad.
	GetByIDAndAdmin(ctx context.Context, id, adminEmail string) (*entity.Comercio, error)
	List(ctx context.Context) ([]*entity.Comercio, error)
	Update(ctx context.Context, comercio *entity.Comercio) error
	Delete(ctx context.Context, id string) error
	// BackfillProductosVenta normaliza documentos viejos donde productosVenta
	// falta o no es un array; devuelve cuántos se corrigieron. Idempotente.
	BackfillProductosVenta(ctx context.Context) (int64, error)
}
