package repository

import (
	"context"

	"github.com/ronaldllamas12/carioca-Market/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los Get devuelven (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// GetAdminByEmail busca por email Y role=admin; es la consulta del guard
	// de autorización (se re-ejecuta en cada request privilegiado).
	GetAdminByEmail(ctx context.Context, email string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
}
