package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles válidos para User.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User representa un usuario registrado. Solo los admin inician sesión;
// los usuarios comunes se registran pero no tienen flujo de login.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Nombre       string             `bson:"nombre"`
	Email        string             `bson:"email"`    // único en la colección
	PasswordHash string             `bson:"password"` // bcrypt, nunca plano después de persistir
	Telefono     string             `bson:"telefono"`
	Role         string             `bson:"role"` // user | admin
	CreatedAt    time.Time          `bson:"createdAt"`
}
