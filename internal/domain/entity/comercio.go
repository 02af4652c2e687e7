package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comercio representa un comercio local registrado en el directorio.
// AdminEmail es el email del admin que lo creó y funciona como único
// criterio de propiedad: solo ese admin puede editarlo.
type Comercio struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Nombre         string             `bson:"nombre"`
	Categoria      string             `bson:"categoria"`
	Imagen         string             `bson:"imagen"` // URL pública
	ProductosVenta []string           `bson:"productosVenta"`
	Telefono       string             `bson:"telefono"`
	AdminEmail     string             `bson:"adminEmail"`
	CreatedAt      time.Time          `bson:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt,omitempty"`
}
