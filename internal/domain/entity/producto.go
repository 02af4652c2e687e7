package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Producto representa un artículo en venta bajo un comercio.
// ComercioID es el _id del comercio como string (igualdad de campo, no una
// relación real en la base).
type Producto struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ComercioID  string             `bson:"comercioId"`
	Nombre      string             `bson:"nombre"`
	Descripcion string             `bson:"descripcion"`
	Precio      float64            `bson:"precio"`
	Imagen      string             `bson:"imagen"`
	Categoria   string             `bson:"categoria"`
	Disponible  bool               `bson:"disponible"`
	CreatedAt   time.Time          `bson:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt"`
}

// ProductoUpdate campos editables de un producto. Un puntero nil significa
// "no tocar el campo": una edición parcial conserva lo que no vino en la
// petición. UpdatedAt se escribe siempre.
type ProductoUpdate struct {
	Nombre      *string
	Descripcion *string
	Precio      *float64
	Imagen      *string
	Categoria   *string
	Disponible  *bool
	UpdatedAt   time.Time
}
