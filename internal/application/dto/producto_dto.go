package dto

import "time"

// CreateProductoRequest entrada para agregar un producto a un comercio.
type CreateProductoRequest struct {
	Nombre      string  `json:"nombre" validate:"required"`
	Descripcion string  `json:"descripcion"`
	Precio      float64 `json:"precio" validate:"min=0"`
	Imagen      string  `json:"imagen"`
	Categoria   string  `json:"categoria"`
}

// UpdateProductoRequest entrada para editar un producto. El _id viaja en el
// cuerpo (no en la ruta); sin él la petición es 400. La edición es parcial:
// un campo ausente (puntero nil) conserva el valor guardado.
type UpdateProductoRequest struct {
	ID          string   `json:"_id" validate:"required"`
	Nombre      *string  `json:"nombre"`
	Descripcion *string  `json:"descripcion"`
	Precio      *float64 `json:"precio" validate:"omitempty,min=0"`
	Imagen      *string  `json:"imagen"`
	Categoria   *string  `json:"categoria"`
	Disponible  *bool    `json:"disponible"`
}

// DeleteProductoRequest entrada para eliminar un producto del comercio.
type DeleteProductoRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

// ProductoResponse salida de un producto.
type ProductoResponse struct {
	ID          string    `json:"_id"`
	ComercioID  string    `json:"comercioId"`
	Nombre      string    `json:"nombre"`
	Descripcion string    `json:"descripcion"`
	Precio      float64   `json:"precio"`
	Imagen      string    `json:"imagen"`
	Categoria   string    `json:"categoria"`
	Disponible  bool      `json:"disponible"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ComercioConProductosResponse salida de GET /productos/:id/productos.
type ComercioConProductosResponse struct {
	Comercio  ComercioResponse   `json:"comercio"`
	Productos []ProductoResponse `json:"productos"`
}
