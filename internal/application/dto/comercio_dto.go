package dto

import (
	"strings"
	"time"
)

// CreateComercioRequest entrada para registrar un comercio. ProductosVenta
// llega del cliente como string separado por comas y se normaliza en el
// servidor con SplitProductosVenta.
type CreateComercioRequest struct {
	Nombre         string `json:"nombre" validate:"required"`
	Categoria      string `json:"categoria"`
	Imagen         string `json:"imagen"`
	ProductosVenta string `json:"productosVenta"`
	Telefono       string `json:"telefono"`
}

// UpdateComercioRequest entrada para editar un comercio. ProductosVenta es
// obligatorio: una edición sin la lista se rechaza con 400 en lugar del
// comportamiento indefinido de versiones anteriores.
type UpdateComercioRequest struct {
	Nombre         string `json:"nombre" validate:"required"`
	Categoria      string `json:"categoria"`
	Imagen         string `json:"imagen"`
	ProductosVenta string `json:"productosVenta" validate:"required"`
	Telefono       string `json:"telefono"`
}

// ComercioResponse salida de un comercio.
type ComercioResponse struct {
	ID             string    `json:"_id"`
	Nombre         string    `json:"nombre"`
	Categoria      string    `json:"categoria"`
	Imagen         string    `json:"imagen"`
	ProductosVenta []string  `json:"productosVenta"`
	Telefono       string    `json:"telefono"`
	AdminEmail     string    `json:"adminEmail"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt,omitempty"`
}

// SplitProductosVenta normaliza la lista de productos en venta: separa por
// comas, recorta espacios y descarta elementos vacíos. Es la única frontera
// donde se interpreta el string del cliente.
func SplitProductosVenta(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
