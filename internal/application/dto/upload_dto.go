package dto

// UploadResponse salida de POST /upload: la URL permanente de la imagen.
type UploadResponse struct {
	URL     string `json:"url"`
	Success bool   `json:"success"`
}
