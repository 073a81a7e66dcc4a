package dto

// CategoryRequest entrada para crear o actualizar una categoría.
type CategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Deleted bool   `json:"deleted,omitempty"`
}
