package dto

// DriverRequest entrada para crear o actualizar un chofer de reparto.
type DriverRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=150"`
	Phone   string `json:"phone,omitempty"`
	License string `json:"license,omitempty"`
	Active  bool   `json:"active"`
}

// DriverResponse salida de un chofer de reparto.
type DriverResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone,omitempty"`
	License string `json:"license,omitempty"`
	Active  bool   `json:"active"`
	Deleted bool   `json:"deleted,omitempty"`
}
