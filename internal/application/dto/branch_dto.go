package dto

// BranchRequest entrada para crear o actualizar una sucursal.
type BranchRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=150"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
	OrderPrefix string `json:"order_prefix,omitempty"`
}

// BranchResponse salida de una sucursal.
type BranchResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Address     string `json:"address,omitempty"`
	Phone       string `json:"phone,omitempty"`
	OrderPrefix string `json:"order_prefix,omitempty"`
	Deleted     bool   `json:"deleted,omitempty"`
}
