package dto

// AccessRuleRequest entrada para crear o actualizar una regla de horario.
// Las horas aceptan "HH:MM" o "HH:MM:SS"; la zona es un identificador IANA.
type AccessRuleRequest struct {
	DayOfWeek      string `json:"day_of_week" validate:"required"`
	StartTime      string `json:"start_time" validate:"required"`
	EndTime        string `json:"end_time" validate:"required"`
	AccessTimezone string `json:"access_timezone" validate:"required"`
	Active         bool   `json:"active"`
}

// AccessRuleResponse salida de una regla de horario.
type AccessRuleResponse struct {
	ID             string `json:"id"`
	UserID         string `json:"user_id"`
	DayOfWeek      string `json:"day_of_week"`
	StartTime      string `json:"start_time"`
	EndTime        string `json:"end_time"`
	AccessTimezone string `json:"access_timezone"`
	Active         bool   `json:"active"`
}
