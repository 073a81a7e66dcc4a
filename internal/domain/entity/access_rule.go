package entity

import (
	"fmt"
	"strings"
	"time"
)

// ClockTime hora de pared sin fecha, en segundos desde medianoche.
// Se serializa como "HH:MM:SS" y acepta también "HH:MM" al parsear.
type ClockTime int

// ParseClockTime parsea "HH:MM" o "HH:MM:SS" en hora local de pared.
func ParseClockTime(s string) (ClockTime, error) {
	var h, m, sec int
	switch strings.Count(s, ":") {
	case 1:
		if _, err := fmt.Sscanf(s, "%d:%d", &h, &m); err != nil {
			return 0, fmt.Errorf("hora inválida %q: %w", s, err)
		}
	case 2:
		if _, err := fmt.Sscanf(s, "%d:%d:%d", &h, &m, &sec); err != nil {
			return 0, fmt.Errorf("hora inválida %q: %w", s, err)
		}
	default:
		return 0, fmt.Errorf("hora inválida %q: se espera HH:MM o HH:MM:SS", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("hora fuera de rango: %q", s)
	}
	return ClockTime(h*3600 + m*60 + sec), nil
}

// ClockTimeOf devuelve la hora de pared de un instante ya proyectado a su zona.
func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime(t.Hour()*3600 + t.Minute()*60 + t.Second())
}

// String formatea como "HH:MM:SS".
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(c)/3600, (int(c)%3600)/60, int(c)%60)
}

// Días de la semana tal como se persisten (mismo formato que el enum original).
var weekdays = map[string]time.Weekday{
	"MONDAY":    time.Monday,
	"TUESDAY":   time.Tuesday,
	"WEDNESDAY": time.Wednesday,
	"THURSDAY":  time.Thursday,
	"FRIDAY":    time.Friday,
	"SATURDAY":  time.Saturday,
	"SUNDAY":    time.Sunday,
}

// ParseDayOfWeek normaliza un día de la semana (MONDAY..SUNDAY, sin distinguir mayúsculas).
func ParseDayOfWeek(s string) (string, bool) {
	day := strings.ToUpper(strings.TrimSpace(s))
	if _, ok := weekdays[day]; !ok {
		return "", false
	}
	return day, true
}

// AccessRule ventana de acceso semanal de un usuario: día de la semana más un
// rango de hora de pared interpretado en la zona horaria de la propia regla.
// A lo sumo una regla por (usuario, día).
type AccessRule struct {
	ID        string
	UserID    string
	DayOfWeek string // MONDAY..SUNDAY
	StartTime ClockTime
	EndTime   ClockTime
	Timezone  string // identificador IANA, ej. America/Mexico_City
	Active    bool

	CreatedAt   time.Time
	CreatedByID *string
	UpdatedAt   time.Time
	UpdatedByID *string
}

// Weekday devuelve el día como time.Weekday (ok=false si DayOfWeek es inválido).
func (r AccessRule) Weekday() (time.Weekday, bool) {
	wd, ok := weekdays[r.DayOfWeek]
	return wd, ok
}
