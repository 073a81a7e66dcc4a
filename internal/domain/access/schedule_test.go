package access_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muebleria/muebleria-api/internal/domain"
	"github.com/muebleria/muebleria-api/internal/domain/access"
	"github.com/muebleria/muebleria-api/internal/domain/entity"
)

func mustClock(t *testing.T, s string) entity.ClockTime {
	t.Helper()
	c, err := entity.ParseClockTime(s)
	require.NoError(t, err)
	return c
}

// ruleMX regla lunes 08:00–17:00 en America/Mexico_City.
func ruleMX(t *testing.T, active bool) entity.AccessRule {
	t.Helper()
	return entity.AccessRule{
		ID:        "r1",
		UserID:    "u1",
		DayOfWeek: "MONDAY",
		StartTime: mustClock(t, "08:00"),
		EndTime:   mustClock(t, "17:00"),
		Timezone:  "America/Mexico_City",
		Active:    active,
	}
}

// instante local en una zona dada. 2026-03-02 es lunes.
func inZone(t *testing.T, tz string, day, hour, min, sec int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation(tz)
	require.NoError(t, err)
	return time.Date(2026, time.March, day, hour, min, sec, 0, loc)
}

func TestCheck_BypassPermiteSiempre(t *testing.T) {
	// Con bypass el resultado no depende ni de las reglas ni del instante.
	instants := []time.Time{
		inZone(t, "UTC", 2, 3, 0, 0),
		inZone(t, "America/Mexico_City", 4, 23, 59, 59),
	}
	users := []*entity.User{
		{ID: "u1", BypassAccessRules: true},
		{ID: "u2", BypassAccessRules: true, AccessRules: []entity.AccessRule{ruleMX(t, true)}},
	}
	for _, u := range users {
		for _, now := range instants {
			assert.NoError(t, access.Check(u, now))
		}
	}
}

func TestCheck_SinReglasYSinBypass_DeniegaSiempre(t *testing.T) {
	// Fail-closed: una cuenta recién creada sin horario no puede operar.
	u := &entity.User{ID: "u1"}
	for _, now := range []time.Time{
		inZone(t, "UTC", 2, 12, 0, 0),
		inZone(t, "America/Mexico_City", 7, 0, 0, 0),
	} {
		err := access.Check(u, now)
		assert.ErrorIs(t, err, domain.ErrNoScheduleAssigned)
	}
}

func TestCheck_VentanaLunes_ExtremosInclusivos(t *testing.T) {
	u := &entity.User{ID: "u1", AccessRules: []entity.AccessRule{ruleMX(t, true)}}

	cases := []struct {
		name    string
		now     time.Time
		allowed bool
	}{
		{"lunes 08:00:00 local (inicio inclusivo)", inZone(t, "America/Mexico_City", 2, 8, 0, 0), true},
		{"lunes 17:00:00 local (fin inclusivo)", inZone(t, "America/Mexico_City", 2, 17, 0, 0), true},
		{"lunes 12:30 local", inZone(t, "America/Mexico_City", 2, 12, 30, 0), true},
		{"lunes 07:59:59 local", inZone(t, "America/Mexico_City", 2, 7, 59, 59), false},
		{"lunes 17:00:01 local", inZone(t, "America/Mexico_City", 2, 17, 0, 1), false},
		{"martes 10:00 local", inZone(t, "America/Mexico_City", 3, 10, 0, 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, access.IsAllowed(u, tc.now))
		})
	}
}

func TestCheck_DiaSeEvaluaEnLaZonaDeLaRegla(t *testing.T) {
	// Martes 01:00 UTC todavía es lunes 19:00 en Ciudad de México (UTC-6):
	// el día debe extraerse en la zona de la regla, no en UTC.
	rule := ruleMX(t, true)
	rule.EndTime = mustClock(t, "20:00")
	u := &entity.User{ID: "u1", AccessRules: []entity.AccessRule{rule}}

	tuesdayUTC := time.Date(2026, time.March, 3, 1, 0, 0, 0, time.UTC)
	assert.True(t, access.IsAllowed(u, tuesdayUTC),
		"lunes 19:00 local debe admitir aunque en UTC ya sea martes")
}

func TestCheck_ReglaInactivaNoAdmite(t *testing.T) {
	u := &entity.User{ID: "u1", AccessRules: []entity.AccessRule{ruleMX(t, false)}}
	err := access.Check(u, inZone(t, "America/Mexico_City", 2, 12, 0, 0))
	assert.ErrorIs(t, err, domain.ErrOutsideSchedule,
		"una regla inactiva no debe contribuir admisión aunque la ventana coincida")
}

func TestCheck_ZonaInvalidaNoAbortaLaEvaluacion(t *testing.T) {
	mala := ruleMX(t, true)
	mala.ID = "r-mala"
	mala.Timezone = "Marte/Cidonia"
	buena := ruleMX(t, true)

	u := &entity.User{ID: "u1", AccessRules: []entity.AccessRule{mala, buena}}
	assert.True(t, access.IsAllowed(u, inZone(t, "America/Mexico_City", 2, 12, 0, 0)),
		"la regla con zona inválida no admite, pero las demás se evalúan")

	soloMala := &entity.User{ID: "u2", AccessRules: []entity.AccessRule{mala}}
	assert.ErrorIs(t, access.Check(soloMala, inZone(t, "UTC", 2, 12, 0, 0)), domain.ErrOutsideSchedule)
}

func TestCheck_VariasReglas_BastaUnaQueAdmita(t *testing.T) {
	viernes := entity.AccessRule{
		ID:        "r2",
		UserID:    "u1",
		DayOfWeek: "FRIDAY",
		StartTime: mustClock(t, "09:00"),
		EndTime:   mustClock(t, "18:00"),
		Timezone:  "UTC",
		Active:    true,
	}
	u := &entity.User{ID: "u1", AccessRules: []entity.AccessRule{ruleMX(t, true), viernes}}

	fridayNoon := time.Date(2026, time.March, 6, 12, 0, 0, 0, time.UTC)
	assert.NoError(t, access.Check(u, fridayNoon))
}

func TestTokenFresh(t *testing.T) {
	changed := time.Date(2026, time.March, 6, 10, 0, 0, 0, time.UTC)

	assert.True(t, access.TokenFresh(changed.Add(time.Minute), &changed),
		"token posterior al cambio es fresco")
	assert.True(t, access.TokenFresh(changed, &changed),
		"token emitido en el mismo segundo del cambio es fresco")
	assert.False(t, access.TokenFresh(changed.Add(-time.Second), &changed),
		"token anterior al cambio queda invalidado")
	assert.True(t, access.TokenFresh(changed.Add(-time.Hour), nil),
		"sin cambio de contraseña registrado no hay invalidación")
}

func TestParseClockTime(t *testing.T) {
	c, err := entity.ParseClockTime("08:30")
	require.NoError(t, err)
	assert.Equal(t, "08:30:00", c.String())

	c, err = entity.ParseClockTime("17:00:59")
	require.NoError(t, err)
	assert.Equal(t, "17:00:59", c.String())

	for _, bad := range []string{"", "25:00", "10:61", "ocho", "10", "10:00:00:00"} {
		_, err := entity.ParseClockTime(bad)
		assert.Error(t, err, "debe rechazar %q", bad)
	}
}
