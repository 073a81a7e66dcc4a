package auth

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/muebleria/muebleria-api/internal/application/dto"
	"github.com/muebleria/muebleria-api/internal/domain"
	"github.com/muebleria/muebleria-api/internal/domain/access"
	"github.com/muebleria/muebleria-api/internal/domain/entity"
	"github.com/muebleria/muebleria-api/internal/domain/repository"
	"github.com/muebleria/muebleria-api/pkg/jwt"
	"github.com/muebleria/muebleria-api/pkg/logger"
)

// UseCase caso de uso de autenticación. El reloj `now` es inyectable para
// poder fijar el instante en tests de horario.
type UseCase struct {
	users      repository.UserRepository
	log        *logger.Logger
	jwtSecret  string
	jwtIssuer  string
	expMinutes int
	now        func() time.Time
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(users repository.UserRepository, log *logger.Logger, jwtSecret, jwtIssuer string, expMinutes int) *UseCase {
	return &UseCase{
		users:      users,
		log:        log,
		jwtSecret:  jwtSecret,
		jwtIssuer:  jwtIssuer,
		expMinutes: expMinutes,
		now:        time.Now,
	}
}

// WithClock reemplaza el reloj del caso de uso (para tests).
func (uc *UseCase) WithClock(now func() time.Time) *UseCase {
	uc.now = now
	return uc
}

// Login autentica al usuario y emite un JWT.
//
// El horario se evalúa DESPUÉS de verificar la contraseña: un atacante no
// puede distinguir "contraseña mala" de "cuenta fuera de horario" sin conocer
// la contraseña. Los errores de horario (domain.ErrNoScheduleAssigned,
// domain.ErrOutsideSchedule) fluyen al handler, que los presenta como cuenta
// bloqueada con su mensaje específico.
func (uc *UseCase) Login(req dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return nil, domain.ErrUnauthorized
	}

	user, err := uc.users.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Deleted {
		// bcrypt con hash dummy para igualar el tiempo de respuesta
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5B0W1Zz1Zz1Zz1Zz1Zz1Zz1Zz1Zz."), []byte(req.Password))
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}
	if !user.Active {
		return nil, domain.ErrForbidden
	}

	if err := access.Check(user, uc.now()); err != nil {
		uc.log.Warn().
			Str("user_id", user.ID).
			Str("username", user.Username).
			Err(err).
			Msg("login rechazado por horario")
		return nil, err
	}

	token, err := jwt.Generate(uc.jwtSecret, user.ID, user.Username, string(user.Role), uc.jwtIssuer, uc.expMinutes)
	if err != nil {
		return nil, err
	}

	resp := &dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		UserID:    user.ID,
		Username:  user.Username,
		Role:      string(user.Role),
	}
	if user.Profile != nil {
		resp.FirstName = user.Profile.FirstName
		resp.LastName = user.Profile.LastName
	}
	return resp, nil
}

// Authenticate valida un token y devuelve el usuario actualizado desde la DB,
// verificando frescura de credenciales y ventana de horario. Es la operación
// que el middleware ejecuta en cada petición protegida.
func (uc *UseCase) Authenticate(tokenString string) (*entity.User, error) {
	claims, err := jwt.Parse(uc.jwtSecret, tokenString)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	user, err := uc.users.GetByID(claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Deleted || !user.Active {
		return nil, domain.ErrUnauthorized
	}

	if !access.TokenFresh(claims.IssuedAtTime(), user.PasswordChangedAt) {
		return nil, domain.ErrStaleToken
	}

	if err := access.Check(user, uc.now()); err != nil {
		return nil, err
	}
	return user, nil
}
