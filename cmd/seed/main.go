// seed crea la cuenta DEVELOPER inicial del sistema, que no puede crearse
// por la API (ningún rol tiene permiso para asignar DEVELOPER).
//
// Uso: go run ./cmd/seed <username> <password>
// La conexión a la DB se toma de las mismas variables de entorno que la API.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/muebleria/muebleria-api/internal/domain/entity"
	"github.com/muebleria/muebleria-api/internal/infrastructure/postgres"
	"github.com/muebleria/muebleria-api/pkg/config"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "uso: seed <username> <password>")
		os.Exit(1)
	}
	username, password := os.Args[1], os.Args[2]
	if len(password) < 8 {
		fmt.Fprintln(os.Stderr, "la contraseña debe tener al menos 8 caracteres")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	pool, err := postgres.NewPool(context.Background(), cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	repo := postgres.NewUserRepository(pool)
	exists, err := repo.ExistsByUsername(username)
	if err != nil {
		fmt.Fprintf(os.Stderr, "verificar username: %v\n", err)
		os.Exit(1)
	}
	if exists {
		fmt.Fprintf(os.Stderr, "el usuario %q ya existe\n", username)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hash de contraseña: %v\n", err)
		os.Exit(1)
	}

	now := time.Now().UTC()
	user := &entity.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         entity.RoleDeveloper,
		Active:       true,
		// sin reglas de horario ni bypass la cuenta no podría operar
		BypassAccessRules: true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	user.Profile = &entity.UserProfile{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		FirstName: "Developer",
		LastName:  "Account",
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := repo.Create(user); err != nil {
		fmt.Fprintf(os.Stderr, "crear usuario: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("cuenta DEVELOPER creada: %s (%s)\n", user.Username, user.ID)
}
