package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ecopack/ecopack-api/internal/domain/entity"
)

// Genera el script SQL de datos iniciales: un usuario administrador y el
// catálogo base de bags. El hash bcrypt se calcula en tiempo de ejecución
// para no versionar contraseñas en claro ni hashes reutilizados.
//
// Uso:
//
//	go run ./cmd/seed -user admin -password <pass> -out internal/infrastructure/postgres/migrations/002_seed_admin.sql
func main() {
	var (
		username = flag.String("user", "admin", "username del administrador inicial")
		email    = flag.String("email", "admin@ecopack.local", "email del administrador inicial")
		password = flag.String("password", "", "contraseña del administrador (obligatoria)")
		out      = flag.String("out", "internal/infrastructure/postgres/migrations/002_seed_admin.sql", "archivo SQL de salida")
	)
	flag.Parse()

	if *password == "" {
		fmt.Fprintln(os.Stderr, "error: -password es obligatorio")
		flag.Usage()
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: generar hash bcrypt: %v\n", err)
		os.Exit(1)
	}

	userID := uuid.New().String()

	script := fmt.Sprintf(`-- Datos iniciales generados por cmd/seed el %s.
-- Usuario administrador + catálogo base de bags. Idempotente vía ON CONFLICT.

INSERT INTO users (id, username, email, password_hash, is_superuser)
VALUES ('%s', '%s', '%s', '%s', TRUE)
ON CONFLICT (username) DO NOTHING;

INSERT INTO profiles (user_id, role)
SELECT id, 'admin' FROM users WHERE username = '%s'
ON CONFLICT (user_id) DO NOTHING;

INSERT INTO bags (id, variety, color, gsm, quantity_bales, location)
VALUES
`, time.Now().Format("2006-01-02"), userID, *username, *email, string(hash), *username)

	type seedBag struct {
		variety string
		color   string
		gsm     int
		qty     int
	}
	catalog := []seedBag{
		{entity.VarietySmall, entity.ColorWhite, 60, 120},
		{entity.VarietyMedium, entity.ColorWhite, 80, 80},
		{entity.VarietyLarge, entity.ColorGreen, 100, 45},
		{entity.Variety7x12, entity.ColorBlue, 40, 200},
		{entity.Variety9x15, entity.ColorRed, 60, 8},
	}
	for i, b := range catalog {
		sep := ","
		if i == len(catalog)-1 {
			sep = ""
		}
		script += fmt.Sprintf("\t('%s', '%s', '%s', %d, %d, '%s')%s\n",
			uuid.New().String(), b.variety, b.color, b.gsm, b.qty, entity.DefaultLocation, sep)
	}
	script += "ON CONFLICT (id) DO NOTHING;\n"

	if err := os.WriteFile(*out, []byte(script), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "error: escribir %s: %v\n", *out, err)
		os.Exit(1)
	}

	fmt.Printf("seed generado en %s (admin: %s)\n", *out, *username)
}
