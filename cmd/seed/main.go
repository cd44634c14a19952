// Seed creates the initial admin user and the default tipos de intervencion.
// Safe to run repeatedly: existing rows are left untouched.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/authz"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/config"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/infra"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/model"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/password"
	"github.com/rodrigoluceroDev/Mantenimiento-Bodega/internal/repository"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	if err := infra.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}

	ctx := context.Background()
	usuarios := repository.NewUsuarioRepository(db)

	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@mantenimiento.local"
	}
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin123"
		log.Warn().Msg("ADMIN_PASSWORD not set, using default; change it immediately")
	}

	if _, err := usuarios.FindByEmail(ctx, adminEmail); err != nil {
		hash, err := password.Hash(adminPassword)
		if err != nil {
			log.Fatal().Err(err).Msg("hashing admin password")
		}
		admin := &model.Usuario{
			Email:        adminEmail,
			Nombre:       "Administrador",
			PasswordHash: hash,
			Rol:          authz.RolAdmin,
			Activo:       true,
		}
		if err := usuarios.Create(ctx, admin); err != nil {
			log.Fatal().Err(err).Msg("creating admin user")
		}
		log.Info().Str("email", adminEmail).Msg("admin user created")
	} else {
		log.Info().Str("email", adminEmail).Msg("admin user already exists")
	}

	descripcion := func(s string) *string { return &s }
	tipos := []model.TipoIntervencion{
		{Nombre: "Mantenimiento Preventivo", Descripcion: descripcion("Revision programada para prevenir fallas")},
		{Nombre: "Mantenimiento Correctivo", Descripcion: descripcion("Reparacion de una falla detectada")},
		{Nombre: "Inspeccion", Descripcion: descripcion("Inspeccion visual o instrumental del equipo")},
		{Nombre: "Limpieza", Descripcion: descripcion("Limpieza tecnica del equipo")},
		{Nombre: "Calibracion", Descripcion: descripcion("Ajuste y verificacion de parametros")},
	}
	for i := range tipos {
		err := db.WithContext(ctx).
			Where(model.TipoIntervencion{Nombre: tipos[i].Nombre}).
			FirstOrCreate(&tipos[i]).Error
		if err != nil {
			log.Fatal().Err(err).Str("nombre", tipos[i].Nombre).Msg("seeding tipo")
		}
	}
	log.Info().Int("tipos", len(tipos)).Msg("seed complete")
}
