// Command seed populates a development database with an admin, a teacher,
// a few students and a starter song catalog. It is idempotent: users and
// songs that already exist are left alone.
//
// For convenience it prints a development access token for each user so
// the API can be exercised immediately.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tabline/tabline-backend/internal/adapter/postgres"
	songrepo "github.com/tabline/tabline-backend/internal/adapter/postgres/song"
	userrepo "github.com/tabline/tabline-backend/internal/adapter/postgres/user"
	"github.com/tabline/tabline-backend/internal/app"
	"github.com/tabline/tabline-backend/internal/auth"
	"github.com/tabline/tabline-backend/internal/config"
	"github.com/tabline/tabline-backend/internal/domain"
)

type seedUser struct {
	Email    string
	Name     string
	Role     domain.UserRole
	Password string
}

var seedUsers = []seedUser{
	{Email: "admin@tabline.dev", Name: "Admin", Role: domain.UserRoleAdmin, Password: "admin-dev-password"},
	{Email: "teacher@tabline.dev", Name: "Maria the Teacher", Role: domain.UserRoleTeacher, Password: "teacher-dev-password"},
	{Email: "student1@tabline.dev", Name: "First Student", Role: domain.UserRoleStudent, Password: "student-dev-password"},
	{Email: "student2@tabline.dev", Name: "Second Student", Role: domain.UserRoleStudent, Password: "student-dev-password"},
}

var seedSongs = []domain.Song{
	{Title: "Wonderwall", Author: "Oasis"},
	{Title: "Creep", Author: "Radiohead"},
	{Title: "Hallelujah", Author: "Leonard Cohen"},
	{Title: "Yesterday", Author: "The Beatles"},
	{Title: "Hotel California", Author: "Eagles"},
	{Title: "Nothing Else Matters", Author: "Metallica"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	songs := songrepo.New(pool)
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	for _, su := range seedUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("hash password", slog.String("error", err.Error()))
			os.Exit(1)
		}

		created, err := users.Insert(ctx, &domain.User{
			ID:           uuid.New(),
			Email:        su.Email,
			Name:         su.Name,
			Role:         su.Role,
			PasswordHash: string(hash),
		})
		switch {
		case err == nil:
			logger.Info("user created", slog.String("email", su.Email), slog.String("role", string(su.Role)))
		case errors.Is(err, domain.ErrAlreadyExists):
			created, err = users.GetByEmail(ctx, su.Email)
			if err != nil {
				logger.Error("load existing user", slog.String("email", su.Email), slog.String("error", err.Error()))
				os.Exit(1)
			}
			logger.Info("user exists", slog.String("email", su.Email))
		default:
			logger.Error("create user", slog.String("email", su.Email), slog.String("error", err.Error()))
			os.Exit(1)
		}

		token, err := jwt.GenerateAccessToken(created.ID, string(created.Role))
		if err != nil {
			logger.Error("generate token", slog.String("email", su.Email), slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Printf("%s\t%s\t%s\n", created.Email, created.Role, token)
	}

	// The catalog has no unique constraint on titles, so idempotency is a
	// lookup before insert.
	for i := range seedSongs {
		title := seedSongs[i].Title
		existing, _, err := songs.List(ctx, &title, 1, 0)
		if err != nil {
			logger.Error("look up song", slog.String("title", title), slog.String("error", err.Error()))
			os.Exit(1)
		}
		if len(existing) > 0 {
			logger.Info("song exists", slog.String("title", title))
			continue
		}
		seedSongs[i].ID = uuid.New()
		if _, err := songs.Insert(ctx, &seedSongs[i]); err != nil {
			logger.Error("create song", slog.String("title", title), slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("song created", slog.String("title", title))
	}

	logger.Info("seed complete")
}
