package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/synthbit-group/attendance-backend-go/internal/config"
	"github.com/synthbit-group/attendance-backend-go/internal/domain/user"
	"github.com/synthbit-group/attendance-backend-go/internal/pkg/database"
	"github.com/synthbit-group/attendance-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the default dashboard admin account. Safe to run repeatedly.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	username := getEnvOr("ADMIN_USERNAME", "admin")
	email := getEnvOr("ADMIN_EMAIL", "admin@example.com")
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error hashing password: ", err)
	}

	ctx := context.Background()
	userRepo := postgresql.NewUserRepository(db)

	// Check and create in one transaction so concurrent seed runs cannot
	// both insert.
	err = postgresql.WithTransaction(ctx, db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		if _, err := userRepo.GetByEmail(txCtx, email); err == nil {
			fmt.Println("Admin user already exists")
			return nil
		} else if !errors.Is(err, user.ErrUserNotFound) {
			return err
		}

		created, err := userRepo.Create(txCtx, user.User{
			Username:     username,
			Email:        email,
			PasswordHash: string(hash),
			IsAdmin:      true,
		})
		if err != nil {
			return err
		}

		fmt.Println("Admin user seeded successfully:", created.Email)
		return nil
	})
	if err != nil {
		log.Fatal("Error seeding admin user: ", err)
	}
}

func getEnvOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
