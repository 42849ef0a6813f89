package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/auth"
	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/config"
	"github.com/karanggintungdesa-maker/Pelayanan-Desa/internal/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	database, err := db.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@desakaranggintung.id"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		log.Fatal("ADMIN_PASSWORD is not set")
	}
	if err := auth.ValidatePassword(password); err != nil {
		log.Fatalf("Password rejected: %v", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin, err := database.CreateUser(context.Background(), email, hash, "admin")
	if err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	fmt.Println("Akun admin berhasil dibuat.")
	fmt.Printf("Email: %s\n", admin.Email)
	fmt.Printf("ID: %d, Role: %s\n", admin.ID, admin.Role)
}
