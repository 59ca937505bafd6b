package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"

	"github.com/osse101/FNTDWorld_Go/internal/database"
	"github.com/osse101/FNTDWorld_Go/internal/database/postgres"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")
	sslMode := os.Getenv("DB_SSLMODE")

	ctx := context.Background()

	// 1. Connect to default 'postgres' database to create the new database
	conn, err := pgx.Connect(ctx, database.ConnString(user, password, host, port, "postgres", sslMode))
	if err != nil {
		log.Fatalf("Unable to connect to postgres database: %v", err)
	}

	// 2. Check if database exists
	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", dbname).Scan(&exists)
	if err != nil {
		log.Fatalf("Failed to check if database exists: %v", err)
	}

	if !exists {
		fmt.Printf("Creating database %s...\n", dbname)
		if _, err = conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{dbname}.Sanitize()); err != nil {
			log.Fatalf("Failed to create database: %v", err)
		}
		fmt.Println("Database created successfully.")
	} else {
		fmt.Printf("Database %s already exists.\n", dbname)
	}
	conn.Close(ctx)

	// 3. Apply embedded migrations
	pool, err := database.NewPool(ctx, database.ConnString(user, password, host, port, dbname, sslMode), 2, time.Minute, 5*time.Minute)
	if err != nil {
		log.Fatalf("Unable to connect to %s database: %v", dbname, err)
	}
	defer pool.Close()

	fmt.Println("Running migrations...")
	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	fmt.Println("Migrations completed successfully.")

	// 4. Persist ADMIN_HANDLES so the admin list survives config changes
	repo := postgres.NewAccountRepository(pool)
	for _, handle := range strings.Split(os.Getenv("ADMIN_HANDLES"), ",") {
		handle = strings.TrimSpace(handle)
		if handle == "" {
			continue
		}
		if err := repo.AddAdminHandle(ctx, handle); err != nil {
			log.Fatalf("Failed to seed admin %s: %v", handle, err)
		}
		fmt.Printf("Admin %s seeded.\n", handle)
	}
}
