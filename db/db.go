package db

import (
	"context"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"flexiquote/config"
)

// DB holds the database connection
var DB *sqlx.DB

// InitDB initializes the database connection from the configuration
func InitDB(cfg config.PostgresConfig) error {
	connStr, err := cfg.DSN()
	if err != nil {
		return err
	}

	DB, err = sqlx.Open("pgx", connStr)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}

	// Test the connection
	ctx := context.Background()
	if err := DB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.Printf("✓ Database connection established successfully")
	return nil
}

// CloseDB closes the database connection
func CloseDB() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
