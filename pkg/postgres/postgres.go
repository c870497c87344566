package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SSLMode    string
}

type DB struct {
	*sqlx.DB
	cfg Config
}

func NewDB(config Config) (*DB, error) {

	connectionURL := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost,
		config.DBPort,
		config.DBUser,
		config.DBPassword,
		config.DBName,
		config.SSLMode,
	)

	db, err := sqlx.Open("postgres", connectionURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	return &DB{
		cfg: config,
		DB:  db,
	}, nil
}

func (d *DB) SQLXDB() *sqlx.DB {
	return d.DB
}

func (d *DB) Start(ctx context.Context) error {

	if err := d.DB.PingContext(ctx); err != nil {
		return err
	}

	return nil
}

func (d *DB) Stop(ctx context.Context) error {
	return d.DB.Close()
}
