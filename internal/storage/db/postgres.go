package db

import (
	"context"
	"fmt"
	"time"

	"github.com/DanRulev/easyflash.git/internal/config"
	_ "github.com/lib/pq"

	"github.com/jmoiron/sqlx"
)

func DSN(conn config.DBConn) string {
	ssl := conn.SSL
	if ssl == "" {
		ssl = "disable"
	}
	return fmt.Sprintf("host=%v port=%v dbname=%v user=%v password=%v sslmode=%v",
		conn.Host, conn.Port, conn.Name, conn.User, conn.Password, ssl)
}

func InitDB(cfg config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", DSN(cfg.Conn))
	if err != nil {
		return nil, fmt.Errorf("failed open db connect: %w", err)
	}

	if cfg.Cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.Cfg.MaxOpenConns)
	}
	db.SetMaxIdleConns(cfg.Cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Cfg.ConnMaxLifeTime)
	db.SetConnMaxIdleTime(cfg.Cfg.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed db ping: %w", err)
	}

	if err := migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS session_results (
    user_id      BIGINT      NOT NULL,
    session_id   TEXT        NOT NULL,
    mode         TEXT        NOT NULL,
    card_count   INTEGER     NOT NULL,
    weak_count   INTEGER     NOT NULL DEFAULT 0,
    medium_count INTEGER     NOT NULL DEFAULT 0,
    strong_count INTEGER     NOT NULL DEFAULT 0,
    accuracy     INTEGER     NOT NULL DEFAULT 0,
    finished_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    PRIMARY KEY (user_id, session_id)
);
CREATE INDEX IF NOT EXISTS session_results_user_finished_idx
    ON session_results (user_id, finished_at DESC);
`

func migrate(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
