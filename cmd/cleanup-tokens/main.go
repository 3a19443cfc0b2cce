// Command cleanup-tokens prunes the refresh_tokens table: rows that expired
// more than the retention window ago, plus anything already revoked.
// Meant to run from cron.
//
// Requires DATABASE_DSN; RETENTION defaults to 720h.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	tokenrepo "github.com/heartmarshall/flashcards-backend/internal/adapter/postgres/token"
)

func main() {
	retention := flag.Duration("retention", 720*time.Hour, "keep expired tokens this long before deleting")
	flag.Parse()

	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		log.Fatal("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	tokens := tokenrepo.New(pool)

	cutoff := time.Now().Add(-*retention)
	deleted, err := tokens.DeleteExpiredBefore(ctx, cutoff)
	if err != nil {
		log.Fatalf("delete expired tokens: %v", err)
	}

	revoked, err := pool.Exec(ctx, "DELETE FROM refresh_tokens WHERE revoked_at IS NOT NULL")
	if err != nil {
		log.Fatalf("delete revoked tokens: %v", err)
	}

	log.Printf("cleanup done: %d expired, %d revoked tokens removed", deleted, revoked.RowsAffected())
}
