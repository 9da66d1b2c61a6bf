package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionStorage keeps opaque session tokens in Postgres so that sessions
// survive process restarts. Expired rows are treated as absent.
type SessionStorage struct {
	pool *pgxpool.Pool
	ttl  time.Duration
}

func NewSessionStorage(pool *pgxpool.Pool, ttl time.Duration) *SessionStorage {
	return &SessionStorage{
		pool: pool,
		ttl:  ttl,
	}
}

func (s *SessionStorage) CreateSession(ctx context.Context, userID int) (string, error) {
	op := "storage.SessionStorage.CreateSession"

	token := uuid.NewString()

	sqlQuery := `
	INSERT INTO sessions (token, user_id, expires_at)
	VALUES ($1, $2, $3);
	`

	_, err := s.pool.Exec(ctx, sqlQuery, token, userID, time.Now().Add(s.ttl))
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return token, nil
}

func (s *SessionStorage) SessionUserID(ctx context.Context, token string) (int, error) {
	op := "storage.SessionStorage.SessionUserID"

	sqlQuery := `
	SELECT user_id FROM sessions
	WHERE token = $1 AND expires_at > now();
	`

	var userID int
	if err := s.pool.QueryRow(ctx, sqlQuery, token).Scan(&userID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, translateErr(err))
	}

	return userID, nil
}

func (s *SessionStorage) DeleteSession(ctx context.Context, token string) error {
	op := "storage.SessionStorage.DeleteSession"

	sqlQuery := `
	DELETE FROM sessions
	WHERE token = $1;
	`

	if _, err := s.pool.Exec(ctx, sqlQuery, token); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
