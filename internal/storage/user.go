package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"wellsphere/internal/models"
)

type UserStorage struct {
	pool *pgxpool.Pool
}

func NewUserStorage(pool *pgxpool.Pool) *UserStorage {
	return &UserStorage{
		pool: pool,
	}
}

const userColumns = `id, username, password, first_name, ai_companion_name, created_at`

func scanUser(row interface{ Scan(dest ...any) error }) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Password,
		&user.FirstName,
		&user.AICompanionName,
		&user.CreatedAt,
	)
	return user, err
}

func (s *UserStorage) User(ctx context.Context, id int) (models.User, error) {
	op := "storage.UserStorage.User"

	sqlQuery := `
	SELECT ` + userColumns + ` FROM users
	WHERE id = $1;
	`

	user, err := scanUser(s.pool.QueryRow(ctx, sqlQuery, id))
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, translateErr(err))
	}

	return user, nil
}

func (s *UserStorage) UserByUsername(ctx context.Context, username string) (models.User, error) {
	op := "storage.UserStorage.UserByUsername"

	sqlQuery := `
	SELECT ` + userColumns + ` FROM users
	WHERE username = $1;
	`

	user, err := scanUser(s.pool.QueryRow(ctx, sqlQuery, username))
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, translateErr(err))
	}

	return user, nil
}

// CreateUser stores a user with an already-hashed password. Every new user
// starts with the default companion name.
func (s *UserStorage) CreateUser(ctx context.Context, in models.InsertUser) (models.User, error) {
	op := "storage.UserStorage.CreateUser"

	sqlQuery := `
	INSERT INTO users (username, password, first_name, ai_companion_name)
	VALUES ($1, $2, $3, $4)
	RETURNING ` + userColumns + `;
	`

	user, err := scanUser(s.pool.QueryRow(ctx, sqlQuery,
		in.Username,
		in.Password,
		in.FirstName,
		models.DefaultCompanionName,
	))
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}

	return user, nil
}

func (s *UserStorage) UpdateCompanionName(ctx context.Context, id int, name string) error {
	op := "storage.UserStorage.UpdateCompanionName"

	sqlQuery := `
	UPDATE users SET ai_companion_name = $1
	WHERE id = $2;
	`

	tag, err := s.pool.Exec(ctx, sqlQuery, name, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return nil
}
