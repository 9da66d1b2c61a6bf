package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"wellsphere/internal/models"
)

type ChatStorage struct {
	pool *pgxpool.Pool
}

func NewChatStorage(pool *pgxpool.Pool) *ChatStorage {
	return &ChatStorage{
		pool: pool,
	}
}

const chatColumns = `id, user_id, content, is_ai, created_at`

func scanChatMessage(row interface{ Scan(dest ...any) error }) (models.ChatMessage, error) {
	var msg models.ChatMessage
	err := row.Scan(
		&msg.ID,
		&msg.UserID,
		&msg.Content,
		&msg.IsAI,
		&msg.CreatedAt,
	)
	return msg, err
}

func (s *ChatStorage) ChatMessages(ctx context.Context, userID int) ([]models.ChatMessage, error) {
	op := "storage.ChatStorage.ChatMessages"

	sqlQuery := `
	SELECT ` + chatColumns + ` FROM chat_messages
	WHERE user_id = $1
	ORDER BY created_at ASC;
	`

	rows, err := s.pool.Query(ctx, sqlQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	messages := []models.ChatMessage{}
	for rows.Next() {
		msg, err := scanChatMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		messages = append(messages, msg)
	}

	return messages, rows.Err()
}

func (s *ChatStorage) CreateChatMessage(ctx context.Context, userID int, content string, isAI bool) (models.ChatMessage, error) {
	op := "storage.ChatStorage.CreateChatMessage"

	sqlQuery := `
	INSERT INTO chat_messages (user_id, content, is_ai)
	VALUES ($1, $2, $3)
	RETURNING ` + chatColumns + `;
	`

	msg, err := scanChatMessage(s.pool.QueryRow(ctx, sqlQuery, userID, content, isAI))
	if err != nil {
		return models.ChatMessage{}, fmt.Errorf("%s: %w", op, err)
	}

	return msg, nil
}
