package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"wellsphere/internal/models"
)

type MoodStorage struct {
	pool *pgxpool.Pool
}

func NewMoodStorage(pool *pgxpool.Pool) *MoodStorage {
	return &MoodStorage{
		pool: pool,
	}
}

const moodColumns = `id, user_id, mood, score, note, created_at`

func scanMoodEntry(row interface{ Scan(dest ...any) error }) (models.MoodEntry, error) {
	var entry models.MoodEntry
	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Mood,
		&entry.Score,
		&entry.Note,
		&entry.CreatedAt,
	)
	return entry, err
}

func (s *MoodStorage) MoodEntries(ctx context.Context, userID int) ([]models.MoodEntry, error) {
	op := "storage.MoodStorage.MoodEntries"

	sqlQuery := `
	SELECT ` + moodColumns + ` FROM mood_entries
	WHERE user_id = $1
	ORDER BY created_at ASC;
	`

	rows, err := s.pool.Query(ctx, sqlQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	entries := []models.MoodEntry{}
	for rows.Next() {
		entry, err := scanMoodEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (s *MoodStorage) CreateMoodEntry(ctx context.Context, userID int, in models.InsertMoodEntry) (models.MoodEntry, error) {
	op := "storage.MoodStorage.CreateMoodEntry"

	sqlQuery := `
	INSERT INTO mood_entries (user_id, mood, score, note)
	VALUES ($1, $2, $3, $4)
	RETURNING ` + moodColumns + `;
	`

	entry, err := scanMoodEntry(s.pool.QueryRow(ctx, sqlQuery, userID, in.Mood, in.Score, in.Note))
	if err != nil {
		return models.MoodEntry{}, fmt.Errorf("%s: %w", op, err)
	}

	return entry, nil
}
