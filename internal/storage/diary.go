package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"wellsphere/internal/models"
)

type DiaryStorage struct {
	pool *pgxpool.Pool
}

func NewDiaryStorage(pool *pgxpool.Pool) *DiaryStorage {
	return &DiaryStorage{
		pool: pool,
	}
}

const diaryColumns = `id, user_id, content, title, mood, created_at`

func scanDiaryEntry(row interface{ Scan(dest ...any) error }) (models.DiaryEntry, error) {
	var entry models.DiaryEntry
	err := row.Scan(
		&entry.ID,
		&entry.UserID,
		&entry.Content,
		&entry.Title,
		&entry.Mood,
		&entry.CreatedAt,
	)
	return entry, err
}

func (s *DiaryStorage) DiaryEntries(ctx context.Context, userID int) ([]models.DiaryEntry, error) {
	op := "storage.DiaryStorage.DiaryEntries"

	sqlQuery := `
	SELECT ` + diaryColumns + ` FROM diary_entries
	WHERE user_id = $1
	ORDER BY created_at ASC;
	`

	rows, err := s.pool.Query(ctx, sqlQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	entries := []models.DiaryEntry{}
	for rows.Next() {
		entry, err := scanDiaryEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (s *DiaryStorage) DiaryEntry(ctx context.Context, id int) (models.DiaryEntry, error) {
	op := "storage.DiaryStorage.DiaryEntry"

	sqlQuery := `
	SELECT ` + diaryColumns + ` FROM diary_entries
	WHERE id = $1;
	`

	entry, err := scanDiaryEntry(s.pool.QueryRow(ctx, sqlQuery, id))
	if err != nil {
		return models.DiaryEntry{}, fmt.Errorf("%s: %w", op, translateErr(err))
	}

	return entry, nil
}

func (s *DiaryStorage) CreateDiaryEntry(ctx context.Context, userID int, in models.InsertDiaryEntry) (models.DiaryEntry, error) {
	op := "storage.DiaryStorage.CreateDiaryEntry"

	sqlQuery := `
	INSERT INTO diary_entries (user_id, content, title, mood)
	VALUES ($1, $2, $3, $4)
	RETURNING ` + diaryColumns + `;
	`

	entry, err := scanDiaryEntry(s.pool.QueryRow(ctx, sqlQuery, userID, in.Content, in.Title, in.Mood))
	if err != nil {
		return models.DiaryEntry{}, fmt.Errorf("%s: %w", op, err)
	}

	return entry, nil
}

func (s *DiaryStorage) UpdateDiaryEntry(ctx context.Context, id int, in models.UpdateDiaryEntry) (models.DiaryEntry, error) {
	op := "storage.DiaryStorage.UpdateDiaryEntry"

	var set setClause
	if in.Content != nil {
		set.add("content", *in.Content)
	}
	if in.Title != nil {
		set.add("title", *in.Title)
	}
	if in.Mood != nil {
		set.add("mood", *in.Mood)
	}
	if set.empty() {
		return s.DiaryEntry(ctx, id)
	}

	set.args = append(set.args, id)
	sqlQuery := fmt.Sprintf(`
	UPDATE diary_entries SET %s
	WHERE id = $%d
	RETURNING `+diaryColumns+`;
	`, strings.Join(set.cols, ", "), len(set.args))

	entry, err := scanDiaryEntry(s.pool.QueryRow(ctx, sqlQuery, set.args...))
	if err != nil {
		return models.DiaryEntry{}, fmt.Errorf("%s: %w", op, translateErr(err))
	}

	return entry, nil
}

func (s *DiaryStorage) DeleteDiaryEntry(ctx context.Context, id int) error {
	op := "storage.DiaryStorage.DeleteDiaryEntry"

	sqlQuery := `
	DELETE FROM diary_entries
	WHERE id = $1;
	`

	tag, err := s.pool.Exec(ctx, sqlQuery, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	return nil
}
