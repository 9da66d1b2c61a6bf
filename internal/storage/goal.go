package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"wellsphere/internal/models"
)

type GoalStorage struct {
	pool *pgxpool.Pool
}

func NewGoalStorage(pool *pgxpool.Pool) *GoalStorage {
	return &GoalStorage{
		pool: pool,
	}
}

const goalColumns = `id, user_id, title, description, target, current, unit, deadline, created_at`

func scanGoal(row interface{ Scan(dest ...any) error }) (models.Goal, error) {
	var goal models.Goal
	err := row.Scan(
		&goal.ID,
		&goal.UserID,
		&goal.Title,
		&goal.Description,
		&goal.Target,
		&goal.Current,
		&goal.Unit,
		&goal.Deadline,
		&goal.CreatedAt,
	)
	return goal, err
}

func (s *GoalStorage) Goals(ctx context.Context, userID int) ([]models.Goal, error) {
	op := "storage.GoalStorage.Goals"

	sqlQuery := `
	SELECT ` + goalColumns + ` FROM goals
	WHERE user_id = $1
	ORDER BY created_at ASC;
	`

	rows, err := s.pool.Query(ctx, sqlQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	goals := []models.Goal{}
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		goals = append(goals, goal)
	}

	return goals, rows.Err()
}

func (s *GoalStorage) Goal(ctx context.Context, id int) (models.Goal, error) {
	op := "storage.GoalStorage.Goal"

	sqlQuery := `
	SELECT ` + goalColumns + ` FROM goals
	WHERE id = $1;
	`

	goal, err := scanGoal(s.pool.QueryRow(ctx, sqlQuery, id))
	if err != nil {
		return models.Goal{}, fmt.Errorf("%s: %w", op, translateErr(err))
	}

	return goal, nil
}

// CreateGoal always starts progress at zero.
func (s *GoalStorage) CreateGoal(ctx context.Context, userID int, in models.InsertGoal) (models.Goal, error) {
	op := "storage.GoalStorage.CreateGoal"

	sqlQuery := `
	INSERT INTO goals (user_id, title, description, target, current, unit, deadline)
	VALUES ($1, $2, $3, $4, 0, $5, $6)
	RETURNING ` + goalColumns + `;
	`

	goal, err := scanGoal(s.pool.QueryRow(ctx, sqlQuery,
		userID, in.Title, in.Description, in.Target, in.Unit, in.Deadline))
	if err != nil {
		return models.Goal{}, fmt.Errorf("%s: %w", op, err)
	}

	return goal, nil
}

func (s *GoalStorage) UpdateGoal(ctx context.Context, id int, in models.UpdateGoal) (models.Goal, error) {
	op := "storage.GoalStorage.UpdateGoal"

	var set setClause
	if in.Title != nil {
		set.add("title", *in.Title)
	}
	if in.Description != nil {
		set.add("description", *in.Description)
	}
	if in.Target != nil {
		set.add("target", *in.Target)
	}
	if in.Current != nil {
		set.add("current", *in.Current)
	}
	if in.Unit != nil {
		set.add("unit", *in.Unit)
	}
	if in.Deadline != nil {
		set.add("deadline", *in.Deadline)
	}
	if set.empty() {
		return s.Goal(ctx, id)
	}

	set.args = append(set.args, id)
	sqlQuery := fmt.Sprintf(`
	UPDATE goals SET %s
	WHERE id = $%d
	RETURNING `+goalColumns+`;
	`, strings.Join(set.cols, ", "), len(set.args))

	goal, err := scanGoal(s.pool.QueryRow(ctx, sqlQuery, set.args...))
	if err != nil {
		return models.Goal{}, fmt.Errorf("%s: %w", op, translateErr(err))
	}

	return goal, nil
}

func (s *GoalStorage) DeleteGoal(ctx context.Context, id int) error {
	op := "storage.GoalStorage.DeleteGoal"

	sqlQuery := `
	DELETE FROM goals
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
