package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"wellsphere/internal/models"
)

type TodoStorage struct {
	pool *pgxpool.Pool
}

func NewTodoStorage(pool *pgxpool.Pool) *TodoStorage {
	return &TodoStorage{
		pool: pool,
	}
}

const todoColumns = `id, user_id, content, completed, category, due_date, created_at`

func scanTodo(row interface{ Scan(dest ...any) error }) (models.Todo, error) {
	var todo models.Todo
	err := row.Scan(
		&todo.ID,
		&todo.UserID,
		&todo.Content,
		&todo.Completed,
		&todo.Category,
		&todo.DueDate,
		&todo.CreatedAt,
	)
	return todo, err
}

func (s *TodoStorage) Todos(ctx context.Context, userID int) ([]models.Todo, error) {
	op := "storage.TodoStorage.Todos"

	sqlQuery := `
	SELECT ` + todoColumns + ` FROM todos
	WHERE user_id = $1
	ORDER BY created_at ASC;
	`

	rows, err := s.pool.Query(ctx, sqlQuery, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	todos := []models.Todo{}
	for rows.Next() {
		todo, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		todos = append(todos, todo)
	}

	return todos, rows.Err()
}

func (s *TodoStorage) Todo(ctx context.Context, id int) (models.Todo, error) {
	op := "storage.TodoStorage.Todo"

	sqlQuery := `
	SELECT ` + todoColumns + ` FROM todos
	WHERE id = $1;
	`

	todo, err := scanTodo(s.pool.QueryRow(ctx, sqlQuery, id))
	if err != nil {
		return models.Todo{}, fmt.Errorf("%s: %w", op, translateErr(err))
	}

	return todo, nil
}

// CreateTodo always starts the todo uncompleted.
func (s *TodoStorage) CreateTodo(ctx context.Context, userID int, in models.InsertTodo) (models.Todo, error) {
	op := "storage.TodoStorage.CreateTodo"

	sqlQuery := `
	INSERT INTO todos (user_id, content, completed, category, due_date)
	VALUES ($1, $2, FALSE, $3, $4)
	RETURNING ` + todoColumns + `;
	`

	todo, err := scanTodo(s.pool.QueryRow(ctx, sqlQuery, userID, in.Content, in.Category, in.DueDate))
	if err != nil {
		return models.Todo{}, fmt.Errorf("%s: %w", op, err)
	}

	return todo, nil
}

func (s *TodoStorage) UpdateTodo(ctx context.Context, id int, in models.UpdateTodo) (models.Todo, error) {
	op := "storage.TodoStorage.UpdateTodo"

	var set setClause
	if in.Content != nil {
		set.add("content", *in.Content)
	}
	if in.Completed != nil {
		set.add("completed", *in.Completed)
	}
	if in.Category != nil {
		set.add("category", *in.Category)
	}
	if in.DueDate != nil {
		set.add("due_date", *in.DueDate)
	}
	if set.empty() {
		return s.Todo(ctx, id)
	}

	set.args = append(set.args, id)
	sqlQuery := fmt.Sprintf(`
	UPDATE todos SET %s
	WHERE id = $%d
	RETURNING `+todoColumns+`;
	`, strings.Join(set.cols, ", "), len(set.args))

	todo, err := scanTodo(s.pool.QueryRow(ctx, sqlQuery, set.args...))
	if err != nil {
		return models.Todo{}, fmt.Errorf("%s: %w", op, translateErr(err))
	}

	return todo, nil
}

func (s *TodoStorage) DeleteTodo(ctx context.Context, id int) error {
	op := "storage.TodoStorage.DeleteTodo"

	sqlQuery := `
	DELETE FROM todos
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
