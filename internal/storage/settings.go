package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"wellsphere/internal/models"
)

type SettingsStorage struct {
	pool *pgxpool.Pool
}

func NewSettingsStorage(pool *pgxpool.Pool) *SettingsStorage {
	return &SettingsStorage{
		pool: pool,
	}
}

func defaultAISettings() models.AISettings {
	return models.AISettings{
		Name:   models.DefaultCompanionName,
		Avatar: models.DefaultCompanionAvatar,
	}
}

func scanSettings(row interface{ Scan(dest ...any) error }) (models.Settings, error) {
	var settings models.Settings
	var aiJSON []byte

	err := row.Scan(
		&settings.ID,
		&settings.UserID,
		&settings.Theme,
		&settings.NotificationsEnabled,
		&aiJSON,
	)
	if err != nil {
		return models.Settings{}, err
	}

	settings.AISettings = defaultAISettings()
	if len(aiJSON) > 0 && string(aiJSON) != "null" {
		if err := json.Unmarshal(aiJSON, &settings.AISettings); err != nil {
			return models.Settings{}, fmt.Errorf("failed to unmarshal ai_settings: %w", err)
		}
	}

	return settings, nil
}

// Settings returns the user's row, creating one with defaults on first read.
func (s *SettingsStorage) Settings(ctx context.Context, userID int) (models.Settings, error) {
	op := "storage.SettingsStorage.Settings"

	sqlQuery := `
	SELECT id, user_id, theme, notifications_enabled, ai_settings FROM settings
	WHERE user_id = $1;
	`

	settings, err := scanSettings(s.pool.QueryRow(ctx, sqlQuery, userID))
	if err == nil {
		return settings, nil
	}
	if !errors.Is(translateErr(err), ErrNotFound) {
		return models.Settings{}, fmt.Errorf("%s: %w", op, err)
	}

	settings, err = s.createDefaults(ctx, userID)
	if err != nil {
		return models.Settings{}, fmt.Errorf("%s: %w", op, err)
	}

	return settings, nil
}

func (s *SettingsStorage) createDefaults(ctx context.Context, userID int) (models.Settings, error) {
	aiJSON, err := json.Marshal(defaultAISettings())
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to marshal ai_settings: %w", err)
	}

	// ON CONFLICT keeps a concurrent first read from failing on the unique
	// user_id constraint.
	sqlQuery := `
	INSERT INTO settings (user_id, theme, notifications_enabled, ai_settings)
	VALUES ($1, $2, TRUE, $3)
	ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
	RETURNING id, user_id, theme, notifications_enabled, ai_settings;
	`

	return scanSettings(s.pool.QueryRow(ctx, sqlQuery, userID, models.DefaultTheme, aiJSON))
}

// UpdateSettings upserts: the row is created with defaults if absent, then
// only the supplied fields are applied on top.
func (s *SettingsStorage) UpdateSettings(ctx context.Context, userID int, in models.UpdateSettings) (models.Settings, error) {
	op := "storage.SettingsStorage.UpdateSettings"

	settings, err := s.Settings(ctx, userID)
	if err != nil {
		return models.Settings{}, err
	}

	if in.Theme != nil {
		settings.Theme = *in.Theme
	}
	if in.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *in.NotificationsEnabled
	}
	if in.AISettings != nil {
		if in.AISettings.Name != nil {
			settings.AISettings.Name = *in.AISettings.Name
		}
		if in.AISettings.Avatar != nil {
			settings.AISettings.Avatar = *in.AISettings.Avatar
		}
	}

	aiJSON, err := json.Marshal(settings.AISettings)
	if err != nil {
		return models.Settings{}, fmt.Errorf("%s: failed to marshal ai_settings: %w", op, err)
	}

	sqlQuery := `
	UPDATE settings SET theme = $1, notifications_enabled = $2, ai_settings = $3
	WHERE user_id = $4
	RETURNING id, user_id, theme, notifications_enabled, ai_settings;
	`

	updated, err := scanSettings(s.pool.QueryRow(ctx, sqlQuery,
		settings.Theme, settings.NotificationsEnabled, aiJSON, userID))
	if err != nil {
		return models.Settings{}, fmt.Errorf("%s: %w", op, translateErr(err))
	}

	return updated, nil
}
