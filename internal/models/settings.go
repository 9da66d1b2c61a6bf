package models

const (
	DefaultTheme           = "light"
	DefaultCompanionName   = "Lily"
	DefaultCompanionAvatar = "robot"
)

type AISettings struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type Settings struct {
	ID                   int        `json:"id" db:"id"`
	UserID               int        `json:"userId" db:"user_id"`
	Theme                string     `json:"theme" db:"theme"`
	NotificationsEnabled bool       `json:"notificationsEnabled" db:"notifications_enabled"`
	AISettings           AISettings `json:"aiSettings" db:"ai_settings"`
}

type UpdateAISettings struct {
	Name   *string `json:"name"`
	Avatar *string `json:"avatar"`
}

type UpdateSettings struct {
	Theme                *string           `json:"theme"`
	NotificationsEnabled *bool             `json:"notificationsEnabled"`
	AISettings           *UpdateAISettings `json:"aiSettings"`
}

func (in UpdateSettings) Validate() []FieldError {
	var errs []FieldError
	if in.Theme != nil {
		switch *in.Theme {
		case "light", "dark", "system":
		default:
			errs = append(errs, FieldError{Field: "theme", Message: "theme must be light, dark or system"})
		}
	}
	if in.AISettings != nil && in.AISettings.Name != nil && *in.AISettings.Name == "" {
		errs = append(errs, FieldError{Field: "aiSettings.name", Message: "companion name must not be empty"})
	}
	return errs
}
