package settings

import "context"

type SettingsRepository interface {
	Get(ctx context.Context, key string) (Setting, error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
