package settings

import "context"

type SettingsService interface {
	// Get transparently decrypts values stored with encrypt=true.
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, encrypt bool) error
	Delete(ctx context.Context, key string) error
}
