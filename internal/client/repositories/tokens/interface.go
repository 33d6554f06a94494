package tokens

import "context"

// Repository persists the session token across process restarts.
//
// Load returns "" (and no error) when no token is stored.
type Repository interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
