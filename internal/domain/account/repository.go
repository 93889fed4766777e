package account

import "context"

// Repository persists user records. Implementations back onto a flat JSON
// file; a corrupt file is a hard error here, unlike the override store.
type Repository interface {
	Get(ctx context.Context, username string) (User, bool, error)
	GetByEmail(ctx context.Context, email string) (User, bool, error)
	List(ctx context.Context) ([]User, error)
	Put(ctx context.Context, user User) error
}
