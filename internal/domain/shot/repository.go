package shot

import (
	"context"

	crerr "github.com/cockroachdb/errors"
)

// ErrSourceMissing marks a shot source path that does not exist. Callers
// must be able to tell this apart from validation failures.
var ErrSourceMissing = crerr.New("shot source missing")

// Repository loads the shot collection for one analysis session. The
// returned slice is a fresh copy on every call and is never mutated by the
// repository afterwards.
type Repository interface {
	List(ctx context.Context) ([]Event, error)
}
