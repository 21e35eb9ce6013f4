package queries

import (
	"context"
	"log/slog"

	"bikepacking-api/internal/infra"
	"bikepacking-api/internal/pkg/errs"
)

var (
	ErrUserNotFound = errs.New("user not found")
	ErrUserInactive = errs.New("user inactive")
)

// UserReadStore is also used by the auth and checkout commands to look
// buyers up by email. FindByEmail returns the password hash alongside.
type UserReadStore interface {
	FindByID(ctx context.Context, id int64) (*UserView, error)
	FindByEmail(ctx context.Context, email string) (*UserView, string, error)
}

type UserQueries interface {
	// GetCurrentUser resolves the authenticated principal. A token that
	// outlived its account or its activation is refused.
	GetCurrentUser(ctx context.Context, userID int64) (*UserView, error)
}

type currentUserQueries struct {
	users UserReadStore
}

func NewUserQueries(users UserReadStore) UserQueries {
	return &currentUserQueries{users: users}
}

func (q *currentUserQueries) GetCurrentUser(ctx context.Context, userID int64) (*UserView, error) {
	if userID <= 0 {
		return nil, ErrUserNotFound
	}

	view, err := q.users.FindByID(ctx, userID)
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return nil, errs.Mark(err, ErrUserNotFound)
	case err != nil:
		return nil, errs.Wrap(err, "load current user")
	case !view.IsActive:
		slog.Warn("token presented for inactive account", "user_id", userID)
		return nil, ErrUserInactive
	}
	return view, nil
}
