// Package flash stores one-shot messages shown after a redirect (the
// post/redirect/get pattern used by the contact form).
package flash

import (
	"context"
	"errors"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

// CookieName carries the flash id between the POST and the following GET.
const CookieName = "portfolio_flash"

var ErrNotFound = errors.New("flash not found")

// Store keeps flashes until they are read once or expire.
type Store interface {
	// Put stores f and returns the id to hand to the client.
	Put(ctx context.Context, f domain.Flash) (string, error)
	// Pop returns and removes the flash. Missing or expired ids give ErrNotFound.
	Pop(ctx context.Context, id string) (domain.Flash, error)
}
