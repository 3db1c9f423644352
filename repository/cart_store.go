package repository

import (
	"context"

	"github.com/SerfiMolotov/MissDelice/entity"
)

// CartStore keeps carts alive across restarts, keyed by the browser's
// session id. A missing cart reads back as an empty one so the storefront
// never has to special-case first contact.
type CartStore interface {
	Get(ctx context.Context, sessionID string) (*entity.Cart, error)
	Save(ctx context.Context, cart *entity.Cart) error
	// Delete must remove the whole cart in one operation, never line by line.
	Delete(ctx context.Context, sessionID string) error
}

// CooldownStore remembers when a session last used the contact form.
type CooldownStore interface {
	LastSent(ctx context.Context, sessionID string) (int64, bool, error) // unix seconds
	MarkSent(ctx context.Context, sessionID string, unix int64) error
}
