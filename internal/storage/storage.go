package storage

import (
	"context"
	"time"

	"github.com/salah559/Box-eat/internal/domain"
)

// Store is the keyed-collection contract shared by the memory and Postgres
// drivers. Get and Update return (nil, nil) for an unknown id: absence is a
// valid outcome that callers translate to a 404, not an error.
//
// Update applies a shallow field merge; "id" and "createdAt" keys in a patch
// are ignored so identifiers stay stable and creation timestamps are written
// exactly once. Orders and reservations have no Delete on purpose:
// cancellation is a status, not a removal.
type Store interface {
	ListMenuItems() ([]domain.MenuItem, error)
	GetMenuItem(id string) (*domain.MenuItem, error)
	CreateMenuItem(item domain.MenuItem) (domain.MenuItem, error)
	UpdateMenuItem(id string, patch map[string]any) (*domain.MenuItem, error)
	DeleteMenuItem(id string) (bool, error)

	ListOrders() ([]domain.Order, error)
	GetOrder(id string) (*domain.Order, error)
	CreateOrder(order domain.Order) (domain.Order, error)
	UpdateOrder(id string, patch map[string]any) (*domain.Order, error)

	ListReservations() ([]domain.Reservation, error)
	GetReservation(id string) (*domain.Reservation, error)
	CreateReservation(res domain.Reservation) (domain.Reservation, error)
	UpdateReservation(id string, patch map[string]any) (*domain.Reservation, error)

	ListOffers() ([]domain.Offer, error)
	GetOffer(id string) (*domain.Offer, error)
	CreateOffer(offer domain.Offer) (domain.Offer, error)
	UpdateOffer(id string, patch map[string]any) (*domain.Offer, error)
	DeleteOffer(id string) (bool, error)
}

// SessionStore holds admin session tokens. A token either exists (admin) or
// does not; the TTL is fixed at creation, not sliding.
type SessionStore interface {
	Create(ctx context.Context, token string, ttl time.Duration) error
	Exists(ctx context.Context, token string) (bool, error)
	Delete(ctx context.Context, token string) error
}
