package service

import (
	"context"
	"time"

	"github.com/salah559/Box-eat/internal/domain"
)

type MenuServiceInterface interface {
	List() ([]domain.MenuItem, error)
	Get(id string) (*domain.MenuItem, error)
	Create(payload domain.InsertMenuItem) (domain.MenuItem, error)
	Update(id string, patch map[string]any) (*domain.MenuItem, error)
	Delete(id string) (bool, error)
}

type OfferServiceInterface interface {
	List() ([]domain.Offer, error)
	Get(id string) (*domain.Offer, error)
	Create(payload domain.InsertOffer) (domain.Offer, error)
	Update(id string, patch map[string]any) (*domain.Offer, error)
	Delete(id string) (bool, error)
}

type OrderServiceInterface interface {
	List() ([]domain.Order, error)
	Get(id string) (*domain.Order, error)
	Create(ctx context.Context, payload domain.InsertOrder) (domain.Order, error)
	Update(ctx context.Context, id string, patch map[string]any) (*domain.Order, error)
	QRCode(id string) ([]byte, error)
}

type ReservationServiceInterface interface {
	List() ([]domain.Reservation, error)
	Get(id string) (*domain.Reservation, error)
	Create(ctx context.Context, payload domain.InsertReservation) (domain.Reservation, error)
	Update(ctx context.Context, id string, patch map[string]any) (*domain.Reservation, error)
}

type AuthServiceInterface interface {
	Login(ctx context.Context, code string) (string, error)
	Logout(ctx context.Context, cookieValue string) error
	IsAdmin(ctx context.Context, cookieValue string) (bool, error)
}

// Repositories are the slices of the storage drivers each service touches.

type MenuRepository interface {
	ListMenuItems() ([]domain.MenuItem, error)
	GetMenuItem(id string) (*domain.MenuItem, error)
	CreateMenuItem(item domain.MenuItem) (domain.MenuItem, error)
	UpdateMenuItem(id string, patch map[string]any) (*domain.MenuItem, error)
	DeleteMenuItem(id string) (bool, error)
}

type OfferRepository interface {
	ListOffers() ([]domain.Offer, error)
	GetOffer(id string) (*domain.Offer, error)
	CreateOffer(offer domain.Offer) (domain.Offer, error)
	UpdateOffer(id string, patch map[string]any) (*domain.Offer, error)
	DeleteOffer(id string) (bool, error)
}

type OrderRepository interface {
	ListOrders() ([]domain.Order, error)
	GetOrder(id string) (*domain.Order, error)
	CreateOrder(order domain.Order) (domain.Order, error)
	UpdateOrder(id string, patch map[string]any) (*domain.Order, error)
}

type ReservationRepository interface {
	ListReservations() ([]domain.Reservation, error)
	GetReservation(id string) (*domain.Reservation, error)
	CreateReservation(res domain.Reservation) (domain.Reservation, error)
	UpdateReservation(id string, patch map[string]any) (*domain.Reservation, error)
}

type SessionRepository interface {
	Create(ctx context.Context, token string, ttl time.Duration) error
	Exists(ctx context.Context, token string) (bool, error)
	Delete(ctx context.Context, token string) error
}

// EventPublisher is optional; services skip publishing when it is nil.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}

var _ MenuServiceInterface = (*MenuService)(nil)
var _ OfferServiceInterface = (*OfferService)(nil)
var _ OrderServiceInterface = (*OrderService)(nil)
var _ ReservationServiceInterface = (*ReservationService)(nil)
var _ AuthServiceInterface = (*AuthService)(nil)
