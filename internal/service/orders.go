package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/skip2/go-qrcode"

	"github.com/salah559/Box-eat/internal/domain"
)

type OrderService struct {
	repository OrderRepository
	publisher  EventPublisher
	baseURL    string
}

func NewOrderService(repository OrderRepository, publisher EventPublisher, baseURL string) *OrderService {
	return &OrderService{
		repository: repository,
		publisher:  publisher,
		baseURL:    baseURL,
	}
}

func (s *OrderService) List() ([]domain.Order, error) {
	return s.repository.ListOrders()
}

func (s *OrderService) Get(id string) (*domain.Order, error) {
	return s.repository.GetOrder(id)
}

// Create stores the order with status pending; a caller-supplied status is
// never honored. The total is stored as submitted, not recomputed from menu
// prices.
func (s *OrderService) Create(ctx context.Context, payload domain.InsertOrder) (domain.Order, error) {
	if err := validateOrder(payload); err != nil {
		return domain.Order{}, err
	}
	order := domain.Order{
		CustomerName:    payload.CustomerName,
		CustomerPhone:   payload.CustomerPhone,
		CustomerAddress: payload.CustomerAddress,
		Items:           payload.Items,
		Total:           payload.Total,
		Status:          domain.OrderStatusPending,
	}
	created, err := s.repository.CreateOrder(order)
	if err != nil {
		return domain.Order{}, err
	}

	s.publish(ctx, domain.Event{
		Type:      domain.EventOrderCreated,
		EntityID:  created.ID,
		Status:    created.Status,
		Total:     created.Total,
		Timestamp: time.Now(),
	})
	return created, nil
}

// Update merges any patch without validating it; status values are not
// checked against the transition graph and the last write wins.
func (s *OrderService) Update(ctx context.Context, id string, patch map[string]any) (*domain.Order, error) {
	status, statusChanged := patch["status"].(string)
	updated, err := s.repository.UpdateOrder(id, patch)
	if err != nil || updated == nil {
		return updated, err
	}

	if statusChanged {
		s.publish(ctx, domain.Event{
			Type:      domain.EventOrderStatusChanged,
			EntityID:  updated.ID,
			Status:    status,
			Timestamp: time.Now(),
		})
	}
	return updated, nil
}

// QRCode renders a PNG pointing at the public tracking page for the order.
func (s *OrderService) QRCode(id string) ([]byte, error) {
	order, err := s.repository.GetOrder(id)
	if err != nil || order == nil {
		return nil, err
	}
	return qrcode.Encode(fmt.Sprintf("%s/track?order=%s", s.baseURL, order.ID), qrcode.Medium, 256)
}

func (s *OrderService) publish(ctx context.Context, event domain.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("[boxeat] warning: failed to publish %s event: %v", event.Type, err)
	}
}

func validateOrder(payload domain.InsertOrder) error {
	return requireStrings(map[string]string{
		"customerName":    payload.CustomerName,
		"customerPhone":   payload.CustomerPhone,
		"customerAddress": payload.CustomerAddress,
		"items":           payload.Items,
		"total":           payload.Total,
	})
}
