package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/salah559/Box-eat/internal/domain"
)

type ReservationService struct {
	repository ReservationRepository
	publisher  EventPublisher
}

func NewReservationService(repository ReservationRepository, publisher EventPublisher) *ReservationService {
	return &ReservationService{repository: repository, publisher: publisher}
}

func (s *ReservationService) List() ([]domain.Reservation, error) {
	return s.repository.ListReservations()
}

func (s *ReservationService) Get(id string) (*domain.Reservation, error) {
	return s.repository.GetReservation(id)
}

// Create always yields status pending, email and special requests stay
// optional.
func (s *ReservationService) Create(ctx context.Context, payload domain.InsertReservation) (domain.Reservation, error) {
	if err := validateReservation(payload); err != nil {
		return domain.Reservation{}, err
	}
	res := domain.Reservation{
		CustomerName:    payload.CustomerName,
		CustomerPhone:   payload.CustomerPhone,
		CustomerEmail:   payload.CustomerEmail,
		Date:            payload.Date,
		Time:            payload.Time,
		Guests:          *payload.Guests,
		SpecialRequests: payload.SpecialRequests,
		Status:          domain.ReservationStatusPending,
	}
	created, err := s.repository.CreateReservation(res)
	if err != nil {
		return domain.Reservation{}, err
	}

	s.publish(ctx, domain.Event{
		Type:      domain.EventReservationCreated,
		EntityID:  created.ID,
		Status:    created.Status,
		Timestamp: time.Now(),
	})
	return created, nil
}

func (s *ReservationService) Update(ctx context.Context, id string, patch map[string]any) (*domain.Reservation, error) {
	status, statusChanged := patch["status"].(string)
	updated, err := s.repository.UpdateReservation(id, patch)
	if err != nil || updated == nil {
		return updated, err
	}

	if statusChanged {
		s.publish(ctx, domain.Event{
			Type:      domain.EventReservationStatusChanged,
			EntityID:  updated.ID,
			Status:    status,
			Timestamp: time.Now(),
		})
	}
	return updated, nil
}

func (s *ReservationService) publish(ctx context.Context, event domain.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Printf("[boxeat] warning: failed to publish %s event: %v", event.Type, err)
	}
}

func validateReservation(payload domain.InsertReservation) error {
	required := map[string]string{
		"customerName":  payload.CustomerName,
		"customerPhone": payload.CustomerPhone,
		"date":          payload.Date,
		"time":          payload.Time,
	}
	if err := requireStrings(required); err != nil {
		return err
	}
	if payload.Guests == nil {
		return fmt.Errorf("%w: guests is required", ErrValidation)
	}
	if *payload.Guests < 1 {
		return fmt.Errorf("%w: guests must be at least 1", ErrValidation)
	}
	return nil
}
