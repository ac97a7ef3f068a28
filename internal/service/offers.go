package service

import (
	"fmt"

	"github.com/salah559/Box-eat/internal/domain"
)

type OfferService struct {
	repository OfferRepository
}

func NewOfferService(repository OfferRepository) *OfferService {
	return &OfferService{repository: repository}
}

func (s *OfferService) List() ([]domain.Offer, error) {
	return s.repository.ListOffers()
}

func (s *OfferService) Get(id string) (*domain.Offer, error) {
	return s.repository.GetOffer(id)
}

func (s *OfferService) Create(payload domain.InsertOffer) (domain.Offer, error) {
	if err := validateOffer(payload); err != nil {
		return domain.Offer{}, err
	}
	offer := domain.Offer{
		Title:         payload.Title,
		TitleAr:       payload.TitleAr,
		Description:   payload.Description,
		DescriptionAr: payload.DescriptionAr,
		Discount:      *payload.Discount,
		Image:         payload.Image,
		ValidUntil:    payload.ValidUntil,
		IsActive:      boolOrDefault(payload.IsActive, true),
	}
	return s.repository.CreateOffer(offer)
}

func (s *OfferService) Update(id string, patch map[string]any) (*domain.Offer, error) {
	return s.repository.UpdateOffer(id, patch)
}

func (s *OfferService) Delete(id string) (bool, error) {
	return s.repository.DeleteOffer(id)
}

func validateOffer(payload domain.InsertOffer) error {
	required := map[string]string{
		"title":         payload.Title,
		"titleAr":       payload.TitleAr,
		"description":   payload.Description,
		"descriptionAr": payload.DescriptionAr,
		"image":         payload.Image,
		"validUntil":    payload.ValidUntil,
	}
	if err := requireStrings(required); err != nil {
		return err
	}
	if payload.Discount == nil {
		return fmt.Errorf("%w: discount is required", ErrValidation)
	}
	if *payload.Discount < 0 || *payload.Discount > 100 {
		return fmt.Errorf("%w: discount must be a percentage between 0 and 100", ErrValidation)
	}
	return nil
}
