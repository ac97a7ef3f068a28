package service

import (
	"fmt"

	"github.com/salah559/Box-eat/internal/domain"
)

type MenuService struct {
	repository MenuRepository
}

func NewMenuService(repository MenuRepository) *MenuService {
	return &MenuService{repository: repository}
}

func (s *MenuService) List() ([]domain.MenuItem, error) {
	return s.repository.ListMenuItems()
}

func (s *MenuService) Get(id string) (*domain.MenuItem, error) {
	return s.repository.GetMenuItem(id)
}

func (s *MenuService) Create(payload domain.InsertMenuItem) (domain.MenuItem, error) {
	if err := validateMenuItem(payload); err != nil {
		return domain.MenuItem{}, err
	}
	item := domain.MenuItem{
		Name:          payload.Name,
		NameAr:        payload.NameAr,
		Description:   payload.Description,
		DescriptionAr: payload.DescriptionAr,
		Price:         payload.Price,
		Category:      payload.Category,
		Image:         payload.Image,
		IsAvailable:   boolOrDefault(payload.IsAvailable, true),
		IsPopular:     boolOrDefault(payload.IsPopular, false),
		IsNew:         boolOrDefault(payload.IsNew, false),
	}
	return s.repository.CreateMenuItem(item)
}

// Update merges the patch as-is, without re-validating the result.
func (s *MenuService) Update(id string, patch map[string]any) (*domain.MenuItem, error) {
	return s.repository.UpdateMenuItem(id, patch)
}

func (s *MenuService) Delete(id string) (bool, error) {
	return s.repository.DeleteMenuItem(id)
}

func validateMenuItem(payload domain.InsertMenuItem) error {
	required := map[string]string{
		"name":          payload.Name,
		"nameAr":        payload.NameAr,
		"description":   payload.Description,
		"descriptionAr": payload.DescriptionAr,
		"price":         payload.Price,
		"category":      payload.Category,
		"image":         payload.Image,
	}
	return requireStrings(required)
}

func requireStrings(required map[string]string) error {
	for field, value := range required {
		if value == "" {
			return fmt.Errorf("%w: %s is required", ErrValidation, field)
		}
	}
	return nil
}

func boolOrDefault(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}
