package repository

import "parkhub-backend/internal/park/domain"

// ParkRepository defines data access for the parks catalog.
type ParkRepository interface {
	Create(park *domain.Park) error
	CreateAll(parks []*domain.Park) error
	FindByID(id uint) (*domain.Park, error)
	FindAll() ([]*domain.Park, error)
	FindByName(name string) ([]*domain.Park, error)
	Update(park *domain.Park) error
	Delete(id uint) error
	Count() (int64, error)
}
