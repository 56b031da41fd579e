package repository

import (
	"errors"
	"time"

	"parkhub-backend/internal/park/domain"

	"gorm.io/gorm"
)

// gormParkRepository implements ParkRepository using GORM
type gormParkRepository struct {
	db *gorm.DB
}

func NewGormParkRepository(db *gorm.DB) ParkRepository {
	return &gormParkRepository{db: db}
}

func (r *gormParkRepository) Create(park *domain.Park) error {
	park.CreatedAt = time.Now()
	park.UpdatedAt = time.Now()
	return r.db.Create(park).Error
}

func (r *gormParkRepository) CreateAll(parks []*domain.Park) error {
	now := time.Now()
	for _, p := range parks {
		if p.CreatedAt.IsZero() {
			p.CreatedAt = now
		}
		p.UpdatedAt = now
	}
	return r.db.Create(parks).Error
}

func (r *gormParkRepository) FindByID(id uint) (*domain.Park, error) {
	var park domain.Park
	err := r.db.Where("id = ?", id).First(&park).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &park, nil
}

func (r *gormParkRepository) FindAll() ([]*domain.Park, error) {
	var parks []*domain.Park
	err := r.db.Order("name ASC").Find(&parks).Error
	return parks, err
}

func (r *gormParkRepository) FindByName(name string) ([]*domain.Park, error) {
	var parks []*domain.Park
	err := r.db.Where("name ILIKE ?", "%"+name+"%").Order("name ASC").Find(&parks).Error
	return parks, err
}

func (r *gormParkRepository) Update(park *domain.Park) error {
	park.UpdatedAt = time.Now()
	return r.db.Save(park).Error
}

func (r *gormParkRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Park{}, "id = ?", id).Error
}

func (r *gormParkRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&domain.Park{}).Count(&count).Error
	return count, err
}
