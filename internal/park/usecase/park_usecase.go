package usecase

import (
	"log"

	authUsecase "parkhub-backend/internal/auth/usecase"
	"parkhub-backend/internal/park/domain"
	"parkhub-backend/internal/park/repository"
	"parkhub-backend/pkg/response"
)

// ParkUsecase exposes the parks catalog operations.
type ParkUsecase interface {
	GetParks(parkName string) *response.Result
	GetPark(id uint) *response.Result
	AddPark(bearerToken string, park *domain.Park) *response.Result
	UpdatePark(bearerToken string, park *domain.Park) *response.Result
	DeletePark(bearerToken string, id uint) *response.Result
}

type parkUsecase struct {
	parkRepo repository.ParkRepository
	authz    authUsecase.Authorizer
}

func NewParkUsecase(parkRepo repository.ParkRepository, authz authUsecase.Authorizer) ParkUsecase {
	return &parkUsecase{
		parkRepo: parkRepo,
		authz:    authz,
	}
}

func (u *parkUsecase) GetParks(parkName string) *response.Result {
	var (
		parks []*domain.Park
		err   error
	)
	if parkName == "" {
		parks, err = u.parkRepo.FindAll()
	} else {
		parks, err = u.parkRepo.FindByName(parkName)
	}
	if err != nil {
		log.Printf("[ERROR] retrieving parks: %v", err)
		return response.Fail("Error retrieving parks")
	}
	return &response.Result{Success: true, Data: parks}
}

func (u *parkUsecase) GetPark(id uint) *response.Result {
	park, err := u.parkRepo.FindByID(id)
	if err != nil {
		log.Printf("[ERROR] retrieving park %d: %v", id, err)
		return response.Fail("Error retrieving park")
	}
	if park == nil {
		return response.Fail("Park not found")
	}
	return response.Ok(park)
}

func (u *parkUsecase) AddPark(bearerToken string, park *domain.Park) *response.Result {
	if !u.authorised(bearerToken) {
		return response.Fail("User not authorised")
	}
	if err := u.parkRepo.Create(park); err != nil {
		log.Printf("[ERROR] adding park: %v", err)
		return response.Fail("Error adding park")
	}
	return response.Ok("Park added successfully")
}

func (u *parkUsecase) UpdatePark(bearerToken string, park *domain.Park) *response.Result {
	if !u.authorised(bearerToken) {
		return response.Fail("User not authorised")
	}
	if err := u.parkRepo.Update(park); err != nil {
		log.Printf("[ERROR] updating park: %v", err)
		return response.Fail("Error updating park")
	}
	return response.Ok("Park updated successfully")
}

func (u *parkUsecase) DeletePark(bearerToken string, id uint) *response.Result {
	if !u.authorised(bearerToken) {
		return response.Fail("User not authorised")
	}
	if err := u.parkRepo.Delete(id); err != nil {
		log.Printf("[ERROR] deleting park %d: %v", id, err)
		return response.Fail("Error deleting park")
	}
	return response.Ok("Park deleted successfully")
}

func (u *parkUsecase) authorised(bearerToken string) bool {
	user, err := u.authz.GetUserByToken(bearerToken)
	return err == nil && user != nil
}
