package services

import (
	"storefront/internal/models"
	"storefront/internal/repository"

	"gorm.io/gorm"
)

type UserService interface {
	GetUserByID(id uint) (*models.User, error)
	UpdateProfile(user *models.User) error
	GetAllUsers() ([]models.User, error)

	CreateAddress(address *models.Address) error
	GetAddresses(userID uint) ([]models.Address, error)
	GetAddress(id, userID uint) (*models.Address, error)
	UpdateAddress(address *models.Address) error
	DeleteAddress(id, userID uint) error
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdateProfile(user *models.User) error {
	return s.userRepo.Update(user)
}

func (s *userService) GetAllUsers() ([]models.User, error) {
	return s.userRepo.GetAll()
}

func (s *userService) CreateAddress(address *models.Address) error {
	return s.userRepo.CreateAddress(address)
}

func (s *userService) GetAddresses(userID uint) ([]models.Address, error) {
	return s.userRepo.GetAddressesByUserID(userID)
}

func (s *userService) GetAddress(id, userID uint) (*models.Address, error) {
	address, err := s.userRepo.GetAddressByID(id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if address.UserID != userID {
		return nil, ErrUserNotFound
	}
	return address, nil
}

func (s *userService) UpdateAddress(address *models.Address) error {
	return s.userRepo.UpdateAddress(address)
}

func (s *userService) DeleteAddress(id, userID uint) error {
	if _, err := s.GetAddress(id, userID); err != nil {
		return err
	}
	return s.userRepo.DeleteAddress(id)
}
