package service

import (
	"fmt"

	"vip_gate_bot/internal/models"
	"vip_gate_bot/internal/repository"
)

type Stats struct {
	TotalUsers int64 `json:"total_users"`
	VIPUsers   int64 `json:"vip_users"`
}

type UserService interface {
	EnsureUser(id int64, username string) error
	GetUser(id int64) (*models.User, error)
	IsVIP(id int64) (bool, error)
	GrantVIP(id int64) error
	RevokeVIP(id int64) error
	GetStats() (*Stats, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

func (s *userService) EnsureUser(id int64, username string) error {
	if err := s.userRepo.EnsureUser(id, username); err != nil {
		return fmt.Errorf("failed to ensure user: %w", err)
	}
	return nil
}

func (s *userService) GetUser(id int64) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

func (s *userService) IsVIP(id int64) (bool, error) {
	return s.userRepo.IsVIP(id)
}

// GrantVIP flips the flag for an existing user. Granting to an unknown id is
// a silent no-op, mirroring the store semantics.
func (s *userService) GrantVIP(id int64) error {
	return s.userRepo.SetVIP(id, true)
}

func (s *userService) RevokeVIP(id int64) error {
	return s.userRepo.SetVIP(id, false)
}

func (s *userService) GetStats() (*Stats, error) {
	total, err := s.userRepo.CountUsers()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	vip, err := s.userRepo.CountVIP()
	if err != nil {
		return nil, fmt.Errorf("failed to count vip users: %w", err)
	}
	return &Stats{TotalUsers: total, VIPUsers: vip}, nil
}
