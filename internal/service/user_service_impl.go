package service

import (
	"context"
	"fmt"

	"github.com/mwhite/chronoassist/internal/repository"
)

type userService struct {
	provision repository.ProvisionRepo
}

func NewUserService(provision repository.ProvisionRepo) UserService {
	return &userService{provision: provision}
}

func (s *userService) Ensure(ctx context.Context, userID string) error {
	if err := s.provision.EnsureUser(ctx, userID); err != nil {
		return fmt.Errorf("ensuring user records: %w", err)
	}
	return nil
}
