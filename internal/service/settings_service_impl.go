package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mwhite/chronoassist/internal/domain"
	"github.com/mwhite/chronoassist/internal/repository"
)

type settingsService struct {
	settings repository.SettingsRepo
}

func NewSettingsService(settings repository.SettingsRepo) SettingsService {
	return &settingsService{settings: settings}
}

func (s *settingsService) Get(ctx context.Context, userID string) (domain.UserSettings, error) {
	stored, err := s.settings.Get(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return domain.UserSettings{}, fmt.Errorf("loading settings: %w", err)
	}
	return domain.EffectiveSettings(stored), nil
}

func (s *settingsService) Save(ctx context.Context, userID string, patch domain.SettingsPatch) error {
	current, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.settings.Upsert(ctx, userID, patch.Apply(current)); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	return nil
}
