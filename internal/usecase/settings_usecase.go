package usecase

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"

	"quote_service/internal/domain/entities"
	"quote_service/internal/usecase/interfaces"
)

var (
	ErrInvalidRegistrationNumber = errors.New("invalid registration number")
	ErrSettingsRepoUnavailable   = errors.New("settings repository not configured")
)

var registrationNumberPattern = regexp.MustCompile(`^T\d{13}$`)

//go:generate mockgen -source=settings_usecase.go -destination=../adapter/http/handlers/mocks/settings_usecase_mock.go -package=mocks

// ISettingsUseCase reads and writes the issuer details printed on quotes.
type ISettingsUseCase interface {
	Get(ctx context.Context) (entities.CompanySettings, error)
	Save(ctx context.Context, s entities.CompanySettings) (entities.CompanySettings, error)
}

type SettingsUseCase struct {
	repo interfaces.ISettingsRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(repo interfaces.ISettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

func (u *SettingsUseCase) Get(ctx context.Context) (entities.CompanySettings, error) {
	if u.repo == nil {
		return entities.CompanySettings{}, ErrSettingsRepoUnavailable
	}
	return u.repo.Get(ctx)
}

func (u *SettingsUseCase) Save(ctx context.Context, s entities.CompanySettings) (entities.CompanySettings, error) {
	s = entities.CompanySettings{
		CompanyName:        strings.TrimSpace(s.CompanyName),
		ZipCode:            strings.TrimSpace(s.ZipCode),
		Address:            strings.TrimSpace(s.Address),
		Tel:                strings.TrimSpace(s.Tel),
		Email:              strings.TrimSpace(s.Email),
		RegistrationNumber: strings.TrimSpace(s.RegistrationNumber),
	}
	if s.RegistrationNumber != "" && !registrationNumberPattern.MatchString(s.RegistrationNumber) {
		return entities.CompanySettings{}, ErrInvalidRegistrationNumber
	}
	if u.repo == nil {
		return entities.CompanySettings{}, ErrSettingsRepoUnavailable
	}

	if err := u.repo.Save(ctx, s); err != nil {
		log.Printf("[settings][usecase] save failed err=%v", err)
		return entities.CompanySettings{}, err
	}
	log.Printf("[settings][usecase] saved company=%q", s.CompanyName)
	return s, nil
}
