package interfaces

import (
	"context"
	"quote_service/internal/domain/entities"
)

//go:generate mockgen -source=settings_repository_interface.go -destination=mocks/settings_repository_interface_mock.go -package=mock_interfaces

// ISettingsRepository abstracts persistence for the single CompanySettings row.
// Get returns zero settings when nothing has been saved yet.
type ISettingsRepository interface {
	Get(ctx context.Context) (entities.CompanySettings, error)
	Save(ctx context.Context, s entities.CompanySettings) error
}
