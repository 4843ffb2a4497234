package postgres

import (
	"context"
	"errors"

	"quote_service/internal/domain/entities"
	"quote_service/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

type SettingsRepository struct {
	db DBTX
}

var _ interfaces.ISettingsRepository = (*SettingsRepository)(nil)

func NewSettingsRepository(db DBTX) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns zero settings when nothing has been saved yet.
func (r *SettingsRepository) Get(ctx context.Context) (entities.CompanySettings, error) {
	var s entities.CompanySettings
	err := r.db.QueryRow(ctx, `
		SELECT company_name, zip_code, address, tel, email, registration_number
		FROM company_settings WHERE id = $1`, entities.CompanySettingsID).
		Scan(&s.CompanyName, &s.ZipCode, &s.Address, &s.Tel, &s.Email, &s.RegistrationNumber)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.CompanySettings{}, nil
	}
	if err != nil {
		return entities.CompanySettings{}, err
	}
	return s, nil
}

func (r *SettingsRepository) Save(ctx context.Context, s entities.CompanySettings) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO company_settings (id, company_name, zip_code, address, tel, email, registration_number)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			zip_code = EXCLUDED.zip_code,
			address = EXCLUDED.address,
			tel = EXCLUDED.tel,
			email = EXCLUDED.email,
			registration_number = EXCLUDED.registration_number`,
		entities.CompanySettingsID, s.CompanyName, s.ZipCode, s.Address, s.Tel, s.Email, s.RegistrationNumber,
	)
	return err
}
