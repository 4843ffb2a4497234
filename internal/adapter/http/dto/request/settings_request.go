package request

import "quote_service/internal/domain/entities"

type SettingsRequest struct {
	CompanyName        string `json:"company_name"`
	ZipCode            string `json:"zip_code"`
	Address            string `json:"address"`
	Tel                string `json:"tel"`
	Email              string `json:"email"`
	RegistrationNumber string `json:"registration_number"`
}

func (r SettingsRequest) ToEntity() entities.CompanySettings {
	return entities.CompanySettings{
		CompanyName:        r.CompanyName,
		ZipCode:            r.ZipCode,
		Address:            r.Address,
		Tel:                r.Tel,
		Email:              r.Email,
		RegistrationNumber: r.RegistrationNumber,
	}
}
