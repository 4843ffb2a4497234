package response

import "quote_service/internal/domain/entities"

type SettingsResponse struct {
	CompanyName        string `json:"company_name"`
	ZipCode            string `json:"zip_code"`
	Address            string `json:"address"`
	Tel                string `json:"tel"`
	Email              string `json:"email"`
	RegistrationNumber string `json:"registration_number"`
}

func FromSettings(s entities.CompanySettings) SettingsResponse {
	return SettingsResponse{
		CompanyName:        s.CompanyName,
		ZipCode:            s.ZipCode,
		Address:            s.Address,
		Tel:                s.Tel,
		Email:              s.Email,
		RegistrationNumber: s.RegistrationNumber,
	}
}
