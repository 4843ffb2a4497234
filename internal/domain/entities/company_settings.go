package entities

// CompanySettings holds the issuer's own business details printed on quotes.
//
// Storage model (DynamoDB):
//   - PK: id (a single row keyed by CompanySettingsID)
//
// RegistrationNumber is the qualified invoice issuer number (適格請求書発行事業者
// 登録番号), "T" followed by 13 digits.
type CompanySettings struct {
	CompanyName        string `json:"company_name"`
	ZipCode            string `json:"zip_code"`
	Address            string `json:"address"`
	Tel                string `json:"tel"`
	Email              string `json:"email"`
	RegistrationNumber string `json:"registration_number"`
}

const CompanySettingsID = "company"
