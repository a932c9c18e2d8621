package domain

// Company is the top of the organizational hierarchy. It owns groups, which
// in turn own users. Companies are only ever soft-deactivated.
type Company struct {
	CompanyID string `json:"companyID"` // Primary key (UUID)
	TaxID     string `json:"taxID"`     // CNPJ, natural key kept as a plain attribute
	Name      string `json:"name"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	IsActive  bool   `json:"isActive"`
	AuditFields
}
