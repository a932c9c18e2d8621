package domain

// Group belongs to exactly one company and owns zero or more users.
type Group struct {
	GroupID     string `json:"groupID"` // Primary key (UUID)
	Name        string `json:"name"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
	CompanyID   string `json:"companyID"` // FK -> companies.company_id
	IsActive    bool   `json:"isActive"`
	AuditFields
}
