package domain

// ScopeKind is the breadth of organizational visibility an actor holds.
type ScopeKind string

const (
	// ScopeCompany grants visibility over every group and user of one company.
	ScopeCompany ScopeKind = "COMPANY"
	// ScopeGroup grants visibility over one group and its users.
	ScopeGroup ScopeKind = "GROUP"
	// ScopeSelf is the most restrictive scope: the actor's own records only.
	// It is the fallback whenever no group can be resolved for the actor.
	ScopeSelf ScopeKind = "SELF"
)

// Scope is the result of resolving an actor's role and group membership into
// a concrete set of observable entities. Exactly one of CompanyID, GroupID or
// UserID is populated, matching Kind.
type Scope struct {
	Kind      ScopeKind `json:"kind"`
	CompanyID string    `json:"companyID,omitempty"`
	GroupID   string    `json:"groupID,omitempty"`
	UserID    string    `json:"userID,omitempty"`
}
