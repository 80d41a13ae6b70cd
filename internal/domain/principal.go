package domain

// Principal is the identity of the signed-in user as reported by the
// session provider.
type Principal struct {
	UserID           string   `json:"userId"`
	UserDetails      string   `json:"userDetails"`
	IdentityProvider string   `json:"identityProvider"`
	UserRoles        []string `json:"userRoles"`
}

// Equal compares two principals, treating nil as signed out.
func (p *Principal) Equal(other *Principal) bool {
	if p == nil || other == nil {
		return p == nil && other == nil
	}
	if p.UserID != other.UserID || p.UserDetails != other.UserDetails || p.IdentityProvider != other.IdentityProvider {
		return false
	}
	if len(p.UserRoles) != len(other.UserRoles) {
		return false
	}
	for i := range p.UserRoles {
		if p.UserRoles[i] != other.UserRoles[i] {
			return false
		}
	}
	return true
}

// DisplayName returns the most readable name available.
func (p *Principal) DisplayName() string {
	if p == nil {
		return ""
	}
	if p.UserDetails != "" {
		return p.UserDetails
	}
	return p.UserID
}
