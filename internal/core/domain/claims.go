package domain

// Claims are the identity fields decoded from a bearer token.
type Claims struct {
	UserID string
	Email  string
	Role   string
}

// CanAccess reports whether the caller may touch a resource owned by
// ownerID: admins always, everyone else only their own records.
func (c Claims) CanAccess(ownerID string) bool {
	return c.Role == RoleAdmin || c.UserID == ownerID
}

// ScopeOwner returns the owner filter to apply to queries on behalf of the
// caller: empty (unrestricted) for admins, the caller's own id otherwise.
func (c Claims) ScopeOwner() string {
	if c.Role == RoleAdmin {
		return ""
	}
	return c.UserID
}
