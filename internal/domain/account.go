package domain

// Role identifies which switchable account identity a token record belongs to.
type Role string

const (
	RoleParent Role = "parent"
	RoleProxy  Role = "proxy"
)

// Valid reports whether r is one of the switchable roles.
func (r Role) Valid() bool {
	return r == RoleParent || r == RoleProxy
}

// UserType is the account type reported by the profile API.
type UserType string

const (
	UserTypeParent  UserType = "parent"
	UserTypeChild   UserType = "child"
	UserTypeProxy   UserType = "proxy"
	UserTypeDefault UserType = "default"
)

// Valid reports whether u is a known user type.
func (u UserType) Valid() bool {
	switch u {
	case UserTypeParent, UserTypeChild, UserTypeProxy, UserTypeDefault:
		return true
	}
	return false
}

// CanSwitchAccounts reports whether the user type may swap between parent and proxy tokens.
func (u UserType) CanSwitchAccounts() bool {
	return u == UserTypeParent || u == UserTypeProxy
}
