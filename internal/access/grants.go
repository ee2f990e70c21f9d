package access

import (
	"errors"
	"fmt"
)

// GlobalGrantType names an account-wide grant.
type GlobalGrantType string

const (
	GrantAccountAccess        GlobalGrantType = "account_access"
	GrantAddDatabases         GlobalGrantType = "add_databases"
	GrantAddDomains           GlobalGrantType = "add_domains"
	GrantAddFirewalls         GlobalGrantType = "add_firewalls"
	GrantAddImages            GlobalGrantType = "add_images"
	GrantAddLinodes           GlobalGrantType = "add_linodes"
	GrantAddLongview          GlobalGrantType = "add_longview"
	GrantAddNodeBalancers     GlobalGrantType = "add_nodebalancers"
	GrantAddStackScripts      GlobalGrantType = "add_stackscripts"
	GrantAddVolumes           GlobalGrantType = "add_volumes"
	GrantAddVPCs              GlobalGrantType = "add_vpcs"
	GrantCancelAccount        GlobalGrantType = "cancel_account"
	GrantChildAccountAccess   GlobalGrantType = "child_account_access"
	GrantLongviewSubscription GlobalGrantType = "longview_subscription"
)

var globalGrantTypes = map[GlobalGrantType]struct{}{
	GrantAccountAccess: {}, GrantAddDatabases: {}, GrantAddDomains: {},
	GrantAddFirewalls: {}, GrantAddImages: {}, GrantAddLinodes: {},
	GrantAddLongview: {}, GrantAddNodeBalancers: {}, GrantAddStackScripts: {},
	GrantAddVolumes: {}, GrantAddVPCs: {}, GrantCancelAccount: {},
	GrantChildAccountAccess: {}, GrantLongviewSubscription: {},
}

// GrantLevel is the permission tier attached to a grant.
type GrantLevel string

const (
	GrantLevelNone      GrantLevel = ""
	GrantLevelReadOnly  GrantLevel = "read_only"
	GrantLevelReadWrite GrantLevel = "read_write"
)

var (
	ErrUnknownGrantType   = errors.New("unknown global grant type")
	ErrUnknownGrantLevel  = errors.New("unknown grant level")
	ErrGrantLevelRequired = errors.New("account_access grant requires a permitted grant level")
)

// GlobalGrant is a restricted global grant. Only account_access carries a
// mandatory grant level.
type GlobalGrant struct {
	Type  GlobalGrantType `json:"globalGrantType"`
	Level GrantLevel      `json:"permittedGrantLevel,omitempty"`
}

// NewGlobalGrant builds and validates a grant descriptor.
func NewGlobalGrant(t GlobalGrantType, level GrantLevel) (GlobalGrant, error) {
	g := GlobalGrant{Type: t, Level: level}
	if err := g.Validate(); err != nil {
		return GlobalGrant{}, err
	}
	return g, nil
}

// Validate checks the grant against the account_access rule.
func (g GlobalGrant) Validate() error {
	if _, ok := globalGrantTypes[g.Type]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownGrantType, g.Type)
	}
	switch g.Level {
	case GrantLevelNone, GrantLevelReadOnly, GrantLevelReadWrite:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownGrantLevel, g.Level)
	}
	if g.Type == GrantAccountAccess && g.Level == GrantLevelNone {
		return ErrGrantLevelRequired
	}
	return nil
}
