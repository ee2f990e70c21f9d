// Package access builds the permission-denial copy shown when a user lacks a grant.
package access

import (
	"fmt"
	"strings"

	"github.com/spec-kit/account-console/internal/domain"
)

// ActionType is the verb used in a restricted-resource message.
type ActionType string

const (
	ActionClone   ActionType = "clone"
	ActionCreate  ActionType = "create"
	ActionDelete  ActionType = "delete"
	ActionEdit    ActionType = "edit"
	ActionMigrate ActionType = "migrate"
	ActionModify  ActionType = "modify"
	ActionReboot  ActionType = "reboot"
	ActionRebuild ActionType = "rebuild"
	ActionRescue  ActionType = "rescue"
	ActionResize  ActionType = "resize"
	ActionView    ActionType = "view"
)

var actions = map[ActionType]struct{}{
	ActionClone: {}, ActionCreate: {}, ActionDelete: {}, ActionEdit: {},
	ActionMigrate: {}, ActionModify: {}, ActionReboot: {}, ActionRebuild: {},
	ActionRescue: {}, ActionResize: {}, ActionView: {},
}

// ParseAction returns the action for s. An empty string yields ActionEdit.
func ParseAction(s string) (ActionType, bool) {
	if s == "" {
		return ActionEdit, true
	}
	a := ActionType(strings.ToLower(s))
	_, ok := actions[a]
	return a, ok
}

const contactAdministrator = " Please contact your account administrator to request the necessary permissions."

// RestrictedResourceParams describes a restricted-resource message. The zero
// value of every optional field selects the default: edit, singular, with the
// contact sentence.
type RestrictedResourceParams struct {
	Action             ActionType
	ResourceType       string
	Plural             bool
	OmitContactMessage bool
}

// RestrictedResourceMessage formats the message shown when the user may not act on a resource.
func RestrictedResourceMessage(p RestrictedResourceParams) string {
	action := p.Action
	if action == "" {
		action = ActionEdit
	}

	resource := p.ResourceType
	if !p.Plural {
		resource = "this " + strings.TrimSuffix(resource, "s")
	}

	msg := fmt.Sprintf("You don't have permissions to %s %s.", action, resource)
	if !p.OmitContactMessage {
		msg += contactAdministrator
	}
	return msg
}

// AccessRestrictedMessage formats the generic access-restricted notice. Child
// accounts are pointed at their business partner only when the parent/child
// feature is enabled.
func AccessRestrictedMessage(userType domain.UserType, parentChildEnabled bool) string {
	contact := "account administrator"
	if parentChildEnabled && userType == domain.UserTypeChild {
		contact = "business partner"
	}
	return fmt.Sprintf("Access restricted. Please contact your %s to request the necessary permission.", contact)
}
