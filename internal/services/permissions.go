package services

import (
	"github.com/google/uuid"

	"carlink/internal/models/db_models"
)

// CallerContext is the decoded caller identity attached by the JWT
// middleware. It is passed explicitly into every operation that needs
// authorization; there is no ambient request state.
type CallerContext struct {
	UserID uuid.UUID
	Role   db_models.Role
}

type Resource string

const (
	ResourceBooking Resource = "booking"
	ResourcePayment Resource = "payment"
	ResourceDispute Resource = "dispute"
	ResourceCar     Resource = "car"
)

type Action string

const (
	ActionRead   Action = "read"
	ActionWrite  Action = "write"
	ActionSettle Action = "settle"
	ActionAdmin  Action = "admin"
)

type permKey struct {
	resource Resource
	action   Action
}

// rolePolicy is resolved once at init; lookups are a plain map hit rather
// than per-request permission-row scans.
var rolePolicy = map[db_models.Role]map[permKey]bool{
	db_models.RoleGuest: {
		{ResourceCar, ActionRead}:      true,
		{ResourceBooking, ActionRead}:  true,
		{ResourceBooking, ActionWrite}: true,
		{ResourcePayment, ActionRead}:  true,
		{ResourceDispute, ActionWrite}: true,
		{ResourceDispute, ActionRead}:  true,
	},
	db_models.RoleHost: {
		{ResourceCar, ActionRead}:      true,
		{ResourceCar, ActionWrite}:     true,
		{ResourceBooking, ActionRead}:  true,
		{ResourceBooking, ActionWrite}: true,
		{ResourcePayment, ActionRead}:  true,
		{ResourceDispute, ActionWrite}: true,
		{ResourceDispute, ActionRead}:  true,
	},
	db_models.RoleSupport: {
		{ResourceCar, ActionRead}:      true,
		{ResourceBooking, ActionRead}:  true,
		{ResourcePayment, ActionRead}:  true,
		{ResourcePayment, ActionSettle}: true,
		{ResourceDispute, ActionRead}:  true,
	},
	db_models.RoleAdmin: {
		{ResourceCar, ActionRead}:       true,
		{ResourceCar, ActionWrite}:      true,
		{ResourceBooking, ActionRead}:   true,
		{ResourceBooking, ActionWrite}:  true,
		{ResourceBooking, ActionAdmin}:  true,
		{ResourcePayment, ActionRead}:   true,
		{ResourcePayment, ActionSettle}: true,
		{ResourceDispute, ActionRead}:   true,
		{ResourceDispute, ActionWrite}:  true,
		{ResourceDispute, ActionAdmin}:  true,
	},
}

func Can(role db_models.Role, resource Resource, action Action) bool {
	perms, ok := rolePolicy[role]
	if !ok {
		return false
	}
	return perms[permKey{resource, action}]
}

// CanSettlePayments gates release/refund: guests and hosts are never allowed
// to settle money, whatever else their role grants.
func CanSettlePayments(role db_models.Role) bool {
	if role == db_models.RoleGuest || role == db_models.RoleHost {
		return false
	}
	return Can(role, ResourcePayment, ActionSettle)
}

// IsAdminRole gates dispute transitions and booking force-cancel.
func IsAdminRole(role db_models.Role) bool {
	return Can(role, ResourceDispute, ActionAdmin)
}
