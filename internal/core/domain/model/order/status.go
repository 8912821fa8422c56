package order

// Status represents the lifecycle state of an order as reported by the
// external order service. It is the single source of truth for display
// labels, presentation categories, and the role-conditional transition rules
// consumed by the administrative and courier views.
//
// Happy-path progression:
//
//	pending ──> paid ──> in_preparation ──> ready ──> en_route ──> delivered
//
// Side branches: cancelled and refunded are reachable from paid,
// in_preparation, ready, and en_route; failed is reachable from en_route.
//
// Status is a string value object carrying the raw wire code. Codes outside
// the known set are tolerated: the backend may introduce new statuses without
// crashing this client, so unknown codes degrade to echoing the raw code and
// an empty transition set instead of failing.
type Status string

const (
	// Pending is the initial status before payment is captured.
	Pending Status = "pending"

	// Paid indicates payment was captured. Set by the payment callback,
	// never by an operator.
	Paid Status = "paid"

	// InPreparation indicates the kitchen is working on the order.
	InPreparation Status = "in_preparation"

	// Ready indicates the order awaits a courier claim.
	Ready Status = "ready"

	// EnRoute indicates a courier has taken the order out for delivery.
	EnRoute Status = "en_route"

	// Delivered is a final state: the order reached the customer.
	Delivered Status = "delivered"

	// Cancelled is a final state reachable from most non-final states.
	Cancelled Status = "cancelled"

	// Refunded is a final state set by the payment service after a refund.
	Refunded Status = "refunded"

	// Failed indicates a delivery attempt did not reach the customer.
	Failed Status = "failed"
)

// Category classifies a status for presentation purposes only.
type Category int

const (
	CategoryNeutral Category = iota
	CategoryInfo
	CategoryWarning
	CategorySuccess
	CategoryError
)

// String returns the category name used by views for styling.
func (c Category) String() string {
	switch c {
	case CategoryInfo:
		return "info"
	case CategoryWarning:
		return "warning"
	case CategorySuccess:
		return "success"
	case CategoryError:
		return "error"
	default:
		return "neutral"
	}
}

// Role is the acting role for a status change. Different roles see
// different permitted transitions.
type Role int

const (
	// RoleCustomer may not change order statuses at all.
	RoleCustomer Role = iota

	// RoleCourier fulfils ready/en_route orders.
	RoleCourier

	// RoleAdmin manages preparation and cancellation.
	RoleAdmin

	// RoleSuperAdmin holds the union of admin and courier capabilities.
	RoleSuperAdmin
)

// getStatusLabels returns the human-readable label for every known status.
func getStatusLabels() map[Status]string {
	return map[Status]string{
		Pending:       "Pending",
		Paid:          "Paid",
		InPreparation: "In preparation",
		Ready:         "Ready for delivery",
		EnRoute:       "En route",
		Delivered:     "Delivered",
		Cancelled:     "Cancelled",
		Refunded:      "Refunded",
		Failed:        "Delivery failed",
	}
}

// getStatusCategories returns the presentation category for every known status.
func getStatusCategories() map[Status]Category {
	return map[Status]Category{
		Pending:       CategoryNeutral,
		Paid:          CategoryInfo,
		InPreparation: CategoryInfo,
		Ready:         CategoryWarning,
		EnRoute:       CategoryInfo,
		Delivered:     CategorySuccess,
		Cancelled:     CategoryError,
		Refunded:      CategoryNeutral,
		Failed:        CategoryError,
	}
}

// getAdminTransitions returns the transitions an admin may perform.
//
// Paid is absent from every target set: it is driven by the payment callback
// and never operator-settable. Admins cannot skip preparation either, so
// pending never offers en_route. Failed deliveries may be sent out again or
// cancelled.
func getAdminTransitions() map[Status][]Status {
	return map[Status][]Status{
		Pending:       {Cancelled},
		Paid:          {InPreparation, Cancelled},
		InPreparation: {Ready, Cancelled},
		Ready:         {EnRoute, Delivered, Cancelled},
		EnRoute:       {Delivered, Cancelled},
		Failed:        {EnRoute, Cancelled},
	}
}

// getCourierTransitions returns the transitions a courier may perform:
// claim a ready order, then report the delivery outcome.
func getCourierTransitions() map[Status][]Status {
	return map[Status][]Status{
		Ready:   {EnRoute},
		EnRoute: {Delivered, Failed},
	}
}

// Known reports whether the status is part of the closed enumeration.
func (s Status) Known() bool {
	_, ok := getStatusLabels()[s]
	return ok
}

// IsTerminal reports whether the status permits no further transitions
// for any role. Failed is deliberately not terminal: an admin may retry
// or cancel a failed delivery.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled || s == Refunded
}

// DisplayLabel returns the human-readable label for the status.
// Unknown codes echo the raw code so a newer backend cannot break rendering.
func (s Status) DisplayLabel() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return string(s)
}

// DisplayCategory returns the presentation category for the status.
// Unknown codes degrade to CategoryNeutral.
func (s Status) DisplayCategory() Category {
	if category, ok := getStatusCategories()[s]; ok {
		return category
	}
	return CategoryNeutral
}

// AllowedNext returns the statuses the acting role may legally move this
// order to. Terminal and unknown statuses return an empty set, as does any
// role without status-change capability. Super-admins get the union of the
// admin and courier tables.
func (s Status) AllowedNext(role Role) []Status {
	switch role {
	case RoleAdmin:
		return getAdminTransitions()[s]
	case RoleCourier:
		return getCourierTransitions()[s]
	case RoleSuperAdmin:
		next := append([]Status(nil), getAdminTransitions()[s]...)
		for _, candidate := range getCourierTransitions()[s] {
			if !containsStatus(next, candidate) {
				next = append(next, candidate)
			}
		}
		return next
	default:
		return nil
	}
}

// CanTransition reports whether the acting role may move this order to next.
func (s Status) CanTransition(next Status, role Role) bool {
	return containsStatus(s.AllowedNext(role), next)
}

// RefundEligible reports whether cancelling an order in this status must
// trigger a refund. Payment is captured from paid onward; cancelling a
// pending order must NOT refund anything.
func (s Status) RefundEligible() bool {
	switch s {
	case Paid, InPreparation, Ready, EnRoute:
		return true
	default:
		return false
	}
}

func containsStatus(statuses []Status, candidate Status) bool {
	for _, s := range statuses {
		if s == candidate {
			return true
		}
	}
	return false
}
