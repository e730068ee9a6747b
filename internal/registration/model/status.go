package model

// Status is the lifecycle state of a registration.
type Status string

// Registration lifecycle states.
const (
	StatusPending        Status = "pending"
	StatusPaymentPending Status = "payment_pending"
	StatusWaitlist       Status = "waitlist"
	StatusConfirmed      Status = "confirmed"
	StatusCancelled      Status = "cancelled"
	StatusWithdrawn      Status = "withdrawn"
)

// transitions is the set of legal state changes. Confirmed registrations
// can still be cancelled when the sport itself is cancelled; cancelled and
// withdrawn are final.
var transitions = map[Status]map[Status]bool{
	StatusPending: {
		StatusConfirmed: true,
		StatusWithdrawn: true,
		StatusCancelled: true,
	},
	StatusPaymentPending: {
		StatusConfirmed: true,
		StatusWithdrawn: true,
		StatusCancelled: true,
	},
	StatusWaitlist: {
		StatusPending:        true,
		StatusPaymentPending: true,
		StatusWithdrawn:      true,
		StatusCancelled:      true,
	},
	StatusConfirmed: {
		StatusCancelled: true,
	},
}

// CanTransition reports whether moving from one status to another is legal.
func CanTransition(from, to Status) bool {
	return transitions[from][to]
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusWithdrawn
}

// HoldsSlot reports whether a registration in this status counts against
// the sport's capacity. Waitlisted registrations do not hold a slot.
func (s Status) HoldsSlot() bool {
	return s == StatusPending || s == StatusPaymentPending || s == StatusConfirmed
}

// Editable reports whether team details may still be changed.
// Edits are frozen once the registration reaches a terminal state.
func (s Status) Editable() bool {
	return s == StatusPending || s == StatusPaymentPending || s == StatusWaitlist
}

// Payable reports whether a payment order may be created for this status.
func (s Status) Payable() bool {
	return s == StatusPending || s == StatusPaymentPending
}

// SlotHoldingStatuses returns the statuses that consume capacity, for use
// in repository queries.
func SlotHoldingStatuses() []Status {
	return []Status{StatusPending, StatusPaymentPending, StatusConfirmed}
}

// ActiveStatuses returns the statuses that make a registration count as
// the user's live entry for a sport: they block re-registration and are
// cancelled when the sport is cancelled.
func ActiveStatuses() []Status {
	return []Status{StatusPending, StatusPaymentPending, StatusWaitlist, StatusConfirmed}
}

// WithdrawableStatuses returns the statuses from which the owner may still
// withdraw. A confirmed registration cannot be withdrawn.
func WithdrawableStatuses() []Status {
	return []Status{StatusPending, StatusPaymentPending, StatusWaitlist}
}

// EditableStatuses returns the statuses in which team details may still be
// changed, for use in conditional updates. Mirrors Status.Editable.
func EditableStatuses() []Status {
	return []Status{StatusPending, StatusPaymentPending, StatusWaitlist}
}
