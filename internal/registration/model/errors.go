package model

import "errors"

// Team composition violations.
var (
	// ErrNotATeamEvent indicates team members were supplied for an individual sport.
	ErrNotATeamEvent = errors.New("sport is not a team event")
	// ErrTooFewMembers indicates the member list is below the sport's minimum.
	ErrTooFewMembers = errors.New("too few team members")
	// ErrTooManyMembers indicates the member list exceeds the sport's maximum.
	ErrTooManyMembers = errors.New("too many team members")
	// ErrNoCaptain indicates the team has no captain at position 0.
	ErrNoCaptain = errors.New("team must have exactly one captain as the first member")
	// ErrDuplicateCaptain indicates more than one member is flagged captain.
	ErrDuplicateCaptain = errors.New("team has more than one captain")
	// ErrMemberNameMissing indicates a member without a name.
	ErrMemberNameMissing = errors.New("every team member must have a name")
	// ErrTeamRequired indicates a team event registration without a team payload.
	ErrTeamRequired = errors.New("team details are required for a team event")
)

// Lifecycle and allocation errors.
var (
	// ErrRegistrationNotFound indicates the requested registration does not exist.
	ErrRegistrationNotFound = errors.New("registration not found")
	// ErrDeadlinePassed indicates the registration deadline has passed.
	ErrDeadlinePassed = errors.New("registration deadline has passed")
	// ErrRegistrationClosed indicates registration is closed: capacity is
	// exhausted without a waitlist, the window has not opened, or the sport
	// was soft-closed by an administrator.
	ErrRegistrationClosed = errors.New("registration is closed")
	// ErrAlreadyRegistered indicates the user already holds a non-terminal
	// registration for the sport.
	ErrAlreadyRegistered = errors.New("an active registration already exists for this sport")
	// ErrAlreadyConfirmed indicates a concurrent payment success landed first.
	ErrAlreadyConfirmed = errors.New("registration is already confirmed")
	// ErrEditNotAllowed indicates team edits are frozen for the current status.
	ErrEditNotAllowed = errors.New("team edits are not allowed in the current status")
	// ErrWithdrawNotAllowed indicates the registration is already terminal.
	ErrWithdrawNotAllowed = errors.New("registration can no longer be withdrawn")
	// ErrNotOnWaitlist indicates a promotion attempt for a registration that
	// is not waitlisted.
	ErrNotOnWaitlist = errors.New("registration is not on the waitlist")
	// ErrNotOwner indicates the caller does not own the registration.
	ErrNotOwner = errors.New("registration belongs to another user")
)
