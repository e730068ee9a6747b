package model

import "errors"

var (
	// ErrSportExists indicates that a sport with the given ID already exists.
	ErrSportExists = errors.New("sport already exists")
	// ErrSportNotFound indicates that the requested sport does not exist.
	ErrSportNotFound = errors.New("sport not found")
	// ErrInvalidSportID indicates that the provided sport ID is invalid (e.g., empty).
	ErrInvalidSportID = errors.New("sport_id must be between 1 and 255 characters")
	// ErrInvalidFee indicates that the fee is negative.
	ErrInvalidFee = errors.New("fee must be non-negative")
	// ErrInvalidTeamSize indicates inconsistent team size bounds.
	ErrInvalidTeamSize = errors.New("team_size_min must be between 1 and team_size_max")
	// ErrInvalidCapacity indicates a non-positive participant capacity.
	ErrInvalidCapacity = errors.New("max_participants must be positive when set")
	// ErrInvalidWindow indicates that the registration window is inverted.
	ErrInvalidWindow = errors.New("registration_deadline must not precede registration_start")
	// ErrFieldFrozen indicates an edit to a field that would retroactively
	// invalidate registrations already referencing the sport.
	ErrFieldFrozen = errors.New("field cannot be changed while registrations reference this sport")
)
