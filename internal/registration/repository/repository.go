// Package repository provides data access layer for registration module.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	registrationModel "github.com/festhub/sportsfest-api/internal/registration/model"
)

// Repository defines the interface for registration data access operations.
type Repository interface {
	// Create inserts a registration with its team members and assigns the
	// registration number.
	Create(ctx context.Context, reg *registrationModel.Registration, members []registrationModel.TeamMember) error

	// GetByID finds a registration by id.
	GetByID(ctx context.Context, id int64) (*registrationModel.Registration, error)

	// GetMembers returns the team members of a registration ordered by position.
	GetMembers(ctx context.Context, registrationID int64) ([]registrationModel.TeamMember, error)

	// HasActiveForUser reports whether the user already holds an active
	// registration for the sport.
	HasActiveForUser(ctx context.Context, userID, sportID string) (bool, error)

	// CountSlotHolders counts registrations that consume a capacity slot.
	CountSlotHolders(ctx context.Context, sportID string) (int64, error)

	// UpdateStatusFrom conditionally moves a registration from one of the
	// given statuses to a new status, applying extra column updates in the
	// same statement. Returns false when the registration was not in any of
	// the expected statuses (the compare-and-swap lost).
	UpdateStatusFrom(
		ctx context.Context,
		id int64,
		from []registrationModel.Status,
		to registrationModel.Status,
		extra map[string]interface{},
	) (bool, error)

	// CancelBySport moves every active registration of a sport to
	// cancelled and returns the affected registrations.
	CancelBySport(ctx context.Context, sportID string) ([]registrationModel.Registration, error)

	// ReplaceTeam atomically replaces the team name and member list.
	// Returns ErrEditNotAllowed when the registration is no longer editable,
	// so a caller's transaction rolls the member changes back.
	ReplaceTeam(ctx context.Context, registrationID int64, teamName string, members []registrationModel.TeamMember) error

	// ListByUser returns all registrations owned by a user, newest first.
	ListByUser(ctx context.Context, userID string) ([]registrationModel.Registration, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new registration repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts a registration with its team members and assigns the
// registration number derived from the generated id.
func (r *repository) Create(
	ctx context.Context,
	reg *registrationModel.Registration,
	members []registrationModel.TeamMember,
) error {
	if err := r.db.WithContext(ctx).Create(reg).Error; err != nil {
		if isDuplicateError(err) {
			return registrationModel.ErrAlreadyRegistered
		}
		return err
	}

	reg.RegistrationNumber = fmt.Sprintf("SF-%06d", reg.ID)
	err := r.db.WithContext(ctx).
		Model(&registrationModel.Registration{}).
		Where("id = ?", reg.ID).
		Update("registration_number", reg.RegistrationNumber).Error
	if err != nil {
		return err
	}

	for i := range members {
		members[i].RegistrationID = reg.ID
		members[i].Position = i
	}
	if len(members) > 0 {
		if err := r.db.WithContext(ctx).Create(&members).Error; err != nil {
			return err
		}
	}

	return nil
}

// isDuplicateError checks if error is a duplicate key error.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// GetByID finds a registration by id.
func (r *repository) GetByID(ctx context.Context, id int64) (*registrationModel.Registration, error) {
	var reg registrationModel.Registration
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reg).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, registrationModel.ErrRegistrationNotFound
		}
		return nil, err
	}

	return &reg, nil
}

// GetMembers returns the team members of a registration ordered by position.
func (r *repository) GetMembers(
	ctx context.Context,
	registrationID int64,
) ([]registrationModel.TeamMember, error) {
	var members []registrationModel.TeamMember
	err := r.db.WithContext(ctx).
		Where("registration_id = ?", registrationID).
		Order("position ASC").
		Find(&members).Error

	if err != nil {
		return nil, err
	}

	if members == nil {
		return []registrationModel.TeamMember{}, nil
	}

	return members, nil
}

// HasActiveForUser reports whether the user already holds an active
// registration for the sport.
func (r *repository) HasActiveForUser(ctx context.Context, userID, sportID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&registrationModel.Registration{}).
		Where("user_id = ? AND sport_id = ? AND status IN ?",
			userID, sportID, registrationModel.ActiveStatuses()).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// CountSlotHolders counts registrations that consume a capacity slot.
// Waitlisted and terminal-failed registrations do not count.
func (r *repository) CountSlotHolders(ctx context.Context, sportID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&registrationModel.Registration{}).
		Where("sport_id = ? AND status IN ?", sportID, registrationModel.SlotHoldingStatuses()).
		Count(&count).Error

	if err != nil {
		return 0, err
	}

	return count, nil
}

// UpdateStatusFrom conditionally moves a registration to a new status.
// The WHERE clause on the current status is the per-registration
// serialization point: of two concurrent transitions only one sees an
// affected row.
func (r *repository) UpdateStatusFrom(
	ctx context.Context,
	id int64,
	from []registrationModel.Status,
	to registrationModel.Status,
	extra map[string]interface{},
) (bool, error) {
	updates := map[string]interface{}{"status": to}
	for k, v := range extra {
		updates[k] = v
	}

	result := r.db.WithContext(ctx).
		Model(&registrationModel.Registration{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(updates)

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// CancelBySport moves every active registration of a sport to
// cancelled and returns the affected registrations.
func (r *repository) CancelBySport(
	ctx context.Context,
	sportID string,
) ([]registrationModel.Registration, error) {
	var affected []registrationModel.Registration
	err := r.db.WithContext(ctx).
		Where("sport_id = ? AND status IN ?", sportID, registrationModel.ActiveStatuses()).
		Find(&affected).Error
	if err != nil {
		return nil, err
	}

	if len(affected) == 0 {
		return []registrationModel.Registration{}, nil
	}

	ids := make([]int64, 0, len(affected))
	for _, reg := range affected {
		ids = append(ids, reg.ID)
	}

	err = r.db.WithContext(ctx).
		Model(&registrationModel.Registration{}).
		Where("id IN ? AND status IN ?", ids, registrationModel.ActiveStatuses()).
		Update("status", registrationModel.StatusCancelled).Error
	if err != nil {
		return nil, err
	}

	for i := range affected {
		affected[i].Status = registrationModel.StatusCancelled
	}

	return affected, nil
}

// ReplaceTeam atomically replaces the team name and member list. The
// team_name update is conditional on an editable status: like the other
// per-registration transitions it serializes on the registration row, so a
// confirmation committing mid-edit makes the whole edit lose and roll back.
func (r *repository) ReplaceTeam(
	ctx context.Context,
	registrationID int64,
	teamName string,
	members []registrationModel.TeamMember,
) error {
	result := r.db.WithContext(ctx).
		Model(&registrationModel.Registration{}).
		Where("id = ? AND status IN ?", registrationID, registrationModel.EditableStatuses()).
		Update("team_name", teamName)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return registrationModel.ErrEditNotAllowed
	}

	err := r.db.WithContext(ctx).
		Where("registration_id = ?", registrationID).
		Delete(&registrationModel.TeamMember{}).Error
	if err != nil {
		return err
	}

	for i := range members {
		members[i].ID = 0
		members[i].RegistrationID = registrationID
		members[i].Position = i
	}
	if len(members) > 0 {
		if err := r.db.WithContext(ctx).Create(&members).Error; err != nil {
			return err
		}
	}

	return nil
}

// ListByUser returns all registrations owned by a user, newest first.
func (r *repository) ListByUser(
	ctx context.Context,
	userID string,
) ([]registrationModel.Registration, error) {
	var regs []registrationModel.Registration
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&regs).Error

	if err != nil {
		return nil, err
	}

	if regs == nil {
		return []registrationModel.Registration{}, nil
	}

	return regs, nil
}
