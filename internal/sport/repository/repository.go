// Package repository provides data access layer for sport module.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	sportModel "github.com/festhub/sportsfest-api/internal/sport/model"
)

// Repository defines the interface for sport data access operations.
type Repository interface {
	// Create creates a new sport.
	Create(ctx context.Context, sport *sportModel.Sport) error

	// GetByID finds a sport by sport_id.
	GetByID(ctx context.Context, sportID string) (*sportModel.Sport, error)

	// List returns all sports, optionally filtered by category.
	List(ctx context.Context, category string) ([]sportModel.Sport, error)

	// Update applies the given column updates to a sport.
	Update(ctx context.Context, sportID string, updates map[string]interface{}) error

	// Close marks a sport's registration closed (soft-close, never deleted).
	Close(ctx context.Context, sportID string) error

	// HasRegistrations reports whether any registration references the sport.
	HasRegistrations(ctx context.Context, sportID string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new sport repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create creates a new sport.
func (r *repository) Create(ctx context.Context, sport *sportModel.Sport) error {
	err := r.db.WithContext(ctx).Create(sport).Error
	if err != nil {
		if isDuplicateError(err) {
			return sportModel.ErrSportExists
		}
		return err
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

// GetByID finds a sport by sport_id.
func (r *repository) GetByID(ctx context.Context, sportID string) (*sportModel.Sport, error) {
	var sport sportModel.Sport
	err := r.db.WithContext(ctx).
		Where("sport_id = ?", sportID).
		First(&sport).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, sportModel.ErrSportNotFound
		}
		return nil, err
	}

	return &sport, nil
}

// List returns all sports, optionally filtered by category.
func (r *repository) List(ctx context.Context, category string) ([]sportModel.Sport, error) {
	var sports []sportModel.Sport
	query := r.db.WithContext(ctx)
	if category != "" {
		query = query.Where("category = ?", category)
	}

	err := query.Order("name ASC").Find(&sports).Error
	if err != nil {
		return nil, err
	}

	if sports == nil {
		return []sportModel.Sport{}, nil
	}

	return sports, nil
}

// Update applies the given column updates to a sport.
func (r *repository) Update(ctx context.Context, sportID string, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).
		Model(&sportModel.Sport{}).
		Where("sport_id = ?", sportID).
		Updates(updates)

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return sportModel.ErrSportNotFound
	}

	return nil
}

// Close marks a sport's registration closed.
func (r *repository) Close(ctx context.Context, sportID string) error {
	return r.Update(ctx, sportID, map[string]interface{}{"is_registration_open": false})
}

// HasRegistrations reports whether any registration references the sport.
func (r *repository) HasRegistrations(ctx context.Context, sportID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("registrations").
		Where("sport_id = ?", sportID).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}
