package repository

import (
	"context"
	"errors"

	"devconnect/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository defines persistence operations for profiles and
// their owned experience/education entries.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	Save(ctx context.Context, profile *models.Profile) error
	AddExperience(ctx context.Context, exp *models.Experience) error
	RemoveExperience(ctx context.Context, profileID, expID uint) error
	AddEducation(ctx context.Context, edu *models.Education) error
	RemoveEducation(ctx context.Context, profileID, eduID uint) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// child rows load newest-first, mirroring the insert-at-head sequence order
func preloadChildren(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Experience", func(db *gorm.DB) *gorm.DB {
			return db.Order("id DESC")
		}).
		Preload("Education", func(db *gorm.DB) *gorm.DB {
			return db.Order("id DESC")
		})
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	err := preloadChildren(r.db.WithContext(ctx)).
		Preload("User").
		Where("user_id = ?", userID).
		First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Profile not found")
		}
		return nil, models.NewInternalError(err)
	}
	profile.FirstName = profile.User.FirstName
	profile.LastName = profile.User.LastName
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	err := preloadChildren(r.db.WithContext(ctx)).
		Preload("User").
		Order("id").
		Find(&profiles).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	for i := range profiles {
		profiles[i].FirstName = profiles[i].User.FirstName
		profiles[i].LastName = profiles[i].User.LastName
	}
	return profiles, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Profile already exists for user")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// Save writes the full profile row. Merge semantics live in the service
// layer: it loads the existing row first and mutates only provided
// fields, so unprovided fields survive.
func (r *profileRepository) Save(ctx context.Context, profile *models.Profile) error {
	err := r.db.WithContext(ctx).
		Omit("Experience", "Education", "User").
		Save(profile).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileRepository) AddExperience(ctx context.Context, exp *models.Experience) error {
	if err := r.db.WithContext(ctx).Create(exp).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// RemoveExperience deletes exactly the entry matching expID within the
// profile. A non-matching id is reported as not found rather than
// touching any other entry.
func (r *profileRepository) RemoveExperience(ctx context.Context, profileID, expID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", expID, profileID).
		Delete(&models.Experience{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Experience entry not found")
	}
	return nil
}

func (r *profileRepository) AddEducation(ctx context.Context, edu *models.Education) error {
	if err := r.db.WithContext(ctx).Create(edu).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileRepository) RemoveEducation(ctx context.Context, profileID, eduID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND profile_id = ?", eduID, profileID).
		Delete(&models.Education{})
	if res.Error != nil {
		return models.NewInternalError(res.Error)
	}
	if res.RowsAffected == 0 {
		return models.NewNotFoundError("Education entry not found")
	}
	return nil
}
