package repository

import (
	"context"
	"errors"

	"devconnect/internal/cache"
	"devconnect/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository defines persistence operations for profiles and their
// experience/education entries.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	Update(ctx context.Context, profile *models.Profile) error
	DeleteByUserID(ctx context.Context, userID uint) error
	AddExperience(ctx context.Context, profile *models.Profile, entry *models.Experience) error
	RemoveExperience(ctx context.Context, profile *models.Profile, entryID uint) error
	AddEducation(ctx context.Context, profile *models.Profile, entry *models.Education) error
	RemoveEducation(ctx context.Context, profile *models.Profile, entryID uint) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// preloadEntries loads experience and education newest-first, matching the
// most-recent-first ordering the API exposes.
func preloadEntries(db *gorm.DB) *gorm.DB {
	order := func(tx *gorm.DB) *gorm.DB {
		return tx.Order("created_at DESC, id DESC")
	}
	return db.
		Preload("Experience", order).
		Preload("Education", order)
}

// GetByUserID returns (nil, nil) when the user has no profile.
func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	key := cache.ProfileKey(userID)

	err := cache.Aside(ctx, key, &profile, cache.ProfileTTL, func() error {
		return preloadEntries(r.db.WithContext(ctx)).
			Preload("User").
			Where("user_id = ?", userID).
			First(&profile).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	err := preloadEntries(r.db.WithContext(ctx)).
		Preload("User").
		Order("created_at DESC").
		Find(&profiles).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Profile already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *profileRepository) Update(ctx context.Context, profile *models.Profile) error {
	// Experience/education rows are managed through their own Add/Remove
	// operations, never resaved wholesale here.
	err := r.db.WithContext(ctx).
		Omit("Experience", "Education", "User").
		Save(profile).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, profile.UserID)
	return nil
}

func (r *profileRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Profile{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, userID)
	return nil
}

func (r *profileRepository) AddExperience(ctx context.Context, profile *models.Profile, entry *models.Experience) error {
	entry.ProfileID = profile.ID
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, profile.UserID)
	return nil
}

// RemoveExperience deletes the entry scoped to the owning profile. Removing
// an entry that is absent, or that belongs to another profile, is a no-op.
func (r *profileRepository) RemoveExperience(ctx context.Context, profile *models.Profile, entryID uint) error {
	err := r.db.WithContext(ctx).
		Where("profile_id = ? AND id = ?", profile.ID, entryID).
		Delete(&models.Experience{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, profile.UserID)
	return nil
}

func (r *profileRepository) AddEducation(ctx context.Context, profile *models.Profile, entry *models.Education) error {
	entry.ProfileID = profile.ID
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, profile.UserID)
	return nil
}

// RemoveEducation mirrors RemoveExperience's scoped, idempotent delete.
func (r *profileRepository) RemoveEducation(ctx context.Context, profile *models.Profile, entryID uint) error {
	err := r.db.WithContext(ctx).
		Where("profile_id = ? AND id = ?", profile.ID, entryID).
		Delete(&models.Education{}).Error
	if err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateProfile(ctx, profile.UserID)
	return nil
}
