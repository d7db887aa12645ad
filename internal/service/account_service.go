package service

import (
	"context"
	"errors"

	"devconnect/internal/cache"
	"devconnect/internal/models"
	"devconnect/internal/observability"

	"gorm.io/gorm"
)

// AccountService handles full account removal. It owns a *gorm.DB
// because deletion spans users, profiles and posts in one transaction.
type AccountService struct {
	db *gorm.DB
}

// NewAccountService returns a new AccountService.
func NewAccountService(db *gorm.DB) *AccountService {
	return &AccountService{db: db}
}

// DeleteAccount removes the subject's profile (with its experience and
// education entries), posts (with their likes and comments) and the
// user record, in a single transaction. Likes and comments the subject
// left on other users' posts are kept: their author names are
// denormalized, so they keep rendering after the account is gone.
func (s *AccountService) DeleteAccount(ctx context.Context, userID uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User not found")
			}
			return models.NewInternalError(err)
		}

		var postIDs []uint
		if err := tx.Model(&models.Post{}).Where("user_id = ?", userID).Pluck("id", &postIDs).Error; err != nil {
			return models.NewInternalError(err)
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Like{}).Error; err != nil {
				return models.NewInternalError(err)
			}
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Comment{}).Error; err != nil {
				return models.NewInternalError(err)
			}
			if err := tx.Where("user_id = ?", userID).Delete(&models.Post{}).Error; err != nil {
				return models.NewInternalError(err)
			}
		}

		var profile models.Profile
		err := tx.Where("user_id = ?", userID).First(&profile).Error
		switch {
		case err == nil:
			if err := tx.Where("profile_id = ?", profile.ID).Delete(&models.Experience{}).Error; err != nil {
				return models.NewInternalError(err)
			}
			if err := tx.Where("profile_id = ?", profile.ID).Delete(&models.Education{}).Error; err != nil {
				return models.NewInternalError(err)
			}
			if err := tx.Delete(&profile).Error; err != nil {
				return models.NewInternalError(err)
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// account without a profile; nothing to clean up
		default:
			return models.NewInternalError(err)
		}

		if err := tx.Delete(&user).Error; err != nil {
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	cache.InvalidateProfileList(ctx)
	observability.AccountsDeleted.Inc()
	return nil
}
