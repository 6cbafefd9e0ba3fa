package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/adamaho/matchpoint/internal/models"
)

// ReplaceRefreshToken installs token as the user's single session: the
// previous row, if any, is removed in the same transaction.
func (r *GormRepo) ReplaceRefreshToken(ctx context.Context, userID uint, token string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		row := models.RefreshToken{Token: token, UserID: userID}
		return tx.Create(&row).Error
	})
}

func (r *GormRepo) FindRefreshToken(ctx context.Context, token string, userID uint) (*models.RefreshToken, error) {
	var row models.RefreshToken
	if err := r.DB.WithContext(ctx).
		Where("token = ? AND user_id = ?", token, userID).
		First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *GormRepo) FindRefreshTokenByUser(ctx context.Context, userID uint) (*models.RefreshToken, error) {
	var row models.RefreshToken
	if err := r.DB.WithContext(ctx).Where("user_id = ?", userID).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *GormRepo) DeleteRefreshTokenByUser(ctx context.Context, userID uint) error {
	return r.DB.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.RefreshToken{}).Error
}
