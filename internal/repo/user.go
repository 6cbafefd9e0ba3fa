package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/adamaho/matchpoint/internal/models"
)

// CreateUserWithRefresh creates the user row and its refresh-token row in
// one transaction: either both persist or neither does.
func (r *GormRepo) CreateUserWithRefresh(ctx context.Context, user *models.User, refreshToken string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		row := models.RefreshToken{
			Token:  refreshToken,
			UserID: user.UserID,
		}
		return tx.Create(&row).Error
	})
}

func (r *GormRepo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("user_id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies only the supplied columns and returns the fresh row.
func (r *GormRepo) UpdateUser(ctx context.Context, id uint, updates map[string]any) (*models.User, error) {
	if len(updates) > 0 {
		if err := r.DB.WithContext(ctx).Model(&models.User{}).
			Where("user_id = ?", id).
			Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return r.FindUserByID(ctx, id)
}
