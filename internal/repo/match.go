package repo

import (
	"context"

	"github.com/adamaho/matchpoint/internal/models"
)

// MatchesForUser returns matches the user created or plays in through a
// team membership.
func (r *GormRepo) MatchesForUser(ctx context.Context, userID uint) ([]models.Match, error) {
	memberOf := r.DB.Model(&models.Player{}).
		Select("teams.match_id").
		Joins("JOIN teams ON teams.team_id = players.team_id").
		Where("players.user_id = ?", userID)

	var matches []models.Match
	if err := r.DB.WithContext(ctx).
		Where("creator_user_id = ?", userID).
		Or("match_id IN (?)", memberOf).
		Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *GormRepo) MatchByID(ctx context.Context, id uint) (*models.Match, error) {
	var match models.Match
	if err := r.DB.WithContext(ctx).Where("match_id = ?", id).First(&match).Error; err != nil {
		return nil, err
	}
	return &match, nil
}
