package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/adamaho/matchpoint/internal/logging"
	"github.com/adamaho/matchpoint/internal/models"
	"github.com/adamaho/matchpoint/internal/repo"
)

type MatchService struct {
	Repo *repo.GormRepo
}

// MatchesForUser lists matches where the user is the creator or plays on
// one of the teams. Matches belonging solely to other users never appear.
func (s *MatchService) MatchesForUser(ctx context.Context, userID uint) ([]models.Match, error) {
	l := logging.FromContext(ctx).With("svc", "matches.for_user", "user_id", userID)

	matches, err := s.Repo.MatchesForUser(ctx, userID)
	if err != nil {
		l.Error("match list failed", "error", err)
		return nil, err
	}
	return matches, nil
}

func (s *MatchService) MatchByID(ctx context.Context, id uint) (*models.Match, error) {
	l := logging.FromContext(ctx).With("svc", "matches.by_id", "match_id", id)

	match, err := s.Repo.MatchByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		l.Error("match lookup failed", "error", err)
		return nil, err
	}
	return match, nil
}
