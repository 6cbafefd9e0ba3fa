package service

import (
	"context"

	"github.com/adamaho/matchpoint/internal/logging"
	"github.com/adamaho/matchpoint/internal/models"
	"github.com/adamaho/matchpoint/internal/repo"
)

type UserService struct {
	Repo *repo.GormRepo
}

type ProfileUpdate struct {
	Username         *string
	AvatarBackground *string
	AvatarEmoji      *string
}

// UpdateProfile mutates only the fields supplied. The target is always the
// authenticated user: the id comes from the verified token, never from the
// request path.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, upd ProfileUpdate) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "users.update", "user_id", userID)

	updates := map[string]any{}
	if upd.Username != nil {
		updates["username"] = *upd.Username
	}
	if upd.AvatarBackground != nil {
		updates["avatar_background"] = *upd.AvatarBackground
	}
	if upd.AvatarEmoji != nil {
		updates["avatar_emoji"] = *upd.AvatarEmoji
	}

	user, err := s.Repo.UpdateUser(ctx, userID, updates)
	if err != nil {
		l.Error("profile update failed", "error", err)
		return nil, err
	}

	l.Info("profile updated")
	return user, nil
}
