package service

import (
	"context"

	"pulse/internal/models"
	"pulse/internal/repository"
)

type UserService struct {
	userRepo   repository.UserRepository
	postRepo   repository.PostRepository
	followRepo repository.FollowRepository
}

// Profile is the profile payload: the author, their total post count, and
// the follow-state flags for the requesting user.
type Profile struct {
	User      *models.User `json:"user"`
	PostCount int64        `json:"post_count"`
	Following bool         `json:"following"`
	NonAuthor bool         `json:"non_author"`
}

func NewUserService(
	userRepo repository.UserRepository,
	postRepo repository.PostRepository,
	followRepo repository.FollowRepository,
) *UserService {
	return &UserService{
		userRepo:   userRepo,
		postRepo:   postRepo,
		followRepo: followRepo,
	}
}

// GetProfile loads the profile for username. currentUserID may be zero for
// anonymous requests, in which case both flags are false.
func (s *UserService) GetProfile(ctx context.Context, username string, currentUserID uint) (*Profile, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", username)
	}

	count, err := s.postRepo.CountByAuthor(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	profile := &Profile{
		User:      user,
		PostCount: count,
	}

	if currentUserID != 0 {
		profile.NonAuthor = currentUserID != user.ID
		following, err := s.followRepo.Exists(ctx, currentUserID, user.ID)
		if err != nil {
			return nil, err
		}
		profile.Following = following
	}

	return profile, nil
}
