package service

import (
	"context"

	"pulse/internal/models"
	"pulse/internal/repository"
)

type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(
	followRepo repository.FollowRepository,
	userRepo repository.UserRepository,
) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow makes userID follow the author named authorUsername. Self-follows
// and duplicate follows are rejected with a ConflictError; the duplicate case
// is also backstopped by the store's unique constraint for concurrent requests.
func (s *FollowService) Follow(ctx context.Context, userID uint, authorUsername string) (*models.Follow, error) {
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, models.NewNotFoundError("User", authorUsername)
	}

	if author.ID == userID {
		return nil, models.NewConflictError("You cannot follow yourself")
	}

	follow := &models.Follow{UserID: userID, AuthorID: author.ID}
	if err := s.followRepo.Create(ctx, follow); err != nil {
		return nil, err
	}
	return follow, nil
}

// Unfollow removes the relation if present. Unfollowing an author who was
// never followed is a successful no-op.
func (s *FollowService) Unfollow(ctx context.Context, userID uint, authorUsername string) error {
	author, err := s.userRepo.GetByUsername(ctx, authorUsername)
	if err != nil {
		return err
	}
	if author == nil {
		return models.NewNotFoundError("User", authorUsername)
	}

	_, err = s.followRepo.Delete(ctx, userID, author.ID)
	return err
}

// Following reports whether userID follows authorID.
func (s *FollowService) Following(ctx context.Context, userID, authorID uint) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	return s.followRepo.Exists(ctx, userID, authorID)
}
