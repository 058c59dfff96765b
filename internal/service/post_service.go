package service

import (
	"context"
	"strings"

	"pulse/internal/models"
	"pulse/internal/repository"
)

// DefaultPageSize is the fixed feed page size when the config does not override it.
const DefaultPageSize = 10

const maxTextLen = 10000

type PostService struct {
	postRepo    repository.PostRepository
	groupRepo   repository.GroupRepository
	userRepo    repository.UserRepository
	commentRepo repository.CommentRepository
	pageSize    int
}

// FeedQuery selects which feed to page through. At most one of GroupSlug,
// AuthorUsername and FollowedByUserID should be set; all empty means the
// global feed.
type FeedQuery struct {
	GroupSlug        string
	AuthorUsername   string
	FollowedByUserID uint
	Page             int
}

type CreatePostInput struct {
	AuthorID uint
	Text     string
	GroupID  *uint
	ImageURL string
}

type UpdatePostInput struct {
	AuthorID uint
	PostID   uint
	Text     string
	GroupID  *uint
}

// PostDetail is the detail view payload: the post (with its author's total
// post count attached) and all comments ordered newest-first.
type PostDetail struct {
	Post     *models.Post      `json:"post"`
	Comments []*models.Comment `json:"comments"`
}

func NewPostService(
	postRepo repository.PostRepository,
	groupRepo repository.GroupRepository,
	userRepo repository.UserRepository,
	commentRepo repository.CommentRepository,
	pageSize int,
) *PostService {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &PostService{
		postRepo:    postRepo,
		groupRepo:   groupRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		pageSize:    pageSize,
	}
}

// ListFeed returns one page of the requested feed, newest-first. Page numbers
// out of range are clamped to the nearest valid page rather than erroring.
func (s *PostService) ListFeed(ctx context.Context, q FeedQuery) (*models.PostPage, error) {
	list, err := s.resolveFeed(ctx, q)
	if err != nil {
		return nil, err
	}

	page := q.Page
	if page < 1 {
		page = 1
	}

	posts, total, err := list(page)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(s.pageSize) - 1) / int64(s.pageSize))
	if totalPages < 1 {
		totalPages = 1
	}

	// Past-the-end requests clamp to the last page.
	if page > totalPages {
		page = totalPages
		posts, total, err = list(page)
		if err != nil {
			return nil, err
		}
	}

	return &models.PostPage{
		Posts:      posts,
		Number:     page,
		Size:       s.pageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}, nil
}

// resolveFeed maps the query filter to the matching repository call. Unknown
// group slugs and usernames surface as NotFound before any paging happens.
func (s *PostService) resolveFeed(ctx context.Context, q FeedQuery) (func(page int) ([]*models.Post, int64, error), error) {
	switch {
	case q.GroupSlug != "":
		group, err := s.groupRepo.GetBySlug(ctx, q.GroupSlug)
		if err != nil {
			return nil, err
		}
		return func(page int) ([]*models.Post, int64, error) {
			return s.postRepo.ListByGroup(ctx, group.ID, s.pageSize, (page-1)*s.pageSize)
		}, nil
	case q.AuthorUsername != "":
		author, err := s.userRepo.GetByUsername(ctx, q.AuthorUsername)
		if err != nil {
			return nil, err
		}
		if author == nil {
			return nil, models.NewNotFoundError("User", q.AuthorUsername)
		}
		return func(page int) ([]*models.Post, int64, error) {
			return s.postRepo.ListByAuthor(ctx, author.ID, s.pageSize, (page-1)*s.pageSize)
		}, nil
	case q.FollowedByUserID != 0:
		return func(page int) ([]*models.Post, int64, error) {
			return s.postRepo.ListByFollowed(ctx, q.FollowedByUserID, s.pageSize, (page-1)*s.pageSize)
		}, nil
	default:
		return func(page int) ([]*models.Post, int64, error) {
			return s.postRepo.List(ctx, s.pageSize, (page-1)*s.pageSize)
		}, nil
	}
}

// DeletePost removes a post. Only the stored author may delete.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID == nil || *post.AuthorID != userID {
		return models.NewForbiddenError("You can only delete your own posts")
	}
	return s.postRepo.Delete(ctx, post.ID)
}

// GetPostDetail returns the post with its author's total post count and all
// comments ordered newest-first.
func (s *PostService) GetPostDetail(ctx context.Context, id uint) (*PostDetail, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	comments, err := s.commentRepo.ListByPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	return &PostDetail{Post: post, Comments: comments}, nil
}

// CreatePost creates a post authored by the acting user. The author is never
// client-supplied.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(text) > maxTextLen {
		return nil, models.NewValidationError("Text too long (max 10000 characters)")
	}

	if in.GroupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *in.GroupID); err != nil {
			return nil, models.NewValidationError("Group does not exist")
		}
	}

	authorID := in.AuthorID
	post := &models.Post{
		Text:     text,
		ImageURL: in.ImageURL,
		AuthorID: &authorID,
		GroupID:  in.GroupID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

// UpdatePost replaces the text and group of an existing post. Only the stored
// author may edit; any other user gets an explicit ForbiddenError and the
// stored record is never touched.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID == nil || *post.AuthorID != in.AuthorID {
		return nil, models.NewForbiddenError("You can only edit your own posts")
	}

	text := strings.TrimSpace(in.Text)
	if text == "" {
		return nil, models.NewValidationError("Text is required")
	}
	if len(text) > maxTextLen {
		return nil, models.NewValidationError("Text too long (max 10000 characters)")
	}

	if in.GroupID != nil {
		if _, err := s.groupRepo.GetByID(ctx, *in.GroupID); err != nil {
			return nil, models.NewValidationError("Group does not exist")
		}
	}

	post.Text = text
	post.GroupID = in.GroupID
	// Preloaded association must not override the new foreign key on save.
	post.Group = nil

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return s.postRepo.GetByID(ctx, post.ID)
}
