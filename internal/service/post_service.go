package service

import (
	"context"

	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/validation"
)

// PostService implements post, like and comment operations.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{postRepo: postRepo, userRepo: userRepo}
}

// CreatePost creates a post for the subject, denormalizing the author's
// name at creation time. The name is never synced afterwards.
func (s *PostService) CreatePost(ctx context.Context, userID uint, text string) (*models.Post, error) {
	if validation.ValidateRequired("text", text) != nil {
		return nil, models.NewFieldValidationError(models.FieldError{Msg: "Please enter some text", Param: "text"})
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Text:      text,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		UserID:    userID,
		Likes:     []models.Like{},
		Comments:  []models.Comment{},
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// ListPosts returns all posts, newest first.
func (s *PostService) ListPosts(ctx context.Context) ([]models.Post, error) {
	return s.postRepo.List(ctx)
}

// GetPost returns a single post.
func (s *PostService) GetPost(ctx context.Context, postID uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, postID)
}

// DeletePost removes a post and its embedded likes and comments. Only
// the owning user may delete.
func (s *PostService) DeletePost(ctx context.Context, userID, postID uint) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return models.NewForbiddenError("Unauthorised")
	}
	return s.postRepo.Delete(ctx, postID)
}

// Like adds the subject's like and returns the updated like sequence.
// The pre-check gives the friendly conflict response; the unique index
// in the store closes the check-then-save race.
func (s *PostService) Like(ctx context.Context, userID, postID uint) ([]models.Like, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	liked, err := s.postRepo.IsLiked(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if liked {
		return nil, models.NewConflictError("Post already liked")
	}

	if err := s.postRepo.AddLike(ctx, postID, userID); err != nil {
		return nil, err
	}
	return s.postRepo.GetLikes(ctx, postID)
}

// Unlike removes exactly the subject's like and returns the updated sequence.
func (s *PostService) Unlike(ctx context.Context, userID, postID uint) ([]models.Like, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	liked, err := s.postRepo.IsLiked(ctx, postID, userID)
	if err != nil {
		return nil, err
	}
	if !liked {
		return nil, models.NewConflictError("Post has not yet been liked")
	}

	if err := s.postRepo.RemoveLike(ctx, postID, userID); err != nil {
		return nil, err
	}
	return s.postRepo.GetLikes(ctx, postID)
}

// Comment adds a comment with the author's name denormalized at write
// time and returns the updated comment sequence, newest first.
func (s *PostService) Comment(ctx context.Context, userID, postID uint, text string) ([]models.Comment, error) {
	if validation.ValidateRequired("text", text) != nil {
		return nil, models.NewFieldValidationError(models.FieldError{Msg: "Please enter some text", Param: "text"})
	}

	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:    postID,
		UserID:    userID,
		Text:      text,
		FirstName: user.FirstName,
		LastName:  user.LastName,
	}
	if err := s.postRepo.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return s.postRepo.GetComments(ctx, postID)
}

// RemoveComment removes the entry matching commentID, never an entry
// located by the acting user's position in the sequence. Only the
// comment's author may remove it.
func (s *PostService) RemoveComment(ctx context.Context, userID, postID, commentID uint) ([]models.Comment, error) {
	comment, err := s.postRepo.GetComment(ctx, postID, commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, models.NewForbiddenError("Unauthorised")
	}

	if err := s.postRepo.RemoveComment(ctx, comment.ID); err != nil {
		return nil, err
	}
	return s.postRepo.GetComments(ctx, postID)
}
