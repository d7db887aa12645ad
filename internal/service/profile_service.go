// Package service contains the business logic between handlers and repositories.
package service

import (
	"context"
	"time"

	"devconnect/internal/cache"
	"devconnect/internal/github"
	"devconnect/internal/models"
	"devconnect/internal/repository"
	"devconnect/internal/validation"
)

// GithubBrowser lists a user's public repositories.
type GithubBrowser interface {
	Repos(ctx context.Context, username string) ([]github.Repo, error)
}

// ProfileService implements profile operations.
type ProfileService struct {
	profileRepo repository.ProfileRepository
	github      GithubBrowser
}

// UpsertProfileInput carries the profile fields of an upsert request.
// Pointer fields distinguish "not provided" (nil) from "set to empty";
// only provided fields are written, the rest are preserved.
type UpsertProfileInput struct {
	Status         string
	Skills         string
	Company        *string
	Website        *string
	Location       *string
	Bio            *string
	GithubUsername *string
	Youtube        *string
	Twitter        *string
	Facebook       *string
	Linkedin       *string
	Instagram      *string
}

// ExperienceInput carries a new experience entry.
type ExperienceInput struct {
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

// EducationInput carries a new education entry.
type EducationInput struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

// NewProfileService returns a new ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository, gh GithubBrowser) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, github: gh}
}

// GetOwnProfile returns the subject's profile with denormalized user names.
func (s *ProfileService) GetOwnProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

// UpsertProfile creates the subject's profile or merges the provided
// fields into the existing one. Status and skills are required.
func (s *ProfileService) UpsertProfile(ctx context.Context, userID uint, in UpsertProfileInput) (*models.Profile, error) {
	var fields []models.FieldError
	if err := validation.ValidateRequired("status", in.Status); err != nil {
		fields = append(fields, models.FieldError{Msg: "Status is required", Param: "status"})
	}
	skills := validation.NormalizeSkills(in.Skills)
	if len(skills) == 0 {
		fields = append(fields, models.FieldError{Msg: "Skills is required", Param: "skills"})
	}
	if len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields...)
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	created := false
	if err != nil {
		appErr, ok := err.(*models.AppError)
		if !ok || appErr.Code != models.CodeNotFound {
			return nil, err
		}
		profile = &models.Profile{UserID: userID}
		created = true
	}

	profile.Status = in.Status
	profile.Skills = skills
	if in.Company != nil {
		profile.Company = *in.Company
	}
	if in.Website != nil {
		profile.Website = *in.Website
	}
	if in.Location != nil {
		profile.Location = *in.Location
	}
	if in.Bio != nil {
		profile.Bio = *in.Bio
	}
	if in.GithubUsername != nil {
		profile.GithubUsername = *in.GithubUsername
	}
	if in.Youtube != nil {
		profile.Social.Youtube = *in.Youtube
	}
	if in.Twitter != nil {
		profile.Social.Twitter = *in.Twitter
	}
	if in.Facebook != nil {
		profile.Social.Facebook = *in.Facebook
	}
	if in.Linkedin != nil {
		profile.Social.Linkedin = *in.Linkedin
	}
	if in.Instagram != nil {
		profile.Social.Instagram = *in.Instagram
	}

	if created {
		err = s.profileRepo.Create(ctx, profile)
	} else {
		err = s.profileRepo.Save(ctx, profile)
	}
	if err != nil {
		return nil, err
	}

	cache.InvalidateProfileList(ctx)
	return s.profileRepo.GetByUserID(ctx, userID)
}

// ListProfiles returns every profile with denormalized user names.
// The listing is intentionally unbounded (no pagination); the cache
// keeps the repeated full scan cheap.
func (s *ProfileService) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile
	err := cache.Aside(ctx, cache.ProfileListKey(), &profiles, cache.ProfileListTTL, func() error {
		var err error
		profiles, err = s.profileRepo.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return profiles, nil
}

// GetProfileByUser returns one user's profile.
func (s *ProfileService) GetProfileByUser(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.profileRepo.GetByUserID(ctx, userID)
}

// AddExperience inserts an entry at the head of the subject's
// experience sequence and returns the updated profile.
func (s *ProfileService) AddExperience(ctx context.Context, userID uint, in ExperienceInput) (*models.Profile, error) {
	var fields []models.FieldError
	if validation.ValidateRequired("title", in.Title) != nil {
		fields = append(fields, models.FieldError{Msg: "Title is required", Param: "title"})
	}
	if validation.ValidateRequired("company", in.Company) != nil {
		fields = append(fields, models.FieldError{Msg: "Company is required", Param: "company"})
	}
	if in.From.IsZero() {
		fields = append(fields, models.FieldError{Msg: "From date is required", Param: "from"})
	}
	if len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields...)
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	exp := &models.Experience{
		ProfileID:   profile.ID,
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        in.From,
		To:          in.To,
		Current:     in.Current,
		Description: in.Description,
	}
	if err := s.profileRepo.AddExperience(ctx, exp); err != nil {
		return nil, err
	}

	cache.InvalidateProfileList(ctx)
	return s.profileRepo.GetByUserID(ctx, userID)
}

// RemoveExperience removes exactly the entry matching expID. A
// non-matching id is a not-found error, never a removal of any other
// entry.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, expID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.RemoveExperience(ctx, profile.ID, expID); err != nil {
		return nil, err
	}
	cache.InvalidateProfileList(ctx)
	return s.profileRepo.GetByUserID(ctx, userID)
}

// AddEducation mirrors AddExperience for education entries.
func (s *ProfileService) AddEducation(ctx context.Context, userID uint, in EducationInput) (*models.Profile, error) {
	var fields []models.FieldError
	if validation.ValidateRequired("school", in.School) != nil {
		fields = append(fields, models.FieldError{Msg: "School is required", Param: "school"})
	}
	if validation.ValidateRequired("degree", in.Degree) != nil {
		fields = append(fields, models.FieldError{Msg: "Degree is required", Param: "degree"})
	}
	if validation.ValidateRequired("fieldofstudy", in.FieldOfStudy) != nil {
		fields = append(fields, models.FieldError{Msg: "Field of study is required", Param: "fieldofstudy"})
	}
	if in.From.IsZero() {
		fields = append(fields, models.FieldError{Msg: "From date is required", Param: "from"})
	}
	if len(fields) > 0 {
		return nil, models.NewFieldValidationError(fields...)
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	edu := &models.Education{
		ProfileID:    profile.ID,
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         in.From,
		To:           in.To,
		Current:      in.Current,
		Description:  in.Description,
	}
	if err := s.profileRepo.AddEducation(ctx, edu); err != nil {
		return nil, err
	}

	cache.InvalidateProfileList(ctx)
	return s.profileRepo.GetByUserID(ctx, userID)
}

// RemoveEducation mirrors RemoveExperience for education entries.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID, eduID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.profileRepo.RemoveEducation(ctx, profile.ID, eduID); err != nil {
		return nil, err
	}
	cache.InvalidateProfileList(ctx)
	return s.profileRepo.GetByUserID(ctx, userID)
}

// GithubRepos returns up to 5 of the user's most recently created
// repositories, cached briefly to spare the upstream rate limit.
func (s *ProfileService) GithubRepos(ctx context.Context, username string) ([]github.Repo, error) {
	var repos []github.Repo
	err := cache.Aside(ctx, cache.GithubReposKey(username), &repos, cache.GithubReposTTL, func() error {
		var err error
		repos, err = s.github.Repos(ctx, username)
		return err
	})
	if err != nil {
		return nil, err
	}
	return repos, nil
}
