package service

import (
	"context"
	"testing"
	"time"

	"devconnect/internal/github"
	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// profileRepoStub is a stub for repository.ProfileRepository.
type profileRepoStub struct {
	getByUserIDFn      func(context.Context, uint) (*models.Profile, error)
	listFn             func(context.Context) ([]models.Profile, error)
	createFn           func(context.Context, *models.Profile) error
	saveFn             func(context.Context, *models.Profile) error
	addExperienceFn    func(context.Context, *models.Experience) error
	removeExperienceFn func(context.Context, uint, uint) error
	addEducationFn     func(context.Context, *models.Education) error
	removeEducationFn  func(context.Context, uint, uint) error
}

func (s *profileRepoStub) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	return s.getByUserIDFn(ctx, userID)
}
func (s *profileRepoStub) List(ctx context.Context) ([]models.Profile, error) {
	return s.listFn(ctx)
}
func (s *profileRepoStub) Create(ctx context.Context, profile *models.Profile) error {
	return s.createFn(ctx, profile)
}
func (s *profileRepoStub) Save(ctx context.Context, profile *models.Profile) error {
	return s.saveFn(ctx, profile)
}
func (s *profileRepoStub) AddExperience(ctx context.Context, exp *models.Experience) error {
	return s.addExperienceFn(ctx, exp)
}
func (s *profileRepoStub) RemoveExperience(ctx context.Context, profileID, expID uint) error {
	return s.removeExperienceFn(ctx, profileID, expID)
}
func (s *profileRepoStub) AddEducation(ctx context.Context, edu *models.Education) error {
	return s.addEducationFn(ctx, edu)
}
func (s *profileRepoStub) RemoveEducation(ctx context.Context, profileID, eduID uint) error {
	return s.removeEducationFn(ctx, profileID, eduID)
}

func noopProfileRepo() *profileRepoStub {
	return &profileRepoStub{
		getByUserIDFn: func(_ context.Context, userID uint) (*models.Profile, error) {
			return &models.Profile{ID: 1, UserID: userID}, nil
		},
		listFn:             func(_ context.Context) ([]models.Profile, error) { return nil, nil },
		createFn:           func(_ context.Context, _ *models.Profile) error { return nil },
		saveFn:             func(_ context.Context, _ *models.Profile) error { return nil },
		addExperienceFn:    func(_ context.Context, _ *models.Experience) error { return nil },
		removeExperienceFn: func(_ context.Context, _, _ uint) error { return nil },
		addEducationFn:     func(_ context.Context, _ *models.Education) error { return nil },
		removeEducationFn:  func(_ context.Context, _, _ uint) error { return nil },
	}
}

// githubStub is a stub for the GithubBrowser interface.
type githubStub struct {
	reposFn func(context.Context, string) ([]github.Repo, error)
}

func (s *githubStub) Repos(ctx context.Context, username string) ([]github.Repo, error) {
	return s.reposFn(ctx, username)
}

func strPtr(s string) *string { return &s }

func TestUpsertProfileRequiresStatusAndSkills(t *testing.T) {
	svc := NewProfileService(noopProfileRepo(), nil)

	_, err := svc.UpsertProfile(context.Background(), 1, UpsertProfileInput{})
	assertAppErrorCode(t, err, models.CodeValidation)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	require.Len(t, appErr.Fields, 2)
	assert.Equal(t, "status", appErr.Fields[0].Param)
	assert.Equal(t, "skills", appErr.Fields[1].Param)

	// all-whitespace skills collapse to nothing
	_, err = svc.UpsertProfile(context.Background(), 1, UpsertProfileInput{Status: "Developer", Skills: " , ,"})
	assertAppErrorCode(t, err, models.CodeValidation)
}

func TestUpsertProfileCreatesWhenMissing(t *testing.T) {
	repo := noopProfileRepo()
	missing := true
	repo.getByUserIDFn = func(_ context.Context, userID uint) (*models.Profile, error) {
		if missing {
			return nil, models.NewNotFoundError("Profile not found")
		}
		return &models.Profile{ID: 7, UserID: userID, Status: "Developer"}, nil
	}
	var created *models.Profile
	repo.createFn = func(_ context.Context, p *models.Profile) error {
		created = p
		missing = false
		return nil
	}
	saveCalled := false
	repo.saveFn = func(_ context.Context, _ *models.Profile) error {
		saveCalled = true
		return nil
	}

	svc := NewProfileService(repo, nil)
	profile, err := svc.UpsertProfile(context.Background(), 4, UpsertProfileInput{
		Status: "Developer",
		Skills: "Go, SQL",
	})
	require.NoError(t, err)

	require.NotNil(t, created)
	assert.Equal(t, uint(4), created.UserID)
	assert.Equal(t, []string{"Go", "SQL"}, created.Skills)
	assert.False(t, saveCalled)
	assert.Equal(t, uint(7), profile.ID)
}

func TestUpsertProfileMergesProvidedFieldsOnly(t *testing.T) {
	repo := noopProfileRepo()
	repo.getByUserIDFn = func(_ context.Context, userID uint) (*models.Profile, error) {
		return &models.Profile{
			ID:      7,
			UserID:  userID,
			Status:  "Junior Developer",
			Company: "Initech",
			Bio:     "shipping since 2019",
			Social:  models.SocialLinks{Twitter: "@ann"},
		}, nil
	}
	var saved *models.Profile
	repo.saveFn = func(_ context.Context, p *models.Profile) error {
		saved = p
		return nil
	}
	createCalled := false
	repo.createFn = func(_ context.Context, _ *models.Profile) error {
		createCalled = true
		return nil
	}

	svc := NewProfileService(repo, nil)
	_, err := svc.UpsertProfile(context.Background(), 4, UpsertProfileInput{
		Status:  "Senior Developer",
		Skills:  "Go",
		Website: strPtr("https://ann.dev"),
	})
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.False(t, createCalled)
	assert.Equal(t, "Senior Developer", saved.Status)
	assert.Equal(t, "https://ann.dev", saved.Website)
	// fields not in the request survive the merge
	assert.Equal(t, "Initech", saved.Company)
	assert.Equal(t, "shipping since 2019", saved.Bio)
	assert.Equal(t, "@ann", saved.Social.Twitter)
}

func TestUpsertProfileClearsFieldSetToEmpty(t *testing.T) {
	repo := noopProfileRepo()
	repo.getByUserIDFn = func(_ context.Context, userID uint) (*models.Profile, error) {
		return &models.Profile{ID: 7, UserID: userID, Status: "Developer", Company: "Initech"}, nil
	}
	var saved *models.Profile
	repo.saveFn = func(_ context.Context, p *models.Profile) error {
		saved = p
		return nil
	}

	svc := NewProfileService(repo, nil)
	_, err := svc.UpsertProfile(context.Background(), 4, UpsertProfileInput{
		Status:  "Developer",
		Skills:  "Go",
		Company: strPtr(""),
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "", saved.Company)
}

func TestAddExperienceValidation(t *testing.T) {
	svc := NewProfileService(noopProfileRepo(), nil)

	_, err := svc.AddExperience(context.Background(), 1, ExperienceInput{})
	assertAppErrorCode(t, err, models.CodeValidation)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Len(t, appErr.Fields, 3)
}

func TestAddExperienceAttachesToProfile(t *testing.T) {
	repo := noopProfileRepo()
	var added *models.Experience
	repo.addExperienceFn = func(_ context.Context, exp *models.Experience) error {
		added = exp
		return nil
	}

	svc := NewProfileService(repo, nil)
	_, err := svc.AddExperience(context.Background(), 4, ExperienceInput{
		Title:   "Engineer",
		Company: "Initech",
		From:    time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.NotNil(t, added)
	assert.Equal(t, uint(1), added.ProfileID)
	assert.Equal(t, "Engineer", added.Title)
}

func TestRemoveExperiencePassesIDsThrough(t *testing.T) {
	repo := noopProfileRepo()
	var gotProfileID, gotExpID uint
	repo.removeExperienceFn = func(_ context.Context, profileID, expID uint) error {
		gotProfileID, gotExpID = profileID, expID
		return nil
	}

	svc := NewProfileService(repo, nil)
	_, err := svc.RemoveExperience(context.Background(), 4, 42)
	require.NoError(t, err)
	assert.Equal(t, uint(1), gotProfileID)
	assert.Equal(t, uint(42), gotExpID)
}

func TestRemoveExperienceUnknownID(t *testing.T) {
	repo := noopProfileRepo()
	repo.removeExperienceFn = func(_ context.Context, _, _ uint) error {
		return models.NewNotFoundError("Experience entry not found")
	}

	svc := NewProfileService(repo, nil)
	_, err := svc.RemoveExperience(context.Background(), 4, 999)
	assertAppErrorCode(t, err, models.CodeNotFound)
}

func TestAddEducationValidation(t *testing.T) {
	svc := NewProfileService(noopProfileRepo(), nil)

	_, err := svc.AddEducation(context.Background(), 1, EducationInput{School: "MIT"})
	assertAppErrorCode(t, err, models.CodeValidation)

	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Len(t, appErr.Fields, 3)
}

func TestGithubReposDelegates(t *testing.T) {
	gh := &githubStub{
		reposFn: func(_ context.Context, username string) ([]github.Repo, error) {
			assert.Equal(t, "annlee", username)
			return []github.Repo{{Name: "devconnect"}}, nil
		},
	}

	svc := NewProfileService(noopProfileRepo(), gh)
	repos, err := svc.GithubRepos(context.Background(), "annlee")
	require.NoError(t, err)
	require.Len(t, repos, 1)
	assert.Equal(t, "devconnect", repos[0].Name)
}

func TestGithubReposUpstreamFailure(t *testing.T) {
	gh := &githubStub{
		reposFn: func(_ context.Context, _ string) ([]github.Repo, error) {
			return nil, models.NewUpstreamError("No Github profile found")
		},
	}

	svc := NewProfileService(noopProfileRepo(), gh)
	_, err := svc.GithubRepos(context.Background(), "nobody")
	assertAppErrorCode(t, err, models.CodeUpstream)
}
