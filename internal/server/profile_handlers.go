package server

import (
	"errors"
	"time"

	"devconnect/internal/middleware"
	"devconnect/internal/models"
	"devconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetMyProfile handles GET /api/profile/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	profile, err := s.profileService.GetOwnProfile(c.Context(), userID)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Code == models.CodeNotFound {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewNotFoundError("There is no profile for this user"))
		}
		return s.respondAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// UpsertProfile handles POST /api/profile
func (s *Server) UpsertProfile(c *fiber.Ctx) error {
	var req struct {
		Status         string  `json:"status"`
		Skills         string  `json:"skills"`
		Company        *string `json:"company"`
		Website        *string `json:"website"`
		Location       *string `json:"location"`
		Bio            *string `json:"bio"`
		GithubUsername *string `json:"githubusername"`
		Youtube        *string `json:"youtube"`
		Twitter        *string `json:"twitter"`
		Facebook       *string `json:"facebook"`
		Linkedin       *string `json:"linkedin"`
		Instagram      *string `json:"instagram"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.UpsertProfile(c.Context(), middleware.CurrentUserID(c), service.UpsertProfileInput{
		Status:         req.Status,
		Skills:         req.Skills,
		Company:        req.Company,
		Website:        req.Website,
		Location:       req.Location,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		Linkedin:       req.Linkedin,
		Instagram:      req.Instagram,
	})
	if err != nil {
		return s.respondAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// GetProfiles handles GET /api/profile
func (s *Server) GetProfiles(c *fiber.Ctx) error {
	profiles, err := s.profileService.ListProfiles(c.Context())
	if err != nil {
		return s.respondAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profiles)
}

// GetProfileByUser handles GET /api/profile/user/:user_id.
// A malformed user id gets the same 400 as an absent profile.
func (s *Server) GetProfileByUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("user_id")
	if err != nil || userID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewNotFoundError("Profile not found"))
	}

	profile, err := s.profileService.GetProfileByUser(c.Context(), uint(userID))
	if err != nil {
		return s.respondProfileError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// DeleteAccount handles DELETE /api/profile. It removes the profile,
// the user's posts and the user record itself.
func (s *Server) DeleteAccount(c *fiber.Ctx) error {
	if err := s.accountService.DeleteAccount(c.Context(), middleware.CurrentUserID(c)); err != nil {
		return s.respondAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"msg": "User deleted"})
}

type datedEntryRequest struct {
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// parseEntryDates converts from/to strings into times. An empty "to" is
// an open-ended entry. Returns a written response sentinel on bad input.
func (s *Server) parseEntryDates(c *fiber.Ctx, req datedEntryRequest) (time.Time, *time.Time, error) {
	var from time.Time
	if req.From != "" {
		var err error
		from, err = parseDate(req.From)
		if err != nil {
			_ = models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewFieldValidationError(models.FieldError{Msg: "Invalid from date", Param: "from"}))
			return time.Time{}, nil, errResponseWritten
		}
	}

	var to *time.Time
	if req.To != "" {
		parsed, err := parseDate(req.To)
		if err != nil {
			_ = models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewFieldValidationError(models.FieldError{Msg: "Invalid to date", Param: "to"}))
			return time.Time{}, nil, errResponseWritten
		}
		to = &parsed
	}
	return from, to, nil
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Parse("01-02-2006", value)
}

// AddExperience handles PUT /api/profile/experience
func (s *Server) AddExperience(c *fiber.Ctx) error {
	var req struct {
		Title   string `json:"title"`
		Company string `json:"company"`
		datedEntryRequest
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	from, to, err := s.parseEntryDates(c, req.datedEntryRequest)
	if err != nil {
		return nil
	}

	profile, err := s.profileService.AddExperience(c.Context(), middleware.CurrentUserID(c), service.ExperienceInput{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        from,
		To:          to,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		return s.respondProfileError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// DeleteExperience handles DELETE /api/profile/experience/:exp_id
func (s *Server) DeleteExperience(c *fiber.Ctx) error {
	expID, err := s.parseID(c, "exp_id", "Experience entry not found")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.RemoveExperience(c.Context(), middleware.CurrentUserID(c), expID)
	if err != nil {
		return s.respondAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// AddEducation handles PUT /api/profile/education
func (s *Server) AddEducation(c *fiber.Ctx) error {
	var req struct {
		School       string `json:"school"`
		Degree       string `json:"degree"`
		FieldOfStudy string `json:"fieldofstudy"`
		datedEntryRequest
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	from, to, err := s.parseEntryDates(c, req.datedEntryRequest)
	if err != nil {
		return nil
	}

	profile, err := s.profileService.AddEducation(c.Context(), middleware.CurrentUserID(c), service.EducationInput{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         from,
		To:           to,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		return s.respondProfileError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// DeleteEducation handles DELETE /api/profile/education/:edu_id
func (s *Server) DeleteEducation(c *fiber.Ctx) error {
	eduID, err := s.parseID(c, "edu_id", "Education entry not found")
	if err != nil {
		return nil
	}

	profile, err := s.profileService.RemoveEducation(c.Context(), middleware.CurrentUserID(c), eduID)
	if err != nil {
		return s.respondAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(profile)
}

// GetGithubRepos handles GET /api/profile/github/:username
func (s *Server) GetGithubRepos(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("No Github profile found"))
	}

	repos, err := s.profileService.GithubRepos(c.Context(), username)
	if err != nil {
		return s.respondAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(repos)
}
