package server

import (
	"devconnect/internal/middleware"
	"devconnect/internal/models"
	"devconnect/internal/observability"
	"devconnect/internal/validation"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Register handles POST /api/users
func (s *Server) Register(c *fiber.Ctx) error {
	var req struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Password  string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	var fields []models.FieldError
	if validation.ValidateRequired("firstName", req.FirstName) != nil {
		fields = append(fields, models.FieldError{Msg: "First name is required", Param: "firstName"})
	}
	if validation.ValidateRequired("lastName", req.LastName) != nil {
		fields = append(fields, models.FieldError{Msg: "Last name is required", Param: "lastName"})
	}
	if validation.ValidateEmail(req.Email) != nil {
		fields = append(fields, models.FieldError{Msg: "Please include a valid email", Param: "email"})
	}
	if validation.ValidatePassword(req.Password) != nil {
		fields = append(fields, models.FieldError{Msg: "Please enter a password with 6 or more characters", Param: "password"})
	}
	if len(fields) > 0 {
		return s.respondAppError(c, models.NewFieldValidationError(fields...))
	}

	existing, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return s.respondAppError(c, err)
	}
	if existing != nil {
		return s.respondAppError(c, models.NewConflictError("User already exists"))
	}

	// bcrypt salts per-hash; the plaintext never goes further than this call
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return s.respondAppError(c, models.NewInternalError(err))
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hashed),
	}
	if err := s.userRepo.Create(c.Context(), user); err != nil {
		return s.respondAppError(c, err)
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return s.respondAppError(c, models.NewInternalError(err))
	}

	observability.AccountsRegistered.Inc()
	middleware.Logger.InfoContext(c.UserContext(), "user registered", "user_id", user.ID)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"token": tok,
		"user":  user,
	})
}

// Login handles POST /api/auth
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	var fields []models.FieldError
	if validation.ValidateEmail(req.Email) != nil {
		fields = append(fields, models.FieldError{Msg: "Please include a valid email", Param: "email"})
	}
	if validation.ValidateRequired("password", req.Password) != nil {
		fields = append(fields, models.FieldError{Msg: "Password is required", Param: "password"})
	}
	if len(fields) > 0 {
		return s.respondAppError(c, models.NewFieldValidationError(fields...))
	}

	// A wrong email and a wrong password get the same response so the
	// endpoint cannot be used to enumerate accounts.
	user, err := s.userRepo.GetByEmail(c.Context(), req.Email)
	if err != nil {
		return s.respondAppError(c, err)
	}
	if user == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(models.FieldError{Msg: "Invalid Credentials"}))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewFieldValidationError(models.FieldError{Msg: "Invalid Credentials"}))
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		return s.respondAppError(c, models.NewInternalError(err))
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"token": tok,
		"user":  user,
	})
}

// GetCurrentUser handles GET /api/auth
func (s *Server) GetCurrentUser(c *fiber.Ctx) error {
	userID := middleware.CurrentUserID(c)

	user, err := s.userRepo.GetByID(c.Context(), userID)
	if err != nil {
		return s.respondAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(user)
}
