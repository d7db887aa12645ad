package server

import (
	"errors"

	"devconnect/internal/middleware"
	"devconnect/internal/models"

	"github.com/gofiber/fiber/v2"
)

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// parseID extracts a route parameter as a positive uint. A malformed or
// non-positive value gets the same not-found response as a well-formed
// id that matches nothing, so callers cannot probe id syntax.
// On failure it writes the response and returns errResponseWritten;
// callers should check: if err != nil { return nil }.
func (s *Server) parseID(c *fiber.Ctx, param, notFoundMsg string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		_ = models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError(notFoundMsg))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// respondAppError maps an application error to its HTTP status and
// writes the standardized body. Internal causes are logged but never
// sent to clients.
func (s *Server) respondAppError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		appErr = models.NewInternalError(err)
	}

	status := fiber.StatusInternalServerError
	switch appErr.Code {
	case models.CodeValidation, models.CodeConflict:
		status = fiber.StatusBadRequest
	case models.CodeUnauthorized, models.CodeForbidden:
		status = fiber.StatusUnauthorized
	case models.CodeNotFound, models.CodeUpstream:
		status = fiber.StatusNotFound
	case models.CodeInternal:
		middleware.Logger.ErrorContext(c.UserContext(), "internal error",
			"error", appErr.Error())
	}

	return models.RespondWithError(c, status, appErr)
}

// respondProfileError is respondAppError with the profile quirk: a
// missing profile is reported as 400, which clients have always
// depended on.
func (s *Server) respondProfileError(c *fiber.Ctx, err error) error {
	var appErr *models.AppError
	if errors.As(err, &appErr) && appErr.Code == models.CodeNotFound {
		return models.RespondWithError(c, fiber.StatusBadRequest, appErr)
	}
	return s.respondAppError(c, err)
}
