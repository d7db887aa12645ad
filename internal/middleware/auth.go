// Package middleware provides authentication, logging, rate limiting
// and tracing middleware for the application.
package middleware

import (
	"context"

	"devconnect/internal/token"

	"github.com/gofiber/fiber/v2"
)

// AuthHeader is the request header carrying the identity token.
const AuthHeader = "x-auth-token"

// AuthRequired enforces authentication for protected routes. The token
// is read from the x-auth-token header; on success the subject user ID
// is stored in c.Locals("userID") and the request context, and the
// downstream handler runs. Missing and invalid tokens both yield 401.
func AuthRequired(issuer *token.Issuer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tok := c.Get(AuthHeader)
		if tok == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "No token, authorization denied",
			})
		}

		userID, err := issuer.Verify(tok)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Token is not valid",
			})
		}

		c.Locals("userID", userID)
		c.SetUserContext(context.WithValue(c.UserContext(), UserIDKey, userID))

		return c.Next()
	}
}

// CurrentUserID returns the authenticated user ID placed in locals by
// AuthRequired. It returns 0 when the request is unauthenticated.
func CurrentUserID(c *fiber.Ctx) uint {
	if uid, ok := c.Locals("userID").(uint); ok {
		return uid
	}
	return 0
}
