package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"habitly/internal/auth"
	apperrors "habitly/internal/errors"
	"habitly/internal/model"
	"habitly/internal/service"
)

// domainError converts a service error into the echo error the route returns.
func domainError(err error) *echo.HTTPError {
	he := apperrors.MapToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}

// currentUser resolves the request's authenticated principal to its stored
// user record. The subject comes from the JWT verified by the middleware on
// this request only; nothing is shared across requests.
func currentUser(c echo.Context, users service.UserService) (*model.User, error) {
	subject, ok := auth.Subject(c)
	if !ok {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
			Error: "missing or invalid token",
			Code:  "UNAUTHORIZED",
		})
	}
	user, err := users.GetByEmail(c.Request().Context(), subject)
	if err != nil {
		return nil, domainError(err)
	}
	return user, nil
}
