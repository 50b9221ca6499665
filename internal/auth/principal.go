package auth

import (
	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// Subject returns the authenticated email address for the current request,
// taken from the JWT that the echo-jwt middleware verified and stored on the
// context. echo-jwt parses with golang-jwt/v5, so the cast here is against
// the v5 token type even though issuance uses v4. The principal lives only on
// this request's context; nothing is kept server-side between requests.
func Subject(c echo.Context) (string, bool) {
	token, ok := c.Get("user").(*jwtv5.Token)
	if !ok {
		return "", false
	}
	claims, ok := token.Claims.(jwtv5.MapClaims)
	if !ok {
		return "", false
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", false
	}
	return sub, true
}
