package api

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func (handler *Handler) buildToken(userID uint) (string, error) {
	now := handler.now()
	claims := authClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(authTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}

// setAuthCookie issues the session cookie. Cross-site frontends need
// SameSite=None, which browsers only honor together with Secure, so
// both are tied to production mode.
func (handler *Handler) setAuthCookie(c *fiber.Ctx, userID uint) error {
	token, err := handler.buildToken(userID)
	if err != nil {
		return err
	}

	sameSite := "Strict"
	if handler.production {
		sameSite = "None"
	}
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.production,
		SameSite: sameSite,
		Expires:  handler.now().Add(authTokenTTL),
	})
	return nil
}

func (handler *Handler) clearAuthCookie(c *fiber.Ctx) {
	sameSite := "Strict"
	if handler.production {
		sameSite = "None"
	}
	c.Cookie(&fiber.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   handler.production,
		SameSite: sameSite,
		Expires:  handler.now().Add(-1 * time.Hour),
	})
}
