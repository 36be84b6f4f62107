package handlers

import (
	"net/http"
	"time"

	"auth-service/internal/models"
)

// Имена кук с токенами.
const (
	AccessTokenCookie  = "Access-Token"
	RefreshTokenCookie = "Refresh-Token"
)

// setTokenCookies выставляет пару токенов HTTP-only куками.
// Срок жизни куки совпадает со сроком жизни токена.
func setTokenCookies(w http.ResponseWriter, pair *models.TokenPair) {
	http.SetCookie(w, tokenCookie(AccessTokenCookie, pair.AccessToken, pair.AccessExpiresAt))
	http.SetCookie(w, tokenCookie(RefreshTokenCookie, pair.RefreshToken, pair.RefreshExpiresAt))
}

func tokenCookie(name, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
