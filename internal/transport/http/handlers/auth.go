package handlers

import (
	"net/http"

	apierrors "auth-service/internal/errors"
	"auth-service/internal/service"
)

// Registrate регистрирует нового пользователя.
// 201 при успехе; 400 если логин занят или тело некорректно.
// Токены не выдаются: после регистрации нужен явный вход.
func (h *Handlers) Registrate(w http.ResponseWriter, r *http.Request) {
	var in credentialsRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteMalformed(w, r)
		return
	}

	if _, err := h.service.RegisterUser(r.Context(), in.Usr, in.Pwd); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, messageResponse{Message: "registration completed successfully"})
}

// Auth выполняет вход: 200 + куки Access-Token/Refresh-Token при успехе;
// 403 при неверной паре логин/пароль (без различения причин).
func (h *Handlers) Auth(w http.ResponseWriter, r *http.Request) {
	var in credentialsRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteMalformed(w, r)
		return
	}

	pair, err := h.service.LoginUser(r.Context(), in.Usr, in.Pwd)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	setTokenCookies(w, pair)
	writeJSON(w, http.StatusOK, messageResponse{Message: "authentication successful"})
}

// Refresh обновляет пару токенов по куке Refresh-Token.
// 200 + свежие куки при успехе; 403 если токен невалиден/просрочен/не refresh.
func (h *Handlers) Refresh(w http.ResponseWriter, r *http.Request) {
	token, err := tokenFromCookie(r, RefreshTokenCookie)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	pair, err := h.service.RefreshTokens(r.Context(), token)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	setTokenCookies(w, pair)
	writeJSON(w, http.StatusOK, messageResponse{Message: "the token was updated successfully"})
}

// Secret — защищённый ресурс-заглушка: 200 при валидном Access-Token, иначе 403.
func (h *Handlers) Secret(w http.ResponseWriter, r *http.Request) {
	token, err := tokenFromCookie(r, AccessTokenCookie)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if _, err := h.service.VerifyToken(r.Context(), token); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messageResponse{Message: "access token is valid, here is the secret"})
}

// tokenFromCookie достаёт токен из куки.
// Отсутствующая кука неотличима для клиента от невалидного токена.
func tokenFromCookie(r *http.Request, name string) (string, error) {
	c, err := r.Cookie(name)
	if err != nil || c.Value == "" {
		return "", service.ErrInvalidToken
	}

	return c.Value, nil
}
