package service

import (
	"auth-service/internal/models"
	"auth-service/internal/pkg/log"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Значения claim "typ".
const (
	TokenTypeAccess  = "access_token"
	TokenTypeRefresh = "refresh_token"
)

// tokenClaims — полезная нагрузка токена: идентификатор пользователя,
// тип токена и стандартные exp/iat.
type tokenClaims struct {
	UserID    int64  `json:"id"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// issueToken выпускает подписанный токен с exp = now + ttl.
// Чистая функция от входа, текущего времени и секрета; побочных эффектов нет.
func (s *Service) issueToken(userID int64, typ string, now time.Time, ttl time.Duration) (string, time.Time, error) {
	const op = "service.token.issueToken"

	expiresAt := now.Add(ttl)
	claims := tokenClaims{
		UserID:    userID,
		TokenType: typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(s.method, claims)
	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%s: %w", op, err)
	}

	return signed, expiresAt, nil
}

// issueTokenPair выпускает пару access+refresh для пользователя.
// TTL у access и refresh настраиваются раздельно (refresh по умолчанию дольше).
func (s *Service) issueTokenPair(userID int64) (*models.TokenPair, error) {
	const op = "service.token.issueTokenPair"

	now := time.Now().UTC()

	access, accessExp, err := s.issueToken(userID, TokenTypeAccess, now, s.cfg.AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	refresh, refreshExp, err := s.issueToken(userID, TokenTypeRefresh, now, s.cfg.RefreshTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		AccessExpiresAt:  accessExp,
		RefreshExpiresAt: refreshExp,
	}, nil
}

// parseToken декодирует и проверяет токен: подпись тем же секретом,
// закреплённый алгоритм, непросроченный exp. Все причины отказа для
// вызывающего схлопываются в ErrInvalidToken; различие остаётся в логах.
func (s *Service) parseToken(ctx context.Context, tokenStr string) (*tokenClaims, error) {
	const op = "service.token.parseToken"

	lg := log.From(ctx)

	token, err := jwt.ParseWithClaims(tokenStr, &tokenClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != s.method {
				return nil, fmt.Errorf("%s: unexpected signing method", op)
			}

			return []byte(s.cfg.Secret), nil
		},
		jwt.WithValidMethods([]string{s.method.Alg()}),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			lg.Warn("token_expired", slog.String("op", op))
		} else {
			lg.Warn("token_invalid",
				slog.String("op", op),
				slog.String("reason", err.Error()),
			)
		}

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return claims, nil
}
