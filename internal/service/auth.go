package service

import (
	"auth-service/internal/models"
	"auth-service/internal/pkg/log"
	"auth-service/internal/pkg/redact"
	"auth-service/internal/storage"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// RegisterUser регистрирует нового пользователя и возвращает назначенный ID.
// Пользователь после регистрации не аутентифицирован: токены выдаёт только Login.
func (s *Service) RegisterUser(ctx context.Context, login, password string) (int64, error) {
	const op = "service.auth.RegisterUser"

	if login == "" || password == "" {
		return 0, fmt.Errorf("%s: %w", op, ErrEmptyCredentials)
	}

	_, err := s.storage.UserByLogin(ctx, login)
	if err == nil {
		return 0, fmt.Errorf("%s: %w", op, ErrLoginTaken)
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	salt, hash, err := hashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	user := &models.User{
		Login:     login,
		Salt:      salt,
		Hash:      hash,
		CreatedAt: time.Now().UTC(),
	}

	id, err := s.storage.SaveUser(ctx, user)
	if err != nil {
		// Гонка с конкурентной регистрацией того же логина: предварительная
		// проверка никого не нашла, но unique constraint вставку отклонил.
		if errors.Is(err, storage.ErrAlreadyExists) {
			return 0, fmt.Errorf("%s: %w", op, ErrLoginTaken)
		}

		return 0, fmt.Errorf("%s: %w", op, err)
	}

	log.From(ctx).Info("user_registered",
		slog.String("op", op),
		slog.String("login", redact.Login(login)),
		slog.Int64("user_id", id),
	)

	return id, nil
}

// LoginUser выполняет вход по логину и паролю и выпускает пару токенов.
func (s *Service) LoginUser(ctx context.Context, login, password string) (*models.TokenPair, error) {
	const op = "service.auth.LoginUser"

	if login == "" || password == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyCredentials)
	}

	user, err := s.storage.UserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%s: %w", op, ErrUnknownLogin)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !verifyPassword(password, user.Salt, user.Hash) {
		log.From(ctx).Warn("wrong_password",
			slog.String("op", op),
			slog.String("login", redact.Login(login)),
		)

		return nil, fmt.Errorf("%s: %w", op, ErrWrongPassword)
	}

	pair, err := s.issueTokenPair(user.ID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return pair, nil
}

// RefreshTokens выпускает новую пару токенов по валидному refresh-токену.
// Claim typ обязан быть refresh_token: access-токен переиграть
// как refresh нельзя. Старая пара не отзывается и живёт до своего exp.
func (s *Service) RefreshTokens(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	const op = "service.auth.RefreshTokens"

	claims, err := s.parseToken(ctx, refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if claims.TokenType != TokenTypeRefresh {
		log.From(ctx).Warn("token_type_mismatch",
			slog.String("op", op),
			slog.String("typ", claims.TokenType),
		)

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	pair, err := s.issueTokenPair(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return pair, nil
}

// VerifyToken проверяет access-токен и возвращает ID пользователя из claims.
// Состояние не меняет.
func (s *Service) VerifyToken(ctx context.Context, accessToken string) (int64, error) {
	const op = "service.auth.VerifyToken"

	claims, err := s.parseToken(ctx, accessToken)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if claims.TokenType != TokenTypeAccess {
		log.From(ctx).Warn("token_type_mismatch",
			slog.String("op", op),
			slog.String("typ", claims.TokenType),
		)

		return 0, fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return claims.UserID, nil
}
