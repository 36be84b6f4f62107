// service содержит бизнес-логику сервиса аутентификации:
// регистрацию пользователей, проверку учётных данных, выпуск/валидацию
// JWT-токенов и работу с хранилищем через интерфейсы из пакета storage.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданное хранилище (storage.Storage) потокобезопасно.
//   - Ошибки возвращаются значениями и далее маппятся
//     транспортом на HTTP-статусы (см. комментарии к переменным ошибок ниже).
package service

import (
	"auth-service/internal/config"
	"auth-service/internal/storage"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrLoginTaken — логин уже занят другим пользователем.
	// Транспорт: HTTP 400 (контракт /registrate).
	ErrLoginTaken = errors.New("login already taken")

	// ErrUnknownLogin — пользователь с таким логином не найден.
	// Транспорт: HTTP 403 — наружу отвечаем так же, как на неверный пароль,
	// чтобы не давать перечислять логины.
	ErrUnknownLogin = errors.New("unknown login")

	// ErrWrongPassword — пароль не прошёл проверку.
	// Транспорт: HTTP 403.
	ErrWrongPassword = errors.New("wrong password")

	// ErrInvalidToken — токен некорректен: битая подпись, чужой алгоритм,
	// неправильный формат, не тот typ или истёкший срок. Причины различаются
	// только во внутренних логах. Транспорт: HTTP 403.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrEmptyCredentials — пустой логин или пароль.
	// Транспорт: HTTP 400.
	ErrEmptyCredentials = errors.New("empty credentials")
)

// Service описывает бизнес-логику сервиса аутентификации.
type Service struct {
	storage storage.Storage
	cfg     config.AuthConfig
	method  *jwt.SigningMethodHMAC
}

// New создаёт новый экземпляр Service.
// Метод подписи резолвится один раз: cfg.Algorithm после старта не меняется.
func New(storage storage.Storage, cfg config.AuthConfig) (*Service, error) {
	const op = "service.New"

	method, err := cfg.SigningMethod()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Service{
		storage: storage,
		cfg:     cfg,
		method:  method,
	}, nil
}
