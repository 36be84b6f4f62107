package storage

import (
	"auth-service/internal/models"
	"context"
	"errors"
)

var (
	// ErrNotFound — запись не найдена (пользователь).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — нарушение уникальности (login).
	ErrAlreadyExists = errors.New("already exists")
)

// UserStorage выполняет операции над пользователями.
//
// Уникальность логина обязана обеспечиваться хранилищем атомарно
// (unique constraint): при конкурентных вставках одного логина ровно одна
// проходит, остальные получают ErrAlreadyExists.
type UserStorage interface {
	// SaveUser создает нового пользователя и возвращает назначенный хранилищем ID.
	SaveUser(ctx context.Context, user *models.User) (int64, error)
	// UserByLogin находит пользователя по логину (точное совпадение).
	UserByLogin(ctx context.Context, login string) (*models.User, error)
}

// Storage задает контракт работы с БД.
type Storage interface {
	UserStorage
	Close()
}
