package models

import "time"

// User - учётная запись пользователя.
//
// Salt и Hash - непрозрачные байтовые последовательности: соль генерируется
// заново при каждой регистрации, хэш - результат argon2id(password, salt).
// Наружу за границу storage/service они не выходят.
type User struct {
	// ID - уникальный идентификатор, назначается хранилищем (BIGSERIAL).
	ID int64
	// Login - уникальный логин (чувствителен к регистру).
	Login string
	// Salt - соль для хэширования пароля.
	Salt []byte
	// Hash - хэш пароля.
	Hash []byte
	// CreatedAt - время создания записи (UTC).
	CreatedAt time.Time
}
