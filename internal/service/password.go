package service

import (
	"crypto/rand"
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// hashParams — стоимостные параметры argon2id.
type hashParams struct {
	time    uint32
	memory  uint32
	threads uint8
	saltLen uint32
	keyLen  uint32
}

// Параметры по рекомендациям OWASP; соль и хэш храним отдельными байтовыми
// полями записи пользователя.
var defaultHashParams = hashParams{
	time:    1,
	memory:  64 * 1024, // КиБ
	threads: 4,
	saltLen: 16,
	keyLen:  32,
}

// hashPassword генерирует свежую случайную соль и возвращает пару (соль, хэш).
// Отказ источника случайности — фатальная внутренняя ошибка, не пользовательская.
func hashPassword(password string) ([]byte, []byte, error) {
	const op = "service.password.hashPassword"

	salt := make([]byte, defaultHashParams.saltLen)
	if _, err := rand.Read(salt); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}

	return salt, hashPasswordWithSalt(password, salt), nil
}

// hashPasswordWithSalt вычисляет argon2id-хэш пароля под заданной солью.
func hashPasswordWithSalt(password string, salt []byte) []byte {
	p := defaultHashParams
	return argon2.IDKey([]byte(password), salt, p.time, p.memory, p.threads, p.keyLen)
}

// verifyPassword пересчитывает хэш под той же солью и сравнивает с ожидаемым
// за константное время: тайминг не коррелирует с частичными совпадениями.
func verifyPassword(password string, salt, expected []byte) bool {
	computed := hashPasswordWithSalt(password, salt)
	return subtle.ConstantTimeCompare(computed, expected) == 1
}
