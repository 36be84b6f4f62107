package models

import "time"

// TokenPair — пара токенов, выдаваемая при аутентификации и обновлении.
//
// Описание:
//   - AccessToken — короткоживущий JWT для доступа к защищённым ресурсам;
//   - RefreshToken — JWT с typ=refresh_token, предъявляется для выпуска новой пары;
//   - AccessExpiresAt/RefreshExpiresAt — моменты истечения токенов (UTC).
//
// Токены самодостаточны и на сервере не хранятся.
type TokenPair struct {
	// AccessToken — JWT для авторизации запросов.
	AccessToken string
	// RefreshToken — JWT для обновления пары.
	RefreshToken string
	// AccessExpiresAt — время истечения действия access-токена (UTC).
	AccessExpiresAt time.Time
	// RefreshExpiresAt — время истечения действия refresh-токена (UTC).
	RefreshExpiresAt time.Time
}
