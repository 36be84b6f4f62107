// handlers содержит реализацию HTTP-эндпоинтов сервиса аутентификации.
// Здесь выполняется только разбор запросов, работа с куками и маппинг
// данных/ошибок доменного слоя (service) в HTTP.
// Вся бизнес-логика находится в пакете service.
//
// Принципы:
//   - Контекст запроса прокидывается в сервис без потерь;
//   - Ошибки сервиса транслируются в статусы через internal/errors:
//   - ErrEmptyCredentials -> 400;
//   - ErrLoginTaken -> 400;
//   - ErrUnknownLogin/ErrWrongPassword -> 403 с одинаковым телом;
//   - ErrInvalidToken -> 403;
//   - иные ошибки -> 500 c единым безопасным сообщением;
//   - Токены передаются только через HTTP-only куки: клиентскому скрипту
//     они недоступны.
package handlers

import (
	"encoding/json"
	"net/http"

	"auth-service/internal/service"
)

// Handlers агрегирует зависимости эндпоинтов.
type Handlers struct {
	service *service.Service
}

func New(s *service.Service) *Handlers {
	return &Handlers{service: s}
}

// credentialsRequest — тело запросов /registrate и /auth.
type credentialsRequest struct {
	Usr string `json:"usr"`
	Pwd string `json:"pwd"`
}

// messageResponse — тело успешного ответа.
type messageResponse struct {
	Message string `json:"message"`
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}
