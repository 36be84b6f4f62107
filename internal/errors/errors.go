// errors стандартизирует ответы об ошибках HTTP-слоя.
// На вход он принимает ошибку доменного слоя (сентинелы пакета service),
// а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Политика против перечисления логинов: неизвестный логин и неверный пароль
// наружу неразличимы — один статус, одно сообщение. Различие остаётся
// в доменных ошибках и внутренних логах.
package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"auth-service/internal/service"
)

// APIError — единый формат ошибки для клиента.
// Code — короткий стабильный код для машиночитаемой обработки.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует доменную ошибку в HTTP-статус и унифицированный ответ.
//
// Поведение:
//   - err == nil — программная ошибка вызова: 500/internal, чтобы не послать
//     "200 OK" с телом ошибки и не маскировать баг;
//   - известные сентинелы service — маппинг из таблицы ниже;
//   - прочее — 500/internal (без утечки деталей).
func ToHTTP(err error) (int, ErrorResponse) {
	if err == nil {
		return internalResponse()
	}

	switch {
	case errors.Is(err, service.ErrEmptyCredentials):
		return http.StatusBadRequest, response("invalid_argument", "invalid argument")
	case errors.Is(err, service.ErrLoginTaken):
		return http.StatusBadRequest, response("login_taken", "registration is not possible")
	case errors.Is(err, service.ErrUnknownLogin), errors.Is(err, service.ErrWrongPassword):
		return http.StatusForbidden, response("invalid_credentials", "invalid login or password")
	case errors.Is(err, service.ErrInvalidToken):
		return http.StatusForbidden, response("invalid_token", "the token is invalid or the token has expired")
	default:
		return internalResponse()
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)
	write(w, r, status, resp)
}

// WriteMalformed отвечает 400 на неразобранное тело запроса.
func WriteMalformed(w http.ResponseWriter, r *http.Request) {
	write(w, r, http.StatusBadRequest, response("malformed_request", "malformed request"))
}

// WriteInternal отвечает 500 с нейтральным телом (используется из recover-мидлвара).
func WriteInternal(w http.ResponseWriter, r *http.Request) {
	status, resp := internalResponse()
	write(w, r, status, resp)
}

func write(w http.ResponseWriter, r *http.Request, status int, resp ErrorResponse) {
	// Прокидываем request_id, чтобы клиент мог репортить проблемы с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func response(code, message string) ErrorResponse {
	return ErrorResponse{Error: APIError{Code: code, Message: message}}
}

func internalResponse() (int, ErrorResponse) {
	return http.StatusInternalServerError, response("internal", "internal error")
}
