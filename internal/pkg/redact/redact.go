// redact содержит помощники для безопасного логирования:
// логины сокращаются, пароли и токены в логи не попадают никогда.
package redact

// Login оставляет от логина первые два символа.
func Login(s string) string {
	r := []rune(s)
	if len(r) > 2 {
		return string(r[:2]) + "***"
	}

	return "***"
}

func Token() string    { return "[REDACTED_TOKEN]" }
func Password() string { return "[REDACTED_PASSWORD]" }
