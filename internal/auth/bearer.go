package auth

import "strings"

// BearerScheme: префикс значения заголовка Authorization (с одним пробелом, регистр важен).
const BearerScheme = "Bearer "

// BearerToken извлекает токен из значения заголовка Authorization.
// ok=false, если заголовок пуст, схема другая или токен после префикса пустой.
func BearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, BearerScheme) {
		return "", false
	}
	token := header[len(BearerScheme):]
	if token == "" {
		return "", false
	}
	return token, true
}

// Authorize проверяет заголовок на границе запроса и возвращает userID или ErrInvalidToken.
// Отсутствие заголовка, чужая схема, битая подпись и истёкший срок неразличимы для вызывающего.
func (c *Codec) Authorize(header string) (int64, error) {
	token, ok := BearerToken(header)
	if !ok {
		return 0, ErrInvalidToken
	}
	return c.Decode(token)
}
