// Package auth реализует самопроверяемый bearer-токен, общий по формату
// для user- и todo-сервиса.
//
// Токен: JWT (HS256): header.claims.signature в base64url. В claims лежат
// sub (идентификатор пользователя в десятичном виде), iat, exp и jti.
// Сервисы не ходят друг к другу: каждый проверяет подпись своим экземпляром
// Codec, созданным из одного и того же AUTH_SECRET.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// MinSecretLen: минимальная длина ключа подписи (размер выхода SHA-256).
const MinSecretLen = 32

// DefaultTTL: время жизни токена по умолчанию.
const DefaultTTL = 24 * time.Hour

var (
	// ErrInvalidToken возвращается на любой отказ при проверке токена.
	// Причина отказа наружу не отдаётся.
	ErrInvalidToken = errors.New("invalid token")
	// ErrWeakSecret: ключ подписи короче MinSecretLen.
	ErrWeakSecret = errors.New("auth secret is too short")
)

// Claims: содержимое токена.
type Claims struct {
	jwt.RegisteredClaims
}

// Codec выпускает и проверяет токены. После создания не меняется,
// поэтому безопасен для конкурентного использования.
type Codec struct {
	secret []byte
	ttl    time.Duration
	method jwt.SigningMethod
}

// NewCodec создаёт Codec с ключом secret и временем жизни ttl.
func NewCodec(secret []byte, ttl time.Duration) (*Codec, error) {
	if len(secret) < MinSecretLen {
		return nil, fmt.Errorf("%w: need at least %d bytes, got %d", ErrWeakSecret, MinSecretLen, len(secret))
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}
	key := make([]byte, len(secret))
	copy(key, secret)
	return &Codec{secret: key, ttl: ttl, method: jwt.SigningMethodHS256}, nil
}

// TTL возвращает время жизни выпускаемых токенов.
func (c *Codec) TTL() time.Duration { return c.ttl }

// Encode выпускает токен для userID, действующий с now до now+TTL.
func (c *Codec) Encode(userID int64, now time.Time) (string, error) {
	if userID <= 0 {
		return "", fmt.Errorf("encode token: invalid user id %d", userID)
	}
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			ID:        uuid.NewString(),
		},
	}
	signed, err := jwt.NewWithClaims(c.method, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Decode проверяет токен на текущий момент и возвращает userID.
func (c *Codec) Decode(token string) (int64, error) {
	return c.DecodeAt(token, time.Now())
}

// DecodeAt как Decode, но со временем now для проверки срока действия.
//
// Подпись сверяется через hmac.Equal внутри jwt (сравнение за постоянное время),
// принимается только HS256, сегменты base64url декодируются строго.
// Токен без exp не принимается; при now >= exp: отказ.
func (c *Codec) DecodeAt(token string, now time.Time) (int64, error) {
	if token == "" {
		return 0, ErrInvalidToken
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, c.keyFunc,
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithExpirationRequired(),
		// неиспользуемые младшие биты последнего символа base64url должны быть нулевыми,
		// иначе разные строки подписи декодируются в одни и те же байты
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || userID <= 0 {
		return 0, fmt.Errorf("%w: bad subject %q", ErrInvalidToken, claims.Subject)
	}
	return userID, nil
}

func (c *Codec) keyFunc(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
	}
	return c.secret, nil
}
