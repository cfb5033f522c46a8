package tokens

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired  = errors.New("token expired")
	ErrInvalidClaims = errors.New("invalid claims")
)

// SignatoryClaims токен пользователя, который работает с заказами. UserID сверяется с подписантом
// заказа при подписи. Токены выпускает внешний сервис авторизации.
type SignatoryClaims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"uid"`
}

// ParseSignatoryToken проверяет подпись (HS256) и срок действия токена.
func ParseSignatoryToken(tokenString string, key []byte) (*SignatoryClaims, error) {
	claims := new(SignatoryClaims)
	_, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parse signatory token: %w", err)
	}
	if claims.UserID <= 0 {
		return nil, ErrInvalidClaims
	}
	return claims, nil
}
