// Package testutils помощники для тестов API заказов.
package testutils

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/fsdevblog/groph-bankorder/internal/transport/api/tokens"
	"github.com/golang-jwt/jwt/v5"
)

const bankOrdersPath = "/api/bank-orders"

type RequestArgs struct {
	Router http.Handler
	Method string
	URL    string
	// Body тело запроса в JSON, пустая строка означает запрос без тела.
	Body string
}

// BankOrderURL путь к заказу id. Непустой action добавляется через "/": "confirm", "payment/cancel".
func BankOrderURL(id any, action string) string {
	url := fmt.Sprintf("%s/%v", bankOrdersPath, id)
	if action != "" {
		url += "/" + action
	}
	return url
}

// BankOrdersURL путь коллекции заказов.
func BankOrdersURL() string {
	return bankOrdersPath
}

// MakeRequest выполняет запрос через router. Запрос с телом отправляется как application/json.
func MakeRequest(args RequestArgs, opts ...func(*http.Request)) *http.Response {
	var body io.Reader
	if args.Body != "" {
		body = strings.NewReader(args.Body)
	}

	request := httptest.NewRequest(args.Method, args.URL, body)
	if body != nil {
		request.Header.Set("Content-Type", "application/json; charset=utf-8")
	}
	for _, opt := range opts {
		opt(request)
	}

	recorder := httptest.NewRecorder()
	args.Router.ServeHTTP(recorder, request)
	return recorder.Result()
}

func WithBearer(token string) func(*http.Request) {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

func WithAccept(mime string) func(*http.Request) {
	return func(r *http.Request) {
		r.Header.Set("Accept", mime)
	}
}

// SignatoryToken выпускает токен пользователя userID, как это делает сервис авторизации.
func SignatoryToken(userID int64, ttl time.Duration, key []byte) (string, error) {
	claims := tokens.SignatoryClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		UserID: userID,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(key)
	if err != nil {
		return "", fmt.Errorf("sign token: %s", err.Error())
	}
	return token, nil
}
