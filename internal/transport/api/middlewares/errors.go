package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/fsdevblog/groph-bankorder/internal/domain"
	"github.com/fsdevblog/groph-bankorder/internal/transport/ebics"
	"github.com/gin-gonic/gin"
)

// MessageRenderer подставляет текст сообщения по ключу ошибки.
type MessageRenderer interface {
	Render(key string, params []any) string
}

type errorBody struct {
	Key     string `json:"key,omitempty"`
	Params  []any  `json:"params,omitempty"`
	Message string `json:"message"`
}

func statusErrorText(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "bad request"
	case http.StatusUnauthorized:
		return "unauthorized"
	case http.StatusForbidden:
		return "forbidden"
	case http.StatusNotFound:
		return "not found"
	case http.StatusUnprocessableEntity:
		return "unprocessable entity"
	case http.StatusConflict:
		return "conflict"
	case http.StatusBadGateway:
		return "bad gateway"
	default:
		return "internal server error"
	}
}

// StatusFor http статус для ошибки сервиса.
func StatusFor(err error) int {
	var statusErr *ebics.StatusCodeError
	var protocolErr *domain.ProtocolError
	var outcomeErr *domain.ChannelOutcomeError
	var valErr *domain.ValidationError
	var incErr *domain.InconsistencyError

	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrStaleBankOrder):
		return http.StatusConflict
	case errors.Is(err, domain.ErrNotSignatory):
		return http.StatusForbidden
	case errors.As(err, &valErr), errors.As(err, &incErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &protocolErr),
		errors.As(err, &outcomeErr),
		errors.As(err, &statusErr),
		errors.Is(err, ebics.ErrChannelUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Errors выдает клиенту первую ошибку запроса. Если обработчик уже выставил статус, он сохраняется,
// иначе статус выбирается по типу ошибки. Для ошибок с ключом сообщения в ответ попадают ключ,
// параметры и текст из renderer.
func Errors(renderer MessageRenderer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		// обрабатываем только первую ошибку
		firstErr := c.Errors[0]
		status := c.Writer.Status()
		if !c.Writer.Written() {
			status = StatusFor(firstErr.Err)
		}

		var body errorBody
		var keyed domain.MessageKeyer
		switch {
		case errors.As(firstErr.Err, &keyed):
			body.Key = keyed.MessageKey()
			body.Params = keyed.MessageParams()
			body.Message = renderer.Render(body.Key, body.Params)
		case firstErr.IsType(gin.ErrorTypePublic), firstErr.IsType(gin.ErrorTypeBind):
			body.Message = firstErr.Error()
		default:
			body.Message = statusErrorText(status)
		}

		if strings.Contains(c.GetHeader("Accept"), "text/plain") {
			c.String(status, body.Message)
		} else {
			c.JSON(status, gin.H{"error": body})
		}
		c.Abort()
	}
}
