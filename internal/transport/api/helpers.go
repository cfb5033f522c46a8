package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fsdevblog/groph-bankorder/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

// getUserIDFromContext берет из контекста gin ID текущего пользователя. ID устанавливается в
// middlewares.AuthRequired. Если значения в контексте нет или у него другой тип, вернется 0.
func getUserIDFromContext(c *gin.Context) int64 {
	userIDStr, exist := c.Get(middlewares.CurrentUserIDKey)
	if !exist {
		return 0
	}
	userID, ok := userIDStr.(int64)
	if !ok {
		return 0
	}
	return userID
}

// bankOrderID читает :id из пути. При ошибке прерывает запрос со статусом 400 и возвращает false.
func bankOrderID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		_ = c.AbortWithError(http.StatusBadRequest, errors.New("invalid bank order id")).
			SetType(gin.ErrorTypePublic)
		return 0, false
	}
	return id, true
}

// abortWithServiceError передает ошибку сервиса в middlewares.Errors, статус выбирается там.
func abortWithServiceError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
