package ebics

import (
	"errors"
	"fmt"
)

var (
	ErrResponseAlreadyParsed = errors.New("ebics: transfer response already parsed")
	// ErrChannelUnavailable банк недоступен, запрос отклонен без обращения к серверу.
	ErrChannelUnavailable = errors.New("ebics: bank channel unavailable")
)

type StatusCodeError struct {
	Code int
}

func NewStatusCodeError(code int) *StatusCodeError {
	return &StatusCodeError{Code: code}
}

func (e *StatusCodeError) Error() string {
	return fmt.Sprintf("Unexpected status code %d", e.Code)
}
