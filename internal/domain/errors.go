package domain

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrStaleBankOrder    = errors.New("bank order was modified concurrently")
	ErrInvalidTransition = errors.New("invalid bank order status transition")
	ErrNotSignatory      = errors.New("user is not the bank order signatory")
)

// Ключи сообщений. Текст по ключу подставляет вызывающая сторона (см. пакет i18n).
const (
	KeyBankOrderDate                      = "bank_order.date"
	KeyBankOrderDateMissing               = "bank_order.date_missing"
	KeyBankOrderTypeMissing               = "bank_order.type_missing"
	KeyBankOrderPartnerTypeMissing        = "bank_order.partner_type_missing"
	KeyBankOrderPaymentModeMissing        = "bank_order.payment_mode_missing"
	KeyBankOrderCompanyMissing            = "bank_order.company_missing"
	KeyBankOrderBankDetailsMissing        = "bank_order.bank_details_missing"
	KeyBankOrderCurrencyMissing           = "bank_order.currency_missing"
	KeyBankOrderCurrencyNotSEPA           = "bank_order.currency_not_sepa"
	KeyBankOrderSignatoryMissing          = "bank_order.signatory_missing"
	KeyBankOrderSignatoryMismatch         = "bank_order.signatory_mismatch"
	KeyBankOrderLinesMissing              = "bank_order.lines_missing"
	KeyBankOrderLineTotalAmountInvalid    = "bank_order.line_total_amount_invalid"
	KeyBankOrderFileUnknownFormat         = "bank_order.file_unknown_format"
	KeyBankOrderIssueDuringFileGeneration = "bank_order.issue_during_file_generation"
	KeyBankOrderStatusInvalid             = "bank_order.status_invalid"

	KeyBankOrderLineCompanyMissing     = "bank_order_line.company_missing"
	KeyBankOrderLinePartnerMissing     = "bank_order_line.partner_missing"
	KeyBankOrderLineBankDetailsMissing = "bank_order_line.bank_details_missing"
	KeyBankOrderLineAmountNegative     = "bank_order_line.amount_negative"

	KeyEbicsProtocolError  = "ebics.protocol_error"
	KeyEbicsChannelOutcome = "ebics.channel_outcome"
)

// MessageKeyer реализуют ошибки, которые можно показать пользователю через каталог сообщений.
type MessageKeyer interface {
	MessageKey() string
	MessageParams() []any
}

// ValidationError ошибка проверки отдельной строки заказа. Field указывает на поле строки.
type ValidationError struct {
	Key    string
	Field  string
	Params []any
}

func NewValidationError(key, field string, params ...any) *ValidationError {
	return &ValidationError{Key: key, Field: field, Params: params}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on field %s: %s %v", e.Field, e.Key, e.Params)
}

func (e *ValidationError) MessageKey() string   { return e.Key }
func (e *ValidationError) MessageParams() []any { return e.Params }

// InconsistencyError нарушение бизнес-правила на уровне заказа. Переход прерывается и не повторяется.
type InconsistencyError struct {
	Key    string
	Params []any
	Err    error
}

func NewInconsistencyError(key string, params ...any) *InconsistencyError {
	return &InconsistencyError{Key: key, Params: params}
}

func (e *InconsistencyError) Error() string {
	if len(e.Params) == 0 {
		return "inconsistency: " + e.Key
	}
	return fmt.Sprintf("inconsistency: %s %v", e.Key, e.Params)
}

func (e *InconsistencyError) Unwrap() error        { return e.Err }
func (e *InconsistencyError) MessageKey() string   { return e.Key }
func (e *InconsistencyError) MessageParams() []any { return e.Params }

// ProtocolError ответ банковского канала не удалось разобрать как ожидаемый документ.
type ProtocolError struct {
	Reason string
	Err    error
}

func NewProtocolError(reason string, err error) *ProtocolError {
	return &ProtocolError{Reason: reason, Err: err}
}

func (e *ProtocolError) Error() string {
	if e.Err == nil {
		return "ebics protocol error: " + e.Reason
	}
	return fmt.Sprintf("ebics protocol error: %s: %s", e.Reason, e.Err.Error())
}

func (e *ProtocolError) Unwrap() error        { return e.Err }
func (e *ProtocolError) MessageKey() string   { return KeyEbicsProtocolError }
func (e *ProtocolError) MessageParams() []any { return []any{e.Reason} }

// ChannelOutcomeError ответ канала разобран, но код возврата не успешный. Code и Text хранятся
// в том виде, в каком пришли от банка.
type ChannelOutcomeError struct {
	Code   string
	Symbol string
	Text   string
}

func NewChannelOutcomeError(code, symbol, text string) *ChannelOutcomeError {
	return &ChannelOutcomeError{Code: code, Symbol: symbol, Text: text}
}

func (e *ChannelOutcomeError) Error() string {
	return fmt.Sprintf("ebics return code %s (%s): %s", e.Code, e.Symbol, e.Text)
}

func (e *ChannelOutcomeError) MessageKey() string   { return KeyEbicsChannelOutcome }
func (e *ChannelOutcomeError) MessageParams() []any { return []any{e.Code, e.Text} }

// IsBusinessError сообщает, является ли ошибка бизнес-ошибкой (ошибка данных, а не инфраструктуры).
func IsBusinessError(err error) bool {
	var valErr *ValidationError
	var incErr *InconsistencyError
	var outcomeErr *ChannelOutcomeError
	return errors.As(err, &valErr) || errors.As(err, &incErr) || errors.As(err, &outcomeErr)
}
