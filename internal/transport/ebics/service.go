package ebics

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/groph-bankorder/internal/domain"
	"github.com/sirupsen/logrus"
)

// Service отправляет платежные файлы в банк и разбирает ответ.
type Service struct {
	client  Client
	metrics CodeRecorder
	l       *logrus.Entry
}

func NewService(client Client, l *logrus.Logger) *Service {
	return &Service{
		client:  client,
		metrics: nopRecorder{},
		l: l.WithFields(logrus.Fields{
			"component": "ebics",
			"module":    "service",
		}),
	}
}

// SetMetrics устанавливает учет кодов возврата.
func (s *Service) SetMetrics(m CodeRecorder) *Service {
	s.metrics = m
	return s
}

// SendFULRequest отправляет файл заказом FUL и возвращает разобранный код ответа.
//
// Ошибка разбора ответа возвращается как *domain.ProtocolError, неуспешный код как
// *domain.ChannelOutcomeError. Успешным считается только EBICS_OK.
//
//nolint:nonamedreturns
func (s *Service) SendFULRequest(
	ctx context.Context,
	userID string,
	file *domain.PaymentFile,
) (rc *ReturnCode, err error) {
	entry := s.l.WithFields(logrus.Fields{
		"userID": userID,
		"file":   file.Name,
		"format": file.Format,
	})

	body, submitErr := s.client.Submit(ctx, userID, OrderTypeFUL, file)
	if submitErr != nil {
		entry.WithError(submitErr).Error("submit FUL request")
		return nil, fmt.Errorf("submit FUL request: %w", submitErr)
	}
	defer func() {
		if closeErr := body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	resp := NewTransferResponse(body)
	buildErr := resp.Build()

	code := resp.ReturnCode()
	if code.Code != "" {
		s.metrics.RecordReturnCode(OrderTypeFUL, code.Code, code.Kind.String())
		entry = entry.WithFields(logrus.Fields{
			"returnCode":    code.Code,
			"symbol":        code.Symbol,
			"transactionID": resp.TransactionID(),
		})
	}
	if buildErr != nil {
		entry.WithError(buildErr).Warn("FUL request rejected")
		return nil, fmt.Errorf("FUL response: %w", buildErr)
	}

	entry.Info("FUL request accepted")
	return &code, nil
}

type nopRecorder struct{}

func (nopRecorder) RecordReturnCode(string, string, string) {}
