package service

import (
	"context"

	"github.com/fsdevblog/groph-bankorder/internal/domain"
	"github.com/fsdevblog/groph-bankorder/internal/transport/ebics"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type BankOrderRepository interface {
	Create(ctx context.Context, order *domain.BankOrder) (*domain.BankOrder, error)
	FindByID(ctx context.Context, id int64) (*domain.BankOrder, error)
	Save(ctx context.Context, order *domain.BankOrder) error
}

type InvoicePaymentRepository interface {
	FindByBankOrderID(ctx context.Context, bankOrderID int64) (*domain.InvoicePayment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.InvoicePaymentStatusType) error
}

// FileGenerator строит платежный файл заказа по его FileFormat и прикрепляет его к заказу.
type FileGenerator interface {
	GenerateFile(ctx context.Context, order *domain.BankOrder) (*domain.PaymentFile, error)
}

// TransferSender отправляет файл в банк по EBICS (заказ FUL) и возвращает разобранный код ответа.
type TransferSender interface {
	SendFULRequest(ctx context.Context, userID string, file *domain.PaymentFile) (*ebics.ReturnCode, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.BankOrderEvent) error
}

type TransitionRecorder interface {
	RecordTransition(operation string, status domain.BankOrderStatusType, err error)
}
