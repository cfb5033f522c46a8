package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-bankorder/internal/domain"
	"github.com/fsdevblog/groph-bankorder/internal/service"
)

// BankOrderServicer интерфейс исключительно для моков.
type BankOrderServicer interface {
	Create(ctx context.Context, args service.CreateBankOrderArgs) (*domain.BankOrder, error)
	Get(ctx context.Context, id int64) (*domain.BankOrder, error)
	Confirm(ctx context.Context, id int64) (*domain.BankOrder, error)
	Sign(ctx context.Context, id, signerID int64) (*domain.BankOrder, error)
	Validate(ctx context.Context, id int64) (*domain.BankOrder, error)
	MarkSent(ctx context.Context, id int64) (*domain.BankOrder, error)
	CancelBankOrder(ctx context.Context, id int64) (*domain.BankOrder, error)
	ValidatePayment(ctx context.Context, id int64) error
	CancelPayment(ctx context.Context, id int64) error
}
