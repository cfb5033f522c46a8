package pgrepo

import (
	"context"

	"github.com/fsdevblog/groph-bankorder/internal/domain"
	"github.com/fsdevblog/groph-bankorder/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const (
	findInvoicePaymentByBankOrderSQL = `SELECT id, created_at, updated_at, bank_order_id, amount, status
FROM invoice_payments WHERE bank_order_id = $1`

	updateInvoicePaymentStatusSQL = `UPDATE invoice_payments SET status = $2, updated_at = now() WHERE id = $1`
)

type InvoicePaymentRepository struct {
	db uow.DBTX
}

func NewInvoicePaymentRepository(db uow.DBTX) *InvoicePaymentRepository {
	return &InvoicePaymentRepository{db: db}
}

// FindByBankOrderID возвращает платеж, связанный с заказом, или domain.ErrRecordNotFound.
func (r *InvoicePaymentRepository) FindByBankOrderID(
	ctx context.Context,
	bankOrderID int64,
) (*domain.InvoicePayment, error) {
	var payment domain.InvoicePayment
	var status string
	err := r.db.QueryRow(ctx, findInvoicePaymentByBankOrderSQL, bankOrderID).Scan(
		&payment.ID, &payment.CreatedAt, &payment.UpdatedAt, &payment.BankOrderID, &payment.Amount, &status,
	)
	if err != nil {
		return nil, convertErr(err, "finding invoice payment of bank order %d", bankOrderID)
	}
	payment.Status = domain.InvoicePaymentStatusType(status)
	return &payment, nil
}

// UpdateStatus меняет статус платежа. Отсутствующий платеж дает domain.ErrRecordNotFound.
func (r *InvoicePaymentRepository) UpdateStatus(
	ctx context.Context,
	id int64,
	status domain.InvoicePaymentStatusType,
) error {
	tag, err := r.db.Exec(ctx, updateInvoicePaymentStatusSQL, id, string(status))
	if err != nil {
		return convertErr(err, "updating status of invoice payment %d", id)
	}
	if tag.RowsAffected() == 0 {
		return convertErr(pgx.ErrNoRows, "updating status of invoice payment %d", id)
	}
	return nil
}
