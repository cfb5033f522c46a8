package pgrepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/groph-bankorder/internal/domain"
	"github.com/fsdevblog/groph-bankorder/internal/repository/repoargs"
	"github.com/fsdevblog/groph-bankorder/pkg/uow"
	"github.com/jackc/pgx/v5"
)

const (
	insertBankOrderSQL = `INSERT INTO bank_orders (bank_order_seq, order_type, partner_type, bank_order_date,
	is_multi_currency, currency_code, arithmetic_total, bank_order_total_amount, company_currency_total_amount,
	nb_of_lines, status, validation_date_time, file_generation_date_time, sent_date_time, file_format,
	payment_mode_id, sender_company_id, sender_company_name, sender_iban, sender_bic, sender_owner_name,
	signatory_user_id, ebics_user_id, file_bucket, file_key, file_location)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23,
	$24, $25, $26)
RETURNING id, version, created_at, updated_at`

	// версия увеличивается на каждое сохранение. Несовпадение версии означает, что заказ изменили параллельно.
	updateBankOrderSQL = `UPDATE bank_orders SET bank_order_seq = $3, order_type = $4, partner_type = $5,
	bank_order_date = $6, is_multi_currency = $7, currency_code = $8, arithmetic_total = $9,
	bank_order_total_amount = $10, company_currency_total_amount = $11, nb_of_lines = $12, status = $13,
	validation_date_time = $14, file_generation_date_time = $15, sent_date_time = $16, file_format = $17,
	payment_mode_id = $18, sender_company_id = $19, sender_company_name = $20, sender_iban = $21,
	sender_bic = $22, sender_owner_name = $23, signatory_user_id = $24, ebics_user_id = $25, file_bucket = $26,
	file_key = $27, file_location = $28, version = version + 1, updated_at = now()
WHERE id = $1 AND version = $2
RETURNING version, updated_at`

	findBankOrderSQL = `SELECT ` + bankOrderColumns + ` FROM bank_orders WHERE id = $1`

	insertBankOrderLineSQL = `INSERT INTO bank_order_lines (bank_order_id, counter, sequence, bank_order_amount,
	company_currency_amount, partner_id, partner_name, receiver_company_id, receiver_company_name, receiver_iban,
	receiver_bic, receiver_owner_name, receiver_reference, receiver_label)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
RETURNING id`

	updateBankOrderLineSQL = `UPDATE bank_order_lines SET counter = $3, sequence = $4, bank_order_amount = $5,
	company_currency_amount = $6, partner_id = $7, partner_name = $8, receiver_company_id = $9,
	receiver_company_name = $10, receiver_iban = $11, receiver_bic = $12, receiver_owner_name = $13,
	receiver_reference = $14, receiver_label = $15
WHERE id = $1 AND bank_order_id = $2`

	findBankOrderLinesSQL = `SELECT ` + bankOrderLineColumns + `
FROM bank_order_lines WHERE bank_order_id = $1 ORDER BY id`
)

type BankOrderRepository struct {
	db uow.DBTX
}

func NewBankOrderRepository(db uow.DBTX) *BankOrderRepository {
	return &BankOrderRepository{db: db}
}

// Create сохраняет новый заказ вместе со строками. Возвращает копию заказа с присвоенными идентификаторами.
func (r *BankOrderRepository) Create(ctx context.Context, order *domain.BankOrder) (*domain.BankOrder, error) {
	created := order.Clone()

	row := r.db.QueryRow(ctx, insertBankOrderSQL, bankOrderArgs(created)...)
	if err := row.Scan(&created.ID, &created.Version, &created.CreatedAt, &created.UpdatedAt); err != nil {
		return nil, convertErr(err, "creating bank order")
	}

	for i := range created.Lines {
		created.Lines[i].BankOrderID = created.ID
	}

	var linesErr error
	r.insertLines(ctx, created.ID, created.Lines, func(i int, id int64, err error) {
		if err != nil {
			linesErr = errors.Join(linesErr, err)
			return
		}
		created.Lines[i].ID = id
	})
	if linesErr != nil {
		return nil, linesErr
	}
	return created, nil
}

// FindByID возвращает заказ со строками, отсортированными по id. Если заказа нет, вернется
// domain.ErrRecordNotFound.
func (r *BankOrderRepository) FindByID(ctx context.Context, id int64) (*domain.BankOrder, error) {
	var orderRow bankOrderRow
	if err := r.db.QueryRow(ctx, findBankOrderSQL, id).Scan(orderRow.scanTargets()...); err != nil {
		return nil, convertErr(err, "finding bank order with id %d", id)
	}
	order := convertBankOrderModel(&orderRow)

	rows, queryErr := r.db.Query(ctx, findBankOrderLinesSQL, id)
	if queryErr != nil {
		return nil, convertErr(queryErr, "finding lines of bank order %d", id)
	}
	defer rows.Close()

	for rows.Next() {
		var lineRow bankOrderLineRow
		if err := rows.Scan(lineRow.scanTargets()...); err != nil {
			return nil, convertErr(err, "scanning line of bank order %d", id)
		}
		order.Lines = append(order.Lines, convertBankOrderLineModel(&lineRow))
	}
	if err := rows.Err(); err != nil {
		return nil, convertErr(err, "reading lines of bank order %d", id)
	}
	return order, nil
}

// Save сохраняет заказ и его строки. Строки без id добавляются. В случае, если версия заказа в базе
// отличается от order.Version, вернется domain.ErrStaleBankOrder. При успехе order получает новую версию.
func (r *BankOrderRepository) Save(ctx context.Context, order *domain.BankOrder) error {
	args := append([]any{order.ID, order.Version}, bankOrderArgs(order)...)

	row := r.db.QueryRow(ctx, updateBankOrderSQL, args...)
	if err := row.Scan(&order.Version, &order.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf(
				"[repository/saving bank order %d version %d] %w", order.ID, order.Version, domain.ErrStaleBankOrder,
			)
		}
		return convertErr(err, "saving bank order %d", order.ID)
	}

	var existing, fresh []int
	for i, line := range order.Lines {
		if line.ID == 0 {
			fresh = append(fresh, i)
		} else {
			existing = append(existing, i)
		}
	}

	var linesErr error
	if len(existing) > 0 {
		r.updateLines(ctx, order, existing, func(_ int, err error) {
			linesErr = errors.Join(linesErr, err)
		})
	}
	if len(fresh) > 0 {
		newLines := make([]domain.BankOrderLine, len(fresh))
		for j, i := range fresh {
			newLines[j] = order.Lines[i]
		}
		r.insertLines(ctx, order.ID, newLines, func(j int, id int64, err error) {
			if err != nil {
				linesErr = errors.Join(linesErr, err)
				return
			}
			order.Lines[fresh[j]].ID = id
			order.Lines[fresh[j]].BankOrderID = order.ID
		})
	}
	return linesErr
}

// insertLines батч вставка строк заказа.
func (r *BankOrderRepository) insertLines(
	ctx context.Context,
	orderID int64,
	lines []domain.BankOrderLine,
	fn repoargs.BankOrderLineBatchQueryRow,
) {
	if len(lines) == 0 {
		return
	}
	batch := new(pgx.Batch)
	for i := range lines {
		batch.Queue(insertBankOrderLineSQL, append([]any{orderID}, bankOrderLineArgs(&lines[i])...)...)
	}

	results := r.db.SendBatch(ctx, batch)
	for i := range lines {
		var id int64
		err := results.QueryRow().Scan(&id)
		fn(i, id, convertErr(err, "inserting line %d of bank order %d", i+1, orderID))
	}
	if err := results.Close(); err != nil {
		fn(len(lines)-1, 0, convertErr(err, "closing line batch of bank order %d", orderID))
	}
}

// updateLines батч обновление строк заказа с индексами idx.
func (r *BankOrderRepository) updateLines(
	ctx context.Context,
	order *domain.BankOrder,
	idx []int,
	fn repoargs.BankOrderLineBatchExec,
) {
	batch := new(pgx.Batch)
	for _, i := range idx {
		line := &order.Lines[i]
		batch.Queue(updateBankOrderLineSQL, append([]any{line.ID, order.ID}, bankOrderLineArgs(line)...)...)
	}

	results := r.db.SendBatch(ctx, batch)
	for _, i := range idx {
		tag, err := results.Exec()
		if err == nil && tag.RowsAffected() == 0 {
			err = pgx.ErrNoRows
		}
		if err != nil {
			fn(i, convertErr(err, "updating line %d of bank order %d", order.Lines[i].ID, order.ID))
		}
	}
	if err := results.Close(); err != nil {
		fn(-1, convertErr(err, "closing line batch of bank order %d", order.ID))
	}
}
