package pgrepo

import (
	"time"

	"github.com/fsdevblog/groph-bankorder/internal/domain"
	"github.com/shopspring/decimal"
)

const bankOrderColumns = `id, version, created_at, updated_at, bank_order_seq, order_type, partner_type,
	bank_order_date, is_multi_currency, currency_code, arithmetic_total, bank_order_total_amount,
	company_currency_total_amount, nb_of_lines, status, validation_date_time, file_generation_date_time,
	sent_date_time, file_format, payment_mode_id, sender_company_id, sender_company_name, sender_iban,
	sender_bic, sender_owner_name, signatory_user_id, ebics_user_id, file_bucket, file_key, file_location`

const bankOrderLineColumns = `id, bank_order_id, counter, sequence, bank_order_amount, company_currency_amount,
	partner_id, partner_name, receiver_company_id, receiver_company_name, receiver_iban, receiver_bic,
	receiver_owner_name, receiver_reference, receiver_label`

// bankOrderRow строка таблицы bank_orders. Необязательные колонки сканируются в указатели.
type bankOrderRow struct {
	ID                         int64
	Version                    int64
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
	BankOrderSeq               *string
	OrderType                  *string
	PartnerType                *string
	BankOrderDate              *time.Time
	IsMultiCurrency            bool
	CurrencyCode               *string
	ArithmeticTotal            decimal.Decimal
	BankOrderTotalAmount       decimal.Decimal
	CompanyCurrencyTotalAmount decimal.Decimal
	NbOfLines                  int32
	Status                     string
	ValidationDateTime         *time.Time
	FileGenerationDateTime     *time.Time
	SentDateTime               *time.Time
	FileFormat                 *string
	PaymentModeID              *int64
	SenderCompanyID            *int64
	SenderCompanyName          *string
	SenderIBAN                 *string
	SenderBIC                  *string
	SenderOwnerName            *string
	SignatoryUserID            *int64
	EbicsUserID                *string
	FileBucket                 *string
	FileKey                    *string
	FileLocation               *string
}

func (r *bankOrderRow) scanTargets() []any {
	return []any{
		&r.ID, &r.Version, &r.CreatedAt, &r.UpdatedAt, &r.BankOrderSeq, &r.OrderType, &r.PartnerType,
		&r.BankOrderDate, &r.IsMultiCurrency, &r.CurrencyCode, &r.ArithmeticTotal, &r.BankOrderTotalAmount,
		&r.CompanyCurrencyTotalAmount, &r.NbOfLines, &r.Status, &r.ValidationDateTime, &r.FileGenerationDateTime,
		&r.SentDateTime, &r.FileFormat, &r.PaymentModeID, &r.SenderCompanyID, &r.SenderCompanyName, &r.SenderIBAN,
		&r.SenderBIC, &r.SenderOwnerName, &r.SignatoryUserID, &r.EbicsUserID, &r.FileBucket, &r.FileKey,
		&r.FileLocation,
	}
}

type bankOrderLineRow struct {
	ID                    int64
	BankOrderID           int64
	Counter               int32
	Sequence              *string
	BankOrderAmount       decimal.NullDecimal
	CompanyCurrencyAmount decimal.NullDecimal
	PartnerID             *int64
	PartnerName           *string
	ReceiverCompanyID     *int64
	ReceiverCompanyName   *string
	ReceiverIBAN          *string
	ReceiverBIC           *string
	ReceiverOwnerName     *string
	ReceiverReference     *string
	ReceiverLabel         *string
}

func (r *bankOrderLineRow) scanTargets() []any {
	return []any{
		&r.ID, &r.BankOrderID, &r.Counter, &r.Sequence, &r.BankOrderAmount, &r.CompanyCurrencyAmount,
		&r.PartnerID, &r.PartnerName, &r.ReceiverCompanyID, &r.ReceiverCompanyName, &r.ReceiverIBAN,
		&r.ReceiverBIC, &r.ReceiverOwnerName, &r.ReceiverReference, &r.ReceiverLabel,
	}
}

func convertBankOrderModel(r *bankOrderRow) *domain.BankOrder {
	order := domain.BankOrder{
		ID:                         r.ID,
		Version:                    r.Version,
		CreatedAt:                  r.CreatedAt,
		UpdatedAt:                  r.UpdatedAt,
		BankOrderSeq:               deref(r.BankOrderSeq),
		OrderType:                  domain.OrderType(deref(r.OrderType)),
		PartnerType:                domain.PartnerType(deref(r.PartnerType)),
		IsMultiCurrency:            r.IsMultiCurrency,
		CurrencyCode:               deref(r.CurrencyCode),
		ArithmeticTotal:            r.ArithmeticTotal,
		BankOrderTotalAmount:       r.BankOrderTotalAmount,
		CompanyCurrencyTotalAmount: r.CompanyCurrencyTotalAmount,
		NbOfLines:                  int(r.NbOfLines),
		Status:                     domain.BankOrderStatusType(r.Status),
		ValidationDateTime:         r.ValidationDateTime,
		FileGenerationDateTime:     r.FileGenerationDateTime,
		SentDateTime:               r.SentDateTime,
		FileFormat:                 domain.FileFormat(deref(r.FileFormat)),
		PaymentModeID:              deref(r.PaymentModeID),
		SignatoryUserID:            deref(r.SignatoryUserID),
		EbicsUserID:                deref(r.EbicsUserID),
	}
	if r.BankOrderDate != nil {
		order.BankOrderDate = *r.BankOrderDate
	}
	if r.SenderCompanyID != nil {
		order.SenderCompany = &domain.Company{ID: *r.SenderCompanyID, Name: deref(r.SenderCompanyName)}
	}
	if r.SenderIBAN != nil {
		order.SenderBankDetails = &domain.BankDetails{
			IBAN:      *r.SenderIBAN,
			BIC:       deref(r.SenderBIC),
			OwnerName: deref(r.SenderOwnerName),
		}
	}
	if r.FileKey != nil {
		order.FileToSend = &domain.ArtifactRef{
			Bucket:   deref(r.FileBucket),
			Key:      *r.FileKey,
			Location: deref(r.FileLocation),
		}
	}
	return &order
}

func convertBankOrderLineModel(r *bankOrderLineRow) domain.BankOrderLine {
	line := domain.BankOrderLine{
		ID:                    r.ID,
		BankOrderID:           r.BankOrderID,
		Counter:               int(r.Counter),
		Sequence:              deref(r.Sequence),
		BankOrderAmount:       r.BankOrderAmount,
		CompanyCurrencyAmount: r.CompanyCurrencyAmount,
		ReceiverReference:     deref(r.ReceiverReference),
		ReceiverLabel:         deref(r.ReceiverLabel),
	}
	if r.PartnerID != nil {
		line.Partner = &domain.Partner{ID: *r.PartnerID, Name: deref(r.PartnerName)}
	}
	if r.ReceiverCompanyID != nil {
		line.ReceiverCompany = &domain.Company{ID: *r.ReceiverCompanyID, Name: deref(r.ReceiverCompanyName)}
	}
	if r.ReceiverIBAN != nil {
		line.ReceiverBankDetails = &domain.BankDetails{
			IBAN:      *r.ReceiverIBAN,
			BIC:       deref(r.ReceiverBIC),
			OwnerName: deref(r.ReceiverOwnerName),
		}
	}
	return line
}

// bankOrderArgs значения колонок bank_orders начиная с bank_order_seq, в порядке bankOrderColumns.
func bankOrderArgs(o *domain.BankOrder) []any {
	var senderCompanyID *int64
	var senderCompanyName *string
	if o.SenderCompany != nil {
		senderCompanyID = &o.SenderCompany.ID
		senderCompanyName = nullString(o.SenderCompany.Name)
	}
	var senderIBAN, senderBIC, senderOwner *string
	if o.SenderBankDetails != nil {
		senderIBAN = nullString(o.SenderBankDetails.IBAN)
		senderBIC = nullString(o.SenderBankDetails.BIC)
		senderOwner = nullString(o.SenderBankDetails.OwnerName)
	}
	var fileBucket, fileKey, fileLocation *string
	if o.FileToSend != nil {
		fileBucket = nullString(o.FileToSend.Bucket)
		fileKey = nullString(o.FileToSend.Key)
		fileLocation = nullString(o.FileToSend.Location)
	}
	var bankOrderDate *time.Time
	if !o.BankOrderDate.IsZero() {
		bankOrderDate = &o.BankOrderDate
	}

	return []any{
		nullString(o.BankOrderSeq), nullString(string(o.OrderType)), nullString(string(o.PartnerType)),
		bankOrderDate, o.IsMultiCurrency, nullString(o.CurrencyCode), o.ArithmeticTotal,
		o.BankOrderTotalAmount, o.CompanyCurrencyTotalAmount, o.NbOfLines, string(o.Status),
		o.ValidationDateTime, o.FileGenerationDateTime, o.SentDateTime, nullString(string(o.FileFormat)),
		nullInt64(o.PaymentModeID), senderCompanyID, senderCompanyName, senderIBAN, senderBIC, senderOwner,
		nullInt64(o.SignatoryUserID), nullString(o.EbicsUserID), fileBucket, fileKey, fileLocation,
	}
}

// bankOrderLineArgs значения колонок bank_order_lines начиная с counter, в порядке bankOrderLineColumns.
func bankOrderLineArgs(l *domain.BankOrderLine) []any {
	var partnerID *int64
	var partnerName *string
	if l.Partner != nil {
		partnerID = &l.Partner.ID
		partnerName = nullString(l.Partner.Name)
	}
	var companyID *int64
	var companyName *string
	if l.ReceiverCompany != nil {
		companyID = &l.ReceiverCompany.ID
		companyName = nullString(l.ReceiverCompany.Name)
	}
	var iban, bic, owner *string
	if l.ReceiverBankDetails != nil {
		iban = nullString(l.ReceiverBankDetails.IBAN)
		bic = nullString(l.ReceiverBankDetails.BIC)
		owner = nullString(l.ReceiverBankDetails.OwnerName)
	}
	return []any{
		l.Counter, nullString(l.Sequence), l.BankOrderAmount, l.CompanyCurrencyAmount,
		partnerID, partnerName, companyID, companyName, iban, bic, owner,
		nullString(l.ReceiverReference), nullString(l.ReceiverLabel),
	}
}

func deref[T any](v *T) T {
	var zero T
	if v == nil {
		return zero
	}
	return *v
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullInt64(v int64) *int64 {
	if v == 0 {
		return nil
	}
	return &v
}
