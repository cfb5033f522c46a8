package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Company struct {
	ID   int64
	Name string
}

type Partner struct {
	ID   int64
	Name string
}

type BankDetails struct {
	IBAN      string
	BIC       string
	OwnerName string
}

// CountryCode возвращает код страны из первых двух символов IBAN.
func (b BankDetails) CountryCode() string {
	if len(b.IBAN) < 2 { //nolint:mnd
		return ""
	}
	return b.IBAN[:2]
}

// ArtifactRef ссылка на загруженный в хранилище файл.
type ArtifactRef struct {
	Bucket   string
	Key      string
	Location string
}

type BankOrder struct {
	ID                         int64
	Version                    int64
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
	BankOrderSeq               string
	OrderType                  OrderType
	PartnerType                PartnerType
	BankOrderDate              time.Time
	IsMultiCurrency            bool
	CurrencyCode               string
	ArithmeticTotal            decimal.Decimal
	BankOrderTotalAmount       decimal.Decimal
	CompanyCurrencyTotalAmount decimal.Decimal
	NbOfLines                  int
	Status                     BankOrderStatusType
	ValidationDateTime         *time.Time
	FileGenerationDateTime     *time.Time
	SentDateTime               *time.Time
	FileFormat                 FileFormat
	PaymentModeID              int64
	SenderCompany              *Company
	SenderBankDetails          *BankDetails
	SignatoryUserID            int64
	EbicsUserID                string
	FileToSend                 *ArtifactRef
	Lines                      []BankOrderLine
}

type BankOrderLine struct {
	ID                    int64
	BankOrderID           int64
	Counter               int
	Sequence              string
	BankOrderAmount       decimal.NullDecimal
	CompanyCurrencyAmount decimal.NullDecimal
	Partner               *Partner
	ReceiverCompany       *Company
	ReceiverBankDetails   *BankDetails
	ReceiverReference     string
	ReceiverLabel         string
}

// Clone возвращает глубокую копию заказа. Переходы жизненного цикла работают с копией, чтобы
// неудачный переход не оставлял следов в исходной структуре.
func (o *BankOrder) Clone() *BankOrder {
	if o == nil {
		return nil
	}
	c := *o
	c.ValidationDateTime = cloneTime(o.ValidationDateTime)
	c.FileGenerationDateTime = cloneTime(o.FileGenerationDateTime)
	c.SentDateTime = cloneTime(o.SentDateTime)
	if o.SenderCompany != nil {
		company := *o.SenderCompany
		c.SenderCompany = &company
	}
	if o.SenderBankDetails != nil {
		details := *o.SenderBankDetails
		c.SenderBankDetails = &details
	}
	if o.FileToSend != nil {
		ref := *o.FileToSend
		c.FileToSend = &ref
	}
	if o.Lines != nil {
		c.Lines = make([]BankOrderLine, len(o.Lines))
		for i, line := range o.Lines {
			c.Lines[i] = line.clone()
		}
	}
	return &c
}

func (l BankOrderLine) clone() BankOrderLine {
	if l.Partner != nil {
		partner := *l.Partner
		l.Partner = &partner
	}
	if l.ReceiverCompany != nil {
		company := *l.ReceiverCompany
		l.ReceiverCompany = &company
	}
	if l.ReceiverBankDetails != nil {
		details := *l.ReceiverBankDetails
		l.ReceiverBankDetails = &details
	}
	return l
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

type InvoicePayment struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	BankOrderID int64
	Amount      decimal.Decimal
	Status      InvoicePaymentStatusType
}

// PaymentFile сгенерированный платежный файл, готовый к отправке в банк.
type PaymentFile struct {
	Name    string
	Format  FileFormat
	Content []byte
}

// BankOrderEvent событие об изменении статуса заказа, публикуется после фиксации транзакции.
type BankOrderEvent struct {
	BankOrderID  int64               `json:"bankOrderId"`
	BankOrderSeq string              `json:"bankOrderSeq"`
	Operation    string              `json:"operation"`
	Status       BankOrderStatusType `json:"status"`
	OccurredAt   time.Time           `json:"occurredAt"`
}
