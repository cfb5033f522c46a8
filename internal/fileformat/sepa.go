package fileformat

import (
	"strings"
	"time"

	"github.com/fsdevblog/groph-bankorder/internal/domain"
	"github.com/shopspring/decimal"
)

// Ограничения длины полей ISO 20022.
const (
	maxIDLen    = 35
	maxNameLen  = 70
	maxUstrdLen = 140

	sepaCurrency       = "EUR"
	creationTimeLayout = "2006-01-02T15:04:05"
)

type party struct {
	Name string `xml:"Nm"`
}

type account struct {
	IBAN string `xml:"Id>IBAN"`
	Ccy  string `xml:"Ccy,omitempty"`
}

type agent struct {
	BIC string `xml:"FinInstnId>BIC"`
}

type amount struct {
	Ccy   string `xml:"Ccy,attr"`
	Value string `xml:",chardata"`
}

type remittance struct {
	Ustrd string `xml:"Ustrd,omitempty"`
}

type paymentID struct {
	InstrID    string `xml:"InstrId,omitempty"`
	EndToEndID string `xml:"EndToEndId"`
}

type creditTransfer struct {
	PmtID    paymentID   `xml:"PmtId"`
	Amt      amount      `xml:"Amt>InstdAmt"`
	CdtrAgt  *agent      `xml:"CdtrAgt,omitempty"`
	Cdtr     party       `xml:"Cdtr"`
	CdtrAcct account     `xml:"CdtrAcct"`
	RmtInf   *remittance `xml:"RmtInf,omitempty"`
}

// checkParties проверяет, что у заказа и строк есть счета. Заказ обычно уже проверен сервисом,
// но файл может строиться повторно для ранее подписанного заказа.
func checkParties(order *domain.BankOrder) error {
	if order.SenderCompany == nil {
		return domain.NewInconsistencyError(domain.KeyBankOrderCompanyMissing)
	}
	if order.SenderBankDetails == nil || order.SenderBankDetails.IBAN == "" {
		return domain.NewInconsistencyError(domain.KeyBankOrderBankDetailsMissing)
	}
	if len(order.Lines) == 0 {
		return domain.NewInconsistencyError(domain.KeyBankOrderLinesMissing)
	}
	for _, line := range order.Lines {
		if line.ReceiverBankDetails == nil || line.ReceiverBankDetails.IBAN == "" {
			return domain.NewValidationError(
				domain.KeyBankOrderLineBankDetailsMissing, "receiverBankDetails", line.Counter,
			)
		}
	}
	return nil
}

// checkSEPACurrency файлы pain.001 содержат только суммы в евро.
func checkSEPACurrency(order *domain.BankOrder) error {
	if order.CurrencyCode != sepaCurrency {
		return domain.NewInconsistencyError(domain.KeyBankOrderCurrencyNotSEPA, order.CurrencyCode)
	}
	return nil
}

// creationTime время создания файла. Берется из заказа, чтобы файл был воспроизводим.
func creationTime(order *domain.BankOrder) time.Time {
	if order.FileGenerationDateTime != nil {
		return *order.FileGenerationDateTime
	}
	return order.BankOrderDate
}

func messageID(order *domain.BankOrder) string {
	return sepaText(strings.TrimPrefix(order.BankOrderSeq, "*"), maxIDLen)
}

func senderName(order *domain.BankOrder) string {
	if order.SenderBankDetails != nil && order.SenderBankDetails.OwnerName != "" {
		return order.SenderBankDetails.OwnerName
	}
	return order.SenderCompany.Name
}

// receiverName владелец счета получателя, иначе компания (межбанковский перевод) или партнер.
func receiverName(line *domain.BankOrderLine) string {
	switch {
	case line.ReceiverBankDetails != nil && line.ReceiverBankDetails.OwnerName != "":
		return line.ReceiverBankDetails.OwnerName
	case line.ReceiverCompany != nil:
		return line.ReceiverCompany.Name
	case line.Partner != nil:
		return line.Partner.Name
	default:
		return ""
	}
}

func remittanceText(line *domain.BankOrderLine) string {
	return strings.TrimSpace(line.ReceiverReference + " " + line.ReceiverLabel)
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(2) //nolint:mnd
}

// creditTransfers строит транзакции по строкам заказа. Идентификатор транзакции это номер строки.
func creditTransfers(order *domain.BankOrder, withInstrID bool) []creditTransfer {
	txs := make([]creditTransfer, 0, len(order.Lines))
	for i := range order.Lines {
		line := &order.Lines[i]
		endToEnd := sepaText(strings.TrimPrefix(line.Sequence, "*"), maxIDLen)
		if endToEnd == "" {
			endToEnd = "NOTPROVIDED"
		}

		tx := creditTransfer{
			PmtID: paymentID{EndToEndID: endToEnd},
			Amt: amount{
				Ccy:   sepaCurrency,
				Value: formatAmount(line.BankOrderAmount.Decimal),
			},
			Cdtr:     party{Name: sepaText(receiverName(line), maxNameLen)},
			CdtrAcct: account{IBAN: line.ReceiverBankDetails.IBAN},
		}
		if withInstrID {
			tx.PmtID.InstrID = endToEnd
		}
		if bic := line.ReceiverBankDetails.BIC; bic != "" {
			tx.CdtrAgt = &agent{BIC: bic}
		}
		if text := sepaText(remittanceText(line), maxUstrdLen); text != "" {
			tx.RmtInf = &remittance{Ustrd: text}
		}
		txs = append(txs, tx)
	}
	return txs
}
