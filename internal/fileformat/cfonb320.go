package fileformat

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/fsdevblog/groph-bankorder/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	cfonbRecordLen     = 320
	cfonbOperationCode = "PI"
	cfonbAmountWidth   = 14
	cfonbDateLayout    = "20060102"
	cfonbEOL           = "\r\n"

	cfonbRecordHeader = "03"
	cfonbRecordDetail = "04"
	cfonbRecordTotal  = "08"

	// cfonbAccountIBAN тип идентификатора счета: IBAN.
	cfonbAccountIBAN = "1"
	// cfonbChargesShared расходы делятся между отправителем и получателем.
	cfonbChargesShared = "13"
)

// cfonbRecord запись фиксированной длины. Поля пишутся подряд, остаток добивается пробелами.
type cfonbRecord struct {
	buf bytes.Buffer
	err error
}

func newCFONBRecord(code string, seq int) *cfonbRecord {
	r := new(cfonbRecord)
	r.alpha(2, code).alpha(2, cfonbOperationCode).blank(8).num(6, int64(seq)) //nolint:mnd
	return r
}

// alpha текстовое поле: выравнивание влево, верхний регистр, обрезка по ширине.
func (r *cfonbRecord) alpha(width int, s string) *cfonbRecord {
	s = truncate(cfonbText(s), width)
	r.buf.WriteString(s + strings.Repeat(" ", width-len(s)))
	return r
}

// num числовое поле: выравнивание вправо нулями.
func (r *cfonbRecord) num(width int, n int64) *cfonbRecord {
	s := strconv.FormatInt(n, 10)
	if n < 0 || len(s) > width {
		if r.err == nil {
			r.err = fmt.Errorf("value %d does not fit %d digits", n, width)
		}
		r.buf.WriteString(strings.Repeat("9", width))
		return r
	}
	r.buf.WriteString(strings.Repeat("0", width-len(s)) + s)
	return r
}

func (r *cfonbRecord) blank(width int) *cfonbRecord {
	r.buf.WriteString(strings.Repeat(" ", width))
	return r
}

func (r *cfonbRecord) bytes() ([]byte, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.buf.Len() > cfonbRecordLen {
		return nil, fmt.Errorf("record is %d characters long", r.buf.Len())
	}
	r.blank(cfonbRecordLen - r.buf.Len())
	return r.buf.Bytes(), nil
}

// CFONB320 международный перевод во французском формате CFONB 320 (ранее AFB 320).
//
// Файл состоит из записи 03 (отправитель), записей 04 (по одной на строку заказа) и записи 08
// (итог). Каждая запись ровно 320 символов, записи разделяются CRLF.
type CFONB320 struct{}

func NewCFONB320() *CFONB320 {
	return &CFONB320{}
}

func (g *CFONB320) GeneratePaymentFile(order *domain.BankOrder) (*domain.PaymentFile, error) {
	if err := checkParties(order); err != nil {
		return nil, err
	}

	records := make([]*cfonbRecord, 0, len(order.Lines)+2) //nolint:mnd
	records = append(records, g.header(order, 1))
	total := decimal.Zero
	for i := range order.Lines {
		records = append(records, g.detail(order, &order.Lines[i], i+2)) //nolint:mnd
		total = total.Add(order.Lines[i].BankOrderAmount.Decimal)
	}
	records = append(records, g.total(total, len(order.Lines)+2)) //nolint:mnd

	var out bytes.Buffer
	for i, r := range records {
		b, err := r.bytes()
		if err != nil {
			return nil, fmt.Errorf("cfonb320 record %d: %w", i+1, err)
		}
		out.Write(b)
		out.WriteString(cfonbEOL)
	}

	return &domain.PaymentFile{
		Name:    fileName(domain.FileFormatCFONB320XCT, order, "txt"),
		Format:  domain.FileFormatCFONB320XCT,
		Content: out.Bytes(),
	}, nil
}

// header запись 03: дата создания (19-26), отправитель (27-61), ссылка на ремиссию (181-196),
// BIC (197-207), IBAN (209-242), валюта (243-245).
//
//nolint:mnd
func (g *CFONB320) header(order *domain.BankOrder, seq int) *cfonbRecord {
	sender := order.SenderBankDetails
	return newCFONBRecord(cfonbRecordHeader, seq).
		alpha(8, creationTime(order).Format(cfonbDateLayout)).
		alpha(35, senderName(order)).
		blank(105).
		blank(14).
		alpha(16, strings.TrimPrefix(order.BankOrderSeq, "*")).
		alpha(11, sender.BIC).
		alpha(1, cfonbAccountIBAN).
		alpha(34, sender.IBAN).
		alpha(3, order.CurrencyCode).
		blank(16)
}

// detail запись 04: IBAN (20-53), получатель (54-88), страна (211-212), ссылка (213-228),
// сумма (234-247), расходы (255-256), дата исполнения (257-264), валюта (265-267), BIC (268-278),
// назначение платежа (279-313).
//
//nolint:mnd
func (g *CFONB320) detail(order *domain.BankOrder, line *domain.BankOrderLine, seq int) *cfonbRecord {
	receiver := line.ReceiverBankDetails
	return newCFONBRecord(cfonbRecordDetail, seq).
		alpha(1, cfonbAccountIBAN).
		alpha(34, receiver.IBAN).
		alpha(35, receiverName(line)).
		blank(105).
		blank(17).
		alpha(2, receiver.CountryCode()).
		alpha(16, line.Sequence).
		alpha(1, "T").
		blank(4).
		num(cfonbAmountWidth, cents(line.BankOrderAmount.Decimal)).
		alpha(1, "2").
		blank(6).
		alpha(2, cfonbChargesShared).
		alpha(8, order.BankOrderDate.Format(cfonbDateLayout)).
		alpha(3, order.CurrencyCode).
		alpha(11, receiver.BIC).
		alpha(35, remittanceText(line))
}

// total запись 08. Сумма стоит в тех же позициях, что и в записи 04.
//
//nolint:mnd
func (g *CFONB320) total(total decimal.Decimal, seq int) *cfonbRecord {
	return newCFONBRecord(cfonbRecordTotal, seq).
		blank(215).
		num(cfonbAmountWidth, cents(total)).
		alpha(1, "2")
}

// cents сумма в сотых долях.
func cents(d decimal.Decimal) int64 {
	return d.Shift(2).Round(0).IntPart() //nolint:mnd
}
