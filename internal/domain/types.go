package domain

type BankOrderStatusType string

const (
	BankOrderStatusDraft             BankOrderStatusType = "DRAFT"
	BankOrderStatusAwaitingSignature BankOrderStatusType = "AWAITING_SIGNATURE"
	BankOrderStatusSigned            BankOrderStatusType = "SIGNED"
	BankOrderStatusValidated         BankOrderStatusType = "VALIDATED"
	BankOrderStatusSent              BankOrderStatusType = "SENT"
	BankOrderStatusCanceled          BankOrderStatusType = "CANCELED"
)

// IsTerminal сообщает, что из статуса больше нет переходов.
func (s BankOrderStatusType) IsTerminal() bool {
	return s == BankOrderStatusSent || s == BankOrderStatusCanceled
}

type OrderType string

const (
	OrderTypeSEPADirectDebit               OrderType = "SEPA_DIRECT_DEBIT"
	OrderTypeSEPACreditTransfer            OrderType = "SEPA_CREDIT_TRANSFER"
	OrderTypeInternationalDirectDebit      OrderType = "INTERNATIONAL_DIRECT_DEBIT"
	OrderTypeInternationalCreditTransfer   OrderType = "INTERNATIONAL_CREDIT_TRANSFER"
	OrderTypeNationalTreasuryTransfer      OrderType = "NATIONAL_TREASURY_TRANSFER"
	OrderTypeInternationalTreasuryTransfer OrderType = "INTERNATIONAL_TREASURY_TRANSFER"
	OrderTypeBankToBankTransfer            OrderType = "BANK_TO_BANK_TRANSFER"
)

// RequiresSignature возвращает true для типов, которые после подтверждения ждут подписи.
func (t OrderType) RequiresSignature() bool {
	return t == OrderTypeSEPACreditTransfer || t == OrderTypeInternationalCreditTransfer
}

type PartnerType string

const (
	PartnerTypeSupplier PartnerType = "SUPPLIER"
	PartnerTypeEmployee PartnerType = "EMPLOYEE"
	PartnerTypeCustomer PartnerType = "CUSTOMER"
)

// FileFormat селектор формата платежного файла. Набор значений закрыт: новый формат добавляется
// вместе с генератором в пакете fileformat.
type FileFormat string

const (
	FileFormatPain00100102SCT FileFormat = "pain.001.001.02.sct"
	FileFormatPain00100103SCT FileFormat = "pain.001.001.03.sct"
	FileFormatCFONB320XCT     FileFormat = "pain.XXX.cfonb320.xct"
)

func (f FileFormat) IsKnown() bool {
	switch f {
	case FileFormatPain00100102SCT, FileFormatPain00100103SCT, FileFormatCFONB320XCT:
		return true
	default:
		return false
	}
}

type InvoicePaymentStatusType string

const (
	InvoicePaymentStatusDraft     InvoicePaymentStatusType = "DRAFT"
	InvoicePaymentStatusValidated InvoicePaymentStatusType = "VALIDATED"
	InvoicePaymentStatusCanceled  InvoicePaymentStatusType = "CANCELED"
)
