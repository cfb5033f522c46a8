package service

import (
	"github.com/fsdevblog/groph-bankorder/internal/domain"
)

// BankOrderLineService проверки отдельной строки заказа. Не хранит состояния и не меняет строку.
type BankOrderLineService struct{}

func NewBankOrderLineService() *BankOrderLineService {
	return new(BankOrderLineService)
}

// CheckPreconditions проверяет строку перед подтверждением заказа типа orderType. Возвращает первую
// найденную *domain.ValidationError:
//  1. для перевода между банками нет компании получателя, для остальных типов нет партнера;
//  2. нет банковских реквизитов получателя;
//  3. сумма не задана или не больше нуля.
func (s *BankOrderLineService) CheckPreconditions(line *domain.BankOrderLine, orderType domain.OrderType) error {
	if orderType == domain.OrderTypeBankToBankTransfer {
		if line.ReceiverCompany == nil {
			return domain.NewValidationError(domain.KeyBankOrderLineCompanyMissing, "receiverCompany", line.Counter)
		}
	} else if line.Partner == nil {
		return domain.NewValidationError(domain.KeyBankOrderLinePartnerMissing, "partner", line.Counter)
	}

	if line.ReceiverBankDetails == nil || line.ReceiverBankDetails.IBAN == "" {
		return domain.NewValidationError(
			domain.KeyBankOrderLineBankDetailsMissing, "receiverBankDetails", line.Counter,
		)
	}

	if !line.BankOrderAmount.Valid || !line.BankOrderAmount.Decimal.IsPositive() {
		return domain.NewValidationError(domain.KeyBankOrderLineAmountNegative, "bankOrderAmount", line.Counter)
	}
	return nil
}
