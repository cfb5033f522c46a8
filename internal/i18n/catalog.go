// Package i18n тексты сообщений об ошибках. Ошибки домена несут только ключ и параметры,
// текст подставляется здесь при выдаче ответа клиенту.
package i18n

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fsdevblog/groph-bankorder/internal/domain"
	"golang.org/x/text/language"
)

type Catalog struct {
	lang     language.Tag
	messages map[string]string
}

// NewCatalog каталог для языка lang. Пока есть только английские тексты, для любого другого
// языка используются они же.
func NewCatalog(lang language.Tag) *Catalog {
	return &Catalog{lang: lang, messages: english}
}

func (c *Catalog) Language() language.Tag {
	return c.lang
}

// Render текст сообщения key. Плейсхолдеры {0}, {1}, ... заменяются параметрами по индексу.
// Для неизвестного ключа возвращается сам ключ.
func (c *Catalog) Render(key string, params []any) string {
	msg, ok := c.messages[key]
	if !ok {
		return key
	}
	for i, p := range params {
		msg = strings.ReplaceAll(msg, "{"+strconv.Itoa(i)+"}", fmt.Sprint(p))
	}
	return msg
}

var english = map[string]string{
	domain.KeyBankOrderDate:                      "The bank order date {0} is before today",
	domain.KeyBankOrderDateMissing:               "Please fill in the bank order date",
	domain.KeyBankOrderTypeMissing:               "Please fill in the bank order type",
	domain.KeyBankOrderPartnerTypeMissing:        "Please fill in the partner type",
	domain.KeyBankOrderPaymentModeMissing:        "Please fill in the payment mode",
	domain.KeyBankOrderCompanyMissing:            "Please fill in the sender company",
	domain.KeyBankOrderBankDetailsMissing:        "Please fill in the sender bank details",
	domain.KeyBankOrderCurrencyMissing:           "Please fill in the currency",
	domain.KeyBankOrderCurrencyNotSEPA:           "SEPA files accept only EUR, the bank order currency is {0}",
	domain.KeyBankOrderSignatoryMissing:          "Please fill in the signatory",
	domain.KeyBankOrderSignatoryMismatch:         "Only the signatory of bank order {0} can sign it",
	domain.KeyBankOrderLinesMissing:              "The bank order has no lines",
	domain.KeyBankOrderLineTotalAmountInvalid:    "The sum of the lines ({0}) differs from the bank order total ({1})",
	domain.KeyBankOrderFileUnknownFormat:         "Unknown payment file format {0}",
	domain.KeyBankOrderIssueDuringFileGeneration: "An issue occurred while generating the file of bank order {0}",
	domain.KeyBankOrderStatusInvalid:             "Bank order {0} in status {1} does not allow {2}",

	domain.KeyBankOrderLineCompanyMissing:     "Line {0}: please fill in the receiver company",
	domain.KeyBankOrderLinePartnerMissing:     "Line {0}: please fill in the partner",
	domain.KeyBankOrderLineBankDetailsMissing: "Line {0}: please fill in the receiver bank details",
	domain.KeyBankOrderLineAmountNegative:     "Line {0}: the amount must be greater than zero",

	domain.KeyEbicsProtocolError:  "The bank response could not be read: {0}",
	domain.KeyEbicsChannelOutcome: "The bank rejected the transfer with code {0}: {1}",
}
