package i18n

import (
	"testing"

	"github.com/fsdevblog/groph-bankorder/internal/domain"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/language"
)

type CatalogTestSuite struct {
	suite.Suite
	catalog *Catalog
}

func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func (s *CatalogTestSuite) SetupTest() {
	s.catalog = NewCatalog(language.English)
}

func (s *CatalogTestSuite) TestRender() {
	cases := []struct {
		name   string
		key    string
		params []any
		want   string
	}{
		{
			name: "no params",
			key:  domain.KeyBankOrderLinesMissing,
			want: "The bank order has no lines",
		}, {
			name:   "params by index",
			key:    domain.KeyBankOrderLineTotalAmountInvalid,
			params: []any{"99.99", "100.00"},
			want:   "The sum of the lines (99.99) differs from the bank order total (100.00)",
		}, {
			name:   "non string param",
			key:    domain.KeyBankOrderLineAmountNegative,
			params: []any{3},
			want:   "Line 3: the amount must be greater than zero",
		}, {
			name:   "missing param keeps placeholder",
			key:    domain.KeyEbicsChannelOutcome,
			params: []any{"091005"},
			want:   "The bank rejected the transfer with code 091005: {1}",
		}, {
			name: "unknown key",
			key:  "bank_order.something_else",
			want: "bank_order.something_else",
		},
	}
	for _, t := range cases {
		s.Run(t.name, func() {
			s.Equal(t.want, s.catalog.Render(t.key, t.params))
		})
	}
}

func (s *CatalogTestSuite) TestEveryErrorKeyHasMessage() {
	keys := []string{
		domain.KeyBankOrderDate,
		domain.KeyBankOrderDateMissing,
		domain.KeyBankOrderTypeMissing,
		domain.KeyBankOrderPartnerTypeMissing,
		domain.KeyBankOrderPaymentModeMissing,
		domain.KeyBankOrderCompanyMissing,
		domain.KeyBankOrderBankDetailsMissing,
		domain.KeyBankOrderCurrencyMissing,
		domain.KeyBankOrderCurrencyNotSEPA,
		domain.KeyBankOrderSignatoryMissing,
		domain.KeyBankOrderSignatoryMismatch,
		domain.KeyBankOrderLinesMissing,
		domain.KeyBankOrderLineTotalAmountInvalid,
		domain.KeyBankOrderFileUnknownFormat,
		domain.KeyBankOrderIssueDuringFileGeneration,
		domain.KeyBankOrderStatusInvalid,
		domain.KeyBankOrderLineCompanyMissing,
		domain.KeyBankOrderLinePartnerMissing,
		domain.KeyBankOrderLineBankDetailsMissing,
		domain.KeyBankOrderLineAmountNegative,
		domain.KeyEbicsProtocolError,
		domain.KeyEbicsChannelOutcome,
	}
	for _, key := range keys {
		s.NotEqual(key, s.catalog.Render(key, nil), key)
	}
}

func (s *CatalogTestSuite) TestUnsupportedLanguageFallsBack() {
	c := NewCatalog(language.French)
	s.Equal(language.French, c.Language())
	s.Equal("The bank order has no lines", c.Render(domain.KeyBankOrderLinesMissing, nil))
}
