package fileformat

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/groph-bankorder/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// testOrder провалидированный заказ на 40.00 и 60.00.
func testOrder(format domain.FileFormat) *domain.BankOrder {
	generatedAt := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	amount := func(v string) decimal.NullDecimal {
		return decimal.NewNullDecimal(decimal.RequireFromString(v))
	}
	return &domain.BankOrder{
		ID:                     42,
		BankOrderSeq:           "*000042",
		OrderType:              domain.OrderTypeSEPACreditTransfer,
		BankOrderDate:          time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC),
		CurrencyCode:           "EUR",
		ArithmeticTotal:        decimal.RequireFromString("100.00"),
		NbOfLines:              2,
		Status:                 domain.BankOrderStatusValidated,
		FileFormat:             format,
		FileGenerationDateTime: &generatedAt,
		SenderCompany:          &domain.Company{ID: 1, Name: "Société Générale Équipements"},
		SenderBankDetails: &domain.BankDetails{
			IBAN: "FR7630006000011234567890189",
			BIC:  "AGRIFRPP",
		},
		Lines: []domain.BankOrderLine{
			{
				Counter:             1,
				Sequence:            "*000042-1",
				BankOrderAmount:     amount("40.00"),
				Partner:             &domain.Partner{ID: 7, Name: "Müller & Söhne"},
				ReceiverBankDetails: &domain.BankDetails{IBAN: "DE89370400440532013000", BIC: "COBADEFFXXX"},
				ReceiverReference:   "INV-2026-001",
			},
			{
				Counter:             2,
				Sequence:            "*000042-2",
				BankOrderAmount:     amount("60.00"),
				Partner:             &domain.Partner{ID: 8, Name: "Café Noël"},
				ReceiverBankDetails: &domain.BankDetails{
					IBAN:      "FR1420041010050500013M02606",
					OwnerName: "Café Noël SARL",
				},
				ReceiverLabel:       "Facture mars",
			},
		},
	}
}

type SerializersTestSuite struct {
	suite.Suite
}

func TestSerializersSuite(t *testing.T) {
	suite.Run(t, new(SerializersTestSuite))
}

func (s *SerializersTestSuite) TestPain00100103() {
	order := testOrder(domain.FileFormatPain00100103SCT)

	file, err := NewPain00100103().GeneratePaymentFile(order)
	s.Require().NoError(err)
	s.Equal("pain.001.001.03.sct_000042.xml", file.Name)

	var doc pain00100103Document
	s.Require().NoError(xml.Unmarshal(file.Content, &doc))
	s.Equal(namespacePain00100103, doc.XMLName.Space)

	hdr := doc.Message.GrpHdr
	s.Equal("000042", hdr.MsgID)
	s.Equal("2026-03-10T09:30:00", hdr.CreDtTm)
	s.Equal("2", hdr.NbOfTxs)
	s.Equal("100.00", hdr.CtrlSum)
	s.Equal("Societe Generale Equipements", hdr.InitgPty.Name)

	pmt := doc.Message.PmtInf
	s.Equal("2026-03-12", pmt.ReqdExctnDt)
	s.Equal("FR7630006000011234567890189", pmt.DbtrAcct.IBAN)
	s.Equal("AGRIFRPP", pmt.DbtrAgt.BIC)
	s.Require().Len(pmt.CdtTrfTxInf, 2)

	first := pmt.CdtTrfTxInf[0]
	s.Equal("000042-1", first.PmtID.EndToEndID)
	s.Equal("000042-1", first.PmtID.InstrID)
	s.Equal("40.00", first.Amt.Value)
	s.Equal("EUR", first.Amt.Ccy)
	s.Equal("Muller Sohne", first.Cdtr.Name)
	s.Require().NotNil(first.CdtrAgt)
	s.Equal("COBADEFFXXX", first.CdtrAgt.BIC)
	s.Require().NotNil(first.RmtInf)
	s.Equal("INV-2026-001", first.RmtInf.Ustrd)

	second := pmt.CdtTrfTxInf[1]
	s.Equal("Cafe Noel SARL", second.Cdtr.Name)
	s.Nil(second.CdtrAgt)
}

func (s *SerializersTestSuite) TestPain00100102() {
	order := testOrder(domain.FileFormatPain00100102SCT)

	file, err := NewPain00100102().GeneratePaymentFile(order)
	s.Require().NoError(err)
	s.Equal("pain.001.001.02.sct_000042.xml", file.Name)
	s.Contains(string(file.Content), "<pain.001.001.02>")

	var doc pain00100102Document
	s.Require().NoError(xml.Unmarshal(file.Content, &doc))
	s.Equal(namespacePain00100102, doc.XMLName.Space)
	s.Equal("MIXD", doc.Message.GrpHdr.Grpg)
	s.Equal("SEPA", doc.Message.PmtInf.SvcLvl)
	s.Require().Len(doc.Message.PmtInf.CdtTrfTxInf, 2)
	s.Empty(doc.Message.PmtInf.CdtTrfTxInf[0].PmtID.InstrID)
	s.Equal("60.00", doc.Message.PmtInf.CdtTrfTxInf[1].Amt.Value)
}

func (s *SerializersTestSuite) TestDeterministic() {
	generators := []Generator{NewPain00100102(), NewPain00100103(), NewCFONB320()}
	for _, gen := range generators {
		first, err := gen.GeneratePaymentFile(testOrder(domain.FileFormatPain00100103SCT))
		s.Require().NoError(err)
		second, err := gen.GeneratePaymentFile(testOrder(domain.FileFormatPain00100103SCT))
		s.Require().NoError(err)
		s.Equal(first.Content, second.Content)
	}
}

func (s *SerializersTestSuite) TestMissingReceiverAccount() {
	order := testOrder(domain.FileFormatPain00100103SCT)
	order.Lines[1].ReceiverBankDetails = nil

	_, err := NewPain00100103().GeneratePaymentFile(order)
	var valErr *domain.ValidationError
	s.Require().ErrorAs(err, &valErr)
	s.Equal(domain.KeyBankOrderLineBankDetailsMissing, valErr.Key)
	s.Equal([]any{2}, valErr.Params)
}

func (s *SerializersTestSuite) TestSEPARejectsOtherCurrency() {
	generators := map[string]Generator{
		"pain.001.001.02": NewPain00100102(),
		"pain.001.001.03": NewPain00100103(),
	}
	for name, g := range generators {
		s.Run(name, func() {
			order := testOrder(domain.FileFormatPain00100103SCT)
			order.CurrencyCode = "USD"

			file, err := g.GeneratePaymentFile(order)
			s.Nil(file)
			var incErr *domain.InconsistencyError
			s.Require().ErrorAs(err, &incErr)
			s.Equal(domain.KeyBankOrderCurrencyNotSEPA, incErr.Key)
			s.Equal([]any{"USD"}, incErr.Params)
		})
	}
}

func (s *SerializersTestSuite) TestCFONB320() {
	order := testOrder(domain.FileFormatCFONB320XCT)

	file, err := NewCFONB320().GeneratePaymentFile(order)
	s.Require().NoError(err)
	s.Equal("pain.XXX.cfonb320.xct_000042.txt", file.Name)

	content := string(file.Content)
	s.True(strings.HasSuffix(content, "\r\n"))
	records := strings.Split(strings.TrimSuffix(content, "\r\n"), "\r\n")
	s.Require().Len(records, 4)
	for _, r := range records {
		s.Len(r, cfonbRecordLen)
	}

	header, detail, total := records[0], records[1], records[3]
	s.Equal("03PI", header[0:4])
	s.Equal("000001", header[12:18])
	s.Equal("20260310", header[18:26])
	s.Equal("SOCIETE GENERALE EQUIPEMENTS", strings.TrimSpace(header[26:61]))
	s.Equal("000042", strings.TrimSpace(header[180:196]))
	s.Equal("FR7630006000011234567890189", strings.TrimSpace(header[208:242]))
	s.Equal("EUR", header[242:245])

	s.Equal("04PI", detail[0:4])
	s.Equal("000002", detail[12:18])
	s.Equal("DE89370400440532013000", strings.TrimSpace(detail[19:53]))
	s.Equal("MULLER & SOHNE", strings.TrimSpace(detail[53:88]))
	s.Equal("DE", detail[210:212])
	s.Equal("*000042-1", strings.TrimSpace(detail[212:228]))
	s.Equal("00000000004000", detail[233:247])
	s.Equal("20260312", detail[256:264])
	s.Equal("COBADEFFXXX", detail[267:278])

	s.Equal("08PI", total[0:4])
	s.Equal("000004", total[12:18])
	s.Equal("00000000010000", total[233:247])
	s.Equal("2", total[247:248])
	s.Equal(strings.ToUpper(content), content)
}

// TestRandomPartiesStayWellFormed прогоняет генераторы на случайных названиях и суммах: записи CFONB
// всегда фиксированной длины и в ASCII, XML всегда разбирается.
func (s *SerializersTestSuite) TestRandomPartiesStayWellFormed() {
	faker := gofakeit.New(2026)

	for i := 0; i < 50; i++ {
		order := testOrder(domain.FileFormatCFONB320XCT)
		order.SenderCompany.Name = faker.Company() + " Société"
		total := decimal.Zero
		for j := range order.Lines {
			amount := decimal.NewFromFloat(faker.Price(0.01, 99999)).Round(2)
			total = total.Add(amount)
			order.Lines[j].BankOrderAmount = decimal.NewNullDecimal(amount)
			order.Lines[j].Partner.Name = faker.Name() + " Çé"
			order.Lines[j].ReceiverLabel = faker.Street() + ", " + faker.City()
		}
		order.ArithmeticTotal = total

		file, err := NewCFONB320().GeneratePaymentFile(order)
		s.Require().NoError(err)
		records := strings.Split(strings.TrimSuffix(string(file.Content), cfonbEOL), cfonbEOL)
		for _, r := range records {
			s.Require().Len(r, cfonbRecordLen, r)
			for _, c := range r {
				s.Require().Less(c, rune(128), r)
			}
		}

		order.FileFormat = domain.FileFormatPain00100103SCT
		xmlFile, xmlErr := NewPain00100103().GeneratePaymentFile(order)
		s.Require().NoError(xmlErr)
		var doc struct {
			XMLName xml.Name
		}
		s.Require().NoError(xml.Unmarshal(xmlFile.Content, &doc))
	}
}

func (s *SerializersTestSuite) TestCFONBAmountOverflow() {
	order := testOrder(domain.FileFormatCFONB320XCT)
	order.Lines[0].BankOrderAmount = decimal.NewNullDecimal(decimal.RequireFromString("1000000000000.00"))

	_, err := NewCFONB320().GeneratePaymentFile(order)
	s.Require().Error(err)
}

func (s *SerializersTestSuite) TestSEPAText() {
	s.Equal("Societe Generale", sepaText("Société   Générale", maxNameLen))
	s.Equal("A B", sepaText("A_B", maxNameLen))
	s.Len(sepaText(strings.Repeat("x", 100), maxIDLen), maxIDLen)
	s.Equal("CAFE NOEL", cfonbText("Café Noël"))
}
