package ebics

import (
	"strings"
	"testing"

	"github.com/fsdevblog/groph-bankorder/internal/domain"
	"github.com/stretchr/testify/suite"
)

const responseTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<ebicsResponse xmlns="%NS%" Version="H003" Revision="1">
  <header authenticate="true">
    <static>
      <TransactionID>5F1B32D1A7C64C1E</TransactionID>
      <NumSegments>1</NumSegments>
    </static>
    <mutable>
      <TransactionPhase>Initialisation</TransactionPhase>
      <ReturnCode>%CODE%</ReturnCode>
      <ReportText>%TEXT%</ReportText>
    </mutable>
  </header>
  <body>
    <ReturnCode authenticate="true">000000</ReturnCode>
  </body>
</ebicsResponse>`

func transferResponseXML(ns, code, text string) string {
	return strings.NewReplacer("%NS%", ns, "%CODE%", code, "%TEXT%", text).Replace(responseTemplate)
}

type TransferResponseTestSuite struct {
	suite.Suite
}

func TestTransferResponseSuite(t *testing.T) {
	suite.Run(t, new(TransferResponseTestSuite))
}

func (s *TransferResponseTestSuite) TestBuildOK() {
	for _, ns := range []string{NamespaceH003, NamespaceH004} {
		resp := NewTransferResponse(strings.NewReader(transferResponseXML(ns, "000000", "[EBICS_OK] OK")))
		s.Require().NoError(resp.Build())
		s.Equal("000000", resp.ReturnCode().Code)
		s.Equal(KindOK, resp.ReturnCode().Kind)
		s.Equal("[EBICS_OK] OK", resp.ReturnCode().Text)
		s.Equal("5F1B32D1A7C64C1E", resp.TransactionID())
	}
}

func (s *TransferResponseTestSuite) TestBuildNotice() {
	resp := NewTransferResponse(strings.NewReader(
		transferResponseXML(NamespaceH003, "011000", "[EBICS_DOWNLOAD_POSTPROCESS_DONE]"),
	))
	var outcomeErr *domain.ChannelOutcomeError
	s.Require().ErrorAs(resp.Build(), &outcomeErr)
	s.Equal("011000", outcomeErr.Code)
	s.Equal(KindNotice, resp.ReturnCode().Kind)
}

func (s *TransferResponseTestSuite) TestBuildKeepsWireValues() {
	resp := NewTransferResponse(strings.NewReader(
		transferResponseXML(NamespaceH003, " 091116", "  [EBICS_PROCESSING_ERROR] Processing error\n"),
	))

	var outcomeErr *domain.ChannelOutcomeError
	s.Require().ErrorAs(resp.Build(), &outcomeErr)
	s.Equal(" 091116", outcomeErr.Code)
	s.Equal("  [EBICS_PROCESSING_ERROR] Processing error\n", outcomeErr.Text)
	// поиск точный: код с пробелом в таблице не найден.
	s.Equal(SymbolUnknownError, outcomeErr.Symbol)
	s.Equal(KindUnknown, resp.ReturnCode().Kind)
}

func (s *TransferResponseTestSuite) TestBuildRejected() {
	resp := NewTransferResponse(strings.NewReader(
		transferResponseXML(NamespaceH003, "091116", "[EBICS_PROCESSING_ERROR] Processing error"),
	))

	var outcomeErr *domain.ChannelOutcomeError
	s.Require().ErrorAs(resp.Build(), &outcomeErr)
	s.Equal("091116", outcomeErr.Code)
	s.Equal("EBICS_PROCESSING_ERROR", outcomeErr.Symbol)
	s.Equal("[EBICS_PROCESSING_ERROR] Processing error", outcomeErr.Text)
	s.Equal(KindBusiness, resp.ReturnCode().Kind)
}

func (s *TransferResponseTestSuite) TestBuildProtocolErrors() {
	cases := []struct {
		name string
		body string
	}{
		{name: "empty", body: ""},
		{name: "not xml", body: "HTTP 200 OK"},
		{name: "truncated", body: `<ebicsResponse xmlns="urn:org:ebics:H003"><header>`},
		{name: "wrong root", body: `<ebicsRequest xmlns="urn:org:ebics:H003"></ebicsRequest>`},
		{name: "wrong namespace", body: transferResponseXML("urn:example:other", "000000", "OK")},
		{name: "missing return code", body: transferResponseXML(NamespaceH003, "  ", "OK")},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			resp := NewTransferResponse(strings.NewReader(t.body))
			var protoErr *domain.ProtocolError
			s.Require().ErrorAs(resp.Build(), &protoErr)
		})
	}
}

func (s *TransferResponseTestSuite) TestBuildTwice() {
	resp := NewTransferResponse(strings.NewReader(transferResponseXML(NamespaceH003, "000000", "OK")))
	s.Require().NoError(resp.Build())
	s.Require().ErrorIs(resp.Build(), ErrResponseAlreadyParsed)
	s.Equal("000000", resp.ReturnCode().Code)
}
