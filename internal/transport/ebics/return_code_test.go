package ebics

import (
	"testing"

	"github.com/fsdevblog/groph-bankorder/internal/domain"
	"github.com/stretchr/testify/suite"
)

type ReturnCodeTestSuite struct {
	suite.Suite
}

func TestReturnCodeSuite(t *testing.T) {
	suite.Run(t, new(ReturnCodeTestSuite))
}

func (s *ReturnCodeTestSuite) TestToReturnCode() {
	cases := []struct {
		name       string
		code       string
		wantSymbol string
		wantKind   Kind
	}{
		{name: "ok", code: "000000", wantSymbol: "EBICS_OK", wantKind: KindOK},
		{name: "postprocess done", code: "011000", wantSymbol: "EBICS_DOWNLOAD_POSTPROCESS_DONE", wantKind: KindNotice},
		{name: "order params ignored", code: "031001", wantSymbol: "EBICS_ORDER_PARAMS_IGNORED", wantKind: KindNotice},
		{
			name:       "authentication failed",
			code:       "061001",
			wantSymbol: "EBICS_AUTHENTICATION_FAILED",
			wantKind:   KindTechnical,
		},
		{name: "invalid xml", code: "091010", wantSymbol: "EBICS_INVALID_XML", wantKind: KindTechnical},
		{name: "processing error", code: "091116", wantSymbol: "EBICS_PROCESSING_ERROR", wantKind: KindBusiness},
		{name: "amount check", code: "091303", wantSymbol: "EBICS_AMOUNT_CHECK_FAILED", wantKind: KindBusiness},
		{name: "unknown", code: "ZZZZZZ", wantSymbol: SymbolUnknownError, wantKind: KindUnknown},
		{name: "no prefix match", code: "00000", wantSymbol: SymbolUnknownError, wantKind: KindUnknown},
		{name: "no trimming", code: " 000000", wantSymbol: SymbolUnknownError, wantKind: KindUnknown},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			rc := ToReturnCode(t.code, "report")
			s.Equal(t.code, rc.Code)
			s.Equal(t.wantSymbol, rc.Symbol)
			s.Equal(t.wantKind, rc.Kind)
			s.Equal("report", rc.Text)
		})
	}
}

func (s *ReturnCodeTestSuite) TestUnknownKeepsText() {
	rc := ToReturnCode("ZZZZZZ", "bank says no")
	s.Equal(SymbolUnknownError, rc.Symbol)
	s.Equal("bank says no", rc.Text)
	s.False(rc.IsOK())

	var outcomeErr *domain.ChannelOutcomeError
	s.Require().ErrorAs(rc.Err(), &outcomeErr)
	s.Equal("ZZZZZZ", outcomeErr.Code)
	s.Equal("bank says no", outcomeErr.Text)
}

func (s *ReturnCodeTestSuite) TestErr() {
	s.Require().NoError(ToReturnCode("000000", "OK").Err())

	var outcomeErr *domain.ChannelOutcomeError
	s.Require().ErrorAs(ToReturnCode("011000", "done").Err(), &outcomeErr)
	s.Equal("EBICS_DOWNLOAD_POSTPROCESS_DONE", outcomeErr.Symbol)
	s.Require().Error(ToReturnCode("061001", "auth").Err())
}
