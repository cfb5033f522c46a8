package ebics

import (
	"encoding/xml"
	"errors"
	"io"
	"strings"

	"github.com/fsdevblog/groph-bankorder/internal/domain"
)

const (
	NamespaceH003 = "urn:org:ebics:H003"
	NamespaceH004 = "urn:org:ebics:H004"
)

type ebicsResponse struct {
	XMLName xml.Name       `xml:"ebicsResponse"`
	Header  responseHeader `xml:"header"`
	Body    responseBody   `xml:"body"`
}

type responseHeader struct {
	Static struct {
		TransactionID string `xml:"TransactionID"`
		NumSegments   int    `xml:"NumSegments"`
	} `xml:"static"`
	Mutable struct {
		TransactionPhase string `xml:"TransactionPhase"`
		ReturnCode       string `xml:"ReturnCode"`
		ReportText       string `xml:"ReportText"`
	} `xml:"mutable"`
}

type responseBody struct {
	ReturnCode string `xml:"ReturnCode"`
}

// TransferResponse ответ банка на транзакцию передачи. Разбирается один раз через Build.
type TransferResponse struct {
	r             io.Reader
	parsed        bool
	returnCode    ReturnCode
	transactionID string
}

func NewTransferResponse(r io.Reader) *TransferResponse {
	return &TransferResponse{r: r}
}

// Build разбирает документ ebicsResponse и переводит код возврата из header/mutable.
//
// Документ, который не удалось разобрать, чужой корневой элемент или пустой код возврата дают
// *domain.ProtocolError. Неуспешный код дает *domain.ChannelOutcomeError, при этом ReturnCode уже
// заполнен. Повторный вызов вернет ErrResponseAlreadyParsed.
func (t *TransferResponse) Build() error {
	if t.parsed {
		return ErrResponseAlreadyParsed
	}
	// поток читается один раз, даже если разобрать его не удалось.
	t.parsed = true

	var doc ebicsResponse
	if err := xml.NewDecoder(t.r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.NewProtocolError("empty response", nil)
		}
		return domain.NewProtocolError("malformed response", err)
	}
	if ns := doc.XMLName.Space; ns != NamespaceH003 && ns != NamespaceH004 {
		return domain.NewProtocolError("unexpected namespace "+ns, nil)
	}

	// код и текст передаются дальше как пришли, без нормализации.
	mutable := doc.Header.Mutable
	if strings.TrimSpace(mutable.ReturnCode) == "" {
		return domain.NewProtocolError("missing return code", nil)
	}
	t.transactionID = strings.TrimSpace(doc.Header.Static.TransactionID)
	t.returnCode = ToReturnCode(mutable.ReturnCode, mutable.ReportText)
	return t.returnCode.Err()
}

// ReturnCode код возврата. Заполнен после Build, если документ удалось разобрать.
func (t *TransferResponse) ReturnCode() ReturnCode {
	return t.returnCode
}

func (t *TransferResponse) TransactionID() string {
	return t.transactionID
}
