package fileformat

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"github.com/fsdevblog/groph-bankorder/internal/domain"
)

const namespacePain00100102 = "urn:iso:std:iso:20022:tech:xsd:pain.001.001.02"

type pain00100102Document struct {
	XMLName xml.Name               `xml:"Document"`
	Xmlns   string                 `xml:"xmlns,attr"`
	Message pain00100102Initiation `xml:"pain.001.001.02"`
}

type pain00100102Initiation struct {
	GrpHdr pain00100102GroupHeader `xml:"GrpHdr"`
	PmtInf pain00100102PaymentInfo `xml:"PmtInf"`
}

type pain00100102GroupHeader struct {
	MsgID    string `xml:"MsgId"`
	CreDtTm  string `xml:"CreDtTm"`
	NbOfTxs  string `xml:"NbOfTxs"`
	CtrlSum  string `xml:"CtrlSum"`
	Grpg     string `xml:"Grpg"`
	InitgPty party  `xml:"InitgPty"`
}

type pain00100102PaymentInfo struct {
	PmtInfID    string           `xml:"PmtInfId"`
	PmtMtd      string           `xml:"PmtMtd"`
	SvcLvl      string           `xml:"PmtTpInf>SvcLvl>Cd"`
	ReqdExctnDt string           `xml:"ReqdExctnDt"`
	Dbtr        party            `xml:"Dbtr"`
	DbtrAcct    account          `xml:"DbtrAcct"`
	DbtrAgt     agent            `xml:"DbtrAgt"`
	ChrgBr      string           `xml:"ChrgBr"`
	CdtTrfTxInf []creditTransfer `xml:"CdtTrfTxInf"`
}

// Pain00100102 SEPA перевод в формате ISO 20022 pain.001.001.02.
type Pain00100102 struct{}

func NewPain00100102() *Pain00100102 {
	return &Pain00100102{}
}

func (g *Pain00100102) GeneratePaymentFile(order *domain.BankOrder) (*domain.PaymentFile, error) {
	if err := checkParties(order); err != nil {
		return nil, err
	}
	if err := checkSEPACurrency(order); err != nil {
		return nil, err
	}

	msgID := messageID(order)
	doc := pain00100102Document{
		Xmlns: namespacePain00100102,
		Message: pain00100102Initiation{
			GrpHdr: pain00100102GroupHeader{
				MsgID:    msgID,
				CreDtTm:  creationTime(order).Format(creationTimeLayout),
				NbOfTxs:  strconv.Itoa(len(order.Lines)),
				CtrlSum:  formatAmount(order.ArithmeticTotal),
				Grpg:     "MIXD",
				InitgPty: party{Name: sepaText(order.SenderCompany.Name, maxNameLen)},
			},
			PmtInf: pain00100102PaymentInfo{
				PmtInfID:    msgID,
				PmtMtd:      "TRF",
				SvcLvl:      "SEPA",
				ReqdExctnDt: order.BankOrderDate.Format(time.DateOnly),
				Dbtr:        party{Name: sepaText(senderName(order), maxNameLen)},
				DbtrAcct:    account{IBAN: order.SenderBankDetails.IBAN},
				DbtrAgt:     agent{BIC: order.SenderBankDetails.BIC},
				ChrgBr:      "SLEV",
				CdtTrfTxInf: creditTransfers(order, false),
			},
		},
	}

	content, err := marshalDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("pain.001.001.02: %w", err)
	}
	return &domain.PaymentFile{
		Name:    fileName(domain.FileFormatPain00100102SCT, order, "xml"),
		Format:  domain.FileFormatPain00100102SCT,
		Content: content,
	}, nil
}
