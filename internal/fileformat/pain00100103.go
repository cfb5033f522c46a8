package fileformat

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"time"

	"github.com/fsdevblog/groph-bankorder/internal/domain"
)

const namespacePain00100103 = "urn:iso:std:iso:20022:tech:xsd:pain.001.001.03"

type pain00100103Document struct {
	XMLName xml.Name               `xml:"Document"`
	Xmlns   string                 `xml:"xmlns,attr"`
	Message pain00100103Initiation `xml:"CstmrCdtTrfInitn"`
}

type pain00100103Initiation struct {
	GrpHdr pain00100103GroupHeader `xml:"GrpHdr"`
	PmtInf pain00100103PaymentInfo `xml:"PmtInf"`
}

type pain00100103GroupHeader struct {
	MsgID    string `xml:"MsgId"`
	CreDtTm  string `xml:"CreDtTm"`
	NbOfTxs  string `xml:"NbOfTxs"`
	CtrlSum  string `xml:"CtrlSum"`
	InitgPty party  `xml:"InitgPty"`
}

type pain00100103PaymentInfo struct {
	PmtInfID    string           `xml:"PmtInfId"`
	PmtMtd      string           `xml:"PmtMtd"`
	BtchBookg   bool             `xml:"BtchBookg"`
	NbOfTxs     string           `xml:"NbOfTxs"`
	CtrlSum     string           `xml:"CtrlSum"`
	SvcLvl      string           `xml:"PmtTpInf>SvcLvl>Cd"`
	ReqdExctnDt string           `xml:"ReqdExctnDt"`
	Dbtr        party            `xml:"Dbtr"`
	DbtrAcct    account          `xml:"DbtrAcct"`
	DbtrAgt     agent            `xml:"DbtrAgt"`
	ChrgBr      string           `xml:"ChrgBr"`
	CdtTrfTxInf []creditTransfer `xml:"CdtTrfTxInf"`
}

// Pain00100103 SEPA перевод в формате ISO 20022 pain.001.001.03.
type Pain00100103 struct{}

func NewPain00100103() *Pain00100103 {
	return &Pain00100103{}
}

func (g *Pain00100103) GeneratePaymentFile(order *domain.BankOrder) (*domain.PaymentFile, error) {
	if err := checkParties(order); err != nil {
		return nil, err
	}
	if err := checkSEPACurrency(order); err != nil {
		return nil, err
	}

	msgID := messageID(order)
	nbOfTxs := strconv.Itoa(len(order.Lines))
	ctrlSum := formatAmount(order.ArithmeticTotal)

	doc := pain00100103Document{
		Xmlns: namespacePain00100103,
		Message: pain00100103Initiation{
			GrpHdr: pain00100103GroupHeader{
				MsgID:    msgID,
				CreDtTm:  creationTime(order).Format(creationTimeLayout),
				NbOfTxs:  nbOfTxs,
				CtrlSum:  ctrlSum,
				InitgPty: party{Name: sepaText(order.SenderCompany.Name, maxNameLen)},
			},
			PmtInf: pain00100103PaymentInfo{
				PmtInfID:    msgID,
				PmtMtd:      "TRF",
				NbOfTxs:     nbOfTxs,
				CtrlSum:     ctrlSum,
				SvcLvl:      "SEPA",
				ReqdExctnDt: order.BankOrderDate.Format(time.DateOnly),
				Dbtr:        party{Name: sepaText(senderName(order), maxNameLen)},
				DbtrAcct:    account{IBAN: order.SenderBankDetails.IBAN, Ccy: sepaCurrency},
				DbtrAgt:     agent{BIC: order.SenderBankDetails.BIC},
				ChrgBr:      "SLEV",
				CdtTrfTxInf: creditTransfers(order, true),
			},
		},
	}

	content, err := marshalDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("pain.001.001.03: %w", err)
	}
	return &domain.PaymentFile{
		Name:    fileName(domain.FileFormatPain00100103SCT, order, "xml"),
		Format:  domain.FileFormatPain00100103SCT,
		Content: content,
	}, nil
}
