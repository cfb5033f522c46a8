package ebics

import "github.com/fsdevblog/groph-bankorder/internal/domain"

// Kind класс кода возврата EBICS.
type Kind int

const (
	KindUnknown Kind = iota
	KindOK
	// KindNotice информационный код: транзакция не завершена штатно, ошибкой считается.
	KindNotice
	KindBusiness
	KindTechnical
)

func (k Kind) String() string {
	switch k {
	case KindOK:
		return "ok"
	case KindNotice:
		return "notice"
	case KindBusiness:
		return "business"
	case KindTechnical:
		return "technical"
	default:
		return "unknown"
	}
}

// SymbolUnknownError символ, который получает любой код вне таблицы.
const SymbolUnknownError = "EBICS_UNKNOWN_ERROR"

type ReturnCode struct {
	Code   string
	Symbol string
	Kind   Kind
	Text   string
}

// IsOK true только для EBICS_OK.
func (rc ReturnCode) IsOK() bool {
	return rc.Kind == KindOK
}

// Err возвращает *domain.ChannelOutcomeError для неуспешного кода и nil для успешного.
func (rc ReturnCode) Err() error {
	if rc.IsOK() {
		return nil
	}
	return domain.NewChannelOutcomeError(rc.Code, rc.Symbol, rc.Text)
}

type codeInfo struct {
	symbol string
	kind   Kind
}

// returnCodes коды возврата EBICS H003. Технические коды относятся к транзакции и каналу,
// бизнес коды к содержимому заказа.
var returnCodes = map[string]codeInfo{
	"000000": {"EBICS_OK", KindOK},

	"011000": {"EBICS_DOWNLOAD_POSTPROCESS_DONE", KindNotice},
	"011001": {"EBICS_DOWNLOAD_POSTPROCESS_SKIPPED", KindNotice},
	"011101": {"EBICS_TX_SEGMENT_NUMBER_UNDERRUN", KindNotice},
	"011301": {"EBICS_NO_ONLINE_CHECKS", KindNotice},
	"031001": {"EBICS_ORDER_PARAMS_IGNORED", KindNotice},

	"061001": {"EBICS_AUTHENTICATION_FAILED", KindTechnical},
	"061002": {"EBICS_INVALID_REQUEST", KindTechnical},
	"061099": {"EBICS_INTERNAL_ERROR", KindTechnical},
	"061101": {"EBICS_TX_RECOVERY_SYNC", KindTechnical},
	"091002": {"EBICS_INVALID_USER_OR_USER_STATE", KindTechnical},
	"091003": {"EBICS_USER_UNKNOWN", KindTechnical},
	"091004": {"EBICS_INVALID_USER_STATE", KindTechnical},
	"091005": {"EBICS_INVALID_ORDER_TYPE", KindTechnical},
	"091006": {"EBICS_UNSUPPORTED_ORDER_TYPE", KindTechnical},
	"091007": {"EBICS_DISTRIBUTED_SIGNATURE_AUTHORISATION_FAILED", KindTechnical},
	"091008": {"EBICS_BANK_PUBKEY_UPDATE_REQUIRED", KindTechnical},
	"091009": {"EBICS_SEGMENT_SIZE_EXCEEDED", KindTechnical},
	"091010": {"EBICS_INVALID_XML", KindTechnical},
	"091011": {"EBICS_INVALID_HOST_ID", KindTechnical},
	"091101": {"EBICS_TX_UNKNOWN_TXID", KindTechnical},
	"091102": {"EBICS_TX_ABORT", KindTechnical},
	"091103": {"EBICS_TX_MESSAGE_REPLAY", KindTechnical},
	"091104": {"EBICS_TX_SEGMENT_NUMBER_EXCEEDED", KindTechnical},
	"091112": {"EBICS_INVALID_ORDER_PARAMS", KindTechnical},
	"091113": {"EBICS_INVALID_REQUEST_CONTENT", KindTechnical},
	"091117": {"EBICS_MAX_ORDER_DATA_SIZE_EXCEEDED", KindTechnical},
	"091118": {"EBICS_MAX_SEGMENTS_EXCEEDED", KindTechnical},
	"091119": {"EBICS_MAX_TRANSACTIONS_EXCEEDED", KindTechnical},
	"091120": {"EBICS_PARTNER_ID_MISMATCH", KindTechnical},
	"091121": {"EBICS_INCOMPATIBLE_ORDER_ATTRIBUTE", KindTechnical},

	"090003": {"EBICS_AUTHORISATION_ORDER_TYPE_FAILED", KindBusiness},
	"090004": {"EBICS_INVALID_ORDER_DATA_FORMAT", KindBusiness},
	"090005": {"EBICS_NO_DOWNLOAD_DATA_AVAILABLE", KindBusiness},
	"090006": {"EBICS_UNSUPPORTED_REQUEST_FOR_ORDER_INSTANCE", KindBusiness},
	"091001": {"EBICS_DOWNLOAD_SIGNED_ONLY", KindBusiness},
	"091105": {"EBICS_RECOVERY_NOT_SUPPORTED", KindBusiness},
	"091111": {"EBICS_INVALID_SIGNATURE_FILE_FORMAT", KindBusiness},
	"091114": {"EBICS_ORDERID_UNKNOWN", KindBusiness},
	"091115": {"EBICS_ORDERID_ALREADY_EXISTS", KindBusiness},
	"091116": {"EBICS_PROCESSING_ERROR", KindBusiness},
	"091201": {"EBICS_KEYMGMT_UNSUPPORTED_VERSION_SIGNATURE", KindBusiness},
	"091202": {"EBICS_KEYMGMT_UNSUPPORTED_VERSION_AUTHENTICATION", KindBusiness},
	"091203": {"EBICS_KEYMGMT_UNSUPPORTED_VERSION_ENCRYPTION", KindBusiness},
	"091204": {"EBICS_KEYMGMT_KEYLENGTH_ERROR_SIGNATURE", KindBusiness},
	"091205": {"EBICS_KEYMGMT_KEYLENGTH_ERROR_AUTHENTICATION", KindBusiness},
	"091206": {"EBICS_KEYMGMT_KEYLENGTH_ERROR_ENCRYPTION", KindBusiness},
	"091207": {"EBICS_KEYMGMT_NO_X509_SUPPORT", KindBusiness},
	"091208": {"EBICS_X509_CERTIFICATE_EXPIRED", KindBusiness},
	"091209": {"EBICS_X509_CERTIFICATE_NOT_VALID_YET", KindBusiness},
	"091210": {"EBICS_X509_WRONG_KEY_USAGE", KindBusiness},
	"091211": {"EBICS_X509_WRONG_ALGORITHM", KindBusiness},
	"091212": {"EBICS_X509_INVALID_THUMBPRINT", KindBusiness},
	"091213": {"EBICS_X509_CTL_INVALID", KindBusiness},
	"091214": {"EBICS_X509_UNKNOWN_CERTIFICATE_AUTHORITY", KindBusiness},
	"091215": {"EBICS_X509_INVALID_POLICY", KindBusiness},
	"091216": {"EBICS_X509_INVALID_BASIC_CONSTRAINTS", KindBusiness},
	"091217": {"EBICS_ONLY_X509_SUPPORT", KindBusiness},
	"091218": {"EBICS_KEYMGMT_DUPLICATE_KEY", KindBusiness},
	"091219": {"EBICS_CERTIFICATES_VALIDATION_ERROR", KindBusiness},
	"091301": {"EBICS_SIGNATURE_VERIFICATION_FAILED", KindBusiness},
	"091302": {"EBICS_ACCOUNT_AUTHORISATION_FAILED", KindBusiness},
	"091303": {"EBICS_AMOUNT_CHECK_FAILED", KindBusiness},
	"091304": {"EBICS_SIGNER_UNKNOWN", KindBusiness},
	"091305": {"EBICS_INVALID_SIGNER_STATE", KindBusiness},
	"091306": {"EBICS_DUPLICATE_SIGNATURE", KindBusiness},
}

// ToReturnCode переводит код ответа банка. Поиск точный и чувствителен к регистру. Неизвестный код
// получает символ EBICS_UNKNOWN_ERROR, код и текст сохраняются как пришли.
func ToReturnCode(code, text string) ReturnCode {
	info, ok := returnCodes[code]
	if !ok {
		return ReturnCode{Code: code, Symbol: SymbolUnknownError, Kind: KindUnknown, Text: text}
	}
	return ReturnCode{Code: code, Symbol: info.symbol, Kind: info.kind, Text: text}
}
