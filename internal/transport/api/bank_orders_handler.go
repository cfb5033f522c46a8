package api

import (
	"context"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-bankorder/internal/domain"
	"github.com/fsdevblog/groph-bankorder/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type BankOrdersHandler struct {
	svc BankOrderServicer
}

func NewBankOrdersHandler(svc BankOrderServicer) *BankOrdersHandler {
	return &BankOrdersHandler{svc: svc}
}

type CompanyRequest struct {
	ID   int64  `json:"id"   binding:"required,gt=0"`
	Name string `json:"name" binding:"required,max_bytes=140"`
}

type PartnerRequest struct {
	ID   int64  `json:"id"   binding:"required,gt=0"`
	Name string `json:"name" binding:"required,max_bytes=140"`
}

type BankDetailsRequest struct {
	IBAN      string `json:"iban"      binding:"required,iban"`
	BIC       string `json:"bic"       binding:"omitempty,bic"`
	OwnerName string `json:"ownerName" binding:"max_bytes=140"`
}

type BankOrderLineRequest struct {
	BankOrderAmount       *decimal.Decimal    `json:"bankOrderAmount"`
	CompanyCurrencyAmount *decimal.Decimal    `json:"companyCurrencyAmount"`
	Partner               *PartnerRequest     `json:"partner"`
	ReceiverCompany       *CompanyRequest     `json:"receiverCompany"`
	ReceiverBankDetails   *BankDetailsRequest `json:"receiverBankDetails"`
	ReceiverReference     string              `json:"receiverReference"   binding:"max_bytes=35"`
	ReceiverLabel         string              `json:"receiverLabel"       binding:"max_bytes=140"`
}

// CreateBankOrderRequest тело POST RouteGroup + BankOrdersRoute. Поля, которые проверяются при
// подтверждении заказа, здесь необязательны: черновик можно сохранить неполным.
type CreateBankOrderRequest struct {
	OrderType            domain.OrderType       `json:"orderType"`
	PartnerType          domain.PartnerType     `json:"partnerType"`
	BankOrderDate        string                 `json:"bankOrderDate"        binding:"omitempty,datetime=2006-01-02"`
	IsMultiCurrency      bool                   `json:"isMultiCurrency"`
	CurrencyCode         string                 `json:"currencyCode"         binding:"omitempty,iso4217"`
	FileFormat           string                 `json:"fileFormat"           binding:"required,file_format"`
	PaymentModeID        int64                  `json:"paymentModeId"`
	SenderCompany        *CompanyRequest        `json:"senderCompany"`
	SenderBankDetails    *BankDetailsRequest    `json:"senderBankDetails"`
	SignatoryUserID      int64                  `json:"signatoryUserId"`
	EbicsUserID          string                 `json:"ebicsUserId"          binding:"max_bytes=35"`
	BankOrderTotalAmount decimal.Decimal        `json:"bankOrderTotalAmount"`
	Lines                []BankOrderLineRequest `json:"lines"                binding:"dive"`
}

type BankOrderLineResponse struct {
	ID                int64            `json:"id"`
	Counter           int              `json:"counter"`
	Sequence          string           `json:"sequence,omitempty"`
	BankOrderAmount   *decimal.Decimal `json:"bankOrderAmount"`
	PartnerID         int64            `json:"partnerId,omitempty"`
	ReceiverCompanyID int64            `json:"receiverCompanyId,omitempty"`
	ReceiverIBAN      string           `json:"receiverIban,omitempty"`
	ReceiverReference string           `json:"receiverReference,omitempty"`
	ReceiverLabel     string           `json:"receiverLabel,omitempty"`
}

type FileResponse struct {
	Bucket   string `json:"bucket"`
	Key      string `json:"key"`
	Location string `json:"location"`
}

type BankOrderResponse struct {
	ID                     int64                      `json:"id"`
	Version                int64                      `json:"version"`
	BankOrderSeq           string                     `json:"bankOrderSeq"`
	OrderType              domain.OrderType           `json:"orderType"`
	Status                 domain.BankOrderStatusType `json:"status"`
	BankOrderDate          string                     `json:"bankOrderDate,omitempty"`
	CurrencyCode           string                     `json:"currencyCode,omitempty"`
	FileFormat             domain.FileFormat          `json:"fileFormat"`
	ArithmeticTotal        decimal.Decimal            `json:"arithmeticTotal"`
	BankOrderTotalAmount   decimal.Decimal            `json:"bankOrderTotalAmount"`
	NbOfLines              int                        `json:"nbOfLines"`
	ValidationDateTime     *time.Time                 `json:"validationDateTime,omitempty"`
	FileGenerationDateTime *time.Time                 `json:"fileGenerationDateTime,omitempty"`
	SentDateTime           *time.Time                 `json:"sentDateTime,omitempty"`
	FileToSend             *FileResponse              `json:"fileToSend,omitempty"`
	Lines                  []BankOrderLineResponse    `json:"lines"`
	CreatedAt              time.Time                  `json:"createdAt"`
	UpdatedAt              time.Time                  `json:"updatedAt"`
}

// Create POST RouteGroup + BankOrdersRoute.
func (h *BankOrdersHandler) Create(c *gin.Context) {
	var req CreateBankOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.AbortWithError(http.StatusBadRequest, err).SetType(gin.ErrorTypeBind)
		return
	}

	args, argsErr := req.toArgs()
	if argsErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, argsErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := h.svc.Create(reqCtx, args)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, newBankOrderResponse(order))
}

// Show GET RouteGroup + BankOrderRoute.
func (h *BankOrdersHandler) Show(c *gin.Context) {
	id, ok := bankOrderID(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	order, err := h.svc.Get(reqCtx, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBankOrderResponse(order))
}

// Confirm POST RouteGroup + ConfirmRoute.
func (h *BankOrdersHandler) Confirm(c *gin.Context) {
	h.transition(c, DefaultServiceTimeout, h.svc.Confirm)
}

// Sign POST RouteGroup + SignRoute. Подписантом считается пользователь из токена.
func (h *BankOrdersHandler) Sign(c *gin.Context) {
	signerID := getUserIDFromContext(c)
	h.transition(c, DefaultServiceTimeout, func(ctx context.Context, id int64) (*domain.BankOrder, error) {
		return h.svc.Sign(ctx, id, signerID)
	})
}

// Validate POST RouteGroup + ValidateRoute. Запрос ждет ответа банка, поэтому таймаут больше.
func (h *BankOrdersHandler) Validate(c *gin.Context) {
	h.transition(c, ValidateTimeout, h.svc.Validate)
}

// MarkSent POST RouteGroup + MarkSentRoute.
func (h *BankOrdersHandler) MarkSent(c *gin.Context) {
	h.transition(c, DefaultServiceTimeout, h.svc.MarkSent)
}

// Cancel POST RouteGroup + CancelRoute.
func (h *BankOrdersHandler) Cancel(c *gin.Context) {
	h.transition(c, DefaultServiceTimeout, h.svc.CancelBankOrder)
}

// ValidatePayment POST RouteGroup + PaymentValidateRoute.
func (h *BankOrdersHandler) ValidatePayment(c *gin.Context) {
	h.payment(c, h.svc.ValidatePayment)
}

// CancelPayment POST RouteGroup + PaymentCancelRoute.
func (h *BankOrdersHandler) CancelPayment(c *gin.Context) {
	h.payment(c, h.svc.CancelPayment)
}

func (h *BankOrdersHandler) transition(
	c *gin.Context,
	timeout time.Duration,
	fn func(ctx context.Context, id int64) (*domain.BankOrder, error),
) {
	id, ok := bankOrderID(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, timeout)
	defer cancel()

	order, err := fn(reqCtx, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, newBankOrderResponse(order))
}

func (h *BankOrdersHandler) payment(c *gin.Context, fn func(ctx context.Context, id int64) error) {
	id, ok := bankOrderID(c)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := fn(reqCtx, id); err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.AbortWithStatus(http.StatusNoContent)
}

func (r CreateBankOrderRequest) toArgs() (service.CreateBankOrderArgs, error) {
	args := service.CreateBankOrderArgs{
		OrderType:            r.OrderType,
		PartnerType:          r.PartnerType,
		IsMultiCurrency:      r.IsMultiCurrency,
		CurrencyCode:         r.CurrencyCode,
		FileFormat:           domain.FileFormat(r.FileFormat),
		PaymentModeID:        r.PaymentModeID,
		SenderCompany:        r.SenderCompany.toDomain(),
		SenderBankDetails:    r.SenderBankDetails.toDomain(),
		SignatoryUserID:      r.SignatoryUserID,
		EbicsUserID:          r.EbicsUserID,
		BankOrderTotalAmount: r.BankOrderTotalAmount,
		Lines:                make([]service.CreateBankOrderLineArgs, len(r.Lines)),
	}
	if r.BankOrderDate != "" {
		date, err := time.ParseInLocation(time.DateOnly, r.BankOrderDate, time.Local)
		if err != nil {
			return service.CreateBankOrderArgs{}, err //nolint:wrapcheck
		}
		args.BankOrderDate = date
	}
	for i, line := range r.Lines {
		args.Lines[i] = service.CreateBankOrderLineArgs{
			BankOrderAmount:       nullDecimal(line.BankOrderAmount),
			CompanyCurrencyAmount: nullDecimal(line.CompanyCurrencyAmount),
			ReceiverCompany:       line.ReceiverCompany.toDomain(),
			ReceiverBankDetails:   line.ReceiverBankDetails.toDomain(),
			ReceiverReference:     line.ReceiverReference,
			ReceiverLabel:         line.ReceiverLabel,
		}
		if line.Partner != nil {
			args.Lines[i].Partner = &domain.Partner{ID: line.Partner.ID, Name: line.Partner.Name}
		}
	}
	return args, nil
}

func (r *CompanyRequest) toDomain() *domain.Company {
	if r == nil {
		return nil
	}
	return &domain.Company{ID: r.ID, Name: r.Name}
}

func (r *BankDetailsRequest) toDomain() *domain.BankDetails {
	if r == nil {
		return nil
	}
	return &domain.BankDetails{IBAN: r.IBAN, BIC: r.BIC, OwnerName: r.OwnerName}
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func newBankOrderResponse(order *domain.BankOrder) BankOrderResponse {
	resp := BankOrderResponse{
		ID:                     order.ID,
		Version:                order.Version,
		BankOrderSeq:           order.BankOrderSeq,
		OrderType:              order.OrderType,
		Status:                 order.Status,
		CurrencyCode:           order.CurrencyCode,
		FileFormat:             order.FileFormat,
		ArithmeticTotal:        order.ArithmeticTotal,
		BankOrderTotalAmount:   order.BankOrderTotalAmount,
		NbOfLines:              order.NbOfLines,
		ValidationDateTime:     order.ValidationDateTime,
		FileGenerationDateTime: order.FileGenerationDateTime,
		SentDateTime:           order.SentDateTime,
		Lines:                  make([]BankOrderLineResponse, len(order.Lines)),
		CreatedAt:              order.CreatedAt,
		UpdatedAt:              order.UpdatedAt,
	}
	if !order.BankOrderDate.IsZero() {
		resp.BankOrderDate = order.BankOrderDate.Format(time.DateOnly)
	}
	if order.FileToSend != nil {
		resp.FileToSend = &FileResponse{
			Bucket:   order.FileToSend.Bucket,
			Key:      order.FileToSend.Key,
			Location: order.FileToSend.Location,
		}
	}
	for i, line := range order.Lines {
		lr := BankOrderLineResponse{
			ID:                line.ID,
			Counter:           line.Counter,
			Sequence:          line.Sequence,
			ReceiverReference: line.ReceiverReference,
			ReceiverLabel:     line.ReceiverLabel,
		}
		if line.BankOrderAmount.Valid {
			amount := line.BankOrderAmount.Decimal
			lr.BankOrderAmount = &amount
		}
		if line.Partner != nil {
			lr.PartnerID = line.Partner.ID
		}
		if line.ReceiverCompany != nil {
			lr.ReceiverCompanyID = line.ReceiverCompany.ID
		}
		if line.ReceiverBankDetails != nil {
			lr.ReceiverIBAN = line.ReceiverBankDetails.IBAN
		}
		resp.Lines[i] = lr
	}
	return resp
}
