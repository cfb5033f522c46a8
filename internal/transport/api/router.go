package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-bankorder/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const (
	DefaultServiceTimeout = 3 * time.Second
	// ValidateTimeout покрывает генерацию файла, загрузку в хранилище и ответ банка.
	ValidateTimeout = 60 * time.Second
)

const (
	RouteGroup           = "/api"
	BankOrdersRoute      = "/bank-orders"
	BankOrderRoute       = "/bank-orders/:id"
	ConfirmRoute         = "/bank-orders/:id/confirm"
	SignRoute            = "/bank-orders/:id/sign"
	ValidateRoute        = "/bank-orders/:id/validate"
	CancelRoute          = "/bank-orders/:id/cancel"
	MarkSentRoute        = "/bank-orders/:id/mark-sent"
	PaymentValidateRoute = "/bank-orders/:id/payment/validate"
	PaymentCancelRoute   = "/bank-orders/:id/payment/cancel"
	MetricsRoute         = "/metrics"
)

type RouterArgs struct {
	Logger           *logrus.Logger
	BankOrderService BankOrderServicer
	Messages         middlewares.MessageRenderer
	JWTSecretKey     []byte
	// MetricsHandler необязателен. Если задан, отдается без авторизации по MetricsRoute.
	MetricsHandler http.Handler
}

func New(args RouterArgs) (*gin.Engine, error) {
	if err := registerValidators(); err != nil {
		return nil, fmt.Errorf("api router: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	if args.Logger != nil {
		r.Use(middlewares.Logger(args.Logger))
	}
	r.Use(middlewares.Errors(args.Messages))

	if args.MetricsHandler != nil {
		r.GET(MetricsRoute, gin.WrapH(args.MetricsHandler))
	}

	bankOrders := NewBankOrdersHandler(args.BankOrderService)

	api := r.Group(RouteGroup)
	// все роуты группы требуют авторизованного пользователя.
	api.Use(middlewares.AuthRequired(args.JWTSecretKey))

	api.POST(BankOrdersRoute, bankOrders.Create)
	api.GET(BankOrderRoute, bankOrders.Show)
	api.POST(ConfirmRoute, bankOrders.Confirm)
	api.POST(SignRoute, bankOrders.Sign)
	api.POST(ValidateRoute, bankOrders.Validate)
	api.POST(CancelRoute, bankOrders.Cancel)
	api.POST(MarkSentRoute, bankOrders.MarkSent)
	api.POST(PaymentValidateRoute, bankOrders.ValidatePayment)
	api.POST(PaymentCancelRoute, bankOrders.CancelPayment)
	return r, nil
}
