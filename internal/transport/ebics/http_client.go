package ebics

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fsdevblog/groph-bankorder/internal/domain"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

const (
	OrderTypeFUL = "FUL"

	protocolVersion  = "H003"
	protocolRevision = "1"
	// orderAttribute DZHNN: данные заказа без электронной подписи банковского уровня.
	orderAttribute = "DZHNN"
	securityMedium = "0000"
	product        = "groph-bankorder"

	defaultTimeout             = 30 * time.Second
	defaultConsecutiveFailures = 5
	defaultOpenTimeout         = time.Minute
	// maxResponseSize квитанция FUL занимает несколько килобайт.
	maxResponseSize            = 1 << 20
)

type ebicsRequest struct {
	XMLName  xml.Name      `xml:"urn:org:ebics:H003 ebicsRequest"`
	Version  string        `xml:"Version,attr"`
	Revision string        `xml:"Revision,attr"`
	Header   requestHeader `xml:"header"`
	Body     requestBody   `xml:"body"`
}

type requestHeader struct {
	Authenticate bool           `xml:"authenticate,attr"`
	Static       requestStatic  `xml:"static"`
	Mutable      requestMutable `xml:"mutable"`
}

type requestStatic struct {
	HostID         string       `xml:"HostID"`
	Nonce          string       `xml:"Nonce"`
	Timestamp      string       `xml:"Timestamp"`
	PartnerID      string       `xml:"PartnerID"`
	UserID         string       `xml:"UserID"`
	Product        string       `xml:"Product"`
	OrderDetails   orderDetails `xml:"OrderDetails"`
	SecurityMedium string       `xml:"SecurityMedium"`
	NumSegments    int          `xml:"NumSegments"`
}

type orderDetails struct {
	OrderType      string         `xml:"OrderType"`
	OrderAttribute string         `xml:"OrderAttribute"`
	FULOrderParams fulOrderParams `xml:"FULOrderParams"`
}

type fulOrderParams struct {
	FileFormat string `xml:"FileFormat"`
}

type requestMutable struct {
	TransactionPhase string `xml:"TransactionPhase"`
}

type requestBody struct {
	OrderData string `xml:"DataTransfer>OrderData"`
}

type HTTPClientArgs struct {
	URL       string
	HostID    string
	PartnerID string
	// Timeout таймаут одного запроса, 0 означает значение по умолчанию.
	Timeout time.Duration
	Logger  *logrus.Logger
}

// HTTPClient реализация Client поверх HTTP. Запросы идут через circuit breaker: после серии ошибок
// подряд клиент некоторое время отклоняет запросы сразу. Повторных попыток нет.
type HTTPClient struct {
	url        string
	hostID     string
	partnerID  string
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker
	now        func() time.Time
	maxBody    int64
}

func NewHTTPClient(args HTTPClientArgs) *HTTPClient {
	timeout := args.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	l := args.Logger
	if l == nil {
		l = logrus.StandardLogger()
	}
	entry := l.WithFields(logrus.Fields{
		"component": "ebics",
		"module":    "http_client",
	})

	settings := gobreaker.Settings{
		Name:    "ebics",
		Timeout: defaultOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= defaultConsecutiveFailures
		},
		IsSuccessful: isBankReachable,
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			entry.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("circuit breaker state changed")
		},
	}

	return &HTTPClient{
		url:        args.URL,
		hostID:     args.HostID,
		partnerID:  args.PartnerID,
		httpClient: &http.Client{Timeout: timeout},
		cb:         gobreaker.NewCircuitBreaker(settings),
		now:        time.Now,
		maxBody:    maxResponseSize,
	}
}

// isBankReachable решает, засчитывать ли результат запроса в пользу банка. Отмена запроса
// вызывающей стороной и ответы 4xx не говорят о недоступности банка.
func isBankReachable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return true
	}
	var statusErr *StatusCodeError
	if errors.As(err, &statusErr) {
		return statusErr.Code < http.StatusInternalServerError
	}
	return false
}

// Submit отправляет файл заказом orderType от имени userID и возвращает тело ответа банка.
// При ответе со статусом отличным от http.StatusOK вернется *StatusCodeError, при открытом
// circuit breaker ErrChannelUnavailable.
func (c *HTTPClient) Submit(
	ctx context.Context,
	userID string,
	orderType string,
	file *domain.PaymentFile,
) (io.ReadCloser, error) {
	payload, buildErr := c.buildRequest(userID, orderType, file)
	if buildErr != nil {
		return nil, buildErr
	}

	result, err := c.cb.Execute(func() (interface{}, error) {
		return c.do(ctx, payload)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %s", ErrChannelUnavailable, err.Error())
		}
		return nil, err //nolint:wrapcheck
	}
	body, _ := result.([]byte)
	return io.NopCloser(bytes.NewReader(body)), nil
}

func (c *HTTPClient) buildRequest(userID, orderType string, file *domain.PaymentFile) ([]byte, error) {
	req := ebicsRequest{
		Version:  protocolVersion,
		Revision: protocolRevision,
		Header: requestHeader{
			Authenticate: true,
			Static: requestStatic{
				HostID:    c.hostID,
				Nonce:     strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")),
				Timestamp: c.now().UTC().Format(time.RFC3339),
				PartnerID: c.partnerID,
				UserID:    userID,
				Product:   product,
				OrderDetails: orderDetails{
					OrderType:      orderType,
					OrderAttribute: orderAttribute,
					FULOrderParams: fulOrderParams{FileFormat: string(file.Format)},
				},
				SecurityMedium: securityMedium,
				NumSegments:    1,
			},
			Mutable: requestMutable{TransactionPhase: "Initialisation"},
		},
		Body: requestBody{OrderData: base64.StdEncoding.EncodeToString(file.Content)},
	}

	out, err := xml.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal ebics request: %s", err.Error())
	}
	return append([]byte(xml.Header), out...), nil
}

// do выполняет запрос и читает тело ответа целиком.
//
//nolint:nonamedreturns
func (c *HTTPClient) do(ctx context.Context, payload []byte) (body []byte, err error) {
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %s", reqErr.Error())
	}
	req.Header.Set("Content-Type", "text/xml; charset=UTF-8")

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("do request: %w", doErr)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		err = NewStatusCodeError(resp.StatusCode)
		return nil, err
	}

	body, err = io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		err = fmt.Errorf("read response: %s", err.Error())
		return nil, err
	}
	if int64(len(body)) > c.maxBody {
		err = fmt.Errorf("read response: body exceeds %d bytes", c.maxBody)
		return nil, err
	}
	return body, nil
}
