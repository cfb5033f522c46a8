// Package metrics метрики Prometheus жизненного цикла заказов, обмена с банком и генерации файлов.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-bankorder/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "bankorder"

// Результаты операции в метках.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultError    = "error"
)

type Collector struct {
	transitions *prometheus.CounterVec
	returnCodes *prometheus.CounterVec
	generation  *prometheus.HistogramVec
}

// NewCollector создает метрики и регистрирует их в reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	transitions, err := register(reg, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transitions_total",
			Help:      "Bank order lifecycle operations by resulting status and outcome",
		},
		[]string{"operation", "status", "result"},
	))
	if err != nil {
		return nil, err
	}

	returnCodes, err := register(reg, prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ebics_return_codes_total",
			Help:      "EBICS return codes received from the bank",
		},
		[]string{"order_type", "code", "kind"},
	))
	if err != nil {
		return nil, err
	}

	generation, err := register(reg, prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "file_generation_duration_seconds",
			Help:      "Payment file generation duration by format",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8), //nolint:mnd
		},
		[]string{"format", "result"},
	))
	if err != nil {
		return nil, err
	}

	return &Collector{
		transitions: transitions,
		returnCodes: returnCodes,
		generation:  generation,
	}, nil
}

// register регистрирует метрику. Если такая уже есть в reg, возвращает существующую.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("register metrics: %w", err)
	}
	return c, nil
}

func (c *Collector) RecordTransition(operation string, status domain.BankOrderStatusType, err error) {
	c.transitions.WithLabelValues(operation, string(status), result(err)).Inc()
}

func (c *Collector) RecordReturnCode(orderType string, code string, kind string) {
	c.returnCodes.WithLabelValues(orderType, code, kind).Inc()
}

func (c *Collector) ObserveFileGeneration(format string, duration time.Duration, err error) {
	c.generation.WithLabelValues(format, result(err)).Observe(duration.Seconds())
}

// result бизнес-ошибки отделяются от инфраструктурных.
func result(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case domain.IsBusinessError(err):
		return ResultRejected
	default:
		return ResultError
	}
}

// NoOpCollector ничего не учитывает.
type NoOpCollector struct{}

func (NoOpCollector) RecordTransition(string, domain.BankOrderStatusType, error) {}

func (NoOpCollector) RecordReturnCode(string, string, string) {}

func (NoOpCollector) ObserveFileGeneration(string, time.Duration, error) {}
