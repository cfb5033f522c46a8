package ebics

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"io"

	"github.com/fsdevblog/groph-bankorder/internal/domain"
)

type Client interface {
	Submit(ctx context.Context, userID string, orderType string, file *domain.PaymentFile) (io.ReadCloser, error)
}

// CodeRecorder учитывает полученные от банка коды возврата.
type CodeRecorder interface {
	RecordReturnCode(orderType string, code string, kind string)
}
