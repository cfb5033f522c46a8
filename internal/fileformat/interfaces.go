package fileformat

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"io"
	"time"

	"github.com/fsdevblog/groph-bankorder/internal/domain"
)

// Generator строит платежный файл одного формата. Результат зависит только от состояния заказа.
type Generator interface {
	GeneratePaymentFile(order *domain.BankOrder) (*domain.PaymentFile, error)
}

// ArtifactStorage хранилище сгенерированных файлов.
type ArtifactStorage interface {
	// Attach прикрепляет содержимое r к заказу ownerID под именем fileName.
	Attach(ctx context.Context, r io.Reader, fileName string, ownerID int64) error
	// Upload загружает файл для отправки и возвращает ссылку на него.
	Upload(ctx context.Context, file *domain.PaymentFile) (domain.ArtifactRef, error)
}

type GenerationRecorder interface {
	ObserveFileGeneration(format string, duration time.Duration, err error)
}
