// Package fileformat формирует платежные файлы заказа в форматах, которые принимает банк.
package fileformat

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/fsdevblog/groph-bankorder/internal/domain"
	"github.com/sirupsen/logrus"
)

// Dispatcher выбирает генератор по FileFormat заказа. Набор форматов закрыт, см. domain.FileFormat.
type Dispatcher struct {
	generators map[domain.FileFormat]Generator
	storage    ArtifactStorage
	metrics    GenerationRecorder
	l          *logrus.Entry
	now        func() time.Time
}

func NewDispatcher(storage ArtifactStorage, l *logrus.Logger) *Dispatcher {
	return &Dispatcher{
		generators: map[domain.FileFormat]Generator{
			domain.FileFormatPain00100102SCT: NewPain00100102(),
			domain.FileFormatPain00100103SCT: NewPain00100103(),
			domain.FileFormatCFONB320XCT:     NewCFONB320(),
		},
		storage: storage,
		metrics: nopRecorder{},
		l: l.WithFields(logrus.Fields{
			"component": "fileformat",
			"module":    "dispatcher",
		}),
		now: time.Now,
	}
}

// SetGenerator заменяет генератор известного формата. Неизвестный формат игнорируется.
func (d *Dispatcher) SetGenerator(format domain.FileFormat, g Generator) *Dispatcher {
	if format.IsKnown() {
		d.generators[format] = g
	}
	return d
}

func (d *Dispatcher) SetMetrics(m GenerationRecorder) *Dispatcher {
	d.metrics = m
	return d
}

// SetClock подменяет источник текущего времени.
func (d *Dispatcher) SetClock(now func() time.Time) *Dispatcher {
	d.now = now
	return d
}

// GenerateFile строит файл заказа и прикрепляет его к заказу.
//
// Алгоритм работы:
//  1. Ставит заказу FileGenerationDateTime.
//  2. Выбирает генератор по FileFormat. Для неизвестного формата вернется *domain.InconsistencyError
//     с ключом bank_order.file_unknown_format.
//  3. Пустой результат генератора дает ключ bank_order.issue_during_file_generation.
//  4. Прикрепляет файл к заказу, загружает его и записывает ссылку в FileToSend.
func (d *Dispatcher) GenerateFile(ctx context.Context, order *domain.BankOrder) (*domain.PaymentFile, error) {
	now := d.now()
	order.FileGenerationDateTime = &now

	gen, ok := d.generators[order.FileFormat]
	if !ok {
		return nil, domain.NewInconsistencyError(domain.KeyBankOrderFileUnknownFormat, string(order.FileFormat))
	}

	start := time.Now()
	file, genErr := gen.GeneratePaymentFile(order)
	d.metrics.ObserveFileGeneration(string(order.FileFormat), time.Since(start), genErr)
	if genErr != nil {
		if domain.IsBusinessError(genErr) {
			return nil, genErr
		}
		return nil, fmt.Errorf("generate %s file for bank order %d: %w", order.FileFormat, order.ID, genErr)
	}
	if file == nil || len(file.Content) == 0 {
		return nil, domain.NewInconsistencyError(domain.KeyBankOrderIssueDuringFileGeneration, order.BankOrderSeq)
	}

	if err := d.storage.Attach(ctx, bytes.NewReader(file.Content), file.Name, order.ID); err != nil {
		return nil, fmt.Errorf("attach %s to bank order %d: %w", file.Name, order.ID, err)
	}
	ref, uploadErr := d.storage.Upload(ctx, file)
	if uploadErr != nil {
		return nil, fmt.Errorf("upload %s: %w", file.Name, uploadErr)
	}
	order.FileToSend = &ref

	d.l.WithFields(logrus.Fields{
		"bankOrderID": order.ID,
		"file":        file.Name,
		"size":        len(file.Content),
		"key":         ref.Key,
	}).Info("payment file generated")
	return file, nil
}

// fileName имя файла вида "<формат>_<номер заказа без звездочки>.<ext>".
func fileName(format domain.FileFormat, order *domain.BankOrder, ext string) string {
	return fmt.Sprintf("%s_%s.%s", format, strings.TrimPrefix(order.BankOrderSeq, "*"), ext)
}

func marshalDocument(doc any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)

	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("close encoder: %w", err)
	}
	return buf.Bytes(), nil
}

type nopRecorder struct{}

func (nopRecorder) ObserveFileGeneration(string, time.Duration, error) {}
