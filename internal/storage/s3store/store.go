// Package s3store хранит сгенерированные платежные файлы в S3.
package s3store

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strconv"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/fsdevblog/groph-bankorder/internal/domain"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	metadataOwnerID = "owner-id"

	contentTypeXML  = "application/xml"
	contentTypeText = "text/plain; charset=us-ascii"
)

type Config struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
}

// NewUploader создает s3manager.Uploader. Если задан Endpoint (minio, localstack), используется
// path-style адресация.
func NewUploader(cfg Config) (*s3manager.Uploader, error) {
	awsCfg := &aws.Config{Region: aws.String(cfg.Region)}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
		awsCfg.S3ForcePathStyle = aws.Bool(true)
	}
	if cfg.AccessKeyID != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, "")
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("create aws session: %w", err)
	}
	return s3manager.NewUploader(sess), nil
}

type Store struct {
	uploader Uploader
	bucket   string
	l        *logrus.Entry
	newID    func() string
}

func New(uploader Uploader, bucket string, l *logrus.Logger) *Store {
	return &Store{
		uploader: uploader,
		bucket:   bucket,
		l: l.WithFields(logrus.Fields{
			"component": "storage",
			"module":    "s3",
		}),
		newID: uuid.NewString,
	}
}

// Attach сохраняет файл в каталог вложений заказа ownerID.
func (s *Store) Attach(ctx context.Context, r io.Reader, fileName string, ownerID int64) error {
	key := path.Join("bank-orders", strconv.FormatInt(ownerID, 10), "attachments", fileName)
	_, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        r,
		ContentType: aws.String(contentType(fileName)),
		Metadata: map[string]*string{
			metadataOwnerID: aws.String(strconv.FormatInt(ownerID, 10)),
		},
	})
	if err != nil {
		return fmt.Errorf("upload attachment %s: %w", key, err)
	}
	s.l.WithFields(logrus.Fields{"key": key, "ownerID": ownerID}).Debug("attachment stored")
	return nil
}

// Upload загружает файл под уникальным ключом и возвращает ссылку на объект.
func (s *Store) Upload(ctx context.Context, file *domain.PaymentFile) (domain.ArtifactRef, error) {
	key := path.Join("payment-files", s.newID(), file.Name)
	out, err := s.uploader.UploadWithContext(ctx, &s3manager.UploadInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(file.Content),
		ContentType: aws.String(contentType(file.Name)),
		Metadata: map[string]*string{
			"file-format": aws.String(string(file.Format)),
		},
	})
	if err != nil {
		return domain.ArtifactRef{}, fmt.Errorf("upload payment file %s: %w", key, err)
	}
	return domain.ArtifactRef{Bucket: s.bucket, Key: key, Location: out.Location}, nil
}

func contentType(fileName string) string {
	if path.Ext(fileName) == ".xml" {
		return contentTypeXML
	}
	return contentTypeText
}
