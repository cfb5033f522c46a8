package s3store

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
)

// Uploader часть s3manager.Uploader, которой пользуется хранилище.
type Uploader interface {
	UploadWithContext(
		ctx aws.Context,
		input *s3manager.UploadInput,
		opts ...func(*s3manager.Uploader),
	) (*s3manager.UploadOutput, error)
}
