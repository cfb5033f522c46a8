package s3store

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/fsdevblog/groph-bankorder/internal/domain"
	"github.com/fsdevblog/groph-bankorder/internal/storage/s3store/mocks"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockUploader *mocks.MockUploader
	store        *Store
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUploader = mocks.NewMockUploader(s.mockCtrl)
	s.store = New(s.mockUploader, "bank-orders", logrus.New())
	s.store.newID = func() string { return "0b7c1c1e-5d4f-4a47-9c3e-2f0c1d6c9a10" }
}

func (s *StoreTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *StoreTestSuite) TestAttach() {
	s.mockUploader.EXPECT().
		UploadWithContext(gomock.Any(), gomock.Any()).
		DoAndReturn(func(
			_ aws.Context, in *s3manager.UploadInput, _ ...func(*s3manager.Uploader),
		) (*s3manager.UploadOutput, error) {
			s.Equal("bank-orders", aws.StringValue(in.Bucket))
			s.Equal("bank-orders/42/attachments/pain.001.001.03.sct_000042.xml", aws.StringValue(in.Key))
			s.Equal(contentTypeXML, aws.StringValue(in.ContentType))
			s.Equal("42", aws.StringValue(in.Metadata[metadataOwnerID]))

			body, err := io.ReadAll(in.Body)
			s.NoError(err)
			s.Equal("<Document/>", string(body))
			return &s3manager.UploadOutput{}, nil
		})

	err := s.store.Attach(s.T().Context(), strings.NewReader("<Document/>"), "pain.001.001.03.sct_000042.xml", 42)
	s.Require().NoError(err)
}

func (s *StoreTestSuite) TestUpload() {
	file := &domain.PaymentFile{
		Name:    "pain.XXX.cfonb320.xct_000042.txt",
		Format:  domain.FileFormatCFONB320XCT,
		Content: []byte("03PI"),
	}
	wantKey := "payment-files/0b7c1c1e-5d4f-4a47-9c3e-2f0c1d6c9a10/pain.XXX.cfonb320.xct_000042.txt"

	s.mockUploader.EXPECT().
		UploadWithContext(gomock.Any(), gomock.Any()).
		DoAndReturn(func(
			_ aws.Context, in *s3manager.UploadInput, _ ...func(*s3manager.Uploader),
		) (*s3manager.UploadOutput, error) {
			s.Equal(wantKey, aws.StringValue(in.Key))
			s.Equal(contentTypeText, aws.StringValue(in.ContentType))
			return &s3manager.UploadOutput{Location: "https://s3.local/bank-orders/" + wantKey}, nil
		})

	ref, err := s.store.Upload(s.T().Context(), file)
	s.Require().NoError(err)
	s.Equal(domain.ArtifactRef{
		Bucket:   "bank-orders",
		Key:      wantKey,
		Location: "https://s3.local/bank-orders/" + wantKey,
	}, ref)
}

func (s *StoreTestSuite) TestUploadError() {
	uploadErr := errors.New("access denied")
	s.mockUploader.EXPECT().UploadWithContext(gomock.Any(), gomock.Any()).Return(nil, uploadErr)

	_, err := s.store.Upload(s.T().Context(), &domain.PaymentFile{Name: "f.xml"})
	s.Require().ErrorIs(err, uploadErr)
}
