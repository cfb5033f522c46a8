package fileformat

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/fsdevblog/groph-bankorder/internal/domain"
	"github.com/fsdevblog/groph-bankorder/internal/fileformat/mocks"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type DispatcherTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockStorage  *mocks.MockArtifactStorage
	mockRecorder *mocks.MockGenerationRecorder
	dispatcher   *Dispatcher
	now          time.Time
}

func TestDispatcherSuite(t *testing.T) {
	suite.Run(t, new(DispatcherTestSuite))
}

func (s *DispatcherTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStorage = mocks.NewMockArtifactStorage(s.mockCtrl)
	s.mockRecorder = mocks.NewMockGenerationRecorder(s.mockCtrl)
	s.now = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	s.dispatcher = NewDispatcher(s.mockStorage, logrus.New()).
		SetMetrics(s.mockRecorder).
		SetClock(func() time.Time { return s.now })
}

func (s *DispatcherTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *DispatcherTestSuite) TestGenerateFile() {
	order := testOrder(domain.FileFormatPain00100103SCT)
	ref := domain.ArtifactRef{Bucket: "bank-orders", Key: "payment-files/abc/pain.001.001.03.sct_000042.xml"}

	s.mockRecorder.EXPECT().ObserveFileGeneration("pain.001.001.03.sct", gomock.Any(), nil)
	s.mockStorage.EXPECT().
		Attach(gomock.Any(), gomock.Any(), "pain.001.001.03.sct_000042.xml", int64(42)).
		DoAndReturn(func(_ context.Context, r io.Reader, _ string, _ int64) error {
			content, err := io.ReadAll(r)
			s.NoError(err)
			s.Contains(string(content), "CstmrCdtTrfInitn")
			return nil
		})
	s.mockStorage.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(ref, nil)

	file, err := s.dispatcher.GenerateFile(s.T().Context(), order)
	s.Require().NoError(err)
	s.Equal(domain.FileFormatPain00100103SCT, file.Format)
	s.Require().NotNil(order.FileGenerationDateTime)
	s.Equal(s.now, *order.FileGenerationDateTime)
	s.Require().NotNil(order.FileToSend)
	s.Equal(ref, *order.FileToSend)
	s.Contains(string(file.Content), "<CreDtTm>2026-03-10T09:30:00</CreDtTm>")
}

func (s *DispatcherTestSuite) TestUnknownFormat() {
	order := testOrder("pain.999")

	_, err := s.dispatcher.GenerateFile(s.T().Context(), order)
	var incErr *domain.InconsistencyError
	s.Require().ErrorAs(err, &incErr)
	s.Equal(domain.KeyBankOrderFileUnknownFormat, incErr.Key)
	s.Equal([]any{"pain.999"}, incErr.Params)
	s.Nil(order.FileToSend)
}

func (s *DispatcherTestSuite) TestEmptyOutput() {
	mockGenerator := mocks.NewMockGenerator(s.mockCtrl)
	s.dispatcher.SetGenerator(domain.FileFormatCFONB320XCT, mockGenerator)
	order := testOrder(domain.FileFormatCFONB320XCT)

	mockGenerator.EXPECT().GeneratePaymentFile(order).Return(nil, nil)
	s.mockRecorder.EXPECT().ObserveFileGeneration(gomock.Any(), gomock.Any(), nil)

	_, err := s.dispatcher.GenerateFile(s.T().Context(), order)
	var incErr *domain.InconsistencyError
	s.Require().ErrorAs(err, &incErr)
	s.Equal(domain.KeyBankOrderIssueDuringFileGeneration, incErr.Key)
	s.Equal([]any{"*000042"}, incErr.Params)
}

func (s *DispatcherTestSuite) TestSetGeneratorIgnoresUnknownFormat() {
	s.dispatcher.SetGenerator("pain.999", mocks.NewMockGenerator(s.mockCtrl))
	_, known := s.dispatcher.generators["pain.999"]
	s.False(known)
}

func (s *DispatcherTestSuite) TestGeneratorFailure() {
	mockGenerator := mocks.NewMockGenerator(s.mockCtrl)
	s.dispatcher.SetGenerator(domain.FileFormatPain00100102SCT, mockGenerator)
	order := testOrder(domain.FileFormatPain00100102SCT)
	genErr := errors.New("encoder failed")

	mockGenerator.EXPECT().GeneratePaymentFile(order).Return(nil, genErr)
	s.mockRecorder.EXPECT().ObserveFileGeneration("pain.001.001.02.sct", gomock.Any(), genErr)

	_, err := s.dispatcher.GenerateFile(s.T().Context(), order)
	s.Require().ErrorIs(err, genErr)
	s.False(domain.IsBusinessError(err))
}

func (s *DispatcherTestSuite) TestUploadFailure() {
	order := testOrder(domain.FileFormatCFONB320XCT)
	uploadErr := errors.New("s3 is down")

	s.mockRecorder.EXPECT().ObserveFileGeneration(gomock.Any(), gomock.Any(), nil)
	s.mockStorage.EXPECT().Attach(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.mockStorage.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(domain.ArtifactRef{}, uploadErr)

	_, err := s.dispatcher.GenerateFile(s.T().Context(), order)
	s.Require().ErrorIs(err, uploadErr)
	s.Nil(order.FileToSend)
}
