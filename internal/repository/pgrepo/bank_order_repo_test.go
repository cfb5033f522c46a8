package pgrepo

import (
	"errors"
	"testing"
	"time"

	"github.com/fsdevblog/groph-bankorder/internal/domain"
	"github.com/fsdevblog/groph-bankorder/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// fakeRow отдает заранее заданные значения в Scan. Поддерживает только типы, нужные тестам.
type fakeRow struct {
	err    error
	values []any
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch v := d.(type) {
		case *int64:
			*v = r.values[i].(int64) //nolint:forcetypeassert
		case *time.Time:
			*v = r.values[i].(time.Time) //nolint:forcetypeassert
		default:
			return errors.New("unsupported scan target")
		}
	}
	return nil
}

type BankOrderRepositoryTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	mockDB *mocks.MockDBTX
	repo   *BankOrderRepository
}

func TestBankOrderRepositorySuite(t *testing.T) {
	suite.Run(t, new(BankOrderRepositoryTestSuite))
}

func (s *BankOrderRepositoryTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockDB = mocks.NewMockDBTX(s.ctrl)
	s.repo = NewBankOrderRepository(s.mockDB)
}

func (s *BankOrderRepositoryTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BankOrderRepositoryTestSuite) TestSaveStaleVersion() {
	order := &domain.BankOrder{ID: 7, Version: 3, Status: domain.BankOrderStatusValidated}

	s.mockDB.EXPECT().
		QueryRow(gomock.Any(), updateBankOrderSQL, gomock.Any()).
		Return(fakeRow{err: pgx.ErrNoRows})

	err := s.repo.Save(s.T().Context(), order)
	s.Require().ErrorIs(err, domain.ErrStaleBankOrder)
	s.Equal(int64(3), order.Version)
}

func (s *BankOrderRepositoryTestSuite) TestSaveBumpsVersion() {
	updatedAt := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	order := &domain.BankOrder{ID: 7, Version: 3, Status: domain.BankOrderStatusSigned}

	s.mockDB.EXPECT().
		QueryRow(gomock.Any(), updateBankOrderSQL, gomock.Any()).
		DoAndReturn(func(_ any, _ string, args ...any) pgx.Row {
			s.Equal(int64(7), args[0])
			s.Equal(int64(3), args[1])
			return fakeRow{values: []any{int64(4), updatedAt}}
		})

	s.Require().NoError(s.repo.Save(s.T().Context(), order))
	s.Equal(int64(4), order.Version)
	s.Equal(updatedAt, order.UpdatedAt)
}

func (s *BankOrderRepositoryTestSuite) TestFindByIDNotFound() {
	s.mockDB.EXPECT().
		QueryRow(gomock.Any(), findBankOrderSQL, int64(404)).
		Return(fakeRow{err: pgx.ErrNoRows})

	_, err := s.repo.FindByID(s.T().Context(), 404)
	s.Require().ErrorIs(err, domain.ErrRecordNotFound)
}

func (s *BankOrderRepositoryTestSuite) TestConvertErr() {
	s.Require().NoError(convertErr(nil, "noop"))
	s.Require().ErrorIs(convertErr(pgx.ErrNoRows, "find"), domain.ErrRecordNotFound)
	s.Require().ErrorIs(convertErr(&pgconn.PgError{Code: uniqueViolationCode}, "insert"), domain.ErrDuplicateKey)
	s.Require().ErrorIs(convertErr(&pgconn.PgError{Code: foreignKeyViolationCode}, "insert"), domain.ErrRecordNotFound)
	s.Require().ErrorIs(convertErr(errors.New("conn reset"), "query"), domain.ErrUnknown)
}

func (s *BankOrderRepositoryTestSuite) TestBankOrderArgsNulls() {
	order := &domain.BankOrder{
		BankOrderSeq:      "*000042",
		OrderType:         domain.OrderTypeSEPACreditTransfer,
		CurrencyCode:      "EUR",
		ArithmeticTotal:   decimal.RequireFromString("100.00"),
		SenderCompany:     &domain.Company{ID: 1, Name: "ACME"},
		SenderBankDetails: &domain.BankDetails{IBAN: "FR7630006000011234567890189", BIC: "AGRIFRPP"},
	}
	args := bankOrderArgs(order)

	// пустые значения уходят в базу как NULL.
	partnerType, _ := args[2].(*string)
	s.Nil(partnerType)
	orderDate, _ := args[3].(*time.Time)
	s.Nil(orderDate)

	seq, _ := args[0].(*string)
	s.Require().NotNil(seq)
	s.Equal("*000042", *seq)

	companyID, _ := args[16].(*int64)
	s.Require().NotNil(companyID)
	s.Equal(int64(1), *companyID)

	bic, _ := args[19].(*string)
	s.Require().NotNil(bic)
	s.Equal("AGRIFRPP", *bic)
}
