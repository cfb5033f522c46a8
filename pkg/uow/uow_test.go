package uow_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fsdevblog/groph-bankorder/pkg/uow"
	"github.com/fsdevblog/groph-bankorder/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
)

// fakeTx считает фиксации и откаты. Остальные методы pgx.Tx в тестах не вызываются.
type fakeTx struct {
	pgx.Tx
	committed  int
	rolledBack int
}

func (f *fakeTx) Commit(context.Context) error {
	f.committed++
	return nil
}

func (f *fakeTx) Rollback(context.Context) error {
	if f.committed > 0 {
		return pgx.ErrTxClosed
	}
	f.rolledBack++
	return nil
}

type counterRepo struct {
	db uow.DBTX
}

type UnitOfWorkTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockPool *mocks.MockPool
	unit     *uow.UnitOfWork
}

func TestUnitOfWorkSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkTestSuite))
}

func (s *UnitOfWorkTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockPool = mocks.NewMockPool(s.ctrl)
	s.unit = uow.NewUnitOfWork(s.mockPool)

	s.Require().NoError(s.unit.Register("counter", func(db uow.DBTX) uow.Repository {
		return &counterRepo{db: db}
	}))
}

func (s *UnitOfWorkTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *UnitOfWorkTestSuite) TestRegister() {
	err := s.unit.Register("counter", func(db uow.DBTX) uow.Repository { return nil })
	s.Require().ErrorIs(err, uow.ErrRepositoryAlreadyRegistered)

	s.Require().ErrorIs(s.unit.Register("nil", nil), uow.ErrNilFactory)
}

func (s *UnitOfWorkTestSuite) TestDoCommit() {
	tx := new(fakeTx)
	s.mockPool.EXPECT().
		BeginTx(gomock.Any(), pgx.TxOptions{IsoLevel: pgx.ReadCommitted}).
		Return(tx, nil)

	err := s.unit.Do(s.T().Context(), func(_ context.Context, t uow.TX) error {
		first, getErr := uow.GetAs[*counterRepo](t, "counter")
		s.Require().NoError(getErr)
		second, getErr := uow.GetAs[*counterRepo](t, "counter")
		s.Require().NoError(getErr)

		// в пределах одной транзакции репозиторий один.
		s.Same(first, second)
		s.Equal(tx, first.db)
		return nil
	})

	s.Require().NoError(err)
	s.Equal(1, tx.committed)
	s.Equal(0, tx.rolledBack)
}

func (s *UnitOfWorkTestSuite) TestDoRollback() {
	tx := new(fakeTx)
	s.mockPool.EXPECT().BeginTx(gomock.Any(), gomock.Any()).Return(tx, nil)

	fnErr := errors.New("boom")
	err := s.unit.Do(s.T().Context(), func(context.Context, uow.TX) error {
		return fnErr
	})

	s.Require().ErrorIs(err, fnErr)
	s.Equal(0, tx.committed)
	s.Equal(1, tx.rolledBack)
}

func (s *UnitOfWorkTestSuite) TestDoBeginError() {
	beginErr := errors.New("no connection")
	s.mockPool.EXPECT().BeginTx(gomock.Any(), gomock.Any()).Return(nil, beginErr)

	err := s.unit.Do(s.T().Context(), func(context.Context, uow.TX) error {
		s.Fail("fn must not be called")
		return nil
	})
	s.Require().ErrorIs(err, beginErr)
}

func (s *UnitOfWorkTestSuite) TestGetRepositoryAs() {
	repo, err := uow.GetRepositoryAs[*counterRepo](s.unit, "counter")
	s.Require().NoError(err)
	s.Equal(s.mockPool, repo.db)

	_, err = uow.GetRepositoryAs[*counterRepo](s.unit, "missing")
	s.Require().ErrorIs(err, uow.ErrRepositoryNotRegistered)

	_, err = uow.GetRepositoryAs[string](s.unit, "counter")
	s.Require().ErrorIs(err, uow.ErrInvalidRepositoryType)
}
