package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/fsdevblog/groph-bankorder/internal/domain"
	"github.com/fsdevblog/groph-bankorder/internal/repository/repoargs"
	"github.com/fsdevblog/groph-bankorder/pkg/uow"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Имена операций жизненного цикла. Попадают в логи, метрики и события.
const (
	OperationCreate           = "create"
	OperationConfirm          = "confirm"
	OperationSign             = "sign"
	OperationValidate         = "validate"
	OperationMarkSent         = "mark_sent"
	OperationCancel           = "cancel"
	OperationGenerateSequence = "generate_sequence"
)

const defaultPublishTimeout = 3 * time.Second

type BankOrderServiceArgs struct {
	UOW           uow.UOW
	FileGenerator FileGenerator
	Sender        TransferSender
	// Publisher и Metrics необязательны.
	Publisher EventPublisher
	Metrics   TransitionRecorder
	Logger    *logrus.Logger
}

// BankOrderService жизненный цикл платежного поручения. Каждый переход выполняется в одной транзакции
// над копией заказа: при ошибке ни вызывающая сторона, ни база изменений не видят.
type BankOrderService struct {
	uow         uow.UOW
	orderRepo   BankOrderRepository
	lineService *BankOrderLineService
	generator   FileGenerator
	sender      TransferSender
	publisher   EventPublisher
	metrics     TransitionRecorder
	l           *logrus.Entry
	now         func() time.Time
}

func NewBankOrderService(args BankOrderServiceArgs) (*BankOrderService, error) {
	if args.FileGenerator == nil || args.Sender == nil {
		return nil, errors.New("bank order service: file generator and sender are required")
	}
	orderRepo, err := uow.GetRepositoryAs[BankOrderRepository](
		args.UOW, uow.RepositoryName(repoargs.BankOrderRepoName),
	)
	if err != nil {
		return nil, fmt.Errorf("bank order service: %w", err)
	}

	l := args.Logger
	if l == nil {
		l = logrus.StandardLogger()
	}

	svc := &BankOrderService{
		uow:         args.UOW,
		orderRepo:   orderRepo,
		lineService: NewBankOrderLineService(),
		generator:   args.FileGenerator,
		sender:      args.Sender,
		publisher:   args.Publisher,
		metrics:     args.Metrics,
		l: l.WithFields(logrus.Fields{
			"component": "service",
			"module":    "bank_order",
		}),
		now: time.Now,
	}
	if svc.publisher == nil {
		svc.publisher = nopPublisher{}
	}
	if svc.metrics == nil {
		svc.metrics = nopRecorder{}
	}
	return svc, nil
}

// SetClock подменяет источник текущего времени.
func (s *BankOrderService) SetClock(now func() time.Time) *BankOrderService {
	s.now = now
	return s
}

// Get возвращает заказ со строками.
func (s *BankOrderService) Get(ctx context.Context, id int64) (*domain.BankOrder, error) {
	order, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get bank order %d: %w", id, err)
	}
	return order, nil
}

type CreateBankOrderLineArgs struct {
	BankOrderAmount       decimal.NullDecimal
	CompanyCurrencyAmount decimal.NullDecimal
	Partner               *domain.Partner
	ReceiverCompany       *domain.Company
	ReceiverBankDetails   *domain.BankDetails
	ReceiverReference     string
	ReceiverLabel         string
}

type CreateBankOrderArgs struct {
	OrderType         domain.OrderType
	PartnerType       domain.PartnerType
	BankOrderDate     time.Time
	IsMultiCurrency   bool
	CurrencyCode      string
	FileFormat        domain.FileFormat
	PaymentModeID     int64
	SenderCompany     *domain.Company
	SenderBankDetails *domain.BankDetails
	SignatoryUserID   int64
	EbicsUserID       string
	// BankOrderTotalAmount итог, заданный вручную. Учитывается только для мультивалютного заказа.
	BankOrderTotalAmount decimal.Decimal
	Lines                []CreateBankOrderLineArgs
}

// Create создает черновик заказа со строками, пересчитывает итоги и присваивает номер.
func (s *BankOrderService) Create(ctx context.Context, args CreateBankOrderArgs) (*domain.BankOrder, error) {
	order := &domain.BankOrder{
		Status:               domain.BankOrderStatusDraft,
		OrderType:            args.OrderType,
		PartnerType:          args.PartnerType,
		BankOrderDate:        args.BankOrderDate,
		IsMultiCurrency:      args.IsMultiCurrency,
		CurrencyCode:         args.CurrencyCode,
		FileFormat:           args.FileFormat,
		PaymentModeID:        args.PaymentModeID,
		SenderCompany:        args.SenderCompany,
		SenderBankDetails:    args.SenderBankDetails,
		SignatoryUserID:      args.SignatoryUserID,
		EbicsUserID:          args.EbicsUserID,
		BankOrderTotalAmount: args.BankOrderTotalAmount,
		Lines:                make([]domain.BankOrderLine, len(args.Lines)),
	}
	for i, line := range args.Lines {
		order.Lines[i] = domain.BankOrderLine{
			Counter:               i + 1,
			BankOrderAmount:       line.BankOrderAmount,
			CompanyCurrencyAmount: line.CompanyCurrencyAmount,
			Partner:               line.Partner,
			ReceiverCompany:       line.ReceiverCompany,
			ReceiverBankDetails:   line.ReceiverBankDetails,
			ReceiverReference:     line.ReceiverReference,
			ReceiverLabel:         line.ReceiverLabel,
		}
	}
	UpdateTotals(order)

	var created *domain.BankOrder
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[BankOrderRepository](tx, uow.RepositoryName(repoargs.BankOrderRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		inserted, createErr := repo.Create(c, order)
		if createErr != nil {
			return createErr //nolint:wrapcheck
		}
		if assignSequence(inserted) {
			if err := repo.Save(c, inserted); err != nil {
				return err //nolint:wrapcheck
			}
		}
		created = inserted
		return nil
	})
	s.metrics.RecordTransition(OperationCreate, domain.BankOrderStatusDraft, txErr)
	if txErr != nil {
		return nil, fmt.Errorf("create bank order: %w", txErr)
	}

	s.l.WithFields(logrus.Fields{
		"bankOrderID":  created.ID,
		"bankOrderSeq": created.BankOrderSeq,
		"lines":        len(created.Lines),
	}).Info("bank order created")
	s.publish(ctx, created, OperationCreate)
	return created, nil
}

// GenerateSequence присваивает номер заказу, у которого он еще не задан и есть ID, и сохраняет заказ.
// В остальных случаях ничего не делает. order меняется только при успешном сохранении.
func (s *BankOrderService) GenerateSequence(ctx context.Context, order *domain.BankOrder) error {
	if order.BankOrderSeq != "" || order.ID == 0 {
		return nil
	}
	working := order.Clone()
	assignSequence(working)

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[BankOrderRepository](tx, uow.RepositoryName(repoargs.BankOrderRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		return repo.Save(c, working) //nolint:wrapcheck
	})
	s.metrics.RecordTransition(OperationGenerateSequence, working.Status, txErr)
	if txErr != nil {
		return fmt.Errorf("generate sequence for bank order %d: %w", order.ID, txErr)
	}
	*order = *working
	return nil
}

// CheckPreconditions проверяет заголовок заказа. Возвращает первую найденную *domain.InconsistencyError.
func (s *BankOrderService) CheckPreconditions(order *domain.BankOrder) error {
	if order.BankOrderDate.IsZero() {
		return domain.NewInconsistencyError(domain.KeyBankOrderDateMissing)
	}
	if s.isBeforeToday(order.BankOrderDate) {
		return domain.NewInconsistencyError(domain.KeyBankOrderDate, order.BankOrderDate.Format(time.DateOnly))
	}
	if order.OrderType == "" {
		return domain.NewInconsistencyError(domain.KeyBankOrderTypeMissing)
	}
	if order.OrderType != domain.OrderTypeBankToBankTransfer && order.PartnerType == "" {
		return domain.NewInconsistencyError(domain.KeyBankOrderPartnerTypeMissing)
	}
	if order.PaymentModeID == 0 {
		return domain.NewInconsistencyError(domain.KeyBankOrderPaymentModeMissing)
	}
	if order.SenderCompany == nil {
		return domain.NewInconsistencyError(domain.KeyBankOrderCompanyMissing)
	}
	if order.SenderBankDetails == nil {
		return domain.NewInconsistencyError(domain.KeyBankOrderBankDetailsMissing)
	}
	if !order.IsMultiCurrency && order.CurrencyCode == "" {
		return domain.NewInconsistencyError(domain.KeyBankOrderCurrencyMissing)
	}
	if order.SignatoryUserID == 0 {
		return domain.NewInconsistencyError(domain.KeyBankOrderSignatoryMissing)
	}
	return nil
}

// CheckLines проверяет, что строки есть, каждая строка корректна, а сумма строк точно равна ArithmeticTotal.
func (s *BankOrderService) CheckLines(order *domain.BankOrder) error {
	if len(order.Lines) == 0 {
		return domain.NewInconsistencyError(domain.KeyBankOrderLinesMissing)
	}
	total := decimal.Zero
	for i := range order.Lines {
		if err := s.lineService.CheckPreconditions(&order.Lines[i], order.OrderType); err != nil {
			return err
		}
		total = total.Add(order.Lines[i].BankOrderAmount.Decimal)
	}
	if !total.Equal(order.ArithmeticTotal) {
		return domain.NewInconsistencyError(
			domain.KeyBankOrderLineTotalAmountInvalid, total.StringFixed(2), order.ArithmeticTotal.StringFixed(2),
		)
	}
	return nil
}

// Confirm подтверждает черновик. Кредитовые переводы SEPA и международные уходят на подпись,
// остальные типы сразу становятся VALIDATED.
func (s *BankOrderService) Confirm(ctx context.Context, id int64) (*domain.BankOrder, error) {
	confirm := func(_ context.Context, _ uow.TX, o *domain.BankOrder) error {
		if err := s.CheckPreconditions(o); err != nil {
			return err
		}
		if err := s.CheckLines(o); err != nil {
			return err
		}
		if o.OrderType.RequiresSignature() {
			o.Status = domain.BankOrderStatusAwaitingSignature
		} else {
			o.Status = domain.BankOrderStatusValidated
		}
		return nil
	}
	return s.transition(ctx, id, OperationConfirm, isDraft, confirm)
}

// Sign переводит заказ, ожидающий подписи, в SIGNED. Подписать заказ может только его подписант
// (SignatoryUserID), иначе вернется ошибка с domain.ErrNotSignatory.
func (s *BankOrderService) Sign(ctx context.Context, id, signerID int64) (*domain.BankOrder, error) {
	allowed := func(o *domain.BankOrder) bool {
		return o.Status == domain.BankOrderStatusAwaitingSignature
	}
	sign := func(_ context.Context, _ uow.TX, o *domain.BankOrder) error {
		if signerID != o.SignatoryUserID {
			return &domain.InconsistencyError{
				Key:    domain.KeyBankOrderSignatoryMismatch,
				Params: []any{o.BankOrderSeq},
				Err:    domain.ErrNotSignatory,
			}
		}
		// TODO: проверять подпись подписанта (EBICS ES) до смены статуса.
		o.Status = domain.BankOrderStatusSigned
		return nil
	}
	return s.transition(ctx, id, OperationSign, allowed, sign)
}

// Validate формирует платежный файл и отправляет его в банк.
//
// Алгоритм работы:
//  1. Для черновика (только типы без подписи) выполняет CheckPreconditions и CheckLines.
//  2. Ставит статус VALIDATED и время валидации, нумерует строки, считает их количество.
//  3. Генерирует файл по FileFormat заказа (файл прикрепляется к заказу).
//  4. Отправляет файл по EBICS и разбирает квитанцию банка.
//  5. Сохраняет заказ. Любая ошибка на шагах 1-4 откатывает транзакцию.
func (s *BankOrderService) Validate(ctx context.Context, id int64) (*domain.BankOrder, error) {
	allowed := func(o *domain.BankOrder) bool {
		switch o.Status {
		case domain.BankOrderStatusDraft:
			return !o.OrderType.RequiresSignature()
		case domain.BankOrderStatusSigned:
			return true
		case domain.BankOrderStatusValidated:
			return o.FileToSend == nil
		default:
			return false
		}
	}
	validate := func(c context.Context, _ uow.TX, o *domain.BankOrder) error {
		if o.Status == domain.BankOrderStatusDraft {
			if err := s.CheckPreconditions(o); err != nil {
				return err
			}
			if err := s.CheckLines(o); err != nil {
				return err
			}
		}
		assignSequence(o)

		now := s.now()
		o.Status = domain.BankOrderStatusValidated
		o.ValidationDateTime = &now
		setSequenceOnLines(o)
		o.NbOfLines = len(o.Lines)

		file, genErr := s.generator.GenerateFile(c, o)
		if genErr != nil {
			return genErr //nolint:wrapcheck
		}

		rc, sendErr := s.sender.SendFULRequest(c, o.EbicsUserID, file)
		if sendErr != nil {
			return sendErr //nolint:wrapcheck
		}
		s.l.WithFields(logrus.Fields{
			"bankOrderID": o.ID,
			"file":        file.Name,
			"returnCode":  rc.Code,
		}).Debug("bank accepted file")
		return nil
	}
	return s.transition(ctx, id, OperationValidate, allowed, validate)
}

// MarkSent фиксирует, что банк исполнил отправленный заказ.
func (s *BankOrderService) MarkSent(ctx context.Context, id int64) (*domain.BankOrder, error) {
	allowed := func(o *domain.BankOrder) bool {
		return o.Status == domain.BankOrderStatusValidated && o.FileToSend != nil
	}
	markSent := func(_ context.Context, _ uow.TX, o *domain.BankOrder) error {
		now := s.now()
		o.Status = domain.BankOrderStatusSent
		o.SentDateTime = &now
		return nil
	}
	return s.transition(ctx, id, OperationMarkSent, allowed, markSent)
}

// CancelBankOrder отменяет заказ и связанный с ним платеж.
func (s *BankOrderService) CancelBankOrder(ctx context.Context, id int64) (*domain.BankOrder, error) {
	allowed := func(o *domain.BankOrder) bool {
		return !o.Status.IsTerminal()
	}
	cancel := func(c context.Context, tx uow.TX, o *domain.BankOrder) error {
		o.Status = domain.BankOrderStatusCanceled
		return s.setPaymentStatus(c, tx, o.ID, domain.InvoicePaymentStatusCanceled)
	}
	return s.transition(ctx, id, OperationCancel, allowed, cancel)
}

// ValidatePayment переводит связанный с заказом платеж в VALIDATED. Статус заказа не меняется.
func (s *BankOrderService) ValidatePayment(ctx context.Context, id int64) error {
	return s.updatePayment(ctx, id, domain.InvoicePaymentStatusValidated)
}

// CancelPayment переводит связанный с заказом платеж в CANCELED. Статус заказа не меняется.
func (s *BankOrderService) CancelPayment(ctx context.Context, id int64) error {
	return s.updatePayment(ctx, id, domain.InvoicePaymentStatusCanceled)
}

func (s *BankOrderService) updatePayment(
	ctx context.Context,
	id int64,
	status domain.InvoicePaymentStatusType,
) error {
	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[BankOrderRepository](tx, uow.RepositoryName(repoargs.BankOrderRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		if _, err := repo.FindByID(c, id); err != nil {
			return err //nolint:wrapcheck
		}
		return s.setPaymentStatus(c, tx, id, status)
	})
	if txErr != nil {
		return fmt.Errorf("set payment status %s for bank order %d: %w", status, id, txErr)
	}
	return nil
}

// setPaymentStatus меняет статус платежа заказа. Если платежа нет, ничего не делает.
func (s *BankOrderService) setPaymentStatus(
	ctx context.Context,
	tx uow.TX,
	bankOrderID int64,
	status domain.InvoicePaymentStatusType,
) error {
	repo, repoErr := uow.GetAs[InvoicePaymentRepository](tx, uow.RepositoryName(repoargs.InvoicePaymentRepoName))
	if repoErr != nil {
		return repoErr //nolint:wrapcheck
	}
	payment, findErr := repo.FindByBankOrderID(ctx, bankOrderID)
	if findErr != nil {
		if errors.Is(findErr, domain.ErrRecordNotFound) {
			return nil
		}
		return findErr //nolint:wrapcheck
	}
	return repo.UpdateStatus(ctx, payment.ID, status) //nolint:wrapcheck
}

type transitionFunc func(ctx context.Context, tx uow.TX, order *domain.BankOrder) error

// transition общий каркас перехода: загрузка заказа, проверка исходного статуса, изменение копии,
// сохранение. После фиксации транзакции пишет метрику и публикует событие.
func (s *BankOrderService) transition(
	ctx context.Context,
	id int64,
	operation string,
	allowed func(*domain.BankOrder) bool,
	fn transitionFunc,
) (*domain.BankOrder, error) {
	var result *domain.BankOrder
	var fromStatus domain.BankOrderStatusType

	txErr := s.uow.Do(ctx, func(c context.Context, tx uow.TX) error {
		repo, repoErr := uow.GetAs[BankOrderRepository](tx, uow.RepositoryName(repoargs.BankOrderRepoName))
		if repoErr != nil {
			return repoErr //nolint:wrapcheck
		}
		stored, findErr := repo.FindByID(c, id)
		if findErr != nil {
			return findErr //nolint:wrapcheck
		}
		fromStatus = stored.Status
		if !allowed(stored) {
			return &domain.InconsistencyError{
				Key:    domain.KeyBankOrderStatusInvalid,
				Params: []any{stored.BankOrderSeq, stored.Status, operation},
				Err:    domain.ErrInvalidTransition,
			}
		}

		working := stored.Clone()
		if err := fn(c, tx, working); err != nil {
			return err
		}
		if err := repo.Save(c, working); err != nil {
			return err //nolint:wrapcheck
		}
		result = working
		return nil
	})

	entry := s.l.WithFields(logrus.Fields{
		"bankOrderID": id,
		"operation":   operation,
		"from":        fromStatus,
	})
	if txErr != nil {
		s.metrics.RecordTransition(operation, fromStatus, txErr)
		if domain.IsBusinessError(txErr) {
			entry.WithError(txErr).Info("transition rejected")
			return nil, txErr
		}
		entry.WithError(txErr).Error("transition failed")
		return nil, fmt.Errorf("%s bank order %d: %w", operation, id, txErr)
	}

	s.metrics.RecordTransition(operation, result.Status, nil)
	entry.WithField("status", result.Status).Info("transition done")
	s.publish(ctx, result, operation)
	return result, nil
}

// publish отправляет событие о зафиксированном изменении. Ошибка публикации только логируется:
// переход уже сохранен в базе.
func (s *BankOrderService) publish(ctx context.Context, order *domain.BankOrder, operation string) {
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultPublishTimeout)
	defer cancel()

	event := domain.BankOrderEvent{
		BankOrderID:  order.ID,
		BankOrderSeq: order.BankOrderSeq,
		Operation:    operation,
		Status:       order.Status,
		OccurredAt:   s.now(),
	}
	if err := s.publisher.Publish(pubCtx, event); err != nil {
		s.l.WithError(err).WithFields(logrus.Fields{
			"bankOrderID": order.ID,
			"operation":   operation,
		}).Warn("publish bank order event")
	}
}

func (s *BankOrderService) isBeforeToday(date time.Time) bool {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	return day.Before(today)
}

func isDraft(o *domain.BankOrder) bool {
	return o.Status == domain.BankOrderStatusDraft
}

// sequenceWidth минимальная ширина числовой части номера заказа.
const sequenceWidth = 6

// assignSequence присваивает номер вида "*000042". Возвращает false, если номер уже есть или нет ID.
func assignSequence(order *domain.BankOrder) bool {
	if order.BankOrderSeq != "" || order.ID == 0 {
		return false
	}
	order.BankOrderSeq = fmt.Sprintf("*%0*d", sequenceWidth, order.ID)
	return true
}

// setSequenceOnLines нумерует строки с единицы: "<номер заказа>-<счетчик>".
func setSequenceOnLines(order *domain.BankOrder) {
	for i := range order.Lines {
		counter := i + 1
		order.Lines[i].Counter = counter
		order.Lines[i].Sequence = order.BankOrderSeq + "-" + strconv.Itoa(counter)
	}
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, domain.BankOrderEvent) error { return nil }

type nopRecorder struct{}

func (nopRecorder) RecordTransition(string, domain.BankOrderStatusType, error) {}
