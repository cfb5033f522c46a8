package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsdevblog/groph-bankorder/internal/config"
	"github.com/fsdevblog/groph-bankorder/internal/events"
	"github.com/fsdevblog/groph-bankorder/internal/fileformat"
	"github.com/fsdevblog/groph-bankorder/internal/i18n"
	"github.com/fsdevblog/groph-bankorder/internal/metrics"
	"github.com/fsdevblog/groph-bankorder/internal/repository/pgrepo"
	"github.com/fsdevblog/groph-bankorder/internal/repository/repoargs"
	"github.com/fsdevblog/groph-bankorder/internal/service"
	"github.com/fsdevblog/groph-bankorder/internal/storage/s3store"
	"github.com/fsdevblog/groph-bankorder/internal/transport/api"
	"github.com/fsdevblog/groph-bankorder/internal/transport/ebics"
	"github.com/fsdevblog/groph-bankorder/pkg/uow"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"

	// driver for migration applying postgres.
	_ "github.com/golang-migrate/migrate/v4/database/postgres" //nolint:revive
	// driver to get migrations from files (*.sql in our case).
	_ "github.com/golang-migrate/migrate/v4/source/file" //nolint:revive
)

const shutdownTimeout = 10 * time.Second

type App struct {
	Config *config.Config
	Logger *logrus.Logger
}

func New(conf *config.Config, l *logrus.Logger) *App {
	return &App{
		Config: conf,
		Logger: l,
	}
}

// eventPublisher публикатор событий, который нужно закрыть при остановке.
type eventPublisher interface {
	service.EventPublisher
	Close() error
}

func (a *App) Run() error {
	notifyCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.Logger.Infof("Starting app with config: %s", a.Config)
	conn, connErr := pgrepo.Connect(notifyCtx, pgrepo.ConnectArgs{
		DSN:           a.Config.DatabaseDSN,
		MigrationsDir: a.Config.MigrationsDir,
	}, a.Logger)
	if connErr != nil {
		return fmt.Errorf("app run: %s", connErr.Error())
	}
	defer conn.Close()

	unitOfWork, uowErr := initUOW(conn)
	if uowErr != nil {
		return fmt.Errorf("app run: %s", uowErr.Error())
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector, metricsErr := metrics.NewCollector(registry)
	if metricsErr != nil {
		return fmt.Errorf("app run: %s", metricsErr.Error())
	}

	dispatcher, dispatcherErr := a.initDispatcher(collector)
	if dispatcherErr != nil {
		return fmt.Errorf("app run: %s", dispatcherErr.Error())
	}

	ebicsClient := ebics.NewHTTPClient(ebics.HTTPClientArgs{
		URL:       a.Config.Ebics.URL,
		HostID:    a.Config.Ebics.HostID,
		PartnerID: a.Config.Ebics.PartnerID,
		Timeout:   a.Config.Ebics.Timeout,
		Logger:    a.Logger,
	})
	sender := ebics.NewService(ebicsClient, a.Logger).SetMetrics(collector)

	publisher, pubErr := a.initPublisher()
	if pubErr != nil {
		return fmt.Errorf("app run: %s", pubErr.Error())
	}
	defer func() {
		if closeErr := publisher.Close(); closeErr != nil {
			a.Logger.WithError(closeErr).Error("close event publisher")
		}
	}()

	bankOrderService, sErr := service.NewBankOrderService(service.BankOrderServiceArgs{
		UOW:           unitOfWork,
		FileGenerator: dispatcher,
		Sender:        sender,
		Publisher:     publisher,
		Metrics:       collector,
		Logger:        a.Logger,
	})
	if sErr != nil {
		return fmt.Errorf("app run: %s", sErr.Error())
	}

	router, routerErr := api.New(api.RouterArgs{
		Logger:           a.Logger,
		BankOrderService: bankOrderService,
		Messages:         i18n.NewCatalog(language.English),
		JWTSecretKey:     []byte(a.Config.JWTSecret),
		MetricsHandler:   promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}),
	})
	if routerErr != nil {
		return fmt.Errorf("app run: %s", routerErr.Error())
	}

	srv := &http.Server{
		Addr:              a.Config.RunAddress,
		Handler:           router,
		ReadHeaderTimeout: api.DefaultServiceTimeout,
	}

	errChan := make(chan error, 1)

	go func() {
		if runErr := srv.ListenAndServe(); runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
			errChan <- runErr
		}
	}()

	select {
	case <-notifyCtx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			a.Logger.WithError(err).Error("http server shutdown")
		}
		return notifyCtx.Err() //nolint:wrapcheck
	case err := <-errChan:
		return err
	}
}

func (a *App) initDispatcher(collector *metrics.Collector) (*fileformat.Dispatcher, error) {
	uploader, err := s3store.NewUploader(s3store.Config{
		Region:          a.Config.S3.Region,
		Endpoint:        a.Config.S3.Endpoint,
		AccessKeyID:     a.Config.S3.AccessKeyID,
		SecretAccessKey: a.Config.S3.SecretAccessKey,
	})
	if err != nil {
		return nil, fmt.Errorf("init dispatcher: %w", err)
	}
	store := s3store.New(uploader, a.Config.S3.Bucket, a.Logger)
	return fileformat.NewDispatcher(store, a.Logger).SetMetrics(collector), nil
}

func (a *App) initPublisher() (eventPublisher, error) {
	if len(a.Config.Kafka.Brokers) == 0 {
		a.Logger.Warn("kafka brokers are not set, bank order events are not published")
		return events.NopPublisher{}, nil
	}
	publisher, err := events.NewKafkaPublisher(a.Config.Kafka.Brokers, a.Config.Kafka.Topic, a.Logger)
	if err != nil {
		return nil, fmt.Errorf("init publisher: %w", err)
	}
	return publisher, nil
}

func initUOW(conn *pgxpool.Pool) (*uow.UnitOfWork, error) {
	unitOfWork := uow.NewUnitOfWork(conn).SetTxOptions(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})

	// bank order repo
	bankOrderRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewBankOrderRepository(dbtx)
	}
	if regErr := unitOfWork.Register(
		uow.RepositoryName(repoargs.BankOrderRepoName),
		bankOrderRepoFactoryFn,
	); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	// invoice payment repo
	invoicePaymentRepoFactoryFn := func(dbtx uow.DBTX) uow.Repository {
		return pgrepo.NewInvoicePaymentRepository(dbtx)
	}
	if regErr := unitOfWork.Register(
		uow.RepositoryName(repoargs.InvoicePaymentRepoName),
		invoicePaymentRepoFactoryFn,
	); regErr != nil {
		return nil, fmt.Errorf("init UOW: %s", regErr.Error())
	}

	return unitOfWork, nil
}
