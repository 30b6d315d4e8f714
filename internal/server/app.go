// Package server wires the storage, messaging, scheduling and transport
// layers together and runs them until shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/pegasus/internal/cryptox"
	"github.com/dmitrijs2005/pegasus/internal/logging"
	"github.com/dmitrijs2005/pegasus/internal/messaging"
	"github.com/dmitrijs2005/pegasus/internal/server/archive"
	"github.com/dmitrijs2005/pegasus/internal/server/auth"
	"github.com/dmitrijs2005/pegasus/internal/server/config"
	"github.com/dmitrijs2005/pegasus/internal/server/jobs"
	pmail "github.com/dmitrijs2005/pegasus/internal/server/mail"
	"github.com/dmitrijs2005/pegasus/internal/server/outbox"
	"github.com/dmitrijs2005/pegasus/internal/server/provisioning"
	"github.com/dmitrijs2005/pegasus/internal/server/ratelimit"
	"github.com/dmitrijs2005/pegasus/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/pegasus/internal/server/services"
	"github.com/dmitrijs2005/pegasus/internal/timex"
	"github.com/redis/go-redis/v9"

	gs "github.com/dmitrijs2005/pegasus/internal/server/grpc"
)

type App struct {
	config *config.Config
	logger *logging.SlogLogger
	clock  timex.Clock

	db          *sql.DB
	repomanager repomanager.RepositoryManager
	publisher   messaging.Publisher
	redis       *redis.Client

	codec       *auth.Codec
	sessions    *services.SessionService
	pins        *services.PinService
	provisioner *provisioning.Provisioner
	dispatcher  *outbox.Dispatcher
	scheduler   *jobs.Scheduler
}

var sqlOpen = sql.Open

// openStorage returns the in-memory store when no DSN is configured,
// otherwise a migrated PostgreSQL store.
func openStorage(ctx context.Context, cfg *config.Config, clock timex.Clock) (repomanager.RepositoryManager, *sql.DB, error) {
	if cfg.DatabaseDSN == "" {
		return repomanager.NewInMemoryRepositoryManager(clock), nil, nil
	}

	db, err := sqlOpen("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, fmt.Errorf("db open error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("db ping error: %w", err)
	}

	m, err := repomanager.NewPostgresRepositoryManager(db)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("db init error: %w", err)
	}
	if err := m.RunMigrations(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("db migration error: %w", err)
	}
	return m, db, nil
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(c.LogLevel)
	clock := timex.SystemClock{}

	app := &App{config: c, logger: logger, clock: clock}

	rm, db, err := openStorage(ctx, c, clock)
	if err != nil {
		return nil, err
	}
	app.repomanager, app.db = rm, db

	app.provisioner = provisioning.NewProvisioner(rm, c, logger)

	if c.RabbitMQURL != "" {
		producer, err := messaging.NewEventProducer(c.RabbitMQURL, logger)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("broker init error: %w", err)
		}
		app.publisher = producer
	} else {
		app.publisher = messaging.NewLoopbackPublisher(app.provisioner.Bindings(), messaging.NewLogPublisher(logger), logger)
	}

	app.codec = auth.NewCodec(c.AccessTokenSecret, c.RefreshTokenSecret, c.AccessTokenValidityDuration, c.RefreshTokenValidityDuration, clock)

	mailer := pmail.NewQueueDispatcher(app.publisher, c.NotificationsExchange, logger)
	app.sessions = services.NewSessionService(rm, c, app.codec, cryptox.NewBcryptHasher(c.BcryptCost), mailer, clock, logger)

	if c.RedisAddr != "" {
		client, err := ratelimit.NewClient(ctx, c.RedisAddr, c.RedisPassword, 0)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("redis init error: %w", err)
		}
		app.redis = client
		app.sessions.WithResendLimiter(ratelimit.NewRedisLimiter(client, "pegasus:", c.ResendLimit, c.ResendWindow, logger))
	}

	app.pins = services.NewPinService(rm, cryptox.NewArgon2Hasher(cryptox.DefaultArgon2Params), c, clock, logger)
	app.dispatcher = outbox.NewDispatcher(rm, app.publisher, clock, logger, c.OutboxBatchSize, c.OutboxPollInterval)

	var archiver jobs.LedgerArchiver
	if c.ArchiveEnabled() {
		client, err := archive.NewS3Client(ctx, c)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("s3 init error: %w", err)
		}
		archiver = archive.NewLedgerArchiver(rm, client, c.S3Bucket, clock, logger)
	}

	j := jobs.NewJobs(app.sessions.Verification(), app.sessions.RefreshTokens(), archiver, logger)
	app.scheduler = jobs.NewScheduler(j, logger, c)

	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.sessions, app.pins, app.codec, app.config.TrustedProxies)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// startConsumer feeds user.registered events from the broker to the
// provisioner. Without a broker the loopback publisher does this inline.
func (app *App) startConsumer(ctx context.Context) {
	if app.config.RabbitMQURL == "" {
		return
	}

	consumer, err := messaging.NewConsumer(app.config.RabbitMQURL, app.logger)
	if err != nil {
		app.logger.Error(ctx, "consumer init error", "error", err)
		return
	}
	defer consumer.Close()

	err = consumer.ConsumeWithBindings(ctx, app.config.EventsExchange, app.config.ProvisioningQueue, app.provisioner.Bindings())
	if err != nil && !errors.Is(err, context.Canceled) {
		app.logger.Error(ctx, "consumer stopped", "error", err)
	}
}

// Run blocks until ctx is cancelled, a shutdown signal arrives or the gRPC
// server fails.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	if err := app.scheduler.Start(ctx); err != nil {
		return err
	}

	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		app.dispatcher.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		app.startConsumer(ctx)
	}()
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	<-app.scheduler.Stop().Done()
	app.Close()

	app.logger.Info(context.Background(), "App stopped")
	return nil
}

// Close releases the broker, cache and database handles.
func (app *App) Close() {
	if app.publisher != nil {
		app.publisher.Close()
	}
	if app.redis != nil {
		_ = app.redis.Close()
	}
	if app.db != nil {
		_ = app.db.Close()
	}
}
