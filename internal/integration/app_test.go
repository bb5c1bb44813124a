package integration_test

import (
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/seatmap/internal/app"
	"github.com/metinatakli/seatmap/internal/events"
	"github.com/metinatakli/seatmap/internal/mailer"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App         *app.Application
	DB          *pgxpool.Pool
	RedisClient *redis.Client
	Mailer      *mailer.MockMailer
	Publisher   *events.MockPublisher
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	mockMailer := mailer.NewMockMailer()
	publisher := &events.MockPublisher{}

	application, err := app.NewApp(cfg, logger, app.WithMailer(mockMailer), app.WithPublisher(publisher))
	if err != nil {
		return nil, err
	}

	// separate connections, so tests can arrange and inspect state directly
	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		application.Close()
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		application.Close()
		db.Close()
		return nil, err
	}

	return &TestApp{
		App:         application,
		DB:          db,
		RedisClient: redisClient,
		Mailer:      mockMailer,
		Publisher:   publisher,
	}, nil
}

func (a *TestApp) Close() {
	a.App.Close()
	a.RedisClient.Close()
	a.DB.Close()
}
