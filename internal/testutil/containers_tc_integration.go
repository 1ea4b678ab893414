//go:build integration

package testutil

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/modules/redpanda"
	"github.com/testcontainers/testcontainers-go/wait"

	pgrepo "github.com/Gunvolt24/restaurant_svc/internal/repo/postgres"
)

const (
	postgresImage = "postgres:16-alpine"
	redpandaImage = "docker.redpanda.com/redpandadata/redpanda:v23.3.8"

	catalogDB    = "restaurants"
	catalogUser  = "app"
	poolMaxConns = 5
)

// CatalogDB - Postgres с примененной схемой каталога ресторанов.
type CatalogDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	DSN       string
}

// StartPostgresTC - поднимает Postgres, накатывает миграции и открывает пул.
func StartPostgresTC(ctx context.Context) (*CatalogDB, error) {
	pg, err := postgres.Run(ctx, postgresImage,
		postgres.WithDatabase(catalogDB),
		postgres.WithUsername(catalogUser),
		postgres.WithPassword(catalogUser),
		tc.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("run postgres: %w", err)
	}
	db := &CatalogDB{Container: pg}

	if db.DSN, err = pg.ConnectionString(ctx, "sslmode=disable"); err != nil {
		_ = db.Stop(ctx)
		return nil, fmt.Errorf("postgres dsn: %w", err)
	}
	if err := ApplyMigrationsGoose(db.DSN); err != nil {
		_ = db.Stop(ctx)
		return nil, fmt.Errorf("migrate catalog: %w", err)
	}
	if db.Pool, err = pgrepo.NewPool(ctx, db.DSN, poolMaxConns); err != nil {
		_ = db.Stop(ctx)
		return nil, err
	}
	return db, nil
}

// Stop - закрывает пул и останавливает контейнер.
func (db *CatalogDB) Stop(ctx context.Context) error {
	if db.Pool != nil {
		db.Pool.Close()
	}
	return db.Container.Terminate(ctx)
}

// DishEventsBroker - redpanda для событий изменения блюд.
type DishEventsBroker struct {
	Container *redpanda.Container
	Brokers   []string
	BaseTopic string
}

// StartKafkaTC - поднимает redpanda; baseTopic - префикс топиков теста.
func StartKafkaTC(ctx context.Context, baseTopic string) (*DishEventsBroker, error) {
	rp, err := redpanda.Run(ctx, redpandaImage, redpanda.WithAutoCreateTopics())
	if err != nil {
		return nil, fmt.Errorf("run redpanda: %w", err)
	}

	seed, err := rp.KafkaSeedBroker(ctx)
	if err != nil {
		_ = tc.TerminateContainer(rp)
		return nil, fmt.Errorf("seed broker: %w", err)
	}
	return &DishEventsBroker{Container: rp, Brokers: []string{seed}, BaseTopic: baseTopic}, nil
}

// Topic - создает уникальный топик "<BaseTopic>-<suffix>-<время>" и ждет его готовности.
func (b *DishEventsBroker) Topic(ctx context.Context, suffix string) (string, error) {
	topic := UniqueTopic(b.BaseTopic + "-" + suffix)
	if err := EnsureTopic(ctx, b.Brokers[0], topic); err != nil {
		return "", fmt.Errorf("ensure topic %s: %w", topic, err)
	}
	return topic, nil
}

func (b *DishEventsBroker) Stop(context.Context) error {
	return tc.TerminateContainer(b.Container)
}
