package testutil

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/userhub/backend/config"
	"github.com/userhub/backend/internal/entity"
	"github.com/userhub/backend/pkg/logger"
	"github.com/userhub/backend/pkg/xcontext"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// MockContext prepares a context the way the router does for a real request:
// an in-memory database with the schema applied, test configs, and a silent
// logger.
func MockContext() context.Context {
	// A named shared-cache memory database keeps every pooled connection on
	// the same data; a bare :memory: DSN gives each connection its own.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	cfg := config.Configs{
		Env:      "test",
		LogLevel: "error",
		Kafka: config.KafkaConfigs{
			Addrs:          []string{"localhost:9092"},
			UserEventTopic: "user-events",
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewNopLogger())
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(ctx); err != nil {
		panic(err)
	}

	return ctx
}
