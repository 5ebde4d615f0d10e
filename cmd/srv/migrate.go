package main

import (
	"context"

	"github.com/urfave/cli/v2"
	"github.com/userhub/backend/internal/entity"
	"github.com/userhub/backend/pkg/xcontext"
)

func (s *srv) migrate(ct *cli.Context) error {
	s.loadConfig(ct)
	s.loadLogger()
	s.loadDatabase()

	ctx := xcontext.WithDB(context.Background(), s.db)
	if err := entity.MigrateTable(ctx); err != nil {
		return err
	}

	s.logger.Infof("Migration completed")
	return nil
}
