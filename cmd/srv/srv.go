package main

import (
	"net/http"

	"github.com/urfave/cli/v2"
	"github.com/userhub/backend/config"
	"github.com/userhub/backend/internal/domain"
	"github.com/userhub/backend/internal/repository"
	"github.com/userhub/backend/pkg/kafka"
	"github.com/userhub/backend/pkg/logger"
	"github.com/userhub/backend/pkg/pubsub"
	"github.com/userhub/backend/pkg/router"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

type srv struct {
	app *cli.App

	userRepo repository.UserRepository

	userDomain domain.UserDomain

	publisher pubsub.Publisher
	router    *router.Router
	db        *gorm.DB
	logger    logger.Logger
	configs   *config.Configs
	server    *http.Server
}

func (s *srv) loadConfig(ct *cli.Context) {
	configs, err := config.Load(ct.String("config"))
	if err != nil {
		panic(err)
	}
	s.configs = &configs
}

func (s *srv) loadLogger() {
	s.logger = logger.NewLogger(s.configs.LogLevel)
}

func (s *srv) loadDatabase() {
	var err error
	s.db, err = gorm.Open(mysql.New(mysql.Config{
		DSN:               s.configs.Database.ConnectionString(),
		DefaultStringSize: 256,
	}), &gorm.Config{})
	if err != nil {
		panic(err)
	}
}

func (s *srv) loadPublisher() {
	publisher, err := kafka.NewPublisher("userhub-api", s.configs.Kafka.Addrs)
	if err != nil {
		panic(err)
	}
	s.publisher = publisher
}

func (s *srv) loadRepos() {
	s.userRepo = repository.NewUserRepository()
}

func (s *srv) loadDomains() {
	s.userDomain = domain.NewUserDomain(s.userRepo, s.publisher)
}
