package main

import (
	"fmt"
	"net/http"

	"github.com/rs/cors"
	"github.com/urfave/cli/v2"
	"github.com/userhub/backend/internal/middleware"
	"github.com/userhub/backend/pkg/router"
)

func (s *srv) startApi(ct *cli.Context) error {
	s.loadConfig(ct)
	s.loadLogger()
	s.loadDatabase()
	s.loadPublisher()
	s.loadRepos()
	s.loadDomains()
	s.loadRouter()

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete,
		},
		AllowedHeaders: []string{"*"},
	})

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%s", s.configs.ApiServer.Port),
		Handler: c.Handler(s.router.Handler()),
	}

	s.logger.Infof("Starting server on port: %s", s.configs.ApiServer.Port)
	if err := s.server.ListenAndServe(); err != nil {
		panic(err)
	}
	return nil
}

func (s *srv) loadRouter() {
	s.router = router.New(s.db, *s.configs, s.logger)
	s.router.Use(middleware.Logger(s.logger))

	userRouter := s.router.Group("/users")
	{
		router.POST(userRouter, "", s.userDomain.Create)
		router.GET(userRouter, "", s.userDomain.GetList)
		router.GET(userRouter, "/email", s.userDomain.GetByEmail)
		router.GET(userRouter, "/:id", s.userDomain.GetByID)
		router.PUT(userRouter, "/:id", s.userDomain.Update)
		router.PATCH(userRouter, "/:id", s.userDomain.Patch)
		router.DELETE(userRouter, "/:id", s.userDomain.Delete)
	}
}
