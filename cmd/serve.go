// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/parasautohuolto/directory-service/internal/authorization"
	"github.com/parasautohuolto/directory-service/internal/config"
	"github.com/parasautohuolto/directory-service/internal/db"
	"github.com/parasautohuolto/directory-service/internal/logging"
	"github.com/parasautohuolto/directory-service/internal/mail"
	"github.com/parasautohuolto/directory-service/internal/monitoring/prometheus"
	"github.com/parasautohuolto/directory-service/internal/storage"
	"github.com/parasautohuolto/directory-service/internal/tracing"
	"github.com/parasautohuolto/directory-service/pkg/authentication"
	"github.com/parasautohuolto/directory-service/pkg/directory"
	"github.com/parasautohuolto/directory-service/pkg/identities"
	"github.com/parasautohuolto/directory-service/pkg/invitations"
	"github.com/parasautohuolto/directory-service/pkg/notes"
	"github.com/parasautohuolto/directory-service/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := serve(); err != nil {
			fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("directory-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	redisOpts, err := redis.ParseURL(specs.RedisURL)
	if err != nil {
		return fmt.Errorf("failed to parse redis URL: %v", err)
	}
	redisClient := redis.NewClient(redisOpts)
	defer redisClient.Close()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %v", err)
	}

	authorizer := authorization.NewAuthorizer(tracer, monitor, logger)

	var mailer authentication.MailerInterface
	if specs.SMTPHost != "" {
		mailer = mail.NewSMTPMailer(mail.Config{
			Host: specs.SMTPHost,
			Port: specs.SMTPPort,
			User: specs.SMTPUser,
			Pass: specs.SMTPPass,
			From: specs.SMTPFrom,
		}, tracer, monitor, logger)
		logger.Info("Using SMTP mailer")
	} else {
		mailer = mail.NewLogMailer(logger)
		logger.Info("No SMTP host configured, mail is logged instead")
	}

	sessionManager := authentication.NewSessionManager(specs.SessionSecret, specs.SessionLifetime, tracer, monitor, logger)
	tokenStore := authentication.NewStore(redisClient, tracer, monitor, logger)

	identitiesService := identities.NewService(s, dbClient, authorizer, tracer, monitor, logger)
	authService := authentication.NewService(
		tokenStore,
		sessionManager,
		identitiesService,
		mailer,
		specs.BaseURL,
		specs.LoginTokenLifetime,
		tracer,
		monitor,
		logger,
	)
	authMiddleware := authentication.NewMiddleware(sessionManager, tokenStore, tracer, monitor, logger)

	invitationsService := invitations.NewService(
		s,
		authorizer,
		mailer,
		specs.BaseURL,
		specs.InvitationLifetime,
		tracer,
		monitor,
		logger,
	)
	directoryService := directory.NewService(s, authorizer, specs.DirectoryPageSize, tracer, monitor, logger)
	notesService := notes.NewService(s, authorizer, tracer, monitor, logger)

	router := web.NewRouter(
		authService,
		authMiddleware,
		identitiesService,
		invitationsService,
		directoryService,
		notesService,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
