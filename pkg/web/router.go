// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/parasautohuolto/directory-service/internal/logging"
	"github.com/parasautohuolto/directory-service/internal/monitoring"
	"github.com/parasautohuolto/directory-service/internal/tracing"
	"github.com/parasautohuolto/directory-service/pkg/authentication"
	"github.com/parasautohuolto/directory-service/pkg/directory"
	"github.com/parasautohuolto/directory-service/pkg/identities"
	"github.com/parasautohuolto/directory-service/pkg/invitations"
	"github.com/parasautohuolto/directory-service/pkg/metrics"
	"github.com/parasautohuolto/directory-service/pkg/notes"
	"github.com/parasautohuolto/directory-service/pkg/status"
)

func NewRouter(
	authService authentication.ServiceInterface,
	authMiddleware *authentication.Middleware,
	identitiesService identities.ServiceInterface,
	invitationsService invitations.ServiceInterface,
	directoryService directory.ServiceInterface,
	notesService notes.ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
		}),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	authAPI := authentication.NewAPI(authService, logger)
	invitationsAPI := invitations.NewAPI(invitationsService, logger)

	// Sign-in and invitation validation are reachable without a session.
	authAPI.RegisterEndpoints(router)
	invitationsAPI.RegisterEndpoints(router)

	router.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate())

		authAPI.RegisterProtectedEndpoints(r)
		invitationsAPI.RegisterProtectedEndpoints(r)
		identities.NewAPI(identitiesService, logger).RegisterEndpoints(r)
		directory.NewAPI(directoryService, logger).RegisterEndpoints(r)
		notes.NewAPI(notesService, logger).RegisterEndpoints(r)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
