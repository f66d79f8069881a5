// Copyright 2026 Parasautohuolto.fi
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/parasautohuolto/directory-service/internal/logging"
	"github.com/parasautohuolto/directory-service/internal/monitoring"
	"github.com/parasautohuolto/directory-service/internal/tracing"
	"github.com/parasautohuolto/directory-service/internal/types"
	"github.com/parasautohuolto/directory-service/pkg/authentication"
)

var (
	tokenIdentityID string
	tokenEmail      string
	tokenRole       string
	tokenSecret     string
	tokenLifetime   time.Duration
)

// tokenCmd mints a session token locally, bypassing the magic-link flow. Only
// useful against a server started with the same session secret.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a session token for local development",
	Run: func(cmd *cobra.Command, args []string) {
		logger := logging.NewNoopLogger()
		tracer := tracing.NewTracer(tracing.NewNoopConfig())
		monitor := monitoring.NewNoopMonitor()

		manager := authentication.NewSessionManager(tokenSecret, tokenLifetime, tracer, monitor, logger)

		token, err := manager.Issue(context.Background(), &types.Identity{
			ID:    tokenIdentityID,
			Email: tokenEmail,
			Role:  tokenRole,
		})
		if err != nil {
			log.Fatalf("Failed to mint token: %v", err)
		}

		fmt.Println(token)
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().StringVar(&tokenIdentityID, "identity-id", "", "Identity ID to embed as the subject")
	tokenCmd.Flags().StringVar(&tokenEmail, "email", "", "Email claim")
	tokenCmd.Flags().StringVar(&tokenRole, "role", "viewer", "Role claim (admin, editor or viewer)")
	tokenCmd.Flags().StringVar(&tokenSecret, "secret", "", "Session signing secret")
	tokenCmd.Flags().DurationVar(&tokenLifetime, "lifetime", time.Hour, "Token lifetime")

	_ = tokenCmd.MarkFlagRequired("identity-id")
	_ = tokenCmd.MarkFlagRequired("email")
	_ = tokenCmd.MarkFlagRequired("secret")
}
