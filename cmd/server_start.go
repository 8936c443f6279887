// Copyright (c) 2025 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package cmd

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"github.com/retr0h/labresult/internal/api"
	"github.com/retr0h/labresult/internal/api/health"
	"github.com/retr0h/labresult/internal/cli"
	"github.com/retr0h/labresult/internal/result"
	"github.com/retr0h/labresult/internal/storage"
	"github.com/retr0h/labresult/internal/telemetry"
	"github.com/retr0h/labresult/internal/user"
)

// ServerManager responsible for Server operations.
type ServerManager interface {
	cli.Lifecycle
	// GetAuthHandler returns auth handler for registration.
	GetAuthHandler(userStore user.Store) []func(e *echo.Echo)
	// GetResultHandler returns result handler for registration.
	GetResultHandler(service *result.Service, userStore user.Store) []func(e *echo.Echo)
	// GetUserHandler returns user handler for registration.
	GetUserHandler(userStore user.Store) []func(e *echo.Echo)
	// GetHealthHandler returns health handler for registration.
	GetHealthHandler(
		checker health.Checker,
		startTime time.Time,
		version string,
		userStore user.Store,
	) []func(e *echo.Echo)
	// RegisterHandlers registers a list of handlers with the Echo instance.
	RegisterHandlers(handlers []func(e *echo.Echo))
}

// serverStartCmd represents the serverStart command.
var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the server",
	Long: `Start the API server.
`,
	Run: func(cmd *cobra.Command, _ []string) {
		ctx := cmd.Context()

		shutdownTracer, err := telemetry.InitTracer(
			ctx,
			"labresult",
			appConfig.Telemetry.Tracing,
		)
		if err != nil {
			logFatal("failed to initialize tracer", err)
		}

		db, err := storage.Open(appConfig.Database, logger)
		if err != nil {
			logFatal("failed to open database", err)
		}

		if err := storage.Migrate(db, logger); err != nil {
			logFatal("failed to migrate database", err)
		}

		userStore := user.NewGormStore(db, logger)
		resultStore := result.NewGormStore(db, logger)
		resultService := result.NewService(resultStore, logger)

		sqlDB, err := db.DB()
		if err != nil {
			logFatal("failed to obtain sql handle", err)
		}

		checker := &health.DatabaseChecker{
			DBCheck: func(ctx context.Context) error {
				return sqlDB.PingContext(ctx)
			},
		}

		var sm ServerManager = api.New(appConfig, logger)

		var handlers []func(e *echo.Echo)
		handlers = append(handlers, sm.GetAuthHandler(userStore)...)
		handlers = append(handlers, sm.GetResultHandler(resultService, userStore)...)
		handlers = append(handlers, sm.GetUserHandler(userStore)...)
		handlers = append(handlers, sm.GetHealthHandler(checker, time.Now(), version, userStore)...)
		sm.RegisterHandlers(handlers)

		sm.Start()
		runServer(ctx, sm, func() {
			_ = shutdownTracer(context.Background())
			_ = sqlDB.Close()
		})
	},
}

func init() {
	serverCmd.AddCommand(serverStartCmd)
}
