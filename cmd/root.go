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

// Package cmd implements the labresult command line interface.
package cmd

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	masker "github.com/ggwhite/go-masker/v2"
	"github.com/lmittmann/tint"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/retr0h/labresult/internal/cli"
	"github.com/retr0h/labresult/internal/config"
	"github.com/retr0h/labresult/internal/telemetry"
)

var (
	appConfig  config.Config
	appFs      = afero.NewOsFs()
	logger     = slog.New(slog.NewTextHandler(os.Stdout, nil))
	jsonOutput bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "labresult",
	Short: "A lab test result tracking API.",
	Long: `A lab test result tracking API: technicians upload results, doctors
review them, admins approve them.

┬  ┌─┐┌┐ ┬─┐┌─┐┌─┐┬ ┬┬ ┌┬┐
│  ├─┤├┴┐├┬┘├┤ └─┐│ ││  │
┴─┘┴ ┴└─┘┴└─└─┘└─┘└─┘┴─┘┴

https://github.com/retr0h/labresult
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig, initLogger)

	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable or disable debug mode")
	rootCmd.PersistentFlags().BoolVarP(&jsonOutput, "json", "j", false, "Enable JSON output")

	rootCmd.PersistentFlags().
		StringP("labresult-file", "f", "/etc/labresult/labresult.yaml", "Path to config file")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("labresultFile", rootCmd.PersistentFlags().Lookup("labresult-file"))
}

func initConfig() {
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetConfigType("yaml")
	viper.AutomaticEnv()
	viper.SetEnvPrefix("labresult")
	viper.SetConfigFile(viper.GetString("labresultFile"))

	if err := viper.ReadInConfig(); err != nil {
		cli.LogFatal(logger, "failed to read config", err, "labresultFile", viper.ConfigFileUsed())
	}

	if err := viper.Unmarshal(&appConfig); err != nil {
		cli.LogFatal(logger, "failed to unmarshal config", err, "labresultFile", viper.ConfigFileUsed())
	}

	// Auto-enable tracing in debug mode so trace_id appears in log lines.
	// No exporter is forced here, only log correlation.
	if appConfig.Debug && !appConfig.Telemetry.Tracing.Enabled {
		appConfig.Telemetry.Tracing.Enabled = true
	}

	// Outside production an unset signing key falls back to a well-known
	// development key. In production the validator makes it a fatal
	// startup condition.
	if !appConfig.IsProduction() && appConfig.API.Server.Security.SigningKey == "" {
		appConfig.API.Server.Security.SigningKey = config.DevSigningKey
		logger.Warn("signing key not configured, using development key")
	}

	err := config.Validate(&appConfig)
	if err != nil {
		cli.LogFatal(logger, "validation failed", err, "labresultFile", viper.ConfigFileUsed())
	}
}

func initLogger() {
	logLevel := slog.LevelInfo
	if viper.GetBool("debug") {
		logLevel = slog.LevelDebug
	}

	var logHandler slog.Handler
	if jsonOutput {
		logHandler = slog.NewJSONHandler(os.Stderr, nil)
	} else {
		logHandler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.Kitchen,
			NoColor:    !term.IsTerminal(int(os.Stdout.Fd())),
		})
	}

	logHandler = telemetry.NewTraceHandler(logHandler)
	logger = slog.New(logHandler)

	if appConfig.Debug {
		dumpMaskedConfig()
	}
}

// dumpMaskedConfig logs the effective configuration with secrets masked.
func dumpMaskedConfig() {
	m := masker.NewMaskerMarshaler()

	masked, err := m.Struct(&appConfig)
	if err != nil {
		logger.Debug("failed to mask config", slog.String("error", err.Error()))
		return
	}

	out, err := json.Marshal(masked)
	if err != nil {
		logger.Debug("failed to marshal config", slog.String("error", err.Error()))
		return
	}

	logger.Debug("effective configuration", slog.String("config", string(out)))
}
