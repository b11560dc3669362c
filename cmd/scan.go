package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"codescanner/internal/api"
	"codescanner/internal/api/handler/v1handler"
	"codescanner/internal/config"
	"codescanner/internal/journal"
	"codescanner/internal/scanner"
	"codescanner/pkg/capture/replay"
	"codescanner/pkg/domain"
	"codescanner/pkg/logger"
	"codescanner/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// consoleSink prints every captured code as "TYPE CODE".
type consoleSink struct {
	ctx context.Context
	out io.Writer
}

func (s consoleSink) OnCodeCaptured(code string, codeType string) {
	_, _ = fmt.Fprintf(s.out, "%s %s\n", codeType, code)
}

func (s consoleSink) OnError(err error) {
	logger.Error(s.ctx, "scanner error", zap.Error(err))
}

// logPresenter stands in for a UI and logs what would be shown.
type logPresenter struct {
	ctx context.Context
}

func (p logPresenter) StatusChanged(status domain.Status) {
	logger.Info(p.ctx, "status",
		zap.String("state", string(status.State)),
		zap.Bool("pending", status.Pending),
		zap.String("message", status.Message))
}

func (p logPresenter) Flash() {
	logger.Debug(p.ctx, "flash")
}

func (p logPresenter) SettingsPromptVisible(visible bool) {
	if visible {
		logger.Info(p.ctx, "camera access is off, open settings to allow it")
	}
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	if cfg.HTTP.Disabled {
		return func(context.Context) {}
	}

	server := api.NewServer(deps, api.NewOptions(cfg))

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

// setupJournal decorates sink with the capture journal when it is enabled.
func setupJournal(ctx context.Context,
	cfg *config.Config,
	mp metric.MeterProvider,
	sink scanner.ResultSink) (scanner.ResultSink, v1handler.Deps, func(ctx context.Context)) {
	if !cfg.Journal.Enabled {
		return sink, v1handler.Deps{}, func(context.Context) {}
	}

	strg, closeStrg := getPostgres(ctx, cfg)
	jm, err := metrics.NewJournal(mp)
	if err != nil {
		logger.Fatal(ctx, "could not create journal metrics", zap.Error(err))
	}
	j, err := journal.New(ctx, sink, strg, jm, journal.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create capture journal", zap.Error(err))
	}

	return j, v1handler.Deps{Captures: strg, SessionID: j.SessionID()}, func(ctx context.Context) {
		logger.Info(ctx, "flushing capture journal...")
		if err := j.Close(ctx); err != nil {
			logger.Error(ctx, "could not flush capture journal", zap.Error(err))
		}
		closeStrg()
	}
}

func openScript(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open frame script: %w", err)
	}

	return f, nil
}

func scanCommand(cfg *config.Config) *cobra.Command {
	var (
		scriptPath string
		exitOnEOF  bool
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Runs the scan controller against a replayed frame script",
		Long: "Runs the scan controller against a replayed frame script and serves the debug API.\n" +
			"SIGUSR1 simulates the app entering the foreground, SIGHUP resets the scanner.",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			mp, err := api.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			sm, err := metrics.NewScanner(mp)
			if err != nil {
				logger.Fatal(ctx, "could not create scanner metrics", zap.Error(err))
			}

			opts, err := scanner.NewOptions(cfg)
			if err != nil {
				logger.Fatal(ctx, "invalid scanner config", zap.Error(err))
			}

			sink, journalDeps, closeJournal := setupJournal(ctx, cfg, mp,
				consoleSink{ctx: ctx, out: cmd.OutOrStdout()})

			backend := replay.NewBackend(cfg.Replay.Devices...)
			lifecycle := replay.NewLifecycle()
			ctrl, err := scanner.New(ctx, scanner.Deps{
				Backend:     backend,
				Permissions: replay.NewPermissions(domain.AuthorizationStatus(cfg.Replay.Authorization), !cfg.Replay.DenyRequest),
				Sink:        sink,
				Foreground:  lifecycle,
				Presenter:   logPresenter{ctx: ctx},
				Metrics:     sm,
			}, opts)
			if err != nil {
				logger.Fatal(ctx, "could not create scanner", zap.Error(err))
			}
			if err := ctrl.Start(); err != nil {
				logger.Fatal(ctx, "could not start scanner", zap.Error(err))
			}

			journalDeps.Scanner = ctrl
			stopWebserver := setupServer(ctx, cfg, api.Deps{Deps: journalDeps})

			script, err := openScript(scriptPath)
			if err != nil {
				logger.Fatal(ctx, "could not read frames", zap.Error(err))
			}
			defer script.Close()

			replayDone := make(chan struct{})
			go func() {
				defer close(replayDone)
				if err := backend.Run(ctx, script, cfg.Replay.FrameInterval); err != nil {
					logger.Error(ctx, "frame replay failed", zap.Error(err))
				}
			}()

			signals := make(chan os.Signal, 1)
			signal.Notify(signals, syscall.SIGUSR1, syscall.SIGHUP)
			defer signal.Stop(signals)

			var eof <-chan struct{}
			if exitOnEOF {
				eof = replayDone
			}
		loop:
			for {
				select {
				case <-ctx.Done():
					break loop
				case <-eof:
					break loop
				case sig := <-signals:
					if sig == syscall.SIGUSR1 {
						ctrl.OnAppForeground()
					} else {
						ctrl.Reset()
					}
				}
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			if err := ctrl.Close(shutdownCtx); err != nil {
				logger.Error(ctx, "could not close scanner", zap.Error(err))
			}
			closeJournal(shutdownCtx)
			if err := mp.Shutdown(shutdownCtx); err != nil {
				logger.Warn(ctx, "could not shut down meter provider", zap.Error(err))
			}
		},
	}

	cmd.Flags().StringVarP(&scriptPath, "script", "s", "-", "Frame script to replay, - for stdin")
	cmd.Flags().BoolVar(&exitOnEOF, "exit-on-eof", false, "Stop once the frame script is exhausted")

	return cmd
}
