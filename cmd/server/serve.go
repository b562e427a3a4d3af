package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/folio/internal/content"
	"github.com/folio/internal/handler"
	"github.com/folio/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	var (
		importFirst bool
		watch       bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := newApp(ctx)
			if err != nil {
				return err
			}
			defer a.close()
			logger := a.logger

			var loader *content.Loader
			if importFirst || watch {
				_, loader, err = a.importContent(ctx, a.cfg.ContentDir, true)
				if err != nil {
					return err
				}
			}

			if watch {
				w := content.NewWatcher(a.cfg.ContentDir, 0, content.ReimportOnChange(loader, a.cfg.ContentDir, logger), logger)
				// 在 a.close() 之前停止监听并等待进行中的导入
				wait := startBackground(ctx, w, logger)
				defer func() {
					stop()
					wait()
				}()
			}

			gin.SetMode(a.cfg.GinMode)
			api := handler.NewAPI(a.store, a.site, logger)
			srv := &http.Server{
				Addr: a.cfg.ListenAddr,
				Handler: router.SetupRouter(api, router.Options{
					StaticDir:   a.cfg.StaticDir,
					CORSOrigins: a.cfg.CORSOrigins,
					Logger:      logger,
				}),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("server starting", zap.String("addr", srv.Addr), zap.String("site", a.site.Origin()))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return err
				}
			case <-ctx.Done():
			}

			logger.Info("shutting down server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			logger.Info("server exited")
			return nil
		},
	}

	cmd.Flags().BoolVar(&importFirst, "import", false, "import CONTENT_DIR before serving")
	cmd.Flags().BoolVar(&watch, "watch", false, "import CONTENT_DIR and re-import on file changes")
	return cmd
}

type runner interface {
	Run(ctx context.Context) error
}

// startBackground runs r in a goroutine. The returned func blocks until Run
// has returned; callers cancel ctx first.
func startBackground(ctx context.Context, r runner, logger *zap.Logger) (wait func()) {
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := r.Run(ctx); err != nil {
			logger.Error("content watcher stopped", zap.Error(err))
		}
	}()
	return func() { <-done }
}
