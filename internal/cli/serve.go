package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/phanxgames/gesture/wsbridge"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// ServeOptions holds flags for the serve command.
type ServeOptions struct {
	*RootOptions
	recognizerFlags
	Addr         string
	Path         string
	EnableCORS   bool
	PollInterval time.Duration
}

// NewServeCommand creates the serve command.
func NewServeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ServeOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a gesture recognizer to WebSocket clients",
		Long: `Accept WebSocket connections and run one recognizer per connection.

Clients send {"type":"start|move|end","contacts":[{"id":1,"x":10,"y":20}]}
for every touch event and receive {"type":"gesture",...} for every gesture
recognized. GET /healthz reports the number of open connections.

Examples:
  gesture serve --addr :8080
  gesture serve --addr 127.0.0.1:9000 --cors --long-press 700ms`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&opts.Path, "path", "/ws", "WebSocket endpoint path")
	cmd.Flags().BoolVar(&opts.EnableCORS, "cors", false, "accept connections from any origin")
	cmd.Flags().DurationVar(&opts.PollInterval, "poll", wsbridge.DefaultPollInterval, "long-press timer poll interval")
	opts.recognizerFlags.register(cmd.Flags())

	return cmd
}

func runServe(ctx context.Context, opts *ServeOptions, cmd *cobra.Command) error {
	recOpts, err := opts.options()
	if err != nil {
		return err
	}

	log := logrus.StandardLogger().WithField("component", "serve")
	handler := wsbridge.NewHandler(wsbridge.Config{
		Options:      recOpts,
		PollInterval: opts.PollInterval,
		EnableCORS:   opts.EnableCORS,
		Logger:       logrus.StandardLogger(),
	})

	ln, err := net.Listen("tcp", opts.Addr)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("failed to listen on %s", opts.Addr), err)
	}

	srv := &http.Server{
		Handler:           newServeMux(handler, opts.Path),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	log.WithFields(logrus.Fields{"addr": ln.Addr().String(), "path": opts.Path}).Info("listening")
	fmt.Fprintf(cmd.OutOrStdout(), "Listening on ws://%s%s\n", ln.Addr(), opts.Path)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return WrapExitError(ExitCommandError, "server failed", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return WrapExitError(ExitCommandError, "shutdown failed", err)
	}
	return nil
}

// healthStatus is the /healthz response body.
type healthStatus struct {
	Status      string `json:"status"`
	Connections int    `json:"connections"`
}

func newServeMux(handler *wsbridge.Handler, path string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(healthStatus{Status: "ok", Connections: handler.Active()})
	})
	return mux
}
