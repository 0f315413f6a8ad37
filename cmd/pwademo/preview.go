package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/gorewood/pwademo/internal/output"
)

// Defaults of the preview command.
const (
	defaultPreviewAddr = "0.0.0.0:4000"
	defaultPreviewDir  = "web_server_folder"
)

const shutdownTimeout = 5 * time.Second

// newPreviewCmd creates the preview command.
func newPreviewCmd() *cobra.Command {
	var addrFlag, dirFlag string
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Serve the web folder for trying the WASM build",
		Long: `Serve a folder over HTTP so the WASM build can be opened in a browser.

The folder should hold index.html, wasm_exec.js and the compiled .wasm
file. Stop the server with Ctrl-C.

Examples:
  pwademo preview                          # http://0.0.0.0:4000/ from web_server_folder
  pwademo preview --addr 127.0.0.1:8080    # Different address
  pwademo preview --dir dist               # Different folder`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), useColor(cmd)).
				WithStderr(cmd.ErrOrStderr())

			info, err := os.Stat(dirFlag)
			if err != nil || !info.IsDir() {
				exitErr := output.NewUserError(fmt.Sprintf("web folder %q not found", dirFlag))
				printer.Error(exitErr)
				return exitErr
			}

			if _, err := os.Stat(filepath.Join(dirFlag, "index.html")); err != nil {
				printer.Warn("no index.html in %s", dirFlag)
			}

			ln, err := net.Listen("tcp", addrFlag)
			if err != nil {
				exitErr := output.NewSystemErrorWithCause(fmt.Sprintf("listening on %s", addrFlag), err)
				printer.Error(exitErr)
				return exitErr
			}

			if err := printer.Success(map[string]any{
				"message": fmt.Sprintf("Serving %s on http://%s/", dirFlag, ln.Addr()),
				"addr":    ln.Addr().String(),
				"dir":     dirFlag,
			}); err != nil {
				_ = ln.Close()
				return err
			}

			return servePreview(cmd.Context(), ln, dirFlag, newLogger(cmd))
		},
	}
	cmd.Flags().StringVar(&addrFlag, "addr", defaultPreviewAddr, "Address to listen on")
	cmd.Flags().StringVar(&dirFlag, "dir", defaultPreviewDir, "Folder to serve")
	return cmd
}

// servePreview serves dir on ln until ctx is cancelled.
func servePreview(ctx context.Context, ln net.Listener, dir string, logger *slog.Logger) error {
	srv := &http.Server{
		Handler:           logRequests(http.FileServer(http.Dir(dir)), logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return output.NewSystemErrorWithCause("preview server failed", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return output.NewSystemErrorWithCause("stopping preview server", err)
		}
		return nil
	}
}

// logRequests logs every request at debug level.
func logRequests(next http.Handler, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("preview request", "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
