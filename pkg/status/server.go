package status

import (
	"context"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/mittwald/modelprobe/internal/config"
	"github.com/mittwald/modelprobe/pkg/modeldir"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

type Handler struct {
	inspector *modeldir.Inspector
	renderer  *Renderer
}

func NewStatusHandler(cfg *config.Server) (*Handler, error) {
	return NewStatusHandlerWithFilesystem(cfg, modeldir.OSFilesystem{})
}

func NewStatusHandlerWithFilesystem(cfg *config.Server, fs modeldir.Filesystem) (*Handler, error) {
	renderer, err := NewRenderer(cfg.FoundTemplate, cfg.AbsentTemplate)
	if err != nil {
		return nil, err
	}

	return &Handler{
		inspector: modeldir.NewInspectorWithFilesystem(cfg.ModelDirectory, fs),
		renderer:  renderer,
	}, nil
}

func (h *Handler) HandleStatus(res http.ResponseWriter, req *http.Request) {
	body, err := h.status()
	if err != nil {
		log.WithFields(log.Fields{"kind": "status", "path": h.inspector.Path()}).WithError(err).Error("failed to answer status request")
		http.Error(res, faultMessage, http.StatusInternalServerError)
		return
	}

	res.Header().Set("Content-Type", contentTypeText)
	res.WriteHeader(http.StatusOK)
	_, _ = res.Write([]byte(body))
}

func (h *Handler) status() (string, error) {
	listing, err := h.inspector.Inspect()
	switch {
	case modeldir.IsPathAbsent(err):
		return h.renderer.Absent(h.inspector.Path())
	case err != nil:
		return "", err
	}

	return h.renderer.Found(listing.Path, listing.Entries)
}

func (h *Handler) Router() *mux.Router {
	m := mux.NewRouter()
	m.Use(logRequests)
	m.Path("/").Methods(http.MethodGet, http.MethodHead).HandlerFunc(h.HandleStatus)
	return m
}

// Listen opens the listener described by cfg, creating the socket directory
// when binding a unix socket.
func Listen(cfg *config.Server) (net.Listener, error) {
	if !cfg.IsUnixSocket() {
		return net.Listen("tcp", cfg.ListenAddress())
	}

	socketFile := cfg.ListenAddress()
	if err := os.MkdirAll(filepath.Dir(socketFile), 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to prepare folder for socket-file")
	}
	if err := os.Remove(socketFile); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "failed to remove stale socket-file %q", socketFile)
	}

	return net.Listen("unix", socketFile)
}

func RunStatusServer(h *Handler, signals chan os.Signal, cfg *config.Server) error {
	listener, err := Listen(cfg)
	if err != nil {
		return errors.Wrapf(err, "failed to listen on %s", cfg.ListenAddress())
	}

	return Serve(h, signals, listener)
}

// Serve blocks until the listener fails or SIGINT/SIGTERM is received on
// signals, in which case the server is shut down gracefully.
func Serve(h *Handler, signals chan os.Signal, listener net.Listener) error {
	server := http.Server{
		Handler:           h.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownErr := make(chan error, 1)
	stop := make(chan struct{})
	watcherDone := make(chan struct{})

	go func() {
		defer close(watcherDone)
		for {
			select {
			case <-stop:
				return
			case s := <-signals:
				if s == syscall.SIGINT || s == syscall.SIGTERM {
					log.WithField("receivedSignal", s.String()).Info("shutting down status server")

					ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
					shutdownErr <- server.Shutdown(ctx)
					cancel()
					return
				}
			}
		}
	}()

	log.Infof("status server listens on %s", listener.Addr().String())

	err := server.Serve(listener)
	if err != http.ErrServerClosed {
		close(stop)
		<-watcherDone
		return err
	}

	<-watcherDone
	return <-shutdownErr
}
