package server

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/http"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/zeusync/scenedoc/internal/observability/log"
)

// AssetServer serves the bytes of an asset store over plain HTTP GET and over
// a websocket request/response channel.
type AssetServer struct {
	files  fs.FS
	config Config
	logger log.Log

	http     *http.Server
	listener net.Listener

	// Websocket client management
	clients     sync.Map // map[*websocket.Conn]struct{}
	clientCount int64    // atomic

	// Server state
	running int32 // atomic bool
	closed  int32 // atomic bool

	workerGroup sync.WaitGroup
}

// Config holds server configuration
type Config struct {
	// Network settings
	ListenAddr string
	MaxClients int

	// Root is the directory assets are served from.
	Root string

	// Message settings
	MaxMessageSize int64
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
}

// DefaultServerConfig returns default server configuration
func DefaultServerConfig() Config {
	return Config{
		ListenAddr:     "127.0.0.1:8080",
		MaxClients:     1000,
		Root:           ".",
		MaxMessageSize: 64 * 1024,
		ReadTimeout:    5 * time.Minute,
		WriteTimeout:   30 * time.Second,
	}
}

// NewAssetServer serves config.Root from the local filesystem.
func NewAssetServer(config Config, logger log.Log) (*AssetServer, error) {
	info, err := os.Stat(config.Root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrInvalidConfig, config.Root)
	}
	return NewAssetServerFS(os.DirFS(config.Root), config, logger), nil
}

// NewAssetServerFS serves files from an arbitrary file system.
func NewAssetServerFS(files fs.FS, config Config, logger log.Log) *AssetServer {
	defaults := DefaultServerConfig()
	if config.ListenAddr == "" {
		config.ListenAddr = defaults.ListenAddr
	}
	if config.MaxClients <= 0 {
		config.MaxClients = defaults.MaxClients
	}
	if config.MaxMessageSize <= 0 {
		config.MaxMessageSize = defaults.MaxMessageSize
	}
	if config.ReadTimeout <= 0 {
		config.ReadTimeout = defaults.ReadTimeout
	}
	if config.WriteTimeout <= 0 {
		config.WriteTimeout = defaults.WriteTimeout
	}
	if logger == nil {
		logger = log.NewNop()
	}

	server := &AssetServer{
		files:  files,
		config: config,
		logger: logger.With(log.String("component", "asset_server")),
	}

	server.logger.Info("Server created",
		log.String("listen_addr", config.ListenAddr),
		log.String("root", config.Root),
		log.Int("max_clients", config.MaxClients))

	return server
}

// Start binds the listen address and serves in the background.
func (s *AssetServer) Start(_ context.Context) error {
	if atomic.LoadInt32(&s.closed) == 1 {
		return ErrServerClosed
	}

	if !atomic.CompareAndSwapInt32(&s.running, 0, 1) {
		return ErrServerAlreadyRunning
	}

	listener, err := net.Listen("tcp", s.config.ListenAddr)
	if err != nil {
		atomic.StoreInt32(&s.running, 0)
		s.logger.Error("Failed to create listener", log.Error(err))
		return fmt.Errorf("%w: %v", ErrListenerFailed, err)
	}

	s.listener = listener
	s.http = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.workerGroup.Add(1)
	go func() {
		defer s.workerGroup.Done()
		if err := s.http.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Serve failed", log.Error(err))
		}
	}()

	s.logger.Info("Server listening", log.String("addr", listener.Addr().String()))
	return nil
}

// Addr returns the bound address, or an empty string before Start.
func (s *AssetServer) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop shuts the HTTP server down and disconnects websocket clients.
func (s *AssetServer) Stop(ctx context.Context) error {
	if !atomic.CompareAndSwapInt32(&s.running, 1, 0) {
		return ErrServerNotRunning
	}

	s.logger.Info("Stopping server")

	err := s.http.Shutdown(ctx)

	// Hijacked websocket connections are not tracked by Shutdown.
	s.clients.Range(func(key, _ any) bool {
		_ = key.(*websocket.Conn).Close()
		return true
	})

	s.workerGroup.Wait()

	s.logger.Info("Server stopped")
	return err
}

// Close stops the server if needed and prevents restarts.
func (s *AssetServer) Close() error {
	if !atomic.CompareAndSwapInt32(&s.closed, 0, 1) {
		return nil
	}

	if atomic.LoadInt32(&s.running) == 1 {
		return s.Stop(context.Background())
	}
	return nil
}

// Clients returns the number of connected websocket clients.
func (s *AssetServer) Clients() int64 {
	return atomic.LoadInt64(&s.clientCount)
}

// read loads one asset. Only slash-separated paths inside the store are
// accepted.
func (s *AssetServer) read(name string) ([]byte, int, error) {
	if !fs.ValidPath(name) || name == "." {
		return nil, http.StatusBadRequest, fmt.Errorf("%w: %q", ErrInvalidPath, name)
	}
	data, err := fs.ReadFile(s.files, name)
	switch {
	case err == nil:
		return data, http.StatusOK, nil
	case errors.Is(err, fs.ErrNotExist):
		return nil, http.StatusNotFound, err
	case errors.Is(err, fs.ErrPermission):
		return nil, http.StatusForbidden, err
	default:
		return nil, http.StatusInternalServerError, err
	}
}
