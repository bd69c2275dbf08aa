// Package server serves the portfolio site: the rendered page, the JSON
// APIs for contact submission and web vitals ingest, the theme toggle, the
// embedded static assets, and the development live-reload hub.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"github.com/coder/websocket"

	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/config"
	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/contact"
	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/logging"
	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/portfolio"
	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/vitals"
	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/watcher"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 10 * time.Second
	// contentDebounce groups rapid saves of the content file.
	contentDebounce = 300 * time.Millisecond
)

// Client represents a connected live-reload WebSocket client.
type Client struct {
	conn *websocket.Conn
	send chan []byte
}

// PortfolioServer serves the portfolio page with live reload in
// development.
type PortfolioServer struct {
	config *config.Config
	logger logging.Logger
	sender contact.Sender
	beacon vitals.Beacon

	contentMutex sync.RWMutex
	content      *portfolio.Data

	httpServer  *http.Server
	serverMutex sync.RWMutex

	clients      map[*websocket.Conn]*Client
	clientsMutex sync.RWMutex
	broadcast    chan []byte
	register     chan *Client
	unregister   chan *websocket.Conn

	watcher      *watcher.FileWatcher
	shutdownOnce sync.Once
}

// Option overrides a server collaborator, used by tests and the export
// command.
type Option func(*PortfolioServer)

// WithSender replaces the email relay client.
func WithSender(s contact.Sender) Option {
	return func(srv *PortfolioServer) { srv.sender = s }
}

// WithBeacon replaces the analytics beacon.
func WithBeacon(b vitals.Beacon) Option {
	return func(srv *PortfolioServer) { srv.beacon = b }
}

// New creates a portfolio server for the given configuration and content.
func New(cfg *config.Config, content *portfolio.Data, logger logging.Logger, opts ...Option) (*PortfolioServer, error) {
	if content == nil {
		return nil, fmt.Errorf("content must not be nil")
	}

	s := &PortfolioServer{
		config:     cfg,
		logger:     logger.WithComponent("server"),
		sender:     contact.NewEmailJSClient(cfg.Email.PublicKey),
		beacon:     vitals.NewHTTPBeacon(),
		content:    content,
		clients:    make(map[*websocket.Conn]*Client),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *Client),
		unregister: make(chan *websocket.Conn),
	}
	for _, opt := range opts {
		opt(s)
	}

	if cfg.Development.HotReload && cfg.Site.ContentFile != "" {
		fw, err := watcher.New(cfg.Site.ContentFile, contentDebounce)
		if err != nil {
			return nil, fmt.Errorf("creating content watcher: %w", err)
		}
		fw.AddHandler(s.handleContentChange)
		s.watcher = fw
	}

	return s, nil
}

// Content returns the current content payload.
func (s *PortfolioServer) Content() *portfolio.Data {
	s.contentMutex.RLock()
	defer s.contentMutex.RUnlock()
	return s.content
}

// Start runs the server until the context is cancelled.
func (s *PortfolioServer) Start(ctx context.Context) error {
	if s.watcher != nil {
		s.watcher.Start(ctx)
	}

	go s.runWebSocketHub(ctx)

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/contact", s.handleContact)
	mux.HandleFunc("/api/vitals", s.handleVitals)
	mux.HandleFunc("/api/theme/toggle", s.handleThemeToggle)
	mux.Handle("/static/", s.staticHandler())
	if s.config.Development.HotReload {
		mux.HandleFunc("/ws", s.handleWebSocket)
	}

	handler := s.addMiddleware(mux)

	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)

	s.serverMutex.Lock()
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	server := s.httpServer
	s.serverMutex.Unlock()

	if s.config.Server.Open {
		go s.openBrowser(fmt.Sprintf("http://%s", addr))
	}

	go func() {
		<-ctx.Done()
		if err := s.Shutdown(context.Background()); err != nil {
			s.logger.Error(context.Background(), err, "shutdown failed")
		}
	}()

	s.logger.Info(ctx, "portfolio server listening", "addr", addr, "environment", s.config.Server.Environment)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Shutdown stops the server gracefully.
func (s *PortfolioServer) Shutdown(ctx context.Context) error {
	var err error
	s.shutdownOnce.Do(func() {
		if s.watcher != nil {
			if closeErr := s.watcher.Close(); closeErr != nil {
				s.logger.Warn(ctx, closeErr, "closing content watcher")
			}
		}

		s.closeAllClients()

		s.serverMutex.RLock()
		server := s.httpServer
		s.serverMutex.RUnlock()
		if server != nil {
			shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
			defer cancel()
			err = server.Shutdown(shutdownCtx)
		}
	})
	return err
}

// handleContentChange reloads the content file and broadcasts a reload to
// connected clients. A broken edit keeps the previous content.
func (s *PortfolioServer) handleContentChange(path string) {
	ctx := context.Background()

	data, err := portfolio.Load(path)
	if err != nil {
		s.logger.Warn(ctx, err, "content reload failed, keeping previous content", "path", path)
		return
	}

	s.contentMutex.Lock()
	s.content = data
	s.contentMutex.Unlock()

	s.logger.Info(ctx, "content reloaded", "path", path)
	s.broadcastReload()
}

func (s *PortfolioServer) openBrowser(url string) {
	// Give the listener a moment to come up.
	time.Sleep(200 * time.Millisecond)

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		s.logger.Debug(context.Background(), "could not open browser", "url", url, "error", err.Error())
	}
}
