package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/coder/websocket"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Send pings to peers with this period.
	pingPeriod = 54 * time.Second
)

// UpdateMessage is pushed to the browser over the live-reload socket.
type UpdateMessage struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
}

// broadcastReload tells every connected client to refresh the page.
func (s *PortfolioServer) broadcastReload() {
	msg, err := json.Marshal(UpdateMessage{Type: "reload", Timestamp: time.Now()})
	if err != nil {
		return
	}
	select {
	case s.broadcast <- msg:
	default:
		// Hub is backed up; the next change will retrigger.
	}
}

func (s *PortfolioServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if !s.checkOrigin(r) {
		http.Error(w, "Origin not allowed", http.StatusForbidden)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: false,
	})
	if err != nil {
		s.logger.Warn(r.Context(), err, "websocket upgrade failed")
		return
	}

	client := &Client{
		conn: conn,
		send: make(chan []byte, 256),
	}

	go s.writePump(client)
	go s.readPump(client)

	s.register <- client
}

// checkOrigin validates the request origin for security
func (s *PortfolioServer) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return false
	}

	originURL, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if originURL.Scheme != "http" && originURL.Scheme != "https" {
		return false
	}

	allowed := []string{
		fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port),
		fmt.Sprintf("localhost:%d", s.config.Server.Port),
		fmt.Sprintf("127.0.0.1:%d", s.config.Server.Port),
	}
	allowed = append(allowed, s.config.Server.AllowedOrigins...)

	for _, host := range allowed {
		if originURL.Host == host {
			return true
		}
	}
	return false
}

func (s *PortfolioServer) runWebSocketHub(ctx context.Context) {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case client := <-s.register:
			if client == nil || client.conn == nil {
				continue
			}
			s.clientsMutex.Lock()
			s.clients[client.conn] = client
			count := len(s.clients)
			s.clientsMutex.Unlock()
			s.logger.Debug(ctx, "reload client connected", "total", count)

		case conn := <-s.unregister:
			if conn == nil {
				continue
			}
			s.clientsMutex.Lock()
			if client, ok := s.clients[conn]; ok {
				delete(s.clients, conn)
				close(client.send)
				conn.Close(websocket.StatusNormalClosure, "")
			}
			count := len(s.clients)
			s.clientsMutex.Unlock()
			s.logger.Debug(ctx, "reload client disconnected", "total", count)

		case message := <-s.broadcast:
			s.clientsMutex.RLock()
			for _, client := range s.clients {
				select {
				case client.send <- message:
				default:
					// Slow client; drop the message rather than block the hub.
				}
			}
			s.clientsMutex.RUnlock()

		case <-ticker.C:
			s.clientsMutex.RLock()
			for conn := range s.clients {
				pingCtx, cancel := context.WithTimeout(ctx, writeWait)
				if err := conn.Ping(pingCtx); err != nil {
					go func(c *websocket.Conn) { s.unregister <- c }(conn)
				}
				cancel()
			}
			s.clientsMutex.RUnlock()
		}
	}
}

func (s *PortfolioServer) writePump(client *Client) {
	for message := range client.send {
		ctx, cancel := context.WithTimeout(context.Background(), writeWait)
		err := client.conn.Write(ctx, websocket.MessageText, message)
		cancel()
		if err != nil {
			s.unregister <- client.conn
			return
		}
	}
}

func (s *PortfolioServer) readPump(client *Client) {
	// The reload channel is one-way; reads only detect disconnects.
	for {
		if _, _, err := client.conn.Read(context.Background()); err != nil {
			s.unregister <- client.conn
			return
		}
	}
}

func (s *PortfolioServer) closeAllClients() {
	s.clientsMutex.Lock()
	defer s.clientsMutex.Unlock()
	for conn, client := range s.clients {
		close(client.send)
		conn.Close(websocket.StatusGoingAway, "server shutting down")
		delete(s.clients, conn)
	}
}
