package server

import (
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/zeusync/scenedoc/internal/assets"
	"github.com/zeusync/scenedoc/internal/observability/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func (s *AssetServer) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if int(atomic.LoadInt64(&s.clientCount)) >= s.config.MaxClients {
		s.logger.Warn("Maximum clients reached, rejecting connection",
			log.String("remote_addr", r.RemoteAddr))
		http.Error(w, ErrMaxClientsReached.Error(), http.StatusServiceUnavailable)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("Websocket upgrade failed", log.Error(err))
		return
	}

	s.clients.Store(conn, struct{}{})
	atomic.AddInt64(&s.clientCount, 1)

	s.logger.Info("Client connected",
		log.String("remote_addr", conn.RemoteAddr().String()),
		log.Int64("total_clients", atomic.LoadInt64(&s.clientCount)))

	s.serveClient(conn)
}

// serveClient answers asset requests in order until the connection fails.
func (s *AssetServer) serveClient(conn *websocket.Conn) {
	defer func() {
		s.clients.Delete(conn)
		atomic.AddInt64(&s.clientCount, -1)
		_ = conn.Close()

		s.logger.Info("Client disconnected",
			log.String("remote_addr", conn.RemoteAddr().String()),
			log.Int64("total_clients", atomic.LoadInt64(&s.clientCount)))
	}()

	conn.SetReadLimit(s.config.MaxMessageSize)

	for {
		_ = conn.SetReadDeadline(time.Now().Add(s.config.ReadTimeout))

		var req assets.Request
		if err := conn.ReadJSON(&req); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("Read failed", log.Error(err))
			}
			return
		}

		resp := s.answer(req)

		_ = conn.SetWriteDeadline(time.Now().Add(s.config.WriteTimeout))
		if err := conn.WriteJSON(resp); err != nil {
			s.logger.Debug("Write failed", log.Error(err))
			return
		}
	}
}

func (s *AssetServer) answer(req assets.Request) assets.Response {
	name := requestPath(req.Path)
	data, status, err := s.read(name)
	resp := assets.Response{ID: req.ID, Status: status, Data: data}
	if err != nil {
		resp.Error = err.Error()
		s.logger.Debug("Asset request failed",
			log.Uint64("id", req.ID),
			log.String("path", name),
			log.Int("status", status),
			log.Error(err))
	}
	return resp
}

// requestPath reduces what a client asked for to a store path. Clients send
// either a bare path or the full URL they resolved against the server.
func requestPath(raw string) string {
	p := raw
	if u, err := url.Parse(raw); err == nil && u.Scheme != "" {
		p = u.Path
	}
	p = strings.TrimPrefix(p, "/")
	return strings.TrimPrefix(p, strings.TrimPrefix(AssetPrefix, "/"))
}
