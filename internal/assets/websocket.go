package assets

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Request asks the asset server for the bytes under Path.
type Request struct {
	ID   uint64 `json:"id"`
	Path string `json:"path"`
}

// Response answers the Request with the same ID. Data is base64 on the wire.
type Response struct {
	ID     uint64 `json:"id"`
	Status int    `json:"status"`
	Data   []byte `json:"data,omitempty"`
	Error  string `json:"error,omitempty"`
}

var _ Fetcher = (*WSFetcher)(nil)

// WSFetcher requests assets over one websocket connection. Requests are
// serialized; each waits for its reply before the next is written.
type WSFetcher struct {
	conn    *websocket.Conn
	mu      sync.Mutex
	nextID  uint64
	timeout time.Duration
	closed  bool
}

// DialWS connects to an asset server websocket endpoint such as ws://host/ws.
func DialWS(ctx context.Context, endpoint string, timeout time.Duration) (*WSFetcher, error) {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, endpoint, http.Header{})
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, fmt.Errorf("assets: dial %s: %w", endpoint, err)
	}
	return &WSFetcher{conn: conn, timeout: timeout}, nil
}

func (f *WSFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, ErrEmptyURL
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil, ErrFetcherClosed
	}

	f.nextID++
	req := Request{ID: f.nextID, Path: url}

	deadline := time.Time{}
	if d, ok := ctx.Deadline(); ok {
		deadline = d
	}
	if f.timeout > 0 {
		if t := time.Now().Add(f.timeout); deadline.IsZero() || t.Before(deadline) {
			deadline = t
		}
	}
	_ = f.conn.SetWriteDeadline(deadline)
	_ = f.conn.SetReadDeadline(deadline)

	if err := f.conn.WriteJSON(req); err != nil {
		return nil, fmt.Errorf("assets: send %s: %w", url, err)
	}

	var resp Response
	if err := f.conn.ReadJSON(&resp); err != nil {
		return nil, fmt.Errorf("assets: receive %s: %w", url, err)
	}
	if resp.ID != req.ID {
		return nil, fmt.Errorf("%w: id %d, want %d", ErrUnexpectedReply, resp.ID, req.ID)
	}
	if resp.Status != http.StatusOK {
		return nil, &StatusError{URL: url, Status: resp.Status}
	}
	return resp.Data, nil
}

func (f *WSFetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return nil
	}
	f.closed = true
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = f.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
	return f.conn.Close()
}
