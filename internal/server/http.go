package server

import (
	"mime"
	"net/http"
	"path"
	"strconv"

	"github.com/zeusync/scenedoc/internal/assets"
	"github.com/zeusync/scenedoc/internal/observability/log"
)

// AssetPrefix is the URL path assets are served under.
const AssetPrefix = "/assets/"

// Handler routes GET /assets/<path> and the /ws endpoint.
func (s *AssetServer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+AssetPrefix+"{path...}", s.handleAsset)
	mux.HandleFunc("GET /ws", s.handleWebSocket)
	return mux
}

func (s *AssetServer) handleAsset(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("path")
	data, status, err := s.read(name)
	if err != nil {
		s.logger.Debug("Asset request failed",
			log.String("path", name),
			log.Int("status", status),
			log.Error(err))
		http.Error(w, http.StatusText(status), status)
		return
	}

	w.Header().Set("Content-Type", contentType(name, data))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// contentType prefers the extension and falls back to sniffing, which cannot
// tell JSON or glTF apart from plain text.
func contentType(name string, data []byte) string {
	if t := mime.TypeByExtension(path.Ext(name)); t != "" {
		return t
	}
	return assets.ContentType(data)
}
