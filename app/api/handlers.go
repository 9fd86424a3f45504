package api

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// NewHandler builds the handler. answerURL may be nil, in which case the
// search endpoint is neither routed nor advertised.
func NewHandler(feedFile, publicURL, feedPath, searchPath string, answerURL *url.URL, version string) *Handler {
	h := &Handler{
		feedFile:   feedFile,
		publicURL:  strings.TrimRight(publicURL, "/"),
		feedPath:   feedPath,
		searchPath: searchPath,
		version:    version,
	}
	if answerURL != nil {
		h.answerProxy = newAnswerProxy(answerURL)
	}
	return h
}

// SearchEnabled reports whether search requests are forwarded to an answer
// service.
func (h *Handler) SearchEnabled() bool {
	return h.answerProxy != nil
}

func newAnswerProxy(target *url.URL) *httputil.ReverseProxy {
	return &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(target)
			r.SetXForwarded()
		},
		// CORS is answered by this server
		ModifyResponse: func(resp *http.Response) error {
			for name := range resp.Header {
				if strings.HasPrefix(name, "Access-Control-") {
					resp.Header.Del(name)
				}
			}
			return nil
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			slog.Error("Answer service request failed", "target", target.String(), "error", err)
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte(`{"error":"Answer service unavailable"}`))
		},
	}
}

// Search forwards the request, query string included, to the answer service.
func (h *Handler) Search(c *gin.Context) {
	h.answerProxy.ServeHTTP(c.Writer, c.Request)
}

func (h *Handler) GetFeed(c *gin.Context) {
	data, err := os.ReadFile(h.feedFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Warn("Feed file not found", "path", h.feedFile)
			c.JSON(http.StatusNotFound, gin.H{"error": "No feed found"})
			return
		}
		slog.Error("Failed to read feed file", "path", h.feedFile, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read feed"})
		return
	}

	c.Data(http.StatusOK, "application/xml; charset=utf-8", data)
}

func (h *Handler) GetOpenAPI(c *gin.Context) {
	data, err := h.openAPIYAML()
	if err != nil {
		slog.Error("OpenAPI generation error", "error", err)
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Data(http.StatusOK, "application/yaml; charset=utf-8", data)
}

func (h *Handler) GetManifest(c *gin.Context) {
	c.JSON(http.StatusOK, PluginManifest{
		SchemaVersion:       "v1",
		NameForHuman:        "newsdesk",
		NameForModel:        "newsdesk",
		DescriptionForHuman: "Ask questions about the latest news.",
		DescriptionForModel: "Search recent news articles and answer questions, citing the matching articles.",
		Auth:                ManifestAuth{Type: "none"},
		API: ManifestAPI{
			Type: "openapi",
			URL:  h.publicURL + "/openapi.yaml",
		},
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
		"version":   h.version,
	}

	_, err := os.Stat(h.feedFile)
	health["feed_available"] = err == nil
	health["search_enabled"] = h.SearchEnabled()

	c.JSON(http.StatusOK, health)
}
