package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"sync"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	logpkg "github.com/sanctuary-tracker/api/internal/logger"
)

// OpenAPIHandler serves the API contract in YAML and JSON form
type OpenAPIHandler struct {
	specPath string
	logger   *zap.Logger

	once    sync.Once
	yamlDoc []byte
	jsonDoc []byte
	loadErr error
}

// NewOpenAPIHandler creates a handler serving the spec file at specPath
func NewOpenAPIHandler(specPath string, logger *zap.Logger) *OpenAPIHandler {
	return &OpenAPIHandler{specPath: specPath, logger: logger}
}

// load reads and converts the spec once; later requests reuse the bytes
func (h *OpenAPIHandler) load() error {
	h.once.Do(func() {
		raw, err := os.ReadFile(h.specPath)
		if err != nil {
			h.loadErr = err
			return
		}
		h.yamlDoc = raw

		var doc any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			h.loadErr = err
			return
		}
		h.jsonDoc, h.loadErr = json.Marshal(doc)
	})
	return h.loadErr
}

// ServeYAML handles GET /api/v1/openapi.yaml
func (h *OpenAPIHandler) ServeYAML(w http.ResponseWriter, r *http.Request) {
	if err := h.load(); err != nil {
		h.logger.Error("openapi_spec_unavailable", zap.String("error", logpkg.SanitizeError(err)))
		respondError(w, http.StatusInternalServerError, "Internal Server Error", "API specification unavailable", h.logger)
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.yamlDoc)
}

// ServeJSON handles GET /api/v1/openapi.json
func (h *OpenAPIHandler) ServeJSON(w http.ResponseWriter, r *http.Request) {
	if err := h.load(); err != nil {
		h.logger.Error("openapi_spec_unavailable", zap.String("error", logpkg.SanitizeError(err)))
		respondError(w, http.StatusInternalServerError, "Internal Server Error", "API specification unavailable", h.logger)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.jsonDoc)
}
