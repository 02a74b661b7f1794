package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/bytedance/sonic"

	"github.com/sertdev/ctxscale/internal/translate"
)

const maxBodyBytes = 1 << 20

// TranslationRecorder counts translations. *metrics.Metrics satisfies it.
type TranslationRecorder interface {
	RecordTranslation(model string, scaled bool)
}

type translateRequest struct {
	Model          string                         `json:"model"`
	UsageMetadata  *translate.GeminiUsageMetadata `json:"usageMetadata"`
	Response       json.RawMessage                `json:"response,omitempty"` // full Gemini response body
	ScalingEnabled *bool                          `json:"scaling_enabled,omitempty"`
}

type translateResponse struct {
	Model        string                   `json:"model"`
	ContextLimit int64                    `json:"context_limit"`
	Scaled       bool                     `json:"scaled"`
	Usage        translate.AnthropicUsage `json:"usage"`
}

type contextLimitResponse struct {
	Model        string `json:"model"`
	Family       string `json:"family"`
	ContextLimit int64  `json:"context_limit"`
}

type usageHandler struct {
	scalingEnabled bool
	observer       translate.UsageObserver
	recorder       TranslationRecorder
}

func (h *usageHandler) Translate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request_too_large", "Request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid_request_error", "Failed to read request body")
		return
	}

	var req translateRequest
	if err := sonic.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request_error", "Invalid JSON body")
		return
	}

	usage := req.UsageMetadata
	if usage == nil && len(req.Response) > 0 {
		usage, err = translate.ExtractGeminiUsage(req.Response)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request_error", err.Error())
			return
		}
	}

	scalingEnabled := h.scalingEnabled
	if req.ScalingEnabled != nil {
		scalingEnabled = *req.ScalingEnabled
	}

	limit := translate.ContextLimitForModel(req.Model)
	scaled := translate.ScalingApplies(usage.PromptTokens(), limit, scalingEnabled)

	out := translate.GeminiUsageToAnthropic(usage, translate.UsageOptions{
		Model:          req.Model,
		ContextLimit:   limit,
		ScalingEnabled: scalingEnabled,
		Observer:       h.observer,
	})
	if h.recorder != nil {
		h.recorder.RecordTranslation(req.Model, scaled)
	}

	writeJSON(w, http.StatusOK, translateResponse{
		Model:        req.Model,
		ContextLimit: limit,
		Scaled:       scaled,
		Usage:        out,
	})
}

func (h *usageHandler) ContextLimit(w http.ResponseWriter, r *http.Request) {
	model := r.URL.Query().Get("model")
	if model == "" {
		writeError(w, http.StatusBadRequest, "invalid_request_error", "model query parameter is required")
		return
	}

	writeJSON(w, http.StatusOK, contextLimitResponse{
		Model:        model,
		Family:       translate.ModelFamily(model),
		ContextLimit: translate.ContextLimitForModel(model),
	})
}
