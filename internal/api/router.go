package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/sertdev/ctxscale/internal/translate"
)

// Opts configures the usage API router.
type Opts struct {
	// ScalingEnabled is the default when a request does not set scaling_enabled.
	ScalingEnabled bool
	Observer       translate.UsageObserver
	Recorder       TranslationRecorder
}

func NewRouter(opts Opts) chi.Router {
	r := chi.NewRouter()

	h := &usageHandler{
		scalingEnabled: opts.ScalingEnabled,
		observer:       opts.Observer,
		recorder:       opts.Recorder,
	}
	r.Post("/usage/translate", h.Translate)
	r.Get("/context-limit", h.ContextLimit)

	return r
}
