package translate

// ScalingThreshold is the raw prompt size at or below which usage is passed
// through untouched.
const ScalingThreshold int64 = 30_000

// TargetMaxTokens is the context size the Anthropic client believes it has,
// kept a little under its nominal 200k.
const TargetMaxTokens = 195_000.0

// maxDisplayRatio caps the reported ratio so the client never sees its own
// hard limit.
const maxDisplayRatio = 0.97

// ScalingEvent describes one scaled translation. It is handed to a
// UsageObserver and has no influence on the translated usage.
type ScalingEvent struct {
	Model        string
	RawPrompt    int64
	ContextLimit int64
	Ratio        float64
	Scaled       int64
	DisplayRatio float64
}

// UsageObserver receives diagnostics for translations where scaling applied.
// Implementations must be safe for concurrent use.
type UsageObserver interface {
	ObserveScaling(ev ScalingEvent)
}

// Observers fans one event out to several observers, skipping nil entries.
type Observers []UsageObserver

// ObserveScaling implements UsageObserver.
func (obs Observers) ObserveScaling(ev ScalingEvent) {
	for _, o := range obs {
		if o != nil {
			notify(o, ev)
		}
	}
}

// UsageOptions controls GeminiUsageToAnthropic.
type UsageOptions struct {
	// Model resolves ContextLimit when it is zero, and labels observer events.
	Model string
	// ContextLimit of the backend model. Zero means resolve from Model.
	ContextLimit   int64
	ScalingEnabled bool
	Observer       UsageObserver
}

// displayRatio maps the real fraction of the backend window onto the fraction
// the client should see. The map is continuous and non-decreasing:
//
//	[0, 0.5]     ratio * 0.6            0   -> 0.3
//	(0.5, 0.7]   linear                 0.3 -> 0.5
//	(0.7, 0.85]  linear                 0.5 -> 0.7
//	(0.85, inf)  linear, capped at 0.97 0.7 -> 0.97 at ratio 1.0
func displayRatio(ratio float64) float64 {
	switch {
	case ratio <= 0.5:
		return ratio * 0.6
	case ratio <= 0.7:
		return 0.3 + ((ratio-0.5)/0.2)*0.2
	case ratio <= 0.85:
		return 0.5 + ((ratio-0.7)/0.15)*0.2
	default:
		return min(maxDisplayRatio, 0.7+((ratio-0.85)/0.15)*0.27)
	}
}

// ScalingApplies reports whether rawPrompt is remapped at all.
func ScalingApplies(rawPrompt, contextLimit int64, enabled bool) bool {
	return enabled && rawPrompt > ScalingThreshold && contextLimit > 0
}

// ScalePromptTokens converts a raw prompt token count into the total the
// client should see. The float to int conversion truncates toward zero;
// downstream compact thresholds are tuned against that.
func ScalePromptTokens(rawPrompt, contextLimit int64, scalingEnabled bool) int64 {
	if !ScalingApplies(rawPrompt, contextLimit, scalingEnabled) {
		return rawPrompt
	}
	ratio := float64(rawPrompt) / float64(contextLimit)
	return int64(displayRatio(ratio) * TargetMaxTokens)
}

// redistributeCache splits the scaled total into fresh and cached input in
// the same proportion as the raw counts. cacheRead is nil when there was no
// prompt at all.
func redistributeCache(scaled, rawPrompt, rawCached int64) (input int64, cacheRead *int64) {
	if rawPrompt == 0 {
		return scaled, nil
	}

	cacheRatio := float64(rawCached) / float64(rawPrompt)
	cache := int64(float64(scaled) * cacheRatio)
	input = scaled - cache
	if input < 0 {
		input = 0
	}
	return input, &cache
}

// GeminiUsageToAnthropic converts Gemini usageMetadata into Anthropic usage,
// remapping prompt size so the client's context-pressure heuristics fire at
// the right time against a much larger backend window:
// - promptTokenCount includes cachedContentTokenCount
// - input_tokens excludes cache reads, which are reported separately
// - the sum of both equals the scaled prompt total
func GeminiUsageToAnthropic(u *GeminiUsageMetadata, opts UsageOptions) AnthropicUsage {
	if u == nil {
		u = &GeminiUsageMetadata{}
	}

	rawPrompt := valueOrZero(u.PromptTokenCount)
	rawCached := valueOrZero(u.CachedContentTokenCount)
	if rawCached > rawPrompt {
		rawCached = rawPrompt
	}

	limit := opts.ContextLimit
	if limit == 0 {
		limit = ContextLimitForModel(opts.Model)
	}

	scaled := ScalePromptTokens(rawPrompt, limit, opts.ScalingEnabled)
	if opts.Observer != nil && ScalingApplies(rawPrompt, limit, opts.ScalingEnabled) {
		notify(opts.Observer, ScalingEvent{
			Model:        opts.Model,
			RawPrompt:    rawPrompt,
			ContextLimit: limit,
			Ratio:        float64(rawPrompt) / float64(limit),
			Scaled:       scaled,
			DisplayRatio: float64(scaled) / TargetMaxTokens,
		})
	}

	input, cacheRead := redistributeCache(scaled, rawPrompt, rawCached)

	return AnthropicUsage{
		InputTokens:              input,
		OutputTokens:             valueOrZero(u.CandidatesTokenCount),
		CacheReadInputTokens:     cacheRead,
		CacheCreationInputTokens: int64Ptr(0),
		ServerToolUse:            nil,
	}
}

// notify delivers ev to o. A panicking observer is swallowed so diagnostics
// can never break a response.
func notify(o UsageObserver, ev ScalingEvent) {
	defer func() { _ = recover() }()
	o.ObserveScaling(ev)
}
