package translate

// ---------------------------------------------------------------------------
// Gemini API types
// ---------------------------------------------------------------------------

// GeminiUsageMetadata is the usageMetadata block of a Gemini generateContent
// response. Every count is optional upstream.
type GeminiUsageMetadata struct {
	PromptTokenCount        *int64 `json:"promptTokenCount,omitempty"`
	CachedContentTokenCount *int64 `json:"cachedContentTokenCount,omitempty"`
	CandidatesTokenCount    *int64 `json:"candidatesTokenCount,omitempty"`
	TotalTokenCount         *int64 `json:"totalTokenCount,omitempty"`
}

// PromptTokens returns promptTokenCount, or 0 when absent.
func (u *GeminiUsageMetadata) PromptTokens() int64 {
	if u == nil {
		return 0
	}
	return valueOrZero(u.PromptTokenCount)
}

// ---------------------------------------------------------------------------
// Anthropic API types
// ---------------------------------------------------------------------------

// AnthropicUsage contains token usage information as reported to an
// Anthropic Messages API client.
type AnthropicUsage struct {
	InputTokens              int64          `json:"input_tokens"`
	OutputTokens             int64          `json:"output_tokens"`
	CacheReadInputTokens     *int64         `json:"cache_read_input_tokens,omitempty"`
	CacheCreationInputTokens *int64         `json:"cache_creation_input_tokens,omitempty"`
	ServerToolUse            *ServerToolUse `json:"server_tool_use,omitempty"`
}

// ServerToolUse counts server-side tool invocations. Gemini has no
// equivalent, so it is never populated.
type ServerToolUse struct {
	WebSearchRequests int64 `json:"web_search_requests"`
}

// AnthropicErrorResponse wraps an error in the Anthropic API envelope.
type AnthropicErrorResponse struct {
	Type  string         `json:"type"`
	Error AnthropicError `json:"error"`
}

// AnthropicError describes an individual Anthropic API error.
type AnthropicError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func int64Ptr(v int64) *int64 { return &v }

// valueOrZero dereferences an optional count, flooring malformed negative
// values at zero.
func valueOrZero(v *int64) int64 {
	if v == nil || *v < 0 {
		return 0
	}
	return *v
}
