package translate

import (
	"fmt"

	json "github.com/bytedance/sonic"
)

// geminiEnvelope covers both the public generateContent response and the
// v1internal wrapper that nests it under "response".
type geminiEnvelope struct {
	UsageMetadata *GeminiUsageMetadata `json:"usageMetadata"`
	Response      *struct {
		UsageMetadata *GeminiUsageMetadata `json:"usageMetadata"`
	} `json:"response"`
}

// ExtractGeminiUsage pulls usageMetadata out of a Gemini response body.
// A body without usage yields (nil, nil).
func ExtractGeminiUsage(body []byte) (*GeminiUsageMetadata, error) {
	var env geminiEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode gemini response: %w", err)
	}
	if env.UsageMetadata != nil {
		return env.UsageMetadata, nil
	}
	if env.Response != nil {
		return env.Response.UsageMetadata, nil
	}
	return nil, nil
}

// MarshalAnthropicError builds a serialised Anthropic error response.
func MarshalAnthropicError(errType, message string) []byte {
	result, _ := json.Marshal(AnthropicErrorResponse{
		Type: "error",
		Error: AnthropicError{
			Type:    errType,
			Message: message,
		},
	})
	return result
}
