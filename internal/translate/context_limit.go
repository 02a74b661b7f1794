package translate

import "strings"

// Context window sizes of the Gemini model families, in tokens.
const (
	ProContextLimit     int64 = 2_097_152
	FlashContextLimit   int64 = 1_048_576
	DefaultContextLimit int64 = 1_048_576
)

// Model family labels returned by ModelFamily.
const (
	FamilyPro     = "pro"
	FamilyFlash   = "flash"
	FamilyDefault = "default"
)

// ModelFamily classifies a model identifier by case-sensitive substring.
// "pro" wins over "flash" when both are present.
func ModelFamily(model string) string {
	switch {
	case strings.Contains(model, "pro"):
		return FamilyPro
	case strings.Contains(model, "flash"):
		return FamilyFlash
	default:
		return FamilyDefault
	}
}

// ContextLimitForModel returns the context window for a model identifier.
// Unknown identifiers get DefaultContextLimit.
func ContextLimitForModel(model string) int64 {
	switch ModelFamily(model) {
	case FamilyPro:
		return ProContextLimit
	case FamilyFlash:
		return FlashContextLimit
	default:
		return DefaultContextLimit
	}
}
