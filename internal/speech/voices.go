package speech

import "strings"

const (
	DefaultStyle   = "default"
	DefaultVoiceID = "en-US-natalie"
)

// voiceStyles maps the persona names the frontend offers to Murf voice ids.
var voiceStyles = map[string]string{
	"default":  DefaultVoiceID,
	"narrator": "en-US-terrell",
	"support":  "en-US-miles",
	"sergeant": "en-US-ken",
	"game":     "en-US-paul",
}

// ResolveVoice returns the voice id for a style label, case-insensitively.
// Surrounding whitespace is not stripped. Unknown labels resolve to
// DefaultVoiceID with ok=false.
func ResolveVoice(style string) (voiceID string, ok bool) {
	id, ok := voiceStyles[strings.ToLower(style)]
	if !ok {
		return DefaultVoiceID, false
	}
	return id, true
}
