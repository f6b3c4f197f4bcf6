package assistant

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	answerUnparseable   = "I understand your message but had trouble processing it. Could you please rephrase?"
	answerWantComplaint = "I understand you want to register a complaint. Could you please provide more details?"
	answerWantMoreInfo  = "I received your message but need more information to help you properly."
)

// parseModelReply turns raw model output into a complete IntentResult. It
// never fails: markdown fences are stripped, a JSON object is salvaged from
// surrounding prose, and anything unparseable becomes a GENERIC result
// carrying the cleaned text as the answer.
func parseModelReply(raw string) IntentResult {
	cleaned := stripFences(strings.TrimSpace(raw))

	candidate := extractJSONObject(cleaned)
	if candidate == "" {
		candidate = cleaned
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil || obj == nil {
		answer := strings.TrimSpace(strings.ReplaceAll(strings.ReplaceAll(cleaned, "```json", ""), "```", ""))
		if answer == "" {
			answer = answerUnparseable
		}
		return IntentResult{Intent: IntentGeneric, Answer: answer, Slots: map[string]string{}}
	}

	result := IntentResult{
		Intent: stringField(obj, "intent"),
		Answer: stringField(obj, "answer"),
		Slots:  map[string]string{},
	}
	if v, ok := obj["needs_followup"].(bool); ok {
		result.NeedsFollowup = v
	}
	if slots, ok := obj["slots"].(map[string]any); ok {
		for k, v := range slots {
			if s, ok := v.(string); ok {
				result.Slots[k] = s
			} else if v != nil {
				result.Slots[k] = fmt.Sprintf("%v", v)
			}
		}
	}

	if result.Intent == "" {
		result.Intent = IntentGeneric
	}
	if result.Answer == "" {
		if result.Intent == IntentComplaint {
			result.Answer = answerWantComplaint
		} else {
			result.Answer = answerWantMoreInfo
		}
	}
	return result
}

func stringField(obj map[string]any, key string) string {
	s, _ := obj[key].(string)
	return strings.TrimSpace(s)
}

// stripFences unwraps a fenced code block: when the text starts with a fence
// marker, only the lines between the first and second markers survive.
// Anything after the closing fence is discarded.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	var kept []string
	inBlock := false
	for _, line := range strings.Split(s, "\n") {
		if strings.HasPrefix(line, "```") {
			if inBlock {
				break
			}
			inBlock = true
			continue
		}
		if inBlock {
			kept = append(kept, line)
		}
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

// extractJSONObject scans for the first brace-balanced {...} span. A depth
// counter tolerates nested objects (the model may emit a nested slots
// object). Returns "" when the text holds no balanced object.
func extractJSONObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}
	depth := 0
	for i := start; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
