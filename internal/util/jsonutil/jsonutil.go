package jsonutil

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
)

// ErrRecoveryFailed reports that no recovery stage could turn the input into
// valid JSON. Callers are expected to substitute their documented default
// value instead of surfacing this to the end user.
var ErrRecoveryFailed = errors.New("jsonutil: no recovery stage produced valid JSON")

// Recover turns free-form model output into a parsed JSON payload with staged
// fallback. The stages run cheapest first and each is attempted only when the
// previous one fails:
//
//  1. direct parse of the trimmed input
//  2. best-effort syntactic repair (markdown fences, trailing commas,
//     unquoted keys, unterminated strings, missing closing brackets)
//  3. balanced-bracket substring extraction from surrounding prose
//
// The input is not trusted to honor instructions: truncation, stray prose and
// code fences are all expected failure modes rather than exceptional ones.
func Recover(text string) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, ErrRecoveryFailed
	}
	if json.Valid([]byte(trimmed)) {
		return json.RawMessage(trimmed), nil
	}

	if repaired := Repair(trimmed); json.Valid([]byte(repaired)) {
		return json.RawMessage(repaired), nil
	}

	if sub := extractBalanced(trimmed); sub != "" {
		sub = stripTrailingCommas(sub)
		if json.Valid([]byte(sub)) {
			return json.RawMessage(sub), nil
		}
		// The extracted payload may itself carry repairable faults.
		if repaired := Repair(sub); json.Valid([]byte(repaired)) {
			return json.RawMessage(repaired), nil
		}
	}

	return nil, ErrRecoveryFailed
}

// RecoverInto recovers text and unmarshals the result into v.
func RecoverInto(text string, v any) error {
	raw, err := Recover(text)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// Repair applies a best-effort transform for the JSON faults language models
// habitually produce. The output is not guaranteed to be valid; callers must
// re-validate.
func Repair(s string) string {
	s = stripFences(strings.TrimSpace(s))
	s = quoteBareKeys(s)
	s = closeDangling(s)
	s = stripTrailingCommas(s)
	return s
}

// MarshalNoEscape encodes v into JSON without escaping <, >, & into < etc.
// Used when embedding JSON blocks into prompts.
func MarshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// stripFences removes a surrounding markdown code fence, with or without a
// language tag, when one wraps the whole payload.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	rest := s[3:]
	if idx := strings.IndexByte(rest, '\n'); idx >= 0 {
		// Drop the fence line itself ("```json" or bare "```").
		rest = rest[idx+1:]
	}
	if end := strings.LastIndex(rest, "```"); end >= 0 {
		rest = rest[:end]
	}
	return strings.TrimSpace(rest)
}

// quoteBareKeys wraps unquoted object keys in double quotes. It walks the
// input so keys inside string values are left alone.
func quoteBareKeys(s string) string {
	var out strings.Builder
	out.Grow(len(s) + 16)

	inString := false
	escaped := false
	expectKey := false

	isKeyStart := func(b byte) bool {
		return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
	}
	isKeyByte := func(b byte) bool {
		return isKeyStart(b) || b == '-' || (b >= '0' && b <= '9')
	}

	for i := 0; i < len(s); i++ {
		b := s[i]
		if inString {
			out.WriteByte(b)
			if escaped {
				escaped = false
			} else if b == '\\' {
				escaped = true
			} else if b == '"' {
				inString = false
			}
			continue
		}
		switch {
		case b == '"':
			inString = true
			expectKey = false
			out.WriteByte(b)
		case b == '{' || b == ',':
			expectKey = true
			out.WriteByte(b)
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			out.WriteByte(b)
		case expectKey && isKeyStart(b):
			j := i
			for j < len(s) && isKeyByte(s[j]) {
				j++
			}
			k := j
			for k < len(s) && (s[k] == ' ' || s[k] == '\t') {
				k++
			}
			if k < len(s) && s[k] == ':' {
				out.WriteByte('"')
				out.WriteString(s[i:j])
				out.WriteByte('"')
				i = j - 1
			} else {
				// Bare word that is not a key (true/false/null or garbage).
				out.WriteByte(b)
			}
			expectKey = false
		default:
			expectKey = false
			out.WriteByte(b)
		}
	}
	return out.String()
}

// closeDangling terminates an unfinished string and appends closing brackets
// for any openers left on the stack, the usual shape of truncated output.
func closeDangling(s string) string {
	var stack []byte
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		b := s[i]
		if inString {
			if escaped {
				escaped = false
			} else if b == '\\' {
				escaped = true
			} else if b == '"' {
				inString = false
			}
			continue
		}
		switch b {
		case '"':
			inString = true
		case '{', '[':
			stack = append(stack, b)
		case '}':
			if len(stack) > 0 && stack[len(stack)-1] == '{' {
				stack = stack[:len(stack)-1]
			}
		case ']':
			if len(stack) > 0 && stack[len(stack)-1] == '[' {
				stack = stack[:len(stack)-1]
			}
		}
	}
	var out strings.Builder
	out.WriteString(s)
	if inString {
		out.WriteByte('"')
	}
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == '{' {
			out.WriteByte('}')
		} else {
			out.WriteByte(']')
		}
	}
	return out.String()
}

// extractBalanced returns the first top-level JSON object or array embedded in
// s, found by bracket counting rather than a naive first/last search so that
// nested structures and trailing prose do not fool it. If the structure never
// closes, the tail from the opener onward is returned for repair.
func extractBalanced(s string) string {
	start := -1
	var open, close byte
	for i := 0; i < len(s); i++ {
		if s[i] == '{' {
			start, open, close = i, '{', '}'
			break
		}
		if s[i] == '[' {
			start, open, close = i, '[', ']'
			break
		}
	}
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		b := s[i]
		if inString {
			if escaped {
				escaped = false
			} else if b == '\\' {
				escaped = true
			} else if b == '"' {
				inString = false
			}
			continue
		}
		switch b {
		case '"':
			inString = true
		case open:
			depth++
		case close:
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return s[start:]
}

// stripTrailingCommas removes commas that directly precede a closing bracket,
// ignoring whitespace, while leaving string contents untouched.
func stripTrailingCommas(s string) string {
	var out strings.Builder
	out.Grow(len(s))
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		b := s[i]
		if inString {
			out.WriteByte(b)
			if escaped {
				escaped = false
			} else if b == '\\' {
				escaped = true
			} else if b == '"' {
				inString = false
			}
			continue
		}
		if b == '"' {
			inString = true
			out.WriteByte(b)
			continue
		}
		if b == ',' {
			j := i + 1
			for j < len(s) && (s[j] == ' ' || s[j] == '\t' || s[j] == '\n' || s[j] == '\r') {
				j++
			}
			if j < len(s) && (s[j] == '}' || s[j] == ']') {
				continue // drop the comma
			}
		}
		out.WriteByte(b)
	}
	return out.String()
}
