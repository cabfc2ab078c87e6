package apierr

import (
	"encoding/json"
	"strings"
)

// Payload is the error body BrasilAPI sends on failures, e.g.
//
//	{"message":"CEP não encontrado","type":"service_error","name":"CepPromiseError","errors":[...]}
type Payload struct {
	Message string     `json:"message"`
	Name    string     `json:"name,omitempty"`
	Type    string     `json:"type"`
	Errors  []SubError `json:"errors,omitempty"`
}

// SubError is one entry of Payload.Errors. The CEP endpoint reports one per
// provider it tried.
type SubError struct {
	Name    string `json:"name,omitempty"`
	Message string `json:"message,omitempty"`
	Service string `json:"service,omitempty"`
}

// ParsePayload interprets text as a Payload. It returns nil unless text is a
// JSON object carrying string "message" and "type" fields; optional fields of
// the wrong type are dropped rather than rejecting the whole payload.
func ParsePayload(text string) *Payload {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil
	}

	var obj map[string]any
	if err := json.Unmarshal([]byte(trimmed), &obj); err != nil {
		return nil
	}

	msg, ok := getString(obj, "message")
	if !ok {
		return nil
	}
	typ, ok := getString(obj, "type")
	if !ok {
		return nil
	}

	p := &Payload{
		Message: msg,
		Type:    typ,
		Name:    getStringOr(obj, "name", ""),
	}

	if list, ok := obj["errors"].([]any); ok {
		for _, item := range list {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			p.Errors = append(p.Errors, SubError{
				Name:    getStringOr(m, "name", ""),
				Message: getStringOr(m, "message", ""),
				Service: getStringOr(m, "service", ""),
			})
		}
	}
	return p
}

func getString(m map[string]any, key string) (string, bool) {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s, true
		}
	}
	return "", false
}

func getStringOr(m map[string]any, key, def string) string {
	if s, ok := getString(m, key); ok {
		return s
	}
	return def
}
