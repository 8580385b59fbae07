package serviceImp

import (
	"errors"
	"strings"
)

// ExtractJSON locates the JSON payload in free-form model output. Priority:
//
//  1. a ```json fence
//  2. any ``` fence
//  3. first "{" through last "}"
//
// Anything else, including an unterminated fence, is an error.
func ExtractJSON(response string) (string, error) {
	if i := strings.Index(response, "```json"); i >= 0 {
		return insideFence(response[i+len("```json"):])
	}
	if i := strings.Index(response, "```"); i >= 0 {
		return insideFence(response[i+3:])
	}
	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start >= 0 && end > start {
		return response[start : end+1], nil
	}
	return "", errors.New("no JSON payload in response")
}

func insideFence(rest string) (string, error) {
	end := strings.Index(rest, "```")
	if end < 0 {
		return "", errors.New("unterminated code fence")
	}
	return strings.TrimSpace(rest[:end]), nil
}
