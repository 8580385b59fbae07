package agent

import (
	"fmt"
	"regexp"
	"strings"
)

// The agents are instructed to request tool execution with a single
// bracketed directive instead of native function calling:
//
//	[TOOL_CALL:<tool_name>:<k1>=<v1>,<k2>=<v2>]
//
// The runtime scans model output for the first such directive, executes the
// named tool and feeds the result back to the model.
type ToolCall struct {
	Tool string
	Args map[string]string
	Raw  string
}

var toolCallRE = regexp.MustCompile(`\[TOOL_CALL:([A-Za-z0-9_]+):([^\]]+)\]`)

// ParseToolCall returns the first tool-call directive embedded in text.
func ParseToolCall(text string) (*ToolCall, bool) {
	m := toolCallRE.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}
	args := make(map[string]string)
	for _, kv := range strings.Split(m[2], ",") {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		args[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return &ToolCall{Tool: m[1], Args: args, Raw: m[0]}, true
}

// FormatToolCall renders a directive from ordered key/value pairs.
// FormatToolCall("t", "a", "1", "b", "2") => "[TOOL_CALL:t:a=1,b=2]".
func FormatToolCall(tool string, kv ...string) string {
	pairs := make([]string, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		pairs = append(pairs, kv[i]+"="+kv[i+1])
	}
	return fmt.Sprintf("[TOOL_CALL:%s:%s]", tool, strings.Join(pairs, ","))
}
