package module

import (
	"encoding/json"
	"fmt"
)

// Result is the document the module reports back to the host. Changed is
// always emitted, even when false; everything else only when set.
type Result struct {
	Changed bool            `json:"changed"`
	Failed  bool            `json:"failed,omitempty"`
	Msg     string          `json:"msg,omitempty"`
	Message string          `json:"message,omitempty"`
	VM      json.RawMessage `json:"vm,omitempty"`
}

// Fail builds a failed result with a formatted message. A failure never
// reports a change.
func Fail(format string, args ...any) *Result {
	return &Result{
		Failed: true,
		Msg:    fmt.Sprintf(format, args...),
	}
}
