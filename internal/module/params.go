package module

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// States a VM can be declared into.
const (
	StatePresent = "present"
	StateAbsent  = "absent"
)

// Params are the module parameters, named exactly as they appear in a
// playbook task.
type Params struct {
	APIKey   string `json:"api_key"`
	State    string `json:"state"`
	ID       string `json:"id"`
	Project  string `json:"project"`
	Hostname string `json:"hostname"`
	Plan     string `json:"plan"`
	OS       string `json:"os"`
	POP      string `json:"pop"`
}

var knownParams = map[string]bool{
	"api_key":  true,
	"state":    true,
	"id":       true,
	"project":  true,
	"hostname": true,
	"plan":     true,
	"os":       true,
	"pop":      true,
}

// ParseArgs decodes and validates the parameter document the host hands
// the module. Validation failures come back as errors whose text is the
// module's user-facing failure message.
func ParseArgs(data []byte) (*Params, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse module arguments: %w", err)
	}

	// Ansible internals (_ansible_check_mode and friends) ride along in
	// the argument file and are not module parameters
	var unsupported []string
	for key := range raw {
		if strings.HasPrefix(key, "_") {
			continue
		}
		if !knownParams[key] {
			unsupported = append(unsupported, key)
		}
	}
	if len(unsupported) > 0 {
		sort.Strings(unsupported)
		return nil, fmt.Errorf("Unsupported parameters for (aarch64_vm) module: %s", strings.Join(unsupported, ", "))
	}

	var params Params
	if err := json.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("failed to parse module arguments: %w", err)
	}

	if params.State == "" {
		params.State = StatePresent
	}

	if params.APIKey == "" {
		return nil, fmt.Errorf("missing required arguments: api_key")
	}
	if params.State != StatePresent && params.State != StateAbsent {
		return nil, fmt.Errorf("value of state must be one of: %s, %s, got: %s", StatePresent, StateAbsent, params.State)
	}

	return &params, nil
}
