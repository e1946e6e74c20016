package output

import (
	"encoding/json"
	"io"
)

// PrintJSON outputs any value as formatted JSON to w.
func PrintJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintJSONError outputs an error as JSON to w.
func PrintJSONError(w io.Writer, err error, exitCode int) {
	PrintJSON(w, map[string]interface{}{
		"error":    err.Error(),
		"exitCode": exitCode,
	})
}

// CommandResult is the --json document printed for every API command.
type CommandResult struct {
	Command     string          `json:"command"`
	Endpoint    string          `json:"endpoint"`
	Method      string          `json:"method"`
	Status      int             `json:"status"`
	StatusText  string          `json:"statusText"`
	LatencyMs   int64           `json:"latencyMs"`
	RequestID   string          `json:"requestId,omitempty"`
	PayURL      string          `json:"payUrl,omitempty"`
	ExplorerURL string          `json:"explorerUrl,omitempty"`
	Curl        string          `json:"curl,omitempty"`
	Response    json.RawMessage `json:"response,omitempty"`
	ExitCode    int             `json:"exitCode"`
	Error       string          `json:"error,omitempty"`
}
