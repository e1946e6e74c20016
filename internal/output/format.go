package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// CheckStatus represents the result of a validation check.
type CheckStatus string

const (
	StatusPass CheckStatus = "pass"
	StatusWarn CheckStatus = "warn"
	StatusFail CheckStatus = "fail"
)

// Check represents a single validation check result.
type Check struct {
	Name    string      `json:"name"`
	Status  CheckStatus `json:"status"`
	Message string      `json:"message"`
}

// Summary describes one API call for human-readable output.
type Summary struct {
	Command     string
	Method      string
	Endpoint    string
	Status      int
	StatusText  string
	LatencyMs   int64
	RequestID   string
	PayURL      string
	Amount      string
	Ledger      string
	ExplorerURL string
	Checks      []Check
	Error       string
}

// PrintSummary outputs the call summary in human-readable format.
func PrintSummary(w io.Writer, s *Summary) {
	failCount, warnCount := countChecks(s.Checks)

	switch {
	case s.Error != "" || failCount > 0:
		fmt.Fprintf(w, "✗ %s\n", s.Command)
	case warnCount > 0:
		fmt.Fprintf(w, "⚠ %s\n", s.Command)
	default:
		fmt.Fprintf(w, "✓ %s\n", s.Command)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Endpoint: %s %s\n", s.Method, s.Endpoint)
	if s.Status > 0 {
		fmt.Fprintf(w, "  Status:   %s\n", s.StatusText)
		fmt.Fprintf(w, "  Latency:  %dms\n", s.LatencyMs)
	}
	if s.Amount != "" {
		fmt.Fprintf(w, "  Amount:   %s\n", s.Amount)
	}
	if s.Ledger != "" {
		fmt.Fprintf(w, "  Ledger:   %s\n", s.Ledger)
	}
	if s.RequestID != "" {
		fmt.Fprintf(w, "  Request:  %s\n", s.RequestID)
	}
	if s.PayURL != "" {
		fmt.Fprintf(w, "  Pay URL:  %s\n", s.PayURL)
	}
	if s.ExplorerURL != "" {
		fmt.Fprintf(w, "  View:     %s\n", s.ExplorerURL)
	}

	if len(s.Checks) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "  Checks:")
		for _, check := range s.Checks {
			fmt.Fprintf(w, "    %s %s\n", statusIcon(check.Status), check.Name)
			if check.Status != StatusPass && check.Message != "" {
				fmt.Fprintf(w, "      %s\n", check.Message)
			}
		}
	}

	if s.Error != "" {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Error: %s\n", s.Error)
		if s.Status >= 500 {
			fmt.Fprintln(w, "Hint:  the service failed; the request may still be in its previous state")
		}
	}
}

// PrintResponse writes a response body to w followed by a newline.
// Bodies are pretty-printed only when w is a terminal.
func PrintResponse(w io.Writer, body []byte) {
	fmt.Fprintln(w, FormatResponseBody(string(body), IsTerminal(w)))
}

// PrintError outputs an error message to w.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}

// PrintWarning outputs a warning message to w.
func PrintWarning(w io.Writer, msg string) {
	fmt.Fprintf(w, "Warning: %s\n", msg)
}

// PrintInfo outputs an info message to w.
func PrintInfo(w io.Writer, msg string) {
	fmt.Fprintf(w, "%s\n", msg)
}

func statusIcon(status CheckStatus) string {
	switch status {
	case StatusPass:
		return "✓"
	case StatusWarn:
		return "⚠"
	case StatusFail:
		return "✗"
	default:
		return "?"
	}
}

func countChecks(checks []Check) (failCount, warnCount int) {
	for _, check := range checks {
		switch check.Status {
		case StatusFail:
			failCount++
		case StatusWarn:
			warnCount++
		}
	}
	return
}

// maxPrettyPrintSize is the maximum response size (in bytes) to pretty-print.
// Larger responses are returned raw to avoid terminal lag.
const maxPrettyPrintSize = 50 * 1024 // 50KB

// FormatResponseBody pretty-prints JSON when pretty is set, otherwise
// returns the raw body for piping to other tools.
func FormatResponseBody(body string, pretty bool) string {
	body = strings.TrimRight(body, "\n")
	if !pretty || len(body) > maxPrettyPrintSize {
		return body
	}

	// json.Indent returns an error for invalid JSON, so no need to pre-validate
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(body), "", "  "); err != nil {
		return body
	}
	return buf.String()
}
