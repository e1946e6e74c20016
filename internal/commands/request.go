package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/port402/centrapay-cli/internal/centrapay"
	"github.com/port402/centrapay-cli/internal/output"
)

// renderCode draws the payment page QR code.
var renderCode = output.PrintQRCode

// apiCall carries the per-command details shown alongside a result.
type apiCall struct {
	command     string
	amount      string
	ledger      string
	explorerURL string
	checks      []output.Check
	showCode    bool
}

// report prints the outcome of a dispatcher call and maps it to an exit code.
// On failure the response body is still printed to stdout before exiting.
func report(cmd *cobra.Command, call apiCall, result *centrapay.Result, callErr error) error {
	stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

	if result == nil {
		code := ExitUsage
		var transportErr *centrapay.TransportError
		if errors.As(callErr, &transportErr) {
			code = ExitHTTPError
		}
		if jsonOutput {
			output.PrintJSONError(stdout, callErr, code)
			return &ExitError{Code: code}
		}
		return &ExitError{Code: code, Err: callErr}
	}

	code := ExitOK
	errMsg := ""
	if callErr != nil {
		code = ExitHTTPError
		errMsg = callErr.Error()
	}

	if jsonOutput {
		doc := output.CommandResult{
			Command:     call.command,
			Endpoint:    result.Endpoint,
			Method:      result.Method,
			Status:      result.StatusCode,
			StatusText:  result.Status,
			LatencyMs:   result.LatencyMs,
			RequestID:   result.RequestID,
			PayURL:      result.PayURL,
			ExplorerURL: call.explorerURL,
			Response:    result.JSON(),
			ExitCode:    code,
			Error:       errMsg,
		}
		if curlOutput {
			doc.Curl = result.Curl
		}
		if err := output.PrintJSON(stdout, doc); err != nil {
			return err
		}
		if code != ExitOK {
			return &ExitError{Code: code}
		}
		return nil
	}

	if curlOutput {
		output.PrintInfo(stderr, result.Curl+"\n")
	}

	output.PrintSummary(stderr, &output.Summary{
		Command:     call.command,
		Method:      result.Method,
		Endpoint:    result.Endpoint,
		Status:      result.StatusCode,
		StatusText:  result.Status,
		LatencyMs:   result.LatencyMs,
		RequestID:   result.RequestID,
		PayURL:      result.PayURL,
		Amount:      call.amount,
		Ledger:      call.ledger,
		ExplorerURL: call.explorerURL,
		Checks:      call.checks,
		Error:       errMsg,
	})
	fmt.Fprintln(stderr)

	if code == ExitOK && call.showCode && result.PayURL != "" && !noQR {
		renderCode(stdout, result.PayURL)
	}
	if len(result.Body) > 0 {
		output.PrintResponse(stdout, result.Body)
	}

	if code != ExitOK {
		return &ExitError{Code: code}
	}
	return nil
}
