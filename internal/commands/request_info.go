package commands

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
)

var infoMethod string

var requestInfoCmd = &cobra.Command{
	Use:     "request_info REQUEST_ID",
	Aliases: []string{"request_status"},
	Short:   "Check a payment request",
	Long: `Fetch the current state of a payment request.

The request id is sent as a query parameter by default; --method POST sends it
as a form body instead. When the response names the request, its payment page
QR code is printed before the JSON response.

Examples:
  centrapay request_info WRhAxxWpTKb5U7pXyxQjjY
  centrapay request_status WRhAxxWpTKb5U7pXyxQjjY --method POST`,
	Args: cobra.ExactArgs(1),
	RunE: runRequestInfo,
}

func init() {
	requestInfoCmd.Flags().StringVarP(&infoMethod, "method", "X", http.MethodGet, "HTTP method (GET or POST)")
	rootCmd.AddCommand(requestInfoCmd)
}

func runRequestInfo(cmd *cobra.Command, args []string) error {
	requestID := args[0]

	method := strings.ToUpper(infoMethod)
	if method != http.MethodGet && method != http.MethodPost {
		return &ExitError{Code: ExitUsage, Err: fmt.Errorf("--method must be GET or POST, got %q", infoMethod)}
	}

	dispatcher, err := newDispatcher(cmd)
	if err != nil {
		return err
	}

	result, err := dispatcher.Info(cmd.Context(), requestID, method)
	return report(cmd, apiCall{
		command:  cmd.Name(),
		showCode: true,
	}, result, err)
}
