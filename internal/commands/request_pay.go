package commands

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/port402/centrapay-cli/internal/centrapay"
	"github.com/port402/centrapay-cli/internal/ledgers"
	"github.com/port402/centrapay-cli/internal/output"
)

var payCheck bool

var requestPayCmd = &cobra.Command{
	Use:   "request_pay REQUEST_ID LEDGER AUTHORIZATION",
	Short: "Pay a payment request",
	Long: `Pay a payment request from LEDGER using AUTHORIZATION.

LEDGER selects one of the payment options offered by the request (see
"centrapay ledgers"). AUTHORIZATION identifies the payment on that ledger:
a token for Centrapay ledgers, a transaction hash or address for EVM ledgers,
a transaction signature or public key for Solana ledgers.

With --check the authorization is validated against the ledger's format before
anything is sent; a malformed authorization exits with status 1.

Examples:
  centrapay request_pay WRhAxxWpTKb5U7pXyxQjjY centrapay.nzd.test 12345
  centrapay request_pay WRhAxxWpTKb5U7pXyxQjjY ethereum.sepolia 0x5c50...e2c1 --check`,
	Args: cobra.ExactArgs(3),
	RunE: runRequestPay,
}

func init() {
	requestPayCmd.Flags().BoolVar(&payCheck, "check", false, "Validate the authorization for the ledger before sending")
	rootCmd.AddCommand(requestPayCmd)
}

func runRequestPay(cmd *cobra.Command, args []string) error {
	pay := centrapay.PayRequest{
		RequestID:     args[0],
		Ledger:        args[1],
		Authorization: args[2],
	}

	call := apiCall{
		command: cmd.Name(),
		ledger:  ledgers.GetLedgerName(pay.Ledger),
	}

	if payCheck {
		checks, auth, err := checkAuthorization(pay.Ledger, pay.Authorization)
		if err != nil {
			if jsonOutput {
				output.PrintJSONError(cmd.OutOrStdout(), err, ExitUsage)
				return &ExitError{Code: ExitUsage}
			}
			output.PrintSummary(cmd.ErrOrStderr(), &output.Summary{
				Command:  call.command,
				Method:   http.MethodPost,
				Endpoint: centrapay.EndpointPay,
				Ledger:   call.ledger,
				Checks:   checks,
				Error:    "authorization check failed, nothing was sent",
			})
			return &ExitError{Code: ExitUsage}
		}
		call.checks = checks
		call.explorerURL = ledgers.AuthorizationURL(pay.Ledger, auth)
	}

	dispatcher, err := newDispatcher(cmd)
	if err != nil {
		return err
	}

	result, err := dispatcher.Pay(cmd.Context(), pay)
	return report(cmd, call, result, err)
}

// checkAuthorization validates authorization for ledger and describes the
// outcome as checks. Unknown ledgers only produce a warning.
func checkAuthorization(ledger, authorization string) ([]output.Check, *ledgers.Authorization, error) {
	var checks []output.Check

	info := ledgers.Lookup(ledger)
	if info == nil {
		checks = append(checks, output.Check{
			Name:    "Ledger known",
			Status:  output.StatusWarn,
			Message: fmt.Sprintf("%q is not a known ledger; authorization sent as an opaque token", ledger),
		})
	} else {
		msg := info.Name
		if info.IsTestnet {
			msg += " (testnet)"
		}
		checks = append(checks, output.Check{Name: "Ledger known", Status: output.StatusPass, Message: msg})
	}

	auth, err := ledgers.ValidateAuthorization(ledger, authorization)
	if err != nil {
		checks = append(checks, output.Check{Name: "Authorization format", Status: output.StatusFail, Message: err.Error()})
		return checks, nil, err
	}
	checks = append(checks, output.Check{
		Name:    "Authorization format",
		Status:  output.StatusPass,
		Message: fmt.Sprintf("%s %s", auth.Kind, auth.Value),
	})
	return checks, auth, nil
}
