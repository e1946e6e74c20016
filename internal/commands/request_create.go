package commands

import (
	"github.com/spf13/cobra"

	"github.com/port402/centrapay-cli/internal/ledgers"
	"github.com/port402/centrapay-cli/internal/output"
)

var createCheck bool

var requestCreateCmd = &cobra.Command{
	Use:   "request_create AMOUNT ASSET",
	Short: "Create a payment request",
	Long: `Create a payment request for AMOUNT of ASSET on behalf of $MERCHANT_ID.

The amount and asset are sent exactly as typed, so the service's own
validation can be exercised; an amount that is not a positive decimal only
produces a warning. With --check such an amount is refused before anything is
sent and the command exits with status 1.

On success the QR code for the payment page and the JSON response are printed.

Examples:
  centrapay request_create 10.00 USD
  centrapay request_create 4.5 NZD --no-qr --json
  centrapay request_create 0 NZD --check`,
	Args: cobra.ExactArgs(2),
	RunE: runRequestCreate,
}

func init() {
	requestCreateCmd.Flags().BoolVar(&createCheck, "check", false, "Refuse amounts that are not positive decimals instead of sending them")
	rootCmd.AddCommand(requestCreateCmd)
}

func runRequestCreate(cmd *cobra.Command, args []string) error {
	amount, asset := args[0], args[1]

	if _, err := ledgers.ValidateAmount(amount); err != nil {
		if createCheck {
			return &ExitError{Code: ExitUsage, Err: err}
		}
		output.PrintWarning(cmd.ErrOrStderr(), err.Error()+"; sending it anyway")
	}

	dispatcher, err := newDispatcher(cmd)
	if err != nil {
		return err
	}

	result, err := dispatcher.Create(cmd.Context(), amount, asset)
	return report(cmd, apiCall{
		command:  cmd.Name(),
		amount:   ledgers.FormatAmount(amount, asset),
		showCode: true,
	}, result, err)
}
