package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/port402/centrapay-cli/internal/ledgers"
	"github.com/port402/centrapay-cli/internal/output"
)

var ledgersCmd = &cobra.Command{
	Use:   "ledgers",
	Short: "List known ledgers",
	Long: `List the ledger selectors this client recognises, with the authorization
format checked by "request_pay --check" and the block explorer used for links.

Other selectors can still be passed to request_pay; they are sent unchanged.

Examples:
  centrapay ledgers
  centrapay ledgers --json`,
	Args: cobra.NoArgs,
	RunE: runLedgers,
}

func init() {
	rootCmd.AddCommand(ledgersCmd)
}

func runLedgers(cmd *cobra.Command, args []string) error {
	entries := ledgers.List()
	w := cmd.OutOrStdout()

	if GetJSONOutput() {
		return output.PrintJSON(w, entries)
	}

	fmt.Fprintln(w, "Known Ledgers")

	var currentFamily ledgers.Family
	for _, e := range entries {
		if e.Family != currentFamily {
			currentFamily = e.Family
			fmt.Fprintln(w)
			switch currentFamily {
			case ledgers.FamilyNative:
				fmt.Fprintln(w, "  Centrapay (opaque token)")
			case ledgers.FamilyEVM:
				fmt.Fprintln(w, "  EVM (0x transaction hash or address)")
			case ledgers.FamilySolana:
				fmt.Fprintln(w, "  Solana (base58 signature or public key)")
			}
		}

		explorer := e.Explorer
		if explorer == "" {
			explorer = "-"
		}
		testnet := ""
		if e.IsTestnet {
			testnet = "  (testnet)"
		}

		fmt.Fprintf(w, "    %-20s %-24s %s%s\n", e.ID, e.Name, explorer, testnet)
	}

	fmt.Fprintln(w)
	return nil
}
