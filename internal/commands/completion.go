package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for centrapay.

To load completions:

Bash:
  $ source <(centrapay completion bash)
  # To load completions for each session, execute once:
  $ centrapay completion bash > /etc/bash_completion.d/centrapay

Zsh:
  $ centrapay completion zsh > "${fpath[1]}/_centrapay"

Fish:
  $ centrapay completion fish > ~/.config/fish/completions/centrapay.fish

PowerShell:
  PS> centrapay completion powershell | Out-String | Invoke-Expression`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		var err error
		switch args[0] {
		case "bash":
			err = cmd.Root().GenBashCompletionV2(w, true)
		case "zsh":
			err = cmd.Root().GenZshCompletion(w)
		case "fish":
			err = cmd.Root().GenFishCompletion(w, true)
		case "powershell":
			err = cmd.Root().GenPowerShellCompletionWithDesc(w)
		}
		if err != nil {
			return fmt.Errorf("generating %s completion: %w", args[0], err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
