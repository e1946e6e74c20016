// Package commands implements the CLI commands using Cobra.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/port402/centrapay-cli/internal/centrapay"
	"github.com/port402/centrapay-cli/internal/client"
	"github.com/port402/centrapay-cli/internal/config"
	"github.com/port402/centrapay-cli/internal/logging"
	"github.com/port402/centrapay-cli/internal/output"
)

// Version information (set at build time via ldflags)
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// Process exit codes.
const (
	ExitOK        = 0
	ExitUsage     = 1 // no or unknown command, bad arguments
	ExitHTTPError = 2 // error status or no response from the service
)

// Global flags
var (
	verbose     bool
	jsonOutput  bool
	curlOutput  bool
	noQR        bool
	timeoutSecs int
	baseURL     string
	payBaseURL  string
	envFile     string
)

// ExitError makes the process exit with Code. Err is printed before exiting
// unless it is nil, in which case the failure has already been reported.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "centrapay",
	Short: "Test client for the Centrapay payment request API",
	Long: `centrapay is a command-line test client for the Centrapay payment service.

It creates payment requests, checks their status and pays them, printing a
scannable QR code for the payment page and the raw JSON response.

Credentials are read from the environment (or a .env file):
  MERCHANT_ID        merchant the requests are created for
  CLIENT_ID          optional client identifier
  MERCHANT_API_KEY   sent as the x-api-key header

Commands:
  request_create   Create a payment request
  request_info     Check a payment request (alias: request_status)
  request_pay      Pay a payment request
  ledgers          List known ledgers
  version          Show version information

Examples:
  # Create a request for 10 USD and show its QR code
  centrapay request_create 10.00 USD

  # Check it
  centrapay request_info WRhAxxWpTKb5U7pXyxQjjY

  # Pay it from a test ledger, printing the equivalent curl command
  centrapay request_pay WRhAxxWpTKb5U7pXyxQjjY centrapay.nzd.test 12345 --curl`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Help()
		return &ExitError{Code: ExitUsage}
	},
}

// Execute runs the root command and exits with its exit code.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line in args and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteContextC(ctx)
	if cmd == nil {
		cmd = rootCmd
	}
	return exitCode(cmd, err)
}

func exitCode(cmd *cobra.Command, err error) int {
	if err == nil {
		return ExitOK
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Err != nil {
			output.PrintError(cmd.ErrOrStderr(), exitErr.Err)
		}
		return exitErr.Code
	}

	// Unknown commands, wrong argument counts and flag errors
	output.PrintError(cmd.ErrOrStderr(), err)
	fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
	return ExitUsage
}

func init() {
	// Global flags available to all commands
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "Trace every call: URL, headers and form data")
	flags.BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	flags.BoolVar(&curlOutput, "curl", false, "Print the equivalent curl command")
	flags.BoolVar(&noQR, "no-qr", false, "Do not draw the payment QR code")
	flags.IntVar(&timeoutSecs, "timeout", 30, "Request timeout in seconds")
	flags.StringVar(&baseURL, "base-url", "", "Service base URL (default $CENTRAPAY_BASE_URL or "+config.DefaultBaseURL+")")
	flags.StringVar(&payBaseURL, "pay-base-url", "", "Payment page base URL (default $CENTRAPAY_PAY_BASE_URL or "+config.DefaultPayBaseURL+")")
	flags.StringVar(&envFile, "env-file", "", "Load environment from this file instead of .env")
}

// setupLogging attaches a logger to the command context.
func setupLogging(cmd *cobra.Command, args []string) error {
	logger := logging.New(cmd.ErrOrStderr(), verbose).With("command", cmd.Name())
	cmd.SetContext(logging.NewContext(cmd.Root().Context(), logger))
	return nil
}

// newDispatcher loads configuration and builds the API dispatcher.
func newDispatcher(cmd *cobra.Command) (*centrapay.Dispatcher, error) {
	if timeoutSecs <= 0 {
		return nil, &ExitError{Code: ExitUsage, Err: fmt.Errorf("--timeout must be positive, got %d", timeoutSecs)}
	}

	cfg, err := config.Load(envFile)
	if err != nil {
		return nil, &ExitError{Code: ExitUsage, Err: err}
	}
	cfg.Override(baseURL, payBaseURL)

	logger := logging.FromContext(cmd.Context())
	logger.Debug(":: base URL %s, merchant %q", cfg.BaseURL, cfg.MerchantID)

	return centrapay.NewDispatcher(centrapay.Settings{
		BaseURL:    cfg.BaseURL,
		PayBaseURL: cfg.PayBaseURL,
		MerchantID: cfg.MerchantID,
		ClientID:   cfg.ClientID,
		APIKey:     cfg.MerchantAPIKey,
	}, client.WithTimeout(time.Duration(timeoutSecs)*time.Second)), nil
}

// GetJSONOutput returns the json output flag value.
func GetJSONOutput() bool {
	return jsonOutput
}
