// centrapay is a command-line test client for the Centrapay payment request API.
//
// It creates payment requests, checks their status and pays them. Successful
// create and info calls print a QR code for the payment page followed by the
// raw JSON response.
//
// Usage:
//
//	centrapay request_create AMOUNT ASSET                      Create a payment request
//	centrapay request_info REQUEST_ID                          Check a payment request
//	centrapay request_pay REQUEST_ID LEDGER AUTHORIZATION      Pay a payment request
//	centrapay ledgers                                          List known ledgers
//
// Exit status is 0 on success, 1 for a missing or unknown command and 2 when
// the service answers with an error status.
package main

import "github.com/port402/centrapay-cli/internal/commands"

func main() {
	commands.Execute()
}
