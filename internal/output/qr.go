package output

import (
	"io"

	"github.com/mdp/qrterminal/v3"
)

// PrintQRCode renders text as a QR code on w. Terminals get ANSI colour
// blocks; anything else gets plain half-block characters so the code still
// scans when redirected to a file.
func PrintQRCode(w io.Writer, text string) {
	config := qrterminal.Config{
		Level:     qrterminal.M,
		Writer:    w,
		QuietZone: qrterminal.QUIET_ZONE,
	}

	if IsTerminal(w) {
		config.BlackChar = qrterminal.BLACK
		config.WhiteChar = qrterminal.WHITE
	} else {
		config.HalfBlocks = true
		config.BlackChar = qrterminal.BLACK_BLACK
		config.WhiteBlackChar = qrterminal.WHITE_BLACK
		config.WhiteChar = qrterminal.WHITE_WHITE
		config.BlackWhiteChar = qrterminal.BLACK_WHITE
	}

	qrterminal.GenerateWithConfig(text, config)
}
