package sbkoutput

import (
	"io"
	"os"

	"github.com/mdp/qrterminal/v3"
	"golang.org/x/term"
	"rsc.io/qr"
)

// QRConfig configures terminal QR code rendering for a share or
// mnemonic phrase carried on a single piece of paper.
type QRConfig struct {
	Level      qr.Level
	QuietZone  int
	HalfBlocks bool
}

// DefaultQRConfig favors a compact, low-error-correction rendering
// suitable for short phrases transcribed by hand.
func DefaultQRConfig() QRConfig {
	return QRConfig{Level: qr.L, QuietZone: 1, HalfBlocks: true}
}

// CanRenderQR reports whether w is a terminal that can display a QR code.
func CanRenderQR(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: Fd() returns uintptr, safe conversion for term.IsTerminal
}

// RenderQR renders data as a QR code to w if w is a terminal; it is a
// no-op otherwise, so piping output to a file never emits block art.
func RenderQR(w io.Writer, data string, cfg QRConfig) {
	if !CanRenderQR(w) {
		return
	}
	qrterminal.GenerateWithConfig(data, qrterminal.Config{
		Level:          cfg.Level,
		Writer:         w,
		QuietZone:      cfg.QuietZone,
		HalfBlocks:     cfg.HalfBlocks,
		BlackChar:      qrterminal.BLACK_BLACK,
		WhiteChar:      qrterminal.WHITE_WHITE,
		WhiteBlackChar: qrterminal.WHITE_BLACK,
		BlackWhiteChar: qrterminal.BLACK_WHITE,
	})
}
