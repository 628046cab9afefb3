package sbkoutput_test

import (
	"bytes"
	"testing"

	"github.com/sbk-go/sbk/internal/sbkoutput"
)

func TestCanRenderQRNonFile(t *testing.T) {
	var buf bytes.Buffer
	if sbkoutput.CanRenderQR(&buf) {
		t.Error("CanRenderQR(bytes.Buffer) = true, want false")
	}
}

func TestRenderQRNoopOnNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	sbkoutput.RenderQR(&buf, "test phrase", sbkoutput.DefaultQRConfig())
	if buf.Len() != 0 {
		t.Errorf("RenderQR wrote %d bytes to a non-terminal writer, want 0", buf.Len())
	}
}

func TestDefaultQRConfig(t *testing.T) {
	cfg := sbkoutput.DefaultQRConfig()
	if !cfg.HalfBlocks {
		t.Error("DefaultQRConfig().HalfBlocks = false, want true")
	}
	if cfg.QuietZone != 1 {
		t.Errorf("DefaultQRConfig().QuietZone = %d, want 1", cfg.QuietZone)
	}
}
