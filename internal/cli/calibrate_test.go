package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/spf13/cobra"
)

func TestCalibrateCmdHappyPath(t *testing.T) {
	origM, origT := calibrateKdfM, calibrateKdfT
	origTarget, origCap := calibrateTarget, calibrateCap
	defer func() {
		calibrateKdfM, calibrateKdfT = origM, origT
		calibrateTarget, calibrateCap = origTarget, origCap
	}()

	calibrateKdfM = 16
	calibrateKdfT = 1
	calibrateTarget = 0.05
	calibrateCap = 2 * time.Second

	cmd := &cobra.Command{}
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := calibrateCmd.RunE(cmd, nil); err != nil {
		t.Fatalf("calibrateCmd.RunE returned error: %v", err)
	}

	out := buf.String()
	if !bytes.Contains([]byte(out), []byte("kdf_m = ")) || !bytes.Contains([]byte(out), []byte("kdf_t = ")) {
		t.Errorf("output missing calibrated parameters, got:\n%s", out)
	}
}
