package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
)

func TestCreateCmdHappyPath(t *testing.T) {
	origT, origN := createThreshold, createShares
	origSalt, origBrain := createRawSaltLen, createBrainLen
	origM, origTime := createKdfM, createKdfT
	defer func() {
		createThreshold, createShares = origT, origN
		createRawSaltLen, createBrainLen = origSalt, origBrain
		createKdfM, createKdfT = origM, origTime
	}()

	createThreshold = 2
	createShares = 3
	createRawSaltLen = 11
	createBrainLen = 6
	createKdfM = 16
	createKdfT = 1

	origFormat := outputFormat
	defer func() { outputFormat = origFormat }()
	outputFormat = "text"

	cmd := &cobra.Command{}
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := createCmd.RunE(cmd, nil); err != nil {
		t.Fatalf("createCmd.RunE returned error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Salt (write this down", "Brainkey (memorize this", "Share 1 of 3", "Share 2 of 3", "Share 3 of 3"} {
		if !bytes.Contains([]byte(out), []byte(want)) {
			t.Errorf("output missing %q, got:\n%s", want, out)
		}
	}
}

func TestCreateCmdInvalidThreshold(t *testing.T) {
	origT, origN := createThreshold, createShares
	defer func() { createThreshold, createShares = origT, origN }()

	createThreshold = 1
	createShares = 3
	createRawSaltLen = 11
	createBrainLen = 6
	createKdfM = 16
	createKdfT = 1

	cmd := &cobra.Command{}
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := createCmd.RunE(cmd, nil); err == nil {
		t.Fatal("expected error for threshold below minimum, got nil")
	}
}

func TestCreateCmdJSONOutput(t *testing.T) {
	origT, origN := createThreshold, createShares
	origSalt, origBrain := createRawSaltLen, createBrainLen
	origM, origTime := createKdfM, createKdfT
	origFormat := outputFormat
	defer func() {
		createThreshold, createShares = origT, origN
		createRawSaltLen, createBrainLen = origSalt, origBrain
		createKdfM, createKdfT = origM, origTime
		outputFormat = origFormat
	}()

	createThreshold = 2
	createShares = 3
	createRawSaltLen = 11
	createBrainLen = 6
	createKdfM = 16
	createKdfT = 1
	outputFormat = "json"

	cmd := &cobra.Command{}
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := createCmd.RunE(cmd, nil); err != nil {
		t.Fatalf("createCmd.RunE returned error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{`"salt"`, `"brainkey"`, `"shares"`, `"words"`} {
		if !bytes.Contains([]byte(out), []byte(want)) {
			t.Errorf("JSON output missing %q, got:\n%s", want, out)
		}
	}
}
