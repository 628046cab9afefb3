package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"

	"github.com/sbk-go/sbk/internal/mnemonic"
)

func TestDeriveCmdHappyPath(t *testing.T) {
	saltBytes := make([]byte, 11)
	brainBytes := make([]byte, 6)
	for i := range saltBytes {
		saltBytes[i] = byte(i + 1)
	}
	for i := range brainBytes {
		brainBytes[i] = byte(i + 20)
	}

	origSalt, origBrain := deriveSaltPhrase, deriveBrainPhrase
	origName := deriveWalletName
	origSaltLen, origBrainLen := deriveSaltLen, deriveBrainLen
	origM, origT := deriveKdfM, deriveKdfT
	defer func() {
		deriveSaltPhrase, deriveBrainPhrase = origSalt, origBrain
		deriveWalletName = origName
		deriveSaltLen, deriveBrainLen = origSaltLen, origBrainLen
		deriveKdfM, deriveKdfT = origM, origT
	}()

	deriveSaltPhrase = mnemonic.BytesToPhrase(saltBytes)
	deriveBrainPhrase = mnemonic.BytesToPhrase(brainBytes)
	deriveWalletName = "savings"
	deriveSaltLen = 11
	deriveBrainLen = 6
	deriveKdfM = 16
	deriveKdfT = 1

	cmd := &cobra.Command{}
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := deriveCmd.RunE(cmd, nil); err != nil {
		t.Fatalf("deriveCmd.RunE returned error: %v", err)
	}

	if !bytes.Contains(buf.Bytes(), []byte("wallet seed:")) {
		t.Errorf("output missing wallet seed line, got:\n%s", buf.String())
	}
}

func TestDeriveCmdBadSaltPhrase(t *testing.T) {
	origSalt, origBrain := deriveSaltPhrase, deriveBrainPhrase
	defer func() { deriveSaltPhrase, deriveBrainPhrase = origSalt, origBrain }()

	deriveSaltPhrase = "not a real phrase at all here"
	deriveBrainPhrase = "also not real"
	deriveSaltLen = 11
	deriveBrainLen = 6
	deriveKdfM = 16
	deriveKdfT = 1

	cmd := &cobra.Command{}
	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := deriveCmd.RunE(cmd, nil); err == nil {
		t.Fatal("expected error for unparseable salt phrase, got nil")
	}
}

func TestZeroBytes(t *testing.T) {
	b := []byte{1, 2, 3, 4}
	zeroBytes(b)
	for i, v := range b {
		if v != 0 {
			t.Errorf("b[%d] = %d, want 0", i, v)
		}
	}
}
