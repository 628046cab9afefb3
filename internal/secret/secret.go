// Package secret implements the end-to-end recipes of spec.md §4.9:
// creating a new wallet's shares, recovering (raw_salt, brainkey) from
// a quorum of shares, and deriving the final wallet seed. It composes
// internal/params, internal/shamir, internal/reedsolomon, and
// internal/kdf exactly as spec.md §2's data-flow diagram lays out.
package secret

import (
	"context"
	"errors"
	"io"
	"regexp"

	"github.com/sbk-go/sbk/internal/kdf"
	"github.com/sbk-go/sbk/internal/params"
	"github.com/sbk-go/sbk/internal/randsrc"
	"github.com/sbk-go/sbk/internal/reedsolomon"
	"github.com/sbk-go/sbk/internal/securemem"
	"github.com/sbk-go/sbk/internal/shamir"
	"github.com/sbk-go/sbk/pkg/sbkerrors"
)

// DefaultWalletName is used when the caller supplies none, per
// spec.md §4.9.
const DefaultWalletName = "disabled"

// DefaultRawSaltLen and DefaultBrainKeyLen match spec.md §3's stated ranges.
const (
	DefaultRawSaltLen  = 11
	DefaultBrainKeyLen = 6
)

var walletNamePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// Bundle is the output of Create: the parameters common to every
// share, the printable salt, and the printable shares.
type Bundle struct {
	Params       params.Parameters
	SaltHeader   [2]byte
	SaltECC      []byte
	RawSalt      *securemem.Bytes
	BrainKey     *securemem.Bytes
	ShareHeaders [][3]byte
	ShareYs      [][]byte
	ShareECC     [][]byte
}

// Create draws a fresh raw_salt and brainkey, normalizes p (which must
// already carry both SssT and SssN), and splits the resulting
// master_key into p.SssN shares.
func Create(rng io.Reader, p params.Parameters, rawSaltLen, brainKeyLen int) (*Bundle, error) {
	if rawSaltLen <= 0 || brainKeyLen <= 0 {
		return nil, sbkerrors.ErrInvalidInput
	}
	p = params.Normalize(p)

	rawSalt, err := randsrc.Bytes(rng, rawSaltLen)
	if err != nil {
		return nil, err
	}
	brainKey, err := randsrc.Bytes(rng, brainKeyLen)
	if err != nil {
		return nil, err
	}

	masterKey := make([]byte, 0, rawSaltLen+brainKeyLen)
	masterKey = append(masterKey, rawSalt...)
	masterKey = append(masterKey, brainKey...)

	shares, err := shamir.Split(rng, masterKey, p.SssT, p.SssN)
	if err != nil {
		return nil, err
	}

	saltHeader, err := params.EncodeSalt(p)
	if err != nil {
		return nil, err
	}
	saltECC, err := reedsolomon.Encode(rawSalt)
	if err != nil {
		return nil, err
	}

	bundle := &Bundle{
		Params:       p,
		SaltHeader:   saltHeader,
		SaltECC:      saltECC[len(rawSalt):],
		RawSalt:      securemem.FromSlice(rawSalt),
		BrainKey:     securemem.FromSlice(brainKey),
		ShareHeaders: make([][3]byte, len(shares)),
		ShareYs:      make([][]byte, len(shares)),
		ShareECC:     make([][]byte, len(shares)),
	}

	for i, s := range shares {
		sp := p
		sp.SssX = s.X
		sp.SssN = p.SssN
		header, herr := params.EncodeShare(sp)
		if herr != nil {
			return nil, herr
		}
		ecc, eerr := reedsolomon.Encode(s.Ys)
		if eerr != nil {
			return nil, eerr
		}
		bundle.ShareHeaders[i] = header
		bundle.ShareYs[i] = s.Ys
		bundle.ShareECC[i] = ecc[len(s.Ys):]
	}

	return bundle, nil
}

// RecoveredShare is one caller-supplied share input to Recover.
type RecoveredShare struct {
	Header [3]byte
	Ys     []byte
}

// Recover joins >= p.SssT distinct shares back into (raw_salt, brainkey).
func Recover(shares []RecoveredShare, rawSaltLen int) (rawSalt, brainKey *securemem.Bytes, err error) {
	if len(shares) == 0 {
		return nil, nil, sbkerrors.ErrInsufficientShares
	}

	var headerParams params.Parameters
	rawShares := make([]shamir.RawShare, len(shares))
	for i, s := range shares {
		p, perr := params.DecodeShare(s.Header[:])
		if perr != nil {
			return nil, nil, perr
		}
		if i == 0 {
			headerParams = p
		} else if p.Version != headerParams.Version || p.KdfM != headerParams.KdfM ||
			p.KdfT != headerParams.KdfT || p.SssT != headerParams.SssT {
			return nil, nil, sbkerrors.ErrParamMismatch
		}
		rawShares[i] = shamir.RawShare{X: p.SssX, Ys: s.Ys}
	}

	masterKey, err := shamir.Join(rawShares, headerParams.SssT)
	if err != nil {
		switch {
		case errors.Is(err, shamir.ErrInsufficientShares):
			err = sbkerrors.ErrInsufficientShares
		case errors.Is(err, shamir.ErrDuplicateX):
			err = sbkerrors.ErrDuplicateX
		case errors.Is(err, shamir.ErrForcedSecret):
			err = sbkerrors.ErrForcedSecret
		}
		return nil, nil, err
	}
	defer zero(masterKey)

	if rawSaltLen <= 0 || rawSaltLen >= len(masterKey) {
		return nil, nil, sbkerrors.ErrInvalidInput
	}

	return securemem.FromSlice(masterKey[:rawSaltLen]), securemem.FromSlice(masterKey[rawSaltLen:]), nil
}

// ValidateWalletName reports whether name matches spec.md §4.9's grammar.
func ValidateWalletName(name string) error {
	if !walletNamePattern.MatchString(name) {
		return sbkerrors.ErrInvalidInput
	}
	return nil
}

// DeriveWalletSeed composes kdf_input = raw_salt || brainkey ||
// wallet_name and runs it through the KDF to yield a 32-byte seed.
func DeriveWalletSeed(ctx context.Context, rawSalt, brainKey *securemem.Bytes, walletName string, p params.Parameters, progress kdf.ProgressFunc) ([]byte, error) {
	if walletName == "" {
		walletName = DefaultWalletName
	}
	if err := ValidateWalletName(walletName); err != nil {
		return nil, err
	}

	input := make([]byte, 0, rawSalt.Len()+brainKey.Len()+len(walletName))
	input = append(input, rawSalt.Bytes()...)
	input = append(input, brainKey.Bytes()...)
	input = append(input, walletName...)
	defer zero(input)

	return kdf.Digest(ctx, input, p, 32, progress)
}

func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
