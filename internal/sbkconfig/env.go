package sbkconfig

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sbk-go/sbk/internal/randsrc"
)

// Environment variable names, per spec.md §6's "Environment knobs".
const (
	EnvDebugRawSaltLen  = "SBK_DEBUG_RAW_SALT_LEN"
	EnvDebugBrainKeyLen = "SBK_DEBUG_BRAINKEY_LEN"
	EnvKdfTTarget       = "SBK_KDF_T_TARGET"
	EnvKdfMPercent      = "SBK_KDF_M_PERCENT"
	EnvThreshold        = "SBK_THRESHOLD"
	EnvNumShares        = "SBK_NUM_SHARES"
	EnvMinEntropy       = "SBK_MIN_ENTROPY"
	EnvDebugRNGSeed     = "SBK_DEBUG_RNG_SEED"
	EnvOutputFormat     = "SBK_OUTPUT_FORMAT"
	EnvVerbose          = "SBK_VERBOSE"
	EnvLogLevel         = "SBK_LOG_LEVEL"
	EnvNoColor          = "NO_COLOR"
)

// Debug holds the debug-only overrides applied by ApplyEnvironment.
// None of these affect the on-wire format. ApplyEnvironment only
// collects them; nothing in this package applies them to Create or to
// calibration.
type Debug struct {
	RawSaltLen  int
	BrainKeyLen int
	MinEntropy  int
	RNGSeed     int64
	HasRNGSeed  bool
}

// Getenv abstracts os.Getenv so tests can supply a fake environment
// without mutating process state.
type Getenv func(key string) (string, bool)

// ApplyEnvironment overlays SBK_* environment variables onto cfg and
// returns the Debug overrides collected along the way. Invalid KDF and
// scheme values are recorded in cfg.Warnings and otherwise ignored,
// mirroring the teacher's "log warning, keep going" tolerance for bad
// env input; invalid debug values are ignored without a warning.
func ApplyEnvironment(cfg *Config, getenv Getenv) Debug {
	var dbg Debug

	if v, ok := getenv(EnvKdfTTarget); ok && v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.KDF.TargetSeconds = f
		} else {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("%s: invalid float %q", EnvKdfTTarget, v))
		}
	}

	if v, ok := getenv(EnvKdfMPercent); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			cfg.KDF.MemoryPercent = n
		} else {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("%s: invalid percent %q", EnvKdfMPercent, v))
		}
	}

	if v, ok := getenv(EnvThreshold); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 2 {
			cfg.Scheme.Threshold = n
		} else {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("%s: invalid threshold %q", EnvThreshold, v))
		}
	}

	if v, ok := getenv(EnvNumShares); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			cfg.Scheme.Shares = n
		} else {
			cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("%s: invalid share count %q", EnvNumShares, v))
		}
	}

	if v, ok := getenv(EnvDebugRawSaltLen); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			dbg.RawSaltLen = n
		}
	}

	if v, ok := getenv(EnvDebugBrainKeyLen); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			dbg.BrainKeyLen = n
		}
	}

	if v, ok := getenv(EnvMinEntropy); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			dbg.MinEntropy = n
		}
	}

	// SBK_DEBUG_RNG_SEED only takes effect when the embedding program
	// has already opted in via randsrc.AllowDebugRNG — the env var
	// alone can never flip a release binary into determinism.
	if v, ok := getenv(EnvDebugRNGSeed); ok && v != "" && randsrc.AllowDebugRNG {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			dbg.RNGSeed = seed
			dbg.HasRNGSeed = true
		}
	}

	if v, ok := getenv(EnvOutputFormat); ok && v != "" {
		cfg.Output.DefaultFormat = strings.ToLower(v)
	}

	if v, ok := getenv(EnvVerbose); ok && v != "" {
		cfg.Output.Verbose = parseBool(v)
	}

	if v, ok := getenv(EnvLogLevel); ok && v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}

	if _, ok := getenv(EnvNoColor); ok {
		cfg.Output.Color = "never"
	}

	return dbg
}

func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "1" || s == "true" || s == "yes" || s == "on" {
		return true
	}
	b, _ := strconv.ParseBool(s)
	return b
}
