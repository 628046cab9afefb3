package kdf

import (
	"math"
	"time"

	"golang.org/x/crypto/argon2"

	"github.com/sbk-go/sbk/internal/params"
)

// significanceThreshold is the minimum single-probe wall time before a
// measurement is trusted to extrapolate from; below this, timer noise
// and scheduling jitter dominate.
const significanceThreshold = 2 * time.Second

// probeGrowthFactor is the minimum per-step growth in test_t between
// calibration probes, per spec.md §4.7.
const probeGrowthFactor = 1.25

// marginFactor discounts the projected target so the calibrated
// parameters land comfortably under target_seconds rather than at it,
// absorbing host-to-host timing variance.
const marginFactor = 0.75

// Calibrate measures one or more Argon2id probes at baseline.KdfM and
// projects a kdf_t that takes approximately targetSeconds, requantized
// to the log-scale codomain. It probes with increasing test_t until a
// probe exceeds significanceThreshold or maxCalibrationTime elapses,
// at which point it projects from the best (most significant) probe
// measured so far.
func Calibrate(baseline params.Parameters, targetSeconds float64, maxCalibrationTime time.Duration) params.Parameters {
	calibrationDeadline := time.Now().Add(maxCalibrationTime)

	testT := 1
	var bestElapsed time.Duration
	var bestT int

	for {
		start := time.Now()
		probeOnce(baseline.KdfM, testT)
		elapsed := time.Since(start)

		if elapsed > bestElapsed {
			bestElapsed = elapsed
			bestT = testT
		}

		if elapsed >= significanceThreshold || time.Now().After(calibrationDeadline) {
			break
		}

		testT = int(math.Ceil(float64(testT) * probeGrowthFactor))
		if testT <= bestT {
			testT = bestT + 1
		}
	}

	secondsPerIteration := bestElapsed.Seconds() / float64(bestT)
	if secondsPerIteration <= 0 {
		secondsPerIteration = 1e-9
	}

	newT := int((targetSeconds * marginFactor) / secondsPerIteration)
	if newT < 1 {
		newT = 1
	}

	result := baseline
	result.KdfT = newT
	return params.Normalize(result)
}

func probeOnce(kdfM, testT int) []byte {
	data := []byte("sbk-calibration-probe")
	return argon2.IDKey(data, data, uint32(testT), uint32(kdfM)*1024, Parallelism, intermediateHashLen)
}
