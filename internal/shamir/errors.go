package shamir

import "errors"

var (
	// ErrThresholdInvalid is returned when T < 2.
	ErrThresholdInvalid = errors.New("shamir: threshold T must be at least 2")

	// ErrSharesInsufficient is returned when N < T.
	ErrSharesInsufficient = errors.New("shamir: total shares N must be at least T")

	// ErrSharesExceedMax is returned when N > 255.
	ErrSharesExceedMax = errors.New("shamir: total shares N cannot exceed 255")

	// ErrSecretEmpty is returned when the secret is empty.
	ErrSecretEmpty = errors.New("shamir: secret cannot be empty")

	// ErrNoShares is returned when no shares are provided to Join.
	ErrNoShares = errors.New("shamir: no shares provided")

	// ErrForcedSecret is returned when a share has x=0 (the secret's
	// own constant term), which would let a crafted share reveal the
	// polynomial directly rather than requiring a genuine quorum.
	ErrForcedSecret = errors.New("shamir: share has x=0 (forced-secret attack)")

	// ErrDuplicateX is returned when two shares share the same x.
	ErrDuplicateX = errors.New("shamir: duplicate share index")

	// ErrLengthMismatch is returned when shares carry differing ys lengths.
	ErrLengthMismatch = errors.New("shamir: shares have mismatched lengths")

	// ErrInsufficientShares is returned when fewer than T distinct
	// valid shares are supplied to Join.
	ErrInsufficientShares = errors.New("shamir: insufficient shares")
)
