package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an error into the client-side taxonomy. The kind is
// stable and machine-readable; handlers map it to HTTP statuses and the
// coordinator uses it to decide what survives a failed operation.
type Kind string

const (
	// KindWalletUnavailable means no signing key / provider is configured.
	// The only fatal kind: a session cannot connect without a wallet.
	KindWalletUnavailable Kind = "wallet_unavailable"

	// KindRegistryUnavailable means a registry read pass failed and the
	// caller received a fallback (empty) result instead of a torn view.
	KindRegistryUnavailable Kind = "registry_unavailable"

	// KindPreconditionFailed means local re-validation caught a stale or
	// ineligible action before any ledger call was made.
	KindPreconditionFailed Kind = "precondition_failed"

	// KindInvalidAmount means a monetary or duration input failed exact
	// parsing; nothing was submitted.
	KindInvalidAmount Kind = "invalid_amount"

	// KindInvalidAddress means an address input is not a valid hex address;
	// nothing was submitted.
	KindInvalidAddress Kind = "invalid_address"

	// KindTxRejected means the ledger rejected or reverted the call. Local
	// state is unchanged.
	KindTxRejected Kind = "tx_rejected"

	// KindPartialGovernanceFailure means a factory redeployment succeeded
	// partway: a new factory exists on chain but the minter rotation or the
	// pointer switch did not complete. Requires operator intervention and
	// must never be auto-retried.
	KindPartialGovernanceFailure Kind = "partial_governance_failure"
)

// Error carries a taxonomy kind together with the attempted operation and
// the underlying cause.
type Error struct {
	Kind Kind
	Op   string // attempted operation, e.g. "contribute", "deploy_factory"
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.Msg != "":
		return fmt.Sprintf("%s: %s (%s): %v", e.Op, e.Msg, e.Kind, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s (%s): %v", e.Op, e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: %s (%s)", e.Op, e.Msg, e.Kind)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a classified error with a message and no underlying cause.
func New(kind Kind, op, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying error.
func Wrap(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// KindOf extracts the taxonomy kind from an error chain. Unclassified
// errors report an empty kind.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsKind reports whether the error chain carries the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
