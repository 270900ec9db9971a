// Package errors defines the error types shared across the bot's upstream
// clients and services. Fetch failures are categorized so callers can decide
// between "treat as absent" and "tell the user".
package errors

import (
	"errors"
	"fmt"
)

// Kind categorizes an upstream fetch failure.
type Kind string

const (
	// KindTransport covers unreachable hosts, TLS failures and timeouts.
	KindTransport Kind = "transport"
	// KindDecode covers malformed JSON and schema mismatches.
	KindDecode Kind = "decode"
)

// FetchError is an upstream call failure with its category attached.
type FetchError struct {
	Kind Kind
	Op   string // upstream operation, e.g. "wargaming.account_list"
	Err  error
}

func (e *FetchError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("fetch error kind=%s op=%s", e.Kind, e.Op)
	}
	return fmt.Sprintf("fetch error kind=%s op=%s: %v", e.Kind, e.Op, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Transport wraps a network-level failure.
func Transport(op string, cause error) *FetchError {
	return &FetchError{Kind: KindTransport, Op: op, Err: cause}
}

// Decode wraps a JSON or schema failure.
func Decode(op string, cause error) *FetchError {
	return &FetchError{Kind: KindDecode, Op: op, Err: cause}
}

// KindOf returns the category of err, or "" when err is not a FetchError.
func KindOf(err error) Kind {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}

// IsTransport reports whether err is a transport-kind fetch error.
func IsTransport(err error) bool { return KindOf(err) == KindTransport }

// IsDecode reports whether err is a decode-kind fetch error.
func IsDecode(err error) bool { return KindOf(err) == KindDecode }
