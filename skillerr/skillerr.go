// SPDX-FileCopyrightText: Copyright 2026 Skillmesh, Inc.
// SPDX-License-Identifier: Apache-2.0

// Package skillerr provides the closed error taxonomy for the skill
// marketplace subsystem. Every failure crossing a component boundary is
// classified with a Kind so that callers can react without string matching.
package skillerr

import (
	"errors"
	"fmt"
)

// Kind identifies the class of a marketplace error.
type Kind string

const (
	// KindProviderUnavailable means no wallet capability is present in the environment.
	KindProviderUnavailable Kind = "provider_unavailable"
	// KindUserRejected means the user declined an authorization prompt.
	KindUserRejected Kind = "user_rejected"
	// KindNotConnected means an operation was attempted with no active session.
	KindNotConnected Kind = "not_connected"
	// KindValidation means an input failed local validation before any network call.
	KindValidation Kind = "validation"
	// KindReverted means the registry rejected the call during execution.
	KindReverted Kind = "reverted"
	// KindNetwork means a transport or node failure.
	KindNetwork Kind = "network"
	// KindDuplicateInFlight means a mutation on the same resource is already outstanding.
	KindDuplicateInFlight Kind = "duplicate_in_flight"
	// KindConfig means the subsystem is misconfigured (e.g. no registry address).
	KindConfig Kind = "config"
)

// KindedError wraps an error with a taxonomy Kind.
// This allows errors to carry their classification through the call stack,
// enabling centralized handling at the operation boundary.
type KindedError struct {
	err    error
	kind   Kind
	reason string
}

// Error implements the error interface.
func (e *KindedError) Error() string {
	return e.err.Error()
}

// Unwrap returns the underlying error for errors.Is() and errors.As() compatibility.
func (e *KindedError) Unwrap() error {
	return e.err
}

// Kind returns the taxonomy kind associated with this error.
func (e *KindedError) Kind() Kind {
	return e.kind
}

// Reason returns the registry-provided reason text, if any.
// It is only populated for KindReverted errors and is preserved verbatim.
func (e *KindedError) Reason() string {
	return e.reason
}

// WithKind wraps an error with a taxonomy kind.
// The returned error implements Unwrap() for use with errors.Is() and errors.As().
// If err is nil, WithKind returns nil.
func WithKind(err error, kind Kind) error {
	if err == nil {
		return nil
	}
	return &KindedError{err: err, kind: kind}
}

// New creates a new error with the given message and kind.
// This is a convenience function equivalent to WithKind(errors.New(message), kind).
func New(message string, kind Kind) error {
	return &KindedError{err: errors.New(message), kind: kind}
}

// Newf creates a new kinded error from a format string.
func Newf(kind Kind, format string, args ...any) error {
	return &KindedError{err: fmt.Errorf(format, args...), kind: kind}
}

// Reverted creates a KindReverted error carrying the registry's reason text.
// The reason is preserved verbatim; when the registry gave none, a generic
// message is used instead.
func Reverted(reason string) error {
	msg := reason
	if msg == "" {
		msg = "transaction reverted"
	}
	return &KindedError{err: errors.New(msg), kind: KindReverted, reason: reason}
}

// KindOf extracts the taxonomy kind from an error.
// It unwraps the error chain looking for a KindedError.
// Unclassified errors are reported as KindNetwork, since anything that
// escaped local classification came back from the transport boundary.
func KindOf(err error) Kind {
	var kinded *KindedError
	if errors.As(err, &kinded) {
		return kinded.kind
	}
	return KindNetwork
}

// IsKind reports whether err carries the given taxonomy kind.
// A nil error matches no kind.
func IsKind(err error, kind Kind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == kind
}

// ReasonOf extracts the preserved revert reason from an error, if present.
func ReasonOf(err error) string {
	var kinded *KindedError
	if errors.As(err, &kinded) {
		return kinded.reason
	}
	return ""
}
