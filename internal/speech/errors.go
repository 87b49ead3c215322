package speech

import (
	"fmt"
	"github.com/myrjola/smartcop/internal/bhashini"
	"github.com/myrjola/smartcop/internal/errors"
)

// ErrSpeech matches every [ProviderError] with errors.Is.
var ErrSpeech = errors.NewSentinel("speech provider error")

// ErrorKind classifies recognition failures by how the caller should react.
type ErrorKind string

const (
	// KindPermissionDenied requires the user to grant microphone access again.
	KindPermissionDenied ErrorKind = "permission-denied"
	// KindNoSpeech is transient and listening restarts automatically.
	KindNoSpeech ErrorKind = "no-speech"
	// KindAborted is transient and listening restarts automatically.
	KindAborted ErrorKind = "aborted"
	// KindNetwork stops listening until the user retries.
	KindNetwork ErrorKind = "network"
	// KindUnavailable means no recognition service is configured. Retrying cannot help, the user has to type.
	KindUnavailable ErrorKind = "unavailable"
	KindUnknown     ErrorKind = "unknown"
)

type ProviderError struct {
	Kind ErrorKind `json:"kind"`
	// Code is the provider specific error code the kind was derived from.
	Code string `json:"code"`
}

func (e *ProviderError) Error() string {
	if e.Code == "" || e.Code == string(e.Kind) {
		return fmt.Sprintf("speech provider error: %s", e.Kind)
	}
	return fmt.Sprintf("speech provider error: %s (%s)", e.Kind, e.Code)
}

func (e *ProviderError) Unwrap() error {
	return ErrSpeech
}

// Retryable reports whether listening should restart without user action.
func (e *ProviderError) Retryable() bool {
	return e.Kind == KindNoSpeech || e.Kind == KindAborted
}

// Fatal reports whether listening must stop until the user intervenes.
func (e *ProviderError) Fatal() bool {
	return !e.Retryable()
}

// Classify maps a recognizer error code, such as those of the Web Speech API, to a [ProviderError].
func Classify(code string) *ProviderError {
	kind := KindUnknown
	switch code {
	case "not-allowed", "permission-denied", "service-not-allowed", "audio-capture":
		kind = KindPermissionDenied
	case "no-speech":
		kind = KindNoSpeech
	case "aborted":
		kind = KindAborted
	case "network":
		kind = KindNetwork
	case "service-unavailable":
		kind = KindUnavailable
	}
	return &ProviderError{Kind: kind, Code: code}
}

// FromError maps an error returned by a [Recognizer] to a [ProviderError]. Errors that carry no classification are
// treated as network failures.
func FromError(err error) *ProviderError {
	if err == nil {
		return nil
	}
	var providerErr *ProviderError
	switch {
	case errors.As(err, &providerErr):
		return providerErr
	case errors.Is(err, bhashini.ErrNotConfigured):
		return &ProviderError{Kind: KindUnavailable, Code: "bhashini-not-configured"}
	default:
		return &ProviderError{Kind: KindNetwork, Code: "recognize"}
	}
}
