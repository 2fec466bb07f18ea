package tracker

import "errors"

// Kind classifies failures surfaced by the tracker.
type Kind string

const (
	// ConfigurationError means required options are blank.
	ConfigurationError Kind = "configuration_error"
	// RemoteTransportError covers network, HTTP and authentication failures.
	RemoteTransportError Kind = "remote_transport_error"
	// RemoteValidationError means Jira accepted the request but rejected its field values.
	RemoteValidationError Kind = "remote_validation_error"
)

const (
	msgMissingValues  = "You must specify all non optional values!"
	msgCouldNotCreate = "Could not create an issue. Please check your credentials."
)

// Error is a typed error that is safe to show to end users.
// Transport details are never attached to it.
type Error struct {
	Kind    Kind
	Field   string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// IsKind reports whether err is a tracker error of the given kind.
func IsKind(err error, kind Kind) bool {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind == kind
	}
	return false
}

func configurationError(field, message string) *Error {
	return &Error{Kind: ConfigurationError, Field: field, Message: message}
}
