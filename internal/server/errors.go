package server

// ErrorKind classifies the recoverable failures of room operations.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota
	KindConflict
	KindForbidden
	KindInvalidState
)

type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func errNotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func errConflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func errForbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func errInvalidState(message string) *Error {
	return &Error{Kind: KindInvalidState, Message: message}
}
