package remote

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrRemoteOperationFailed matches every failed round trip with errors.Is.
	ErrRemoteOperationFailed = errors.New("remote operation failed")
	// ErrNotFound additionally matches failures where the endpoint answered 404.
	ErrNotFound = errors.New("remote: resource not found")
)

// Operation names the attempted round trip.
type Operation string

const (
	OpList   Operation = "list"
	OpGet    Operation = "get"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// OperationError is the single failure kind of the client. It carries the
// attempted operation, the HTTP status when one was received, and the
// underlying transport or decode error.
type OperationError struct {
	Op     Operation
	ID     string
	Status int
	Body   string
	Err    error
}

func (e *OperationError) Error() string {
	msg := fmt.Sprintf("remote: %s", e.Op)
	if e.ID != "" {
		msg = fmt.Sprintf("%s %s", msg, e.ID)
	}
	msg = fmt.Sprintf("%s: %v", msg, ErrRemoteOperationFailed)
	if e.Status > 0 {
		msg = fmt.Sprintf("%s (HTTP %d)", msg, e.Status)
	}
	if e.Body != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Body)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() []error {
	errs := []error{ErrRemoteOperationFailed}
	if e.Status == http.StatusNotFound {
		errs = append(errs, ErrNotFound)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// IsNotFound reports whether err is a remote 404.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
