package core

import "fmt"

// ClientError is a type for errors that occur in the client package.
// It is a string that can be formatted with arguments. It avoids to
// repeat the error message formatted in the client code.
type ClientError string

const (
	ErrFailedToUnmarshalResponse ClientError = "failed to unmarshal response %s"
	ErrFailedToMarshalBody       ClientError = "failed to marshal request body %s"
	ErrFailedToReadResponseBody  ClientError = "failed to read response body %s"

	ErrFailedToBuildRequest ClientError = "failed to build request %s"
	ErrFailedToParseURL     ClientError = "failed to parse URL %s"
)

// WithArgs returns a new error with the given arguments.
func (e ClientError) WithArgs(args ...any) error {
	return fmt.Errorf(string(e), args...)
}
