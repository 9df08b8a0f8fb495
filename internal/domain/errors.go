package domain

import (
	"errors"
	"fmt"
)

// FetchError marks a failed live-catalog fetch. It is always recovered
// by falling back to the static catalog and never reaches a response.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("fetch %s failed", e.Op)
}

func (e *FetchError) Unwrap() error { return e.Err }

func IsFetchError(err error) bool {
	var target *FetchError
	return errors.As(err, &target)
}
