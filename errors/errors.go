package errors

import "fmt"

var (
	ErrEmptyMessage     = fmt.Errorf("message is empty")
	ErrMessageTooLong   = fmt.Errorf("message exceeds maximum length")
	ErrInvalidIdentity  = fmt.Errorf("no identity supplied")
	ErrStoreUnavailable = fmt.Errorf("store unavailable")
	ErrClassifier       = fmt.Errorf("classifier failure")
	ErrMalformedVerdict = fmt.Errorf("malformed classifier verdict")
)
