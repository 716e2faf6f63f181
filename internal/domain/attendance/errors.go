package attendance

import "errors"

var (
	ErrSheetNotFound = errors.New("attendance sheet not found")
	ErrInvalidStatus = errors.New("invalid attendance status")
)
