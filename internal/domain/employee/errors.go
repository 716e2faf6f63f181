package employee

import "errors"

var (
	ErrEmployeeNotFound          = errors.New("employee not found")
	ErrEmployeeAlreadyTerminated = errors.New("employee is already terminated")
	ErrInvalidCompensation       = errors.New("employee needs either a positive rate or a base salary")
)
