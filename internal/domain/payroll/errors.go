package payroll

import "errors"

var (
	ErrSettingsNotFound = errors.New("payroll settings not found")
	ErrWorkNormNotFound = errors.New("work norm not found for this period")
	ErrRecordNotFound   = errors.New("payroll record not found")
	ErrInvalidPeriod    = errors.New("invalid payroll period")
)
