package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCredential = errors.New("no API token found")
	ErrInvalidType       = errors.New("invalid record type")
	ErrEmptyValue        = errors.New("empty value")
	ErrRequired          = errors.New("required field missing")

	ErrZoneNotFound    = errors.New("zone not found")
	ErrRecordNotFound  = errors.New("DNS record not found")
	ErrAmbiguousRecord = errors.New("multiple DNS records match")
	ErrInvalidResponse = errors.New("invalid response from provider")
	ErrPageLimit       = errors.New("pagination did not converge")

	ErrConfigReadFailed  = errors.New("config read failed")
	ErrConfigParseFailed = errors.New("config parse failed")
	ErrExportWriteFailed = errors.New("export write failed")
)

func RequiredField(field string) error {
	return fmt.Errorf("%w: %s", ErrRequired, field)
}

func WrapOp(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}

type OpError struct {
	Op    string
	Cause error
}

func (e *OpError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *OpError) Unwrap() error {
	return e.Cause
}

func NewOpError(op string, cause error) error {
	return &OpError{Op: op, Cause: cause}
}
