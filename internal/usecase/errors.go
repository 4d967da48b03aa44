package usecase

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrClaimNotFound       = errors.New("claim not found")
	ErrTransactionNotFound = errors.New("transaction not found")
)

// ValidationError lists the offending request fields, keyed by JSON name
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}
