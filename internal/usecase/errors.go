package usecase

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorKind classifies why an operation was rejected.
type ErrorKind string

const (
	KindNotFound            ErrorKind = "NOT_FOUND"
	KindUnknownPatient      ErrorKind = "UNKNOWN_PATIENT"
	KindUnknownDoctor       ErrorKind = "UNKNOWN_DOCTOR"
	KindDuplicateIdentifier ErrorKind = "DUPLICATE_IDENTIFIER"
	KindInvalidDate         ErrorKind = "INVALID_DATE"
	KindInvalidDateTime     ErrorKind = "INVALID_DATE_TIME"
	KindHasDependents       ErrorKind = "HAS_DEPENDENTS"
	KindStorageFailure      ErrorKind = "STORAGE_FAILURE"
)

// Error is the failure value returned by every usecase operation.
// Message is meant to be shown to the user as-is.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return strings.ToLower(strings.ReplaceAll(string(e.Kind), "_", " "))
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is makes every Error match the sentinel of its kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Err == nil && t.Kind == e.Kind
}

var (
	ErrNotFound            = &Error{Kind: KindNotFound}
	ErrUnknownPatient      = &Error{Kind: KindUnknownPatient}
	ErrUnknownDoctor       = &Error{Kind: KindUnknownDoctor}
	ErrDuplicateIdentifier = &Error{Kind: KindDuplicateIdentifier}
	ErrInvalidDate         = &Error{Kind: KindInvalidDate}
	ErrInvalidDateTime     = &Error{Kind: KindInvalidDateTime}
	ErrHasDependents       = &Error{Kind: KindHasDependents}
	ErrStorageFailure      = &Error{Kind: KindStorageFailure}
)

// KindOf returns the kind of err, or "" when err is not a usecase error.
func KindOf(err error) ErrorKind {
	var ue *Error
	if errors.As(err, &ue) {
		return ue.Kind
	}
	return ""
}

func notFound(entityName string, id int) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s with id %d not found", entityName, id)}
}

func unknownPatient(id int) error {
	return &Error{Kind: KindUnknownPatient, Message: fmt.Sprintf("no patient exists with id %d", id)}
}

func unknownDoctor(id int) error {
	return &Error{Kind: KindUnknownDoctor, Message: fmt.Sprintf("no doctor exists with id %d", id)}
}

func duplicateNationalID(nationalID string) error {
	return &Error{Kind: KindDuplicateIdentifier, Message: fmt.Sprintf("a patient with national id %s already exists", nationalID)}
}

func invalidDate(err error) error {
	return &Error{Kind: KindInvalidDate, Message: "invalid date format, use DD-MM-YYYY", Err: err}
}

func invalidDateTime(err error) error {
	return &Error{Kind: KindInvalidDateTime, Message: "invalid date and time format, use DD-MM-YYYY HH:MM", Err: err}
}

func hasDependents(entityName string, id int, count int64) error {
	return &Error{
		Kind:    KindHasDependents,
		Message: fmt.Sprintf("%s with id %d has %d registered appointment(s) and cannot be deleted", entityName, id, count),
	}
}

func storageFailure(op string, err error) error {
	return &Error{Kind: KindStorageFailure, Message: fmt.Sprintf("failed to %s: storage failure", op), Err: err}
}

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation
// on a constraint whose name contains constraintName
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		return pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName))
	}
	return false
}

// isForeignKeyError checks if the error is a PostgreSQL foreign key violation
// on a constraint whose name contains constraintName
func isForeignKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23503 = foreign_key_violation
		return pgErr.Code == "23503" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName))
	}
	return false
}
