// Package errors defines the errors of a compoundword run and the helpers
// the command uses to classify them.
//
// A run fails at its edges only:
//   - DictionaryError: the word list could not be opened or read (fatal)
//   - OutputError: the compound-word file could not be written (recoverable)
//
// ValidationError covers bad settings and malformed words handed to the
// trie directly. The trie and resolver never fail on a loaded dictionary.
//
//	err := errors.NewDictionaryError("cannot open word list", cause).WithPath("words.txt")
//	if errors.Is(err, errors.ErrInputUnavailable) { ... }
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Re-export standard library functions so callers import a single package.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity ranks how far an error gets in stopping a run.
type Severity int

const (
	// SeverityNone is reported for a nil error.
	SeverityNone Severity = iota
	// SeverityWarning is for errors the run recovers from.
	SeverityWarning
	// SeverityError is for errors of unknown origin.
	SeverityError
	// SeverityCritical is for errors that abort the run.
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityNone:
		return "none"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

var (
	// ErrInputUnavailable indicates that the dictionary file could not be opened or read.
	ErrInputUnavailable = New("input unavailable")
	// ErrOutputUnavailable indicates that the output file could not be created or written.
	ErrOutputUnavailable = New("output unavailable")
	// ErrInvalidWord indicates a word that is empty or holds bytes outside a-z.
	ErrInvalidWord = New("invalid word")
	// ErrLineTooLong indicates a dictionary line longer than the configured limit.
	ErrLineTooLong = New("line too long")
	// ErrCanceled indicates that a run was canceled before it finished.
	ErrCanceled = New("operation canceled")
	// ErrInvalidInput indicates that a setting or argument failed validation.
	ErrInvalidInput = New("invalid input")
)

// classified is implemented by every error type of this package.
type classified interface {
	error
	Severity() Severity
	IsUserFacing() bool
}

// baseError carries what the typed errors share. kind is the message
// prefix, and sentinel is the error every value of the type matches.
type baseError struct {
	kind       string
	message    string
	cause      error
	sentinel   error
	severity   Severity
	userFacing bool
}

// format renders "kind [k=v, ...]: message: cause", leaving out empty parts.
func (e *baseError) format(context ...string) string {
	var b strings.Builder
	b.WriteString(e.kind)
	if len(context) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(context, ", "))
	}
	b.WriteString(": ")
	b.WriteString(e.message)
	if e.cause != nil {
		fmt.Fprintf(&b, ": %v", e.cause)
	}
	return b.String()
}

func (e *baseError) Error() string {
	return e.format()
}

func (e *baseError) Unwrap() error {
	return e.cause
}

// matches reports whether target is the type's sentinel or matches the cause.
func (e *baseError) matches(target error) bool {
	if e.sentinel != nil && target == e.sentinel {
		return true
	}
	return e.cause != nil && errors.Is(e.cause, target)
}

func (e *baseError) Severity() Severity {
	return e.severity
}

func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// DictionaryError is a failure to load the word list. It always matches
// ErrInputUnavailable and aborts the run.
//
//	errors.NewDictionaryError("cannot open word list", os.ErrNotExist).WithPath("words.txt")
//	// dictionary error [path=words.txt]: cannot open word list: file does not exist
type DictionaryError struct {
	baseError
	Path string
	// Line is the 1-based line being read, zero when unknown.
	Line int
}

// NewDictionaryError creates a new DictionaryError.
func NewDictionaryError(message string, cause error) *DictionaryError {
	return &DictionaryError{baseError: baseError{
		kind:       "dictionary error",
		message:    message,
		cause:      cause,
		sentinel:   ErrInputUnavailable,
		severity:   SeverityCritical,
		userFacing: true,
	}}
}

// WithPath records the dictionary path.
func (e *DictionaryError) WithPath(path string) *DictionaryError {
	e.Path = path
	return e
}

// WithLine records the line being read.
func (e *DictionaryError) WithLine(line int) *DictionaryError {
	e.Line = line
	return e
}

func (e *DictionaryError) Error() string {
	var context []string
	if e.Path != "" {
		context = append(context, "path="+e.Path)
	}
	if e.Line > 0 {
		context = append(context, fmt.Sprintf("line=%d", e.Line))
	}
	return e.format(context...)
}

func (e *DictionaryError) Is(target error) bool {
	if _, ok := target.(*DictionaryError); ok {
		return true
	}
	return e.matches(target)
}

// OutputError is a failure to write the compound-word list. It always
// matches ErrOutputUnavailable; the run goes on without the file.
type OutputError struct {
	baseError
	Path string
}

// NewOutputError creates a new OutputError.
func NewOutputError(message string, cause error) *OutputError {
	return &OutputError{baseError: baseError{
		kind:       "output error",
		message:    message,
		cause:      cause,
		sentinel:   ErrOutputUnavailable,
		severity:   SeverityWarning,
		userFacing: true,
	}}
}

// WithPath records the output path.
func (e *OutputError) WithPath(path string) *OutputError {
	e.Path = path
	return e
}

func (e *OutputError) Error() string {
	if e.Path == "" {
		return e.format()
	}
	return e.format("path=" + e.Path)
}

func (e *OutputError) Is(target error) bool {
	if _, ok := target.(*OutputError); ok {
		return true
	}
	return e.matches(target)
}

// ValidationError is an invalid setting, argument or word. It always
// matches ErrInvalidInput.
//
//	errors.NewValidationError("word holds a byte outside a-z").WithField("word").WithValue("cat-dog")
type ValidationError struct {
	baseError
	Field string
	Value any
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{baseError: baseError{
		kind:       "validation error",
		message:    message,
		sentinel:   ErrInvalidInput,
		severity:   SeverityWarning,
		userFacing: true,
	}}
}

// WithField records the offending field.
func (e *ValidationError) WithField(field string) *ValidationError {
	e.Field = field
	return e
}

// WithValue records the offending value.
func (e *ValidationError) WithValue(value any) *ValidationError {
	e.Value = value
	return e
}

// WithCause records the underlying error.
func (e *ValidationError) WithCause(cause error) *ValidationError {
	e.cause = cause
	return e
}

func (e *ValidationError) Error() string {
	var context []string
	if e.Field != "" {
		context = append(context, "field="+e.Field)
	}
	if e.Value != nil {
		context = append(context, fmt.Sprintf("value=%v", e.Value))
	}
	return e.format(context...)
}

func (e *ValidationError) Is(target error) bool {
	if _, ok := target.(*ValidationError); ok {
		return true
	}
	return e.matches(target)
}

// IsUserFacing reports whether err, or an error it wraps, carries a
// message meant for the person running the command. Errors of unknown
// origin, such as a canceled context, are not.
func IsUserFacing(err error) bool {
	var c classified
	return err != nil && As(err, &c) && c.IsUserFacing()
}

// GetSeverity returns the severity of err. Errors not defined here are
// SeverityError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityNone
	}
	var c classified
	if As(err, &c) {
		return c.Severity()
	}
	return SeverityError
}

// IsFatal reports whether err must stop the run.
func IsFatal(err error) bool {
	return GetSeverity(err) >= SeverityError
}

// Wrap prefixes err with message, keeping it matchable. Wrap(nil) is nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
