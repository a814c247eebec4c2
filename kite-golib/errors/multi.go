package errors

import (
	"fmt"
	"strings"
)

// Errors is a non-empty list of errors. A nil Errors means there were no
// errors, so callers compare against nil as they would for a single error.
type Errors interface {
	error
	// Slice returns a copy of the underlying errors
	Slice() []error
	// Len is always > 0
	Len() int

	list() errorList
}

type errorList []error

func (l errorList) list() errorList { return l }

func (l errorList) Slice() []error { return append([]error(nil), l...) }

func (l errorList) Len() int { return len(l) }

func (l errorList) Error() string {
	parts := make([]string, len(l))
	for i, err := range l {
		parts[i] = err.Error()
	}
	return strings.Join(parts, "\n")
}

// Append appends a possibly nil error to a possibly nil Errors. Appending an
// Errors appends each of its members.
func Append(errs Errors, err error) Errors {
	if err == nil {
		return errs
	}
	var out errorList
	if errs != nil {
		// copy so that appending never aliases another list's backing array
		out = append(out, errs.list()...)
	}
	if multi, ok := err.(Errors); ok {
		return append(out, multi.list()...)
	}
	return append(out, err)
}

// Combine merges two possibly nil errors
func Combine(e, f error) error {
	var errs Errors
	errs = Append(errs, e)
	errs = Append(errs, f)
	if errs == nil {
		return nil
	}
	if errs.Len() == 1 {
		return errs.list()[0]
	}
	return errs
}

// Summary describes err on one line, listing at most max members of an Errors
func Summary(err error, max int) string {
	multi, ok := err.(Errors)
	if !ok {
		if err == nil {
			return ""
		}
		return err.Error()
	}
	list := multi.list()
	var parts []string
	for i, e := range list {
		if i == max {
			break
		}
		parts = append(parts, e.Error())
	}
	s := strings.Join(parts, "; ")
	if len(list) > max {
		s += fmt.Sprintf(" (and %d more)", len(list)-max)
	}
	return s
}
