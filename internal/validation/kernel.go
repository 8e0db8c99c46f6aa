// Package validation implements the accumulating MTB-file validator: a
// small kernel of severity-graded assertions, one validator per entity
// kind, and the file-level traversal under the consent gate. Validation
// findings are values, never Go errors; the traversal collects every
// defect of a file into a single ordered issue list.
package validation

import (
	"github.com/mtb-intake-service/internal/domain"
)

// Outcome accumulates validation issues. The zero value is valid; combining
// outcomes concatenates their issue lists left to right.
type Outcome struct {
	Issues []domain.Issue
}

// Valid returns an outcome without issues.
func Valid() Outcome { return Outcome{} }

// IsValid reports whether no issue was collected.
func (o Outcome) IsValid() bool { return len(o.Issues) == 0 }

// And concatenates the issues of both outcomes, left before right.
func (o Outcome) And(others ...Outcome) Outcome {
	issues := o.Issues
	for _, other := range others {
		issues = append(issues, other.Issues...)
	}
	return Outcome{Issues: issues}
}

// AndThen runs f only if no issue has been collected so far, for checks
// that presuppose an earlier one passed.
func (o Outcome) AndThen(f func() Outcome) Outcome {
	if !o.IsValid() {
		return o
	}
	return o.And(f())
}

// OrElse succeeds if either outcome does; if both fail the issues are
// concatenated.
func (o Outcome) OrElse(f func() Outcome) Outcome {
	if o.IsValid() {
		return o
	}
	alt := f()
	if alt.IsValid() {
		return alt
	}
	return o.And(alt)
}

// All combines outcomes by accumulation, preserving order.
func All(outcomes ...Outcome) Outcome {
	return Valid().And(outcomes...)
}

// Check emits one issue of the given severity if ok is false.
func Check(ok bool, severity domain.Severity, loc domain.Location, msg string) Outcome {
	if ok {
		return Valid()
	}
	return Outcome{Issues: []domain.Issue{{
		Severity: severity,
		Message:  msg,
		Location: loc,
	}}}
}

// MustBe asserts a value-domain constraint; failure is an Error.
func MustBe(ok bool, loc domain.Location, msg string) Outcome {
	return Check(ok, domain.SeverityError, loc, msg)
}

// MustResolve asserts a cross-reference or consent constraint; failure is
// Fatal and blocks intake.
func MustResolve(ok bool, loc domain.Location, msg string) Outcome {
	return Check(ok, domain.SeverityFatal, loc, msg)
}

// ShouldBe asserts a recommended attribute; failure is a Warning.
func ShouldBe(ok bool, loc domain.Location, msg string) Outcome {
	return Check(ok, domain.SeverityWarning, loc, msg)
}

// CouldBe asserts an optional attribute; failure is an Info note.
func CouldBe(ok bool, loc domain.Location, msg string) Outcome {
	return Check(ok, domain.SeverityInfo, loc, msg)
}

// Each applies v to every element of items and accumulates in input order.
func Each[T any](items []T, v func(T) Outcome) Outcome {
	out := Valid()
	for _, item := range items {
		out = out.And(v(item))
	}
	return out
}

// RefSet is a closed set of identifiers or codes derived from one MTB
// file, used by Fatal reference checks.
type RefSet[T ~string] map[T]struct{}

// NewRefSet builds a RefSet from the given values.
func NewRefSet[T ~string](values ...T) RefSet[T] {
	set := make(RefSet[T], len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}

// Add inserts a value.
func (s RefSet[T]) Add(v T) { s[v] = struct{}{} }

// Contains reports membership.
func (s RefSet[T]) Contains(v T) bool {
	_, ok := s[v]
	return ok
}

// InSet asserts that candidate is a member of refs; failure is Fatal.
func InSet[T ~string](candidate T, refs RefSet[T], loc domain.Location, msg string) Outcome {
	return MustResolve(refs.Contains(candidate), loc, msg)
}

// MatchesEqual asserts that candidate equals the expected reference;
// failure is Fatal.
func MatchesEqual[T comparable](candidate, expected T, loc domain.Location, msg string) Outcome {
	return MustResolve(candidate == expected, loc, msg)
}
