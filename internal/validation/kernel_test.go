package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mtb-intake-service/internal/domain"
)

var testLoc = domain.Location{EntityKind: "Patient", EntityID: "P1", Attribute: "birthDate"}

func TestOutcome_ZeroValueIsValid(t *testing.T) {
	assert.True(t, Valid().IsValid())
	assert.Empty(t, Valid().Issues)
}

func TestCheck_Severities(t *testing.T) {
	assert.Equal(t, domain.SeverityError, MustBe(false, testLoc, "m").Issues[0].Severity)
	assert.Equal(t, domain.SeverityFatal, MustResolve(false, testLoc, "m").Issues[0].Severity)
	assert.Equal(t, domain.SeverityWarning, ShouldBe(false, testLoc, "m").Issues[0].Severity)
	assert.Equal(t, domain.SeverityInfo, CouldBe(false, testLoc, "m").Issues[0].Severity)

	assert.True(t, MustBe(true, testLoc, "m").IsValid())
}

func TestOutcome_AndAccumulatesInOrder(t *testing.T) {
	out := All(
		MustBe(false, testLoc, "first"),
		ShouldBe(false, testLoc, "second"),
		CouldBe(false, testLoc, "third"),
	)

	assert.Len(t, out.Issues, 3)
	assert.Equal(t, "first", out.Issues[0].Message)
	assert.Equal(t, "second", out.Issues[1].Message)
	assert.Equal(t, "third", out.Issues[2].Message)
}

func TestOutcome_AndThenShortCircuitsOnFailure(t *testing.T) {
	ran := false
	out := MustBe(false, testLoc, "prerequisite").AndThen(func() Outcome {
		ran = true
		return MustBe(false, testLoc, "dependent")
	})

	assert.False(t, ran)
	assert.Len(t, out.Issues, 1)
	assert.Equal(t, "prerequisite", out.Issues[0].Message)
}

func TestOutcome_AndThenRunsOnSuccess(t *testing.T) {
	out := MustBe(true, testLoc, "prerequisite").AndThen(func() Outcome {
		return MustBe(false, testLoc, "dependent")
	})

	assert.Len(t, out.Issues, 1)
	assert.Equal(t, "dependent", out.Issues[0].Message)
}

func TestOutcome_OrElse(t *testing.T) {
	// Left succeeds: right is not consulted.
	out := MustBe(true, testLoc, "left").OrElse(func() Outcome {
		t.Fatal("right must not run")
		return Valid()
	})
	assert.True(t, out.IsValid())

	// Left fails, right succeeds.
	out = MustBe(false, testLoc, "left").OrElse(func() Outcome {
		return Valid()
	})
	assert.True(t, out.IsValid())

	// Both fail: issues are concatenated.
	out = MustBe(false, testLoc, "left").OrElse(func() Outcome {
		return MustBe(false, testLoc, "right")
	})
	assert.Len(t, out.Issues, 2)
	assert.Equal(t, "left", out.Issues[0].Message)
	assert.Equal(t, "right", out.Issues[1].Message)
}

func TestEach_PreservesElementOrder(t *testing.T) {
	out := Each([]string{"a", "b", "c"}, func(s string) Outcome {
		return MustBe(false, testLoc, s)
	})

	assert.Len(t, out.Issues, 3)
	assert.Equal(t, "a", out.Issues[0].Message)
	assert.Equal(t, "c", out.Issues[2].Message)
}

func TestInSet(t *testing.T) {
	refs := NewRefSet[domain.DiagnosisID]("D1", "D2")

	assert.True(t, InSet(domain.DiagnosisID("D1"), refs, testLoc, "m").IsValid())

	out := InSet(domain.DiagnosisID("D3"), refs, testLoc, "m")
	assert.Len(t, out.Issues, 1)
	assert.Equal(t, domain.SeverityFatal, out.Issues[0].Severity)
}

func TestInSet_NilSetFails(t *testing.T) {
	var refs RefSet[domain.VariantID]
	out := InSet(domain.VariantID("V1"), refs, testLoc, "m")
	assert.False(t, out.IsValid())
}
