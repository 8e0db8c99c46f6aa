package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverity_Rank(t *testing.T) {
	assert.Less(t, SeverityInfo.Rank(), SeverityWarning.Rank())
	assert.Less(t, SeverityWarning.Rank(), SeverityError.Rank())
	assert.Less(t, SeverityError.Rank(), SeverityFatal.Rank())
	assert.Equal(t, -1, Severity("bogus").Rank())
}

func TestSeverity_IsValid(t *testing.T) {
	for _, s := range []Severity{SeverityInfo, SeverityWarning, SeverityError, SeverityFatal} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, Severity("critical").IsValid())
}

func TestDataQualityReport_HasSeverity(t *testing.T) {
	report := &DataQualityReport{
		Patient: "P1",
		Issues: []Issue{
			{Severity: SeverityWarning},
			{Severity: SeverityError},
		},
	}

	assert.True(t, report.HasSeverity(SeverityWarning))
	assert.True(t, report.HasSeverity(SeverityError))
	assert.False(t, report.HasSeverity(SeverityFatal))
}

func TestDataQualityReport_MaxSeverity(t *testing.T) {
	report := &DataQualityReport{
		Patient: "P1",
		Issues: []Issue{
			{Severity: SeverityInfo},
			{Severity: SeverityFatal},
			{Severity: SeverityWarning},
		},
	}

	max, ok := report.MaxSeverity()
	assert.True(t, ok)
	assert.Equal(t, SeverityFatal, max)

	_, ok = (&DataQualityReport{Patient: "P1"}).MaxSeverity()
	assert.False(t, ok)
}

func TestEnums_KebabCaseValues(t *testing.T) {
	assert.Equal(t, "non-exhausted", GuidelineTreatmentNonExhausted.String())
	assert.Equal(t, "no-guidelines-available", GuidelineTreatmentNoGuidelines.String())
	assert.Equal(t, "not-done", TherapyNotDone.String())
	assert.Equal(t, "on-going", TherapyOngoing.String())

	assert.True(t, GuidelineTreatmentNonExhausted.IsValid())
	assert.False(t, GuidelineTreatmentStatus("nonExhausted").IsValid())
	assert.False(t, MolecularTherapyStatus("notdone").IsValid())
}
