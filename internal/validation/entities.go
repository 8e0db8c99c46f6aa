package validation

import (
	"fmt"

	"github.com/mtb-intake-service/internal/domain"
)

// validPatient checks the patient core. The insurance recommendation only
// applies when medical data is admissible at all, i.e. under active
// consent; a bare consent-rejection file stays clean without it.
func (v *FileValidator) validPatient(p *domain.Patient, withMedical bool) Outcome {
	id := p.ID.String()
	today := domain.DateOf(v.now())

	out := All(
		MustBe(p.Gender.IsValid(), at(KindPatient, id, "gender"),
			fmt.Sprintf("invalid gender %q", p.Gender)),
		MustBe(p.BirthDate != nil, at(KindPatient, id, "birthDate"),
			"birth date must be documented"),
	)
	if withMedical {
		out = out.And(ShouldBe(p.Insurance != nil, at(KindPatient, id, "insurance"),
			"health insurance should be documented"))
	}

	if p.DateOfDeath != nil {
		loc := at(KindPatient, id, "dateOfDeath")
		out = out.And(MustBe(!p.DateOfDeath.Time().After(today.Time()), loc,
			"date of death lies in the future"))
		if p.BirthDate != nil {
			out = out.And(MustBe(p.DateOfDeath.After(*p.BirthDate), loc,
				"date of death is not after birth date"))
		}
	}

	return out
}

func (v *FileValidator) validConsent(ctx *Context, c *domain.Consent) Outcome {
	id := c.ID.String()
	return All(
		MatchesEqual(c.Patient, ctx.Patient, at(KindConsent, id, "patient"),
			"consent does not refer to the file's patient"),
		MustBe(c.Status.IsValid(), at(KindConsent, id, "status"),
			fmt.Sprintf("invalid consent status %q", c.Status)),
	)
}

func (v *FileValidator) validEpisode(ctx *Context, e *domain.MTBEpisode) Outcome {
	id := e.ID.String()
	return MatchesEqual(e.Patient, ctx.Patient, at(KindMTBEpisode, id, "patient"),
		"episode does not refer to the file's patient")
}

func (v *FileValidator) validDiagnosis(ctx *Context, d *domain.Diagnosis) Outcome {
	id := d.ID.String()

	out := All(
		MatchesEqual(d.Patient, ctx.Patient, at(KindDiagnosis, id, "patient"),
			"diagnosis does not refer to the file's patient"),
		ShouldBe(d.RecordedOn != nil, at(KindDiagnosis, id, "recordedOn"),
			"recording date should be documented"),
		MustBe(d.ICD10 != nil, at(KindDiagnosis, id, "icd10"),
			"ICD-10-GM coding must be documented"),
	)
	if d.ICD10 != nil {
		out = out.And(v.validICD10Coding(d.ICD10, at(KindDiagnosis, id, "icd10")))
	}

	out = out.And(CouldBe(d.ICDO3T != nil, at(KindDiagnosis, id, "icdO3T"),
		"ICD-O-3-T coding not documented"))
	if d.ICDO3T != nil {
		out = out.And(v.validICDO3TCoding(d.ICDO3T, at(KindDiagnosis, id, "icdO3T")))
	}

	if d.WHOGrade != nil {
		out = out.And(MustBe(d.WHOGrade.Code.IsValid(), at(KindDiagnosis, id, "whoGrade"),
			fmt.Sprintf("invalid WHO grade %q", d.WHOGrade.Code)))
	}

	out = out.And(Each(d.StatusHistory, func(entry domain.DiagnosisStatus) Outcome {
		return MustBe(entry.Status.IsValid(), at(KindDiagnosis, id, "statusHistory"),
			fmt.Sprintf("invalid diagnosis status %q", entry.Status))
	}))

	out = out.And(Each(d.HistologyResults, func(ref domain.HistologyReportID) Outcome {
		return InSet(ref, ctx.HistologyReports, at(KindDiagnosis, id, "histologyResults"),
			fmt.Sprintf("histology report %q not present in file", ref))
	}))

	out = out.And(ShouldBe(d.GuidelineTreatmentStatus != nil,
		at(KindDiagnosis, id, "guidelineTreatmentStatus"),
		"guideline treatment status should be documented"))
	if d.GuidelineTreatmentStatus != nil {
		out = out.And(MustBe(d.GuidelineTreatmentStatus.IsValid(),
			at(KindDiagnosis, id, "guidelineTreatmentStatus"),
			fmt.Sprintf("invalid guideline treatment status %q", *d.GuidelineTreatmentStatus)))
	}

	return out
}

func (v *FileValidator) validFamilyMemberDiagnosis(ctx *Context, d *domain.FamilyMemberDiagnosis) Outcome {
	id := d.ID.String()
	return All(
		MatchesEqual(d.Patient, ctx.Patient, at(KindFamilyMemberDiagnosis, id, "patient"),
			"family-member diagnosis does not refer to the file's patient"),
		MustBe(d.Relationship.Code.IsValid(), at(KindFamilyMemberDiagnosis, id, "relationship"),
			fmt.Sprintf("invalid family relationship %q", d.Relationship.Code)),
	)
}

func (v *FileValidator) validPreviousGuidelineTherapy(ctx *Context, t *domain.PreviousGuidelineTherapy) Outcome {
	id := t.ID.String()
	return All(
		MatchesEqual(t.Patient, ctx.Patient, at(KindPreviousGuidelineTherapy, id, "patient"),
			"guideline therapy does not refer to the file's patient"),
		InSet(t.Diagnosis, ctx.Diagnoses, at(KindPreviousGuidelineTherapy, id, "diagnosis"),
			fmt.Sprintf("diagnosis %q not present in file", t.Diagnosis)),
		ShouldBe(t.TherapyLine != nil, at(KindPreviousGuidelineTherapy, id, "therapyLine"),
			"therapy line should be documented"),
		v.validMedication(t.Medication, at(KindPreviousGuidelineTherapy, id, "medication")),
	)
}

func (v *FileValidator) validLastGuidelineTherapy(ctx *Context, t *domain.LastGuidelineTherapy) Outcome {
	id := t.ID.String()

	out := All(
		MatchesEqual(t.Patient, ctx.Patient, at(KindLastGuidelineTherapy, id, "patient"),
			"guideline therapy does not refer to the file's patient"),
		InSet(t.Diagnosis, ctx.Diagnoses, at(KindLastGuidelineTherapy, id, "diagnosis"),
			fmt.Sprintf("diagnosis %q not present in file", t.Diagnosis)),
		ShouldBe(t.TherapyLine != nil, at(KindLastGuidelineTherapy, id, "therapyLine"),
			"therapy line should be documented"),
		ShouldBe(t.Period != nil, at(KindLastGuidelineTherapy, id, "period"),
			"therapy period should be documented"),
	)
	if t.Period != nil {
		out = out.And(ShouldBe(t.Period.IsClosed(), at(KindLastGuidelineTherapy, id, "period"),
			"end of therapy period should be documented"))
	}

	return out.And(
		ShouldBe(t.ReasonStopped != nil, at(KindLastGuidelineTherapy, id, "reasonStopped"),
			"stop reason should be documented"),
		v.validMedication(t.Medication, at(KindLastGuidelineTherapy, id, "medication")),
		ShouldBe(ctx.RespondedTherapies.Contains(t.ID), at(KindLastGuidelineTherapy, id, "id"),
			"no response is documented for this therapy"),
	)
}

func (v *FileValidator) validECOGStatus(ctx *Context, e *domain.ECOGStatus) Outcome {
	id := e.ID.String()
	return All(
		MatchesEqual(e.Patient, ctx.Patient, at(KindECOGStatus, id, "patient"),
			"ECOG status does not refer to the file's patient"),
		MustBe(e.EffectiveDate != nil, at(KindECOGStatus, id, "effectiveDate"),
			"effective date must be documented"),
		MustBe(e.Value >= 0 && e.Value <= 5, at(KindECOGStatus, id, "value"),
			fmt.Sprintf("ECOG performance status %d outside 0..5", e.Value)),
	)
}
