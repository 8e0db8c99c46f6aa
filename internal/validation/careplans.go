package validation

import (
	"fmt"
	"regexp"

	"github.com/mtb-intake-service/internal/domain"
)

var nctNumberPattern = regexp.MustCompile(`^NCT\d{8}$`)

func (v *FileValidator) validCarePlan(ctx *Context, c *domain.CarePlan) Outcome {
	id := c.ID.String()

	out := All(
		MatchesEqual(c.Patient, ctx.Patient, at(KindCarePlan, id, "patient"),
			"care plan does not refer to the file's patient"),
		InSet(c.Diagnosis, ctx.Diagnoses, at(KindCarePlan, id, "diagnosis"),
			fmt.Sprintf("diagnosis %q not present in file", c.Diagnosis)),
		ShouldBe(c.IssuedOn != nil, at(KindCarePlan, id, "issuedOn"),
			"issue date should be documented"),
	)

	// A care plan carries either an explicit no-target finding or
	// recommendations, never both and never neither.
	recLoc := at(KindCarePlan, id, "recommendations")
	switch {
	case c.NoTargetFinding != nil && len(c.Recommendations) > 0:
		out = out.And(MustBe(false, recLoc,
			"care plan documents a no-target finding but carries therapy recommendations"))
	case c.NoTargetFinding == nil && len(c.Recommendations) == 0:
		out = out.And(MustBe(false, recLoc,
			"care plan carries neither a no-target finding nor therapy recommendations"))
	}

	if c.NoTargetFinding != nil {
		out = out.And(
			MatchesEqual(c.NoTargetFinding.Patient, ctx.Patient,
				at(KindCarePlan, id, "noTargetFinding"),
				"no-target finding does not refer to the file's patient"),
			InSet(c.NoTargetFinding.Diagnosis, ctx.Diagnoses,
				at(KindCarePlan, id, "noTargetFinding"),
				fmt.Sprintf("diagnosis %q not present in file", c.NoTargetFinding.Diagnosis)),
		)
	}

	out = out.And(Each(c.Recommendations, func(ref domain.TherapyRecommendationID) Outcome {
		return InSet(ref, ctx.Recommendations, recLoc,
			fmt.Sprintf("therapy recommendation %q not present in file", ref))
	}))

	if c.GeneticCounsellingRequest != nil {
		out = out.And(InSet(*c.GeneticCounsellingRequest, ctx.CounsellingRequests,
			at(KindCarePlan, id, "geneticCounsellingRequest"),
			fmt.Sprintf("genetic counselling request %q not present in file", *c.GeneticCounsellingRequest)))
	}
	out = out.And(Each(c.RebiopsyRequests, func(ref domain.RebiopsyRequestID) Outcome {
		return InSet(ref, ctx.RebiopsyRequests, at(KindCarePlan, id, "rebiopsyRequests"),
			fmt.Sprintf("rebiopsy request %q not present in file", ref))
	}))
	out = out.And(Each(c.HistologyReevaluationRequests, func(ref domain.HistologyReevaluationRequestID) Outcome {
		return InSet(ref, ctx.HistologyReevaluationRequests,
			at(KindCarePlan, id, "histologyReevaluationRequests"),
			fmt.Sprintf("histology re-evaluation request %q not present in file", ref))
	}))
	if c.StudyInclusionRequest != nil {
		out = out.And(InSet(*c.StudyInclusionRequest, ctx.StudyInclusionRequests,
			at(KindCarePlan, id, "studyInclusionRequest"),
			fmt.Sprintf("study inclusion request %q not present in file", *c.StudyInclusionRequest)))
	}

	return out
}

func (v *FileValidator) validTherapyRecommendation(ctx *Context, r *domain.TherapyRecommendation) Outcome {
	id := r.ID.String()

	out := All(
		MatchesEqual(r.Patient, ctx.Patient, at(KindTherapyRecommendation, id, "patient"),
			"therapy recommendation does not refer to the file's patient"),
		InSet(r.Diagnosis, ctx.Diagnoses, at(KindTherapyRecommendation, id, "diagnosis"),
			fmt.Sprintf("diagnosis %q not present in file", r.Diagnosis)),
		ShouldBe(r.IssuedOn != nil, at(KindTherapyRecommendation, id, "issuedOn"),
			"issue date should be documented"),
		v.validMedication(r.Medication, at(KindTherapyRecommendation, id, "medication")),
	)

	out = out.And(ShouldBe(r.Priority != nil, at(KindTherapyRecommendation, id, "priority"),
		"priority should be documented"))
	if r.Priority != nil {
		out = out.And(MustBe(r.Priority.IsValid(), at(KindTherapyRecommendation, id, "priority"),
			fmt.Sprintf("invalid priority %q", *r.Priority)))
	}

	out = out.And(ShouldBe(r.LevelOfEvidence != nil, at(KindTherapyRecommendation, id, "levelOfEvidence"),
		"level of evidence should be documented"))
	if r.LevelOfEvidence != nil {
		out = out.And(MustBe(r.LevelOfEvidence.Grading.Code.IsValid(),
			at(KindTherapyRecommendation, id, "levelOfEvidence"),
			fmt.Sprintf("invalid level-of-evidence grading %q", r.LevelOfEvidence.Grading.Code)))
	}

	out = out.And(ShouldBe(r.NGSReport != nil, at(KindTherapyRecommendation, id, "ngsReport"),
		"underlying NGS report should be documented"))
	if r.NGSReport != nil {
		out = out.And(InSet(*r.NGSReport, ctx.NGSReports,
			at(KindTherapyRecommendation, id, "ngsReport"),
			fmt.Sprintf("NGS report %q not present in file", *r.NGSReport)))
	}

	out = out.And(ShouldBe(len(r.SupportingVariants) > 0,
		at(KindTherapyRecommendation, id, "supportingVariants"),
		"supporting variants should be documented"))
	if len(r.SupportingVariants) > 0 {
		svLoc := at(KindTherapyRecommendation, id, "supportingVariants")
		variants := RefSet[domain.VariantID]{}
		if r.NGSReport != nil {
			variants = ctx.VariantsByReport[*r.NGSReport]
		}
		out = out.And(Each(r.SupportingVariants, func(ref domain.VariantID) Outcome {
			return InSet(ref, variants, svLoc,
				fmt.Sprintf("variant %q not part of the referenced NGS report", ref))
		}))
	}

	return out
}

func (v *FileValidator) validGeneticCounsellingRequest(ctx *Context, r *domain.GeneticCounsellingRequest) Outcome {
	id := r.ID.String()
	return All(
		MatchesEqual(r.Patient, ctx.Patient, at(KindGeneticCounsellingRequest, id, "patient"),
			"counselling request does not refer to the file's patient"),
		ShouldBe(r.IssuedOn != nil, at(KindGeneticCounsellingRequest, id, "issuedOn"),
			"issue date should be documented"),
	)
}

func (v *FileValidator) validRebiopsyRequest(ctx *Context, r *domain.RebiopsyRequest) Outcome {
	id := r.ID.String()
	return All(
		MatchesEqual(r.Patient, ctx.Patient, at(KindRebiopsyRequest, id, "patient"),
			"rebiopsy request does not refer to the file's patient"),
		InSet(r.Specimen, ctx.Specimens, at(KindRebiopsyRequest, id, "specimen"),
			fmt.Sprintf("specimen %q not present in file", r.Specimen)),
		ShouldBe(r.IssuedOn != nil, at(KindRebiopsyRequest, id, "issuedOn"),
			"issue date should be documented"),
	)
}

func (v *FileValidator) validHistologyReevaluationRequest(ctx *Context, r *domain.HistologyReevaluationRequest) Outcome {
	id := r.ID.String()
	return All(
		MatchesEqual(r.Patient, ctx.Patient, at(KindHistologyReevaluationRequest, id, "patient"),
			"histology re-evaluation request does not refer to the file's patient"),
		InSet(r.Specimen, ctx.Specimens, at(KindHistologyReevaluationRequest, id, "specimen"),
			fmt.Sprintf("specimen %q not present in file", r.Specimen)),
		ShouldBe(r.IssuedOn != nil, at(KindHistologyReevaluationRequest, id, "issuedOn"),
			"issue date should be documented"),
	)
}

func (v *FileValidator) validStudyInclusionRequest(ctx *Context, r *domain.StudyInclusionRequest) Outcome {
	id := r.ID.String()
	return All(
		MatchesEqual(r.Patient, ctx.Patient, at(KindStudyInclusionRequest, id, "patient"),
			"study inclusion request does not refer to the file's patient"),
		InSet(r.Diagnosis, ctx.Diagnoses, at(KindStudyInclusionRequest, id, "diagnosis"),
			fmt.Sprintf("diagnosis %q not present in file", r.Diagnosis)),
		MustBe(nctNumberPattern.MatchString(r.NCTNumber), at(KindStudyInclusionRequest, id, "nctNumber"),
			fmt.Sprintf("%q is not a valid NCT number", r.NCTNumber)),
		ShouldBe(r.IssuedOn != nil, at(KindStudyInclusionRequest, id, "issuedOn"),
			"issue date should be documented"),
	)
}

func (v *FileValidator) validClaim(ctx *Context, c *domain.Claim) Outcome {
	id := c.ID.String()
	return All(
		MatchesEqual(c.Patient, ctx.Patient, at(KindClaim, id, "patient"),
			"claim does not refer to the file's patient"),
		InSet(c.Therapy, ctx.Recommendations, at(KindClaim, id, "therapy"),
			fmt.Sprintf("therapy recommendation %q not present in file", c.Therapy)),
		ShouldBe(c.IssuedOn != nil, at(KindClaim, id, "issuedOn"),
			"issue date should be documented"),
	)
}

func (v *FileValidator) validClaimResponse(ctx *Context, c *domain.ClaimResponse) Outcome {
	id := c.ID.String()

	out := All(
		MatchesEqual(c.Patient, ctx.Patient, at(KindClaimResponse, id, "patient"),
			"claim response does not refer to the file's patient"),
		InSet(c.Claim, ctx.Claims, at(KindClaimResponse, id, "claim"),
			fmt.Sprintf("claim %q not present in file", c.Claim)),
		ShouldBe(c.IssuedOn != nil, at(KindClaimResponse, id, "issuedOn"),
			"issue date should be documented"),
		MustBe(c.Status.IsValid(), at(KindClaimResponse, id, "status"),
			fmt.Sprintf("invalid claim response status %q", c.Status)),
	)

	if c.Status == domain.ClaimRejected {
		out = out.And(ShouldBe(c.Reason != nil, at(KindClaimResponse, id, "reason"),
			"rejection reason should be documented"))
	}

	return out
}

func (v *FileValidator) validMolecularTherapy(ctx *Context, t *domain.MolecularTherapy) Outcome {
	id := t.ID.String()

	out := All(
		MatchesEqual(t.Patient, ctx.Patient, at(KindMolecularTherapy, id, "patient"),
			"molecular therapy does not refer to the file's patient"),
		InSet(t.BasedOn, ctx.Recommendations, at(KindMolecularTherapy, id, "basedOn"),
			fmt.Sprintf("therapy recommendation %q not present in file", t.BasedOn)),
		ShouldBe(t.RecordedOn != nil, at(KindMolecularTherapy, id, "recordedOn"),
			"recording date should be documented"),
		MustBe(t.Status.IsValid(), at(KindMolecularTherapy, id, "status"),
			fmt.Sprintf("invalid molecular therapy status %q", t.Status)),
	)

	switch t.Status {
	case domain.TherapyNotDone:
		out = out.And(ShouldBe(t.NotDoneReason != nil, at(KindMolecularTherapy, id, "notDoneReason"),
			"not-done reason should be documented"))
		if t.NotDoneReason != nil {
			out = out.And(MustBe(t.NotDoneReason.Code.IsValid(),
				at(KindMolecularTherapy, id, "notDoneReason"),
				fmt.Sprintf("invalid not-done reason %q", t.NotDoneReason.Code)))
		}

	case domain.TherapyOngoing:
		out = out.And(
			ShouldBe(t.Period != nil, at(KindMolecularTherapy, id, "period"),
				"therapy period should be documented"),
			v.validMedication(t.Medication, at(KindMolecularTherapy, id, "medication")),
		)

	case domain.TherapyStopped:
		out = out.And(
			ShouldBe(t.Period != nil && t.Period.IsClosed(), at(KindMolecularTherapy, id, "period"),
				"closed therapy period should be documented"),
			ShouldBe(t.ReasonStopped != nil, at(KindMolecularTherapy, id, "reasonStopped"),
				"stop reason should be documented"),
			v.validMedication(t.Medication, at(KindMolecularTherapy, id, "medication")),
		)
		if t.ReasonStopped != nil {
			out = out.And(MustBe(t.ReasonStopped.Code.IsValid(),
				at(KindMolecularTherapy, id, "reasonStopped"),
				fmt.Sprintf("invalid stop reason %q", t.ReasonStopped.Code)))
		}

	case domain.TherapyCompleted:
		out = out.And(
			ShouldBe(t.Period != nil && t.Period.IsClosed(), at(KindMolecularTherapy, id, "period"),
				"closed therapy period should be documented"),
			v.validMedication(t.Medication, at(KindMolecularTherapy, id, "medication")),
		)
	}

	return out
}

func (v *FileValidator) validResponse(ctx *Context, r *domain.Response) Outcome {
	id := r.ID.String()
	return All(
		MatchesEqual(r.Patient, ctx.Patient, at(KindResponse, id, "patient"),
			"response does not refer to the file's patient"),
		InSet(r.Therapy, ctx.Therapies, at(KindResponse, id, "therapy"),
			fmt.Sprintf("therapy %q not present in file", r.Therapy)),
		MustBe(r.Value.Code.IsValid(), at(KindResponse, id, "value"),
			fmt.Sprintf("invalid RECIST value %q", r.Value.Code)),
	)
}
