package validation

import (
	"fmt"
	"time"

	"github.com/mtb-intake-service/internal/domain"
)

// FileValidator validates complete MTB files against intrinsic constraints,
// intra-document references and the code-system catalogs. It is pure and
// stateless: equal inputs always produce the same issue list in the same
// order.
type FileValidator struct {
	catalogs domain.CatalogRegistry
	now      func() time.Time
}

// NewFileValidator creates a validator backed by the given catalog
// registry. The registry must be fully loaded; this is enforced at startup,
// not here.
func NewFileValidator(catalogs domain.CatalogRegistry) *FileValidator {
	return NewFileValidatorWithClock(catalogs, time.Now)
}

// NewFileValidatorWithClock injects the clock used for not-in-the-future
// checks, keeping validation deterministic under test.
func NewFileValidatorWithClock(catalogs domain.CatalogRegistry, now func() time.Time) *FileValidator {
	return &FileValidator{catalogs: catalogs, now: now}
}

// Validate traverses the file and accumulates every defect. The traversal
// never short-circuits except where a check presupposes an earlier one.
func (v *FileValidator) Validate(file *domain.MTBFile) Outcome {
	if file.Consent.Status == domain.ConsentRejected {
		return v.validateRejected(file)
	}
	return v.validateActive(file)
}

// Report runs Validate and wraps any issues into a quality report; a valid
// file yields nil.
func (v *FileValidator) Report(file *domain.MTBFile) *domain.DataQualityReport {
	out := v.Validate(file)
	if out.IsValid() {
		return nil
	}
	return &domain.DataQualityReport{
		Patient:   file.Patient.ID,
		CreatedOn: v.now().UTC(),
		Issues:    out.Issues,
	}
}

// validateRejected handles files whose consent was rejected: only patient,
// consent and episode are admissible, any populated medical list is a
// consent violation.
func (v *FileValidator) validateRejected(file *domain.MTBFile) Outcome {
	ctx := &Context{Patient: file.Patient.ID}

	out := All(
		v.validPatient(&file.Patient, false),
		v.validConsent(ctx, &file.Consent),
		v.validEpisode(ctx, &file.Episode),
	)

	pid := file.Patient.ID.String()
	for _, list := range medicalLists(file) {
		out = out.And(MustResolve(list.size == 0, at(KindMTBFile, pid, list.attribute),
			fmt.Sprintf("%s present despite rejected consent", list.attribute)))
	}
	return out
}

// validateActive handles files with active consent: derive the reference
// sets, then validate every entity in the declared order.
func (v *FileValidator) validateActive(file *domain.MTBFile) Outcome {
	ctx := NewContext(file)
	pid := file.Patient.ID.String()

	out := All(
		v.validPatient(&file.Patient, true),
		v.validConsent(ctx, &file.Consent),
		v.validEpisode(ctx, &file.Episode),
	)

	for _, list := range medicalLists(file) {
		loc := at(KindMTBFile, pid, list.attribute)
		if list.required {
			out = out.And(MustBe(list.size > 0, loc,
				fmt.Sprintf("%s must be documented", list.attribute)))
		} else {
			out = out.And(ShouldBe(list.size > 0, loc,
				fmt.Sprintf("%s not documented", list.attribute)))
		}
	}

	return out.And(
		Each(file.Diagnoses, func(d domain.Diagnosis) Outcome {
			return v.validDiagnosis(ctx, &d)
		}),
		Each(file.FamilyMemberDiagnoses, func(d domain.FamilyMemberDiagnosis) Outcome {
			return v.validFamilyMemberDiagnosis(ctx, &d)
		}),
		Each(file.PreviousGuidelineTherapies, func(t domain.PreviousGuidelineTherapy) Outcome {
			return v.validPreviousGuidelineTherapy(ctx, &t)
		}),
		Each(file.LastGuidelineTherapies, func(t domain.LastGuidelineTherapy) Outcome {
			return v.validLastGuidelineTherapy(ctx, &t)
		}),
		Each(file.ECOGStatus, func(e domain.ECOGStatus) Outcome {
			return v.validECOGStatus(ctx, &e)
		}),
		Each(file.Specimens, func(s domain.Specimen) Outcome {
			return v.validSpecimen(ctx, &s)
		}),
		Each(file.HistologyReports, func(r domain.HistologyReport) Outcome {
			return v.validHistologyReport(ctx, &r)
		}),
		Each(file.MolecularPathologyFindings, func(f domain.MolecularPathologyFinding) Outcome {
			return v.validMolecularPathologyFinding(ctx, &f)
		}),
		Each(file.NGSReports, func(r domain.SomaticNGSReport) Outcome {
			return v.validNGSReport(ctx, &r)
		}),
		Each(file.CarePlans, func(c domain.CarePlan) Outcome {
			return v.validCarePlan(ctx, &c)
		}),
		Each(file.Recommendations, func(r domain.TherapyRecommendation) Outcome {
			return v.validTherapyRecommendation(ctx, &r)
		}),
		Each(file.GeneticCounsellingRequests, func(r domain.GeneticCounsellingRequest) Outcome {
			return v.validGeneticCounsellingRequest(ctx, &r)
		}),
		Each(file.RebiopsyRequests, func(r domain.RebiopsyRequest) Outcome {
			return v.validRebiopsyRequest(ctx, &r)
		}),
		Each(file.HistologyReevaluationRequests, func(r domain.HistologyReevaluationRequest) Outcome {
			return v.validHistologyReevaluationRequest(ctx, &r)
		}),
		Each(file.StudyInclusionRequests, func(r domain.StudyInclusionRequest) Outcome {
			return v.validStudyInclusionRequest(ctx, &r)
		}),
		Each(file.Claims, func(c domain.Claim) Outcome {
			return v.validClaim(ctx, &c)
		}),
		Each(file.ClaimResponses, func(c domain.ClaimResponse) Outcome {
			return v.validClaimResponse(ctx, &c)
		}),
		Each(file.MolecularTherapies, func(t domain.MolecularTherapy) Outcome {
			return v.validMolecularTherapy(ctx, &t)
		}),
		Each(file.Responses, func(r domain.Response) Outcome {
			return v.validResponse(ctx, &r)
		}),
	)
}

type listInfo struct {
	attribute string
	size      int
	required  bool
}

// medicalLists enumerates the file's medical lists in the declared
// traversal order. Diagnoses and responses are required for clinical use.
func medicalLists(file *domain.MTBFile) []listInfo {
	return []listInfo{
		{"diagnoses", len(file.Diagnoses), true},
		{"familyMemberDiagnoses", len(file.FamilyMemberDiagnoses), false},
		{"previousGuidelineTherapies", len(file.PreviousGuidelineTherapies), false},
		{"lastGuidelineTherapies", len(file.LastGuidelineTherapies), false},
		{"ecogStatus", len(file.ECOGStatus), false},
		{"specimens", len(file.Specimens), false},
		{"histologyReports", len(file.HistologyReports), false},
		{"molecularPathologyFindings", len(file.MolecularPathologyFindings), false},
		{"ngsReports", len(file.NGSReports), false},
		{"carePlans", len(file.CarePlans), false},
		{"recommendations", len(file.Recommendations), false},
		{"geneticCounsellingRequests", len(file.GeneticCounsellingRequests), false},
		{"rebiopsyRequests", len(file.RebiopsyRequests), false},
		{"histologyReevaluationRequests", len(file.HistologyReevaluationRequests), false},
		{"studyInclusionRequests", len(file.StudyInclusionRequests), false},
		{"claims", len(file.Claims), false},
		{"claimResponses", len(file.ClaimResponses), false},
		{"molecularTherapies", len(file.MolecularTherapies), false},
		{"responses", len(file.Responses), true},
	}
}
