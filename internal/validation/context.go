package validation

import (
	"github.com/mtb-intake-service/internal/domain"
)

// Entity-kind names used in issue locations.
const (
	KindMTBFile                      = "MTBFile"
	KindPatient                      = "Patient"
	KindConsent                      = "Consent"
	KindMTBEpisode                   = "MTBEpisode"
	KindDiagnosis                    = "Diagnosis"
	KindFamilyMemberDiagnosis        = "FamilyMemberDiagnosis"
	KindPreviousGuidelineTherapy     = "PreviousGuidelineTherapy"
	KindLastGuidelineTherapy         = "LastGuidelineTherapy"
	KindECOGStatus                   = "ECOGStatus"
	KindSpecimen                     = "Specimen"
	KindTumorCellContent             = "TumorCellContent"
	KindTumorMorphology              = "TumorMorphology"
	KindHistologyReport              = "HistologyReport"
	KindMolecularPathologyFinding    = "MolecularPathologyFinding"
	KindSomaticNGSReport             = "SomaticNGSReport"
	KindSimpleVariant                = "SimpleVariant"
	KindCNV                          = "CNV"
	KindDNAFusion                    = "DNAFusion"
	KindRNAFusion                    = "RNAFusion"
	KindRNASeq                       = "RNASeq"
	KindCarePlan                     = "CarePlan"
	KindTherapyRecommendation        = "TherapyRecommendation"
	KindGeneticCounsellingRequest    = "GeneticCounsellingRequest"
	KindRebiopsyRequest              = "RebiopsyRequest"
	KindHistologyReevaluationRequest = "HistologyReevaluationRequest"
	KindStudyInclusionRequest        = "StudyInclusionRequest"
	KindClaim                        = "Claim"
	KindClaimResponse                = "ClaimResponse"
	KindMolecularTherapy             = "MolecularTherapy"
	KindResponse                     = "Response"
)

func at(kind, id, attribute string) domain.Location {
	return domain.Location{EntityKind: kind, EntityID: id, Attribute: attribute}
}

// Context carries the closed reference sets derived from one MTB file.
// It is built in a first pass over the file and read-only during the
// second, validating pass.
type Context struct {
	Patient domain.PatientID

	Diagnoses      RefSet[domain.DiagnosisID]
	DiagnosisICD10 RefSet[domain.ICD10Code]
	Specimens      RefSet[domain.SpecimenID]

	HistologyReports RefSet[domain.HistologyReportID]
	NGSReports       RefSet[domain.NGSReportID]
	VariantsByReport map[domain.NGSReportID]RefSet[domain.VariantID]

	Recommendations               RefSet[domain.TherapyRecommendationID]
	CounsellingRequests           RefSet[domain.GeneticCounsellingRequestID]
	RebiopsyRequests              RefSet[domain.RebiopsyRequestID]
	HistologyReevaluationRequests RefSet[domain.HistologyReevaluationRequestID]
	StudyInclusionRequests        RefSet[domain.StudyInclusionRequestID]

	Claims RefSet[domain.ClaimID]

	// Therapies is the union of previous, last and molecular therapy ids,
	// the resolution domain for Response.therapy.
	Therapies RefSet[domain.TherapyID]

	// RespondedTherapies holds the therapy ids some Response refers to.
	RespondedTherapies RefSet[domain.TherapyID]
}

// NewContext derives all reference sets from the file.
func NewContext(file *domain.MTBFile) *Context {
	ctx := &Context{
		Patient:                       file.Patient.ID,
		Diagnoses:                     NewRefSet[domain.DiagnosisID](),
		DiagnosisICD10:                NewRefSet[domain.ICD10Code](),
		Specimens:                     NewRefSet[domain.SpecimenID](),
		HistologyReports:              NewRefSet[domain.HistologyReportID](),
		NGSReports:                    NewRefSet[domain.NGSReportID](),
		VariantsByReport:              make(map[domain.NGSReportID]RefSet[domain.VariantID]),
		Recommendations:               NewRefSet[domain.TherapyRecommendationID](),
		CounsellingRequests:           NewRefSet[domain.GeneticCounsellingRequestID](),
		RebiopsyRequests:              NewRefSet[domain.RebiopsyRequestID](),
		HistologyReevaluationRequests: NewRefSet[domain.HistologyReevaluationRequestID](),
		StudyInclusionRequests:        NewRefSet[domain.StudyInclusionRequestID](),
		Claims:                        NewRefSet[domain.ClaimID](),
		Therapies:                     NewRefSet[domain.TherapyID](),
		RespondedTherapies:            NewRefSet[domain.TherapyID](),
	}

	for _, d := range file.Diagnoses {
		ctx.Diagnoses.Add(d.ID)
		if d.ICD10 != nil {
			ctx.DiagnosisICD10.Add(d.ICD10.Code)
		}
	}
	for _, s := range file.Specimens {
		ctx.Specimens.Add(s.ID)
	}
	for _, r := range file.HistologyReports {
		ctx.HistologyReports.Add(r.ID)
	}
	for _, r := range file.NGSReports {
		ctx.NGSReports.Add(r.ID)
		ctx.VariantsByReport[r.ID] = NewRefSet(r.VariantIDs()...)
	}
	for _, r := range file.Recommendations {
		ctx.Recommendations.Add(r.ID)
	}
	for _, r := range file.GeneticCounsellingRequests {
		ctx.CounsellingRequests.Add(r.ID)
	}
	for _, r := range file.RebiopsyRequests {
		ctx.RebiopsyRequests.Add(r.ID)
	}
	for _, r := range file.HistologyReevaluationRequests {
		ctx.HistologyReevaluationRequests.Add(r.ID)
	}
	for _, r := range file.StudyInclusionRequests {
		ctx.StudyInclusionRequests.Add(r.ID)
	}
	for _, c := range file.Claims {
		ctx.Claims.Add(c.ID)
	}
	for _, t := range file.PreviousGuidelineTherapies {
		ctx.Therapies.Add(t.ID)
	}
	for _, t := range file.LastGuidelineTherapies {
		ctx.Therapies.Add(t.ID)
	}
	for _, t := range file.MolecularTherapies {
		ctx.Therapies.Add(t.ID)
	}
	for _, r := range file.Responses {
		ctx.RespondedTherapies.Add(r.Therapy)
	}

	return ctx
}
