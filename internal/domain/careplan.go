package domain

// NoTargetFinding documents that sequencing produced no actionable target
// for a diagnosis; it excludes therapy recommendations on the same care
// plan.
type NoTargetFinding struct {
	Patient   PatientID   `json:"patient"`
	Diagnosis DiagnosisID `json:"diagnosis"`
	IssuedOn  *Date       `json:"issuedOn,omitempty"`
}

// CarePlan is the MTB conference result for one diagnosis: either a set of
// therapy recommendations or an explicit no-target finding, plus optional
// follow-up requests.
type CarePlan struct {
	ID                            CarePlanID                       `json:"id"`
	Patient                       PatientID                        `json:"patient"`
	Diagnosis                     DiagnosisID                      `json:"diagnosis"`
	IssuedOn                      *Date                            `json:"issuedOn,omitempty"`
	Description                   string                           `json:"description,omitempty"`
	NoTargetFinding               *NoTargetFinding                 `json:"noTargetFinding,omitempty"`
	Recommendations               []TherapyRecommendationID        `json:"recommendations,omitempty"`
	GeneticCounsellingRequest     *GeneticCounsellingRequestID     `json:"geneticCounsellingRequest,omitempty"`
	RebiopsyRequests              []RebiopsyRequestID              `json:"rebiopsyRequests,omitempty"`
	HistologyReevaluationRequests []HistologyReevaluationRequestID `json:"histologyReevaluationRequests,omitempty"`
	StudyInclusionRequest         *StudyInclusionRequestID         `json:"studyInclusionRequest,omitempty"`
}

// LevelOfEvidence grades a therapy recommendation.
type LevelOfEvidence struct {
	Grading   Coding[LevelOfEvidenceGrading] `json:"grading"`
	Addendums []Coding[string]               `json:"addendums,omitempty"`
}

// TherapyRecommendation is a medication recommendation issued by the MTB,
// optionally backed by variants of an NGS report.
type TherapyRecommendation struct {
	ID                 TherapyRecommendationID        `json:"id"`
	Patient            PatientID                      `json:"patient"`
	Diagnosis          DiagnosisID                    `json:"diagnosis"`
	IssuedOn           *Date                          `json:"issuedOn,omitempty"`
	Medication         []Coding[ATCCode]              `json:"medication,omitempty"`
	Priority           *TherapyRecommendationPriority `json:"priority,omitempty"`
	LevelOfEvidence    *LevelOfEvidence               `json:"levelOfEvidence,omitempty"`
	NGSReport          *NGSReportID                   `json:"ngsReport,omitempty"`
	SupportingVariants []VariantID                    `json:"supportingVariants,omitempty"`
}

// GeneticCounsellingRequest asks for genetic counselling of the patient.
type GeneticCounsellingRequest struct {
	ID       GeneticCounsellingRequestID `json:"id"`
	Patient  PatientID                   `json:"patient"`
	IssuedOn *Date                       `json:"issuedOn,omitempty"`
	Reason   string                      `json:"reason,omitempty"`
}

// RebiopsyRequest asks for a new biopsy of a specimen's tumor.
type RebiopsyRequest struct {
	ID       RebiopsyRequestID `json:"id"`
	Patient  PatientID         `json:"patient"`
	Specimen SpecimenID        `json:"specimen"`
	IssuedOn *Date             `json:"issuedOn,omitempty"`
}

// HistologyReevaluationRequest asks for a histological re-examination of a
// specimen.
type HistologyReevaluationRequest struct {
	ID       HistologyReevaluationRequestID `json:"id"`
	Patient  PatientID                      `json:"patient"`
	Specimen SpecimenID                     `json:"specimen"`
	IssuedOn *Date                          `json:"issuedOn,omitempty"`
}

// StudyInclusionRequest asks for inclusion of the patient into a clinical
// study identified by its NCT number.
type StudyInclusionRequest struct {
	ID        StudyInclusionRequestID `json:"id"`
	Patient   PatientID               `json:"patient"`
	Diagnosis DiagnosisID             `json:"diagnosis"`
	NCTNumber string                  `json:"nctNumber"`
	IssuedOn  *Date                   `json:"issuedOn,omitempty"`
}
