package domain

// MTBFile is the root aggregate submitted for intake: one patient's
// complete Molecular Tumor Board case. All medical lists are optional;
// whether they may be populated at all depends on the consent status.
type MTBFile struct {
	Patient                       Patient                        `json:"patient"`
	Consent                       Consent                        `json:"consent"`
	Episode                       MTBEpisode                     `json:"episode"`
	Diagnoses                     []Diagnosis                    `json:"diagnoses,omitempty"`
	FamilyMemberDiagnoses         []FamilyMemberDiagnosis        `json:"familyMemberDiagnoses,omitempty"`
	PreviousGuidelineTherapies    []PreviousGuidelineTherapy     `json:"previousGuidelineTherapies,omitempty"`
	LastGuidelineTherapies        []LastGuidelineTherapy         `json:"lastGuidelineTherapies,omitempty"`
	ECOGStatus                    []ECOGStatus                   `json:"ecogStatus,omitempty"`
	Specimens                     []Specimen                     `json:"specimens,omitempty"`
	HistologyReports              []HistologyReport              `json:"histologyReports,omitempty"`
	MolecularPathologyFindings    []MolecularPathologyFinding    `json:"molecularPathologyFindings,omitempty"`
	NGSReports                    []SomaticNGSReport             `json:"ngsReports,omitempty"`
	CarePlans                     []CarePlan                     `json:"carePlans,omitempty"`
	Recommendations               []TherapyRecommendation        `json:"recommendations,omitempty"`
	GeneticCounsellingRequests    []GeneticCounsellingRequest    `json:"geneticCounsellingRequests,omitempty"`
	RebiopsyRequests              []RebiopsyRequest              `json:"rebiopsyRequests,omitempty"`
	HistologyReevaluationRequests []HistologyReevaluationRequest `json:"histologyReevaluationRequests,omitempty"`
	StudyInclusionRequests        []StudyInclusionRequest        `json:"studyInclusionRequests,omitempty"`
	Claims                        []Claim                        `json:"claims,omitempty"`
	ClaimResponses                []ClaimResponse                `json:"claimResponses,omitempty"`
	MolecularTherapies            []MolecularTherapy             `json:"molecularTherapies,omitempty"`
	Responses                     []Response                     `json:"responses,omitempty"`
}
