package domain

// Identifier types for every entity kind. Each kind gets its own defined
// string type so identifiers cannot be assigned across kinds by accident;
// comparison is by value and the JSON form is the wrapped string.

type PatientID string

type ConsentID string

type EpisodeID string

type DiagnosisID string

type FamilyMemberDiagnosisID string

type TherapyID string

type ECOGStatusID string

type SpecimenID string

type TumorCellContentID string

type TumorMorphologyID string

type HistologyReportID string

type MolecularPathologyFindingID string

type NGSReportID string

type VariantID string

type CarePlanID string

type TherapyRecommendationID string

type GeneticCounsellingRequestID string

type RebiopsyRequestID string

type HistologyReevaluationRequestID string

type StudyInclusionRequestID string

type ClaimID string

type ClaimResponseID string

type ResponseID string

func (id PatientID) String() string                      { return string(id) }
func (id ConsentID) String() string                      { return string(id) }
func (id EpisodeID) String() string                      { return string(id) }
func (id DiagnosisID) String() string                    { return string(id) }
func (id FamilyMemberDiagnosisID) String() string        { return string(id) }
func (id TherapyID) String() string                      { return string(id) }
func (id ECOGStatusID) String() string                   { return string(id) }
func (id SpecimenID) String() string                     { return string(id) }
func (id TumorCellContentID) String() string             { return string(id) }
func (id TumorMorphologyID) String() string              { return string(id) }
func (id HistologyReportID) String() string              { return string(id) }
func (id MolecularPathologyFindingID) String() string    { return string(id) }
func (id NGSReportID) String() string                    { return string(id) }
func (id VariantID) String() string                      { return string(id) }
func (id CarePlanID) String() string                     { return string(id) }
func (id TherapyRecommendationID) String() string        { return string(id) }
func (id GeneticCounsellingRequestID) String() string    { return string(id) }
func (id RebiopsyRequestID) String() string              { return string(id) }
func (id HistologyReevaluationRequestID) String() string { return string(id) }
func (id StudyInclusionRequestID) String() string        { return string(id) }
func (id ClaimID) String() string                        { return string(id) }
func (id ClaimResponseID) String() string                { return string(id) }
func (id ResponseID) String() string                     { return string(id) }
