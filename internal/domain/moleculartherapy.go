package domain

// MolecularTherapy documents the fate of one therapy recommendation. It is
// a tagged union over Status: not-done carries a reason, on-going a start
// date and medication, stopped and completed a closed period, medication
// and (for stopped) a stop reason.
type MolecularTherapy struct {
	ID            TherapyID               `json:"id"`
	Patient       PatientID               `json:"patient"`
	RecordedOn    *Date                   `json:"recordedOn,omitempty"`
	BasedOn       TherapyRecommendationID `json:"basedOn"`
	Status        MolecularTherapyStatus  `json:"status"`
	NotDoneReason *Coding[NotDoneReason]  `json:"notDoneReason,omitempty"`
	Period        *Period                 `json:"period,omitempty"`
	Medication    []Coding[ATCCode]       `json:"medication,omitempty"`
	ReasonStopped *Coding[StopReason]     `json:"reasonStopped,omitempty"`
	Dosage        string                  `json:"dosage,omitempty"`
	Note          string                  `json:"note,omitempty"`
}

// Response is a RECIST response assessment for one therapy.
type Response struct {
	ID            ResponseID     `json:"id"`
	Patient       PatientID      `json:"patient"`
	Therapy       TherapyID      `json:"therapy"`
	EffectiveDate Date           `json:"effectiveDate"`
	Value         Coding[RECIST] `json:"value"`
}
