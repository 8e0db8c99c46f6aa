package domain

// TherapyLine numbers a guideline therapy within the treatment sequence.
type TherapyLine int

// PreviousGuidelineTherapy is a guideline therapy the patient received
// before the one documented as last.
type PreviousGuidelineTherapy struct {
	ID          TherapyID         `json:"id"`
	Patient     PatientID         `json:"patient"`
	Diagnosis   DiagnosisID       `json:"diagnosis"`
	TherapyLine *TherapyLine      `json:"therapyLine,omitempty"`
	Medication  []Coding[ATCCode] `json:"medication,omitempty"`
}

// LastGuidelineTherapy is the most recent guideline therapy before MTB
// presentation, with its duration and stop reason.
type LastGuidelineTherapy struct {
	ID            TherapyID           `json:"id"`
	Patient       PatientID           `json:"patient"`
	Diagnosis     DiagnosisID         `json:"diagnosis"`
	TherapyLine   *TherapyLine        `json:"therapyLine,omitempty"`
	Period        *Period             `json:"period,omitempty"`
	Medication    []Coding[ATCCode]   `json:"medication,omitempty"`
	ReasonStopped *Coding[StopReason] `json:"reasonStopped,omitempty"`
}

// ECOGStatus is an ECOG performance status observation. Values range from
// 0 (fully active) to 5 (dead).
type ECOGStatus struct {
	ID            ECOGStatusID `json:"id"`
	Patient       PatientID    `json:"patient"`
	EffectiveDate *Date        `json:"effectiveDate,omitempty"`
	Value         int          `json:"value"`
}
