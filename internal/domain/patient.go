package domain

// HealthInsurance identifies the payer of a patient.
type HealthInsurance struct {
	Ext string `json:"ext"`
}

// Patient is the subject of an MTB file. Birth and death dates carry
// month precision only.
type Patient struct {
	ID          PatientID        `json:"id"`
	Gender      Gender           `json:"gender"`
	BirthDate   *YearMonth       `json:"birthDate,omitempty"`
	ManagingZPM string           `json:"managingZPM,omitempty"`
	Insurance   *HealthInsurance `json:"insurance,omitempty"`
	DateOfDeath *YearMonth       `json:"dateOfDeath,omitempty"`
}

// Consent records whether the patient agreed to the use of their medical
// data. A rejected consent forbids any medical payload in the file.
type Consent struct {
	ID      ConsentID     `json:"id"`
	Patient PatientID     `json:"patient"`
	Status  ConsentStatus `json:"status"`
}

// MTBEpisode is the care episode the file documents.
type MTBEpisode struct {
	ID      EpisodeID `json:"id"`
	Patient PatientID `json:"patient"`
	Period  Period    `json:"period"`
}
