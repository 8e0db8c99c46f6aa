package domain

// Closed enumerations of the MTB data model. Word-based values serialize as
// lowercase kebab-case identifiers; code-like values (FFPE, WHO grades,
// therapy priorities, evidence levels, RECIST classes) keep their
// conventional spelling.

// Gender of a patient.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderOther   Gender = "other"
	GenderUnknown Gender = "unknown"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther, GenderUnknown:
		return true
	default:
		return false
	}
}

func (g Gender) String() string { return string(g) }

// ConsentStatus governs whether medical data may be present in a file at all.
type ConsentStatus string

const (
	ConsentActive   ConsentStatus = "active"
	ConsentRejected ConsentStatus = "rejected"
)

func (s ConsentStatus) IsValid() bool {
	return s == ConsentActive || s == ConsentRejected
}

func (s ConsentStatus) String() string { return string(s) }

// GuidelineTreatmentStatus describes how far guideline therapy options have
// been pursued for a diagnosis.
type GuidelineTreatmentStatus string

const (
	GuidelineTreatmentExhausted    GuidelineTreatmentStatus = "exhausted"
	GuidelineTreatmentNonExhausted GuidelineTreatmentStatus = "non-exhausted"
	GuidelineTreatmentImpossible   GuidelineTreatmentStatus = "impossible"
	GuidelineTreatmentNoGuidelines GuidelineTreatmentStatus = "no-guidelines-available"
	GuidelineTreatmentUnknown      GuidelineTreatmentStatus = "unknown"
)

func (s GuidelineTreatmentStatus) IsValid() bool {
	switch s {
	case GuidelineTreatmentExhausted, GuidelineTreatmentNonExhausted,
		GuidelineTreatmentImpossible, GuidelineTreatmentNoGuidelines,
		GuidelineTreatmentUnknown:
		return true
	default:
		return false
	}
}

func (s GuidelineTreatmentStatus) String() string { return string(s) }

// FamilyRelationship of a family member to the patient.
type FamilyRelationship string

const (
	RelationshipFamilyMember         FamilyRelationship = "family-member"
	RelationshipExtendedFamilyMember FamilyRelationship = "extended-family-member"
)

func (r FamilyRelationship) IsValid() bool {
	return r == RelationshipFamilyMember || r == RelationshipExtendedFamilyMember
}

func (r FamilyRelationship) String() string { return string(r) }

// SpecimenType describes the kind of tumor specimen.
type SpecimenType string

const (
	SpecimenFreshTissue  SpecimenType = "fresh-tissue"
	SpecimenCryoFrozen   SpecimenType = "cryo-frozen"
	SpecimenLiquidBiopsy SpecimenType = "liquid-biopsy"
	SpecimenFFPE         SpecimenType = "FFPE"
	SpecimenUnknown      SpecimenType = "unknown"
)

func (t SpecimenType) IsValid() bool {
	switch t {
	case SpecimenFreshTissue, SpecimenCryoFrozen, SpecimenLiquidBiopsy,
		SpecimenFFPE, SpecimenUnknown:
		return true
	default:
		return false
	}
}

func (t SpecimenType) String() string { return string(t) }

// SpecimenLocalization relates the collection site to the tumor.
type SpecimenLocalization string

const (
	LocalizationPrimaryTumor SpecimenLocalization = "primary-tumor"
	LocalizationMetastasis   SpecimenLocalization = "metastasis"
	LocalizationUnknown      SpecimenLocalization = "unknown"
)

func (l SpecimenLocalization) IsValid() bool {
	switch l {
	case LocalizationPrimaryTumor, LocalizationMetastasis, LocalizationUnknown:
		return true
	default:
		return false
	}
}

func (l SpecimenLocalization) String() string { return string(l) }

// CollectionMethod describes how a specimen was obtained.
type CollectionMethod string

const (
	CollectionBiopsy       CollectionMethod = "biopsy"
	CollectionResection    CollectionMethod = "resection"
	CollectionLiquidBiopsy CollectionMethod = "liquid-biopsy"
	CollectionCytology     CollectionMethod = "cytology"
	CollectionUnknown      CollectionMethod = "unknown"
)

func (m CollectionMethod) IsValid() bool {
	switch m {
	case CollectionBiopsy, CollectionResection, CollectionLiquidBiopsy,
		CollectionCytology, CollectionUnknown:
		return true
	default:
		return false
	}
}

func (m CollectionMethod) String() string { return string(m) }

// TumorCellContentMethod is the method a tumor-cell-content value was
// determined with. Histology reports carry histologic values, NGS reports
// bioinformatic ones.
type TumorCellContentMethod string

const (
	TumorCellContentHistologic    TumorCellContentMethod = "histologic"
	TumorCellContentBioinformatic TumorCellContentMethod = "bioinformatic"
)

func (m TumorCellContentMethod) IsValid() bool {
	return m == TumorCellContentHistologic || m == TumorCellContentBioinformatic
}

func (m TumorCellContentMethod) String() string { return string(m) }

// WHOGrade of a tumor.
type WHOGrade string

const (
	WHOGradeI   WHOGrade = "I"
	WHOGradeII  WHOGrade = "II"
	WHOGradeIII WHOGrade = "III"
	WHOGradeIV  WHOGrade = "IV"
)

func (g WHOGrade) IsValid() bool {
	switch g {
	case WHOGradeI, WHOGradeII, WHOGradeIII, WHOGradeIV:
		return true
	default:
		return false
	}
}

func (g WHOGrade) String() string { return string(g) }

// TherapyRecommendationPriority orders recommendations within a care plan.
type TherapyRecommendationPriority string

const (
	Priority1 TherapyRecommendationPriority = "1"
	Priority2 TherapyRecommendationPriority = "2"
	Priority3 TherapyRecommendationPriority = "3"
	Priority4 TherapyRecommendationPriority = "4"
)

func (p TherapyRecommendationPriority) IsValid() bool {
	switch p {
	case Priority1, Priority2, Priority3, Priority4:
		return true
	default:
		return false
	}
}

func (p TherapyRecommendationPriority) String() string { return string(p) }

// LevelOfEvidenceGrading grades the evidence behind a recommendation.
type LevelOfEvidenceGrading string

const (
	LevelOfEvidenceM1A       LevelOfEvidenceGrading = "m1A"
	LevelOfEvidenceM1B       LevelOfEvidenceGrading = "m1B"
	LevelOfEvidenceM1C       LevelOfEvidenceGrading = "m1C"
	LevelOfEvidenceM2A       LevelOfEvidenceGrading = "m2A"
	LevelOfEvidenceM2B       LevelOfEvidenceGrading = "m2B"
	LevelOfEvidenceM2C       LevelOfEvidenceGrading = "m2C"
	LevelOfEvidenceM3        LevelOfEvidenceGrading = "m3"
	LevelOfEvidenceM4        LevelOfEvidenceGrading = "m4"
	LevelOfEvidenceUndefined LevelOfEvidenceGrading = "undefined"
)

func (l LevelOfEvidenceGrading) IsValid() bool {
	switch l {
	case LevelOfEvidenceM1A, LevelOfEvidenceM1B, LevelOfEvidenceM1C,
		LevelOfEvidenceM2A, LevelOfEvidenceM2B, LevelOfEvidenceM2C,
		LevelOfEvidenceM3, LevelOfEvidenceM4, LevelOfEvidenceUndefined:
		return true
	default:
		return false
	}
}

func (l LevelOfEvidenceGrading) String() string { return string(l) }

// ClaimResponseStatus is the outcome of an insurance claim.
type ClaimResponseStatus string

const (
	ClaimAccepted ClaimResponseStatus = "accepted"
	ClaimRejected ClaimResponseStatus = "rejected"
	ClaimUnknown  ClaimResponseStatus = "unknown"
)

func (s ClaimResponseStatus) IsValid() bool {
	switch s {
	case ClaimAccepted, ClaimRejected, ClaimUnknown:
		return true
	default:
		return false
	}
}

func (s ClaimResponseStatus) String() string { return string(s) }

// ClaimResponseReason explains a rejected claim.
type ClaimResponseReason string

const (
	ClaimReasonInsufficientEvidence ClaimResponseReason = "insufficient-evidence"
	ClaimReasonStandardTherapyLeft  ClaimResponseReason = "standard-therapy-not-exhausted"
	ClaimReasonApprovalRevocation   ClaimResponseReason = "approval-revocation"
	ClaimReasonOther                ClaimResponseReason = "other"
)

func (r ClaimResponseReason) IsValid() bool {
	switch r {
	case ClaimReasonInsufficientEvidence, ClaimReasonStandardTherapyLeft,
		ClaimReasonApprovalRevocation, ClaimReasonOther:
		return true
	default:
		return false
	}
}

func (r ClaimResponseReason) String() string { return string(r) }

// MolecularTherapyStatus tags the variant of a molecular-therapy record.
type MolecularTherapyStatus string

const (
	TherapyNotDone   MolecularTherapyStatus = "not-done"
	TherapyOngoing   MolecularTherapyStatus = "on-going"
	TherapyStopped   MolecularTherapyStatus = "stopped"
	TherapyCompleted MolecularTherapyStatus = "completed"
)

func (s MolecularTherapyStatus) IsValid() bool {
	switch s {
	case TherapyNotDone, TherapyOngoing, TherapyStopped, TherapyCompleted:
		return true
	default:
		return false
	}
}

func (s MolecularTherapyStatus) String() string { return string(s) }

// NotDoneReason explains why a recommended therapy was never started.
type NotDoneReason string

const (
	NotDonePaymentRefused    NotDoneReason = "payment-refused"
	NotDonePaymentPending    NotDoneReason = "payment-pending"
	NotDoneNoIndication      NotDoneReason = "no-indication"
	NotDoneMedicalReason     NotDoneReason = "medical-reason"
	NotDonePatientRefusal    NotDoneReason = "patient-refusal"
	NotDonePatientDeath      NotDoneReason = "patient-death"
	NotDoneOtherReason       NotDoneReason = "other"
	NotDoneContinuedExternal NotDoneReason = "continued-externally"
	NotDoneLostToFU          NotDoneReason = "lost-to-fu"
	NotDoneUnknown           NotDoneReason = "unknown"
)

func (r NotDoneReason) IsValid() bool {
	switch r {
	case NotDonePaymentRefused, NotDonePaymentPending, NotDoneNoIndication,
		NotDoneMedicalReason, NotDonePatientRefusal, NotDonePatientDeath,
		NotDoneOtherReason, NotDoneContinuedExternal, NotDoneLostToFU,
		NotDoneUnknown:
		return true
	default:
		return false
	}
}

func (r NotDoneReason) String() string { return string(r) }

// StopReason explains why a running therapy was stopped.
type StopReason string

const (
	StopReasonRemission          StopReason = "remission"
	StopReasonProgression        StopReason = "progression"
	StopReasonPatientWish        StopReason = "patient-wish"
	StopReasonPaymentEnded       StopReason = "payment-ended"
	StopReasonMedicalReason      StopReason = "medical-reason"
	StopReasonToxicity           StopReason = "toxicity"
	StopReasonDeterioration      StopReason = "deterioration"
	StopReasonPatientDeath       StopReason = "patient-death"
	StopReasonOther              StopReason = "other"
	StopReasonContinuedExternal  StopReason = "continued-externally"
	StopReasonStateDeterioration StopReason = "state-deterioration"
	StopReasonUnknown            StopReason = "unknown"
)

func (r StopReason) IsValid() bool {
	switch r {
	case StopReasonRemission, StopReasonProgression, StopReasonPatientWish,
		StopReasonPaymentEnded, StopReasonMedicalReason, StopReasonToxicity,
		StopReasonDeterioration, StopReasonPatientDeath, StopReasonOther,
		StopReasonContinuedExternal, StopReasonStateDeterioration,
		StopReasonUnknown:
		return true
	default:
		return false
	}
}

func (r StopReason) String() string { return string(r) }

// RECIST response classification.
type RECIST string

const (
	RECISTCompleteResponse   RECIST = "CR"
	RECISTPartialResponse    RECIST = "PR"
	RECISTMixedResponse      RECIST = "MR"
	RECISTStableDisease      RECIST = "SD"
	RECISTProgressiveDisease RECIST = "PD"
	RECISTNotAssessable      RECIST = "NA"
)

func (r RECIST) IsValid() bool {
	switch r {
	case RECISTCompleteResponse, RECISTPartialResponse, RECISTMixedResponse,
		RECISTStableDisease, RECISTProgressiveDisease, RECISTNotAssessable:
		return true
	default:
		return false
	}
}

func (r RECIST) String() string { return string(r) }
