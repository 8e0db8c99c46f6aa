package domain

// SpecimenCollection documents when, where and how a specimen was taken.
type SpecimenCollection struct {
	Date         Date                 `json:"date"`
	Localization SpecimenLocalization `json:"localization"`
	Method       CollectionMethod     `json:"method"`
}

// Specimen is a tumor sample. Its ICD-10 coding ties it to one of the
// file's diagnoses.
type Specimen struct {
	ID         SpecimenID          `json:"id"`
	Patient    PatientID           `json:"patient"`
	ICD10      Coding[ICD10Code]   `json:"icd10"`
	Type       *SpecimenType       `json:"type,omitempty"`
	Collection *SpecimenCollection `json:"collection,omitempty"`
}

// TumorCellContent is the fraction of tumor cells in a specimen, in [0, 1],
// determined either histologically or bioinformatically.
type TumorCellContent struct {
	ID       TumorCellContentID     `json:"id"`
	Specimen SpecimenID             `json:"specimen"`
	Method   TumorCellContentMethod `json:"method"`
	Value    float64                `json:"value"`
}

// TumorMorphology codes the tumor morphology of a specimen against
// ICD-O-3-M.
type TumorMorphology struct {
	ID       TumorMorphologyID  `json:"id"`
	Patient  PatientID          `json:"patient"`
	Specimen SpecimenID         `json:"specimen"`
	ICDO3M   Coding[ICDO3MCode] `json:"icdO3M"`
	Notes    string             `json:"notes,omitempty"`
}
