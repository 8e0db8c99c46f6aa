package domain

// HistologyReport is a pathology report on one specimen. Its tumor-cell
// content, when present, must have been determined histologically.
type HistologyReport struct {
	ID               HistologyReportID `json:"id"`
	Patient          PatientID         `json:"patient"`
	Specimen         SpecimenID        `json:"specimen"`
	IssuedOn         *Date             `json:"issuedOn,omitempty"`
	TumorMorphology  *TumorMorphology  `json:"tumorMorphology,omitempty"`
	TumorCellContent *TumorCellContent `json:"tumorCellContent,omitempty"`
}

// MolecularPathologyFinding is a free-text molecular-pathology result on
// one specimen.
type MolecularPathologyFinding struct {
	ID       MolecularPathologyFindingID `json:"id"`
	Patient  PatientID                   `json:"patient"`
	Specimen SpecimenID                  `json:"specimen"`
	IssuedOn *Date                       `json:"issuedOn,omitempty"`
	Note     string                      `json:"note,omitempty"`
}
