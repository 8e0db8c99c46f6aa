// Package domain contains the typed data model of a Molecular Tumor Board
// (MTB) file: patient identity, diagnoses, guideline therapies, specimens,
// histology and molecular-pathology reports, NGS findings, care plans,
// recommendations, claims, molecular therapies and responses.
//
// Entities are immutable values created at the intake boundary. Coded
// attributes reference external terminologies (ICD-10-GM, ICD-O-3, ATC,
// HGNC) through Coding values; membership in those catalogs is checked by
// the validation layer, not here.
package domain

// Code-system names for coded values, one per code type. Coding.System is
// carried as given: it is neither derived from nor checked against the
// code type.
const (
	SystemICD10GM = "ICD-10-GM"
	SystemICDO3T  = "ICD-O-3-T"
	SystemICDO3M  = "ICD-O-3-M"
	SystemATC     = "ATC"
	SystemHGNC    = "HGNC"
)

// ICD10Code is a diagnosis code from the German modification of ICD-10.
type ICD10Code string

// ICDO3TCode is an ICD-O-3 topography code.
type ICDO3TCode string

// ICDO3MCode is an ICD-O-3 morphology code.
type ICDO3MCode string

// ATCCode is a medication code from the ATC classification.
type ATCCode string

// HGNCSymbol is an approved HGNC gene symbol.
type HGNCSymbol string

// Coding is a coded value: a code from an external code system together with
// an optional human-readable display and, for versioned catalogs, the
// catalog version the code was taken from.
type Coding[C ~string] struct {
	Code    C      `json:"code"`
	Display string `json:"display,omitempty"`
	System  string `json:"system,omitempty"`
	Version string `json:"version,omitempty"`
}

// NewCoding creates a Coding with code and display only.
func NewCoding[C ~string](code C, display string) Coding[C] {
	return Coding[C]{Code: code, Display: display}
}
