package domain

// Bounds for the numeric findings of an NGS report.
const (
	BRCAnessMin = 0.0
	BRCAnessMax = 1.0
	MSIMin      = 0.0
	MSIMax      = 2.0
	TMBMin      = 0.0
	TMBMax      = 1e6
)

// StartEnd is a genomic position range.
type StartEnd struct {
	Start int64  `json:"start"`
	End   *int64 `json:"end,omitempty"`
}

// SimpleVariant is a small somatic variant (SNV or small indel) found by
// sequencing.
type SimpleVariant struct {
	ID               VariantID          `json:"id"`
	Gene             Coding[HGNCSymbol] `json:"gene"`
	Chromosome       string             `json:"chromosome,omitempty"`
	Position         *StartEnd          `json:"position,omitempty"`
	RefAllele        string             `json:"refAllele,omitempty"`
	AltAllele        string             `json:"altAllele,omitempty"`
	DNAChange        string             `json:"dnaChange,omitempty"`
	AminoAcidChange  string             `json:"aminoAcidChange,omitempty"`
	ReadDepth        *int               `json:"readDepth,omitempty"`
	AllelicFrequency *float64           `json:"allelicFrequency,omitempty"`
	CosmicID         string             `json:"cosmicId,omitempty"`
	DbSNPID          string             `json:"dbSNPId,omitempty"`
	Interpretation   string             `json:"interpretation,omitempty"`
}

// CNV is a copy-number variation.
type CNV struct {
	ID                    VariantID            `json:"id"`
	Chromosome            string               `json:"chromosome,omitempty"`
	StartRange            *StartEnd            `json:"startRange,omitempty"`
	EndRange              *StartEnd            `json:"endRange,omitempty"`
	TotalCopyNumber       *int                 `json:"totalCopyNumber,omitempty"`
	RelativeCopyNumber    *float64             `json:"relativeCopyNumber,omitempty"`
	ReportedAffectedGenes []Coding[HGNCSymbol] `json:"reportedAffectedGenes,omitempty"`
	CNA                   string               `json:"cnA,omitempty"`
	CNB                   string               `json:"cnB,omitempty"`
}

// FusionPartner is one side of a gene fusion.
type FusionPartner struct {
	Gene     Coding[HGNCSymbol] `json:"gene"`
	Position *int64             `json:"position,omitempty"`
	Strand   string             `json:"strand,omitempty"`
}

// DNAFusion is a fusion event detected on DNA level.
type DNAFusion struct {
	ID                VariantID      `json:"id"`
	FivePrimePartner  *FusionPartner `json:"fusionPartner5prime,omitempty"`
	ThreePrimePartner *FusionPartner `json:"fusionPartner3prime,omitempty"`
	ReportedNumReads  *int           `json:"reportedNumReads,omitempty"`
}

// RNAFusion is a fusion event detected on RNA level.
type RNAFusion struct {
	ID                VariantID      `json:"id"`
	FivePrimePartner  *FusionPartner `json:"fusionPartner5prime,omitempty"`
	ThreePrimePartner *FusionPartner `json:"fusionPartner3prime,omitempty"`
	Effect            string         `json:"effect,omitempty"`
	CosmicID          string         `json:"cosmicId,omitempty"`
	ReportedNumReads  *int           `json:"reportedNumReads,omitempty"`
}

// RNASeq is an expression finding for one gene.
type RNASeq struct {
	ID                          VariantID          `json:"id"`
	Gene                        Coding[HGNCSymbol] `json:"gene"`
	TranscriptID                string             `json:"transcriptId,omitempty"`
	FragmentsPerKilobaseMillion *float64           `json:"fragmentsPerKilobaseMillion,omitempty"`
	TissueCorrectedExpression   *bool              `json:"tissueCorrectedExpression,omitempty"`
	RawCounts                   *int               `json:"rawCounts,omitempty"`
	CohortRanking               *int               `json:"cohortRanking,omitempty"`
}

// NGSReportMetadata documents the sequencing setup of a report.
type NGSReportMetadata struct {
	KitType         string `json:"kitType,omitempty"`
	KitManufacturer string `json:"kitManufacturer,omitempty"`
	Sequencer       string `json:"sequencer,omitempty"`
	ReferenceGenome string `json:"referenceGenome,omitempty"`
	Pipeline        string `json:"pipeline,omitempty"`
}

// SomaticNGSReport carries the molecular findings of a sequencing run on
// one specimen. Its tumor-cell content must have been determined
// bioinformatically.
type SomaticNGSReport struct {
	ID                 NGSReportID         `json:"id"`
	Patient            PatientID           `json:"patient"`
	Specimen           SpecimenID          `json:"specimen"`
	IssuedOn           *Date               `json:"issuedOn,omitempty"`
	SequencingType     string              `json:"sequencingType,omitempty"`
	Metadata           []NGSReportMetadata `json:"metadata,omitempty"`
	TumorCellContent   *TumorCellContent   `json:"tumorCellContent,omitempty"`
	BRCAness           *float64            `json:"brcaness,omitempty"`
	MSI                *float64            `json:"msi,omitempty"`
	TMB                *float64            `json:"tmb,omitempty"`
	SimpleVariants     []SimpleVariant     `json:"simpleVariants,omitempty"`
	CopyNumberVariants []CNV               `json:"copyNumberVariants,omitempty"`
	DNAFusions         []DNAFusion         `json:"dnaFusions,omitempty"`
	RNAFusions         []RNAFusion         `json:"rnaFusions,omitempty"`
	RNASeqs            []RNASeq            `json:"rnaSeqs,omitempty"`
}

// VariantIDs collects the ids of all variants in the report, used to
// resolve supporting-variant references from recommendations.
func (r *SomaticNGSReport) VariantIDs() []VariantID {
	var ids []VariantID
	for _, v := range r.SimpleVariants {
		ids = append(ids, v.ID)
	}
	for _, v := range r.CopyNumberVariants {
		ids = append(ids, v.ID)
	}
	for _, v := range r.DNAFusions {
		ids = append(ids, v.ID)
	}
	for _, v := range r.RNAFusions {
		ids = append(ids, v.ID)
	}
	for _, v := range r.RNASeqs {
		ids = append(ids, v.ID)
	}
	return ids
}
