package validation

import (
	"fmt"

	"github.com/mtb-intake-service/internal/domain"
)

func (v *FileValidator) validSpecimen(ctx *Context, s *domain.Specimen) Outcome {
	id := s.ID.String()

	out := All(
		MatchesEqual(s.Patient, ctx.Patient, at(KindSpecimen, id, "patient"),
			"specimen does not refer to the file's patient"),
		v.validICD10Coding(&s.ICD10, at(KindSpecimen, id, "icd10")),
		// The specimen must stem from a tumor entity documented as diagnosis.
		InSet(s.ICD10.Code, ctx.DiagnosisICD10, at(KindSpecimen, id, "icd10"),
			fmt.Sprintf("ICD-10 code %q does not match any diagnosis of the file", s.ICD10.Code)),
	)

	out = out.And(ShouldBe(s.Type != nil, at(KindSpecimen, id, "type"),
		"specimen type should be documented"))
	if s.Type != nil {
		out = out.And(MustBe(s.Type.IsValid(), at(KindSpecimen, id, "type"),
			fmt.Sprintf("invalid specimen type %q", *s.Type)))
	}

	out = out.And(ShouldBe(s.Collection != nil, at(KindSpecimen, id, "collection"),
		"specimen collection should be documented"))
	if s.Collection != nil {
		out = out.And(
			MustBe(s.Collection.Localization.IsValid(), at(KindSpecimen, id, "collection"),
				fmt.Sprintf("invalid collection localization %q", s.Collection.Localization)),
			MustBe(s.Collection.Method.IsValid(), at(KindSpecimen, id, "collection"),
				fmt.Sprintf("invalid collection method %q", s.Collection.Method)),
		)
	}

	return out
}

func (v *FileValidator) validTumorCellContent(ctx *Context, t *domain.TumorCellContent) Outcome {
	id := t.ID.String()
	return All(
		InSet(t.Specimen, ctx.Specimens, at(KindTumorCellContent, id, "specimen"),
			fmt.Sprintf("specimen %q not present in file", t.Specimen)),
		MustBe(t.Method.IsValid(), at(KindTumorCellContent, id, "method"),
			fmt.Sprintf("invalid tumor-cell-content method %q", t.Method)),
		MustBe(t.Value >= 0 && t.Value <= 1, at(KindTumorCellContent, id, "value"),
			fmt.Sprintf("tumor-cell content %g outside [0, 1]", t.Value)),
	)
}

func (v *FileValidator) validTumorMorphology(ctx *Context, m *domain.TumorMorphology) Outcome {
	id := m.ID.String()
	return All(
		MatchesEqual(m.Patient, ctx.Patient, at(KindTumorMorphology, id, "patient"),
			"tumor morphology does not refer to the file's patient"),
		InSet(m.Specimen, ctx.Specimens, at(KindTumorMorphology, id, "specimen"),
			fmt.Sprintf("specimen %q not present in file", m.Specimen)),
		v.validICDO3MCoding(&m.ICDO3M, at(KindTumorMorphology, id, "icdO3M")),
	)
}

func (v *FileValidator) validHistologyReport(ctx *Context, r *domain.HistologyReport) Outcome {
	id := r.ID.String()

	out := All(
		MatchesEqual(r.Patient, ctx.Patient, at(KindHistologyReport, id, "patient"),
			"histology report does not refer to the file's patient"),
		InSet(r.Specimen, ctx.Specimens, at(KindHistologyReport, id, "specimen"),
			fmt.Sprintf("specimen %q not present in file", r.Specimen)),
		MustBe(r.IssuedOn != nil, at(KindHistologyReport, id, "issuedOn"),
			"issue date must be documented"),
	)

	out = out.And(ShouldBe(r.TumorMorphology != nil, at(KindHistologyReport, id, "tumorMorphology"),
		"tumor morphology should be documented"))
	if r.TumorMorphology != nil {
		out = out.And(v.validTumorMorphology(ctx, r.TumorMorphology))
	}

	out = out.And(MustBe(r.TumorCellContent != nil, at(KindHistologyReport, id, "tumorCellContent"),
		"tumor-cell content must be documented"))
	if r.TumorCellContent != nil {
		out = out.And(
			MustBe(r.TumorCellContent.Method == domain.TumorCellContentHistologic,
				at(KindHistologyReport, id, "tumorCellContent"),
				"tumor-cell content of a histology report must be determined histologically"),
			v.validTumorCellContent(ctx, r.TumorCellContent),
		)
	}

	return out
}

func (v *FileValidator) validMolecularPathologyFinding(ctx *Context, f *domain.MolecularPathologyFinding) Outcome {
	id := f.ID.String()
	return All(
		MatchesEqual(f.Patient, ctx.Patient, at(KindMolecularPathologyFinding, id, "patient"),
			"molecular-pathology finding does not refer to the file's patient"),
		InSet(f.Specimen, ctx.Specimens, at(KindMolecularPathologyFinding, id, "specimen"),
			fmt.Sprintf("specimen %q not present in file", f.Specimen)),
		MustBe(f.IssuedOn != nil, at(KindMolecularPathologyFinding, id, "issuedOn"),
			"issue date must be documented"),
	)
}

func (v *FileValidator) validNGSReport(ctx *Context, r *domain.SomaticNGSReport) Outcome {
	id := r.ID.String()

	out := All(
		MatchesEqual(r.Patient, ctx.Patient, at(KindSomaticNGSReport, id, "patient"),
			"NGS report does not refer to the file's patient"),
		InSet(r.Specimen, ctx.Specimens, at(KindSomaticNGSReport, id, "specimen"),
			fmt.Sprintf("specimen %q not present in file", r.Specimen)),
	)

	out = out.And(MustBe(r.TumorCellContent != nil, at(KindSomaticNGSReport, id, "tumorCellContent"),
		"tumor-cell content must be documented"))
	if r.TumorCellContent != nil {
		out = out.And(
			MustBe(r.TumorCellContent.Method == domain.TumorCellContentBioinformatic,
				at(KindSomaticNGSReport, id, "tumorCellContent"),
				"tumor-cell content of an NGS report must be determined bioinformatically"),
			v.validTumorCellContent(ctx, r.TumorCellContent),
		)
	}

	out = out.And(CouldBe(r.BRCAness != nil, at(KindSomaticNGSReport, id, "brcaness"),
		"BRCAness value not documented"))
	if r.BRCAness != nil {
		out = out.And(MustBe(*r.BRCAness >= domain.BRCAnessMin && *r.BRCAness <= domain.BRCAnessMax,
			at(KindSomaticNGSReport, id, "brcaness"),
			fmt.Sprintf("BRCAness %g outside [%g, %g]", *r.BRCAness, domain.BRCAnessMin, domain.BRCAnessMax)))
	}

	out = out.And(CouldBe(r.MSI != nil, at(KindSomaticNGSReport, id, "msi"),
		"MSI value not documented"))
	if r.MSI != nil {
		out = out.And(MustBe(*r.MSI >= domain.MSIMin && *r.MSI <= domain.MSIMax,
			at(KindSomaticNGSReport, id, "msi"),
			fmt.Sprintf("MSI %g outside [%g, %g]", *r.MSI, domain.MSIMin, domain.MSIMax)))
	}

	out = out.And(MustBe(r.TMB != nil, at(KindSomaticNGSReport, id, "tmb"),
		"tumor mutational burden must be documented"))
	if r.TMB != nil {
		out = out.And(MustBe(*r.TMB >= domain.TMBMin && *r.TMB <= domain.TMBMax,
			at(KindSomaticNGSReport, id, "tmb"),
			fmt.Sprintf("TMB %g outside [%g, %g]", *r.TMB, domain.TMBMin, domain.TMBMax)))
	}

	out = out.And(Each(r.SimpleVariants, func(sv domain.SimpleVariant) Outcome {
		return v.validGeneCoding(&sv.Gene, at(KindSimpleVariant, sv.ID.String(), "gene"))
	}))
	out = out.And(Each(r.CopyNumberVariants, func(cnv domain.CNV) Outcome {
		loc := at(KindCNV, cnv.ID.String(), "reportedAffectedGenes")
		return Each(cnv.ReportedAffectedGenes, func(g domain.Coding[domain.HGNCSymbol]) Outcome {
			return v.validGeneCoding(&g, loc)
		})
	}))
	out = out.And(Each(r.RNASeqs, func(rs domain.RNASeq) Outcome {
		return v.validGeneCoding(&rs.Gene, at(KindRNASeq, rs.ID.String(), "gene"))
	}))

	return out
}
