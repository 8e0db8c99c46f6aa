package validation

import (
	"fmt"

	"github.com/mtb-intake-service/internal/domain"
)

// Coding validators. Versioned catalogs use a three-step ladder: version
// defined, version known, code member of that version. Each step
// presupposes the previous one, hence AndThen.

func (v *FileValidator) validICD10Coding(c *domain.Coding[domain.ICD10Code], loc domain.Location) Outcome {
	return MustBe(c.Version != "", loc, "ICD-10-GM coding without catalog version").
		AndThen(func() Outcome {
			return MustBe(v.catalogs.HasICD10Version(c.Version), loc,
				fmt.Sprintf("unknown ICD-10-GM version %q", c.Version))
		}).
		AndThen(func() Outcome {
			return MustBe(v.catalogs.HasICD10Code(c.Version, c.Code), loc,
				fmt.Sprintf("code %q not in ICD-10-GM %s", c.Code, c.Version))
		})
}

func (v *FileValidator) validICDO3TCoding(c *domain.Coding[domain.ICDO3TCode], loc domain.Location) Outcome {
	return MustBe(c.Version != "", loc, "ICD-O-3-T coding without catalog version").
		AndThen(func() Outcome {
			return MustBe(v.catalogs.HasICDO3Version(c.Version), loc,
				fmt.Sprintf("unknown ICD-O-3 version %q", c.Version))
		}).
		AndThen(func() Outcome {
			return MustBe(v.catalogs.HasICDO3TopographyCode(c.Version, c.Code), loc,
				fmt.Sprintf("code %q not a topography code of ICD-O-3 %s", c.Code, c.Version))
		})
}

func (v *FileValidator) validICDO3MCoding(c *domain.Coding[domain.ICDO3MCode], loc domain.Location) Outcome {
	return MustBe(c.Version != "", loc, "ICD-O-3-M coding without catalog version").
		AndThen(func() Outcome {
			return MustBe(v.catalogs.HasICDO3Version(c.Version), loc,
				fmt.Sprintf("unknown ICD-O-3 version %q", c.Version))
		}).
		AndThen(func() Outcome {
			return MustBe(v.catalogs.HasICDO3MorphologyCode(c.Version, c.Code), loc,
				fmt.Sprintf("code %q not a morphology code of ICD-O-3 %s", c.Code, c.Version))
		})
}

func (v *FileValidator) validMedication(medication []domain.Coding[domain.ATCCode], loc domain.Location) Outcome {
	return Each(medication, func(m domain.Coding[domain.ATCCode]) Outcome {
		return MustBe(v.catalogs.HasATCCode(m.Code), loc,
			fmt.Sprintf("medication code %q not in ATC catalog", m.Code))
	})
}

func (v *FileValidator) validGeneCoding(c *domain.Coding[domain.HGNCSymbol], loc domain.Location) Outcome {
	return MustBe(v.catalogs.HasHGNCSymbol(c.Code), loc,
		fmt.Sprintf("gene symbol %q not an approved HGNC symbol", c.Code))
}
