// Package catalog loads the external code-system catalogs (ICD-10-GM,
// ICD-O-3 topography and morphology, ATC, HGNC) into an immutable
// in-memory registry. Catalogs are read once at startup; a missing catalog
// is a startup error, never a per-request one.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mtb-intake-service/internal/domain"
)

// Catalog file naming inside the configured directory. Versioned catalogs
// carry their version in the file name, e.g. icd10gm-2022.csv.
const (
	icd10Prefix      = "icd10gm-"
	topographyPrefix = "icdo3-topography-"
	morphologyPrefix = "icdo3-morphology-"
	atcFile          = "atc.csv"
	hgncFile         = "hgnc.csv"
	catalogExt       = ".csv"
)

// Registry holds all catalog code sets. It is effectively immutable after
// construction and safe for concurrent use.
type Registry struct {
	icd10      map[string]map[domain.ICD10Code]struct{}
	topography map[string]map[domain.ICDO3TCode]struct{}
	morphology map[string]map[domain.ICDO3MCode]struct{}
	atc        map[domain.ATCCode]struct{}
	hgnc       map[domain.HGNCSymbol]struct{}
}

// Load reads every catalog file under dir and builds the registry. It
// fails if the directory is missing or any of the five catalogs has no
// file at all.
func Load(dir string, logger *logrus.Logger) (*Registry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading catalog directory: %w", err)
	}

	r := &Registry{
		icd10:      make(map[string]map[domain.ICD10Code]struct{}),
		topography: make(map[string]map[domain.ICDO3TCode]struct{}),
		morphology: make(map[string]map[domain.ICDO3MCode]struct{}),
		atc:        make(map[domain.ATCCode]struct{}),
		hgnc:       make(map[domain.HGNCSymbol]struct{}),
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, catalogExt) {
			continue
		}
		path := filepath.Join(dir, name)

		switch {
		case strings.HasPrefix(name, icd10Prefix):
			version := versionOf(name, icd10Prefix)
			codes, err := readCodes(path)
			if err != nil {
				return nil, fmt.Errorf("loading ICD-10-GM %s: %w", version, err)
			}
			r.icd10[version] = toSet[domain.ICD10Code](codes)

		case strings.HasPrefix(name, topographyPrefix):
			version := versionOf(name, topographyPrefix)
			codes, err := readCodes(path)
			if err != nil {
				return nil, fmt.Errorf("loading ICD-O-3 topography %s: %w", version, err)
			}
			r.topography[version] = toSet[domain.ICDO3TCode](codes)

		case strings.HasPrefix(name, morphologyPrefix):
			version := versionOf(name, morphologyPrefix)
			codes, err := readCodes(path)
			if err != nil {
				return nil, fmt.Errorf("loading ICD-O-3 morphology %s: %w", version, err)
			}
			r.morphology[version] = toSet[domain.ICDO3MCode](codes)

		case name == atcFile:
			codes, err := readCodes(path)
			if err != nil {
				return nil, fmt.Errorf("loading ATC: %w", err)
			}
			r.atc = toSet[domain.ATCCode](codes)

		case name == hgncFile:
			codes, err := readCodes(path)
			if err != nil {
				return nil, fmt.Errorf("loading HGNC: %w", err)
			}
			r.hgnc = toSet[domain.HGNCSymbol](codes)
		}
	}

	if err := r.checkComplete(); err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"icd10_versions": len(r.icd10),
		"icdo3_versions": len(r.topography),
		"atc_codes":      len(r.atc),
		"hgnc_symbols":   len(r.hgnc),
	}).Info("Code-system catalogs loaded")

	return r, nil
}

func (r *Registry) checkComplete() error {
	if len(r.icd10) == 0 {
		return fmt.Errorf("%w: ICD-10-GM", domain.ErrCatalogUnloaded)
	}
	if len(r.topography) == 0 || len(r.morphology) == 0 {
		return fmt.Errorf("%w: ICD-O-3", domain.ErrCatalogUnloaded)
	}
	if len(r.atc) == 0 {
		return fmt.Errorf("%w: ATC", domain.ErrCatalogUnloaded)
	}
	if len(r.hgnc) == 0 {
		return fmt.Errorf("%w: HGNC", domain.ErrCatalogUnloaded)
	}
	return nil
}

// ICD10Versions lists the loaded ICD-10-GM catalog versions, sorted.
func (r *Registry) ICD10Versions() []string {
	versions := make([]string, 0, len(r.icd10))
	for v := range r.icd10 {
		versions = append(versions, v)
	}
	sort.Strings(versions)
	return versions
}

// HasICD10Version reports whether the ICD-10-GM catalog version is loaded.
func (r *Registry) HasICD10Version(version string) bool {
	_, ok := r.icd10[version]
	return ok
}

// HasICD10Code reports whether code is part of the given ICD-10-GM version.
func (r *Registry) HasICD10Code(version string, code domain.ICD10Code) bool {
	codes, ok := r.icd10[version]
	if !ok {
		return false
	}
	_, ok = codes[code]
	return ok
}

// HasICDO3Version reports whether the ICD-O-3 catalog version is loaded.
func (r *Registry) HasICDO3Version(version string) bool {
	_, topo := r.topography[version]
	_, morpho := r.morphology[version]
	return topo || morpho
}

// HasICDO3TopographyCode reports whether code is a topography code of the
// given ICD-O-3 version.
func (r *Registry) HasICDO3TopographyCode(version string, code domain.ICDO3TCode) bool {
	codes, ok := r.topography[version]
	if !ok {
		return false
	}
	_, ok = codes[code]
	return ok
}

// HasICDO3MorphologyCode reports whether code is a morphology code of the
// given ICD-O-3 version.
func (r *Registry) HasICDO3MorphologyCode(version string, code domain.ICDO3MCode) bool {
	codes, ok := r.morphology[version]
	if !ok {
		return false
	}
	_, ok = codes[code]
	return ok
}

// ICD10Codes returns the codes of an ICD-10-GM version, sorted. Unknown
// versions yield an empty set.
func (r *Registry) ICD10Codes(version string) []domain.ICD10Code {
	return sortedCodes(r.icd10[version])
}

// TopographyCodes returns the topography codes of an ICD-O-3 version,
// sorted.
func (r *Registry) TopographyCodes(version string) []domain.ICDO3TCode {
	return sortedCodes(r.topography[version])
}

// MorphologyCodes returns the morphology codes of an ICD-O-3 version,
// sorted.
func (r *Registry) MorphologyCodes(version string) []domain.ICDO3MCode {
	return sortedCodes(r.morphology[version])
}

// ATCCodes returns all known ATC medication codes, sorted.
func (r *Registry) ATCCodes() []domain.ATCCode {
	return sortedCodes(r.atc)
}

// HasATCCode reports whether code is a known ATC medication code.
func (r *Registry) HasATCCode(code domain.ATCCode) bool {
	_, ok := r.atc[code]
	return ok
}

// HasHGNCSymbol reports whether symbol is an approved HGNC gene symbol.
func (r *Registry) HasHGNCSymbol(symbol domain.HGNCSymbol) bool {
	_, ok := r.hgnc[symbol]
	return ok
}

func versionOf(filename, prefix string) string {
	return strings.TrimSuffix(strings.TrimPrefix(filename, prefix), catalogExt)
}

// readCodes reads the first CSV column of a catalog file; further columns
// (display names) are ignored. Blank lines and a leading "code" header are
// skipped.
func readCodes(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var codes []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
		}
		if len(record) == 0 {
			continue
		}
		code := strings.TrimSpace(record[0])
		if code == "" || strings.EqualFold(code, "code") {
			continue
		}
		codes = append(codes, code)
	}
	return codes, nil
}

func sortedCodes[C ~string](set map[C]struct{}) []C {
	codes := make([]C, 0, len(set))
	for c := range set {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

func toSet[C ~string](codes []string) map[C]struct{} {
	set := make(map[C]struct{}, len(codes))
	for _, c := range codes {
		set[C(c)] = struct{}{}
	}
	return set
}
