// Package peptides converts peptide-level quantification output into a
// single denormalized table by joining it against experiment-design
// metadata, normalizing the run and accession identifiers the two tables
// use so they can be linked on a common key.
package peptides

import "strings"

// rawExtensions are the spectrum-file extensions stripped from run
// identifiers before tables are joined.
var rawExtensions = []string{".raw", ".RAW", ".mzML"}

// RemoveFileExtension strips known raw-spectrum file extensions from a run
// or data-file identifier. Note that the substrings are removed wherever
// they occur, not only at the end of the name; downstream consumers depend
// on this exact behavior, so keep it even though a filename containing
// ".raw" mid-name is silently mangled.
func RemoveFileExtension(filename string) string {
	for _, ext := range rawExtensions {
		filename = strings.ReplaceAll(filename, ext, "")
	}
	return filename
}

// ParseProteinAccession canonicalizes a semicolon-delimited list of protein
// accessions. A token of the cross-reference form db|id|name is replaced by
// its name field, e.g. tr|CONTAMINANT_Q3SX28|CONTAMINANT_TPM2_BOVIN becomes
// CONTAMINANT_TPM2_BOVIN; any other token passes through unchanged. Order
// and count of tokens are preserved.
func ParseProteinAccession(accession string) string {
	tokens := strings.Split(accession, ";")
	out := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if strings.Count(token, "|") == 2 {
			token = strings.Split(token, "|")[2]
		}
		out = append(out, token)
	}
	return strings.Join(out, ";")
}

// StudyAccession derives the study accession from a sample accession of the
// form PROJECT-SAMPLEID. A sample accession without a dash is returned
// whole.
func StudyAccession(sampleID string) string {
	return strings.Split(sampleID, "-")[0]
}

// BestSearchEngineScore converts a posterior probability into a best search
// engine error score.
func BestSearchEngineScore(probability float64) float64 {
	return 1 - probability
}
