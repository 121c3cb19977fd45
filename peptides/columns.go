package peptides

// Canonical column names of the merged peptide intensity table.
const (
	ColProteinAccession = "protein_accession"
	ColPeptideSequence  = "peptide_sequence"
	ColCharge           = "charge"
	ColIntensity        = "intensity"
	ColReference        = "reference"
	ColCondition        = "condition"
	ColRun              = "run"
	ColBioReplicate     = "bioreplicate"
	ColFraction         = "fraction"
	ColFragmentIon      = "fragment_ion"
	ColIsotopeLabelType = "isotope_label_type"
	ColSampleID         = "sample_id"
	ColStudyID          = "study_id"
)

// SDRF source column names.
const (
	SDRFSourceName = "source name"
	SDRFDataFile   = "comment[data file]"
)

// msstatsRenames maps MSstats source columns to their canonical names.
var msstatsRenames = map[string]string{
	"ProteinName":     ColProteinAccession,
	"PeptideSequence": ColPeptideSequence,
	"PrecursorCharge": ColCharge,
	"Run":             ColRun,
	"Condition":       ColCondition,
	"Intensity":       ColIntensity,
	"Reference":       ColReference,
}

// msstatsRequired lists the source columns an MSstats table must carry.
var msstatsRequired = []string{
	"ProteinName",
	"PeptideSequence",
	"PrecursorCharge",
	"Run",
	"Condition",
	"Intensity",
	"Reference",
}

// canonicalColumns is the restricted column set imposed when the source
// table carries no fraction column.
var canonicalColumns = []string{
	ColProteinAccession,
	ColPeptideSequence,
	ColCharge,
	ColIntensity,
	ColReference,
	ColCondition,
	ColRun,
	ColBioReplicate,
	ColFraction,
	ColFragmentIon,
	ColIsotopeLabelType,
}
