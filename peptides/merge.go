package peptides

import (
	"fmt"
	"strconv"

	"github.com/carbocation/pfx"
	"github.com/montanaflynn/stats"
	"gopkg.in/guregu/null.v3"
)

// Merge left-joins quantification rows onto SDRF metadata by normalized
// reference, attaching sample_id and the study_id derived from it. Every
// quantification row appears once per matching metadata row, in its
// original position; duplicate metadata references fan the row out
// contiguously. Rows with no matching reference keep null sample and study
// fields. Nothing is deduplicated or aggregated; this is purely a metadata
// attachment step.
func Merge(quant *Table, sdrf []SDRFRecord) (*Table, error) {
	refCol, exists := quant.ColumnIndex(ColReference)
	if !exists {
		return nil, pfx.Err(fmt.Errorf("quantification table has no %s column", ColReference))
	}

	samplesByRef := make(map[string][]string)
	for _, record := range sdrf {
		samplesByRef[record.Reference] = append(samplesByRef[record.Reference], record.SourceName)
	}

	out := NewTable(append(append([]string{}, quant.Columns...), ColSampleID, ColStudyID))
	out.Rows = make([][]string, 0, len(quant.Rows))

	for _, row := range quant.Rows {
		samples, matched := samplesByRef[row[refCol]]
		if !matched {
			merged := make([]string, 0, len(row)+2)
			merged = append(append(merged, row...), "", "")
			out.Rows = append(out.Rows, merged)
			continue
		}
		for _, sample := range samples {
			merged := make([]string, 0, len(row)+2)
			merged = append(append(merged, row...), sample, StudyAccession(sample))
			out.Rows = append(out.Rows, merged)
		}
	}

	return out, nil
}

// MergedPeptideRecord is a typed view of one merged table row. SampleID and
// StudyID are null for quantification rows whose reference matched no
// metadata row; Intensity is null when the source cell was empty or NaN.
type MergedPeptideRecord struct {
	ProteinAccession string
	PeptideSequence  string
	Charge           int
	Intensity        null.Float
	Reference        string
	Condition        string
	Run              string
	BioReplicate     string
	Fraction         int
	FragmentIon      string
	IsotopeLabelType string
	SampleID         null.String
	StudyID          null.String
}

// Records converts a merged table into typed records. The table must carry
// the canonical columns; pass-through extras are ignored.
func Records(t *Table) ([]MergedPeptideRecord, error) {
	required := append(append([]string{}, canonicalColumns...), ColSampleID, ColStudyID)
	for _, col := range required {
		if !t.HasColumn(col) {
			return nil, &SchemaError{Missing: []string{col}}
		}
	}

	records := make([]MergedPeptideRecord, 0, len(t.Rows))
	for i := range t.Rows {
		cell := func(name string) string {
			v, _ := t.Cell(i, name)
			return v
		}

		charge, err := strconv.Atoi(cell(ColCharge))
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("row %d: bad charge %q: %w", i, cell(ColCharge), err))
		}
		fraction, err := strconv.Atoi(cell(ColFraction))
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("row %d: bad fraction %q: %w", i, cell(ColFraction), err))
		}

		record := MergedPeptideRecord{
			ProteinAccession: cell(ColProteinAccession),
			PeptideSequence:  cell(ColPeptideSequence),
			Charge:           charge,
			Intensity:        parseIntensity(cell(ColIntensity)),
			Reference:        cell(ColReference),
			Condition:        cell(ColCondition),
			Run:              cell(ColRun),
			BioReplicate:     cell(ColBioReplicate),
			Fraction:         fraction,
			FragmentIon:      cell(ColFragmentIon),
			IsotopeLabelType: cell(ColIsotopeLabelType),
		}
		if sample := cell(ColSampleID); sample != "" {
			record.SampleID = null.StringFrom(sample)
			record.StudyID = null.StringFrom(cell(ColStudyID))
		}
		records = append(records, record)
	}

	return records, nil
}

func parseIntensity(value string) null.Float {
	if value == "" || value == "NaN" || value == "NA" {
		return null.Float{}
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return null.Float{}
	}
	return null.FloatFrom(f)
}

// MergeSummary describes a merged table for progress reporting.
type MergeSummary struct {
	Rows            int
	Unmatched       int
	MeanIntensity   null.Float
	MedianIntensity null.Float
}

// Summarize computes row counts and an intensity summary over the merged
// records.
func Summarize(records []MergedPeptideRecord) MergeSummary {
	summary := MergeSummary{Rows: len(records)}

	intensities := make([]float64, 0, len(records))
	for _, record := range records {
		if !record.SampleID.Valid {
			summary.Unmatched++
		}
		if record.Intensity.Valid {
			intensities = append(intensities, record.Intensity.Float64)
		}
	}

	if len(intensities) > 0 {
		if mean, err := stats.Mean(intensities); err == nil {
			summary.MeanIntensity = null.FloatFrom(mean)
		}
		if median, err := stats.Median(intensities); err == nil {
			summary.MedianIntensity = null.FloatFrom(median)
		}
	}

	return summary
}
