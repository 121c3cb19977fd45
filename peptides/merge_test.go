package peptides

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/guregu/null.v3"
)

func quantFixture() *Table {
	t := NewTable(append([]string{}, canonicalColumns...))
	t.Rows = [][]string{
		{"FOO_HUMAN", "PEPTIDEK", "2", "1200.5", "run1", "heart", "run_a", "1", "1", "NA", "L"},
		{"BAR_HUMAN", "SEQK", "3", "", "run2", "liver", "run_b", "2", "1", "NA", "L"},
		{"BAZ_HUMAN", "APEPK", "2", "333.3", "orphan", "heart", "run_c", "1", "1", "NA", "L"},
	}
	return t
}

func TestMergeLeftJoin(t *testing.T) {
	sdrf := []SDRFRecord{
		{SourceName: "sampleA-1", Reference: "run1"},
		{SourceName: "sampleB-1", Reference: "run2"},
	}

	merged, err := Merge(quantFixture(), sdrf)
	if err != nil {
		t.Fatal(err)
	}

	// Left-join cardinality: unique metadata keys preserve the quant row
	// count, unmatched rows included.
	if got, want := len(merged.Rows), 3; got != want {
		t.Fatalf("merged rows = %d, want %d", got, want)
	}

	for i, want := range []struct{ sample, study string }{
		{"sampleA-1", "sampleA"},
		{"sampleB-1", "sampleB"},
		{"", ""},
	} {
		if got, _ := merged.Cell(i, ColSampleID); got != want.sample {
			t.Errorf("row %d sample_id = %q, want %q", i, got, want.sample)
		}
		if got, _ := merged.Cell(i, ColStudyID); got != want.study {
			t.Errorf("row %d study_id = %q, want %q", i, got, want.study)
		}
	}
}

func TestMergeFanOut(t *testing.T) {
	// Duplicate metadata references fan the quant row out contiguously,
	// in place, without deduplication.
	sdrf := []SDRFRecord{
		{SourceName: "sampleA-1", Reference: "run1"},
		{SourceName: "sampleA-2", Reference: "run1"},
	}

	merged, err := Merge(quantFixture(), sdrf)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := len(merged.Rows), 4; got != want {
		t.Fatalf("merged rows = %d, want %d", got, want)
	}

	var samples []string
	for i := range merged.Rows {
		s, _ := merged.Cell(i, ColSampleID)
		samples = append(samples, s)
	}
	want := []string{"sampleA-1", "sampleA-2", "", ""}
	if diff := cmp.Diff(want, samples); diff != "" {
		t.Errorf("sample order mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeMissingReferenceColumn(t *testing.T) {
	if _, err := Merge(NewTable([]string{"a"}), nil); err == nil {
		t.Fatal("expected an error for a table without a reference column")
	}
}

func TestRecords(t *testing.T) {
	sdrf := []SDRFRecord{{SourceName: "sampleA-1", Reference: "run1"}}
	merged, err := Merge(quantFixture(), sdrf)
	if err != nil {
		t.Fatal(err)
	}

	records, err := Records(merged)
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("records = %d, want 3", len(records))
	}

	first := records[0]
	if first.Charge != 2 || first.Fraction != 1 {
		t.Errorf("typed fields wrong: %+v", first)
	}
	if !first.Intensity.Valid || first.Intensity.Float64 != 1200.5 {
		t.Errorf("intensity = %+v, want 1200.5", first.Intensity)
	}
	if diff := cmp.Diff(null.StringFrom("sampleA-1"), first.SampleID); diff != "" {
		t.Errorf("sample_id mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(null.StringFrom("sampleA"), first.StudyID); diff != "" {
		t.Errorf("study_id mismatch (-want +got):\n%s", diff)
	}

	// An empty intensity cell is null, not zero.
	if records[1].Intensity.Valid {
		t.Errorf("intensity = %+v, want null", records[1].Intensity)
	}

	// Unmatched rows carry null sample and study.
	last := records[2]
	if last.SampleID.Valid || last.StudyID.Valid {
		t.Errorf("unmatched row has sample context: %+v", last)
	}
}

func TestSummarize(t *testing.T) {
	records := []MergedPeptideRecord{
		{Intensity: null.FloatFrom(10), SampleID: null.StringFrom("a-1")},
		{Intensity: null.FloatFrom(30), SampleID: null.StringFrom("a-1")},
		{Intensity: null.Float{}},
	}

	summary := Summarize(records)
	if summary.Rows != 3 || summary.Unmatched != 1 {
		t.Errorf("summary counts wrong: %+v", summary)
	}
	if !summary.MeanIntensity.Valid || summary.MeanIntensity.Float64 != 20 {
		t.Errorf("mean = %+v, want 20", summary.MeanIntensity)
	}
	if !summary.MedianIntensity.Valid || summary.MedianIntensity.Float64 != 20 {
		t.Errorf("median = %+v, want 20", summary.MedianIntensity)
	}
}
