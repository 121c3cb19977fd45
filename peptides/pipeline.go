package peptides

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/carbocation/pfx"
)

// Pipeline wires the whole conversion: load the MSstats quantification
// table, load the SDRF metadata, merge them on the normalized reference,
// and write the denormalized result as plain CSV. Each run is independent
// and stateless; both tables are held in memory for the duration.
type Pipeline struct {
	Msstats  string
	SDRF     string
	Output   string
	Compress bool
}

// Run executes the pipeline. The output file is only produced after the
// full merge succeeds; a failure anywhere leaves no partial output behind.
func (p Pipeline) Run() error {
	if p.Msstats == "" || p.SDRF == "" || p.Output == "" {
		return fmt.Errorf("msstats, sdrf, and output paths are all required")
	}

	quant, err := LoadMSstats(p.Msstats, p.Compress)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d quantification rows from %s\n", len(quant.Rows), p.Msstats)

	sdrf, err := LoadSDRF(p.SDRF, p.Compress)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d metadata rows from %s\n", len(sdrf), p.SDRF)

	merged, err := Merge(quant, sdrf)
	if err != nil {
		return err
	}

	if records, err := Records(merged); err == nil {
		summary := Summarize(records)
		log.Printf("Merged %d rows (%d without sample metadata)\n", summary.Rows, summary.Unmatched)
		if summary.MedianIntensity.Valid {
			log.Printf("Intensity mean %.4g, median %.4g\n", summary.MeanIntensity.Float64, summary.MedianIntensity.Float64)
		}
	} else {
		// Pass-through tables may lack canonical columns needed for the
		// typed summary; the merge result itself is still valid.
		log.Printf("Merged %d rows\n", len(merged.Rows))
	}

	return writeTable(merged, p.Output)
}

// writeTable serializes a table to CSV via a temp file in the destination
// directory, renaming it into place only after a complete write.
func writeTable(t *Table, output string) error {
	tmp, err := os.CreateTemp(filepath.Dir(output), filepath.Base(output)+".tmp")
	if err != nil {
		return pfx.Err(err)
	}

	if err := t.WriteCSV(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return pfx.Err(err)
	}

	if err := os.Rename(tmp.Name(), output); err != nil {
		os.Remove(tmp.Name())
		return pfx.Err(err)
	}

	return nil
}
