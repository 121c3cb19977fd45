package peptides

import (
	"bytes"
	"io"

	"github.com/carbocation/pfx"

	"github.com/mobiusklein/ibaqpy"
)

// LoadMSstats reads the comma-separated MSstats quantification table at
// path and reshapes it into canonical form: run references are stripped of
// spectrum-file extensions, source columns are renamed to their canonical
// names, and protein accessions are canonicalized. When compress is set the
// file must be gzip-compressed; otherwise compression is sniffed from the
// file itself.
//
// When the source carries no fraction column, every row is assigned
// fraction 1 and the table is restricted to the canonical column set. A
// source that does carry fraction passes all of its columns through
// untouched, extras included; the asymmetry matches what downstream
// consumers already expect.
func LoadMSstats(path string, compress bool) (*Table, error) {
	raw, err := readInput(path, compress)
	if err != nil {
		return nil, err
	}

	t, err := ReadTable(bytes.NewReader(raw), ',')
	if err != nil {
		return nil, pfx.Err(err)
	}

	if err := checkColumns(t, msstatsRequired, path, func() (rune, bool) {
		return ibaqpy.DetectDelimiter(bytes.NewReader(raw))
	}); err != nil {
		return nil, err
	}

	if err := t.Apply("Reference", RemoveFileExtension); err != nil {
		return nil, pfx.Err(err)
	}

	t.Rename(msstatsRenames)

	if err := t.Apply(ColProteinAccession, ParseProteinAccession); err != nil {
		return nil, pfx.Err(err)
	}

	if !t.HasColumn(ColFraction) {
		t.AppendConstColumn(ColFraction, "1")
		restricted, err := t.Select(canonicalColumns)
		if err != nil {
			if schemaErr, ok := err.(*SchemaError); ok {
				schemaErr.Path = path
			}
			return nil, err
		}
		t = restricted
	}

	return t, nil
}

// readInput slurps a possibly-compressed input file into memory. Both
// tables are loaded whole; the pipeline is a single-pass batch job.
func readInput(path string, compress bool) ([]byte, error) {
	r, err := ibaqpy.OpenInput(path, compress)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer r.Close()

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, pfx.Err(err)
	}
	return raw, nil
}
