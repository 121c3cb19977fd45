package peptides

import (
	"bytes"
	"encoding/csv"
	"io"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"

	"github.com/mobiusklein/ibaqpy"
)

// SDRFRecord is one row of the experiment-design metadata: the biological
// sample a physical data file belongs to. Reference is derived from the
// data file name and is the key quantification rows are joined on.
type SDRFRecord struct {
	SourceName string `csv:"source name"`
	DataFile   string `csv:"comment[data file]"`
	Reference  string `csv:"-"`
}

var sdrfRequired = []string{SDRFDataFile, SDRFSourceName}

// LoadSDRF reads the tab-separated SDRF metadata table at path and computes
// the normalized join reference for every row. When compress is set the
// file must be gzip-compressed; otherwise compression is sniffed from the
// file itself.
func LoadSDRF(path string, compress bool) ([]SDRFRecord, error) {
	raw, err := readInput(path, compress)
	if err != nil {
		return nil, err
	}

	header, err := ReadTable(bytes.NewReader(raw), '\t')
	if err != nil {
		return nil, pfx.Err(err)
	}
	if err := checkColumns(header, sdrfRequired, path, func() (rune, bool) {
		return ibaqpy.DetectDelimiter(bytes.NewReader(raw))
	}); err != nil {
		return nil, err
	}

	// Tell gocsv to use tab as the delimiter
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = '\t'
		r.LazyQuotes = true
		return r
	})

	records := []SDRFRecord{}
	if err := gocsv.UnmarshalBytes(raw, &records); err != nil {
		return nil, pfx.Err(err)
	}

	for i := range records {
		records[i].Reference = RemoveFileExtension(records[i].DataFile)
	}

	return records, nil
}
