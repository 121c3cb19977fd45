package ibaqpy

import (
	"io"

	"github.com/csimplestring/go-csv/detector"
)

// DetectDelimiter returns the single most likely rune delimiting the values
// in the reader, assuming a CSV-like file, and whether detection succeeded.
func DetectDelimiter(r io.Reader) (rune, bool) {
	d := detector.New()
	delimiters := d.DetectDelimiter(r, '"')

	if len(delimiters) > 0 {
		return rune(delimiters[0][0]), true
	}

	return 0, false
}
