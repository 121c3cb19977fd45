package peptides

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"gopkg.in/guregu/null.v3"
)

var msRunIndex = regexp.MustCompile(`\[(\w+)\]`)

// RunReference resolves an mzTab ms_run token such as "ms_run[3]" into the
// base name of the spectrum file it points at, using the mzTab metadata
// section. The located value has its raw-spectrum extension stripped so it
// can be joined against an MSstats reference.
func RunReference(msRun string, metadata map[string]string) (string, error) {
	m := msRunIndex.FindStringSubmatch(msRun)
	if m == nil {
		return "", fmt.Errorf("ms_run reference %q carries no bracketed index", msRun)
	}

	key := "ms_run[" + m[1] + "]-location"
	location, exists := metadata[key]
	if !exists {
		return "", fmt.Errorf("mzTab metadata has no %s entry", key)
	}

	return path.Base(RemoveFileExtension(location)), nil
}

// ScanNumber extracts the scan identifier from an mzTab spectrum reference
// of the form "controllerType=0 controllerNumber=1 scan=30121". The last
// whitespace-delimited field is returned verbatim.
func ScanNumber(msRun string) string {
	parts := strings.Fields(msRun)
	if len(parts) == 0 {
		return msRun
	}
	return parts[len(parts)-1]
}

// MatchBetweenRuns reports whether a peptide was inferred by the match
// between runs algorithm (1, scan value missing) or identified in the
// corresponding file (0).
func MatchBetweenRuns(scan null.String) int {
	if !scan.Valid {
		return 1
	}
	return 0
}
