package ibaqpy

import (
	"os/user"
	"path/filepath"
	"strings"

	"github.com/carbocation/pfx"
)

// ExpandHome expands a leading ~/ to the current user's home directory.
func ExpandHome(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		usr, err := user.Current()
		if err != nil {
			return path, pfx.Err(err)
		}
		path = filepath.Join(usr.HomeDir, (path)[2:])
	}

	return path, nil
}
