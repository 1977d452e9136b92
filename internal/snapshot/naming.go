package snapshot

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	DocumentExt = ".docx"
	SnapshotExt = ".json"
	PDFExt      = ".pdf"
)

var eventDatePattern = regexp.MustCompile(`^\s*(\d{2})/(\d{2})/(\d{4})\s*$`)

// BaseName builds "Contrato_<artist>_<date>". Spaces and path separators
// in the artist become underscores and leading dots are dropped, so the
// result is always a single file name. A dd/mm/yyyy date becomes yyyymmdd;
// anything else is used with its slashes removed.
func BaseName(artist, eventDate string) string {
	date := fileSafe(strings.ReplaceAll(eventDate, "/", ""))
	if m := eventDatePattern.FindStringSubmatch(eventDate); m != nil {
		date = m[3] + m[2] + m[1]
	}
	return "Contrato_" + fileSafe(artist) + "_" + date
}

func fileSafe(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case ' ', '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		if r < 0x20 || r == 0x7f {
			return '_'
		}
		return r
	}, s)
	return strings.TrimLeft(s, ".")
}

// VersionedName is "<base>_v<version>".
func VersionedName(base string, version int) string {
	return fmt.Sprintf("%s_v%d", base, version)
}

// DocumentName is the generated docx file name for base and version.
func DocumentName(base string, version int) string {
	return VersionedName(base, version) + DocumentExt
}

// SnapshotName is the snapshot file name paired with DocumentName.
func SnapshotName(base string, version int) string {
	return VersionedName(base, version) + SnapshotExt
}

// PDFName is the optional PDF export name paired with DocumentName.
func PDFName(base string, version int) string {
	return VersionedName(base, version) + PDFExt
}

// NextVersion returns the smallest N >= 1 for which neither the docx nor the
// snapshot of base exists in dir.
func NextVersion(dir, base string) (int, error) {
	for n := 1; ; n++ {
		taken := false
		for _, name := range []string{DocumentName(base, n), SnapshotName(base, n)} {
			_, err := os.Stat(filepath.Join(dir, name))
			if err == nil {
				taken = true
				break
			}
			if !errors.Is(err, os.ErrNotExist) {
				return 0, fmt.Errorf("failed to check %s: %w", name, err)
			}
		}
		if !taken {
			return n, nil
		}
	}
}
