package dsn

import (
	"fmt"
	"strings"
)

// The three top-level structures every declaration must carry: envelope
// header, declaration identity and nominative detail.
var mandatoryPrefixes = []string{"S10.", "S20.", "S21."}

// CheckConformity rejects files that cannot be a payroll declaration before
// the comparatively expensive full parse. It requires at least one line per
// mandatory block prefix.
func CheckConformity(text string) error {
	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")

	for _, prefix := range mandatoryPrefixes {
		found := false
		for _, line := range lines {
			if strings.HasPrefix(line, prefix) {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("file is not a valid declaration: no %q block found", prefix)
		}
	}
	return nil
}
