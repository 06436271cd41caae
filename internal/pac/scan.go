package pac

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/salchaD-27/pac-check/internal/finding"
)

// Extensions PAC scripts commonly ship under.
var scanExtensions = map[string]bool{
	".pac": true,
	".js":  true,
	".txt": true,
}

// Scan walks the path recursively, validates every PAC-looking file with
// the checker, and returns the per-file findings. Unreadable files become
// ERROR findings rather than aborting the walk; the engine stays I/O-free
// and this is the one place file names get stamped onto findings.
func Scan(path string, c *Checker) ([]finding.Finding, error) {
	var findings []finding.Finding

	err := filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return err
		}
		if !scanExtensions[filepath.Ext(p)] {
			return nil
		}

		data, err := os.ReadFile(p)
		if err != nil {
			findings = append(findings, finding.Finding{
				File:     p,
				Severity: finding.Error,
				Message:  fmt.Sprintf("Failed to read file: %v", err),
			})
			return nil
		}

		res := c.Validate(string(data))
		if res.Status == StatusEmpty {
			findings = append(findings, finding.Finding{
				File:     p,
				Severity: finding.Warning,
				Message:  "Empty file, nothing to validate",
			})
			return nil
		}
		findings = append(findings, res.Findings.Tagged(p)...)
		return nil
	})

	return findings, err
}
