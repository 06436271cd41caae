package suite

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/salchaD-27/pac-check/internal/finding"
	"github.com/salchaD-27/pac-check/internal/pac"
)

// Check is one manifest entry: a PAC file path (relative paths resolve
// against the manifest's directory) and the status it is expected to
// validate to.
type Check struct {
	File   string `yaml:"file"`
	Expect string `yaml:"expect"`
}

type Manifest struct {
	Checks []Check `yaml:"checks"`
}

var knownStatuses = map[string]bool{
	string(pac.StatusValid):   true,
	string(pac.StatusInvalid): true,
	string(pac.StatusEmpty):   true,
}

// Run loads a YAML expectation manifest and validates every referenced
// file with the checker. Per-entry failures (unreadable files, unknown
// expectation tokens, status mismatches) become ERROR findings so the
// whole suite always runs; matches are reported as INFO. Only
// manifest-level problems return an error.
func Run(path string, c *pac.Checker) ([]finding.Finding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if len(m.Checks) == 0 {
		return nil, fmt.Errorf("manifest %s declares no checks", path)
	}

	base := filepath.Dir(path)
	var findings []finding.Finding

	for _, check := range m.Checks {
		expect := strings.ToUpper(strings.TrimSpace(check.Expect))
		if !knownStatuses[expect] {
			findings = append(findings, finding.Finding{
				File:     check.File,
				Severity: finding.Error,
				Message:  fmt.Sprintf("Unknown expected status '%s' (want VALID, INVALID or EMPTY)", check.Expect),
			})
			continue
		}

		target := check.File
		if !filepath.IsAbs(target) {
			target = filepath.Join(base, target)
		}

		content, err := os.ReadFile(target)
		if err != nil {
			findings = append(findings, finding.Finding{
				File:     check.File,
				Severity: finding.Error,
				Message:  fmt.Sprintf("Failed to read file: %v", err),
			})
			continue
		}

		res := c.Validate(string(content))
		if string(res.Status) == expect {
			findings = append(findings, finding.Finding{
				File:     check.File,
				Severity: finding.Info,
				Message:  fmt.Sprintf("Status %s as expected", res.Status),
			})
		} else {
			findings = append(findings, finding.Finding{
				File:     check.File,
				Severity: finding.Error,
				Message:  fmt.Sprintf("Expected status %s, got %s", expect, res.Status),
			})
		}
	}

	return findings, nil
}
