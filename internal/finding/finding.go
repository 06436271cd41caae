package finding

import "fmt"

type Severity string

const (
	Info    Severity = "INFO"
	Warning Severity = "WARNING"
	Error   Severity = "ERROR"
)

type Finding struct {
	File     string   `json:"file,omitempty"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Set accumulates the findings of one validation run, partitioned by
// severity. Insertion order is preserved within each bucket.
type Set struct {
	Errors   []Finding
	Warnings []Finding
	Infos    []Finding
}

func (s *Set) Errorf(format string, args ...any) {
	s.Errors = append(s.Errors, Finding{Severity: Error, Message: fmt.Sprintf(format, args...)})
}

func (s *Set) Warnf(format string, args ...any) {
	s.Warnings = append(s.Warnings, Finding{Severity: Warning, Message: fmt.Sprintf(format, args...)})
}

func (s *Set) Infof(format string, args ...any) {
	s.Infos = append(s.Infos, Finding{Severity: Info, Message: fmt.Sprintf(format, args...)})
}

// HasErrors reports whether the run produced any ERROR finding; the
// verdict of a run is INVALID exactly when this is true.
func (s *Set) HasErrors() bool {
	return len(s.Errors) > 0
}

// All flattens the buckets into one slice, errors first, then warnings,
// then infos. The exporters consume this order.
func (s *Set) All() []Finding {
	out := make([]Finding, 0, len(s.Errors)+len(s.Warnings)+len(s.Infos))
	out = append(out, s.Errors...)
	out = append(out, s.Warnings...)
	out = append(out, s.Infos...)
	return out
}

// Tagged returns All with every finding stamped with the given file name.
// The engine itself never knows file names; batch callers do.
func (s *Set) Tagged(file string) []Finding {
	out := s.All()
	for i := range out {
		out[i].File = file
	}
	return out
}
