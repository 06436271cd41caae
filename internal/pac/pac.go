package pac

import (
	"regexp"
	"strings"

	"github.com/salchaD-27/pac-check/internal/finding"
	"github.com/salchaD-27/pac-check/internal/report"
)

// Status is the terminal outcome of one validation run.
type Status string

const (
	StatusValid   Status = "VALID"
	StatusInvalid Status = "INVALID"
	StatusEmpty   Status = "EMPTY"
)

const emptyInputMessage = "❌ Empty file or no content provided"

var (
	// Loose textual match for the mandatory entry point. This is not a
	// parse: it does not care whether the declaration is top-level or
	// whether there is exactly one.
	findProxyPattern = regexp.MustCompile(`(?i)function\s+FindProxyForURL\s*\(\s*url\s*,\s*host\s*\)\s*\{`)

	// A return of a single- or double-quoted string literal. The two
	// delimiters are not required to match each other.
	returnPattern      = regexp.MustCompile(`return\s+["'][^"']*["']`)
	returnValuePattern = regexp.MustCompile(`["']([^"']*)["']`)
)

// Proxy directives a return value may legitimately start with.
var defaultReturnPrefixes = []string{"DIRECT", "PROXY", "SOCKS", "HTTP", "HTTPS"}

// Standard PAC helper functions, in reference order.
var defaultHelperFunctions = []string{
	"isPlainHostName", "dnsDomainIs", "localHostOrDomainIs",
	"isResolvable", "isInNet", "dnsResolve", "myIpAddress",
	"dnsDomainLevels", "shExpMatch", "weekdayRange", "dateRange",
	"timeRange",
}

// Result is everything one validation run produces. Report and Status are
// what most callers want; Findings feeds the batch exporters.
type Result struct {
	Report   string
	Status   Status
	Findings finding.Set
}

// Checker runs the validation checks. The two tables start from the PAC
// defaults and may be extended (never replaced) before use. The zero
// value is not usable; construct with NewChecker.
type Checker struct {
	ReturnPrefixes  []string
	HelperFunctions []string
}

func NewChecker() *Checker {
	return &Checker{
		ReturnPrefixes:  append([]string(nil), defaultReturnPrefixes...),
		HelperFunctions: append([]string(nil), defaultHelperFunctions...),
	}
}

// Validate runs the default checks over raw PAC content. See
// Checker.Validate.
func Validate(content string) Result {
	return NewChecker().Validate(content)
}

// Validate runs the check battery over raw PAC content and returns the
// rendered report plus the status token. Empty or whitespace-only input
// short-circuits with StatusEmpty before any check runs. Each check is
// independent; no finding suppresses a later check. Pure function of the
// content and the checker's tables.
func (c *Checker) Validate(content string) Result {
	if strings.TrimSpace(content) == "" {
		return Result{Report: emptyInputMessage, Status: StatusEmpty}
	}

	var set finding.Set
	c.checkEntryPoint(content, &set)
	c.checkBalance(content, &set)
	c.checkReturns(content, &set)
	c.checkHelpers(content, &set)

	status := StatusValid
	if set.HasErrors() {
		status = StatusInvalid
	}
	return Result{Report: report.Render(&set), Status: status, Findings: set}
}

func (c *Checker) checkEntryPoint(content string, set *finding.Set) {
	if findProxyPattern.MatchString(content) {
		set.Infof("✅ Found FindProxyForURL function")
	} else {
		set.Errorf("Missing required 'FindProxyForURL(url, host)' function")
	}
}

// checkBalance tracks running brace and parenthesis counts per character.
// Every closing character that drives its counter negative gets its own
// line-tagged error; the counters are allowed to stay negative so later
// offenders still report. The closing messages are intentionally
// asymmetric: a count when closers are missing, none when there are
// extras, and "parenthesis" stays singular.
func (c *Checker) checkBalance(content string, set *finding.Set) {
	braces, parens := 0, 0
	for i, line := range strings.Split(content, "\n") {
		lineNum := i + 1
		for _, ch := range line {
			switch ch {
			case '{':
				braces++
			case '}':
				braces--
				if braces < 0 {
					set.Errorf("Line %d: Unmatched closing brace", lineNum)
				}
			case '(':
				parens++
			case ')':
				parens--
				if parens < 0 {
					set.Errorf("Line %d: Unmatched closing parenthesis", lineNum)
				}
			}
		}
	}

	if braces > 0 {
		set.Errorf("Missing %d closing brace(s)", braces)
	} else if braces < 0 {
		set.Errorf("Extra closing brace(s)")
	}

	if parens > 0 {
		set.Errorf("Missing %d closing parenthesis", parens)
	} else if parens < 0 {
		set.Errorf("Extra closing parenthesis")
	}
}

func (c *Checker) checkReturns(content string, set *finding.Set) {
	returns := returnPattern.FindAllString(content, -1)
	if len(returns) == 0 {
		set.Warnf("No return statements found")
		return
	}

	set.Infof("Found %d return statement(s)", len(returns))

	for _, ret := range returns {
		m := returnValuePattern.FindStringSubmatch(ret)
		if m == nil {
			continue
		}
		value := strings.TrimSpace(m[1])
		if value == "" {
			continue
		}
		if c.validReturn(value) {
			set.Infof("Valid return: '%s'", value)
		} else {
			set.Warnf("Unusual return value: '%s'", value)
		}
	}
}

func (c *Checker) validReturn(value string) bool {
	upper := strings.ToUpper(value)
	for _, prefix := range c.ReturnPrefixes {
		if strings.HasPrefix(upper, strings.ToUpper(prefix)) {
			return true
		}
	}
	return false
}

// checkHelpers is a plain substring scan, so a helper name appearing
// inside a longer identifier or a comment still counts. Reference order
// is preserved in the output.
func (c *Checker) checkHelpers(content string, set *finding.Set) {
	var found []string
	for _, fn := range c.HelperFunctions {
		if strings.Contains(content, fn) {
			found = append(found, fn)
		}
	}
	if len(found) > 0 {
		set.Infof("PAC functions used: %s", strings.Join(found, ", "))
	}
}
