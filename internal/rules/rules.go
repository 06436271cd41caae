package rules

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/salchaD-27/pac-check/internal/pac"
)

// Rules are optional extensions to the checker's built-in tables, read
// from an HCL file:
//
//	rules {
//	  return_prefixes  = ["TOR"]
//	  helper_functions = ["myCustomFn"]
//	}
//
// Extensions only ever append; the built-in PAC defaults are never
// replaced.
type Rules struct {
	ReturnPrefixes  []string
	HelperFunctions []string
}

// Load reads and parses a rules file from disk.
func Load(path string) (*Rules, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	return Parse(path, src)
}

// Parse parses rules from source bytes; name is used in diagnostics.
func Parse(name string, src []byte) (*Rules, error) {
	parser := hclparse.NewParser()
	file, diag := parser.ParseHCL(src, name)
	if diag.HasErrors() {
		return nil, fmt.Errorf("parse rules file: %s", diag.Error())
	}

	content, _, diag := file.Body.PartialContent(&hcl.BodySchema{
		Blocks: []hcl.BlockHeaderSchema{
			{Type: "rules"},
		},
	})
	if diag.HasErrors() {
		return nil, fmt.Errorf("parse rules blocks: %s", diag.Error())
	}

	r := &Rules{}
	for _, block := range content.Blocks {
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return nil, fmt.Errorf("parse rules attributes: %s", diags.Error())
		}

		for name, attr := range attrs {
			val, diag := attr.Expr.Value(nil)
			if diag.HasErrors() {
				return nil, fmt.Errorf("evaluate %q: %s", name, diag.Error())
			}
			list, err := stringList(name, val)
			if err != nil {
				return nil, err
			}
			switch name {
			case "return_prefixes":
				r.ReturnPrefixes = append(r.ReturnPrefixes, list...)
			case "helper_functions":
				r.HelperFunctions = append(r.HelperFunctions, list...)
			default:
				return nil, fmt.Errorf("unknown rules attribute %q", name)
			}
		}
	}

	return r, nil
}

// Apply extends the checker's tables with the loaded rules.
func (r *Rules) Apply(c *pac.Checker) {
	c.ReturnPrefixes = append(c.ReturnPrefixes, r.ReturnPrefixes...)
	c.HelperFunctions = append(c.HelperFunctions, r.HelperFunctions...)
}

func stringList(name string, val cty.Value) ([]string, error) {
	ty := val.Type()
	if !ty.IsTupleType() && !ty.IsListType() {
		return nil, fmt.Errorf("%q must be a list of strings", name)
	}

	var out []string
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		if elem.Type() != cty.String {
			return nil, fmt.Errorf("%q must be a list of strings", name)
		}
		out = append(out, elem.AsString())
	}
	return out, nil
}
