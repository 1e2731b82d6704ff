package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Transform names accepted in a rule entry.
const (
	// TransformStripThousands removes '.' and ',' from the captured text and
	// parses the remainder as an integer ("130.000" -> 130000). The source
	// domain uses '.' strictly as a thousands separator, never as a decimal
	// point.
	TransformStripThousands = "strip_thousands_separators"
)

// Rule is one declarative extraction entry for a field. Rules for a field
// are tried in declared order; the first regex that matches wins. Multi rules
// return every non-overlapping match instead of the first.
type Rule struct {
	Regex     string `toml:"regex"`
	Group     int    `toml:"group"`
	Transform string `toml:"transform,omitempty"`
	Multi     bool   `toml:"multi,omitempty"`
}

// Table is the declarative rule configuration: an ordered rule list per field
// name plus a set of field names to unconditionally skip.
type Table struct {
	Skip   []string          `toml:"skip"`
	Fields map[string][]Rule `toml:"fields"`
}

type compiledRule struct {
	re        *regexp.Regexp
	group     int
	transform string
	multi     bool
}

// Engine applies a compiled rule table to raw broadcast text. It holds no
// mutable state after construction and is safe for concurrent reuse.
type Engine struct {
	fields map[string][]compiledRule
	skip   map[string]bool
}

// New compiles a rule table into an Engine. Every regex is compiled with
// case-insensitive, multiline semantics; rules that need '.' to span lines
// carry (?s) inline. Any invalid regex, capture group, or transform name is a
// construction error so that a malformed table fails fast, not per-parse.
func New(t Table) (*Engine, error) {
	e := &Engine{
		fields: make(map[string][]compiledRule, len(t.Fields)),
		skip:   make(map[string]bool, len(t.Skip)),
	}
	for _, name := range t.Skip {
		e.skip[name] = true
	}

	for field, ruleList := range t.Fields {
		compiled := make([]compiledRule, 0, len(ruleList))
		for i, r := range ruleList {
			re, err := regexp.Compile("(?im)" + r.Regex)
			if err != nil {
				return nil, fmt.Errorf("field %q rule %d: invalid regex: %w", field, i, err)
			}
			if r.Group < 0 || r.Group > re.NumSubexp() {
				return nil, fmt.Errorf("field %q rule %d: capture group %d out of range (regex has %d groups)",
					field, i, r.Group, re.NumSubexp())
			}
			if r.Transform != "" && r.Transform != TransformStripThousands {
				return nil, fmt.Errorf("field %q rule %d: unknown transform %q", field, i, r.Transform)
			}
			compiled = append(compiled, compiledRule{
				re:        re,
				group:     r.Group,
				transform: r.Transform,
				multi:     r.Multi,
			})
		}
		e.fields[field] = compiled
	}
	return e, nil
}

// extract runs the ordered rule list for a field and returns the first
// successful value: a string, an int (when a transform applied), or a
// []string for multi rules. A rule whose transform fails to parse is treated
// as a non-match and the next rule is tried.
func (e *Engine) extract(text, field string) (any, bool) {
	if e.skip[field] {
		return nil, false
	}
	for _, r := range e.fields[field] {
		if r.multi {
			matches := r.re.FindAllStringSubmatch(text, -1)
			if len(matches) == 0 {
				continue
			}
			values := make([]string, 0, len(matches))
			for _, m := range matches {
				if r.group < len(m) {
					values = append(values, m[r.group])
				}
			}
			if len(values) > 0 {
				return values, true
			}
			continue
		}

		m := r.re.FindStringSubmatch(text)
		if m == nil || r.group >= len(m) {
			continue
		}
		captured := m[r.group]
		if r.transform == TransformStripThousands {
			n, err := StripThousands(captured)
			if err != nil {
				continue
			}
			return n, true
		}
		return captured, true
	}
	return nil, false
}

// ExtractString returns the first string extraction for a field. Unknown or
// skipped field names report absence.
func (e *Engine) ExtractString(text, field string) (string, bool) {
	v, ok := e.extract(text, field)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// ExtractInt returns the first integer extraction for a field. Only rules
// carrying an integer transform can produce one.
func (e *Engine) ExtractInt(text, field string) (int, bool) {
	v, ok := e.extract(text, field)
	if !ok {
		return 0, false
	}
	n, ok := v.(int)
	return n, ok
}

// ExtractAll returns every capture from the first matching multi rule for a
// field, in order of appearance. No match yields an empty slice, never nil.
func (e *Engine) ExtractAll(text, field string) []string {
	v, ok := e.extract(text, field)
	if !ok {
		return []string{}
	}
	values, ok := v.([]string)
	if !ok {
		return []string{}
	}
	return values
}

var thousandsReplacer = strings.NewReplacer(".", "", ",", "")

// StripThousands removes thousands separators and parses the result as an
// integer.
func StripThousands(s string) (int, error) {
	return strconv.Atoi(thousandsReplacer.Replace(strings.TrimSpace(s)))
}
