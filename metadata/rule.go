package metadata

import (
	"strconv"
	"strings"

	"github.com/hupe1980/nutridex/bptree"
	"github.com/hupe1980/nutridex/model"
)

// Rule is a single numeric filter: Attribute Op Threshold.
type Rule struct {
	Attribute string
	Op        bptree.Comparator
	Threshold float64
}

// ParseRule parses "attribute comparator threshold".
//
// The attribute is lowercased. The comparator is not validated.
func ParseRule(text string) (Rule, error) {
	fields := strings.Fields(text)
	if len(fields) != 3 {
		return Rule{}, &RuleSyntaxError{
			Rule:   text,
			Reason: "expected <attribute> <comparator> <value>",
		}
	}

	threshold, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return Rule{}, &RuleSyntaxError{
			Rule:   text,
			Reason: "invalid value " + strconv.Quote(fields[2]),
			cause:  err,
		}
	}

	return Rule{
		Attribute: strings.ToLower(fields[0]),
		Op:        bptree.Comparator(fields[1]),
		Threshold: threshold,
	}, nil
}

// ParseRules parses every rule, failing on the first malformed one.
func ParseRules(texts []string) ([]Rule, error) {
	rules := make([]Rule, 0, len(texts))
	for _, text := range texts {
		r, err := ParseRule(text)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// String returns the canonical text form of the rule.
func (r Rule) String() string {
	return r.Attribute + " " + string(r.Op) + " " + strconv.FormatFloat(r.Threshold, 'f', -1, 64)
}

// Matches evaluates the rule directly against a record.
// Records that do not declare the attribute never match.
func (r Rule) Matches(rec *model.Record) bool {
	v, ok := rec.Value(r.Attribute)
	if !ok {
		return false
	}

	switch r.Op {
	case bptree.LessEqual:
		return v <= r.Threshold
	case bptree.Equal:
		return v == r.Threshold
	case bptree.GreaterEqual:
		return v >= r.Threshold
	default:
		return false
	}
}
