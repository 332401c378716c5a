package record

import (
	"encoding/json"
	"strings"

	"github.com/Knetic/govaluate"
)

// Criteria narrows the visible record sequence of an open source.
type Criteria struct {
	Expr string // govaluate expression over a record's top-level fields
}

// Evaluator is a compiled Criteria.
type Evaluator struct {
	expr *govaluate.EvaluableExpression
}

// NewEvaluator compiles c. An empty expression yields a match-all evaluator.
func NewEvaluator(c Criteria) (*Evaluator, error) {
	var expr *govaluate.EvaluableExpression
	var err error
	if strings.TrimSpace(c.Expr) != "" {
		expr, err = govaluate.NewEvaluableExpression(c.Expr)
		if err != nil {
			return nil, err
		}
	}
	return &Evaluator{expr: expr}, nil
}

// Match evaluates the expression against one raw record. Top-level object
// fields become expression parameters; non-object records expose their parsed
// value as "value". The raw text is always available as "raw". An evaluation
// error or a non-boolean result counts as no match.
func (e *Evaluator) Match(raw string) bool {
	if e.expr == nil {
		return true
	}
	params := map[string]any{"raw": raw}
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		if obj, ok := v.(map[string]any); ok {
			for k, val := range obj {
				params[k] = val
			}
		} else {
			params["value"] = v
		}
	}
	result, err := e.expr.Evaluate(params)
	if err != nil {
		return false
	}
	b, ok := result.(bool)
	return ok && b
}

// VisibleIndices returns the indices of src's records matched by ev, in order.
func VisibleIndices(src *Source, ev *Evaluator) []int {
	out := make([]int, 0, src.Count())
	for i := 0; i < src.Count(); i++ {
		if ev == nil || ev.Match(src.Raw(i)) {
			out = append(out, i)
		}
	}
	return out
}
