// Package query filters pins with boolean expressions such as
//
//	type == "list" && done < items
//	"urgent" in tags && zIndex > 3
//	content contains "milk"
//
// Expressions are compiled once with expr-lang/expr and checked against Env.
package query

import (
	"errors"
	"fmt"

	exprlang "github.com/expr-lang/expr"
	exprvm "github.com/expr-lang/expr/vm"

	"github.com/mesh-intelligence/corkboard/pkg/types"
)

// ErrEmptyExpression is returned by Compile for a blank expression.
var ErrEmptyExpression = errors.New("expression must not be empty")

// Env is the set of names an expression can reference for one pin.
type Env struct {
	ID       string   `expr:"id"`
	Type     string   `expr:"type"`
	X        float64  `expr:"x"`
	Y        float64  `expr:"y"`
	Width    float64  `expr:"width"`
	Height   float64  `expr:"height"`
	Content  string   `expr:"content"`
	Color    string   `expr:"color"`
	Tags     []string `expr:"tags"`
	ZIndex   int      `expr:"zIndex"`
	ImageURL string   `expr:"imageUrl"`
	Items    int      `expr:"items"` // number of list items
	Done     int      `expr:"done"`  // number of completed list items
}

// EnvFor builds the expression environment for p.
func EnvFor(p types.Pin) Env {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return Env{
		ID:       p.ID,
		Type:     string(p.Type),
		X:        p.X,
		Y:        p.Y,
		Width:    p.Width,
		Height:   p.Height,
		Content:  p.Content,
		Color:    p.Color,
		Tags:     tags,
		ZIndex:   p.ZIndex,
		ImageURL: p.ImageURL,
		Items:    len(p.ListItems),
		Done:     p.CompletedItems(),
	}
}

// Filter is a compiled pin predicate.
type Filter struct {
	source  string
	program *exprvm.Program
}

// Compile parses and type-checks expression. Unknown names and non-boolean
// results are compile errors.
func Compile(expression string) (*Filter, error) {
	if expression == "" {
		return nil, ErrEmptyExpression
	}
	program, err := exprlang.Compile(expression,
		exprlang.Env(Env{}),
		exprlang.AsBool(),
	)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expression, err)
	}
	return &Filter{source: expression, program: program}, nil
}

// Match reports whether p satisfies the filter.
func (f *Filter) Match(p types.Pin) (bool, error) {
	out, err := exprlang.Run(f.program, EnvFor(p))
	if err != nil {
		return false, fmt.Errorf("evaluate %q on pin %s: %w", f.source, p.ID, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

// Select returns the pins that satisfy the filter, in input order. The first
// evaluation error stops the scan.
func (f *Filter) Select(pins []types.Pin) ([]types.Pin, error) {
	out := make([]types.Pin, 0, len(pins))
	for _, p := range pins {
		ok, err := f.Match(p)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, p)
		}
	}
	return out, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	return f.source
}
