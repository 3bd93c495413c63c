// Package cel compiles CEL filter expressions over completion suggestions.
package cel

import (
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	celext "github.com/google/cel-go/ext"
)

// ErrNotBool is returned when a filter expression does not evaluate to a bool.
var ErrNotBool = errors.New("filter must evaluate to a bool")

// Variable names visible to filter expressions.
const (
	VarValue       = "value"
	VarDescription = "description"
	VarSeq         = "seq"
)

// newSuggestionEnv creates the environment filters are compiled in.
// Additional options can be provided to extend the environment.
func newSuggestionEnv(opts ...cel.EnvOption) (*cel.Env, error) {
	allOpts := make([]cel.EnvOption, 0, 6+len(opts))
	allOpts = append(allOpts,
		cel.Variable(VarValue, cel.StringType),
		cel.Variable(VarDescription, cel.StringType),
		cel.Variable(VarSeq, cel.IntType),
		celext.Strings(),
		celext.Lists(),
		celext.Math(),
	)
	allOpts = append(allOpts, opts...)
	return cel.NewEnv(allOpts...)
}

// Predicate is a compiled boolean filter.
type Predicate struct {
	expr string
	prg  cel.Program
}

// Compile parses and type checks expr. The expression can reference the
// suggestion text as "value", its description as "description" and its
// history sequence number as "seq".
// Example: `value.startsWith("git ") && !value.contains("--force")`
func Compile(expr string) (*Predicate, error) {
	env, err := newSuggestionEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compilation error: %w", issues.Err())
	}
	if !ast.OutputType().IsExactType(types.BoolType) {
		return nil, fmt.Errorf("%q has type %s: %w", expr, ast.OutputType(), ErrNotBool)
	}

	prg, err := env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}
	return &Predicate{expr: expr, prg: prg}, nil
}

// Match evaluates the predicate for one suggestion.
func (p *Predicate) Match(value, description string, seq int) (bool, error) {
	result, _, err := p.prg.Eval(map[string]any{
		VarValue:       value,
		VarDescription: description,
		VarSeq:         seq,
	})
	if err != nil {
		return false, fmt.Errorf("eval error: %w", err)
	}
	b, ok := result.(types.Bool)
	if !ok {
		return false, fmt.Errorf("%q returned %s: %w", p.expr, result.Type(), ErrNotBool)
	}
	return bool(b), nil
}

// String returns the source expression.
func (p *Predicate) String() string {
	return p.expr
}
