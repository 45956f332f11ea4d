package rules

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/dmitrymomot/validation/pkg/shape"
)

// CompileExpr compiles a boolean expr-lang expression for use with
// ExprProgram. The expression sees two variables: value, the narrowed value,
// and parent, the subject of the enclosing composite or nil.
func CompileExpr(expression string) (*vm.Program, error) {
	program, err := expr.Compile(expression, expr.AsBool(), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expression, err)
	}
	return program, nil
}

// Expr reports message unless expression evaluates to true. It panics when
// the expression does not compile.
//
//	confirm := shape.String(shape.Required,
//	    rules.Expr[string](`value == parent.password`, "Passwords do not match!"))
func Expr[T any](expression, message string) shape.RuleFunc[T] {
	program, err := CompileExpr(expression)
	if err != nil {
		panic(err)
	}
	return ExprProgram[T](program, message)
}

// ExprProgram is Expr for a program compiled with CompileExpr. A runtime
// error counts as a failed check.
func ExprProgram[T any](program *vm.Program, message string) shape.RuleFunc[T] {
	return func(value T, node shape.Node) shape.Messages {
		env := map[string]any{"value": value, "parent": parentSubject(node)}
		out, err := expr.Run(program, env)
		if ok, _ := out.(bool); err != nil || !ok {
			return shape.Messages{message}
		}
		return nil
	}
}

func parentSubject(node shape.Node) any {
	if node == nil || node.Parent() == nil {
		return nil
	}
	return node.Parent().LastSubject()
}
