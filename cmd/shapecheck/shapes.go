package main

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/validation/pkg/rules"
	"github.com/dmitrymomot/validation/pkg/shape"
)

// builtin is a named tree shipped with the binary. New builds a fresh tree
// for every use since nodes record their last subject.
type builtin struct {
	Description string
	New         func() shape.Node
}

var builtins = map[string]builtin{
	"signup": {
		Description: "account signup form with password confirmation",
		New:         signupShape,
	},
	"person": {
		Description: "tuple [name, lastname, age]",
		New:         personShape,
	},
	"post": {
		Description: "tuple [id, ...keywords] with 1 to 5 keywords",
		New:         postShape,
	},
	"pet-owner": {
		Description: "owner object with [name, species, age] pets and an optional domicile",
		New:         petOwnerShape,
	},
	"point": {
		Description: "tuple [x, y] with non-negative y",
		New:         pointShape,
	},
}

func builtinNames() []string {
	return slices.Sorted(maps.Keys(builtins))
}

func lookupBuiltin(name string) (builtin, error) {
	b, ok := builtins[name]
	if !ok {
		return builtin{}, fmt.Errorf("unknown shape %q: available shapes are %s", name, strings.Join(builtinNames(), ", "))
	}
	return b, nil
}

func signupShape() shape.Node {
	return shape.Object(shape.Required, shape.Fields{
		"email":    shape.String(shape.Required, rules.Email()),
		"password": shape.String(shape.Required, rules.MinLen(8), rules.Printable()),
		"confirm": shape.String(shape.Required,
			rules.Expr[string](`parent != nil && value == parent.password`, "Passwords do not match!")),
		"age":  shape.Int(shape.Optional, rules.Min[int64](13)),
		"tags": shape.List(shape.Optional, shape.String(shape.Required, rules.NotBlank()), rules.MaxItems(5), rules.UniqueItems()),
	}, rules.MaxKeys(8))
}

func personShape() shape.Node {
	return shape.TupleOf(shape.Required, shape.Items(
		shape.String(shape.Required, rules.NotBlank()),
		shape.String(shape.Required, rules.NotBlank()),
		shape.Number(shape.Required, rules.Min(0.0)),
	), nil)
}

func postShape() shape.Node {
	return shape.TupleOf(shape.Required,
		shape.Items(shape.String(shape.Required,
			rules.HasPrefix("PT"), rules.Len(10), rules.NoWhitespace())),
		shape.String(shape.Required, rules.NotBlank()),
		func(items []any, _ shape.Node) shape.Messages {
			switch keywords := max(len(items)-1, 0); {
			case keywords == 0:
				return shape.Messages{"At least 1 keyword is required!"}
			case keywords > 5:
				return shape.Messages{"A post can only contain up to 5 keywords!"}
			}
			return nil
		},
	)
}

func petOwnerShape() shape.Node {
	return shape.Object(shape.Required, shape.Fields{
		"name":     shape.String(shape.Required, rules.NotBlank()),
		"lastname": shape.String(shape.Required, rules.NotBlank()),
		"vip":      shape.Boolean(shape.Optional),
		"pets": shape.List(shape.Required, shape.TupleOf(shape.Required, shape.Items(
			shape.String(shape.Required),
			shape.String(shape.Required, rules.OneOfFold("dog", "cat", "bird", "fish")),
			shape.Number(shape.Required, rules.Min(0.0)),
		), nil), rules.NotEmpty()),
		"domicile": shape.Object(shape.Optional, shape.Fields{
			"addressLine": shape.String(shape.Required),
			"country":     shape.String(shape.Required, rules.Len(2)),
			"state":       shape.String(shape.Required),
			"zipcode":     shape.Number(shape.Required, rules.Positive[float64]()),
		}),
	})
}

func pointShape() shape.Node {
	return shape.TupleOf(shape.Required, shape.Items(
		shape.Number(shape.Required),
		shape.Number(shape.Required, rules.Min(0.0)),
	), nil)
}

func newShapesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shapes",
		Short: "List the built-in shapes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := builtinNames()
			width := 0
			for _, name := range names {
				width = max(width, len(name))
			}
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n",
					color.CyanString("%-*s", width, name), builtins[name].Description)
			}
			return nil
		},
	}
}
