// Command hcl2json parses an HCL body and prints a tagged JSON
// representation of it to stdout, generalizing the TOML teacher's
// cmd/decoder to HCL's richer expression grammar: anything that
// cannot be represented as a plain JSON value without an evaluation
// stage (traversals, function calls, conditionals, for-expressions)
// is tagged "expression" and carries its exact source text instead.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/maurice/hcl"
	"github.com/spf13/cobra"
)

var outputPath string

func main() {
	root := &cobra.Command{
		Use:   "hcl2json [file]",
		Short: "Convert an HCL body to tagged JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  run,
	}
	root.Flags().StringVarP(&outputPath, "output", "o", "", "write to file instead of stdout")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	data, err := readInput(args)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	sourceBytes = data

	body, err := hcl.ParseBody(string(data))
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(bodyToJSON(body), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	out = append(out, '\n')

	if outputPath == "" {
		_, err = os.Stdout.Write(out)
		return err
	}
	return os.WriteFile(outputPath, out, 0o644)
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}

func bodyToJSON(b *hcl.Body) map[string]any {
	attrs := make(map[string]any)
	var blocks []any
	for _, st := range b.Items {
		switch v := st.(type) {
		case *hcl.Attribute:
			attrs[string(v.Key.Value)] = valueToTagged(v.Value)
		case *hcl.Block:
			labels := make([]string, len(v.Labels))
			for i, l := range v.Labels {
				labels[i] = blockLabelText(l)
			}
			var innerJSON map[string]any
			switch {
			case v.Body != nil:
				innerJSON = bodyToJSON(v.Body)
			case v.OnelineBody != nil:
				innerJSON = onelineBodyToJSON(v.OnelineBody)
			default:
				innerJSON = map[string]any{"attributes": map[string]any{}, "blocks": []any{}}
			}
			blocks = append(blocks, map[string]any{
				"type":   string(v.Ident.Value),
				"labels": labels,
				"body":   innerJSON,
			})
		}
	}
	if blocks == nil {
		blocks = []any{}
	}
	return map[string]any{"attributes": attrs, "blocks": blocks}
}

func onelineBodyToJSON(ob *hcl.OnelineBody) map[string]any {
	attrs := make(map[string]any)
	if ob.Attribute != nil {
		attrs[string(ob.Attribute.Key.Value)] = valueToTagged(ob.Attribute.Value)
	}
	return map[string]any{"attributes": attrs, "blocks": []any{}}
}

func blockLabelText(l hcl.BlockLabel) string {
	switch v := l.(type) {
	case hcl.StringBlockLabel:
		return v.Value
	case hcl.IdentBlockLabel:
		return string(v.Value)
	default:
		return ""
	}
}

func tagged(typ string, val any) map[string]any {
	return map[string]any{"type": typ, "value": val}
}

// valueToTagged converts one expression into its tagged JSON form.
// Literal-shaped expressions become their natural tagged value;
// anything requiring evaluation to resolve (a variable reference, a
// traversal, a function call, a conditional, a for-expression) is
// tagged "expression" and carries the verbatim source slice instead.
func valueToTagged(e hcl.Expression) any {
	switch v := e.(type) {
	case *hcl.NullExpr:
		return tagged("null", nil)
	case *hcl.BoolExpr:
		return tagged("bool", v.Value)
	case *hcl.NumberExpr:
		return tagged("number", v.Repr.Text)
	case *hcl.StringExpr:
		return tagged("string", v.Value)
	case *hcl.TemplateExpr:
		return tagged("template", sourceText(e))
	case *hcl.HeredocTemplateExpr:
		return tagged("template", sourceText(e))
	case *hcl.ArrayExpr:
		items := make([]any, len(v.Items))
		for i, it := range v.Items {
			items[i] = valueToTagged(it)
		}
		return tagged("array", items)
	case *hcl.ObjectExpr:
		obj := make(map[string]any, len(v.Items))
		for _, item := range v.Items {
			obj[objectKeyText(item)] = valueToTagged(item.Value)
		}
		return tagged("object", obj)
	case *hcl.ParenthesisExpr:
		return valueToTagged(v.Inner)
	default:
		return tagged("expression", sourceText(e))
	}
}

func objectKeyText(item hcl.ObjectItem) string {
	if item.KeyIsIdent {
		if v, ok := item.Key.(*hcl.VariableExpr); ok {
			return string(v.Value)
		}
	}
	if s, ok := item.Key.(*hcl.StringExpr); ok {
		return s.Value
	}
	return sourceText(item.Key)
}

func sourceText(e hcl.Expression) string {
	sp := e.ExprSpan()
	return string(sourceBytes[sp.Start:sp.End])
}

// sourceBytes is the raw input of the body currently being converted,
// set once in run so sourceText can slice non-literal expressions by
// span without threading the buffer through every call.
var sourceBytes []byte
