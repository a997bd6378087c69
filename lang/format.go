package lang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// FormatJSON writes e as JSON to w. A positive indent selects multi-line
// output.
func FormatJSON(_ context.Context, w io.Writer, e Expr, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(ToMap(e), "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(ToMap(e))
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// FormatYAML writes e as YAML to w. A non-positive indent selects flow style.
func FormatYAML(ctx context.Context, w io.Writer, e Expr, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, ToMap(e), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(data))

	return err
}

// FormatTree writes e to w as an indented outline, one node per line.
func FormatTree(w io.Writer, e Expr) error {
	var sb strings.Builder

	writeTree(&sb, e, "", "")

	_, err := io.WriteString(w, sb.String())

	return err
}

// writeTree writes e with label, then its children one level deeper.
func writeTree(sb *strings.Builder, e Expr, indent, label string) {
	sb.WriteString(indent)

	if label != "" {
		sb.WriteString(label)
		sb.WriteString(": ")
	}

	sb.WriteString(e.Kind().String())

	child := indent + "  "

	switch e := e.(type) {
	case *Num:
		fmt.Fprintf(sb, " %d\n", e.Value)
	case *Bool:
		fmt.Fprintf(sb, " %t\n", e.Value)
	case *Var:
		fmt.Fprintf(sb, " %s\n", e.Name)
	case *Add:
		sb.WriteByte('\n')
		writeTree(sb, e.LHS, child, "lhs")
		writeTree(sb, e.RHS, child, "rhs")
	case *Mult:
		sb.WriteByte('\n')
		writeTree(sb, e.LHS, child, "lhs")
		writeTree(sb, e.RHS, child, "rhs")
	case *Equals:
		sb.WriteByte('\n')
		writeTree(sb, e.LHS, child, "lhs")
		writeTree(sb, e.RHS, child, "rhs")
	case *Let:
		fmt.Fprintf(sb, " %s\n", e.Name)
		writeTree(sb, e.Bound, child, "bound")
		writeTree(sb, e.Body, child, "body")
	case *If:
		sb.WriteByte('\n')
		writeTree(sb, e.Cond, child, "cond")
		writeTree(sb, e.Then, child, "then")
		writeTree(sb, e.Else, child, "else")
	case *Fun:
		fmt.Fprintf(sb, " %s\n", e.Param)
		writeTree(sb, e.Body, child, "body")
	case *Call:
		sb.WriteByte('\n')
		writeTree(sb, e.Callee, child, "callee")
		writeTree(sb, e.Arg, child, "arg")
	default:
		sb.WriteByte('\n')
	}
}
