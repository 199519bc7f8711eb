package generator

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"

	"github.com/iancoleman/strcase"
)

// ValueImportPath is the package the generated code constructs values with.
const ValueImportPath = "github.com/mcncl/jsonlit/value"

// Generator renders translated constructor expressions as Go source
type Generator struct{}

// NewGenerator creates a new Generator instance
func NewGenerator() *Generator {
	return &Generator{}
}

// GenerateExpr renders just the constructor expression, without any
// surrounding file scaffolding.
func (g *Generator) GenerateExpr(expr ast.Expr) (string, error) {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, token.NewFileSet(), expr); err != nil {
		return "", fmt.Errorf("failed to render expression: %w", err)
	}
	return buf.String(), nil
}

// GenerateFile wraps the constructor expression in a complete Go source
// file: optional header comment, package clause, the value import, and a
// single exported var bound to the expression.
func (g *Generator) GenerateFile(expr ast.Expr, packageName, varName, header string) (string, error) {
	exprSrc, err := g.GenerateExpr(expr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if header != "" {
		buf.WriteString(fmt.Sprintf("// %s\n", header))
	}
	buf.WriteString(fmt.Sprintf("package %s\n\n", packageName))
	buf.WriteString(fmt.Sprintf("import %q\n\n", ValueImportPath))
	buf.WriteString(fmt.Sprintf("var %s = %s\n", ExportedVarName(varName), exprSrc))

	return buf.String(), nil
}

// ExportedVarName converts a requested name into an exported Go identifier.
// An empty name falls back to "Doc".
func ExportedVarName(name string) string {
	converted := strcase.ToCamel(name)
	if converted == "" {
		return "Doc"
	}
	return converted
}
