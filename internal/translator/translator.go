// Package translator converts the token tree of one JSON literal into a Go
// expression that constructs the equivalent structured value at runtime.
//
// The grammar is dispatched on token-tree shape: a leaf token becomes a
// scalar constructor, a [...] group a list, a {...} group an object, and a
// (...) group is an escape whose content is parsed as an ordinary Go
// expression and converted with value.From. Translation fails fast: the
// first malformed element invalidates the whole literal.
package translator

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"

	"github.com/mcncl/jsonlit/internal/errors"
	"github.com/mcncl/jsonlit/internal/models"
)

// valuePkg is the package identifier the generated expressions call into.
const valuePkg = "value"

// Error is a translation failure bound to a best-effort source position.
// It is an ordinary return value; callers check and propagate it.
type Error struct {
	Pos models.Pos
	Msg string
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
	}
	return e.Msg
}

// Translate translates the token-tree forest of one literal occurrence into
// a single constructor expression. The forest must hold exactly one tree.
func Translate(trees []models.TokenTree) (ast.Expr, error) {
	if len(trees) == 0 {
		return nil, errors.NewTranslateError("expected JSON literal", errors.ErrEmptyLiteral)
	}
	expr, terr := TranslateTree(trees[0])
	if terr != nil {
		return nil, errors.NewTranslateError(terr.Msg, terr)
	}
	// Diagnose the first tree before complaining about trailing ones, so a
	// leading `-5` reports the minus rather than the stray trailing literal.
	if len(trees) > 1 {
		return nil, errors.NewTranslateError(
			fmt.Sprintf("%s: expected a single JSON literal", trees[1].Pos()),
			errors.ErrMultipleLiterals,
		)
	}
	return expr, nil
}

// TranslateTree is the recursive entry point: it routes one token-tree node
// to the scalar classifier, an assembler, or the escape handler.
func TranslateTree(tree models.TokenTree) (ast.Expr, *Error) {
	return translate(tree, models.Pos{})
}

func translate(tree models.TokenTree, enclosing models.Pos) (ast.Expr, *Error) {
	switch n := tree.(type) {
	case models.Leaf:
		return classify(n.Tok, enclosing)
	case models.Group:
		switch n.Delim {
		case models.DelimBracket:
			elems, err := parseArray(n.Children, n.Open)
			if err != nil {
				return nil, err
			}
			return valueCall("List", elems...), nil
		case models.DelimBrace:
			fields, err := parseObject(n.Children, n.Open)
			if err != nil {
				return nil, err
			}
			return valueCall("Object", fields...), nil
		case models.DelimParen:
			return parseEscape(n)
		}
		return nil, errorAt(n.Open, fmt.Sprintf("unsupported `%s` group in JSON literal", n.Delim.Open()))
	}
	return nil, errorAt(bestPos(tree, enclosing),
		fmt.Sprintf("unsupported `%s` construct in JSON literal", tree.String()))
}

// classify maps one leaf token to a scalar constructor expression.
//
// A leading minus is a separate punctuation token, never fused with the
// literal that follows, so negative numbers fall through to the
// unexpected-token failure.
func classify(tok models.Token, enclosing models.Pos) (ast.Expr, *Error) {
	pos := tok.Pos
	if !pos.IsValid() {
		pos = enclosing
	}
	switch tok.Kind {
	case models.TokenString:
		s, err := strconv.Unquote(tok.Text)
		if err != nil {
			return nil, errorAt(pos, fmt.Sprintf("malformed string literal %s", tok.Text))
		}
		return valueCall("String", stringLit(s)), nil
	case models.TokenInt:
		// Reduce to 64 bits up front: an out-of-range literal fails here
		// rather than wrapping at runtime.
		if _, err := strconv.ParseInt(tok.Text, 0, 64); err != nil {
			return nil, errorAt(pos, fmt.Sprintf("integer literal `%s` does not fit in 64 bits", tok.Text))
		}
		return valueCall("Int", &ast.BasicLit{Kind: token.INT, Value: tok.Text}), nil
	case models.TokenFloat:
		if _, err := strconv.ParseFloat(tok.Text, 64); err != nil {
			return nil, errorAt(pos, fmt.Sprintf("malformed float literal `%s`", tok.Text))
		}
		return valueCall("Float", &ast.BasicLit{Kind: token.FLOAT, Value: tok.Text}), nil
	case models.TokenIdent:
		switch tok.Text {
		case "null":
			return valueCall("Null"), nil
		case "true":
			return valueCall("Bool", ast.NewIdent("true")), nil
		case "false":
			return valueCall("Bool", ast.NewIdent("false")), nil
		}
	}
	return nil, errorAt(pos, fmt.Sprintf("unexpected `%s` in JSON literal", tok.Text))
}

// parseArray walks the flat token sequence inside one bracket group.
// Even positions must translate as values, odd positions must be commas.
// A trailing comma is accepted: the walk never requires a value after the
// final separator.
func parseArray(items []models.TokenTree, open models.Pos) ([]ast.Expr, *Error) {
	elems := make([]ast.Expr, 0, (len(items)+1)/2)
	for i, item := range items {
		if i%2 == 1 {
			if !isComma(item) {
				return nil, expectedButFound("`,`", item, open)
			}
			continue
		}
		elem, err := translate(item, open)
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}
	return elems, nil
}

// parseObject walks the flat token sequence inside one brace group with a
// lookahead cursor. Each entry is string ':' value, separated by commas; the
// comma after the final entry is optional. Duplicate keys pass through
// untouched and resolve last-write-wins when the object is built.
func parseObject(items []models.TokenTree, open models.Pos) ([]ast.Expr, *Error) {
	fields := make([]ast.Expr, 0, (len(items)+3)/4)
	cur := 0
	for cur < len(items) {
		keyTree := items[cur]
		keyLeaf, ok := keyTree.(models.Leaf)
		if !ok || keyLeaf.Tok.Kind != models.TokenString {
			return nil, expectedButFound("string literal", keyTree, open)
		}
		key, err := strconv.Unquote(keyLeaf.Tok.Text)
		if err != nil {
			return nil, errorAt(bestPos(keyTree, open),
				fmt.Sprintf("malformed string literal %s", keyLeaf.Tok.Text))
		}
		cur++

		if cur >= len(items) {
			return nil, errorAt(bestPos(keyTree, open), "found name but no colon-value afterwards")
		}
		colonTree := items[cur]
		colonLeaf, ok := colonTree.(models.Leaf)
		if !ok || !colonLeaf.Tok.IsPunct(":") {
			return nil, expectedButFound("`:`", colonTree, open)
		}
		cur++

		if cur >= len(items) {
			return nil, errorAt(bestPos(colonTree, open), "found `:` but no value afterwards")
		}
		val, terr := translate(items[cur], open)
		if terr != nil {
			return nil, terr
		}
		cur++

		fields = append(fields, valueCall("Pair", stringLit(key), val))

		if cur < len(items) {
			if !isComma(items[cur]) {
				return nil, expectedButFound("`,`", items[cur], open)
			}
			cur++
		}
	}
	return fields, nil
}

// parseEscape hands a parenthesized group to the Go expression parser and
// wraps the result in a value.From conversion. The grammar inside the
// parens is entirely the expression parser's business.
func parseEscape(g models.Group) (ast.Expr, *Error) {
	inner, err := parser.ParseExpr(g.Raw)
	if err != nil {
		return nil, errorAt(g.Open, fmt.Sprintf("invalid expression in escape: %v", err))
	}
	return valueCall("From", &ast.ParenExpr{X: inner}), nil
}

func isComma(tree models.TokenTree) bool {
	leaf, ok := tree.(models.Leaf)
	return ok && leaf.Tok.IsPunct(",")
}

// bestPos prefers the failing node's own position, falling back to the
// position of the smallest enclosing group.
func bestPos(tree models.TokenTree, enclosing models.Pos) models.Pos {
	if p := tree.Pos(); p.IsValid() {
		return p
	}
	return enclosing
}

func errorAt(pos models.Pos, msg string) *Error {
	return &Error{Pos: pos, Msg: msg}
}

func expectedButFound(expected string, found models.TokenTree, enclosing models.Pos) *Error {
	return errorAt(bestPos(found, enclosing),
		fmt.Sprintf("expected %s but found: `%s`", expected, found.String()))
}

func valueCall(name string, args ...ast.Expr) ast.Expr {
	return &ast.CallExpr{
		Fun:  &ast.SelectorExpr{X: ast.NewIdent(valuePkg), Sel: ast.NewIdent(name)},
		Args: args,
	}
}

func stringLit(s string) ast.Expr {
	return &ast.BasicLit{Kind: token.STRING, Value: strconv.Quote(s)}
}
