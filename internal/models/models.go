package models

import (
	"fmt"
	"strings"
)

// Pos is a position in the literal's source text.
// The zero Pos means "position unknown".
type Pos struct {
	Line   int // 1-based
	Column int // 1-based, in bytes
	Offset int // 0-based byte offset
}

// IsValid reports whether the position carries real location information.
func (p Pos) IsValid() bool {
	return p.Line > 0
}

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// TokenKind identifies the lexical class of a leaf token.
type TokenKind int

const (
	TokenString TokenKind = iota // quoted string literal, Text includes quotes
	TokenInt                     // integer literal
	TokenFloat                   // float literal
	TokenIdent                   // identifier
	TokenPunct                   // single punctuation rune (",", ":", "-", ...)
)

// Token is one lexical unit of the literal body.
type Token struct {
	Kind TokenKind
	Text string // raw source text
	Pos  Pos
}

// IsPunct reports whether the token is the given punctuation text.
func (t Token) IsPunct(text string) bool {
	return t.Kind == TokenPunct && t.Text == text
}

// Delim identifies the delimiter of a token-tree group.
type Delim int

const (
	DelimParen   Delim = iota // ( ... )
	DelimBracket              // [ ... ]
	DelimBrace                // { ... }
)

// Open returns the opening delimiter rune as a string.
func (d Delim) Open() string {
	switch d {
	case DelimBracket:
		return "["
	case DelimBrace:
		return "{"
	default:
		return "("
	}
}

// Close returns the closing delimiter rune as a string.
func (d Delim) Close() string {
	switch d {
	case DelimBracket:
		return "]"
	case DelimBrace:
		return "}"
	default:
		return ")"
	}
}

// TokenTree is one node of the tokenized literal: either a single Leaf token
// or a delimited Group of child trees. It is the sole input type of the
// translator.
type TokenTree interface {
	// Pos returns the node's own source position; may be invalid for
	// synthetic nodes.
	Pos() Pos
	// String renders the node as source-like text for diagnostics.
	String() string
}

// Leaf is a token tree consisting of a single token.
type Leaf struct {
	Tok Token
}

func (l Leaf) Pos() Pos { return l.Tok.Pos }

func (l Leaf) String() string { return l.Tok.Text }

// Group is a delimited token tree: a delimiter kind, the trees between the
// delimiters, and the raw source text of the span so whole groups can be
// handed to an external parser.
type Group struct {
	Delim    Delim
	Children []TokenTree
	Raw      string // source text strictly between the delimiters
	Open     Pos    // position of the opening delimiter
	End      Pos    // position of the closing delimiter
}

func (g Group) Pos() Pos { return g.Open }

func (g Group) String() string {
	parts := make([]string, len(g.Children))
	for i, c := range g.Children {
		parts[i] = c.String()
	}
	return g.Delim.Open() + strings.Join(parts, " ") + g.Delim.Close()
}
