// Package lexer turns the text of one JSON literal into a token tree: leaf
// tokens plus balanced (), [] and {} groups. The grammar itself is not
// checked here; that is the translator's job.
package lexer

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/scanner"

	"github.com/mcncl/jsonlit/internal/errors"
	"github.com/mcncl/jsonlit/internal/models"
)

// openGroup tracks one not-yet-closed delimiter during scanning.
type openGroup struct {
	delim        models.Delim
	open         models.Pos
	contentStart int // byte offset just past the opening delimiter
	children     []models.TokenTree
}

// Tokenize reads a literal from an io.Reader and returns its token-tree
// forest.
func Tokenize(reader io.Reader) ([]models.TokenTree, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.NewInputError("failed to read input", err)
	}
	return TokenizeString(string(data))
}

// TokenizeString tokenizes literal text. The returned forest preserves
// source order; each group records the raw source text of its span so it
// can be handed whole to an external expression parser.
func TokenizeString(src string) ([]models.TokenTree, error) {
	if strings.TrimSpace(src) == "" {
		return nil, errors.NewInputError("input is empty", errors.ErrEmptyLiteral)
	}

	var s scanner.Scanner
	s.Init(strings.NewReader(src))
	s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats |
		scanner.ScanStrings | scanner.ScanRawStrings |
		scanner.ScanComments | scanner.SkipComments

	var scanErr error
	s.Error = func(sc *scanner.Scanner, msg string) {
		if scanErr == nil {
			scanErr = errors.NewLexingError(
				fmt.Sprintf("%d:%d: %s", sc.Position.Line, sc.Position.Column, msg), nil)
		}
	}

	var forest []models.TokenTree
	var stack []*openGroup

	emit := func(tree models.TokenTree) {
		if len(stack) > 0 {
			top := stack[len(stack)-1]
			top.children = append(top.children, tree)
		} else {
			forest = append(forest, tree)
		}
	}

	for tok := s.Scan(); tok != scanner.EOF; tok = s.Scan() {
		if scanErr != nil {
			return nil, scanErr
		}
		pos := models.Pos{
			Line:   s.Position.Line,
			Column: s.Position.Column,
			Offset: s.Position.Offset,
		}
		text := s.TokenText()

		switch tok {
		case scanner.Int:
			emit(models.Leaf{Tok: models.Token{Kind: models.TokenInt, Text: text, Pos: pos}})
		case scanner.Float:
			emit(models.Leaf{Tok: models.Token{Kind: models.TokenFloat, Text: text, Pos: pos}})
		case scanner.String, scanner.RawString:
			emit(models.Leaf{Tok: models.Token{Kind: models.TokenString, Text: text, Pos: pos}})
		case scanner.Ident:
			emit(models.Leaf{Tok: models.Token{Kind: models.TokenIdent, Text: text, Pos: pos}})
		case '(', '[', '{':
			var delim models.Delim
			switch tok {
			case '(':
				delim = models.DelimParen
			case '[':
				delim = models.DelimBracket
			case '{':
				delim = models.DelimBrace
			}
			stack = append(stack, &openGroup{
				delim:        delim,
				open:         pos,
				contentStart: pos.Offset + 1,
			})
		case ')', ']', '}':
			if len(stack) == 0 {
				return nil, errors.NewLexingError(
					fmt.Sprintf("%s: unexpected `%s`", pos, text), nil)
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.delim.Close() != text {
				return nil, errors.NewLexingError(
					fmt.Sprintf("%s: expected `%s` but found `%s`", pos, top.delim.Close(), text), nil)
			}
			emit(models.Group{
				Delim:    top.delim,
				Children: top.children,
				Raw:      src[top.contentStart:pos.Offset],
				Open:     top.open,
				End:      pos,
			})
		default:
			emit(models.Leaf{Tok: models.Token{Kind: models.TokenPunct, Text: text, Pos: pos}})
		}
	}
	if scanErr != nil {
		return nil, scanErr
	}
	if len(stack) > 0 {
		top := stack[len(stack)-1]
		return nil, errors.NewLexingError(
			fmt.Sprintf("%s: unclosed `%s`", top.open, top.delim.Open()), nil)
	}

	return forest, nil
}

// TokenizeFile tokenizes a literal stored in a file.
func TokenizeFile(filePath string) ([]models.TokenTree, error) {
	if strings.TrimSpace(filePath) == "" {
		return nil, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	stat, err := file.Stat()
	if err != nil {
		return nil, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return nil, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Tokenize(file)
}
