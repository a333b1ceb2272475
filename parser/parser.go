/*
File    : tacc/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser turns a token stream into an ast.Node tree with a
// Pratt expression core and a recursive-descent statement grammar.
// There is no error recovery: the first malformed construct produces
// a *perr.ParseError and parsing stops, mirroring the reference
// parser's single-fatal-error model.
package parser

import (
	"github.com/akashmaji946/tacc/ast"
	"github.com/akashmaji946/tacc/lexer"
	"github.com/akashmaji946/tacc/perr"
)

// Parser is a cursor over a shared token slice, bounded to [start,end).
// Block and if/while bodies are parsed by handing the matched brace
// span to a fresh Parser built over the very same backing array — a
// borrowed, by-value sub-parser rather than a copied sub-slice, the
// same technique the reference parser's parser_slice uses to avoid
// re-lexing or re-allocating for nested scopes.
type Parser struct {
	tokens   []lexer.Token
	start    int
	end      int
	current  int
	filename string
}

// New builds a Parser over the whole token slice. tokens must include
// a trailing EOF token (lexer.Lexer.All guarantees this).
func New(tokens []lexer.Token, filename string) *Parser {
	return &Parser{tokens: tokens, start: 0, end: len(tokens), current: 0, filename: filename}
}

// slice builds a sub-parser over [start,end) of the same backing
// array, positioned at start. Used to hand a brace-delimited span to
// parseStatements without consuming it from the enclosing parser.
func (p *Parser) slice(start, end int) *Parser {
	return &Parser{tokens: p.tokens, start: start, end: end, current: start, filename: p.filename}
}

// eofToken is returned once current runs past end — every sub-parser
// is bounded, and reading past its bound must look like a clean EOF
// rather than bleeding into the enclosing parser's tokens.
func (p *Parser) eofToken() lexer.Token {
	if p.end > 0 && p.end <= len(p.tokens) {
		last := p.tokens[p.end-1]
		return lexer.NewTokenAt(lexer.EOF, "", last.Line, last.Column)
	}
	return lexer.NewToken(lexer.EOF, "")
}

func (p *Parser) current_token() lexer.Token {
	if p.current >= p.end {
		return p.eofToken()
	}
	return p.tokens[p.current]
}

func (p *Parser) peek(offset int) lexer.Token {
	idx := p.current + offset
	if idx >= p.end {
		return p.eofToken()
	}
	return p.tokens[idx]
}

func (p *Parser) advance() lexer.Token {
	tok := p.current_token()
	if p.current < p.end {
		p.current++
	}
	return tok
}

// errAt builds a fatal *perr.ParseError positioned at tok. Found is
// always derived from tok itself (its "<KIND> ('<lexeme>')" shape),
// since it is what the reference parser's "Actual token" line reports
// and a caller never has any other token to report against.
func (p *Parser) errAt(tok lexer.Token, message, expected string) *perr.ParseError {
	e := perr.New(tok.Line, tok.Column, p.filename, message)
	e.Expected = expected
	e.Found = tok.Describe()
	return e
}

// consume requires the current token to have kind, advances past it,
// and returns it. value, when non-empty, additionally requires the
// lexeme to match exactly (used for single-character operators like
// "=" that share the OPERATOR kind with several others).
func (p *Parser) consume(kind lexer.TokenType, value string) (lexer.Token, error) {
	tok := p.current_token()
	if tok.Type != kind || (value != "" && tok.Lexeme != value) {
		want := string(kind)
		if value != "" {
			want = value
		}
		return tok, p.errAt(tok, "unexpected token", want)
	}
	return p.advance(), nil
}

// findMatchingBrace scans forward from p.current for the BRACE_CLOSE
// that balances the BRACE_OPEN already consumed by the caller (depth
// starts at 1 for that reason), and returns its index. Used to carve
// out the token span of an if/while/bare body before recursing into
// it with a fresh sub-parser.
func (p *Parser) findMatchingBrace() (int, error) {
	depth := 1
	for i := p.current; i < p.end; i++ {
		switch p.tokens[i].Type {
		case lexer.BRACE_OPEN:
			depth++
		case lexer.BRACE_CLOSE:
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return -1, p.errAt(p.current_token(), "unterminated block: no matching '}'", "}")
}

// parseBracedBlock consumes a '{', parses its contents with a
// sub-parser bounded to the matching '}', and consumes the '}'.
func (p *Parser) parseBracedBlock() (*ast.Block, error) {
	open, err := p.consume(lexer.BRACE_OPEN, "")
	if err != nil {
		return nil, err
	}
	closeIdx, err := p.findMatchingBrace()
	if err != nil {
		return nil, err
	}
	inner := p.slice(p.current, closeIdx)
	block, err := inner.parseStatements(open)
	if err != nil {
		return nil, err
	}
	p.current = closeIdx
	if _, err := p.consume(lexer.BRACE_CLOSE, ""); err != nil {
		return nil, err
	}
	return block, nil
}

// Parse runs the full statement grammar over tokens and returns the
// program as a single root Block, the same shape the reference
// top-level parse() builds (an AST_BLOCK wrapping every top-level
// statement).
func Parse(tokens []lexer.Token, filename string) (*ast.Block, error) {
	p := New(tokens, filename)
	root, err := p.parseStatements(p.current_token())
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.EOF, ""); err != nil {
		return nil, err
	}
	return root, nil
}

// parseStatements loops parseStatement until this parser's bound is
// exhausted, collecting the non-nil results (a nil result means an
// empty line or EOF was consumed with nothing to append).
func (p *Parser) parseStatements(tok lexer.Token) (*ast.Block, error) {
	block := &ast.Block{}
	block.Token = tok
	for p.current_token().Type != lexer.EOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
	}
	return block, nil
}
