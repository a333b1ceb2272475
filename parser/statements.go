/*
File    : tacc/parser/statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/tacc/ast"
	"github.com/akashmaji946/tacc/lexer"
)

// parseStatement dispatches on the current token's kind and returns
// exactly one statement node, or nil for a construct that produces no
// node of its own (a blank line, or EOF reached inside a sub-parser).
func (p *Parser) parseStatement() (ast.Node, error) {
	tok := p.current_token()

	switch tok.Type {
	case lexer.END_OF_LINE:
		p.advance()
		return nil, nil

	case lexer.EOF:
		return nil, nil

	case lexer.DEFINE:
		return p.parseDeclaration()

	case lexer.FUNCTION:
		return p.parseFunctionDefinition()

	case lexer.IF:
		return p.parseIfStatement()

	case lexer.WHILE:
		return p.parseWhileLoop()

	case lexer.RETURN:
		return p.parseReturnStatement()

	case lexer.IDENTIFIER:
		return p.parseIdentifierStatement()

	case lexer.NUMBER:
		return p.parseExpressionStatement()

	case lexer.OPERATOR:
		if !isPrefixOp(tok.Lexeme) {
			return nil, p.errAt(tok, "operator cannot start a statement", "- or !")
		}
		return p.parseExpressionStatement()

	case lexer.PAREN_OPEN:
		return p.parseExpressionStatement()

	case lexer.BRACE_OPEN:
		return p.parseBracedBlock()

	case lexer.PAREN_CLOSE:
		return nil, p.errAt(tok, "unexpected ')'", "statement")

	case lexer.BRACE_CLOSE:
		return nil, p.errAt(tok, "unexpected '}'", "statement")

	default:
		return nil, p.errAt(tok, "unexpected token at start of statement", "statement")
	}
}

// parseDeclaration parses `def name = expr EOL`.
func (p *Parser) parseDeclaration() (ast.Node, error) {
	start, err := p.consume(lexer.DEFINE, "")
	if err != nil {
		return nil, err
	}
	name, err := p.consume(lexer.IDENTIFIER, "")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.OPERATOR, "="); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if err := p.consumeStatementEnd(); err != nil {
		return nil, err
	}

	decl := &ast.Declaration{Name: name.Lexeme, Value: value}
	decl.Token = start
	return decl, nil
}

// parseAssignment parses `name = expr EOL`, given name already
// consumed by the caller's lookahead.
func (p *Parser) parseAssignment(name lexer.Token) (ast.Node, error) {
	if _, err := p.consume(lexer.OPERATOR, "="); err != nil {
		return nil, err
	}
	value, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if err := p.consumeStatementEnd(); err != nil {
		return nil, err
	}

	assign := &ast.Assignment{Name: name.Lexeme, Value: value}
	assign.Token = name
	return assign, nil
}

// parseIdentifierStatement resolves the IDENTIFIER/IDENTIFIER/"="
// vs. IDENTIFIER/"(" vs. bare-expression ambiguity by looking one
// token ahead, the same way the reference parser's parse_identifier
// does before committing to a production.
func (p *Parser) parseIdentifierStatement() (ast.Node, error) {
	name := p.current_token()
	next := p.peek(1)

	if next.Type == lexer.OPERATOR && next.Lexeme == "=" {
		p.advance()
		return p.parseAssignment(name)
	}
	// Otherwise this identifier starts a call or a bare expression
	// statement (e.g. `foo(1)` or a lone variable reference); both
	// fall through to the ordinary Pratt expression path.
	return p.parseExpressionStatement()
}

// parseExpressionStatement parses a bare expression followed by a
// statement terminator. It exists for its side effects only (e.g. a
// lone function call); its value is discarded by anything downstream
// that only looks at the statement list.
func (p *Parser) parseExpressionStatement() (ast.Node, error) {
	expr, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if err := p.consumeStatementEnd(); err != nil {
		return nil, err
	}
	return expr, nil
}

// consumeStatementEnd accepts an END_OF_LINE or EOF as a statement
// terminator. EOF is accepted (rather than required to be followed by
// a newline) so the last line of a file need not end in one.
func (p *Parser) consumeStatementEnd() error {
	tok := p.current_token()
	if tok.Type == lexer.EOF {
		return nil
	}
	_, err := p.consume(lexer.END_OF_LINE, "")
	return err
}

// parseIfStatement parses `if (cond) { then } [else { else }]`. Each
// branch body is carved out by finding its matching '}' and handed to
// a fresh sub-parser, the same slicing technique used for while
// bodies, bare blocks, and function bodies.
func (p *Parser) parseIfStatement() (ast.Node, error) {
	start, err := p.consume(lexer.IF, "")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.PAREN_OPEN, ""); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.PAREN_CLOSE, ""); err != nil {
		return nil, err
	}

	then, err := p.parseBracedBlock()
	if err != nil {
		return nil, err
	}

	stmt := &ast.If{Condition: cond, Then: then}
	stmt.Token = start

	if p.current_token().Type == lexer.ELSE {
		p.advance()
		elseBlock, err := p.parseBracedBlock()
		if err != nil {
			return nil, err
		}
		stmt.Else = elseBlock
	}

	return stmt, nil
}

// parseWhileLoop parses `while (cond) { body }`.
func (p *Parser) parseWhileLoop() (ast.Node, error) {
	start, err := p.consume(lexer.WHILE, "")
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.PAREN_OPEN, ""); err != nil {
		return nil, err
	}
	cond, err := p.parseExpression(0)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.PAREN_CLOSE, ""); err != nil {
		return nil, err
	}
	body, err := p.parseBracedBlock()
	if err != nil {
		return nil, err
	}

	loop := &ast.While{Condition: cond, Body: body}
	loop.Token = start
	return loop, nil
}

// parseReturnStatement parses `return [expr] EOL`. The expression is
// optional: a bare `return` is a statement of its own, represented as
// a Return with a nil Expr.
func (p *Parser) parseReturnStatement() (ast.Node, error) {
	start, err := p.consume(lexer.RETURN, "")
	if err != nil {
		return nil, err
	}

	ret := &ast.Return{}
	ret.Token = start

	if tok := p.current_token(); tok.Type != lexer.END_OF_LINE && tok.Type != lexer.EOF {
		expr, err := p.parseExpression(0)
		if err != nil {
			return nil, err
		}
		ret.Expr = expr
	}

	if err := p.consumeStatementEnd(); err != nil {
		return nil, err
	}
	return ret, nil
}

// parseFunctionCall parses `name(arg, arg, ...)`. Entered from
// parsePrefix once the lookahead sees IDENTIFIER '(', so it also
// covers a call used as an expression, not only as a statement.
func (p *Parser) parseFunctionCall() (ast.Node, error) {
	name, err := p.consume(lexer.IDENTIFIER, "")
	if err != nil {
		return nil, err
	}
	args, err := p.parseArgList()
	if err != nil {
		return nil, err
	}

	call := &ast.Call{Callee: name.Lexeme, Args: args}
	call.Token = name
	return call, nil
}

// parseArgList parses a parenthesized, comma-separated expression
// list: the actual arguments of a function call.
func (p *Parser) parseArgList() (*ast.ArgList, error) {
	open, err := p.consume(lexer.PAREN_OPEN, "")
	if err != nil {
		return nil, err
	}

	list := &ast.ArgList{}
	list.Token = open

	if p.current_token().Type != lexer.PAREN_CLOSE {
		for {
			arg, err := p.parseExpression(0)
			if err != nil {
				return nil, err
			}
			list.Args = append(list.Args, arg)
			if p.current_token().Type != lexer.COMMA {
				break
			}
			p.advance()
		}
	}

	if _, err := p.consume(lexer.PAREN_CLOSE, ""); err != nil {
		return nil, err
	}
	return list, nil
}

// parseParameters parses a parenthesized, comma-separated identifier
// list: the formal parameters of a function definition.
func (p *Parser) parseParameters() (*ast.ParamList, error) {
	open, err := p.consume(lexer.PAREN_OPEN, "")
	if err != nil {
		return nil, err
	}

	list := &ast.ParamList{}
	list.Token = open

	if p.current_token().Type != lexer.PAREN_CLOSE {
		for {
			name, err := p.consume(lexer.IDENTIFIER, "")
			if err != nil {
				return nil, err
			}
			v := &ast.Variable{Name: name.Lexeme}
			v.Token = name
			list.Params = append(list.Params, v)
			if p.current_token().Type != lexer.COMMA {
				break
			}
			p.advance()
		}
	}

	if _, err := p.consume(lexer.PAREN_CLOSE, ""); err != nil {
		return nil, err
	}
	return list, nil
}

// parseFunctionDefinition parses `fn name(params) { body }`.
func (p *Parser) parseFunctionDefinition() (ast.Node, error) {
	start, err := p.consume(lexer.FUNCTION, "")
	if err != nil {
		return nil, err
	}
	name, err := p.consume(lexer.IDENTIFIER, "")
	if err != nil {
		return nil, err
	}
	params, err := p.parseParameters()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBracedBlock()
	if err != nil {
		return nil, err
	}

	fn := &ast.Function{Name: name.Lexeme, Params: params, Body: body}
	fn.Token = start
	return fn, nil
}
