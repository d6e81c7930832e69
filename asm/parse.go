// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/recasm/isa"
)

// Maximum number of starlark steps for a single constant expression.
const EXPR_MAX_STEPS = 1 << 16

// ParseLine parses a single line of source. Blank and comment-only lines
// return a nil statement and no error.
func ParseLine(line string, lineno int) (stmt *Statement, err error) {
	text, _, _ := strings.Cut(line, string(isa.COMMENT))

	words, err := tokenize(strings.TrimSpace(text))
	if err != nil || len(words) == 0 {
		return
	}

	operands := make([]Operand, 0, len(words)-1)
	for _, word := range words[1:] {
		var op Operand
		op, err = parseOperand(word)
		if err != nil {
			return
		}
		operands = append(operands, op)
	}

	stmt = &Statement{
		LineNo:   lineno,
		Line:     line,
		Mnemonic: strings.ToLower(words[0]),
		Operands: operands,
	}

	return
}

// tokenize splits text on whitespace, keeping parenthesized groups whole.
func tokenize(text string) (words []string, err error) {
	depth := 0
	start := -1

	for n, r := range text {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth--
			if depth < 0 {
				if start < 0 {
					start = n
				}
				err = &ErrToken{Token: text[start:], Err: ErrParenthesis}
				return
			}
		case unicode.IsSpace(r) && depth == 0:
			if start >= 0 {
				words = append(words, text[start:n])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = n
		}
	}

	if depth != 0 {
		err = &ErrToken{Token: text[start:], Err: ErrParenthesis}
		return
	}

	if start >= 0 {
		words = append(words, text[start:])
	}

	return
}

// parseOperand parses a prefixed operand token.
func parseOperand(token string) (op Operand, err error) {
	defer func() {
		if err != nil {
			err = &ErrToken{Token: token, Err: err}
		}
	}()

	op.Token = token
	body := token[1:]

	switch token[0] {
	case 'r', 'R':
		op.Kind = OPERAND_REGISTER
		op.Value, err = registerOf(body)
	case '#':
		op.Kind = OPERAND_IMMEDIATE
		op.Value, err = valueOf(body, true)
	case '$':
		op.Kind = OPERAND_DIRECT
		op.Value, err = valueOf(body, false)
	default:
		err = ErrOperandPrefix
	}

	return
}

// registerOf parses a decimal register index.
func registerOf(body string) (index int64, err error) {
	digits := 0
	for digits < len(body) && isDigit(body[digits]) {
		digits++
	}

	switch {
	case digits == 0:
		err = ErrOperandDigits
		return
	case digits < len(body):
		err = ErrOperandTrailing
		return
	}

	index, err = strconv.ParseInt(body, 10, 64)
	if err != nil {
		err = ErrOperandNumber
	}

	return
}

// valueOf parses a numeric literal or a parenthesized constant expression.
func valueOf(body string, signed bool) (value int64, err error) {
	if len(body) == 0 {
		err = ErrOperandDigits
		return
	}

	if body[0] == '(' {
		value, err = parenEval(body)
		if err == nil && !signed && value < 0 {
			err = ErrOperandNegative
		}
		return
	}

	negative := false
	if body[0] == '-' {
		if !signed {
			err = ErrOperandNegative
			return
		}
		negative = true
		body = body[1:]
	}

	if len(body) == 0 || !isDigit(body[0]) {
		err = ErrOperandDigits
		return
	}

	if literalLen(body) < len(body) {
		err = ErrOperandTrailing
		return
	}

	// Without a base prefix, a literal is decimal even with leading zeros.
	if !hasBasePrefix(body) {
		body = strings.TrimLeft(body, "0")
		if len(body) == 0 || body[0] == '_' {
			body = "0" + body
		}
	}

	magnitude, err := strconv.ParseUint(body, 0, 64)
	if err != nil {
		err = ErrOperandNumber
		return
	}

	switch {
	case negative && magnitude <= uint64(math.MaxInt64)+1:
		value = -int64(magnitude)
	case !negative && magnitude <= math.MaxInt64:
		value = int64(magnitude)
	default:
		err = ErrOperandNumber
	}

	return
}

// hasBasePrefix returns true if body starts with 0x, 0o or 0b.
func hasBasePrefix(body string) bool {
	if len(body) < 2 || body[0] != '0' {
		return false
	}
	switch body[1] {
	case 'x', 'X', 'b', 'B', 'o', 'O':
		return true
	}
	return false
}

// literalLen returns the length of the numeric literal at the start of
// body, using the digit set implied by its base prefix.
func literalLen(body string) (n int) {
	digit := isDigit
	if len(body) > 2 && body[0] == '0' {
		switch body[1] {
		case 'x', 'X':
			digit = isHexDigit
			n = 2
		case 'b', 'B', 'o', 'O':
			// strconv rejects digits outside the base.
			n = 2
		}
	}

	for n < len(body) && (digit(body[n]) || body[n] == '_') {
		n++
	}

	return
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// exprNodeOk returns true for the syntax nodes permitted in a constant
// expression: integer literals and operators on them.
func exprNodeOk(node syntax.Node) bool {
	switch node := node.(type) {
	case *syntax.Literal:
		return node.Token == syntax.INT
	case *syntax.BinaryExpr, *syntax.UnaryExpr, *syntax.ParenExpr:
		return true
	}
	return false
}

// parenEval does compile-time (...) evaluations. Only integer literals and
// operators are accepted; names, strings and collections are rejected.
func parenEval(source string) (value int64, err error) {
	opts := syntax.FileOptions{}
	expr, err := opts.ParseExpr("expr", source, 0)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrOperandExpression, err)
		return
	}

	syntax.Walk(expr, func(node syntax.Node) bool {
		if err == nil && !exprNodeOk(node) {
			start, _ := node.Span()
			err = fmt.Errorf("%w: %v not a constant", ErrOperandExpression, start)
		}
		return err == nil
	})
	if err != nil {
		return
	}

	thread := &starlark.Thread{Name: "expr"}
	thread.SetMaxExecutionSteps(EXPR_MAX_STEPS)

	st_rc, err := starlark.EvalExprOptions(&opts, thread, expr, nil)
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrOperandExpression, err)
		return
	}

	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrOperandExpression
		return
	}

	value, ok = st_int.Int64()
	if !ok {
		err = ErrOperandNumber
		return
	}

	return
}
