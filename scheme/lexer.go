package scheme

import (
	"errors"
	"strconv"
	"strings"
)

// TokenKind is the kind of a Token.
type TokenKind int

const (
	OpenParen TokenKind = iota
	CloseParen
	NumberToken
	SymbolToken
)

// Token represents a lexical token.
// Number is set for NumberToken and Text for SymbolToken.
type Token struct {
	Kind   TokenKind
	Number float64
	Text   string
}

func (t Token) String() string {
	switch t.Kind {
	case OpenParen:
		return "("
	case CloseParen:
		return ")"
	case NumberToken:
		return Number(t.Number).String()
	default:
		return t.Text
	}
}

// parenSpacer surrounds each parenthesis with spaces.
var parenSpacer = strings.NewReplacer("(", " ( ", ")", " ) ")

// Tokenize splits text into tokens.
// Any word which is neither a parenthesis nor a number is a symbol,
// so Tokenize never fails in practice.
func Tokenize(text string) ([]Token, error) {
	words := strings.Fields(parenSpacer.Replace(text))
	tokens := make([]Token, 0, len(words))
	for _, w := range words {
		switch w {
		case "(":
			tokens = append(tokens, Token{Kind: OpenParen})
		case ")":
			tokens = append(tokens, Token{Kind: CloseParen})
		default:
			if f, ok := parseNumber(w); ok {
				tokens = append(tokens, Token{Kind: NumberToken, Number: f})
			} else {
				tokens = append(tokens, Token{Kind: SymbolToken, Text: w})
			}
		}
	}
	return tokens, nil
}

// parseNumber reads s as a decimal float64.
// Out-of-range numerals saturate to an infinity.
func parseNumber(s string) (float64, bool) {
	if strings.ContainsAny(s, "_xX") { // hex floats and digit separators
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}
