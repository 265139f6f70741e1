package scheme

// tokenStack holds tokens in reverse order so that the next token is
// always at the end.
type tokenStack []Token

func newTokenStack(tokens []Token) *tokenStack {
	st := make(tokenStack, len(tokens))
	for i, t := range tokens {
		st[len(tokens)-1-i] = t
	}
	return &st
}

func (st *tokenStack) pop() (Token, bool) {
	n := len(*st)
	if n == 0 {
		return Token{}, false
	}
	t := (*st)[n-1]
	*st = (*st)[:n-1]
	return t, true
}

func (st *tokenStack) push(t Token) {
	*st = append(*st, t)
}

func (st *tokenStack) empty() bool {
	return len(*st) == 0
}

// Parse reads the first parenthesized expression of text.
// Any tokens after its closing parenthesis are ignored.
func Parse(text string) (Expression, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	list, err := newTokenStack(tokens).parseList()
	if err != nil {
		return nil, err
	}
	return list, nil
}

// parseList reads "(" e... ")" from st.
func (st *tokenStack) parseList() (List, error) {
	t, ok := st.pop()
	if !ok {
		return nil, &ParseError{"expected open paren, found end of input"}
	}
	if t.Kind != OpenParen {
		return nil, &ParseError{"expected open paren, found " + t.String()}
	}
	list := List{}
	for {
		t, ok := st.pop()
		if !ok {
			return nil, &ParseError{"did not find enough tokens"}
		}
		switch t.Kind {
		case NumberToken:
			list = append(list, Number(t.Number))
		case SymbolToken:
			list = append(list, Symbol(t.Text))
		case OpenParen:
			st.push(t)
			sub, err := st.parseList()
			if err != nil {
				return nil, err
			}
			list = append(list, sub)
		case CloseParen:
			return list, nil
		}
	}
}
