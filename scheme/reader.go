package scheme

import (
	"fmt"
	"io"
)

// Reader represents a reader of successive top-level expressions.
type Reader struct {
	r      io.Reader
	tokens *tokenStack // nil until the input has been read
}

// NewReader constructs a reader which will read expressions from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// Read reads the next expression.
// If the input runs out, it returns nil and io.EOF.
func (rr *Reader) Read() (Expression, error) {
	if rr.tokens == nil {
		src, err := io.ReadAll(rr.r)
		if err != nil {
			return nil, fmt.Errorf("read source: %w", err)
		}
		tokens, err := Tokenize(string(src))
		if err != nil {
			return nil, err
		}
		rr.tokens = newTokenStack(tokens)
	}
	if rr.tokens.empty() {
		return nil, io.EOF
	}
	list, err := rr.tokens.parseList()
	if err != nil {
		rr.tokens = &tokenStack{} // the rest cannot be trusted
		return nil, err
	}
	return list, nil
}
