package svgbot

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	gl "github.com/rustyoz/genericlexer"
	"github.com/tdewolff/parse/v2/strconv"
)

// scanner feeds genericlexer items to the attribute parsers and keeps track
// of how much input they cover. The lexer ends its item stream at any
// character it has no state for (a leading '.', '\r', '#'), which looks just
// like the end of input. The scanner picks up at that offset: a number or
// white space there becomes an item and the lexer is restarted behind it,
// anything else turns into an ItemError.
type scanner struct {
	name   string
	input  string
	offset int // end of the last item handed out
	lex    *gl.Lexer

	buf      gl.Item
	buffered bool
	end      gl.Item
}

func newScanner(name, input string) *scanner {
	s := &scanner{name: name, input: input}
	s.lex, _ = gl.Lex(name, input)
	return s
}

// next returns the next item. After ItemEOS or ItemError it keeps
// returning that item.
func (s *scanner) next() gl.Item {
	if s.buffered {
		s.buffered = false
		return s.buf
	}
	return s.scan()
}

func (s *scanner) peek() gl.Item {
	if !s.buffered {
		s.buf = s.scan()
		s.buffered = true
	}
	return s.buf
}

// skipSeparators drops white space and commas.
func (s *scanner) skipSeparators() {
	for {
		switch s.peek().Type {
		case gl.ItemWSP, gl.ItemComma:
			s.next()
		default:
			return
		}
	}
}

// stop releases the lexer goroutine when parsing ends early.
func (s *scanner) stop() {
	if s.lex != nil {
		drain(s.lex)
		s.lex = nil
	}
}

func (s *scanner) scan() gl.Item {
	if s.lex == nil {
		return s.end
	}
	i := s.lex.NextItem()
	if i.Type != gl.ItemEOS {
		s.offset += len(i.Value)
		return i
	}
	s.stop()

	if s.offset >= len(s.input) {
		s.end = gl.Item{Type: gl.ItemEOS}
		return s.end
	}

	rest := s.input[s.offset:]
	var item gl.Item
	if _, n := strconv.ParseFloat([]byte(rest)); n > 0 {
		item = gl.Item{Type: gl.ItemNumber, Value: rest[:n]}
	} else if r, n := utf8.DecodeRuneInString(rest); unicode.IsSpace(r) {
		item = gl.Item{Type: gl.ItemWSP, Value: rest[:n]}
	} else {
		s.end = gl.Item{Type: gl.ItemError, Value: fmt.Sprintf("unexpected %q at offset %d", r, s.offset)}
		return s.end
	}
	s.offset += len(item.Value)
	s.lex, _ = gl.Lex(s.name, s.input[s.offset:])
	return item
}

// drain reads whatever the lexer still has to send so its goroutine can
// exit.
func drain(l *gl.Lexer) {
	go func(items chan gl.Item) {
		for range items {
		}
	}(l.Items)
}
