package lexer

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/HicaroD/mica/internal/diagnostics"
	"github.com/HicaroD/mica/internal/lexer/token"
)

// Item is a maximal byte slice found by itemization. Every item becomes
// exactly one token.
type Item struct {
	Lexeme []byte
	Offset int
}

type Lexer struct {
	Filename  string
	Collector *diagnostics.Collector

	src   []byte
	lines *token.LineTable
}

func New(filename string, src []byte, collector *diagnostics.Collector) *Lexer {
	lexer := new(Lexer)

	lexer.Filename = filename
	lexer.Collector = collector
	lexer.src = src
	lexer.lines = token.NewLineTable(filename, src)

	return lexer
}

func NewFromFilePath(path string, collector *diagnostics.Collector) (*Lexer, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	l := New(filepath.Base(path), src, collector)
	return l, nil
}

// Lex never fails: malformed items come out as UNRECOGNIZABLE tokens.
func Lex(src []byte) []*token.Token {
	return New("", src, nil).Tokenize()
}

func (lex *Lexer) Tokenize() []*token.Token {
	items := lex.Items()
	tokens := make([]*token.Token, 0, len(items))
	for _, item := range items {
		tokens = append(tokens, lex.classify(item))
	}
	return tokens
}

func (lex *Lexer) Items() []Item {
	var items []Item

	src := lex.src
	start := 0
	pending := false

	flush := func(end int) {
		if pending {
			items = append(items, Item{Lexeme: src[start:end], Offset: start})
			pending = false
		}
	}
	emit := func(from, to int) {
		items = append(items, Item{Lexeme: src[from:to], Offset: from})
	}

	for i := 0; i < len(src); i++ {
		ch := src[i]
		switch {
		case isWhitespace(ch):
			flush(i)
		case isPunctuation(ch):
			flush(i)
			emit(i, i+1)
		case isAssemblable(ch):
			if pending {
				// A lone symbol right before an operator glues to it
				if start+1 == i && !isAlphanumeric(src[start]) {
					emit(start, i+1)
					pending = false
					continue
				}
				flush(i)
			}
			if i+1 < len(src) && isAssemblable(src[i+1]) {
				emit(i, i+2)
				i++
			} else {
				emit(i, i+1)
			}
		default:
			if !pending {
				start = i
				pending = true
			}
		}
	}
	flush(len(src))

	return items
}

func (lex *Lexer) classify(item Item) *token.Token {
	pos := lex.lines.Position(item.Offset)

	if known, ok := token.LEXEMES[string(item.Lexeme)]; ok {
		tok := *known
		tok.Lexeme = item.Lexeme
		tok.Pos = pos
		return &tok
	}

	tok := token.New(token.ID, item.Lexeme, pos)

	literal, err := strconv.ParseInt(string(item.Lexeme), 10, strconv.IntSize)
	if err == nil {
		tok.Kind = token.LITERAL
		tok.Value = int(literal)
		return tok
	}

	first := item.Lexeme[0]
	if isPunctuation(first) || isAssemblable(first) {
		tok.Kind = token.UNRECOGNIZABLE
		lex.Collector.ReportAndSave(
			diagnostics.NewDiag(diagnostics.ErrLexUnrecognized, pos, "unrecognizable token %q", item.Lexeme),
		)
		return tok
	}

	tok.Name = string(item.Lexeme)
	return tok
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isPunctuation(ch byte) bool {
	switch ch {
	case '(', ')', '{', '}', ';', ',', '.':
		return true
	}
	return false
}

func isAssemblable(ch byte) bool {
	switch ch {
	case '=', '-', '>', '<', ':', '+', '*', '/':
		return true
	}
	return false
}

func isAlphanumeric(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')
}
