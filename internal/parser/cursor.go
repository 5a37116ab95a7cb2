package parser

import (
	"github.com/HicaroD/mica/internal/lexer/token"
)

type cursor struct {
	offset int
	tokens []*token.Token
}

func newCursor(tokens []*token.Token) *cursor {
	return &cursor{offset: 0, tokens: tokens}
}

// peek returns nil once the tokens are exhausted.
func (cursor *cursor) peek() *token.Token {
	if cursor.isOutOfBound() {
		return nil
	}
	return cursor.tokens[cursor.offset]
}

func (cursor *cursor) next() *token.Token {
	if cursor.isOutOfBound() {
		return nil
	}
	token := cursor.tokens[cursor.offset]
	cursor.offset++
	return token
}

func (cursor *cursor) skip() {
	cursor.next()
}

func (cursor *cursor) nextIs(expectedKind token.Kind) bool {
	token := cursor.peek()
	return token != nil && token.Kind == expectedKind
}

func (cursor *cursor) isOutOfBound() bool {
	return cursor.offset >= len(cursor.tokens)
}

// endPos is where an unexpected end of input is reported: the last token.
func (cursor *cursor) endPos() token.Pos {
	if len(cursor.tokens) == 0 {
		return token.Pos{}
	}
	return cursor.tokens[len(cursor.tokens)-1].Pos
}
