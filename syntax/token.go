package syntax

import (
	"iter"
	"regexp"
	"strings"
	"unicode/utf8"
)

// TokenKind represents the possible kinds of token in an INI document.
type TokenKind int8

// These tokens are yielded from [Tokens].
const (
	CommentToken TokenKind = iota
	SectionStart
	HeaderWord
	SectionEnd
	Key
	Value
	Trailing
	ErrorToken
)

func (k TokenKind) String() string {
	switch k {
	case CommentToken:
		return "Comment"
	case SectionStart:
		return "SectionStart"
	case HeaderWord:
		return "HeaderWord"
	case SectionEnd:
		return "SectionEnd"
	case Key:
		return "Key"
	case Value:
		return "Value"
	case Trailing:
		return "Trailing"
	case ErrorToken:
		return "Error"
	default:
		panic("Unknown TokenKind")
	}
}

func (k TokenKind) GoString() string {
	return k.String()
}

// Token is a single lexical element. For [ErrorToken] tokens Content is the
// message; for [CommentToken] tokens it includes the leading ; or #.
type Token struct {
	Kind    TokenKind
	Content string
	Pos     Pos
}

const bom = "\uFEFF"

var lineRegexp = regexp.MustCompile("\r\n|\r|\n")

func lines(input string) iter.Seq2[Pos, string] {
	return func(yield func(Pos, string) bool) {
		pos := Pos{Line: 1, Col: 1}
		if strings.HasPrefix(input, bom) {
			pos.Offset = len(bom)
		}
		input = input[pos.Offset:]
		for match := lineRegexp.FindStringIndex(input); match != nil; match = lineRegexp.FindStringIndex(input) {
			if !yield(pos, input[:match[0]]) {
				return
			}
			pos = Pos{Offset: pos.Offset + match[1], Line: pos.Line + 1, Col: 1}
			input = input[match[1]:]
		}
		yield(pos, input)
	}
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

// Tokens iterates over the tokens of an INI document.
//
// Every key is followed by exactly one value token, which is empty for a
// line like "key=". A header yields SectionStart, one HeaderWord per
// whitespace separated word, then SectionEnd. Text after the closing
// bracket that is not a comment yields a [Trailing] token.
//
// An [ErrorToken] token is yielded for each line that cannot be tokenized.
// Consumers can stop at the first error or keep going.
func Tokens(input string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for start, line := range lines(input) {
			rest := strings.TrimLeft(line, " \t")
			if rest == "" {
				continue
			}
			at := start.Advance(len(line) - len(rest))
			if !utf8.ValidString(rest) {
				if !yield(Token{Kind: ErrorToken, Content: "invalid UTF-8", Pos: at}) {
					return
				}
				continue
			}

			var ok bool
			switch rest[0] {
			case ';', '#':
				ok = yield(Token{Kind: CommentToken, Content: strings.TrimRight(rest, " \t"), Pos: at})
			case '[':
				ok = tokenizeHeader(rest, at, yield)
			default:
				ok = tokenizeEntry(rest, at, yield)
			}
			if !ok {
				return
			}
		}
	}
}

func tokenizeHeader(line string, at Pos, yield func(Token) bool) bool {
	body := line[1:]
	end := strings.IndexByte(body, ']')
	if end < 0 {
		return yield(Token{Kind: ErrorToken, Content: "missing ] after section header", Pos: at})
	}
	if !yield(Token{Kind: SectionStart, Content: "[", Pos: at}) {
		return false
	}

	inner := body[:end]
	words := 0
	for i := 0; i < len(inner); {
		if isBlank(inner[i]) {
			i++
			continue
		}
		j := i
		for j < len(inner) && !isBlank(inner[j]) {
			if inner[j] == '[' {
				return yield(Token{Kind: ErrorToken, Content: "unexpected [ in section header", Pos: at.Advance(1 + j)})
			}
			j++
		}
		if !yield(Token{Kind: HeaderWord, Content: inner[i:j], Pos: at.Advance(1 + i)}) {
			return false
		}
		words++
		i = j
	}
	if words == 0 {
		return yield(Token{Kind: ErrorToken, Content: "empty section header", Pos: at})
	}

	if !yield(Token{Kind: SectionEnd, Content: "]", Pos: at.Advance(1 + end)}) {
		return false
	}

	after := body[end+1:]
	trimmed := strings.TrimLeft(after, " \t")
	if trimmed == "" {
		return true
	}
	afterPos := at.Advance(2 + end + len(after) - len(trimmed))
	if trimmed[0] == ';' || trimmed[0] == '#' {
		return yield(Token{Kind: CommentToken, Content: strings.TrimRight(trimmed, " \t"), Pos: afterPos})
	}
	return yield(Token{Kind: Trailing, Content: strings.TrimRight(trimmed, " \t"), Pos: afterPos})
}

func tokenizeEntry(line string, at Pos, yield func(Token) bool) bool {
	before, after, found := strings.Cut(line, "=")
	if !found {
		return yield(Token{Kind: ErrorToken, Content: "missing = after key", Pos: at})
	}
	key := strings.TrimRight(before, " \t")
	if key == "" {
		return yield(Token{Kind: ErrorToken, Content: "missing key before =", Pos: at})
	}
	if !yield(Token{Kind: Key, Content: key, Pos: at}) {
		return false
	}

	value := strings.TrimLeft(after, " \t")
	valuePos := at.Advance(len(before) + 1 + len(after) - len(value))
	return yield(Token{Kind: Value, Content: strings.TrimRight(value, " \t"), Pos: valuePos})
}
