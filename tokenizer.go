package ttbl

import (
	"fmt"
	"strings"
	"unicode"
)

type tokenId = int32

const (
	tokenIdentifier = iota
	tokenTrue
	tokenFalse
	tokenNot
	tokenAnd
	tokenOr
	tokenParenOpen
	tokenParenClose
	tokenBraceOpen
	tokenBraceClose
	tokenEnd
)

const charsWhitespace = " \t\r\n"

// Token is a single lexeme of an expression. Pos and End are rune offsets
// into the input, End exclusive.
type Token struct {
	Id     tokenId
	Lexeme string
	Pos    int
	End    int
}

func (t Token) String() string {
	switch t.Id {
	case tokenIdentifier:
		return fmt.Sprintf("identifier `%s`", t.Lexeme)
	case tokenEnd:
		return "end of input"
	default:
		return "`" + t.Lexeme + "`"
	}
}

// Kind names the token class without its text.
func (t Token) Kind() string {
	return tokenName(t.Id)
}

func tokenName(id tokenId) string {
	switch id {
	case tokenIdentifier:
		return "identifier"
	case tokenTrue:
		return "TRUE"
	case tokenFalse:
		return "FALSE"
	case tokenNot:
		return "not"
	case tokenAnd:
		return "and"
	case tokenOr:
		return "or"
	case tokenParenOpen:
		return "("
	case tokenParenClose:
		return ")"
	case tokenBraceOpen:
		return "{"
	case tokenBraceClose:
		return "}"
	case tokenEnd:
		return "end"
	default:
		return "?"
	}
}

// matcher tries to consume a token at the head of input. offset is the
// position of input[0] in the original text.
type matcher = func(input []rune, offset int, tokens []Token) ([]rune, []Token, bool)

func takeWhile(input []rune, check func(rune) bool) ([]rune, []rune) {
	var n = 0
	for n < len(input) && check(input[n]) {
		n++
	}

	return input[:n], input[n:]
}

func isIdentifierStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentifierChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func matchToken(id tokenId, chars ...rune) matcher {
	return func(input []rune, offset int, tokens []Token) ([]rune, []Token, bool) {
		if len(input) == 0 || !strings.ContainsRune(string(chars), input[0]) {
			return input, tokens, false
		}

		tokens = append(tokens, Token{Id: id, Lexeme: string(input[0]), Pos: offset, End: offset + 1})
		return input[1:], tokens, true
	}
}

// matchWord reads a full identifier and classifies it with the keyword
// policy of opts.
func matchWord(opts Options) matcher {
	return func(input []rune, offset int, tokens []Token) ([]rune, []Token, bool) {
		if len(input) == 0 || !isIdentifierStart(input[0]) {
			return input, tokens, false
		}

		var word []rune
		word, input = takeWhile(input, isIdentifierChar)

		var lexeme = string(word)
		var token = Token{Id: opts.classify(lexeme), Lexeme: lexeme, Pos: offset, End: offset + len(word)}

		return input, append(tokens, token), true
	}
}

func (o Options) classify(word string) tokenId {
	var operator = word
	if o.FoldOperators {
		operator = strings.ToLower(word)
	}

	switch operator {
	case "and":
		return tokenAnd
	case "or":
		return tokenOr
	case "not":
		return tokenNot
	}

	var literal = word
	if o.FoldLiterals {
		literal = strings.ToUpper(word)
	}

	switch literal {
	case "TRUE":
		return tokenTrue
	case "FALSE":
		return tokenFalse
	}

	if o.ShortLiterals {
		switch literal {
		case "T":
			return tokenTrue
		case "F":
			return tokenFalse
		}
	}

	return tokenIdentifier
}

func getMatchers(opts Options) []matcher {
	return []matcher{
		matchToken(tokenAnd, '&'),
		matchToken(tokenOr, '|'),
		matchToken(tokenNot, '!', '~'),
		matchToken(tokenParenOpen, '('),
		matchToken(tokenParenClose, ')'),
		matchToken(tokenBraceOpen, '{'),
		matchToken(tokenBraceClose, '}'),
		matchWord(opts),
	}
}

func tokenize(inputString string, opts Options) ([]Token, error) {
	var input = []rune(inputString)
	var total = len(input)
	var tokens []Token
	var matchers = getMatchers(opts)

	for {
		_, input = takeWhile(input, func(r rune) bool {
			return strings.ContainsRune(charsWhitespace, r)
		})

		if len(input) == 0 {
			break
		}

		var offset = total - len(input)
		var match bool
		for _, m := range matchers {
			input, tokens, match = m(input, offset, tokens)
			if match {
				break
			}
		}

		if !match {
			return nil, &LexError{Pos: offset, Char: input[0]}
		}
	}

	return append(tokens, Token{Id: tokenEnd, Pos: total, End: total}), nil
}
