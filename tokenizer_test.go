package ttbl

import (
	"errors"
	"strings"
	"testing"
)

func describeTokens(tokens []Token) string {
	var parts []string
	for _, token := range tokens {
		if token.Id == tokenIdentifier {
			parts = append(parts, "identifier("+token.Lexeme+")")
		} else {
			parts = append(parts, token.Kind())
		}
	}
	return strings.Join(parts, " ")
}

func TestTokenizeSymbols(t *testing.T) {
	tokens, err := DefaultOptions().Tokenize("!p1 | (p2 & ~{q})")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	assertEqual(t, describeTokens(tokens), "not identifier(p1) or ( identifier(p2) and not { identifier(q) } ) end")
}

func TestTokenizeWords(t *testing.T) {
	tokens, err := DefaultOptions().Tokenize("not a and b or TRUE and FALSE")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	assertEqual(t, describeTokens(tokens), "not identifier(a) and identifier(b) or TRUE and FALSE end")
}

func TestTokenizePositions(t *testing.T) {
	tokens, err := DefaultOptions().Tokenize("ä  & b_2")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	want := []Token{
		{Id: tokenIdentifier, Lexeme: "ä", Pos: 0, End: 1},
		{Id: tokenAnd, Lexeme: "&", Pos: 3, End: 4},
		{Id: tokenIdentifier, Lexeme: "b_2", Pos: 5, End: 8},
		{Id: tokenEnd, Pos: 8, End: 8},
	}

	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d", len(tokens), len(want))
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d = %+v, want %+v", i, tokens[i], want[i])
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	tokens, err := DefaultOptions().Tokenize("  \t ")
	if err != nil {
		t.Fatalf("Tokenize() error = %v", err)
	}

	if len(tokens) != 1 || tokens[0].Id != tokenEnd || tokens[0].Pos != 4 {
		t.Errorf("Tokenize() = %v, want only end at 4", tokens)
	}
}

func TestTokenizeInvalidCharacter(t *testing.T) {
	tests := []struct {
		input string
		pos   int
		char  rune
	}{
		{"p $ q", 2, '$'},
		{"1p", 0, '1'},
		{"p => q", 2, '='},
		{"a, b", 1, ','},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := DefaultOptions().Tokenize(tt.input)

			var lexErr *LexError
			if !errors.As(err, &lexErr) {
				t.Fatalf("Tokenize() error = %v, want *LexError", err)
			}
			if lexErr.Pos != tt.pos || lexErr.Char != tt.char {
				t.Errorf("LexError = {%d %q}, want {%d %q}", lexErr.Pos, lexErr.Char, tt.pos, tt.char)
			}
		})
	}
}

func TestKeywordCasePolicy(t *testing.T) {
	tests := []struct {
		name  string
		opts  Options
		input string
		want  string
	}{
		{"exact operators", Options{}, "AND Or not", "identifier(AND) identifier(Or) not end"},
		{"folded operators", Options{FoldOperators: true}, "AND Or not", "and or not end"},
		{"exact literals", Options{}, "TRUE true False", "TRUE identifier(true) identifier(False) end"},
		{"folded literals", Options{FoldLiterals: true}, "TRUE true False", "TRUE TRUE FALSE end"},
		{"folding literals leaves operators", Options{FoldLiterals: true}, "And", "identifier(And) end"},
		{"folding operators leaves literals", Options{FoldOperators: true}, "true", "identifier(true) end"},
		{"no short literals", Options{}, "T F", "identifier(T) identifier(F) end"},
		{"short literals", Options{ShortLiterals: true}, "T F t", "TRUE FALSE identifier(t) end"},
		{"folded short literals", Options{ShortLiterals: true, FoldLiterals: true}, "t f", "TRUE FALSE end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := tt.opts.Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize() error = %v", err)
			}
			assertEqual(t, describeTokens(tokens), tt.want)
		})
	}
}
