// Package tokenizer implements the text segmentation engine and the shared
// token vocabulary behind the API.
package tokenizer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Kind classifies an emitted token.
type Kind string

// Token kinds.
const (
	KindWhitespace  Kind = "whitespace"
	KindPunctuation Kind = "punctuation"
	KindWord        Kind = "word"
	KindSubword     Kind = "subword"
	KindCharacter   Kind = "character"
)

// Token is one segment of the input text with its vocabulary ID.
// The JSON field for Kind is "type" to keep the public payload shape.
type Token struct {
	Text string `json:"text"`
	ID   int    `json:"id"`
	Kind Kind   `json:"type"`
}

// Strategy selects how input text is segmented.
type Strategy string

// Supported strategies. Anything unrecognized falls back to StrategyDefault.
const (
	StrategyDefault   Strategy = "default"
	StrategyWord      Strategy = "word"
	StrategyCharacter Strategy = "character"
)

// ParseStrategy maps a request string to a Strategy. Both "char" and
// "character" select character mode; unknown values fall back to default.
func ParseStrategy(s string) Strategy {
	switch s {
	case "word":
		return StrategyWord
	case "char", "character":
		return StrategyCharacter
	default:
		return StrategyDefault
	}
}

// Word-like runs longer than maxWordRunes are chunked into subwords of
// subwordRunes code points each (last chunk may be shorter).
const (
	maxWordRunes = 4
	subwordRunes = 3
)

// punctSet is the canonical punctuation set for the default strategy:
// ASCII sentence punctuation, brackets, straight quotes and the four
// Unicode smart quotes.
const punctSet = ".,!?;:()[]{}'\"‘’“”"

// punctClass is punctSet with the brackets escaped for use in a
// regexp character class.
const punctClass = `.,!?;:()\[\]{}'"` + "‘’“”"

// spaceClass matches exactly the runes unicode.IsSpace reports true for:
// the ASCII controls and space, NEL, NBSP, and the Unicode separator
// categories. RE2's \s is ASCII-only, so it must not be used here — the
// regex and the unicode.IsSpace classification below have to agree.
const spaceClass = `\t\n\v\f\r \x{85}\x{A0}\p{Z}`

// segmentRE matches every piece of the input in order: a whitespace run, a
// single punctuation character, or a run of everything else. The three
// alternatives cover all characters, so concatenating the matches
// reproduces the input.
var segmentRE = regexp.MustCompile(`[` + spaceClass + `]+|[` + punctClass + `]|[^` + spaceClass + punctClass + `]+`)

// Tokenize segments text using the given strategy and assigns every emitted
// token its ID from vocab. Empty text yields an empty slice.
func Tokenize(vocab *Vocabulary, text string, strategy Strategy) []Token {
	if text == "" {
		return []Token{}
	}
	switch strategy {
	case StrategyWord:
		return wordTokenize(vocab, text)
	case StrategyCharacter:
		return characterTokenize(vocab, text)
	default:
		return defaultTokenize(vocab, text)
	}
}

// Count returns the number of tokens Tokenize would emit. It still assigns
// vocabulary IDs as a side effect, matching Tokenize.
func Count(vocab *Vocabulary, text string, strategy Strategy) int {
	return len(Tokenize(vocab, text, strategy))
}

// CharCount returns the length of text in code points, the unit every
// length rule in this package is measured in.
func CharCount(text string) int {
	return utf8.RuneCountInString(text)
}

// defaultTokenize splits text into whitespace runs, single punctuation
// characters and word-like runs. Word-like runs of more than maxWordRunes
// code points are chunked into fixed-width subwords.
func defaultTokenize(vocab *Vocabulary, text string) []Token {
	tokens := []Token{}
	for _, piece := range segmentRE.FindAllString(text, -1) {
		first, _ := utf8.DecodeRuneInString(piece)
		switch {
		case unicode.IsSpace(first):
			tokens = append(tokens, newToken(vocab, piece, KindWhitespace))
		case isPunct(piece):
			tokens = append(tokens, newToken(vocab, piece, KindPunctuation))
		default:
			runes := []rune(piece)
			if len(runes) <= maxWordRunes {
				tokens = append(tokens, newToken(vocab, piece, KindWord))
				continue
			}
			for i := 0; i < len(runes); i += subwordRunes {
				end := i + subwordRunes
				if end > len(runes) {
					end = len(runes)
				}
				tokens = append(tokens, newToken(vocab, string(runes[i:end]), KindSubword))
			}
		}
	}
	return tokens
}

// wordTokenize emits one word token per whitespace-delimited segment.
func wordTokenize(vocab *Vocabulary, text string) []Token {
	fields := strings.Fields(text)
	tokens := make([]Token, 0, len(fields))
	for _, field := range fields {
		tokens = append(tokens, newToken(vocab, field, KindWord))
	}
	return tokens
}

// characterTokenize emits one token per code point, whitespace and
// punctuation included.
func characterTokenize(vocab *Vocabulary, text string) []Token {
	tokens := make([]Token, 0, utf8.RuneCountInString(text))
	for _, r := range text {
		tokens = append(tokens, newToken(vocab, string(r), KindCharacter))
	}
	return tokens
}

func newToken(vocab *Vocabulary, text string, kind Kind) Token {
	return Token{Text: text, ID: vocab.GetOrAssignID(text), Kind: kind}
}

// isPunct reports whether piece is exactly one character from punctSet.
func isPunct(piece string) bool {
	r, size := utf8.DecodeRuneInString(piece)
	return size == len(piece) && strings.ContainsRune(punctSet, r)
}
