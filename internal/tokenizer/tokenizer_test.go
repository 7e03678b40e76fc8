package tokenizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizeDefault_HelloWorld(t *testing.T) {
	vocab := NewVocabulary()
	tokens := Tokenize(vocab, "Hello, world!", StrategyDefault)

	require.Len(t, tokens, 5)
	assert.Equal(t, Token{Text: "Hello", ID: 0, Kind: KindWord}, tokens[0])
	assert.Equal(t, Token{Text: ",", ID: 1, Kind: KindPunctuation}, tokens[1])
	assert.Equal(t, Token{Text: " ", ID: 2, Kind: KindWhitespace}, tokens[2])
	assert.Equal(t, Token{Text: "world", ID: 3, Kind: KindWord}, tokens[3])
	assert.Equal(t, Token{Text: "!", ID: 4, Kind: KindPunctuation}, tokens[4])
	assert.Equal(t, 5, vocab.Size())
}

func TestTokenizeDefault_SubwordChunking(t *testing.T) {
	vocab := NewVocabulary()
	tokens := Tokenize(vocab, "internationalization", StrategyDefault)

	var texts []string
	for _, tok := range tokens {
		assert.Equal(t, KindSubword, tok.Kind)
		texts = append(texts, tok.Text)
	}
	assert.Equal(t, []string{"int", "ern", "ati", "ona", "liz", "ati", "on"}, texts)

	// "ati" repeats, so the vocabulary grows by 6, not 7.
	assert.Equal(t, 6, vocab.Size())
	assert.Equal(t, tokens[2].ID, tokens[5].ID)
}

func TestTokenizeDefault_ShortWordStaysWhole(t *testing.T) {
	vocab := NewVocabulary()
	tokens := Tokenize(vocab, "tiny", StrategyDefault)
	require.Len(t, tokens, 1)
	assert.Equal(t, KindWord, tokens[0].Kind)
	assert.Equal(t, "tiny", tokens[0].Text)
}

func TestTokenizeDefault_SmartQuotes(t *testing.T) {
	vocab := NewVocabulary()
	tokens := Tokenize(vocab, "“yes”", StrategyDefault)
	require.Len(t, tokens, 3)
	assert.Equal(t, KindPunctuation, tokens[0].Kind)
	assert.Equal(t, KindWord, tokens[1].Kind)
	assert.Equal(t, KindPunctuation, tokens[2].Kind)
}

func TestTokenizeDefault_UnicodeWhitespace(t *testing.T) {
	vocab := NewVocabulary()

	// NBSP separates words exactly like an ASCII space.
	tokens := Tokenize(vocab, "abc def", StrategyDefault)
	require.Len(t, tokens, 3)
	assert.Equal(t, KindWord, tokens[0].Kind)
	assert.Equal(t, Token{Text: " ", ID: 1, Kind: KindWhitespace}, tokens[1])
	assert.Equal(t, "def", tokens[2].Text)

	// A leading non-ASCII space must not swallow the following word.
	tokens = Tokenize(vocab, " abc", StrategyDefault)
	require.Len(t, tokens, 2)
	assert.Equal(t, KindWhitespace, tokens[0].Kind)
	assert.Equal(t, " ", tokens[0].Text)
	assert.Equal(t, Token{Text: "abc", ID: 0, Kind: KindWord}, tokens[1])

	// Ideographic space, mixed with ASCII whitespace, is one whitespace run.
	tokens = Tokenize(vocab, "a　 b", StrategyDefault)
	require.Len(t, tokens, 3)
	assert.Equal(t, "　 ", tokens[1].Text)
	assert.Equal(t, KindWhitespace, tokens[1].Kind)
}

func TestTokenizeDefault_ConcatenationReproducesInput(t *testing.T) {
	vocab := NewVocabulary()
	input := "The (quick) brown fox, jumped!  Twice. ‘ok’"
	tokens := Tokenize(vocab, input, StrategyDefault)

	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString(tok.Text)
	}
	assert.Equal(t, input, sb.String())
}

func TestTokenizeWord(t *testing.T) {
	vocab := NewVocabulary()
	tokens := Tokenize(vocab, "  the quick   brown fox ", StrategyWord)

	require.Len(t, tokens, 4)
	for _, tok := range tokens {
		assert.Equal(t, KindWord, tok.Kind)
	}
	assert.Equal(t, "the", tokens[0].Text)
	assert.Equal(t, "fox", tokens[3].Text)
}

func TestTokenizeCharacter(t *testing.T) {
	vocab := NewVocabulary()
	input := "a b!"
	tokens := Tokenize(vocab, input, StrategyCharacter)

	require.Len(t, tokens, 4)
	var sb strings.Builder
	for _, tok := range tokens {
		assert.Equal(t, KindCharacter, tok.Kind)
		sb.WriteString(tok.Text)
	}
	assert.Equal(t, input, sb.String())

	// Repeated characters share IDs.
	same := Tokenize(vocab, "aa", StrategyCharacter)
	assert.Equal(t, same[0].ID, same[1].ID)
	assert.Equal(t, tokens[0].ID, same[0].ID)
}

func TestTokenizeEmptyText(t *testing.T) {
	vocab := NewVocabulary()
	for _, strategy := range []Strategy{StrategyDefault, StrategyWord, StrategyCharacter} {
		tokens := Tokenize(vocab, "", strategy)
		assert.NotNil(t, tokens)
		assert.Empty(t, tokens)
	}
	assert.Equal(t, 0, vocab.Size())
}

func TestParseStrategy(t *testing.T) {
	assert.Equal(t, StrategyWord, ParseStrategy("word"))
	assert.Equal(t, StrategyCharacter, ParseStrategy("char"))
	assert.Equal(t, StrategyCharacter, ParseStrategy("character"))
	assert.Equal(t, StrategyDefault, ParseStrategy("default"))
	assert.Equal(t, StrategyDefault, ParseStrategy(""))
	assert.Equal(t, StrategyDefault, ParseStrategy("bpe-nonsense"))
}

func TestCount(t *testing.T) {
	vocab := NewVocabulary()
	assert.Equal(t, 5, Count(vocab, "Hello, world!", StrategyDefault))
	assert.Equal(t, 2, Count(vocab, "hello world", StrategyWord))
	assert.Equal(t, 0, Count(vocab, "", StrategyDefault))
}

func TestCharCount(t *testing.T) {
	assert.Equal(t, 0, CharCount(""))
	assert.Equal(t, 4, CharCount("abcd"))
	assert.Equal(t, 5, CharCount("cafés"))
}
