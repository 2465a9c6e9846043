package classifier

import (
	"testing"

	"github.com/ninaorlova/lingua/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestClassify_ArticleAdded(t *testing.T) {
	c := Classify("I went to store", "I went to the store", "")

	assert.Equal(t, domain.CategoryArticles, c.Category)
	assert.Equal(t, "article_added_the", c.Pattern)
	assert.Equal(t, domain.SeverityModerate, c.Severity)
}

func TestClassify_ArticleHintWins(t *testing.T) {
	c := Classify("He is engineer", "He is an engineer", "missing article before profession")
	assert.Equal(t, domain.CategoryArticles, c.Category)
	assert.Equal(t, "article_added_an", c.Pattern)
}

func TestClassify_PrepositionSwap(t *testing.T) {
	c := Classify("I arrived to London", "I arrived in London", "wrong preposition")

	assert.Equal(t, domain.CategoryPrepositions, c.Category)
	// Removed check runs before added, so the dropped preposition names the pattern.
	assert.Equal(t, "preposition_removed_to", c.Pattern)
}

func TestClassify_PrepositionAdded(t *testing.T) {
	c := Classify("She works Monday", "She works on Monday", "")
	assert.Equal(t, domain.CategoryPrepositions, c.Category)
	assert.Equal(t, "preposition_added_on", c.Pattern)
}

func TestClassify_TensePatterns(t *testing.T) {
	tests := []struct {
		name        string
		original    string
		corrected   string
		explanation string
		pattern     string
	}{
		{"perfect", "I saw that movie already", "I have seen that movie already", "use present perfect tense", "tense_perfect"},
		{"future", "I go there next year", "I will go there next year", "future tense needed", "tense_future"},
		{"continuous", "She cook now", "She is cooking now", "present continuous tense", "tense_continuous"},
		{"past", "They walk home yesterday", "They walked home yesterday", "past tense needed", "tense_past"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.original, tt.corrected, tt.explanation)
			assert.Equal(t, domain.CategoryTenses, c.Category)
			assert.Equal(t, tt.pattern, c.Pattern)
		})
	}
}

func TestClassify_WordOrderByPermutation(t *testing.T) {
	c := Classify("always I drink coffee", "I always drink coffee", "")
	assert.Equal(t, domain.CategoryWordOrder, c.Category)
	assert.Equal(t, "word_order_error", c.Pattern)
}

func TestClassify_VocabularyHint(t *testing.T) {
	c := Classify("I did a big mistake", "I made a big mistake", "better word choice here")
	assert.Equal(t, domain.CategoryVocabulary, c.Category)
	assert.Equal(t, "vocabulary_error", c.Pattern)
}

func TestClassify_GrammarFallback(t *testing.T) {
	c := Classify("She don't like it", "She doesn't like it", "")
	assert.Equal(t, domain.CategoryGrammar, c.Category)
	assert.Equal(t, "grammar_error", c.Pattern)
}

func TestClassify_SeverityThresholds(t *testing.T) {
	tests := []struct {
		name      string
		original  string
		corrected string
		severity  domain.Severity
	}{
		{"identical is minor", "same text here", "same text here", domain.SeverityMinor},
		{"one of four tokens is moderate", "I like green tea", "I like black tea", domain.SeverityModerate},
		{"two of five tokens is important", "he go to school late", "he went to class late", domain.SeverityImportant},
		{"length diff of two is important", "I like tea", "I really do like tea", domain.SeverityImportant},
		{"mostly rewritten is critical", "me want food now", "I would like some food", domain.SeverityCritical},
		{"length diff over three is critical", "hello", "hello there my dear old friend", domain.SeverityCritical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Classify(tt.original, tt.corrected, "")
			assert.Equal(t, tt.severity, c.Severity)
		})
	}
}

func TestClassify_AlwaysInTaxonomy(t *testing.T) {
	pairs := [][2]string{
		{"a", "b"},
		{"the cat sat", "sat the cat"},
		{"i goed home", "i went home"},
		{"", "something new entirely"},
		{"many words in a long original sentence", "short"},
	}
	valid := map[domain.ErrorCategory]bool{
		domain.CategoryArticles: true, domain.CategoryPrepositions: true,
		domain.CategoryTenses: true, domain.CategoryWordOrder: true,
		domain.CategoryVocabulary: true, domain.CategoryGrammar: true,
	}
	for _, p := range pairs {
		c := Classify(p[0], p[1], "")
		assert.True(t, valid[c.Category], "category %q", c.Category)
		assert.NotEmpty(t, c.Pattern)
		assert.Contains(t, []domain.Severity{
			domain.SeverityCritical, domain.SeverityImportant,
			domain.SeverityModerate, domain.SeverityMinor,
		}, c.Severity)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	first := Classify("I arrived to London", "I arrived in London", "wrong preposition")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Classify("I arrived to London", "I arrived in London", "wrong preposition"))
	}
}
