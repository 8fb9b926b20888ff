// Package analyze enriches live-source articles that arrive without
// precomputed metadata: keyword categorization, lexicon sentiment
// scoring and excerpt summaries. The fixture set never passes through
// here; its fields are already computed.
package analyze

import (
	"math"
	"strings"
	"unicode"
)

// DefaultCategory is assigned when no keyword list matches.
const DefaultCategory = "General"

var categoryKeywords = map[string][]string{
	"Politics": {
		"election", "government", "president", "congress", "policy",
		"minister", "vote", "senate", "parliament", "legislation",
	},
	"Technology": {
		"tech", "ai", "software", "computer", "digital", "cyber",
		"startup", "app", "chip", "robot", "internet",
	},
	"Business": {
		"market", "economy", "business", "finance", "stock", "company",
		"trade", "bank", "investor", "earnings", "inflation",
	},
	"Health": {
		"health", "medical", "disease", "hospital", "vaccine", "doctor",
		"patient", "drug", "treatment", "virus",
	},
	"Sports": {
		"sport", "game", "team", "player", "match", "championship",
		"win", "score", "league", "tournament", "olympic",
	},
	"Entertainment": {
		"movie", "music", "celebrity", "film", "actor", "show",
		"album", "festival", "streaming", "concert",
	},
	"Science": {
		"science", "research", "study", "scientist", "discovery",
		"space", "telescope", "experiment", "physics",
	},
	"Environment": {
		"climate", "environment", "energy", "pollution", "weather",
		"carbon", "wildlife", "ocean", "emissions", "drought",
	},
}

// categoryOrder fixes the tie break so classification is deterministic.
var categoryOrder = []string{
	"Politics", "Technology", "Business", "Health",
	"Sports", "Entertainment", "Science", "Environment",
}

// Categorize picks the category whose keyword list matches the text
// most often. Title tokens are weighted double. Returns DefaultCategory
// when nothing matches.
func Categorize(title, summary string) string {
	titleTokens := tokenize(title)
	summaryTokens := tokenize(summary)

	best := DefaultCategory
	bestScore := 0
	for _, cat := range categoryOrder {
		score := 0
		for _, kw := range categoryKeywords[cat] {
			score += 2 * countMatches(titleTokens, kw)
			score += countMatches(summaryTokens, kw)
		}
		if score > bestScore {
			bestScore = score
			best = cat
		}
	}
	return best
}

func countMatches(tokens []string, keyword string) int {
	n := 0
	for _, t := range tokens {
		if strings.HasPrefix(t, keyword) {
			n++
		}
	}
	return n
}

var positiveWords = map[string]bool{
	"breakthrough": true, "success": true, "successful": true, "win": true,
	"wins": true, "record": true, "growth": true, "improve": true,
	"improves": true, "improved": true, "strong": true, "surge": true,
	"boost": true, "best": true, "gain": true, "gains": true,
	"recovery": true, "progress": true, "hope": true, "celebrate": true,
	"achievement": true, "helps": true, "cure": true, "approved": true,
	"thriving": true, "victory": true, "soar": true, "soars": true,
}

var negativeWords = map[string]bool{
	"crisis": true, "crash": true, "decline": true, "loss": true,
	"losses": true, "fail": true, "fails": true, "failure": true,
	"death": true, "deaths": true, "war": true, "attack": true,
	"threat": true, "fear": true, "fears": true, "collapse": true,
	"disaster": true, "worst": true, "drop": true, "drops": true,
	"warning": true, "warn": true, "warns": true, "shrinking": true,
	"outbreak": true, "layoffs": true, "scandal": true, "fraud": true,
}

// Sentiment assigns one of the three labels with a confidence in
// [0.5, 1). A tie or no hits yields neutral.
func Sentiment(text string) (label string, score float64) {
	pos, neg := 0, 0
	for _, t := range tokenize(text) {
		if positiveWords[t] {
			pos++
		}
		if negativeWords[t] {
			neg++
		}
	}

	switch {
	case pos > neg:
		return "positive", confidence(pos - neg)
	case neg > pos:
		return "negative", confidence(neg - pos)
	default:
		return "neutral", 0.5
	}
}

// confidence maps a hit margin to [0.5, 1): 0.5 base plus 0.1 per hit,
// saturating below 1.0.
func confidence(margin int) float64 {
	c := 0.5 + 0.1*float64(margin)
	return math.Min(c, 0.99)
}

// Summarize returns a leading excerpt of at most maxWords words,
// preferring to cut at the first sentence boundary past word 8.
func Summarize(text string, maxWords int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}
	if maxWords <= 0 {
		maxWords = 40
	}

	end := len(words)
	if end > maxWords {
		end = maxWords
	}
	for i := 8; i < end; i++ {
		if strings.HasSuffix(words[i], ".") {
			end = i + 1
			break
		}
	}

	out := strings.Join(words[:end], " ")
	if end < len(words) && !strings.HasSuffix(out, ".") {
		out += "..."
	}
	return out
}

func tokenize(s string) []string {
	var tokens []string
	for _, word := range strings.Fields(strings.ToLower(s)) {
		word = strings.TrimFunc(word, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsDigit(r)
		})
		if word != "" {
			tokens = append(tokens, word)
		}
	}
	return tokens
}
