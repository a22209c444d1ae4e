package textindex

import "strings"

// englishStopWords is the standard English stop word list used by the
// description and review vectorizers.
var englishStopWords = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "aren", "as", "at", "be", "because", "been",
	"before", "being", "below", "between", "both", "but", "by", "can",
	"cannot", "could", "couldn", "did", "didn", "do", "does", "doesn",
	"doing", "don", "down", "during", "each", "few", "for", "from",
	"further", "had", "hadn", "has", "hasn", "have", "haven", "having",
	"he", "her", "here", "hers", "herself", "him", "himself", "his", "how",
	"i", "if", "in", "into", "is", "isn", "it", "its", "itself", "just",
	"ll", "me", "more", "most", "mustn", "my", "myself", "no", "nor",
	"not", "now", "of", "off", "on", "once", "only", "or", "other",
	"ought", "our", "ours", "ourselves", "out", "over", "own", "re",
	"same", "shan", "she", "should", "shouldn", "so", "some", "such",
	"than", "that", "the", "their", "theirs", "them", "themselves",
	"then", "there", "these", "they", "this", "those", "through", "to",
	"too", "under", "until", "up", "ve", "very", "was", "wasn", "we",
	"were", "weren", "what", "when", "where", "which", "while", "who",
	"whom", "why", "will", "with", "won", "would", "wouldn", "you",
	"your", "yours", "yourself", "yourselves",
}

// domainStopWords are noise words specific to the credit card corpus;
// nearly every document contains them so they carry no signal.
var domainStopWords = []string{
	"card", "cards", "credit", "want",
}

// DefaultStopWords returns the combined stop word set.
func DefaultStopWords() map[string]struct{} {
	set := make(map[string]struct{}, len(englishStopWords)+len(domainStopWords))
	for _, w := range englishStopWords {
		set[w] = struct{}{}
	}
	for _, w := range domainStopWords {
		set[w] = struct{}{}
	}
	return set
}

// StopWordSet builds a set from an explicit word list, lowercasing entries.
func StopWordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = struct{}{}
	}
	return set
}
