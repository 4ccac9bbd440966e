package domain

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultTopKeywords is the number of keywords ExtractPatterns reports.
const DefaultTopKeywords = 5

// stopwords are filtered from keyword extraction.
var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "is": {},
	"was": {}, "are": {}, "were": {}, "be": {}, "been": {}, "being": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {},
	"will": {}, "would": {}, "could": {}, "should": {}, "may": {},
	"might": {}, "must": {}, "can": {}, "cant": {}, "our": {}, "we": {},
	"us": {}, "my": {}, "me": {}, "i": {}, "you": {}, "he": {}, "she": {},
	"it": {}, "they": {}, "them": {}, "this": {}, "that": {}, "these": {},
	"those": {}, "what": {}, "which": {}, "who": {}, "when": {}, "where": {},
	"why": {}, "how": {}, "all": {}, "each": {}, "every": {}, "both": {},
	"few": {}, "more": {}, "most": {}, "other": {}, "some": {}, "such": {},
	"no": {}, "not": {}, "only": {}, "own": {}, "same": {}, "so": {},
	"than": {}, "too": {}, "very": {}, "just": {},
}

// formatPatterns maps a format tag to its title cues. The slice order is the
// detection order, so reported formats follow this table, not the input.
var formatPatterns = []struct {
	Name string
	Cues []string
}{
	{"Q&A", []string{"q&a", "questions", "answers", "ask me", "ama"}},
	{"Vlog", []string{"vlog", "day in", "daily", "life", "routine"}},
	{"Challenge", []string{"challenge", "try", "trying", "attempt", "vs"}},
	{"Tutorial", []string{"how to", "tutorial", "guide", "tips", "learn"}},
	{"Storytime", []string{"storytime", "story", "happened", "time i", "time we"}},
	{"Announcement", []string{"announcement", "news", "update", "reveal", "surprise"}},
	{"Reaction", []string{"reaction", "react", "reacting", "respond"}},
	{"Review", []string{"review", "unboxing", "haul", "first impression"}},
}

// KeywordCount is a keyword with its occurrence count across titles.
type KeywordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// PatternReport holds the patterns extracted from outlier titles.
type PatternReport struct {
	CommonKeywords  []KeywordCount `json:"common_keywords"`
	DetectedFormats []string       `json:"detected_formats"`
	PatternSummary  string         `json:"pattern_summary"`
}

// ExtractKeywords returns the topN most frequent meaningful words across the
// titles. Titles are lower-cased, '!' and '?' are stripped, stopwords and
// words of 2 characters or fewer are dropped. Ties keep first-encountered
// order.
func ExtractKeywords(titles []string, topN int) []KeywordCount {
	counts := make(map[string]int)
	var order []string

	replacer := strings.NewReplacer("!", "", "?", "")
	for _, title := range titles {
		words := strings.Fields(replacer.Replace(strings.ToLower(title)))
		for _, w := range words {
			if _, stop := stopwords[w]; stop || len(w) <= 2 {
				continue
			}
			if counts[w] == 0 {
				order = append(order, w)
			}
			counts[w]++
		}
	}

	keywords := make([]KeywordCount, 0, len(order))
	for _, w := range order {
		keywords = append(keywords, KeywordCount{Word: w, Count: counts[w]})
	}

	sort.SliceStable(keywords, func(i, j int) bool {
		return keywords[i].Count > keywords[j].Count
	})

	if len(keywords) > topN {
		keywords = keywords[:topN]
	}
	return keywords
}

// DetectFormats returns the format tags whose cues appear in any of the
// titles. Each tag is reported at most once, in formatPatterns order.
func DetectFormats(titles []string) []string {
	var detected []string

	for _, format := range formatPatterns {
	titleLoop:
		for _, title := range titles {
			lower := strings.ToLower(title)
			for _, cue := range format.Cues {
				if strings.Contains(lower, cue) {
					detected = append(detected, format.Name)
					break titleLoop
				}
			}
		}
	}

	return detected
}

// ExtractPatterns extracts keyword and format patterns from outlier titles.
// allVideos is accepted for future comparison against the channel at large
// and is currently unused.
func ExtractPatterns(outliers []Video, allVideos []Video) PatternReport {
	_ = allVideos

	if len(outliers) == 0 {
		return PatternReport{
			CommonKeywords:  []KeywordCount{},
			DetectedFormats: []string{},
			PatternSummary:  "No outliers found",
		}
	}

	titles := make([]string, len(outliers))
	for i, o := range outliers {
		titles[i] = o.Title
	}

	keywords := ExtractKeywords(titles, DefaultTopKeywords)
	formats := DetectFormats(titles)

	var summaryParts []string
	if len(keywords) > 0 {
		top := keywords
		if len(top) > 3 {
			top = top[:3]
		}
		quoted := make([]string, len(top))
		for i, kw := range top {
			quoted[i] = fmt.Sprintf("%q", kw.Word)
		}
		summaryParts = append(summaryParts, "Common words: "+strings.Join(quoted, ", "))
	}
	if len(formats) > 0 {
		summaryParts = append(summaryParts, "Formats: "+strings.Join(formats, ", "))
	}

	summary := "No clear pattern detected"
	if len(summaryParts) > 0 {
		summary = strings.Join(summaryParts, " • ")
	}

	return PatternReport{
		CommonKeywords:  keywords,
		DetectedFormats: formats,
		PatternSummary:  summary,
	}
}
