package callquality

import (
	"regexp"
	"sort"
	"strings"

	"github.com/vfg2006/sales-performance-api/internal/domain"
)

// FillerWords são as muletas de linguagem contadas nas transcrições
var FillerWords = []string{"eh", "este", "o sea", "mmm", "ah"}

var fillerPatterns = func() map[string]*regexp.Regexp {
	patterns := make(map[string]*regexp.Regexp, len(FillerWords))
	for _, w := range FillerWords {
		patterns[w] = regexp.MustCompile(`(?i)(^|[^\p{L}])` + regexp.QuoteMeta(w) + `([^\p{L}]|$)`)
	}
	return patterns
}()

// countWord conta ocorrências da palavra inteira, sem diferenciar maiúsculas
func countWord(text, word string) int {
	re := fillerPatterns[word]
	count := 0
	for rest := text; ; {
		loc := re.FindStringSubmatchIndex(rest)
		if loc == nil {
			return count
		}
		count++
		// recomeça após a palavra para que separadores sejam compartilhados
		rest = rest[loc[3]+len(word):]
	}
}

// AnalyzeLanguage conta as muletas de linguagem em todas as transcrições,
// ordenadas da mais frequente para a menos frequente.
func AnalyzeLanguage(calls []*domain.CallRecord) *domain.LanguageAnalysis {
	counts := make(map[string]int, len(FillerWords))
	for _, c := range calls {
		text := strings.ToLower(c.Transcript)
		for _, w := range FillerWords {
			counts[w] += countWord(text, w)
		}
	}

	analysis := &domain.LanguageAnalysis{Calls: len(calls), FillerWords: make([]domain.FillerWordCount, 0, len(FillerWords))}
	for _, w := range FillerWords {
		analysis.FillerWords = append(analysis.FillerWords, domain.FillerWordCount{Word: w, Count: counts[w]})
		analysis.Total += counts[w]
	}
	sort.SliceStable(analysis.FillerWords, func(i, j int) bool {
		return analysis.FillerWords[i].Count > analysis.FillerWords[j].Count
	})

	return analysis
}
