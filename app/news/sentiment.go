package news

import (
	"strings"

	"github.com/jonreiter/govader"
)

// Scorer computes two independent sentiment estimates over English text: a
// VADER lexicon score set, which handles short punchy headlines well, and a
// polarity/subjectivity estimate over a finance-oriented lexicon. Neither
// alone is trusted; both are reported.
type Scorer struct {
	vader *govader.SentimentIntensityAnalyzer
}

func NewScorer() *Scorer {
	return &Scorer{
		vader: govader.NewSentimentIntensityAnalyzer(),
	}
}

// Run never fails; empty input yields the fixed neutral vector.
func (s *Scorer) Run(text string) Sentiment {
	if strings.TrimSpace(text) == "" {
		return Sentiment{Neutral: 1}
	}

	scores := s.vader.PolarityScores(text)
	polarity, subjectivity := estimatePolarity(text)

	return Sentiment{
		Compound:     scores.Compound,
		Positive:     scores.Positive,
		Negative:     scores.Negative,
		Neutral:      scores.Neutral,
		Polarity:     polarity,
		Subjectivity: subjectivity,
	}
}

type lexiconEntry struct {
	polarity     float64
	subjectivity float64
}

// Small polarity/subjectivity lexicon skewed toward financial news wording.
var polarityLexicon = map[string]lexiconEntry{
	"gain":        {0.5, 0.4},
	"gains":       {0.5, 0.4},
	"profit":      {0.6, 0.3},
	"profits":     {0.6, 0.3},
	"growth":      {0.5, 0.4},
	"surge":       {0.7, 0.6},
	"surged":      {0.7, 0.6},
	"rally":       {0.6, 0.6},
	"record":      {0.4, 0.3},
	"strong":      {0.5, 0.6},
	"rise":        {0.4, 0.4},
	"rose":        {0.4, 0.4},
	"up":          {0.3, 0.3},
	"high":        {0.3, 0.4},
	"good":        {0.7, 0.6},
	"great":       {0.8, 0.75},
	"excellent":   {1.0, 1.0},
	"positive":    {0.6, 0.7},
	"upgrade":     {0.5, 0.4},
	"dividend":    {0.3, 0.2},
	"expand":      {0.4, 0.4},
	"expansion":   {0.4, 0.4},
	"beat":        {0.5, 0.5},
	"outperform":  {0.6, 0.5},
	"loss":        {-0.6, 0.3},
	"losses":      {-0.6, 0.3},
	"decline":     {-0.5, 0.4},
	"declined":    {-0.5, 0.4},
	"drop":        {-0.5, 0.4},
	"dropped":     {-0.5, 0.4},
	"fall":        {-0.4, 0.4},
	"fell":        {-0.4, 0.4},
	"down":        {-0.3, 0.3},
	"low":         {-0.3, 0.4},
	"weak":        {-0.5, 0.6},
	"bad":         {-0.7, 0.65},
	"poor":        {-0.6, 0.6},
	"negative":    {-0.6, 0.7},
	"downgrade":   {-0.5, 0.4},
	"risk":        {-0.3, 0.5},
	"crash":       {-0.8, 0.7},
	"fraud":       {-0.8, 0.6},
	"miss":        {-0.4, 0.4},
	"missed":      {-0.4, 0.4},
	"volatile":    {-0.2, 0.6},
	"uncertainty": {-0.3, 0.7},
}

var negations = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "without": {}, "n't": {},
}

// estimatePolarity averages lexicon polarity over matched words, flipping the
// sign after a negation token. Polarity lands in [-1,1], subjectivity in
// [0,1]; text with no lexicon hits scores zero on both.
func estimatePolarity(text string) (float64, float64) {
	words := strings.Fields(strings.ToLower(text))

	var polaritySum, subjectivitySum float64
	matched := 0
	negated := false

	for _, word := range words {
		word = strings.Trim(word, ".,;:!?\"'()[]")

		if _, ok := negations[word]; ok {
			negated = true
			continue
		}

		entry, ok := polarityLexicon[word]
		if !ok {
			negated = false
			continue
		}

		polarity := entry.polarity
		if negated {
			polarity = -polarity
			negated = false
		}

		polaritySum += polarity
		subjectivitySum += entry.subjectivity
		matched++
	}

	if matched == 0 {
		return 0, 0
	}

	return polaritySum / float64(matched), subjectivitySum / float64(matched)
}
