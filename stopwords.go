package goose

import (
	"strings"
	"unicode"
)

// stopwords is the English stop word list used to estimate how much prose a
// block of text contains.
var stopwords = toSet(`a about above across after afterwards again against all almost alone along
already also although always am among amongst an and another any anyhow anyone anything anyway
anywhere are around as at back be became because become becomes becoming been before beforehand
behind being below beside besides between beyond both but by can cannot could did do does doing
done down during each either else elsewhere enough even ever every everyone everything everywhere
except few first for former formerly from further had has have having he hence her here hereafter
hereby herein hereupon hers herself him himself his how however i if in indeed into is it its
itself just last latter latterly least less made many may me meanwhile might mine more moreover
most mostly much must my myself namely neither never nevertheless next no nobody none noone nor
not nothing now nowhere of off often on once one only onto or other others otherwise our ours
ourselves out over own per perhaps please quite rather re said same say says seem seemed seeming
seems several she should since so some somehow someone something sometime sometimes somewhere
still such than that the their theirs them themselves then thence there thereafter thereby
therefore therein thereupon these they this those though through throughout thru thus to together
too toward towards under until up upon us very via was we well were what whatever when whence
whenever where whereafter whereas whereby wherein whereupon wherever whether which while whither
who whoever whole whom whose why will with within without would yet you your yours yourself
yourselves`)

func toSet(words string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(words) {
		set[w] = struct{}{}
	}
	return set
}

// WordStats summarizes the words of a block of text.
type WordStats struct {
	Words     int
	Stopwords int
}

// CountWords counts words and stop words in text. Punctuation is ignored.
func CountWords(text string) WordStats {
	var stats WordStats
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	})
	for _, f := range fields {
		stats.Words++
		if _, ok := stopwords[f]; ok {
			stats.Stopwords++
		}
	}
	return stats
}
