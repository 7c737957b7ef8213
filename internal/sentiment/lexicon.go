package sentiment

import (
	"bufio"
	"bytes"
	_ "embed"
	"strings"
)

//go:embed positive.txt
var positiveRaw []byte

//go:embed negative.txt
var negativeRaw []byte

// defaultLexicon builds the word -> polarity map from the embedded lists.
// Words appearing in both lists (should not happen) resolve to negative,
// since the negative list is applied last.
func defaultLexicon() map[string]int {
	lexicon := make(map[string]int, 256)
	addWords(lexicon, positiveRaw, 1)
	addWords(lexicon, negativeRaw, -1)
	return lexicon
}

func addWords(lexicon map[string]int, raw []byte, polarity int) {
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		lexicon[strings.ToLower(word)] = polarity
	}
}
