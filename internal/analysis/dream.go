package analysis

import "strings"

// MatchDreamSymbols returns "<symbol>: <meaning>" for every known symbol present in the text,
// in lexicon order. Matching is a substring search ("waterfall" contains "water").
func MatchDreamSymbols(dreamText string) []string {
	lowerText := strings.ToLower(dreamText)
	symbols := []string{}
	for _, symbol := range dreamSymbols {
		if strings.Contains(lowerText, symbol.Symbol) {
			symbols = append(symbols, symbol.String())
		}
	}
	return symbols
}
