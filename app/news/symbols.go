package news

import (
	"regexp"
	"sort"
	"strings"
)

// Canonical Saudi ticker shape: four digits plus the market suffix.
var symbolPattern = regexp.MustCompile(`(\d{4})\.SR`)

// Well-known company names and abbreviations mapped to their tickers, matched
// case-insensitively as substrings.
var symbolAliases = map[string]string{
	"aramco":                   "2222.SR",
	"saudi aramco":             "2222.SR",
	"sabic":                    "2010.SR",
	"al rajhi":                 "1120.SR",
	"rajhi bank":               "1120.SR",
	"stc":                      "7010.SR",
	"saudi telecom":            "7010.SR",
	"samba":                    "1090.SR",
	"ncb":                      "1180.SR",
	"national commercial bank": "1180.SR",
	"maaden":                   "1211.SR",
	"saudi arabian mining":     "1211.SR",
	"almarai":                  "2280.SR",
}

// ExtractSymbols returns the sorted, deduplicated set of tickers mentioned in
// or inferable from the text. Pure function; no match yields an empty set.
func ExtractSymbols(text string) []string {
	set := make(map[string]struct{})

	for _, m := range symbolPattern.FindAllStringSubmatch(text, -1) {
		set[m[1]+".SR"] = struct{}{}
	}

	lower := strings.ToLower(text)
	for name, symbol := range symbolAliases {
		if strings.Contains(lower, name) {
			set[symbol] = struct{}{}
		}
	}

	symbols := make([]string, 0, len(set))
	for symbol := range set {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	return symbols
}
