package service

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/damon-houk/listing-currency-service/internal/domain/entity"
	"github.com/damon-houk/listing-currency-service/internal/domain/registry"
)

// numberExpr matches a grouped amount ("1,234.56", "50.000", "1 234,56") or a plain one
// ("89", "10,5"). A group is exactly three digits not followed by another digit.
const numberExpr = `\d{1,3}(?:[.,\x{00a0}\x{202f} ]\d{3}\b)+(?:[.,]\d+)?|\d+(?:[.,]\d+)?`

var numberRe = regexp.MustCompile(numberExpr)

// Latin-letter boundaries, only applied to symbols that begin or end with a Latin letter.
const (
	leftBoundary  = `(?:^|[^\p{Latin}])`
	rightBoundary = `(?:$|[^\p{Latin}])`
)

// ISO codes match upper-case only, except these, which listings also write in
// lower case ("10 usd"). Other lower-case codes are too often ordinary words ("php", "all").
var foldedCodes = map[entity.CurrencyCode]bool{
	"USD": true, "EUR": true, "GBP": true, "ILS": true, "CNY": true, "JPY": true,
	"INR": true, "KRW": true, "HKD": true, "SGD": true, "AUD": true, "CAD": true, "NZD": true,
	"CHF": true, "THB": true, "VND": true, "IDR": true, "MYR": true, "TWD": true, "AED": true,
}

// pluralSuffix lets currency names match in the plural ("dollars", "rupees").
const pluralSuffix = `(?i:e?s)?`

type patternKind int

const (
	kindSymbol patternKind = iota
	kindCode
	kindWord
)

// pattern binds one literal to its candidate codes, most common first.
type pattern struct {
	literal    string
	kind       patternKind
	candidates []entity.CurrencyCode
	re         *regexp.Regexp
}

func (p pattern) ambiguous() bool {
	return len(p.candidates) > 1
}

// hit is one match inside a text. pos is the byte offset where the match starts.
type hit struct {
	pos       int
	pattern   *pattern
	rawAmount string
	hasAmount bool
}

// buildPatterns derives the ordered pattern table from the registry: symbols and
// codes longest literal first, then currency words longest first.
func buildPatterns(reg *registry.Registry) []pattern {
	symbols := reg.SymbolsIndex()
	var primary, words []pattern
	seenSymbol := map[string]bool{}
	seenWord := map[string]int{}

	for _, code := range reg.AllCodes() {
		meta, _ := reg.Lookup(code)

		for _, sym := range meta.Symbols {
			if seenSymbol[sym] {
				continue
			}
			seenSymbol[sym] = true
			primary = append(primary, pattern{
				literal:    sym,
				kind:       kindSymbol,
				candidates: symbols[sym],
				re:         compilePattern(sym, false, false),
			})
		}

		if !seenSymbol[string(code)] {
			seenSymbol[string(code)] = true
			primary = append(primary, pattern{
				literal:    string(code),
				kind:       kindCode,
				candidates: []entity.CurrencyCode{code},
				re:         compilePattern(string(code), foldedCodes[code], false),
			})
		}

		for _, w := range meta.Words {
			key := strings.ToLower(w)
			if i, ok := seenWord[key]; ok {
				words[i].candidates = append(words[i].candidates, code)
				continue
			}
			seenWord[key] = len(words)
			words = append(words, pattern{
				literal:    w,
				kind:       kindWord,
				candidates: []entity.CurrencyCode{code},
				re:         compilePattern(w, true, true),
			})
		}
	}

	byLength := func(ps []pattern) {
		sort.SliceStable(ps, func(i, j int) bool {
			return utf8.RuneCountInString(ps[i].literal) > utf8.RuneCountInString(ps[j].literal)
		})
	}
	byLength(primary)
	byLength(words)

	return append(primary, words...)
}

// compilePattern builds "SYM NUM | NUM SYM [| SYM]". Capture groups: 1 symbol and
// 2 amount for the prefix form, 3 amount and 4 symbol for the suffix form, 5 the bare symbol.
// bare patterns are currency names and also accept the plural.
func compilePattern(literal string, fold, bare bool) *regexp.Regexp {
	sym := regexp.QuoteMeta(literal)
	if fold {
		sym = "(?i:" + sym + ")"
	}
	if bare {
		sym += pluralSuffix
	}

	lb, rb := "", ""
	if first, _ := utf8.DecodeRuneInString(literal); isLatinLetter(first) {
		lb = leftBoundary
	}
	if last, _ := utf8.DecodeLastRuneInString(literal); isLatinLetter(last) {
		rb = rightBoundary
	}

	expr := lb + `(` + sym + `)\s*(` + numberExpr + `)` +
		`|(` + numberExpr + `)\s*(` + sym + `)` + rb
	if bare {
		expr += `|` + lb + `(` + sym + `)` + rb
	}
	return regexp.MustCompile(expr)
}

func isLatinLetter(r rune) bool {
	return unicode.Is(unicode.Latin, r)
}

// scan runs every pattern over text in precedence order. Each match is masked
// out so a shorter overlapping symbol cannot match the same characters again.
func scan(patterns []pattern, text string) []hit {
	masked := []byte(text)
	var hits []hit

	for i := range patterns {
		p := &patterns[i]
		for _, m := range p.re.FindAllSubmatchIndex(masked, -1) {
			h, start, end := decodeMatch(p, text, m)
			if start < 0 {
				continue
			}
			hits = append(hits, h)
			for k := start; k < end; k++ {
				masked[k] = 0
			}
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })
	return hits
}

// decodeMatch turns submatch offsets into a hit and the span to mask.
func decodeMatch(p *pattern, text string, m []int) (hit, int, int) {
	group := func(g int) (int, int) {
		if 2*g+1 >= len(m) {
			return -1, -1
		}
		return m[2*g], m[2*g+1]
	}

	if s, _ := group(1); s >= 0 {
		ns, ne := group(2)
		return hit{pos: s, pattern: p, rawAmount: text[ns:ne], hasAmount: true}, s, ne
	}
	if ns, ne := group(3); ns >= 0 {
		_, e := group(4)
		return hit{pos: ns, pattern: p, rawAmount: text[ns:ne], hasAmount: true}, ns, e
	}
	if s, e := group(5); s >= 0 {
		return hit{pos: s, pattern: p}, s, e
	}
	return hit{}, -1, -1
}
