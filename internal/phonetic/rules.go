package phonetic

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// rule rewrites one orthographic cluster into the letters that spell how
// it is pronounced.
type rule struct {
	from string
	to   string
}

// suffixRules only apply at the end of a word.
var suffixRules = byLength([]rule{
	{"тс", "ц"},
	{"тся", "цца"},
	{"ого", "ово"},
	{"его", "ево"},
})

// clusterRules apply anywhere in a word.
var clusterRules = byLength([]rule{
	{"вств", "ств"},
	{"дс", "ц"},
	{"дц", "цц"},
	{"дч", "чч"},
	{"жч", "щщ"},
	{"здн", "зн"},
	{"здц", "сц"},
	{"здч", "щщ"},
	{"зж", "жж"},
	{"зч", "щщ"},
	{"зш", "шш"},
	{"лнц", "нц"},
	{"ндск", "нск"},
	{"ндц", "нц"},
	{"ндш", "нш"},
	{"нтг", "нг"},
	{"нтск", "нск"},
	{"рдц", "рц"},
	{"рдч", "рч"},
	{"сж", "жж"},
	{"стл", "сл"},
	{"стн", "сн"},
	{"стс", "сс"},
	{"стч", "щщ"},
	{"стьс", "сс"},
	{"сч", "щщ"},
	{"сш", "шш"},
	{"сщ", "щщ"},
	{"тц", "цц"},
	{"тч", "чч"},
	{"тщ", "чщ"},
	{"ться", "цца"},
	{"шч", "щщ"},
})

// byLength orders rules longest pattern first so that a short pattern
// never masks a longer one. Rules of equal length keep their order.
func byLength(rules []rule) []rule {
	sort.SliceStable(rules, func(i, j int) bool {
		return utf8.RuneCountInString(rules[i].from) > utf8.RuneCountInString(rules[j].from)
	})
	return rules
}

// replaceSuffixes rewrites word-final clusters.
func replaceSuffixes(s string) string {
	for _, r := range suffixRules {
		if strings.HasSuffix(s, r.from) {
			s = strings.TrimSuffix(s, r.from) + r.to
		}
	}
	return s
}

// replaceClusters rewrites consonant clusters anywhere in s, each
// pattern once across the whole string.
func replaceClusters(s string) string {
	for _, r := range clusterRules {
		s = strings.ReplaceAll(s, r.from, r.to)
	}
	return s
}

// Normalize applies the suffix rules and then the cluster rules to a
// lower-cased word.
func Normalize(s string) string {
	return replaceClusters(replaceSuffixes(s))
}
