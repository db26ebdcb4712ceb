package core

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
)

// ExclusionFilter drops entries that are not games: soundtracks, demos,
// dedicated servers, runtimes and the like. It is a heuristic.
type ExclusionFilter struct {
	keywords []string
	ids      map[string]struct{}
}

func NewExclusionFilter(keywords []string, ids []string) *ExclusionFilter {
	fold := cases.Fold()
	filter := &ExclusionFilter{
		keywords: []string{},
		ids:      make(map[string]struct{}),
	}

	for _, keyword := range keywords {
		keyword = strings.TrimSpace(fold.String(keyword))
		if keyword != "" {
			filter.keywords = append(filter.keywords, keyword)
		}
	}

	for _, id := range ids {
		filter.ids[strings.TrimSpace(id)] = struct{}{}
	}

	return filter
}

// Excludes reports whether entry should be skipped and which rule matched.
func (f *ExclusionFilter) Excludes(entry Entry) (bool, string) {
	if _, ok := f.ids[entry.Id]; ok {
		return true, "id " + entry.Id
	}

	name := cases.Fold().String(entry.Name)
	for _, keyword := range f.keywords {
		if matchesKeyword(name, keyword) {
			return true, keyword
		}
	}

	return false, ""
}

// substringKeywordLen is the rune length from which a keyword matches
// anywhere in a name. Shorter keywords such as "demo" or "server" would
// hit "Demon" or "Observer" that way.
const substringKeywordLen = 7

// matchesKeyword reports whether keyword occurs in name. Long keywords match
// as plain substrings. Short ones need a word boundary on the left and, after
// an optional plural s, on the right.
func matchesKeyword(name, keyword string) bool {
	if utf8.RuneCountInString(keyword) >= substringKeywordLen {
		return strings.Contains(name, keyword)
	}
	return containsWord(name, keyword)
}

// containsWord reports whether word, or its plural, occurs in s without a
// letter or digit directly on either side.
func containsWord(s, word string) bool {
	offset := 0
	for {
		i := strings.Index(s[offset:], word)
		if i < 0 {
			return false
		}

		start := offset + i
		end := start + len(word)
		if strings.HasPrefix(s[end:], "s") {
			end++
		}

		before, _ := utf8.DecodeLastRuneInString(s[:start])
		after, _ := utf8.DecodeRuneInString(s[end:])
		if !isWordRune(before) && !isWordRune(after) {
			return true
		}

		_, size := utf8.DecodeRuneInString(s[start:])
		offset = start + size
	}
}

func isWordRune(r rune) bool {
	return r != utf8.RuneError && (unicode.IsLetter(r) || unicode.IsDigit(r))
}
