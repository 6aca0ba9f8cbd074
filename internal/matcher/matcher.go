// Package matcher compiles the case-insensitive pattern and extracts matched text - whole match or first group
package matcher

import (
	"regexp"

	"github.com/UnendingLoop/ValidateOutput/internal/model"
)

// ExtractRule decides which part of a match becomes a keyword.
type ExtractRule int

const (
	ExtractWholeMatch ExtractRule = iota
	ExtractFirstGroup
)

func (r ExtractRule) String() string {
	if r == ExtractFirstGroup {
		return "first-group"
	}
	return "whole-match"
}

type Matcher struct {
	re   *regexp.Regexp
	rule ExtractRule
}

func Compile(pattern string) (*Matcher, error) {
	// сначала компилируем паттерн как есть, чтобы текст ошибки не содержал префикс (?i)
	if _, err := regexp.Compile(pattern); err != nil {
		return nil, model.NewError(model.KindInvalidPattern, "", err)
	}

	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, model.NewError(model.KindInvalidPattern, "", err)
	}

	rule := ExtractWholeMatch
	if re.NumSubexp() > 0 {
		rule = ExtractFirstGroup
	}
	return &Matcher{re: re, rule: rule}, nil
}

func (m *Matcher) Rule() ExtractRule {
	return m.rule
}

// FindAll returns the extracted text of every non-overlapping match in order.
// A first group that did not take part in a match yields "".
func (m *Matcher) FindAll(content string) []string {
	locs := m.re.FindAllStringSubmatchIndex(content, -1)
	result := make([]string, 0, len(locs))
	for _, loc := range locs {
		switch m.rule {
		case ExtractFirstGroup:
			if loc[2] < 0 {
				result = append(result, "")
				continue
			}
			result = append(result, content[loc[2]:loc[3]])
		default:
			result = append(result, content[loc[0]:loc[1]])
		}
	}
	return result
}
