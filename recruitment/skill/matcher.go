package skill

import (
	"regexp"
	"strings"
)

// Tag is a canonical skill labelled with its taxonomy category
type Tag struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// MatchResult lists matched skills in first-match order
type MatchResult struct {
	AllSkills   []string          `json:"all_skills"`
	Categorized map[string]string `json:"categorized"`
}

// Tagged pairs every matched skill with its recorded category
func (r MatchResult) Tagged() []Tag {
	tags := make([]Tag, 0, len(r.AllSkills))
	for _, s := range r.AllSkills {
		tags = append(tags, Tag{Name: s, Category: r.Categorized[s]})
	}
	return tags
}

type compiledSkill struct {
	name     string
	category string
	pattern  *regexp.Regexp
}

// Matcher finds whole-word occurrences of taxonomy skills in free text.
// Patterns are compiled once; a Matcher is safe for concurrent use.
type Matcher struct {
	skills []compiledSkill
}

func NewMatcher(tax *Taxonomy) *Matcher {
	if tax == nil {
		tax = EmptyTaxonomy()
	}

	m := &Matcher{skills: make([]compiledSkill, 0, tax.SkillCount())}
	for _, cat := range tax.Categories() {
		for _, s := range cat.Skills {
			m.skills = append(m.skills, compiledSkill{
				name:     s,
				category: cat.Name,
				pattern:  regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(s)) + `\b`),
			})
		}
	}
	return m
}

// Match scans text for every taxonomy skill. A skill listed under several
// categories keeps the last one scanned.
func (m *Matcher) Match(text string) MatchResult {
	lower := strings.ToLower(text)

	result := MatchResult{
		AllSkills:   []string{},
		Categorized: map[string]string{},
	}
	seen := make(map[string]struct{})

	for _, s := range m.skills {
		if !s.pattern.MatchString(lower) {
			continue
		}
		result.Categorized[s.name] = s.category
		if _, dup := seen[s.name]; dup {
			continue
		}
		seen[s.name] = struct{}{}
		result.AllSkills = append(result.AllSkills, s.name)
	}

	return result
}
