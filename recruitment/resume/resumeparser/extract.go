package resumeparser

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/Abraxas-365/hirematch/recruitment/resume"
)

const (
	educationWindow   = 100
	contextLinesAbove = 2
	contextLinesBelow = 5
)

type degreePattern struct {
	level   resume.DegreeLevel
	pattern *regexp.Regexp
}

var degreePatterns = []degreePattern{
	{resume.DegreeBachelor, regexp.MustCompile(`(?i)(Bachelor|B\.?S\.?|B\.?A\.?|B\.?Tech|B\.?E\.?)`)},
	{resume.DegreeMaster, regexp.MustCompile(`(?i)(Master|M\.?S\.?|M\.?A\.?|M\.?Tech|MBA)`)},
	{resume.DegreeDoctorate, regexp.MustCompile(`(?i)(Ph\.?D\.?|Doctorate)`)},
	{resume.DegreeAssociate, regexp.MustCompile(`(?i)(Associate|A\.?S\.?|A\.?A\.?)`)},
}

var (
	graduationYear = regexp.MustCompile(`(19|20)\d{2}`)
	dateRange      = regexp.MustCompile(`(?i)(\d{4}|\w{3,9}\s+\d{4})\s*[-–—]\s*(\d{4}|\w{3,9}\s+\d{4}|Present|Current)`)
	yearToken      = regexp.MustCompile(`\d{4}`)
)

// ExtractEducation records every degree mention with the text around it.
// Overlapping mentions are kept as separate entries.
func ExtractEducation(text string) []resume.EducationEntry {
	entries := []resume.EducationEntry{}

	for _, dp := range degreePatterns {
		for _, loc := range dp.pattern.FindAllStringIndex(text, -1) {
			window := runeWindow(text, loc[0], loc[1], educationWindow)
			entries = append(entries, resume.EducationEntry{
				Degree:  text[loc[0]:loc[1]],
				Level:   dp.level,
				Year:    graduationYear.FindString(window),
				Context: strings.TrimSpace(window),
			})
		}
	}

	return entries
}

// ExtractExperience records every line holding a date range, with the two
// lines above and five lines below as context
func ExtractExperience(text string) []resume.ExperienceEntry {
	entries := []resume.ExperienceEntry{}
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		match := dateRange.FindString(line)
		if match == "" {
			continue
		}

		lo := max(0, i-contextLinesAbove)
		hi := min(len(lines), i+contextLinesBelow)
		entries = append(entries, resume.ExperienceEntry{
			DateRange: match,
			Context:   strings.TrimSpace(strings.Join(lines[lo:hi], "\n")),
		})
	}

	return entries
}

// TotalExperienceMonths sums (second year - first year) * 12 over the
// 4-digit tokens of every range. Years are taken by position: a range with
// fewer than two tokens, including "2020 - Present", counts 0, and so does
// a range whose second year precedes its first.
func TotalExperienceMonths(entries []resume.ExperienceEntry) int {
	total := 0
	for _, e := range entries {
		years := yearToken.FindAllString(e.DateRange, -1)
		if len(years) < 2 {
			continue
		}

		start, err := strconv.Atoi(years[0])
		if err != nil {
			continue
		}
		end, err := strconv.Atoi(years[1])
		if err != nil {
			continue
		}

		if months := (end - start) * 12; months > 0 {
			total += months
		}
	}
	return total
}

// runeWindow returns text[start:end] widened by n runes on each side
func runeWindow(text string, start, end, n int) string {
	lo := start
	for i := 0; i < n && lo > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(text[:lo])
		lo -= size
	}
	hi := end
	for i := 0; i < n && hi < len(text); i++ {
		_, size := utf8.DecodeRuneInString(text[hi:])
		hi += size
	}
	return text[lo:hi]
}

// truncateRunes keeps the first n runes of s
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
