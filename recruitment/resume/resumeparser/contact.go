package resumeparser

import (
	"regexp"
	"strings"

	"github.com/Abraxas-365/hirematch/recruitment/resume"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Z|a-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	githubPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)github\.com/([a-zA-Z0-9-]+)`),
		regexp.MustCompile(`(?i)@([a-zA-Z0-9-]+)\s+on\s+GitHub`),
	}
	leetcodePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)leetcode\.com/([a-zA-Z0-9_-]+)`),
		regexp.MustCompile(`(?i)@([a-zA-Z0-9_-]+)\s+on\s+LeetCode`),
	}
	linkedinPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)linkedin\.com/in/([a-zA-Z0-9-]+)`),
		regexp.MustCompile(`(?i)linkedin\.com/pub/([a-zA-Z0-9-]+)`),
	}
	urlPattern = regexp.MustCompile(`(?i)https?://[^\s<>"')]+`)
)

var socialHosts = []string{"github.com", "leetcode.com", "linkedin.com"}

// ExtractContact returns the first email and phone number found in text
func ExtractContact(text string) resume.Contact {
	return resume.Contact{
		Email: emailPattern.FindString(text),
		Phone: strings.TrimSpace(phonePattern.FindString(text)),
	}
}

// ExtractProfileLinks finds public profile handles and a portfolio URL
func ExtractProfileLinks(text string) resume.ProfileLinks {
	links := resume.ProfileLinks{
		GitHub:   firstGroup(githubPatterns, text),
		LeetCode: firstGroup(leetcodePatterns, text),
	}
	if slug := firstGroup(linkedinPatterns, text); slug != "" {
		links.LinkedIn = "linkedin.com/in/" + slug
	}

	for _, u := range urlPattern.FindAllString(text, -1) {
		if !isSocialURL(u) {
			links.Portfolio = strings.TrimRight(u, ".,;")
			break
		}
	}
	return links
}

func firstGroup(patterns []*regexp.Regexp, text string) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

func isSocialURL(u string) bool {
	lower := strings.ToLower(u)
	for _, host := range socialHosts {
		if strings.Contains(lower, host) {
			return true
		}
	}
	return false
}
