package resumeparser

import "github.com/Abraxas-365/hirematch/recruitment/resume"

const MaxQualityScore = 10.0

// QualityScore rates how complete a profile is on a 0-10 scale
func QualityScore(p *resume.StructuredProfile) float64 {
	score := 0.0

	if p.HasEmail() {
		score += 1.0
	}
	if p.HasPhone() {
		score += 1.0
	}

	switch n := len(p.Skills); {
	case n >= 10:
		score += 3.0
	case n >= 5:
		score += 2.0
	case n > 0:
		score += 1.0
	}

	if p.HasEducation() {
		score += 2.0
	}
	if p.HasExperience() {
		score += 3.0
	}

	return min(score, MaxQualityScore)
}
