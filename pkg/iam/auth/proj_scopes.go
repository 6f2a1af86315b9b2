package auth

import "strings"

// ============================================================================
// DOMAIN-SPECIFIC SCOPES - Job Matching
// ============================================================================

const (
	ScopeAll = "*"

	// Resume scopes
	ScopeResumesAll   = "resumes:*"
	ScopeResumesRead  = "resumes:read"
	ScopeResumesWrite = "resumes:write" // Upload, activate and delete resumes

	// Job scopes
	ScopeJobsAll   = "jobs:*"
	ScopeJobsRead  = "jobs:read"
	ScopeJobsWrite = "jobs:write" // Create jobs and change their status

	// Recommendation scopes
	ScopeRecommendationsRead = "recommendations:read"

	// Application scopes, held by job seekers only
	ScopeApplicationsAll   = "applications:*"
	ScopeApplicationsRead  = "applications:read"  // List own applications and saved jobs
	ScopeApplicationsWrite = "applications:write" // Apply to and save jobs
)

// DomainScopeDescriptions provides descriptions for domain scopes
var DomainScopeDescriptions = map[string]string{
	ScopeAll: "Full access",

	ScopeResumesAll:   "Full access to the caller's resumes",
	ScopeResumesRead:  "View the caller's resumes and parse tasks",
	ScopeResumesWrite: "Upload, activate and delete the caller's resumes",

	ScopeJobsAll:   "Full access to the job catalog",
	ScopeJobsRead:  "Browse and search jobs",
	ScopeJobsWrite: "Create jobs and change their status",

	ScopeRecommendationsRead: "Get job recommendations and similar jobs",

	ScopeApplicationsAll:   "Full access to the caller's applications and saved jobs",
	ScopeApplicationsRead:  "List the caller's applications and saved jobs",
	ScopeApplicationsWrite: "Apply to and save jobs",
}

// DomainScopeGroups defines role groupings used when minting tokens
var DomainScopeGroups = map[string][]string{
	"candidate": {
		ScopeResumesAll,
		ScopeJobsRead,
		ScopeRecommendationsRead,
		ScopeApplicationsAll,
	},
	"recruiter": {
		ScopeJobsAll,
		ScopeRecommendationsRead,
	},
	"admin": {
		ScopeAll,
	},
}

// ScopesForRole returns the scopes granted to role, or nil if it is unknown
func ScopesForRole(role string) []string {
	scopes, ok := DomainScopeGroups[strings.ToLower(role)]
	if !ok {
		return nil
	}
	out := make([]string, len(scopes))
	copy(out, scopes)
	return out
}

// HasScope reports whether granted covers required. "*" covers everything and
// "resource:*" covers every action on resource.
func HasScope(granted []string, required string) bool {
	resource, _, _ := strings.Cut(required, ":")
	for _, g := range granted {
		switch {
		case g == ScopeAll, g == required:
			return true
		case strings.HasSuffix(g, ":*") && strings.TrimSuffix(g, ":*") == resource:
			return true
		}
	}
	return false
}
