package resumeparser

import (
	"context"
	"fmt"
	"strings"

	"github.com/Abraxas-365/hirematch/pkg/logx"
	"github.com/Abraxas-365/hirematch/recruitment/resume"
	"github.com/Abraxas-365/hirematch/recruitment/skill"
)

const rawTextPreviewRunes = 1000

type Mode string

const (
	ModeStandard Mode = "standard"
	ModeBasic    Mode = "basic"
)

// TextExtractor produces the plain text of a stored document
type TextExtractor interface {
	Extract(ctx context.Context, path string, declaredFormat string) (string, error)
}

// New returns the parser implementation for mode
func New(mode Mode, extractor TextExtractor, matcher *skill.Matcher) (resume.Parser, error) {
	switch Mode(strings.ToLower(string(mode))) {
	case ModeStandard, "":
		logx.Infof("Resume parser: standard (profile links enabled)")
		return NewStandardParser(extractor, matcher), nil
	case ModeBasic:
		logx.Infof("Resume parser: basic")
		return NewBasicParser(extractor, matcher), nil
	default:
		return nil, fmt.Errorf("unknown parser mode %q", mode)
	}
}

// ============================================================================
// Standard parser
// ============================================================================

// StandardParser extracts contact data, skills, education, experience and
// public profile links
type StandardParser struct {
	extractor TextExtractor
	matcher   *skill.Matcher
}

func NewStandardParser(extractor TextExtractor, matcher *skill.Matcher) *StandardParser {
	return &StandardParser{extractor: extractor, matcher: matcher}
}

func (p *StandardParser) Parse(ctx context.Context, path string, format string) (*resume.ParseResult, error) {
	text, err := extract(ctx, p.extractor, path, format)
	if err != nil {
		return nil, err
	}
	return p.ParseText(text), nil
}

func (p *StandardParser) ParseText(text string) *resume.ParseResult {
	profile := buildProfile(text, p.matcher)
	links := ExtractProfileLinks(text)
	profile.Links = &links
	return score(profile)
}

// ============================================================================
// Basic parser
// ============================================================================

// BasicParser is the standard parser without profile link detection
type BasicParser struct {
	extractor TextExtractor
	matcher   *skill.Matcher
}

func NewBasicParser(extractor TextExtractor, matcher *skill.Matcher) *BasicParser {
	return &BasicParser{extractor: extractor, matcher: matcher}
}

func (p *BasicParser) Parse(ctx context.Context, path string, format string) (*resume.ParseResult, error) {
	text, err := extract(ctx, p.extractor, path, format)
	if err != nil {
		return nil, err
	}
	return p.ParseText(text), nil
}

func (p *BasicParser) ParseText(text string) *resume.ParseResult {
	return score(buildProfile(text, p.matcher))
}

// ============================================================================
// Shared pipeline
// ============================================================================

func extract(ctx context.Context, extractor TextExtractor, path, format string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return extractor.Extract(ctx, path, format)
}

func buildProfile(text string, matcher *skill.Matcher) resume.StructuredProfile {
	experience := ExtractExperience(text)

	return resume.StructuredProfile{
		Contact:               ExtractContact(text),
		Skills:                matcher.Match(text).Tagged(),
		Education:             ExtractEducation(text),
		Experience:            experience,
		TotalExperienceMonths: TotalExperienceMonths(experience),
		RawTextPreview:        truncateRunes(text, rawTextPreviewRunes),
	}
}

func score(profile resume.StructuredProfile) *resume.ParseResult {
	return &resume.ParseResult{
		Profile:      profile,
		QualityScore: QualityScore(&profile),
	}
}
