// Package profile aggregates multiple partial data sources into one
// candidate match profile.
package profile

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-matcher/internal/types"
)

// CareerRecord is the career-profile source row.
type CareerRecord struct {
	YearsExperience int
	CurrentTitle    string
	Skills          []string
	Certifications  []string
}

// PreferencesRecord is the job-preferences source row.
type PreferencesRecord struct {
	SeniorityLevels    []string
	PrimaryTitle       string
	RelatedTitles      []string
	MinSalary          int
	MaxSalary          int
	RemotePreference   string
	PreferredLocations []string
	IncludeKeywords    []string
	AvoidKeywords      []string
	ExcludeCompanies   []string
	ExcludeTitles      []string
}

// ResumeRecord is the primary-resume source row.
type ResumeRecord struct {
	Skills  []string
	RawText string
}

// PersonaRecord is the optional persona-preferences source row. Its fields
// override or merge on top of the base preferences.
type PersonaRecord struct {
	PrimaryTitle     string
	MinSalary        int
	RemotePreference string
	SeniorityLevels  []string
	RequiredSkills   []string
	NiceToHaveSkills []string
	Industries       []string
	CompanySizes     []string
	MissionValues    []string
	GrowthFocus      []string
}

// Store supplies the four independent profile source records. Each method
// may return (nil, nil) when the source has no row for the user.
type Store interface {
	CareerProfile(ctx context.Context, userID string) (*CareerRecord, error)
	Preferences(ctx context.Context, userID string) (*PreferencesRecord, error)
	PrimaryResume(ctx context.Context, userID string) (*ResumeRecord, error)
	PersonaPreferences(ctx context.Context, userID, personaID string) (*PersonaRecord, error)
}

// Aggregator fans out to the profile sources and merges the results.
type Aggregator struct {
	store  Store
	logger *zap.Logger
}

// NewAggregator builds an Aggregator. A nil logger disables source-failure
// logging.
func NewAggregator(store Store, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{store: store, logger: logger}
}

// Aggregate fetches all sources concurrently and merges them into one
// profile. A failing or empty source degrades only the fields it would have
// supplied; aggregation itself never fails.
func (a *Aggregator) Aggregate(ctx context.Context, userID, personaID string) *types.UserMatchProfile {
	var (
		career  *CareerRecord
		prefs   *PreferencesRecord
		resume  *ResumeRecord
		persona *PersonaRecord
	)

	var g errgroup.Group
	g.Go(func() error {
		record, err := a.store.CareerProfile(ctx, userID)
		if err != nil {
			a.logger.Warn("career profile fetch failed", zap.String("user_id", userID), zap.Error(err))
			return nil
		}
		career = record
		return nil
	})
	g.Go(func() error {
		record, err := a.store.Preferences(ctx, userID)
		if err != nil {
			a.logger.Warn("preferences fetch failed", zap.String("user_id", userID), zap.Error(err))
			return nil
		}
		prefs = record
		return nil
	})
	g.Go(func() error {
		record, err := a.store.PrimaryResume(ctx, userID)
		if err != nil {
			a.logger.Warn("resume fetch failed", zap.String("user_id", userID), zap.Error(err))
			return nil
		}
		resume = record
		return nil
	})
	if personaID != "" {
		g.Go(func() error {
			record, err := a.store.PersonaPreferences(ctx, userID, personaID)
			if err != nil {
				a.logger.Warn("persona preferences fetch failed",
					zap.String("user_id", userID), zap.String("persona_id", personaID), zap.Error(err))
				return nil
			}
			persona = record
			return nil
		})
	}
	_ = g.Wait() // goroutines swallow their own errors

	return merge(userID, personaID, career, prefs, resume, persona)
}

// merge applies the fixed precedence: base fields first, persona fields
// override or union on top.
func merge(userID, personaID string, career *CareerRecord, prefs *PreferencesRecord, resume *ResumeRecord, persona *PersonaRecord) *types.UserMatchProfile {
	p := types.NewEmptyProfile(userID)
	p.PersonaID = personaID

	if career != nil {
		p.YearsExperience = career.YearsExperience
		p.CurrentTitle = career.CurrentTitle
		p.Skills = unionStrings(p.Skills, career.Skills)
		p.Certifications = unionStrings(p.Certifications, career.Certifications)
	}

	if prefs != nil {
		p.SeniorityLevels = unionStrings(p.SeniorityLevels, prefs.SeniorityLevels)
		p.PrimaryTitle = prefs.PrimaryTitle
		p.RelatedTitles = unionStrings(p.RelatedTitles, prefs.RelatedTitles)
		p.MinSalary = prefs.MinSalary
		p.MaxSalary = prefs.MaxSalary
		p.RemotePreference = prefs.RemotePreference
		p.PreferredLocations = unionStrings(p.PreferredLocations, prefs.PreferredLocations)
		p.IncludeKeywords = unionStrings(p.IncludeKeywords, prefs.IncludeKeywords)
		p.AvoidKeywords = unionStrings(p.AvoidKeywords, prefs.AvoidKeywords)
		p.ExcludeCompanies = unionStrings(p.ExcludeCompanies, prefs.ExcludeCompanies)
		p.ExcludeTitles = unionStrings(p.ExcludeTitles, prefs.ExcludeTitles)
	}

	if resume != nil {
		p.ResumeSkills = unionStrings(p.ResumeSkills, resume.Skills)
		p.ResumeKeywords = ExtractKeywords(resume.RawText)
	}

	if persona != nil {
		// Scalars overwrite only when the persona explicitly provides them.
		if persona.PrimaryTitle != "" {
			p.PrimaryTitle = persona.PrimaryTitle
		}
		if persona.MinSalary > 0 {
			p.MinSalary = persona.MinSalary
		}
		if persona.RemotePreference != "" {
			p.RemotePreference = persona.RemotePreference
		}
		// Arrays union on top of the base lists.
		p.SeniorityLevels = unionStrings(p.SeniorityLevels, persona.SeniorityLevels)
		p.RequiredSkills = unionStrings(p.RequiredSkills, persona.RequiredSkills)
		p.NiceToHaveSkills = unionStrings(p.NiceToHaveSkills, persona.NiceToHaveSkills)
		p.Industries = unionStrings(p.Industries, persona.Industries)
		p.CompanySizes = unionStrings(p.CompanySizes, persona.CompanySizes)
		p.MissionValues = unionStrings(p.MissionValues, persona.MissionValues)
		p.GrowthFocus = unionStrings(p.GrowthFocus, persona.GrowthFocus)
	}

	return p
}

// unionStrings merges two lists with set semantics, preserving first-seen
// order and skipping empties.
func unionStrings(base, extra []string) []string {
	result := make([]string, 0, len(base)+len(extra))
	seen := make(map[string]bool, len(base)+len(extra))
	for _, list := range [][]string{base, extra} {
		for _, s := range list {
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			result = append(result, s)
		}
	}
	return result
}
