package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/job-matcher/internal/profile"
)

// CareerProfile fetches the career-profile row for a user. Returns
// (nil, nil) when no row exists.
func (db *DB) CareerProfile(ctx context.Context, userID string) (*profile.CareerRecord, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", userID, err)
	}

	var record profile.CareerRecord
	err = db.pool.QueryRow(ctx,
		`SELECT years_experience, current_title, skills, certifications
		 FROM career_profiles WHERE user_id = $1`,
		id,
	).Scan(&record.YearsExperience, &record.CurrentTitle, &record.Skills, &record.Certifications)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get career profile: %w", err)
	}
	return &record, nil
}

// Preferences fetches the job-preferences row for a user. Returns
// (nil, nil) when no row exists.
func (db *DB) Preferences(ctx context.Context, userID string) (*profile.PreferencesRecord, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", userID, err)
	}

	var record profile.PreferencesRecord
	err = db.pool.QueryRow(ctx,
		`SELECT seniority_levels, primary_title, related_titles,
		        min_salary, max_salary, remote_preference,
		        preferred_locations, include_keywords, avoid_keywords,
		        exclude_companies, exclude_titles
		 FROM job_preferences WHERE user_id = $1`,
		id,
	).Scan(
		&record.SeniorityLevels, &record.PrimaryTitle, &record.RelatedTitles,
		&record.MinSalary, &record.MaxSalary, &record.RemotePreference,
		&record.PreferredLocations, &record.IncludeKeywords, &record.AvoidKeywords,
		&record.ExcludeCompanies, &record.ExcludeTitles,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	return &record, nil
}

// PrimaryResume fetches the user's primary resume row. Returns (nil, nil)
// when no resume is on file.
func (db *DB) PrimaryResume(ctx context.Context, userID string) (*profile.ResumeRecord, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", userID, err)
	}

	var record profile.ResumeRecord
	err = db.pool.QueryRow(ctx,
		`SELECT skills, raw_text
		 FROM resumes WHERE user_id = $1 AND is_primary
		 ORDER BY updated_at DESC LIMIT 1`,
		id,
	).Scan(&record.Skills, &record.RawText)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get primary resume: %w", err)
	}
	return &record, nil
}

// PersonaPreferences fetches the persona-preferences row for a user and
// persona. Returns (nil, nil) when no row exists.
func (db *DB) PersonaPreferences(ctx context.Context, userID, personaID string) (*profile.PersonaRecord, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", userID, err)
	}
	pid, err := uuid.Parse(personaID)
	if err != nil {
		return nil, fmt.Errorf("invalid persona id %q: %w", personaID, err)
	}

	var record profile.PersonaRecord
	err = db.pool.QueryRow(ctx,
		`SELECT primary_title, min_salary, remote_preference, seniority_levels,
		        required_skills, nice_to_have_skills, industries,
		        company_sizes, mission_values, growth_focus
		 FROM persona_preferences WHERE user_id = $1 AND persona_id = $2`,
		uid, pid,
	).Scan(
		&record.PrimaryTitle, &record.MinSalary, &record.RemotePreference, &record.SeniorityLevels,
		&record.RequiredSkills, &record.NiceToHaveSkills, &record.Industries,
		&record.CompanySizes, &record.MissionValues, &record.GrowthFocus,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get persona preferences: %w", err)
	}
	return &record, nil
}
