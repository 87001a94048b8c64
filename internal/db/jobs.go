package db

import (
	"context"
	"fmt"

	"github.com/jonathan/job-matcher/internal/types"
)

// ListActiveJobs returns the active job catalog, newest postings first.
// limit <= 0 means no limit.
func (db *DB) ListActiveJobs(ctx context.Context, limit int) ([]types.JobPosting, error) {
	query := `SELECT id, title, company, location, remote_type, description,
	                 COALESCE(to_char(posted_date, 'YYYY-MM-DD'), ''),
	                 salary_min, salary_max,
	                 competitiveness_level, seniority_level,
	                 experience_years_min, experience_years_max,
	                 required_skills, preferred_skills,
	                 industry, company_size
	          FROM job_postings
	          WHERE status = 'active'
	          ORDER BY posted_date DESC NULLS LAST`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	jobs := []types.JobPosting{}
	for rows.Next() {
		var job types.JobPosting
		var competitiveness, seniority, industry, companySize *string
		var required, preferred []string
		err := rows.Scan(
			&job.ID, &job.Title, &job.Company, &job.Location, &job.RemoteType,
			&job.Description, &job.PostedDate,
			&job.SalaryMin, &job.SalaryMax,
			&competitiveness, &seniority,
			&job.ExperienceYearsMin, &job.ExperienceYearsMax,
			&required, &preferred,
			&industry, &companySize,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		if competitiveness != nil {
			job.CompetitivenessLevel = *competitiveness
		}
		if seniority != nil {
			job.SeniorityLevel = *seniority
		}
		if industry != nil {
			job.Industry = *industry
		}
		if companySize != nil {
			job.CompanySize = *companySize
		}
		job.RequiredSkills = required
		job.PreferredSkills = preferred
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job rows: %w", err)
	}
	return jobs, nil
}
