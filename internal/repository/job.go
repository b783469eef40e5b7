package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jobsethiopia/jobsethiopia-go/internal/model"
)

var ErrJobNotFound = errors.New("job not found")

const jobColumns = `id, title, company, location, type, salary, description,
	qualifications, responsibilities, benefits, experience, skills,
	posted_date, application_deadline, contact_email, application_link,
	application_address, company_website, company_logo, category,
	career_level, introduction, how_to_apply, created_at, updated_at`

// JobRepository handles job posting persistence.
type JobRepository struct {
	db *sql.DB
}

// NewJobRepository creates a new JobRepository.
func NewJobRepository(db *sql.DB) *JobRepository {
	return &JobRepository{db: db}
}

// List retrieves all job postings, newest created first.
func (r *JobRepository) List(ctx context.Context) ([]model.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []model.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}

	return jobs, rows.Err()
}

// GetByID retrieves a single job posting.
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*model.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = ?`

	job, err := scanJob(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	return job, nil
}

// Create inserts a new job posting and returns its generated ID.
func (r *JobRepository) Create(ctx context.Context, job *model.Job) (int64, error) {
	query := `INSERT INTO jobs (
		title, company, location, type, salary, description,
		qualifications, responsibilities, benefits, experience, skills,
		posted_date, application_deadline, contact_email, application_link,
		application_address, company_website, company_logo, category,
		career_level, introduction, how_to_apply
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	args, err := jobArgs(job)
	if err != nil {
		return 0, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

// Update replaces all mutable fields of a job posting. Concurrent edits
// resolve last-writer-wins.
func (r *JobRepository) Update(ctx context.Context, id int64, job *model.Job) error {
	query := `UPDATE jobs SET
		title = ?, company = ?, location = ?, type = ?, salary = ?, description = ?,
		qualifications = ?, responsibilities = ?, benefits = ?, experience = ?, skills = ?,
		posted_date = ?, application_deadline = ?, contact_email = ?, application_link = ?,
		application_address = ?, company_website = ?, company_logo = ?, category = ?,
		career_level = ?, introduction = ?, how_to_apply = ?,
		updated_at = CURRENT_TIMESTAMP
	WHERE id = ?`

	args, err := jobArgs(job)
	if err != nil {
		return err
	}
	args = append(args, id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrJobNotFound
	}

	return nil
}

// Delete removes a job posting.
func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrJobNotFound
	}

	return nil
}

// jobArgs builds the ordered argument list shared by Create and Update.
func jobArgs(job *model.Job) ([]any, error) {
	qualifications, err := marshalList(job.Qualifications)
	if err != nil {
		return nil, err
	}
	responsibilities, err := marshalList(job.Responsibilities)
	if err != nil {
		return nil, err
	}
	benefits, err := marshalList(job.Benefits)
	if err != nil {
		return nil, err
	}
	experience, err := marshalList(job.Experience)
	if err != nil {
		return nil, err
	}
	skills, err := marshalList(job.Skills)
	if err != nil {
		return nil, err
	}

	return []any{
		job.Title, job.Company, job.Location, job.Type, job.Salary, job.Description,
		qualifications, responsibilities, benefits, experience, skills,
		job.PostedDate, job.ApplicationDeadline, job.ContactEmail, job.ApplicationLink,
		job.ApplicationAddress, job.CompanyWebsite, job.CompanyLogo, job.Category,
		job.CareerLevel, job.Introduction, job.HowToApply,
	}, nil
}

// scanJob reads one job row from either *sql.Row or *sql.Rows.
func scanJob(row interface{ Scan(...any) error }) (*model.Job, error) {
	var (
		job                                                        model.Job
		qualifications, responsibilities, benefits, experience, sk []byte
	)

	err := row.Scan(
		&job.ID, &job.Title, &job.Company, &job.Location, &job.Type, &job.Salary, &job.Description,
		&qualifications, &responsibilities, &benefits, &experience, &sk,
		&job.PostedDate, &job.ApplicationDeadline, &job.ContactEmail, &job.ApplicationLink,
		&job.ApplicationAddress, &job.CompanyWebsite, &job.CompanyLogo, &job.Category,
		&job.CareerLevel, &job.Introduction, &job.HowToApply, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	for _, col := range []struct {
		raw []byte
		dst *[]string
	}{
		{qualifications, &job.Qualifications},
		{responsibilities, &job.Responsibilities},
		{benefits, &job.Benefits},
		{experience, &job.Experience},
		{sk, &job.Skills},
	} {
		if err := unmarshalList(col.raw, col.dst); err != nil {
			return nil, err
		}
	}

	return &job, nil
}
