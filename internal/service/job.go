package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/jobsethiopia/jobsethiopia-go/internal/model"
	"github.com/jobsethiopia/jobsethiopia-go/internal/repository"
	"github.com/jobsethiopia/jobsethiopia-go/internal/session"
)

const dateLayout = "2006-01-02"

// JobService handles job posting business logic. Mutating operations take
// the per-request session payload resolved by the auth gate; a nil payload
// yields a redirect to the login page and nothing reaches the store.
type JobService struct {
	repo *repository.JobRepository
}

// NewJobService creates a new JobService.
func NewJobService(repo *repository.JobRepository) *JobService {
	return &JobService{repo: repo}
}

// List returns all job postings, newest first. Reads are unrestricted.
func (s *JobService) List(ctx context.Context) ([]model.Job, error) {
	jobs, err := s.repo.List(ctx)
	if err != nil {
		slog.Error("listing jobs failed", "error", err)
		return nil, ErrStorage
	}
	if jobs == nil {
		jobs = []model.Job{}
	}
	return jobs, nil
}

// Get returns one job posting.
func (s *JobService) Get(ctx context.Context, id int64) (*model.Job, error) {
	job, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return nil, ErrJobNotFound
		}
		slog.Error("fetching job failed", "id", id, "error", err)
		return nil, ErrStorage
	}
	return job, nil
}

// Create validates and stores a new job posting, returning its ID.
func (s *JobService) Create(ctx context.Context, sess *session.Payload, req model.JobRequest) ActionResult[int64] {
	if sess == nil {
		return RedirectTo[int64]("/login")
	}
	if err := validateJob(&req); err != nil {
		return Fail[int64](err)
	}

	job := jobFromRequest(req)
	job.PostedDate = time.Now().UTC().Format(dateLayout)

	id, err := s.repo.Create(ctx, job)
	if err != nil {
		slog.Error("creating job failed", "error", err)
		return Fail[int64](ErrStorage)
	}

	return Ok(id)
}

// Update validates and stores changes to an existing job posting.
func (s *JobService) Update(ctx context.Context, sess *session.Payload, id int64, req model.JobRequest) ActionResult[int64] {
	if sess == nil {
		return RedirectTo[int64]("/login")
	}
	if err := validateJob(&req); err != nil {
		return Fail[int64](err)
	}

	job := jobFromRequest(req)

	if err := s.repo.Update(ctx, id, job); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return Fail[int64](ErrJobNotFound)
		}
		slog.Error("updating job failed", "id", id, "error", err)
		return Fail[int64](ErrStorage)
	}

	return Ok(id)
}

// Delete removes a job posting.
func (s *JobService) Delete(ctx context.Context, sess *session.Payload, id int64) ActionResult[int64] {
	if sess == nil {
		return RedirectTo[int64]("/login")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return Fail[int64](ErrJobNotFound)
		}
		slog.Error("deleting job failed", "id", id, "error", err)
		return Fail[int64](ErrStorage)
	}

	return Ok(id)
}

// validateJob checks required fields and allowed sets, and normalizes
// array fields in place by dropping blank entries.
func validateJob(req *model.JobRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(req.Company) == "" {
		return ErrCompanyRequired
	}
	if strings.TrimSpace(req.Description) == "" {
		return ErrDescriptionRequired
	}
	if req.ApplicationDeadline == "" {
		return ErrDeadlineRequired
	}
	if _, err := time.Parse(dateLayout, req.ApplicationDeadline); err != nil {
		return ErrInvalidDeadline
	}
	if !slices.Contains(model.JobTypes, req.Type) {
		return ErrInvalidJobType
	}
	if !model.ValidJobCategory(req.Category) {
		return ErrInvalidCategory
	}
	if req.CareerLevel != "" && !slices.Contains(model.CareerLevels, req.CareerLevel) {
		return ErrInvalidCareerLevel
	}

	req.Qualifications = req.Qualifications.Normalize()
	req.Responsibilities = req.Responsibilities.Normalize()
	req.Benefits = req.Benefits.Normalize()
	req.Experience = req.Experience.Normalize()
	req.Skills = req.Skills.Normalize()

	return nil
}

func jobFromRequest(req model.JobRequest) *model.Job {
	return &model.Job{
		Title:               req.Title,
		Company:             req.Company,
		Location:            req.Location,
		Type:                req.Type,
		Salary:              req.Salary,
		Description:         req.Description,
		Qualifications:      []string(req.Qualifications),
		Responsibilities:    []string(req.Responsibilities),
		Benefits:            []string(req.Benefits),
		Experience:          []string(req.Experience),
		Skills:              []string(req.Skills),
		ApplicationDeadline: req.ApplicationDeadline,
		ContactEmail:        req.ContactEmail,
		ApplicationLink:     req.ApplicationLink,
		ApplicationAddress:  req.ApplicationAddress,
		CompanyWebsite:      req.CompanyWebsite,
		CompanyLogo:         req.CompanyLogo,
		Category:            req.Category,
		CareerLevel:         req.CareerLevel,
		Introduction:        req.Introduction,
		HowToApply:          req.HowToApply,
	}
}
