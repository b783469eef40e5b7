package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/jobsethiopia/jobsethiopia-go/internal/model"
	"github.com/jobsethiopia/jobsethiopia-go/internal/repository"
	"github.com/jobsethiopia/jobsethiopia-go/internal/session"
)

// TipService handles career-tip business logic.
type TipService struct {
	repo *repository.TipRepository
}

// NewTipService creates a new TipService.
func NewTipService(repo *repository.TipRepository) *TipService {
	return &TipService{repo: repo}
}

// List returns all tips, newest first.
func (s *TipService) List(ctx context.Context) ([]model.Tip, error) {
	tips, err := s.repo.List(ctx)
	if err != nil {
		slog.Error("listing tips failed", "error", err)
		return nil, ErrStorage
	}
	if tips == nil {
		tips = []model.Tip{}
	}
	return tips, nil
}

// Get returns one tip and records the view. The counter bump is a single
// atomic UPDATE in the repository, so concurrent readers cannot lose
// increments; a failed bump does not fail the read.
func (s *TipService) Get(ctx context.Context, id int64) (*model.Tip, error) {
	tip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrTipNotFound) {
			return nil, ErrTipNotFound
		}
		slog.Error("fetching tip failed", "id", id, "error", err)
		return nil, ErrStorage
	}

	if err := s.repo.IncrementViews(ctx, id); err != nil {
		slog.Warn("view count increment failed", "id", id, "error", err)
	} else {
		tip.ViewsCount++
	}

	return tip, nil
}

// Create validates and stores a new tip, returning its ID.
func (s *TipService) Create(ctx context.Context, sess *session.Payload, req model.TipRequest) ActionResult[int64] {
	if sess == nil {
		return RedirectTo[int64]("/login")
	}
	if err := validateTip(&req); err != nil {
		return Fail[int64](err)
	}

	id, err := s.repo.Create(ctx, tipFromRequest(req))
	if err != nil {
		slog.Error("creating tip failed", "error", err)
		return Fail[int64](ErrStorage)
	}

	return Ok(id)
}

// Update validates and stores changes to an existing tip.
func (s *TipService) Update(ctx context.Context, sess *session.Payload, id int64, req model.TipRequest) ActionResult[int64] {
	if sess == nil {
		return RedirectTo[int64]("/login")
	}
	if err := validateTip(&req); err != nil {
		return Fail[int64](err)
	}

	if err := s.repo.Update(ctx, id, tipFromRequest(req)); err != nil {
		if errors.Is(err, repository.ErrTipNotFound) {
			return Fail[int64](ErrTipNotFound)
		}
		slog.Error("updating tip failed", "id", id, "error", err)
		return Fail[int64](ErrStorage)
	}

	return Ok(id)
}

// Delete removes a tip.
func (s *TipService) Delete(ctx context.Context, sess *session.Payload, id int64) ActionResult[int64] {
	if sess == nil {
		return RedirectTo[int64]("/login")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrTipNotFound) {
			return Fail[int64](ErrTipNotFound)
		}
		slog.Error("deleting tip failed", "id", id, "error", err)
		return Fail[int64](ErrStorage)
	}

	return Ok(id)
}

// validateTip checks required fields and allowed sets, and normalizes the
// tag list in place.
func validateTip(req *model.TipRequest) error {
	if strings.TrimSpace(req.Title) == "" {
		return ErrTitleRequired
	}
	if strings.TrimSpace(req.Content) == "" {
		return ErrContentRequired
	}
	if strings.TrimSpace(req.Author) == "" {
		return ErrAuthorRequired
	}
	if !slices.Contains(model.DifficultyLevels, req.DifficultyLevel) {
		return ErrInvalidDifficulty
	}
	if req.Status != model.TipStatusDraft && req.Status != model.TipStatusPublished {
		return ErrInvalidStatus
	}

	req.Tags = req.Tags.Normalize()
	return nil
}

func tipFromRequest(req model.TipRequest) *model.Tip {
	return &model.Tip{
		Title:             req.Title,
		Content:           req.Content,
		Category:          req.Category,
		Author:            req.Author,
		Tags:              []string(req.Tags),
		DifficultyLevel:   req.DifficultyLevel,
		EstimatedReadTime: req.EstimatedReadTime,
		IsFeatured:        req.IsFeatured,
		Status:            req.Status,
	}
}
