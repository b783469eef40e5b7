package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jobsethiopia/jobsethiopia-go/internal/model"
)

var ErrTipNotFound = errors.New("tip not found")

const tipColumns = `id, title, content, category, author, tags,
	difficulty_level, estimated_read_time, is_featured, status,
	views_count, likes_count, created_at, updated_at`

// TipRepository handles career-tip persistence.
type TipRepository struct {
	db *sql.DB
}

// NewTipRepository creates a new TipRepository.
func NewTipRepository(db *sql.DB) *TipRepository {
	return &TipRepository{db: db}
}

// List retrieves all tips, newest created first.
func (r *TipRepository) List(ctx context.Context) ([]model.Tip, error) {
	query := `SELECT ` + tipColumns + ` FROM tips ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tips []model.Tip
	for rows.Next() {
		tip, err := scanTip(rows)
		if err != nil {
			return nil, err
		}
		tips = append(tips, *tip)
	}

	return tips, rows.Err()
}

// GetByID retrieves a single tip.
func (r *TipRepository) GetByID(ctx context.Context, id int64) (*model.Tip, error) {
	query := `SELECT ` + tipColumns + ` FROM tips WHERE id = ?`

	tip, err := scanTip(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTipNotFound
		}
		return nil, err
	}

	return tip, nil
}

// IncrementViews bumps a tip's view counter. The increment is a single
// UPDATE statement so concurrent readers never lose updates.
func (r *TipRepository) IncrementViews(ctx context.Context, id int64) error {
	query := `UPDATE tips SET views_count = views_count + 1 WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTipNotFound
	}

	return nil
}

// Create inserts a new tip and returns its generated ID.
func (r *TipRepository) Create(ctx context.Context, tip *model.Tip) (int64, error) {
	query := `INSERT INTO tips (
		title, content, category, author, tags,
		difficulty_level, estimated_read_time, is_featured, status
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

	tags, err := marshalList(tip.Tags)
	if err != nil {
		return 0, err
	}

	result, err := r.db.ExecContext(ctx, query,
		tip.Title, tip.Content, tip.Category, tip.Author, tags,
		tip.DifficultyLevel, tip.EstimatedReadTime, tip.IsFeatured, tip.Status,
	)
	if err != nil {
		return 0, err
	}

	return result.LastInsertId()
}

// Update replaces all mutable fields of a tip. Concurrent edits resolve
// last-writer-wins.
func (r *TipRepository) Update(ctx context.Context, id int64, tip *model.Tip) error {
	query := `UPDATE tips SET
		title = ?, content = ?, category = ?, author = ?, tags = ?,
		difficulty_level = ?, estimated_read_time = ?, is_featured = ?, status = ?,
		updated_at = CURRENT_TIMESTAMP
	WHERE id = ?`

	tags, err := marshalList(tip.Tags)
	if err != nil {
		return err
	}

	result, err := r.db.ExecContext(ctx, query,
		tip.Title, tip.Content, tip.Category, tip.Author, tags,
		tip.DifficultyLevel, tip.EstimatedReadTime, tip.IsFeatured, tip.Status,
		id,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTipNotFound
	}

	return nil
}

// Delete removes a tip.
func (r *TipRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM tips WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrTipNotFound
	}

	return nil
}

// scanTip reads one tip row from either *sql.Row or *sql.Rows.
func scanTip(row interface{ Scan(...any) error }) (*model.Tip, error) {
	var (
		tip  model.Tip
		tags []byte
	)

	err := row.Scan(
		&tip.ID, &tip.Title, &tip.Content, &tip.Category, &tip.Author, &tags,
		&tip.DifficultyLevel, &tip.EstimatedReadTime, &tip.IsFeatured, &tip.Status,
		&tip.ViewsCount, &tip.LikesCount, &tip.CreatedAt, &tip.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := unmarshalList(tags, &tip.Tags); err != nil {
		return nil, err
	}

	return &tip, nil
}
