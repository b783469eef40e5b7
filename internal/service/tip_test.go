package service

import (
	"context"
	"reflect"
	"testing"

	"github.com/jobsethiopia/jobsethiopia-go/internal/model"
	"github.com/jobsethiopia/jobsethiopia-go/internal/repository"
)

func newTestTipService() *TipService {
	return NewTipService(repository.NewTipRepository(nil))
}

func validTipRequest() model.TipRequest {
	return model.TipRequest{
		Title:             "Nailing the Interview",
		Content:           "Prepare stories in advance.",
		Category:          "interviewing",
		Author:            "Editorial Team",
		Tags:              model.FieldList{"interview"},
		DifficultyLevel:   "beginner",
		EstimatedReadTime: 5,
		Status:            model.TipStatusPublished,
	}
}

func TestCreateTip_NoSessionRedirects(t *testing.T) {
	svc := newTestTipService()

	res := svc.Create(context.Background(), nil, validTipRequest())

	if res.Kind != KindRedirect || res.Target != "/login" {
		t.Errorf("got %+v, want redirect to /login", res)
	}
}

func TestCreateTip_Validation(t *testing.T) {
	svc := newTestTipService()
	sess := adminSession()

	tests := []struct {
		name    string
		mutate  func(*model.TipRequest)
		wantErr error
	}{
		{"missing title", func(r *model.TipRequest) { r.Title = "" }, ErrTitleRequired},
		{"missing content", func(r *model.TipRequest) { r.Content = " " }, ErrContentRequired},
		{"missing author", func(r *model.TipRequest) { r.Author = "" }, ErrAuthorRequired},
		{"bad difficulty", func(r *model.TipRequest) { r.DifficultyLevel = "expert" }, ErrInvalidDifficulty},
		{"bad status", func(r *model.TipRequest) { r.Status = "archived" }, ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validTipRequest()
			tt.mutate(&req)

			res := svc.Create(context.Background(), sess, req)
			if res.Kind != KindErr {
				t.Fatalf("Kind = %v, want KindErr", res.Kind)
			}
			if res.Err != tt.wantErr {
				t.Errorf("Err = %v, want %v", res.Err, tt.wantErr)
			}
		})
	}
}

func TestValidateTipNormalizesTags(t *testing.T) {
	req := validTipRequest()
	req.Tags = model.FieldList{"cv", "", "  ", "resume"}

	if err := validateTip(&req); err != nil {
		t.Fatalf("validateTip() unexpected error: %v", err)
	}

	if !reflect.DeepEqual(req.Tags, model.FieldList{"cv", "resume"}) {
		t.Errorf("Tags = %v, want blanks dropped", req.Tags)
	}
}
