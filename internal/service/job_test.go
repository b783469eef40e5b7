package service

import (
	"context"
	"reflect"
	"testing"

	"github.com/jobsethiopia/jobsethiopia-go/internal/model"
	"github.com/jobsethiopia/jobsethiopia-go/internal/repository"
	"github.com/jobsethiopia/jobsethiopia-go/internal/session"
)

func newTestJobService() *JobService {
	return NewJobService(repository.NewJobRepository(nil))
}

func adminSession() *session.Payload {
	return &session.Payload{UserID: 1, Email: "admin@example.com", Role: "admin"}
}

func validJobRequest() model.JobRequest {
	return model.JobRequest{
		Title:               "Backend Engineer",
		Company:             "Acme Corp",
		Location:            "Addis Ababa",
		Type:                "full_time",
		Description:         "Build services.",
		ApplicationDeadline: "2026-12-31",
		Category:            "ict_telecom_it",
		CareerLevel:         "mid_level",
	}
}

func TestCreateJob_NoSessionRedirects(t *testing.T) {
	svc := newTestJobService()

	// The nil repository proves the store stays untouched: an attempted
	// insert would panic.
	res := svc.Create(context.Background(), nil, validJobRequest())

	if res.Kind != KindRedirect {
		t.Fatalf("Kind = %v, want KindRedirect", res.Kind)
	}
	if res.Target != "/login" {
		t.Errorf("Target = %q, want /login", res.Target)
	}
}

func TestUpdateJob_NoSessionRedirects(t *testing.T) {
	svc := newTestJobService()

	res := svc.Update(context.Background(), nil, 1, validJobRequest())

	if res.Kind != KindRedirect || res.Target != "/login" {
		t.Errorf("got %+v, want redirect to /login", res)
	}
}

func TestDeleteJob_NoSessionRedirects(t *testing.T) {
	svc := newTestJobService()

	res := svc.Delete(context.Background(), nil, 1)

	if res.Kind != KindRedirect || res.Target != "/login" {
		t.Errorf("got %+v, want redirect to /login", res)
	}
}

func TestCreateJob_Validation(t *testing.T) {
	svc := newTestJobService()
	sess := adminSession()

	tests := []struct {
		name    string
		mutate  func(*model.JobRequest)
		wantErr error
	}{
		{"missing title", func(r *model.JobRequest) { r.Title = "  " }, ErrTitleRequired},
		{"missing company", func(r *model.JobRequest) { r.Company = "" }, ErrCompanyRequired},
		{"missing description", func(r *model.JobRequest) { r.Description = "" }, ErrDescriptionRequired},
		{"missing deadline", func(r *model.JobRequest) { r.ApplicationDeadline = "" }, ErrDeadlineRequired},
		{"bad deadline", func(r *model.JobRequest) { r.ApplicationDeadline = "31/12/2026" }, ErrInvalidDeadline},
		{"bad type", func(r *model.JobRequest) { r.Type = "gig" }, ErrInvalidJobType},
		{"bad category", func(r *model.JobRequest) { r.Category = "unknown" }, ErrInvalidCategory},
		{"bad career level", func(r *model.JobRequest) { r.CareerLevel = "guru" }, ErrInvalidCareerLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validJobRequest()
			tt.mutate(&req)

			res := svc.Create(context.Background(), sess, req)
			if res.Kind != KindErr {
				t.Fatalf("Kind = %v, want KindErr", res.Kind)
			}
			if res.Err != tt.wantErr {
				t.Errorf("Err = %v, want %v", res.Err, tt.wantErr)
			}
			if !IsValidation(res.Err) {
				t.Errorf("IsValidation(%v) = false, want true", res.Err)
			}
		})
	}
}

func TestValidateJobNormalizesArrays(t *testing.T) {
	req := validJobRequest()
	req.Skills = model.FieldList{"Go", "", "   ", "SQL"}
	req.Benefits = model.FieldList{"", "\t"}

	if err := validateJob(&req); err != nil {
		t.Fatalf("validateJob() unexpected error: %v", err)
	}

	if !reflect.DeepEqual(req.Skills, model.FieldList{"Go", "SQL"}) {
		t.Errorf("Skills = %v, want blanks dropped with order preserved", req.Skills)
	}
	if len(req.Benefits) != 0 {
		t.Errorf("Benefits = %v, want empty", req.Benefits)
	}
}

func TestValidateJobOptionalCareerLevel(t *testing.T) {
	req := validJobRequest()
	req.CareerLevel = ""

	if err := validateJob(&req); err != nil {
		t.Errorf("validateJob() with empty career level error = %v, want nil", err)
	}
}
