package service

import (
	"errors"
	"testing"

	"github.com/jobsethiopia/jobsethiopia-go/internal/mail"
	"github.com/jobsethiopia/jobsethiopia-go/internal/model"
)

func newTestContactService() *ContactService {
	return NewContactService(mail.New("", "", "", ""), "inbox@example.com")
}

func TestContactSend_Validation(t *testing.T) {
	svc := newTestContactService()

	tests := []struct {
		name    string
		req     model.ContactRequest
		wantErr error
	}{
		{"missing name", model.ContactRequest{Email: "a@b.c", Message: "hi"}, ErrNameRequired},
		{"missing email", model.ContactRequest{Name: "Abebe", Message: "hi"}, ErrEmailRequired},
		{"missing message", model.ContactRequest{Name: "Abebe", Email: "a@b.c"}, ErrMessageRequired},
		{"whitespace message", model.ContactRequest{Name: "Abebe", Email: "a@b.c", Message: "  "}, ErrMessageRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.Send(tt.req); err != tt.wantErr {
				t.Errorf("Send() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestContactSend_UnconfiguredRelay(t *testing.T) {
	svc := newTestContactService()

	err := svc.Send(model.ContactRequest{Name: "Abebe", Email: "a@b.c", Message: "hello"})

	if !errors.Is(err, ErrRelayFailed) {
		t.Errorf("Send() error = %v, want ErrRelayFailed", err)
	}
}

func TestResultConstructors(t *testing.T) {
	ok := Ok(int64(5))
	if ok.Kind != KindOk || ok.Value != 5 {
		t.Errorf("Ok(5) = %+v", ok)
	}

	redirect := RedirectTo[int64]("/login")
	if redirect.Kind != KindRedirect || redirect.Target != "/login" {
		t.Errorf("RedirectTo() = %+v", redirect)
	}

	fail := Fail[int64](ErrStorage)
	if fail.Kind != KindErr || !errors.Is(fail.Err, ErrStorage) {
		t.Errorf("Fail() = %+v", fail)
	}
}
