package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/pnaconstructions/pnasite/internal/mailrelay"
)

type stubSender struct {
	err  error
	got  []mailrelay.Message
	hook func()
}

func (s *stubSender) Send(_ context.Context, msg mailrelay.Message) error {
	s.got = append(s.got, msg)
	if s.hook != nil {
		s.hook()
	}
	return s.err
}

func filledForm() *Form {
	f := NewForm()
	f.Set("name", "Saman Perera")
	f.Set("email", "saman@example.com")
	f.Set("phone", "0773454400")
	f.Set("message", "Two storey house in Kandy")
	return f
}

func TestSubmitSuccessClearsFields(t *testing.T) {
	f := filledForm()
	sender := &stubSender{}

	if err := f.Submit(context.Background(), sender); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if f.Fields() != (Fields{}) {
		t.Errorf("fields not cleared: %+v", f.Fields())
	}
	st := f.Status()
	if st.Kind != StatusSuccess || st.Message != SuccessMessage {
		t.Errorf("status = %+v", st)
	}
	if f.Submitting() {
		t.Error("Submitting = true after success")
	}

	want := mailrelay.Message{
		FromName:  "Saman Perera",
		FromEmail: "saman@example.com",
		Phone:     "0773454400",
		Message:   "Two storey house in Kandy",
	}
	if len(sender.got) != 1 || sender.got[0] != want {
		t.Errorf("sent %+v, want %+v", sender.got, want)
	}
}

func TestSubmitFailureKeepsFields(t *testing.T) {
	f := filledForm()
	before := f.Fields()
	relayErr := errors.New("network down")

	err := f.Submit(context.Background(), &stubSender{err: relayErr})
	if !errors.Is(err, relayErr) {
		t.Fatalf("err = %v, want %v", err, relayErr)
	}

	if f.Fields() != before {
		t.Errorf("fields changed: %+v, want %+v", f.Fields(), before)
	}
	st := f.Status()
	if st.Kind != StatusError || st.Message != ErrorMessage {
		t.Errorf("status = %+v", st)
	}
	if f.Submitting() {
		t.Error("Submitting = true after failure")
	}
}

func TestSubmitRejectsOverlap(t *testing.T) {
	f := filledForm()
	var inner error
	sender := &stubSender{}
	sender.hook = func() {
		if !f.Submitting() {
			t.Error("Submitting = false during send")
		}
		inner = f.Submit(context.Background(), &stubSender{})
	}

	if err := f.Submit(context.Background(), sender); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !errors.Is(inner, ErrSubmitInProgress) {
		t.Errorf("overlapping submit err = %v, want ErrSubmitInProgress", inner)
	}
	if len(sender.got) != 1 {
		t.Errorf("sent %d messages, want 1", len(sender.got))
	}
}

func TestSubmitClearsPreviousStatus(t *testing.T) {
	f := filledForm()
	_ = f.Submit(context.Background(), &stubSender{err: errors.New("x")})

	var during Status
	sender := &stubSender{hook: func() { during = f.Status() }}
	_ = f.Submit(context.Background(), sender)
	if during != (Status{}) {
		t.Errorf("status during send = %+v, want empty", during)
	}
}

func TestSetIgnoresUnknown(t *testing.T) {
	f := NewForm()
	f.Set("company", "PNA")
	f.Set("Email", "a@b.c")
	if f.Fields() != (Fields{Email: "a@b.c"}) {
		t.Errorf("fields = %+v", f.Fields())
	}
}

func TestSubmitFieldsOverlapKeepsSentFields(t *testing.T) {
	f := NewForm()
	sent := Fields{Name: "Saman", Email: "saman@example.com", Message: "Roof repair"}
	other := Fields{Name: "Nimal", Email: "nimal@example.com", Message: "Extension"}

	var inner error
	sender := &stubSender{err: errors.New("relay down")}
	sender.hook = func() {
		inner = f.SubmitFields(context.Background(), &stubSender{}, other)
	}

	if err := f.SubmitFields(context.Background(), sender, sent); err == nil {
		t.Fatal("expected the relay error")
	}
	if !errors.Is(inner, ErrSubmitInProgress) {
		t.Errorf("overlapping submit err = %v, want ErrSubmitInProgress", inner)
	}
	if got := f.Fields(); got != sent {
		t.Errorf("fields = %+v, want the submitted %+v", got, sent)
	}
	if len(sender.got) != 1 || sender.got[0] != sent.Payload() {
		t.Errorf("sent = %+v", sender.got)
	}
}

func TestPayload(t *testing.T) {
	f := Fields{Name: "A", Email: "a@x.com", Phone: "1", Message: "hi"}
	want := mailrelay.Message{FromName: "A", FromEmail: "a@x.com", Phone: "1", Message: "hi"}
	if got := f.Payload(); got != want {
		t.Errorf("Payload() = %+v, want %+v", got, want)
	}
}
