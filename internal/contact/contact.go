// Package contact holds the state of the contact form shared by every page.
package contact

import (
	"context"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/pnaconstructions/pnasite/internal/mailrelay"
)

// Banner messages shown after a submission.
const (
	SuccessMessage = "Thank you! Your message has been sent successfully."
	ErrorMessage   = "Sorry, there was an error sending your message. Please try again."
)

// ErrSubmitInProgress is returned when a second submission is attempted
// while one is outstanding.
var ErrSubmitInProgress = errors.New("contact: submission already in progress")

// Sender delivers a contact message.
type Sender interface {
	Send(ctx context.Context, msg mailrelay.Message) error
}

// StatusKind is the outcome shown in the form banner.
type StatusKind string

const (
	StatusNone    StatusKind = ""
	StatusSuccess StatusKind = "success"
	StatusError   StatusKind = "error"
)

// Status is the banner above the form.
type Status struct {
	Kind    StatusKind `json:"type"`
	Message string     `json:"message"`
}

// Fields are the four inputs of the form.
type Fields struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Payload converts the fields into the relay message.
func (f Fields) Payload() mailrelay.Message {
	return mailrelay.Message{
		FromName:  f.Name,
		FromEmail: f.Email,
		Phone:     f.Phone,
		Message:   f.Message,
	}
}

// Form is the owned state of one contact form instance. It is safe for
// concurrent use.
type Form struct {
	mu         sync.Mutex
	fields     Fields
	submitting bool
	status     Status
	verbose    bool
}

// NewForm returns an empty form.
func NewForm() *Form { return &Form{} }

// NewFormWith returns a form pre-filled with fields.
func NewFormWith(fields Fields) *Form { return &Form{fields: fields} }

// SetVerbose enables per-submission logging.
func (f *Form) SetVerbose(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verbose = v
}

// Set updates one field by its input name. Unknown names are ignored.
func (f *Form) Set(name, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch strings.ToLower(name) {
	case "name":
		f.fields.Name = value
	case "email":
		f.fields.Email = value
	case "phone":
		f.fields.Phone = value
	case "message":
		f.fields.Message = value
	}
}

// Fields returns the current input values.
func (f *Form) Fields() Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// Submitting reports whether a submission is outstanding.
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Status returns the current banner.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Submit sends the current fields through sender. On success the fields
// are cleared and a success banner is set; on any failure the fields are
// kept and an error banner is set. The returned error is the sender's
// error, or ErrSubmitInProgress if another submission is outstanding.
func (f *Form) Submit(ctx context.Context, sender Sender) error {
	return f.submit(ctx, sender, nil)
}

// SubmitFields replaces the inputs with fields and submits them. When a
// submission is already outstanding it returns ErrSubmitInProgress and the
// inputs are left untouched.
func (f *Form) SubmitFields(ctx context.Context, sender Sender, fields Fields) error {
	return f.submit(ctx, sender, &fields)
}

func (f *Form) submit(ctx context.Context, sender Sender, replace *Fields) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitInProgress
	}
	if replace != nil {
		f.fields = *replace
	}
	f.submitting = true
	f.status = Status{}
	fields := f.fields
	verbose := f.verbose
	f.mu.Unlock()

	id := uuid.New().String()
	if verbose {
		log.Printf("contact: submission %s from %q", id, fields.Email)
	}

	err := sender.Send(ctx, fields.Payload())

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	if err != nil {
		log.Printf("contact: submission %s failed: %v", id, err)
		f.status = Status{Kind: StatusError, Message: ErrorMessage}
		return err
	}
	f.fields = Fields{}
	f.status = Status{Kind: StatusSuccess, Message: SuccessMessage}
	return nil
}
