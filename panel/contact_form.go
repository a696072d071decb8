package panel

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"mcp-playground/client"
	"mcp-playground/models"
)

// NetworkErrorMessage is shown when the server could not be reached at all.
const NetworkErrorMessage = "Unable to send your message. Please check your connection and try again."

var ErrSubmitInProgress = errors.New("submission already in progress")

type FormState int

const (
	FormEditing FormState = iota
	FormSubmitting
	FormSuccess
	FormFailed
)

func (s FormState) String() string {
	switch s {
	case FormEditing:
		return "editing"
	case FormSubmitting:
		return "submitting"
	case FormSuccess:
		return "success"
	case FormFailed:
		return "failed"
	}
	return fmt.Sprintf("FormState(%d)", int(s))
}

type ContactSubmitter interface {
	Submit(ctx context.Context, req models.CreateContactMessageRequest) (*client.Envelope[models.ContactReceipt], error)
}

// ContactForm is the contact page's draft and submission state.
type ContactForm struct {
	api ContactSubmitter

	mu           sync.Mutex
	state        FormState
	draft        models.CreateContactMessageRequest
	errMsg       string
	confirmation string
}

func NewContactForm(api ContactSubmitter) *ContactForm {
	return &ContactForm{api: api}
}

// SetField edits the draft. Editing after a finished submission returns the
// form to FormEditing.
func (f *ContactForm) SetField(field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch field {
	case "name":
		f.draft.Name = value
	case "email":
		f.draft.Email = value
	case "subject":
		f.draft.Subject = value
	case "message":
		f.draft.Message = value
	default:
		return fmt.Errorf("unknown contact form field %q", field)
	}

	if f.state != FormSubmitting {
		f.state = FormEditing
		f.errMsg = ""
	}
	return nil
}

// Submit sends the draft. A second call while the first is in flight returns
// ErrSubmitInProgress and changes nothing. The outcome is read back through
// State, Error and Confirmation.
func (f *ContactForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.state == FormSubmitting {
		f.mu.Unlock()
		return ErrSubmitInProgress
	}
	f.state = FormSubmitting
	f.errMsg = ""
	draft := f.draft
	f.mu.Unlock()

	env, err := f.api.Submit(ctx, draft)

	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case err != nil:
		f.state = FormFailed
		f.errMsg = NetworkErrorMessage
	case !env.Success:
		f.state = FormFailed
		f.errMsg = env.Error
		if f.errMsg == "" {
			f.errMsg = "Failed to send message. Please try again."
		}
	default:
		f.state = FormSuccess
		f.confirmation = env.Data.Message
		f.draft = models.CreateContactMessageRequest{}
	}
	return nil
}

func (f *ContactForm) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *ContactForm) Draft() models.CreateContactMessageRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

func (f *ContactForm) Error() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

func (f *ContactForm) Confirmation() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.confirmation
}
