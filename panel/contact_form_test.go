package panel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcp-playground/client"
	"mcp-playground/models"
)

type fakeSubmitter struct {
	started chan struct{}
	release chan struct{}
	env     *client.Envelope[models.ContactReceipt]
	err     error
	got     []models.CreateContactMessageRequest
}

func (f *fakeSubmitter) Submit(ctx context.Context, req models.CreateContactMessageRequest) (*client.Envelope[models.ContactReceipt], error) {
	f.got = append(f.got, req)
	if f.started != nil {
		close(f.started)
	}
	if f.release != nil {
		<-f.release
	}
	return f.env, f.err
}

func fillForm(t *testing.T, f *ContactForm) {
	t.Helper()
	require.NoError(t, f.SetField("name", "Ada"))
	require.NoError(t, f.SetField("email", "ada@example.com"))
	require.NoError(t, f.SetField("subject", "Hello"))
	require.NoError(t, f.SetField("message", "I would like to know more."))
}

func TestContactFormSuccessClearsDraft(t *testing.T) {
	api := &fakeSubmitter{env: &client.Envelope[models.ContactReceipt]{
		Success: true,
		Data:    models.ContactReceipt{ID: "msg-1", Message: "Thanks!"},
	}}
	form := NewContactForm(api)
	fillForm(t, form)
	assert.Equal(t, FormEditing, form.State())

	require.NoError(t, form.Submit(context.Background()))

	assert.Equal(t, FormSuccess, form.State())
	assert.Equal(t, "Thanks!", form.Confirmation())
	assert.Equal(t, models.CreateContactMessageRequest{}, form.Draft())
	require.Len(t, api.got, 1)
	assert.Equal(t, "Ada", api.got[0].Name)
}

func TestContactFormFailureKeepsDraft(t *testing.T) {
	api := &fakeSubmitter{env: &client.Envelope[models.ContactReceipt]{
		Success: false,
		Error:   "Please provide a valid email address",
	}}
	form := NewContactForm(api)
	fillForm(t, form)

	require.NoError(t, form.Submit(context.Background()))

	assert.Equal(t, FormFailed, form.State())
	assert.Equal(t, "Please provide a valid email address", form.Error())
	assert.Equal(t, "Ada", form.Draft().Name)

	require.NoError(t, form.SetField("email", "ada@example.org"))
	assert.Equal(t, FormEditing, form.State())
	assert.Empty(t, form.Error())
}

func TestContactFormNetworkError(t *testing.T) {
	form := NewContactForm(&fakeSubmitter{err: errors.New("dial tcp: connection refused")})
	fillForm(t, form)

	require.NoError(t, form.Submit(context.Background()))

	assert.Equal(t, FormFailed, form.State())
	assert.Equal(t, NetworkErrorMessage, form.Error())
	assert.Equal(t, "Hello", form.Draft().Subject)
}

func TestContactFormSubmitIsNotReentrant(t *testing.T) {
	api := &fakeSubmitter{
		started: make(chan struct{}),
		release: make(chan struct{}),
		env:     &client.Envelope[models.ContactReceipt]{Success: true},
	}
	form := NewContactForm(api)
	fillForm(t, form)

	done := make(chan error, 1)
	go func() { done <- form.Submit(context.Background()) }()

	<-api.started
	assert.Equal(t, FormSubmitting, form.State())
	assert.ErrorIs(t, form.Submit(context.Background()), ErrSubmitInProgress)

	close(api.release)
	require.NoError(t, <-done)
	assert.Equal(t, FormSuccess, form.State())
	assert.Len(t, api.got, 1)
}

func TestContactFormUnknownField(t *testing.T) {
	form := NewContactForm(&fakeSubmitter{})
	assert.Error(t, form.SetField("phone", "123"))
}
