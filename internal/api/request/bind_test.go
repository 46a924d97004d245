package request

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
	"github.com/phrazzld/crm-mobile-api/internal/mocks"
)

func bindBody(t *testing.T, b *Binder, body string, dst any) error {
	t.Helper()
	r := httptest.NewRequest("POST", "/", strings.NewReader(body))
	return b.Bind(r, dst)
}

func validationErrors(t *testing.T, err error) map[string][]string {
	t.Helper()
	require.Error(t, err)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.ErrorIs(t, err, domain.ErrValidation)
	return verr.Errors
}

func TestBind_MalformedJSON(t *testing.T) {
	b := NewBinder(nil)

	errs := validationErrors(t, bindBody(t, b, `{"name":`, &CreateLeadRequest{}))
	assert.Equal(t, []string{"The request body must be valid JSON."}, errs["body"])
}

func TestBind_WrongType(t *testing.T) {
	b := NewBinder(nil)

	errs := validationErrors(t, bindBody(t, b, `{"name":"Acme","assigned_to":"seven"}`, &CreateLeadRequest{}))
	assert.Equal(t, []string{"The assigned to must be of type number."}, errs["assigned_to"])
}

func TestBind_EmptyBodyRunsRules(t *testing.T) {
	b := NewBinder(nil)

	errs := validationErrors(t, bindBody(t, b, ``, &CreateLeadRequest{}))
	assert.Equal(t, []string{"The name field is required."}, errs["name"])
}

func TestBind_UnknownFieldsIgnored(t *testing.T) {
	b := NewBinder(nil)
	var req CreateLeadRequest

	require.NoError(t, bindBody(t, b, `{"name":"Acme","favourite_colour":"red"}`, &req))
	assert.Equal(t, "Acme", req.Name)
}

func TestBind_References(t *testing.T) {
	refs := mocks.NewReferenceChecker().Add("staff", 7)
	b := NewBinder(refs)

	var ok CreateLeadRequest
	require.NoError(t, bindBody(t, b, `{"name":"Acme","assigned_to":7}`, &ok))

	errs := validationErrors(t, bindBody(t, b, `{"name":"Acme","assigned_to":8}`, &CreateLeadRequest{}))
	assert.Equal(t, []string{"The selected assigned to is invalid."}, errs["assigned_to"])
}

func TestBind_ReferenceErrorIsInternal(t *testing.T) {
	refs := mocks.NewReferenceChecker()
	refs.Err = assert.AnError
	b := NewBinder(refs)

	err := bindBody(t, b, `{"name":"Acme","assigned_to":3}`, &CreateLeadRequest{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrValidation)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBind_MessageIsFirstError(t *testing.T) {
	b := NewBinder(nil)

	err := bindBody(t, b, `{"email":"nope"}`, &CreateLeadRequest{})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "The email must be a valid email address.", verr.Message)
	assert.Len(t, verr.Errors, 2)
}

func TestValidate_SanitisesAfterRules(t *testing.T) {
	b := NewBinder(nil)
	req := &CreateNoteRequest{
		ModelType:   "lead",
		ModelID:     1,
		Description: `<p onclick="x()">Hi <script>alert(1)</script><b>there</b></p>`,
	}

	require.NoError(t, b.Validate(context.Background(), req))
	assert.Equal(t, "<p>Hi <b>there</b></p>", req.Description)
}

func TestValidate_ScriptOnlyBodyIsRequired(t *testing.T) {
	b := NewBinder(nil)
	req := &CreateNoteRequest{ModelType: "lead", ModelID: 1, Description: "<script>alert(1)</script>"}

	errs := validationErrors(t, b.Validate(context.Background(), req))
	assert.Equal(t, []string{"The description field is required."}, errs["description"])
}

func TestValidate_MarkupOnlyRequiredFieldFails(t *testing.T) {
	b := NewBinder(nil)

	errs := validationErrors(t, b.Validate(context.Background(), &CreateLeadRequest{Name: "<b></b>"}))
	assert.Equal(t, []string{"The name field is required."}, errs["name"])

	errs = validationErrors(t, b.Validate(context.Background(), &UpdateClientRequest{Company: ptr("<i> </i>")}))
	assert.Equal(t, []string{"The company field is required."}, errs["company"])
}
