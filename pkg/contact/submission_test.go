package contact

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, fields map[string]string, fileName string) *http.Request {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}

	if fileName != "" {
		fw, err := w.CreateFormFile("file", fileName)
		require.NoError(t, err)
		_, err = fw.Write([]byte("floor plan"))
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/contact", buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestFromRequestMultipart(t *testing.T) {
	req := multipartRequest(t, map[string]string{
		"name":    " Asha ",
		"email":   "asha@example.com",
		"phone":   "98200 00000",
		"city":    "Pune",
		"message": "Need a quote for six doors.",
	}, "plan.pdf")

	s, err := FromRequest(req, 1<<20)
	require.NoError(t, err)

	assert.Equal(t, "Asha", s.Name)
	assert.Equal(t, "asha@example.com", s.Email)
	assert.Equal(t, "98200 00000", s.Phone)
	assert.Equal(t, "Pune", s.City)
	assert.Equal(t, "Need a quote for six doors.", s.Message)
	assert.Equal(t, "plan.pdf", s.File)
	assert.False(t, s.ReceivedAt.IsZero())

	_, err = uuid.Parse(s.ID)
	assert.NoError(t, err)
}

func TestFromRequestURLEncoded(t *testing.T) {
	form := url.Values{}
	form.Set("name", "Ravi")
	form.Set("email", "ravi@example.com")
	form.Set("message", "Hello")

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	s, err := FromRequest(req, 1<<20)
	require.NoError(t, err)
	assert.Equal(t, "Ravi", s.Name)
	assert.Equal(t, "", s.File)
	assert.NoError(t, s.Validate())
}

func TestValidateAcceptsBrowserEmails(t *testing.T) {
	for _, email := range []string{"asha@example.com", "a.b+doors@mail.example.in", "ravi@localhost"} {
		s := Submission{Name: "Asha", Email: email, Message: "Hi"}
		assert.NoError(t, s.Validate(), email)
	}
}

func TestWhitespaceOnlyFieldsAreMissing(t *testing.T) {
	form := url.Values{}
	form.Set("name", "   ")
	form.Set("email", "asha@example.com")
	form.Set("message", "\n\t")

	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	s, err := FromRequest(req, 1<<20)
	require.NoError(t, err)

	err = s.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing name, message")
}

func TestFromRequestBadMultipart(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("garbage"))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")

	_, err := FromRequest(req, 1<<20)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Submission{Name: "Asha", Email: "asha@example.com", Message: "Hi"}
	assert.NoError(t, valid.Validate())

	testCases := []struct {
		name    string
		mutate  func(*Submission)
		message string
	}{
		{
			name:    "missing name",
			mutate:  func(s *Submission) { s.Name = "" },
			message: "missing name",
		},
		{
			name:    "missing email and message",
			mutate:  func(s *Submission) { s.Email = ""; s.Message = "" },
			message: "missing email, message",
		},
		{
			name:    "bad email",
			mutate:  func(s *Submission) { s.Email = "not-an-email" },
			message: "bad email",
		},
		{
			name:    "display name address",
			mutate:  func(s *Submission) { s.Email = "Asha <asha@example.com>" },
			message: "bad email",
		},
		{
			name:    "no domain label",
			mutate:  func(s *Submission) { s.Email = "asha@" },
			message: "bad email",
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			s := valid
			testCase.mutate(&s)

			err := s.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidSubmission))
			assert.Contains(t, err.Error(), testCase.message)
		})
	}
}
