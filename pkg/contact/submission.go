package contact

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrInvalidSubmission = errors.New("invalid contact submission")

// emailPattern is the "valid e-mail address" rule browsers apply to
// <input type="email">. Display names such as "Asha <a@b.c>" do not match.
var emailPattern = regexp.MustCompile("^[a-zA-Z0-9.!#$%&'*+/=?^_`{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$")

// Submission is a single contact form entry.
type Submission struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	City       string    `json:"city"`
	Message    string    `json:"message"`
	File       string    `json:"file"`
	ReceivedAt time.Time `json:"receivedAt"`
}

// FromRequest reads a submission from a multipart or urlencoded form. Only
// the name of an uploaded file is kept.
func FromRequest(r *http.Request, maxBytes int64) (Submission, error) {
	out := Submission{}

	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxBytes); err != nil {
			return out, fmt.Errorf("could not parse multipart form: %w", err)
		}
	} else if err := r.ParseForm(); err != nil {
		return out, fmt.Errorf("could not parse form: %w", err)
	}

	out = Submission{
		ID:         uuid.NewString(),
		Name:       strings.TrimSpace(r.FormValue("name")),
		Email:      strings.TrimSpace(r.FormValue("email")),
		Phone:      strings.TrimSpace(r.FormValue("phone")),
		City:       strings.TrimSpace(r.FormValue("city")),
		Message:    strings.TrimSpace(r.FormValue("message")),
		ReceivedAt: time.Now().UTC(),
	}

	if r.MultipartForm != nil {
		if files := r.MultipartForm.File["file"]; len(files) != 0 && files[0] != nil {
			out.File = files[0].Filename
		}
	}

	return out, nil
}

// Validate mirrors the form's required fields. Fields are trimmed by
// FromRequest, so whitespace-only values count as missing.
func (s Submission) Validate() error {
	missing := []string{}

	if s.Name == "" {
		missing = append(missing, "name")
	}

	if s.Email == "" {
		missing = append(missing, "email")
	}

	if s.Message == "" {
		missing = append(missing, "message")
	}

	if len(missing) != 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidSubmission, strings.Join(missing, ", "))
	}

	if !emailPattern.MatchString(s.Email) {
		return fmt.Errorf("%w: bad email %q", ErrInvalidSubmission, s.Email)
	}

	return nil
}
