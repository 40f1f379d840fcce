package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cheesesashimi/stara/pkg/contact"
	"github.com/cheesesashimi/stara/pkg/dealer"
	"github.com/cheesesashimi/stara/pkg/html"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const apiSuccessMessage string = "Thank you for your message. We'll get back to you soon."

type contactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type dealerSearchResponse struct {
	Query   string         `json:"query"`
	Count   int            `json:"count"`
	Dealers dealer.Dealers `json:"dealers"`
}

func (s *Server) writePage(w http.ResponseWriter, status int, p html.Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(s.opts.Site.Render(p)))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.opts.Logger.Error("could not encode response", zap.Error(err))
	}
}

func (s *Server) handlePage(page func() html.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.writePage(w, http.StatusOK, page())
	}
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, http.StatusOK, html.Home(s.opts.Products))
}

func (s *Server) handleCollections(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, http.StatusOK, html.Collections(s.opts.Products))
}

// Unknown slugs still get a generic collection page.
func (s *Server) handleCollection(w http.ResponseWriter, r *http.Request) {
	p, found := s.opts.Products.Find(chi.URLParam(r, "slug"))
	s.writePage(w, http.StatusOK, html.CollectionDetail(p, found))
}

func (s *Server) handleDealerLocator(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	results := dealer.Search(query, s.opts.Dealers)

	s.writePage(w, http.StatusOK, html.DealerLocator(query, results, s.cities))
}

func (s *Server) handleDealerSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	results := dealer.Search(query, s.opts.Dealers)

	s.writeJSON(w, http.StatusOK, dealerSearchResponse{
		Query:   query,
		Count:   len(results),
		Dealers: results,
	})
}

func (s *Server) handleContactPage(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, http.StatusOK, html.Contact(html.FormState{}))
}

func (s *Server) handleCustomPage(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, http.StatusOK, html.Custom(html.FormState{}))
}

// handleContactForm is the no-script path: the form posts back to the page it
// lives on and the page is rendered again with a status.
func (s *Server) handleContactForm(w http.ResponseWriter, r *http.Request) {
	submission, err := s.submit(w, r)

	form := html.FormState{
		Submitted: true,
		Success:   err == nil,
		Message:   html.SuccessMessage,
		Values:    submission,
	}

	status := http.StatusOK
	if err != nil {
		form.Message = html.ErrorMessage
		status = statusFor(err)
	}

	page := html.Contact(form)
	if r.URL.Path == "/custom" {
		page = html.Custom(form)
	}

	s.writePage(w, status, page)
}

func (s *Server) handleContactAPI(w http.ResponseWriter, r *http.Request) {
	if _, err := s.submit(w, r); err != nil {
		s.writeJSON(w, statusFor(err), contactResponse{
			Success: false,
			Message: html.ErrorMessage,
		})
		return
	}

	s.writeJSON(w, http.StatusOK, contactResponse{
		Success: true,
		Message: apiSuccessMessage,
	})
}

func (s *Server) submit(w http.ResponseWriter, r *http.Request) (contact.Submission, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.opts.MaxUploadBytes)

	submission, err := contact.FromRequest(r, s.opts.MaxUploadBytes)
	if err != nil {
		s.opts.Logger.Error("Contact form error", zap.Error(err))
		return submission, err
	}

	if err := submission.Validate(); err != nil {
		s.opts.Logger.Warn("Rejected contact submission", zap.String("id", submission.ID), zap.Error(err))
		return submission, err
	}

	if err := s.opts.Sink.Deliver(r.Context(), submission); err != nil {
		s.opts.Logger.Error("Contact form error", zap.String("id", submission.ID), zap.Error(err))
		return submission, err
	}

	return submission, nil
}

func statusFor(err error) int {
	if errors.Is(err, contact.ErrInvalidSubmission) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, http.StatusNotFound, html.NotFound(r.URL.Path))
}
