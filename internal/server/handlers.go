package server

import (
	"encoding/json"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/components"
	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/contact"
	siteerr "github.com/Dinakaran-Yogidasan/web-portfolio/internal/errors"
	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/seo"
	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/theme"
	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/version"
	"github.com/Dinakaran-Yogidasan/web-portfolio/internal/vitals"
)

// handleIndex renders the full portfolio page.
func (s *PortfolioServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	// The site is a single route; fragments address sections client-side.
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	data := s.Content()
	active := theme.FromRequest(w, r).Resolve()

	meta := seo.PageMeta(s.config.Site.BaseURL, data.Name, data.Name+" - "+data.Title, data.Bio, data.Skills.All())
	structured, err := seo.StructuredData(data, s.config.Site.BaseURL)
	if err != nil {
		s.renderFailure(w, r, siteerr.Render("structured data", err))
		return
	}

	page := components.Page(data, components.PageOptions{
		Theme:          active,
		Meta:           meta,
		StructuredData: structured,
		HotReload:      s.config.Development.HotReload,
		ContactStatus:  r.URL.Query().Get("contact"),
		ContactError:   siteerr.GenericUserMessage,
	})

	html, err := components.Render(r.Context(), page)
	if err != nil {
		s.renderFailure(w, r, siteerr.Render("page", err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(html))
}

// renderFailure serves the recovery page. The raw error is shown only in
// development; production suppresses it.
func (s *PortfolioServer) renderFailure(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error(r.Context(), err, "render failed", "path", r.URL.Path)

	detail := ""
	if s.config.IsDevelopment() {
		detail = err.Error()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	if renderErr := components.Recovery(detail).Render(r.Context(), w); renderErr != nil {
		s.logger.Error(r.Context(), renderErr, "recovery page render failed")
	}
}

func (s *PortfolioServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"version":   version.GetVersion(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// contactResponse is the JSON reply of the contact endpoint.
type contactResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	ID      string `json:"id,omitempty"`
}

// handleContact drives one contact form submission through the controller.
func (s *PortfolioServer) handleContact(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(1 << 20); err != nil {
		if err := r.ParseForm(); err != nil {
			s.respondContact(w, r, http.StatusBadRequest, contactResponse{
				Status: string(contact.StatusError), Message: siteerr.GenericUserMessage,
			})
			return
		}
	}

	fields := contact.Fields{
		FirstName: strings.TrimSpace(r.FormValue("firstName")),
		LastName:  strings.TrimSpace(r.FormValue("lastName")),
		Email:     strings.TrimSpace(r.FormValue("email")),
		Message:   strings.TrimSpace(r.FormValue("message")),
	}
	if fields.FirstName == "" || fields.LastName == "" || fields.Email == "" || fields.Message == "" {
		s.respondContact(w, r, http.StatusBadRequest, contactResponse{
			Status: string(contact.StatusError), Message: "All fields are required.",
		})
		return
	}

	submissionID := uuid.NewString()
	log := s.logger.With("submission_id", submissionID)

	ctrl := contact.NewController(s.config.Email, s.sender)
	ctrl.SetFields(fields)
	defer ctrl.Close()

	if err := ctrl.Submit(r.Context()); err != nil {
		log.Error(r.Context(), err, "contact submission failed", "category", string(siteerr.CategoryOf(err)))
		s.respondContact(w, r, http.StatusBadGateway, contactResponse{
			Status: string(contact.StatusError), Message: siteerr.UserMessage(err), ID: submissionID,
		})
		return
	}

	log.Info(r.Context(), "contact message delivered", "from", fields.Email)
	s.respondContact(w, r, http.StatusOK, contactResponse{
		Status: string(contact.StatusSuccess), ID: submissionID,
	})
}

// respondContact answers with JSON for the fetch client and a
// post-redirect-get for plain form posts.
func (s *PortfolioServer) respondContact(w http.ResponseWriter, r *http.Request, status int, resp contactResponse) {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		writeJSON(w, status, resp)
		return
	}

	target := "/?contact=error#contact"
	if resp.Status == string(contact.StatusSuccess) {
		target = "/?contact=success#contact"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// vitalsReport is the client beacon payload for one observed metric.
type vitalsReport struct {
	Name         string  `json:"name"`
	Value        float64 `json:"value"`
	SessionFinal bool    `json:"session_final"`
}

// handleVitals ingests web vitals reports from the page. The endpoint is
// non-critical: malformed reports are dropped with a 204 and failures are
// only logged.
func (s *PortfolioServer) handleVitals(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var report vitalsReport
	if err := json.NewDecoder(r.Body).Decode(&report); err != nil || report.Name == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	metric := vitals.Metric{
		Name:   report.Name,
		Value:  report.Value,
		Rating: vitals.Rate(report.Name, report.Value),
	}
	s.logger.Debug(r.Context(), "web vital observed",
		"name", metric.Name, "value", metric.Value, "rating", string(metric.Rating))

	// Only the session-final layout-shift signal is relayed, and only when
	// a tracking id is configured.
	if report.SessionFinal && metric.Name == vitals.MetricLayoutShift && s.config.Analytics.TrackingID != "" {
		go func() {
			if err := s.beacon.SendBeacon(metric, s.config.Analytics.TrackingID); err != nil {
				err = siteerr.Instrumentation("vitals beacon", err)
				s.logger.Debug(r.Context(), "vitals beacon failed", "error", err.Error())
			}
		}()
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleThemeToggle flips the persisted preference and returns to the page.
func (s *PortfolioServer) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	next := theme.FromRequest(w, r).Toggle()

	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		writeJSON(w, http.StatusOK, map[string]string{"theme": string(next)})
		return
	}

	target := r.Referer()
	if target == "" {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// staticHandler serves the embedded assets under /static/.
func (s *PortfolioServer) staticHandler() http.Handler {
	sub, err := fs.Sub(components.Assets, components.AssetsRoot)
	if err != nil {
		// The embed is part of the binary; a missing root is a build defect.
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
