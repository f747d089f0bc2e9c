package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"eventro-backend/internal/assistant"
	"eventro-backend/internal/config"
	"eventro-backend/internal/docgen"
	"eventro-backend/internal/store"
	"eventro-backend/internal/types"
	"eventro-backend/internal/upload"
)

// bookingNameRe strips everything outside [a-zA-Z0-9 .'-] from the name echoed
// back in the booking-success redirect.
var bookingNameRe = regexp.MustCompile(`[^a-zA-Z0-9 .'-]`)

type Server struct {
	router       *chi.Mux
	cfg          config.Config
	contacts     store.SubmissionStore
	bookings     store.SubmissionStore
	staging      *upload.Staging
	orchestrator *assistant.Orchestrator
	apology      string
}

func NewServer(cfg config.Config) (*Server, error) {
	client := assistant.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.Model, cfg.ImageModel, cfg.ImageSize)
	return newServer(cfg, client, client)
}

// newServer wires the server with explicit clients so tests can stub the
// external providers.
func newServer(cfg config.Config, completions assistant.CompletionClient, images assistant.ImageClient) (*Server, error) {
	persona, err := assistant.LoadPersona(cfg.PersonaFile)
	if err != nil {
		return nil, err
	}
	docs, err := docgen.NewWriter(cfg.DownloadDir)
	if err != nil {
		return nil, err
	}
	staging, err := upload.NewStaging(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.AllowedOrigin},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Requested-With"},
		MaxAge:         300,
	}))

	s := &Server{
		router:       r,
		cfg:          cfg,
		contacts:     store.NewFileStore(cfg.ContactFile),
		bookings:     store.NewFileStore(cfg.BookingFile),
		staging:      staging,
		orchestrator: assistant.NewOrchestrator(completions, images, persona, docs),
		apology:      persona.Apology,
	}
	s.routes()
	return s, nil
}

func (s *Server) routes() {
	s.router.Post("/submit-form", s.handleSubmitForm)
	s.router.Post("/submit-booking", s.handleSubmitBooking)
	s.router.Post("/chat", s.handleChat)
	// Static pages and generated documents under /downloads.
	s.router.Handle("/*", http.FileServer(http.Dir(s.cfg.PublicDir)))
}

func (s *Server) Router() http.Handler { return s.router }

func (s *Server) handleSubmitForm(w http.ResponseWriter, r *http.Request) {
	var req types.ContactSubmission
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeMessage(w, http.StatusBadRequest, "All fields are required.")
		return
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		s.writeMessage(w, http.StatusBadRequest, "All fields are required.")
		return
	}
	if err := s.contacts.Append(req); err != nil {
		log.Println("contact store error:", err)
		s.writeMessage(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	s.writeMessage(w, http.StatusOK, "Form submitted successfully!")
}

func (s *Server) handleSubmitBooking(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "All fields required.", http.StatusBadRequest)
		return
	}
	entry := types.BookingSubmission{
		FullName:     r.PostFormValue("fullName"),
		Email:        r.PostFormValue("email"),
		Phone:        r.PostFormValue("phone"),
		WhatsApp:     r.PostFormValue("whatsapp"),
		Requirements: r.PostFormValue("requirements"),
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
	}
	if entry.FullName == "" || entry.Email == "" || entry.Phone == "" || entry.WhatsApp == "" {
		http.Error(w, "All fields required.", http.StatusBadRequest)
		return
	}
	if err := s.bookings.Append(entry); err != nil {
		log.Println("booking store error:", err)
		http.Error(w, "Something went wrong.", http.StatusInternalServerError)
		return
	}
	name := url.QueryEscape(bookingNameRe.ReplaceAllString(entry.FullName, ""))
	http.Redirect(w, r, "/booking-success.html?name="+name, http.StatusFound)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		log.Println("chat form error:", err)
		s.writeApology(w)
		return
	}
	message := r.FormValue("message")

	var staged *upload.StagedFile
	if file, _, err := r.FormFile("image"); err == nil {
		defer file.Close()
		staged, err = s.staging.Stage(file)
		if err != nil {
			log.Println("upload staging error:", err)
			s.writeApology(w)
			return
		}
		// The staged blob is gone after this request no matter how it ends.
		defer func() {
			if err := staged.Remove(); err != nil {
				log.Println("upload cleanup error:", err)
			}
		}()
	}

	ctx, cancel := context.WithTimeout(r.Context(), 180*time.Second)
	defer cancel()
	resp, err := s.orchestrator.Handle(ctx, assistant.Request{Message: message, Upload: staged})
	if err != nil {
		log.Println("chat pipeline error:", err)
		s.writeApology(w)
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) writeMessage(w http.ResponseWriter, code int, msg string) {
	s.writeJSON(w, code, types.MessageResponse{Message: msg})
}

// writeApology sends the fixed chat failure response. No cause detail reaches
// the client.
func (s *Server) writeApology(w http.ResponseWriter) {
	apology := s.apology
	if strings.TrimSpace(apology) == "" {
		apology = "Sorry, something went wrong."
	}
	s.writeJSON(w, http.StatusInternalServerError, struct {
		Text string `json:"text"`
	}{Text: apology})
}
