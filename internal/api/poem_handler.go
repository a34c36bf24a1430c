package api

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/haengsi/internal/api/shared"
	"github.com/phrazzld/haengsi/internal/domain"
	"github.com/phrazzld/haengsi/internal/platform/logger"
	"github.com/phrazzld/haengsi/internal/service"
)

//go:embed templates/index.html
var templateFS embed.FS

// CreatePoemRequest represents the request body for composing a poem
type CreatePoemRequest struct {
	Word string `json:"word" validate:"max=256"`
}

// PoemResponse represents the response data for a poem
type PoemResponse struct {
	ID        string    `json:"id"`
	Word      string    `json:"word"`
	Poem      string    `json:"poem"`
	Lines     []string  `json:"lines"`
	Model     string    `json:"model"`
	CreatedAt time.Time `json:"created_at"`
}

// pageData is rendered by templates/index.html. Word is the value echoed back
// into the input, Poem is set on success, Error on failure.
type pageData struct {
	Word  string
	Poem  *domain.Poem
	Error string
	Model string
}

// PoemHandler serves the poem form and the JSON poem API
type PoemHandler struct {
	poemService service.PoemService
	page        *template.Template
	model       string
	logger      *slog.Logger
}

// NewPoemHandler creates a new PoemHandler. model is shown in the page footer.
func NewPoemHandler(poemService service.PoemService, model string, logger *slog.Logger) (*PoemHandler, error) {
	page, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PoemHandler{
		poemService: poemService,
		page:        page,
		model:       model,
		logger:      logger.With("component", "poem_handler"),
	}, nil
}

// ShowForm handles GET / requests
func (h *PoemHandler) ShowForm(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, http.StatusOK, pageData{})
}

// SubmitForm handles POST / requests
func (h *PoemHandler) SubmitForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		shared.LogError(r, http.StatusBadRequest, MsgInvalidRequest, err)
		h.renderPage(w, r, http.StatusBadRequest, pageData{Error: MsgInvalidRequest})
		return
	}

	word := r.PostForm.Get("word")

	poem, err := h.poemService.Compose(r.Context(), word)
	if err != nil {
		status := MapErrorToStatusCode(err)
		message := GetSafeErrorMessage(err)
		shared.LogError(r, status, message, err)
		h.renderPage(w, r, status, pageData{Word: word, Error: message})
		return
	}

	h.renderPage(w, r, http.StatusOK, pageData{Word: poem.Word.String(), Poem: poem})
}

// CreatePoem handles POST /api/poems requests
func (h *PoemHandler) CreatePoem(w http.ResponseWriter, r *http.Request) {
	var req CreatePoemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, MsgInvalidRequest, err,
			shared.WithElevatedLogLevel())
		return
	}

	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetRequestValidationMessage(err), err)
		return
	}

	poem, err := h.poemService.Compose(r.Context(), req.Word)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, poemToResponse(poem))
}

// Health handles GET /health requests
func (h *PoemHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (h *PoemHandler) renderPage(w http.ResponseWriter, r *http.Request, status int, data pageData) {
	data.Model = h.model

	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).
			ErrorContext(r.Context(), "failed to render page", "error", err)
		http.Error(w, MsgUnexpected, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// poemToResponse converts a domain.Poem to a PoemResponse
func poemToResponse(poem *domain.Poem) PoemResponse {
	return PoemResponse{
		ID:        poem.ID.String(),
		Word:      poem.Word.String(),
		Poem:      poem.Text,
		Lines:     poem.Lines(),
		Model:     poem.Model,
		CreatedAt: poem.CreatedAt,
	}
}
