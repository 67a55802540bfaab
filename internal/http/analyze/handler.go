package analyze

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/poindexter12/maxwells-wallet/internal/encoding"
	"github.com/poindexter12/maxwells-wallet/internal/format"
	"github.com/poindexter12/maxwells-wallet/internal/importer"
)

// Handler exposes the detection-only surface: a caller can preview the
// synthesized configuration, let the user adjust it, and only then commit to
// a parse.
type Handler struct {
	svc *importer.Service
}

func NewHandler(svc *importer.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.analyzeFile)
}

type columnHintResponse struct {
	Column     string      `json:"column"`
	Role       format.Role `json:"role"`
	Confidence float64     `json:"confidence"`
}

type analyzeResponse struct {
	HeaderFound     bool                 `json:"header_found"`
	SkipRows        int                  `json:"skip_rows"`
	Header          string               `json:"header,omitempty"`
	Columns         []columnHintResponse `json:"columns,omitempty"`
	SuggestedConfig string               `json:"suggested_config,omitempty"`
}

func (h *Handler) analyzeFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	raw, err := encoding.DecodeString(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var resp analyzeResponse

	skip, header, found := h.detectSkip(raw, r.FormValue("skip_rows"))
	if !found {
		writeJSON(w, resp)
		return
	}

	resp.HeaderFound = true
	resp.SkipRows = skip
	resp.Header = header

	analysis := h.svc.AnalyzeColumns(raw, skip)
	for _, hint := range analysis.Hints {
		resp.Columns = append(resp.Columns, columnHintResponse{
			Column:     hint.Ref.String(),
			Role:       hint.Role,
			Confidence: hint.Confidence,
		})
	}

	if analysis.Config != nil {
		if out, err := format.EncodeYAML(analysis.Config); err == nil {
			resp.SuggestedConfig = string(out)
		}
	}

	writeJSON(w, resp)
}

// detectSkip honors an explicit skip_rows form value, otherwise locates the
// header automatically.
func (h *Handler) detectSkip(raw, skipParam string) (int, string, bool) {
	if skipParam != "" {
		skip, err := strconv.Atoi(skipParam)
		if err != nil || skip < 0 {
			return 0, "", false
		}

		return skip, "", true
	}

	return h.svc.DetectHeaderRow(raw)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
