package parse

import (
	"encoding/json"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/poindexter12/maxwells-wallet/internal/encoding"
	"github.com/poindexter12/maxwells-wallet/internal/format"
	"github.com/poindexter12/maxwells-wallet/internal/importer"
	"github.com/poindexter12/maxwells-wallet/internal/transaction"
	"github.com/poindexter12/maxwells-wallet/internal/xlsx"
)

type Handler struct {
	svc *importer.Service
}

func NewHandler(svc *importer.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.parseFile)
}

type transactionResponse struct {
	Date              string `json:"date"`
	Amount            string `json:"amount"`
	Description       string `json:"description"`
	Merchant          string `json:"merchant"`
	AccountSource     string `json:"account_source,omitempty"`
	ReferenceID       string `json:"reference_id"`
	CardMember        string `json:"card_member,omitempty"`
	SuggestedCategory string `json:"suggested_category,omitempty"`
	SourceCategory    string `json:"source_category,omitempty"`
}

type parseResponse struct {
	UploadID     uuid.UUID             `json:"upload_id"`
	Format       format.Key            `json:"format"`
	Detected     bool                  `json:"detected"`
	Count        int                   `json:"count"`
	Transactions []transactionResponse `json:"transactions"`
}

func (h *Handler) parseFile(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	raw, err := decodeUpload(file, header.Filename)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.svc.Parse(raw, r.FormValue("account"), format.Key(r.FormValue("format")))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := parseResponse{
		UploadID:     uuid.New(),
		Format:       result.Format,
		Detected:     result.Detected,
		Count:        len(result.Transactions),
		Transactions: make([]transactionResponse, 0, len(result.Transactions)),
	}

	for _, tx := range result.Transactions {
		resp.Transactions = append(resp.Transactions, toTxResponse(tx))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type formatsResponse struct {
	Formats []format.Key `json:"formats"`
}

func (h *Handler) ListFormats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(formatsResponse{Formats: h.svc.Formats()}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// decodeUpload turns an uploaded file into UTF-8 text. Spreadsheets are
// flattened to delimited lines first; everything else goes through charset
// detection.
func decodeUpload(file multipart.File, filename string) (string, error) {
	if strings.HasSuffix(strings.ToLower(filename), ".xlsx") {
		return xlsx.ToDelimited(file)
	}

	return encoding.DecodeString(file)
}

func toTxResponse(tx transaction.Transaction) transactionResponse {
	return transactionResponse{
		Date:              tx.Date.Format(time.DateOnly),
		Amount:            tx.Amount.String(),
		Description:       tx.Description,
		Merchant:          tx.Merchant,
		AccountSource:     tx.AccountSource,
		ReferenceID:       tx.ReferenceID,
		CardMember:        tx.CardMember,
		SuggestedCategory: tx.SuggestedCategory,
		SourceCategory:    tx.SourceCategory,
	}
}
