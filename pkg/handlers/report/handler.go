package report

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"

	"github.com/hr-tools/social-atlas/pkg/adapters"
	"github.com/hr-tools/social-atlas/pkg/models/domain"
	reportsvc "github.com/hr-tools/social-atlas/pkg/services/report"
	"github.com/rs/zerolog"
)

type Handler struct {
	controller     reportsvc.Controller
	questions      []*domain.QuestionNode
	maxUploadBytes int64
}

func NewHandler(
	controller reportsvc.Controller,
	questions []*domain.QuestionNode,
	maxUploadBytes int64,
) *Handler {
	return &Handler{
		controller:     controller,
		questions:      questions,
		maxUploadBytes: maxUploadBytes,
	}
}

func (h *Handler) GetCatalogue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(adapters.MapQuestionsDomainToApi(h.questions))
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to encode question catalogue")
	}
}

// CreateReport accepts one declaration file per request under the
// "declaration" multipart field, runs the pipeline and returns the computed
// answers. Oversized and non-text uploads are rejected before parsing.
func (h *Handler) CreateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	file, _, err := r.FormFile("declaration")
	if err != nil {
		http.Error(w, "missing 'declaration' file in upload", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		http.Error(w, "declaration exceeds the upload size limit", http.StatusRequestEntityTooLarge)
		return
	}
	if bytes.IndexByte(data, 0) >= 0 {
		http.Error(w, "declaration must be a text file", http.StatusBadRequest)
		return
	}

	rep, err := h.controller.Process(ctx, string(data), h.questions)
	if err != nil {
		if reportsvc.IsStructural(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logger.Error().
			Err(err).
			Msg("failed to process declaration")
		http.Error(w, "failed to process declaration", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	err = json.NewEncoder(w).Encode(adapters.MapReportDomainToApi(rep))
	if err != nil {
		logger.Error().
			Err(err).
			Str("submission_id", rep.SubmissionID).
			Msg("failed to encode report")
	}
}
