package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/studysnap/studysnap-api/internal/api/shared"
	"github.com/studysnap/studysnap-api/internal/config"
	"github.com/studysnap/studysnap-api/internal/domain"
	"github.com/studysnap/studysnap-api/internal/service"
)

// uploadFieldName is the multipart form field carrying the image.
const uploadFieldName = "file"

// StudyHandler handles the study generation HTTP requests.
type StudyHandler struct {
	studyService service.StudyService
	uploadCfg    config.UploadConfig
	logger       *slog.Logger
}

// NewStudyHandler creates a new StudyHandler.
func NewStudyHandler(
	studyService service.StudyService,
	uploadCfg config.UploadConfig,
	logger *slog.Logger,
) *StudyHandler {
	return &StudyHandler{
		studyService: studyService,
		uploadCfg:    uploadCfg,
		logger:       logger.With("component", "study_handler"),
	}
}

// ProcessImage handles POST /api/process-image requests. It validates the
// uploaded file, runs the extraction+summary pipeline, and returns the
// summary together with the text ID for follow-up generations.
func (h *StudyHandler) ProcessImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.uploadCfg.MaxBytes)

	file, header, err := r.FormFile(uploadFieldName)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			shared.RespondWithError(w, r, http.StatusRequestEntityTooLarge,
				"Uploaded file exceeds the maximum allowed size")
			return
		}
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"Request must include an image file in the 'file' field")
		return
	}
	defer func() {
		if err := file.Close(); err != nil {
			h.logger.Warn("failed to close uploaded file", "error", err)
		}
	}()

	mimeType := header.Header.Get("Content-Type")
	if !h.isAllowedMIMEType(mimeType) {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			"File provided is not a supported image type")
		return
	}

	imageBytes, err := io.ReadAll(file)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest,
			"Failed to read uploaded file", err)
		return
	}

	result, err := h.studyService.ProcessImage(r.Context(), imageBytes, mimeType)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ProcessImageResponse{
		Summary: result.Summary,
		TextID:  result.Key.String(),
	})
}

// GenerateExplanations handles POST /api/generate-explanations requests.
func (h *StudyHandler) GenerateExplanations(w http.ResponseWriter, r *http.Request) {
	key, ok := h.decodeTextID(w, r)
	if !ok {
		return
	}

	explanations, err := h.studyService.GenerateExplanations(r.Context(), key)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, explanationsToResponse(explanations))
}

// GenerateQuiz handles POST /api/generate-quiz requests.
func (h *StudyHandler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	key, ok := h.decodeTextID(w, r)
	if !ok {
		return
	}

	formats, err := h.studyService.GenerateQuiz(r.Context(), key)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, quizToResponse(formats))
}

// GenerateNotes handles POST /api/generate-notes requests.
func (h *StudyHandler) GenerateNotes(w http.ResponseWriter, r *http.Request) {
	key, ok := h.decodeTextID(w, r)
	if !ok {
		return
	}

	result, err := h.studyService.GenerateNotes(r.Context(), key)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, notesToResponse(result))
}

// decodeTextID parses and validates the shared generate-request body. On
// failure it writes the error response and reports false.
func (h *StudyHandler) decodeTextID(w http.ResponseWriter, r *http.Request) (domain.ContentKey, bool) {
	var req GenerateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return "", false
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "text_id is required")
		return "", false
	}

	return domain.ContentKey(req.TextID), true
}

// isAllowedMIMEType checks the upload's MIME type against the configured
// allow list. Parameters like "; charset=..." are ignored.
func (h *StudyHandler) isAllowedMIMEType(mimeType string) bool {
	mimeType = strings.TrimSpace(strings.ToLower(strings.Split(mimeType, ";")[0]))
	for _, allowed := range h.uploadCfg.AllowedMIMETypes {
		if mimeType == allowed {
			return true
		}
	}
	return false
}
