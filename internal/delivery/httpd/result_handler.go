package httpd

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"school-backend/internal/models"
	"school-backend/internal/service"
)

func (h *Handler) SaveResult(w http.ResponseWriter, r *http.Request) {
	var req models.SaveResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	if err := h.resultService.SaveResult(r.Context(), &req); err != nil {
		var missing *service.MissingFieldError
		if errors.As(err, &missing) {
			writeMessage(w, http.StatusBadRequest, false, missing.Error())
			return
		}

		h.logger.Error().Err(err).Msg("Failed to save result")
		writeMessage(w, http.StatusInternalServerError, false, err.Error())
		return
	}

	writeMessage(w, http.StatusOK, true, "Result saved successfully")
}

func (h *Handler) GetResults(w http.ResponseWriter, r *http.Request) {
	filter := models.ResultFilter{
		Form:    r.URL.Query().Get("form"),
		Subject: r.URL.Query().Get("subject"),
		Term:    r.URL.Query().Get("term"),
	}

	results, err := h.resultService.GetResults(r.Context(), filter)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to get results")
		writeMessage(w, http.StatusInternalServerError, false, "Failed to get results")
		return
	}

	if results == nil {
		results = []models.Result{}
	}

	writeJSON(w, http.StatusOK, results)
}

func (h *Handler) DeleteResult(w http.ResponseWriter, r *http.Request) {
	id, ok := getInt64URLParam(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, false, "Invalid result id")
		return
	}

	if err := h.resultService.DeleteResult(r.Context(), id); err != nil {
		h.logger.Error().Err(err).Int64("id", id).Msg("Failed to delete result")
		writeMessage(w, http.StatusInternalServerError, false, "Failed to delete result")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"ok":      true,
		"message": "Result deleted",
	})
}

func (h *Handler) StudentResults(w http.ResponseWriter, r *http.Request) {
	studentID := chi.URLParam(r, "studentId")

	resp, err := h.resultService.StudentResults(r.Context(), studentID)
	if err != nil {
		h.logger.Error().Err(err).Str("student_id", studentID).Msg("Failed to get student results")
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"results":    []models.Result{},
			"statistics": map[string]interface{}{},
			"error":      err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
