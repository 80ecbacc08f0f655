package httpd

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"school-backend/internal/models"
	"school-backend/internal/service"
)

func (h *Handler) AddStudent(w http.ResponseWriter, r *http.Request) {
	var req models.AddStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	if req.SID == "" {
		writeMessage(w, http.StatusBadRequest, false, "sid is required")
		return
	}

	if err := h.studentService.AddStudent(r.Context(), &req); err != nil {
		h.handleCreateError(w, err, "student")
		return
	}

	writeMessage(w, http.StatusOK, true, "Student added successfully")
}

func (h *Handler) GetStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.studentService.GetAllStudents(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to get students")
		writeMessage(w, http.StatusInternalServerError, false, "Failed to get students")
		return
	}

	if students == nil {
		students = []models.Student{}
	}

	writeJSON(w, http.StatusOK, students)
}

func (h *Handler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	id, ok := getInt64URLParam(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, false, "Invalid student id")
		return
	}

	if err := h.studentService.DeleteStudent(r.Context(), id); err != nil {
		h.logger.Error().Err(err).Int64("id", id).Msg("Failed to delete student")
		writeMessage(w, http.StatusInternalServerError, false, "Failed to delete student")
		return
	}

	writeMessage(w, http.StatusOK, true, "Student deleted")
}

func (h *Handler) SearchStudent(w http.ResponseWriter, r *http.Request) {
	var req models.SearchStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"found":   false,
			"message": "Invalid request body",
		})
		return
	}

	studentID := strings.TrimSpace(req.StudentID)
	name := strings.TrimSpace(req.Name)

	student, err := h.studentService.SearchStudent(r.Context(), studentID, name)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			writeJSON(w, http.StatusBadRequest, map[string]interface{}{
				"found":   false,
				"message": validationErr.Message,
			})
		case errors.Is(err, service.ErrStudentNotFound):
			writeJSON(w, http.StatusNotFound, map[string]interface{}{
				"found":   false,
				"message": "Student not found",
			})
		default:
			h.logger.Error().Err(err).Msg("Student search failed")
			writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
				"found":   false,
				"message": "Internal server error",
			})
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"found":   true,
		"student": student,
	})
}

// handleCreateError maps a directory insert failure, surfacing the
// constraint message as-is on a duplicate natural key.
func (h *Handler) handleCreateError(w http.ResponseWriter, err error, entity string) {
	var dup *service.DuplicateKeyError
	if errors.As(err, &dup) {
		writeMessage(w, http.StatusConflict, false, dup.Error())
		return
	}

	h.logger.Error().Err(err).Str("entity", entity).Msg("Create failed")
	writeMessage(w, http.StatusInternalServerError, false, err.Error())
}
