package httpd

import (
	"encoding/json"
	"net/http"

	"school-backend/internal/models"
)

func (h *Handler) AddTeacher(w http.ResponseWriter, r *http.Request) {
	var req models.AddTeacherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	if req.TeacherID == "" {
		writeMessage(w, http.StatusBadRequest, false, "teacher_id is required")
		return
	}
	if req.Password == "" {
		writeMessage(w, http.StatusBadRequest, false, "password is required")
		return
	}

	if err := h.teacherService.AddTeacher(r.Context(), &req); err != nil {
		h.handleCreateError(w, err, "teacher")
		return
	}

	writeMessage(w, http.StatusOK, true, "Teacher added successfully")
}

func (h *Handler) GetTeachers(w http.ResponseWriter, r *http.Request) {
	teachers, err := h.teacherService.GetAllTeachers(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to get teachers")
		writeMessage(w, http.StatusInternalServerError, false, "Failed to get teachers")
		return
	}

	if teachers == nil {
		teachers = []models.Teacher{}
	}

	writeJSON(w, http.StatusOK, teachers)
}

func (h *Handler) DeleteTeacher(w http.ResponseWriter, r *http.Request) {
	id, ok := getInt64URLParam(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, false, "Invalid teacher id")
		return
	}

	if err := h.teacherService.DeleteTeacher(r.Context(), id); err != nil {
		h.logger.Error().Err(err).Int64("id", id).Msg("Failed to delete teacher")
		writeMessage(w, http.StatusInternalServerError, false, "Failed to delete teacher")
		return
	}

	writeMessage(w, http.StatusOK, true, "Teacher deleted")
}
