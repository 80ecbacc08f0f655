package httpd

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"school-backend/internal/models"
	"school-backend/internal/service"
)

func (h *Handler) AdminLogin(w http.ResponseWriter, r *http.Request) {
	var req models.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	resp, err := h.authService.AdminLogin(r.Context(), req.AdminID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAdminNotFound):
			writeMessage(w, http.StatusNotFound, false, "Admin ID not found")
		case errors.Is(err, service.ErrIncorrectPassword):
			writeMessage(w, http.StatusUnauthorized, false, "Incorrect password")
		default:
			h.logger.Error().Err(err).Msg("Admin login failed")
			writeMessage(w, http.StatusInternalServerError, false, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) TeacherLogin(w http.ResponseWriter, r *http.Request) {
	var req models.TeacherLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	if req.TeacherID == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, false, "Please provide Teacher ID and password")
		return
	}

	resp, err := h.authService.TeacherLogin(r.Context(), req.TeacherID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeacherNotFound):
			writeMessage(w, http.StatusNotFound, false, "Teacher ID not found")
		case errors.Is(err, service.ErrIncorrectPassword):
			writeMessage(w, http.StatusUnauthorized, false, "Incorrect password")
		default:
			h.logger.Error().Err(err).Msg("Teacher login failed")
			writeMessage(w, http.StatusInternalServerError, false, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) VerifyStudent(w http.ResponseWriter, r *http.Request) {
	var req models.VerifyStudentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"valid":   false,
			"message": "Invalid request body",
		})
		return
	}

	studentID := strings.TrimSpace(req.StudentID)
	if studentID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"valid":   false,
			"message": "Please provide Student ID",
		})
		return
	}

	verification, err := h.authService.VerifyStudent(r.Context(), studentID)
	if err != nil {
		if errors.Is(err, service.ErrStudentNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]interface{}{
				"valid": false,
				"message": fmt.Sprintf(
					"Student ID '%s' not found in database. Please check your ID or contact administration.",
					studentID,
				),
			})
			return
		}

		h.logger.Error().Err(err).Str("student_id", studentID).Msg("Student verification failed")
		writeJSON(w, http.StatusInternalServerError, map[string]interface{}{
			"valid":   false,
			"message": "Server error: " + err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, verification)
}

func (h *Handler) CreateStudentPassword(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	studentID := strings.TrimSpace(req.StudentID)
	if studentID == "" {
		writeMessage(w, http.StatusBadRequest, false, "Student ID is required")
		return
	}
	if req.Password == "" {
		writeMessage(w, http.StatusBadRequest, false, "Password is required")
		return
	}

	if err := h.authService.CreateStudentPassword(r.Context(), studentID, req.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrPasswordTooShort):
			writeMessage(w, http.StatusBadRequest, false, "Password must be at least 8 characters")
		case errors.Is(err, service.ErrStudentNotFound):
			writeMessage(w, http.StatusNotFound, false, "Student not found")
		case errors.Is(err, service.ErrPasswordUpdateFailed):
			writeMessage(w, http.StatusInternalServerError, false, "Failed to update password")
		default:
			h.logger.Error().Err(err).Str("student_id", studentID).Msg("Password creation failed")
			writeMessage(w, http.StatusInternalServerError, false, "Server error: "+err.Error())
		}
		return
	}

	writeMessage(w, http.StatusOK, true, "Password created successfully")
}

func (h *Handler) StudentLogin(w http.ResponseWriter, r *http.Request) {
	var req models.StudentLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	studentID := strings.TrimSpace(req.StudentID)
	if studentID == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, false, "Student ID and password required")
		return
	}

	resp, err := h.authService.StudentLogin(r.Context(), studentID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStudentNotFound):
			writeMessage(w, http.StatusNotFound, false, "Student ID not found")
		case errors.Is(err, service.ErrNoPasswordSet):
			writeMessage(w, http.StatusBadRequest, false, "Please set up your password first")
		case errors.Is(err, service.ErrIncorrectPassword):
			writeMessage(w, http.StatusUnauthorized, false, "Incorrect password")
		default:
			h.logger.Error().Err(err).Str("student_id", studentID).Msg("Student login failed")
			writeMessage(w, http.StatusInternalServerError, false, "Server error: "+err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}
