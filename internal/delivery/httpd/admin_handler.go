package httpd

import (
	"encoding/json"
	"net/http"

	"school-backend/internal/models"
)

func (h *Handler) AddAdmin(w http.ResponseWriter, r *http.Request) {
	var req models.AddAdminRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, false, "Invalid request body")
		return
	}

	if req.AdminID == "" {
		writeMessage(w, http.StatusBadRequest, false, "admin_id is required")
		return
	}
	if req.Password == "" {
		writeMessage(w, http.StatusBadRequest, false, "password is required")
		return
	}

	if err := h.adminService.AddAdmin(r.Context(), &req); err != nil {
		h.handleCreateError(w, err, "admin")
		return
	}

	writeMessage(w, http.StatusOK, true, "Admin added successfully")
}

func (h *Handler) GetAdmins(w http.ResponseWriter, r *http.Request) {
	admins, err := h.adminService.GetAllAdmins(r.Context())
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to get admins")
		writeMessage(w, http.StatusInternalServerError, false, "Failed to get admins")
		return
	}

	if admins == nil {
		admins = []models.Admin{}
	}

	writeJSON(w, http.StatusOK, admins)
}

func (h *Handler) DeleteAdmin(w http.ResponseWriter, r *http.Request) {
	id, ok := getInt64URLParam(r, "id")
	if !ok {
		writeMessage(w, http.StatusBadRequest, false, "Invalid admin id")
		return
	}

	if err := h.adminService.DeleteAdmin(r.Context(), id); err != nil {
		h.logger.Error().Err(err).Int64("id", id).Msg("Failed to delete admin")
		writeMessage(w, http.StatusInternalServerError, false, "Failed to delete admin")
		return
	}

	writeMessage(w, http.StatusOK, true, "Admin deleted")
}
