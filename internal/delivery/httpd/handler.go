package httpd

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"school-backend/internal/service"
)

type Handler struct {
	authService    service.AuthService
	studentService service.StudentService
	teacherService service.TeacherService
	adminService   service.AdminService
	resultService  service.ResultService
	statsService   service.StatsService
	logger         zerolog.Logger
}

func NewHandler(
	authService service.AuthService,
	studentService service.StudentService,
	teacherService service.TeacherService,
	adminService service.AdminService,
	resultService service.ResultService,
	statsService service.StatsService,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		authService:    authService,
		studentService: studentService,
		teacherService: teacherService,
		adminService:   adminService,
		resultService:  resultService,
		statsService:   statsService,
		logger:         logger,
	}
}

// RegisterRoutes keeps the flat route layout the dashboards call.
func (h *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/health", h.HealthCheck)
	router.Get("/api/statistics", h.DashboardStatistics)

	router.Post("/admin_login", h.AdminLogin)
	router.Post("/teacher_login", h.TeacherLogin)
	router.Post("/verify_student", h.VerifyStudent)
	router.Post("/create_student_password", h.CreateStudentPassword)
	router.Post("/student_login", h.StudentLogin)
	router.Post("/search_student", h.SearchStudent)

	router.Post("/add_student", h.AddStudent)
	router.Get("/get_students", h.GetStudents)
	router.Delete("/delete_student/{id}", h.DeleteStudent)

	router.Post("/add_teacher", h.AddTeacher)
	router.Get("/get_teachers", h.GetTeachers)
	router.Delete("/delete_teacher/{id}", h.DeleteTeacher)

	router.Post("/add_admin", h.AddAdmin)
	router.Get("/get_admins", h.GetAdmins)
	router.Delete("/delete_admin/{id}", h.DeleteAdmin)

	router.Post("/save_result", h.SaveResult)
	router.Get("/get_results", h.GetResults)
	router.Delete("/delete_result/{id}", h.DeleteResult)
	router.Get("/student_results/{studentId}", h.StudentResults)

	router.Route("/debug", func(r chi.Router) {
		r.Get("/students", h.DebugStudents)
		r.Get("/teachers", h.DebugTeachers)
		r.Get("/results", h.DebugResults)
	})
}

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "school-backend",
		"timestamp": time.Now().UTC(),
	}

	writeJSON(w, http.StatusOK, response)
}

func getInt64URLParam(r *http.Request, key string) (int64, bool) {
	value := chi.URLParam(r, key)
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func writeMessage(w http.ResponseWriter, status int, success bool, message string) {
	writeJSON(w, status, map[string]interface{}{
		"success": success,
		"message": message,
	})
}
