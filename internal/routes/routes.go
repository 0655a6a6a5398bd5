package routes

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Aditya4234/LMS-project/internal/auth"
	"github.com/Aditya4234/LMS-project/internal/handlers"
	"github.com/Aditya4234/LMS-project/internal/httperr"
	"github.com/Aditya4234/LMS-project/internal/middleware"
	"github.com/Aditya4234/LMS-project/internal/store"
)

// SetupRouter wires every endpoint group onto a mux router. The store and
// token manager are constructed once in main and injected here.
func SetupRouter(st store.Store, tokens *auth.Manager, dbName string) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.Logging)

	notFound := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httperr.JSON(w, http.StatusNotFound, map[string]any{
			"error":   "Not Found",
			"message": fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path),
		})
	})
	router.NotFoundHandler = middleware.Logging(notFound)
	router.MethodNotAllowedHandler = middleware.Logging(notFound)

	// Health check endpoint
	router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		httperr.JSON(w, http.StatusOK, map[string]any{
			"message": "🚀 LMS Backend Server is Running!",
			"status":  "OK",
			"version": "1.0.0",
			"endpoints": map[string]string{
				"auth":          "/api/auth",
				"courses":       "/api/courses",
				"students":      "/api/students",
				"instructors":   "/api/instructors",
				"assignments":   "/api/assignments",
				"attendance":    "/api/attendance",
				"grades":        "/api/grades",
				"announcements": "/api/announcements",
				"reports":       "/api/reports",
				"settings":      "/api/settings",
				"profile":       "/api/profile",
				"contact":       "/api/contact",
			},
		})
	}).Methods("GET")

	authHandler := handlers.NewAuthHandler(st, tokens)
	router.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST")
	router.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	router.Handle("/api/auth/me", middleware.Auth(tokens)(http.HandlerFunc(authHandler.Me))).Methods("GET")

	courseHandler := handlers.NewCourseHandler(st)
	router.HandleFunc("/api/courses", courseHandler.GetCourses).Methods("GET")
	router.HandleFunc("/api/courses", courseHandler.CreateCourse).Methods("POST")
	router.HandleFunc("/api/courses/{id}", courseHandler.GetCourse).Methods("GET")
	router.HandleFunc("/api/courses/{id}", courseHandler.UpdateCourse).Methods("PUT")
	router.HandleFunc("/api/courses/{id}", courseHandler.DeleteCourse).Methods("DELETE")

	studentHandler := handlers.NewStudentHandler(st)
	router.HandleFunc("/api/students", studentHandler.GetStudents).Methods("GET")
	router.HandleFunc("/api/students", studentHandler.CreateStudent).Methods("POST")
	router.HandleFunc("/api/students/{id}", studentHandler.GetStudent).Methods("GET")
	router.HandleFunc("/api/students/{id}", studentHandler.UpdateStudent).Methods("PUT")
	router.HandleFunc("/api/students/{id}", studentHandler.DeleteStudent).Methods("DELETE")

	instructorHandler := handlers.NewInstructorHandler(st)
	router.HandleFunc("/api/instructors", instructorHandler.GetInstructors).Methods("GET")
	router.HandleFunc("/api/instructors", instructorHandler.CreateInstructor).Methods("POST")
	router.HandleFunc("/api/instructors/{id}", instructorHandler.GetInstructor).Methods("GET")
	router.HandleFunc("/api/instructors/{id}", instructorHandler.UpdateInstructor).Methods("PUT")
	router.HandleFunc("/api/instructors/{id}", instructorHandler.DeleteInstructor).Methods("DELETE")

	assignmentHandler := handlers.NewAssignmentHandler(st)
	router.HandleFunc("/api/assignments", assignmentHandler.GetAssignments).Methods("GET")
	router.HandleFunc("/api/assignments", assignmentHandler.CreateAssignment).Methods("POST")
	router.HandleFunc("/api/assignments/{id}", assignmentHandler.GetAssignment).Methods("GET")
	router.HandleFunc("/api/assignments/{id}", assignmentHandler.UpdateAssignment).Methods("PUT")
	router.HandleFunc("/api/assignments/{id}", assignmentHandler.DeleteAssignment).Methods("DELETE")

	attendanceHandler := handlers.NewAttendanceHandler(st)
	router.HandleFunc("/api/attendance", attendanceHandler.GetAttendance).Methods("GET")
	router.HandleFunc("/api/attendance", attendanceHandler.CreateAttendance).Methods("POST")
	router.HandleFunc("/api/attendance/{id}", attendanceHandler.GetAttendanceRecord).Methods("GET")
	router.HandleFunc("/api/attendance/{id}", attendanceHandler.UpdateAttendance).Methods("PUT")
	router.HandleFunc("/api/attendance/{id}", attendanceHandler.DeleteAttendance).Methods("DELETE")

	gradeHandler := handlers.NewGradeHandler(st)
	router.HandleFunc("/api/grades", gradeHandler.GetGrades).Methods("GET")
	router.HandleFunc("/api/grades", gradeHandler.CreateGrade).Methods("POST")
	router.HandleFunc("/api/grades/{id}", gradeHandler.GetGrade).Methods("GET")
	router.HandleFunc("/api/grades/{id}", gradeHandler.UpdateGrade).Methods("PUT")
	router.HandleFunc("/api/grades/{id}", gradeHandler.DeleteGrade).Methods("DELETE")

	announcementHandler := handlers.NewAnnouncementHandler(st)
	router.HandleFunc("/api/announcements", announcementHandler.GetAnnouncements).Methods("GET")
	router.HandleFunc("/api/announcements", announcementHandler.CreateAnnouncement).Methods("POST")
	router.HandleFunc("/api/announcements/{id}", announcementHandler.GetAnnouncement).Methods("GET")
	router.HandleFunc("/api/announcements/{id}", announcementHandler.UpdateAnnouncement).Methods("PUT")
	router.HandleFunc("/api/announcements/{id}", announcementHandler.DeleteAnnouncement).Methods("DELETE")

	contactHandler := handlers.NewContactHandler(st)
	router.HandleFunc("/api/contact", contactHandler.GetContacts).Methods("GET")
	router.HandleFunc("/api/contact", contactHandler.CreateContact).Methods("POST")
	router.HandleFunc("/api/contact/{id}", contactHandler.GetContact).Methods("GET")
	router.HandleFunc("/api/contact/{id}", contactHandler.UpdateContact).Methods("PUT")
	router.HandleFunc("/api/contact/{id}", contactHandler.DeleteContact).Methods("DELETE")

	reportHandler := handlers.NewReportHandler(st)
	router.HandleFunc("/api/reports", reportHandler.GetReports).Methods("GET")

	settingsHandler := handlers.NewSettingsHandler()
	router.HandleFunc("/api/settings", settingsHandler.GetSettings).Methods("GET")
	router.HandleFunc("/api/settings", settingsHandler.UpdateSettings).Methods("POST")

	profileHandler := handlers.NewProfileHandler(st)
	profile := router.PathPrefix("/api/profile").Subrouter()
	profile.Use(middleware.Auth(tokens))
	profile.HandleFunc("", profileHandler.GetProfile).Methods("GET")
	profile.HandleFunc("", profileHandler.UpdateProfile).Methods("PUT")

	adminHandler := handlers.NewAdminHandler(st, dbName)
	admin := router.PathPrefix("/api/admin").Subrouter()
	admin.Use(middleware.RequireRole(tokens, "admin"))
	admin.HandleFunc("/collections", adminHandler.GetCollections).Methods("GET")
	admin.HandleFunc("/collection/{name}", adminHandler.GetCollection).Methods("GET")
	admin.HandleFunc("/collection/{name}/{id}", adminHandler.DeleteDocument).Methods("DELETE")
	admin.HandleFunc("/stats", adminHandler.GetStats).Methods("GET")

	return router
}
