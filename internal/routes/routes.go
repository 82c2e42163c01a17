package routes

import (
	"github.com/gin-gonic/gin"

	"klinik-backend/internal/handlers"
	"klinik-backend/internal/middleware"
)

func SetupRoutes(r *gin.Engine) {

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware())

	// Grouping API dengan Versi (v1)
	api := r.Group("/api/v1")
	{
		// 1. PUBLIC ROUTES
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.Register)
			auth.POST("/login", handlers.Login)
		}

		// 2. PROTECTED ROUTES (Harus Login / Punya Token)
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", handlers.GetProfile)

			// DASHBOARD PASIEN
			patient := protected.Group("/patient")
			patient.Use(middleware.RoleOnly("patient"))
			{
				patient.POST("/appointments", handlers.BookAppointment)
				patient.GET("/appointments", handlers.GetMyAppointments)
				patient.GET("/records", handlers.GetMyRecords)
				patient.GET("/lab-reports", handlers.GetMyLabReports)
				patient.GET("/prescriptions", handlers.GetMyPrescriptions)
			}

			// DASHBOARD DOKTER
			doctor := protected.Group("/doctor")
			doctor.Use(middleware.RoleOnly("doctor"))
			{
				doctor.GET("/appointments", handlers.GetDoctorAppointments)
				doctor.POST("/appointments/:id/approve", handlers.ApproveAppointment)
				doctor.POST("/appointments/:id/reject", handlers.RejectAppointment)
				doctor.POST("/appointments/:id/complete", handlers.CompleteAppointment)
				doctor.GET("/records", handlers.GetPatientRecords)
				doctor.POST("/prescriptions", handlers.CreatePrescription)
				doctor.GET("/prescriptions", handlers.GetDoctorPrescriptions)
			}

			// DASHBOARD APOTEKER
			pharmacist := protected.Group("/pharmacist")
			pharmacist.Use(middleware.RoleOnly("pharmacist"))
			{
				pharmacist.GET("/prescriptions", handlers.GetAllPrescriptions)
				pharmacist.POST("/prescriptions/:id/dispense", handlers.DispensePrescription)
				pharmacist.POST("/prescriptions/:id/invoice", handlers.CreatePrescriptionInvoice)
			}

			// DASHBOARD ADMIN
			admin := protected.Group("/admin")
			admin.Use(middleware.RoleOnly("admin"))
			{
				admin.GET("/dashboard", handlers.GetDashboardStats)
				admin.GET("/users", handlers.GetAllUsers)
				admin.POST("/users/:id/verify", handlers.VerifyUser)
				admin.PATCH("/users/:id/deactivate", handlers.DeactivateUser)
				admin.DELETE("/users/:id", handlers.DeleteUser)
				admin.GET("/settings", handlers.GetSettings)
				admin.PUT("/settings", handlers.UpdateSettings)
			}
		}
	}
}
