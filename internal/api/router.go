package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/avelez/quizbank-be/internal/api/handlers"
	"github.com/avelez/quizbank-be/internal/auth"
	"github.com/avelez/quizbank-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(frontendOrigin string, userService services.UserServiceProvider, questionService services.QuestionServiceProvider, attemptService services.AttemptServiceProvider) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Credentialed CORS so the frontend can carry the session cookie
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	attemptHandler := handlers.NewAttemptHandler(attemptService)

	r.Route("/api", func(r chi.Router) {
		// Public endpoints
		r.Post("/register", userHandler.Register)
		r.Post("/login", userHandler.Login)
		r.Get("/profile", userHandler.Profile)
		r.Get("/questions", questionHandler.List)
		r.Get("/quiz-config", questionHandler.Config)

		// Session-guarded endpoints
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAuth())
			r.Post("/logout", userHandler.Logout)
			r.Post("/quiz/submit", attemptHandler.Submit)
			r.Get("/user/attempts", attemptHandler.History)
		})
	})

	return r
}
