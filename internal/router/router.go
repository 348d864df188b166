package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"nuna-backend/internal/handlers"
	"nuna-backend/internal/middleware"
)

func New(
	jwtAuth *middleware.JWTAuth,
	authHandler *handlers.AuthHandler,
	journalHandler *handlers.JournalHandler,
	moodHandler *handlers.MoodHandler,
	chatHandler *handlers.ChatHandler,
	postHandler *handlers.PostHandler,
	commentHandler *handlers.CommentHandler,
	meditationHandler *handlers.MeditationHandler,
	livekitHandler *handlers.LiveKitHandler,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(frontendURL))

	authLimiter := middleware.NewRateLimiter(10, time.Minute)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(authLimiter.Middleware)
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)

			r.Group(func(r chi.Router) {
				r.Use(jwtAuth.Middleware)
				r.Post("/logout", authHandler.Logout)
				r.Get("/profile", authHandler.Profile)
			})
		})

		r.Route("/journals", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Get("/", journalHandler.List)
			r.Post("/", journalHandler.Create)
			r.Get("/{id}", journalHandler.Get)
			r.Put("/{id}", journalHandler.Update)
			r.Delete("/{id}", journalHandler.Delete)
		})

		r.Route("/mood", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Post("/", moodHandler.Create)
			r.Get("/", moodHandler.History)
			r.Get("/active", moodHandler.Active)
			r.Get("/stats", moodHandler.Stats)
			r.Get("/distribution", moodHandler.Distribution)
			r.Put("/{id}", moodHandler.Update)
		})

		r.Route("/chat", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Post("/", chatHandler.Chat)
			r.Get("/recommendations", chatHandler.Recommendations)
			r.Get("/patterns", chatHandler.Patterns)
			r.Get("/progress", chatHandler.Progress)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", postHandler.List)
			r.Get("/{id}", postHandler.Get)
			r.Get("/user/{userId}", postHandler.ByUser)

			r.Group(func(r chi.Router) {
				r.Use(jwtAuth.Middleware)
				r.Get("/me", postHandler.ByUser)
				r.Post("/", postHandler.Create)
				r.Put("/{id}", postHandler.Update)
				r.Delete("/{id}", postHandler.Delete)
				r.Post("/{id}/like", postHandler.Like)
				r.Post("/{id}/unlike", postHandler.Unlike)
			})
		})

		r.Route("/comments", func(r chi.Router) {
			r.Get("/post/{postId}", commentHandler.ListByPost)

			r.Group(func(r chi.Router) {
				r.Use(jwtAuth.Middleware)
				r.Post("/", commentHandler.Create)
				r.Put("/{id}", commentHandler.Update)
				r.Delete("/{id}", commentHandler.Delete)
			})
		})

		r.Route("/meditate", func(r chi.Router) {
			r.Get("/", meditationHandler.List)
			r.Get("/{id}", meditationHandler.Get)
			r.Post("/", meditationHandler.Create)
			r.Put("/{id}", meditationHandler.Update)
			r.Delete("/{id}", meditationHandler.Delete)
		})

		r.Route("/livekit", func(r chi.Router) {
			r.Use(jwtAuth.Middleware)
			r.Post("/token", livekitHandler.CreateToken)
		})
	})

	return r
}
