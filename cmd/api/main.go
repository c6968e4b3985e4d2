package main

import (
	"log"
	"net/http"

	_ "github.com/sbiothmane/POLO341-sub000/docs" // swagger docs

	"github.com/sbiothmane/POLO341-sub000/internal/cache"
	"github.com/sbiothmane/POLO341-sub000/internal/config"
	"github.com/sbiothmane/POLO341-sub000/internal/db"
	"github.com/sbiothmane/POLO341-sub000/internal/handler"
	"github.com/sbiothmane/POLO341-sub000/internal/repository"
	"github.com/sbiothmane/POLO341-sub000/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title POLO341 Peer Assessment API
// @version 1.0
// @description API de evaluación entre compañeros (equipos, ratings, office hours, polls)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// repos
	userRepo := repository.NewUserRepository()
	teamRepo := repository.NewTeamRepository()
	ratingRepo := repository.NewRatingRepository()
	officeHourRepo := repository.NewOfficeHourRepository()
	pollRepo := repository.NewPollRepository()

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	teamSvc := service.NewTeamService(teamRepo, userRepo)
	ratingSvc := service.NewRatingService(teamRepo, ratingRepo, userRepo)
	officeHourSvc := service.NewOfficeHourService(officeHourRepo)
	pollSvc := service.NewPollService(pollRepo)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	teamH := handler.NewTeamHandler(teamSvc)
	ratingH := handler.NewRatingHandler(ratingSvc)
	officeHourH := handler.NewOfficeHourHandler(officeHourSvc)
	pollH := handler.NewPollHandler(pollSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		// ---- perfil ----
		r.Get("/me", authH.Me)
		r.Put("/me", authH.UpdateMe)

		// ---- equipos y ratings (student + instructor) ----
		r.Get("/teams", teamH.List)
		r.Get("/teams/{teamName}", teamH.GetByName)
		r.Get("/teams/{teamName}/ratings", ratingH.GetTeamRatings)
		r.Post("/teams/{teamName}/ratings", ratingH.SubmitRating)
		r.Post("/teams/{teamName}/ratings:aggregate", ratingH.AggregateRatings)
		r.Get("/teams/{teamName}/ratings/summary", ratingH.GetTeamSummary)

		// ---- office hours ----
		r.Get("/office-hours", officeHourH.List)

		// ---- polls ----
		r.Get("/polls", pollH.List)
		r.Post("/polls/{id}/vote", pollH.Vote)
		r.Get("/polls/{id}/results", pollH.Results)

		// WebSocket
		r.Get("/polls/{id}/ws", pollH.ResultsWS)

		// ---- Endpoints solo INSTRUCTOR ----
		r.Group(func(r chi.Router) {
			r.Use(handler.InstructorOnly())

			r.Post("/teams", teamH.Create)

			r.Post("/office-hours", officeHourH.Create)
			r.Delete("/office-hours/{id}", officeHourH.Delete)

			r.Post("/polls", pollH.Create)
			r.Post("/polls/{id}/close", pollH.Close)

			// gestión de usuarios
			r.Get("/users", authH.ListUsers)
			r.Get("/users/{id}", authH.GetUserByID)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
