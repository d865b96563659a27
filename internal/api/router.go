package api

import (
	"net/http"
	"sort"
	"strings"

	"github.com/ayombe/server/internal/api/handlers"
	"github.com/ayombe/server/internal/api/middleware"
	"github.com/ayombe/server/internal/auth"
	"github.com/ayombe/server/internal/config"
	"github.com/ayombe/server/internal/domain/attendances"
	"github.com/ayombe/server/internal/domain/events"
	"github.com/ayombe/server/internal/domain/news"
	"github.com/ayombe/server/internal/domain/resources"
	"github.com/ayombe/server/internal/domain/users"
	"github.com/ayombe/server/internal/metrics"
	"github.com/ayombe/server/internal/storage/postgres"
	"github.com/rs/zerolog"
)

// NewRouter builds the full handler chain. The returned DB handle connects
// lazily, so the router comes up even when the store is unreachable and the
// read endpoints degrade to empty results.
func NewRouter(cfg config.Config, logger zerolog.Logger) (http.Handler, *postgres.DB) {
	db := postgres.Open(cfg.Database.URL, cfg.Database.MaxConnections)
	repo := postgres.NewRepository(db)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry, "ayombe-server")

	usersService := users.NewService(repo.Users(), logger, cfg.Auth.OwnerOpenID)
	eventsService := events.NewService(repo.Events(), logger)
	newsService := news.NewService(repo.News(), logger)
	attendancesService := attendances.NewService(repo.Attendances(), logger)
	resourcesService := resources.NewService(repo.Resources(), logger)

	env := cfg.Environment
	authHandler := handlers.NewAuthHandler(usersService, jwtManager, cfg.Auth.JWTExpiry, env)
	usersHandler := handlers.NewUsersHandler(usersService, env)
	eventsHandler := handlers.NewEventsHandler(eventsService, env)
	newsHandler := handlers.NewNewsHandler(newsService, env)
	attendancesHandler := handlers.NewAttendancesHandler(attendancesService, env)
	resourcesHandler := handlers.NewResourcesHandler(resourcesService, env)

	requireUser := middleware.RequireUser(env)
	requireAdmin := middleware.RequireAdmin(env)

	mux := http.NewServeMux()
	mux.Handle("/healthz", handlers.Healthz())
	mux.Handle("/readyz", handlers.Readyz())
	mux.Handle("/metrics", metrics.Handler())

	mux.Handle("/api/v1/auth/me", methodMux(map[string]http.Handler{
		http.MethodGet: http.HandlerFunc(authHandler.Me),
	}))
	mux.Handle("/api/v1/auth/login", methodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(authHandler.Login),
	}))
	mux.Handle("/api/v1/auth/logout", methodMux(map[string]http.Handler{
		http.MethodPost: http.HandlerFunc(authHandler.Logout),
	}))

	mux.Handle("/api/v1/users", methodMux(map[string]http.Handler{
		http.MethodGet:  requireAdmin(http.HandlerFunc(usersHandler.List)),
		http.MethodPost: requireAdmin(http.HandlerFunc(usersHandler.Create)),
	}))
	mux.Handle("/api/v1/users/{id}", methodMux(map[string]http.Handler{
		http.MethodPatch:  requireAdmin(http.HandlerFunc(usersHandler.Update)),
		http.MethodDelete: requireAdmin(http.HandlerFunc(usersHandler.Delete)),
	}))

	mux.Handle("/api/v1/events", methodMux(map[string]http.Handler{
		http.MethodGet:  requireUser(http.HandlerFunc(eventsHandler.List)),
		http.MethodPost: requireAdmin(http.HandlerFunc(eventsHandler.Create)),
	}))
	mux.Handle("/api/v1/events/upcoming", methodMux(map[string]http.Handler{
		http.MethodGet: requireUser(http.HandlerFunc(eventsHandler.Upcoming)),
	}))
	mux.Handle("/api/v1/events/{id}", methodMux(map[string]http.Handler{
		http.MethodGet:    requireUser(http.HandlerFunc(eventsHandler.Get)),
		http.MethodPatch:  requireAdmin(http.HandlerFunc(eventsHandler.Update)),
		http.MethodDelete: requireAdmin(http.HandlerFunc(eventsHandler.Delete)),
	}))
	mux.Handle("/api/v1/events/{id}/attendances", methodMux(map[string]http.Handler{
		http.MethodGet: requireUser(http.HandlerFunc(attendancesHandler.ByEvent)),
	}))

	mux.Handle("/api/v1/news", methodMux(map[string]http.Handler{
		http.MethodGet:  requireUser(http.HandlerFunc(newsHandler.List)),
		http.MethodPost: requireAdmin(http.HandlerFunc(newsHandler.Create)),
	}))
	mux.Handle("/api/v1/news/urgent", methodMux(map[string]http.Handler{
		http.MethodGet: requireUser(http.HandlerFunc(newsHandler.Urgent)),
	}))
	mux.Handle("/api/v1/news/{id}", methodMux(map[string]http.Handler{
		http.MethodPatch:  requireAdmin(http.HandlerFunc(newsHandler.Update)),
		http.MethodDelete: requireAdmin(http.HandlerFunc(newsHandler.Delete)),
	}))

	mux.Handle("/api/v1/attendances", methodMux(map[string]http.Handler{
		http.MethodPut: requireUser(http.HandlerFunc(attendancesHandler.Upsert)),
	}))
	mux.Handle("/api/v1/attendances/mine", methodMux(map[string]http.Handler{
		http.MethodGet: requireUser(http.HandlerFunc(attendancesHandler.Mine)),
	}))

	mux.Handle("/api/v1/resources", methodMux(map[string]http.Handler{
		http.MethodGet:  requireUser(http.HandlerFunc(resourcesHandler.List)),
		http.MethodPost: requireAdmin(http.HandlerFunc(resourcesHandler.Create)),
	}))
	mux.Handle("/api/v1/resources/{id}", methodMux(map[string]http.Handler{
		http.MethodPatch:  requireAdmin(http.HandlerFunc(resourcesHandler.Update)),
		http.MethodDelete: requireAdmin(http.HandlerFunc(resourcesHandler.Delete)),
	}))

	var handler http.Handler = mux
	handler = middleware.Session(jwtManager)(handler)
	handler = metrics.HTTPMiddleware(handler)
	handler = middleware.RequestLogging(logger)(handler)
	handler = middleware.CorrelationID(logger)(handler)
	return handler, db
}

func methodMux(handlers map[string]http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if handler, ok := handlers[r.Method]; ok {
			handler.ServeHTTP(w, r)
			return
		}
		w.Header().Set("Allow", allowedMethods(handlers))
		w.WriteHeader(http.StatusMethodNotAllowed)
	})
}

func allowedMethods(handlers map[string]http.Handler) string {
	methods := make([]string, 0, len(handlers))
	for method := range handlers {
		methods = append(methods, method)
	}
	sort.Strings(methods)
	return strings.Join(methods, ", ")
}
