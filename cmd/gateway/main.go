package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	api "github.com/securellm/securellm-api/internal/api/http"
	"github.com/securellm/securellm-api/internal/auth"
	authmw "github.com/securellm/securellm-api/internal/auth/middleware"
	"github.com/securellm/securellm-api/internal/challenge"
	"github.com/securellm/securellm-api/internal/config"
	"github.com/securellm/securellm-api/internal/db"
	"github.com/securellm/securellm-api/internal/rbac"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	// --- Core: catalog + progress + service ---
	catalog := challenge.NewFSCatalog(cfg.ContentDir)
	var progress challenge.ProgressStore
	switch cfg.ProgressBackend {
	case "memory":
		progress = challenge.NewMemoryProgressStore()
	default:
		progress = challenge.NewSQLProgressStore(dbh)
	}
	svc := challenge.NewService(catalog, progress)

	// --- Auth ---
	authSvc := authmw.NewAuthService(cfg.AuthHMACSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	origins := cfg.CORSOriginsOffline
	if cfg.Mode == config.ModeOnline {
		origins = cfg.CORSOriginsOnline
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.EnableLocalAuth {
		r.Post("/auth/login", authmw.LoginHandler(authSvc, dbh))
	}
	if cfg.EnableGuestAuth {
		r.Post("/auth/guest", auth.GuestLoginHandler(authSvc, dbh, cfg))
	}

	// Protected API (JWT → subject/role in context → RBAC). With auth fully
	// disabled the same routes are served open, under the placeholder user.
	authEnabled := cfg.EnableLocalAuth || cfg.EnableGuestAuth
	passthrough := func(next http.Handler) http.Handler { return next }
	guard := func(perm string) func(http.Handler) http.Handler {
		if !authEnabled {
			return passthrough
		}
		return rbac.Require(perm)
	}
	guardAny := func(perms ...string) func(http.Handler) http.Handler {
		if !authEnabled {
			return passthrough
		}
		return rbac.RequireAny(perms...)
	}

	r.Group(func(pr chi.Router) {
		if authEnabled {
			pr.Use(authmw.JWTMiddleware(authSvc))
			pr.Use(authmw.AttachRoleFromDB(dbh, cfg.Mode == config.ModeOffline))
		}

		pr.With(guard("challenge:view")).
			Get("/challenges", api.ListChallengesHandler(svc, cfg.AnonymousUser))
		pr.With(guard("challenge:view")).
			Get("/challenges/{challengeID}", api.GetChallengeHandler(svc))

		pr.With(guard("question:view")).
			Get("/challenges/{challengeID}/question", api.CurrentQuestionHandler(svc, cfg.AnonymousUser))
		pr.With(guard("answer:submit")).
			Post("/challenges/{challengeID}/submit", api.SubmitAnswerHandler(svc, cfg.AnonymousUser))

		pr.With(guardAny("progress:view-own", "progress:view-all")).
			Get("/progress", api.GetAllProgressHandler(svc, cfg.AnonymousUser))
		pr.With(guardAny("progress:view-own", "progress:view-all")).
			Get("/progress/{challengeID}", api.GetProgressHandler(svc, cfg.AnonymousUser))

		pr.With(guard("users:bulk_upsert")).
			Post("/users/bulk", api.BulkUpsertUsersHandler(dbh))
		pr.With(guard("users:list")).
			Get("/users", api.ListUsersHandler(dbh))
		pr.With(guard("user:change_password")).
			Post("/users/change-password", api.ChangePasswordHandler(dbh))
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (mode=%s, db=%s, content=%s)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver, cfg.ContentDir)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
