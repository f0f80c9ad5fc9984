package main

import (
	auth "Bearing/internal/auth"
	footing "Bearing/internal/calc/footing"
	batch "Bearing/internal/calc/premium/batch"
	importer "Bearing/internal/calc/premium/importer"
	sizing "Bearing/internal/calc/premium/sizing"
	report "Bearing/internal/calc/report"
	repo "Bearing/internal/repo"
	resultlog "Bearing/internal/resultlog"
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	userRepo := repo.NewPostgresUserDB(db)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, relying on environment")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: userRepo}
	logs := resultlog.NewRegistry()

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	footingH := &footing.Handler{}
	logH := &resultlog.Handler{Logs: logs}
	batchH := &batch.Handler{}
	importH := &importer.Handler{}
	sizingH := &sizing.Handler{}
	reportH := &report.Handler{Logs: logs}

	secureApi.HandleFunc("/tools/footing/calc", footingH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/footing/save", logH.Save).Methods("POST")
	secureApi.HandleFunc("/tools/footing/log", logH.List).Methods("GET")
	secureApi.HandleFunc("/tools/footing/log", logH.Clear).Methods("DELETE")
	secureApi.HandleFunc("/tools/footing/export", logH.Export).Methods("GET")

	secureApi.HandleFunc("/tools/footing/batch", batchH.Footing).Methods("POST")
	secureApi.HandleFunc("/tools/footing/import", importH.Footing).Methods("POST")
	secureApi.HandleFunc("/tools/footing/size", sizingH.Footing).Methods("POST")
	secureApi.HandleFunc("/tools/footing/report", reportH.Generate).Methods("POST")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()
	log.Println("Starting server on :443")
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    ":443",
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServeTLS("server.crt", "server.key"); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
