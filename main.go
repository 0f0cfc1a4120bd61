package main

import (
	auth "Recip/internal/auth"
	batch "Recip/internal/calc/batch"
	driver "Recip/internal/calc/driver"
	export "Recip/internal/calc/export"
	gas "Recip/internal/calc/gas"
	importer "Recip/internal/calc/importer"
	performance "Recip/internal/calc/performance"
	report "Recip/internal/calc/report"
	units "Recip/internal/calc/units"
	equipment "Recip/internal/equipment"
	repo "Recip/internal/repo"
	"context"
	"database/sql"
	"fmt"
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
	store := repo.NewPostgresDB(db)
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}
	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Authenv{JWTkey: []byte(tokenKey), Repo: store}
	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	performanceH := &performance.Handler{}
	batchH := &batch.Handler{}
	importerH := &importer.Handler{}
	exportH := &export.Handler{}
	reportH := &report.Handler{}
	gasH := &gas.Handler{}
	unitsH := &units.Handler{}
	driverH := &driver.Handler{}
	equipmentH := &equipment.Handler{Repo: store}

	secureApi.HandleFunc("/tools/performance/calc", performanceH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/performance/batch", batchH.Calc).Methods("POST")
	secureApi.HandleFunc("/tools/performance/import", importerH.Import).Methods("POST")
	secureApi.HandleFunc("/tools/performance/export", exportH.Xlsx).Methods("POST")
	secureApi.HandleFunc("/tools/performance/report", reportH.Generate).Methods("POST")
	secureApi.HandleFunc("/tools/gas/properties", gasH.Properties).Methods("POST")
	secureApi.HandleFunc("/tools/units/convert", unitsH.Convert).Methods("POST")
	secureApi.HandleFunc("/tools/driver/calc", driverH.Calc).Methods("POST")

	secureApi.HandleFunc("/equipment/frames", equipmentH.SaveFrame).Methods("POST")
	secureApi.HandleFunc("/equipment/frames", equipmentH.ListFrames).Methods("GET")
	secureApi.HandleFunc("/equipment/frames/{id:[0-9]+}", equipmentH.GetFrame).Methods("GET")
	secureApi.HandleFunc("/equipment/frames/{id:[0-9]+}", equipmentH.DeleteFrame).Methods("DELETE")
	secureApi.HandleFunc("/equipment/frames/{id:[0-9]+}/performance", equipmentH.Calc).Methods("POST")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	db := auth.InitDB()
	defer db.Close()
	mux := mux.NewRouter()

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Println("Starting server on", addr)
	HandleList(mux, db)
	handler := CORS(mux)

	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
