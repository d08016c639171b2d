package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"projection-engine/cache"
	"projection-engine/projection"
	"projection-engine/props"
	"projection-engine/providers"
)

type Server struct {
	store      *providers.Store
	cache      *cache.Client
	engine     *projection.Engine
	slate      *props.SlateEngine
	router     *mux.Router
	httpServer *http.Server
	config     *Config
}

type Config struct {
	Port           string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	Workers        int
	SimulationRuns int
	AllowedOrigins []string
}

func NewConfig() *Config {
	workers := runtime.NumCPU()
	if envWorkers := os.Getenv("WORKERS"); envWorkers != "" {
		fmt.Sscanf(envWorkers, "%d", &workers)
	}

	simulationRuns := 20000
	if envRuns := os.Getenv("SIMULATION_RUNS"); envRuns != "" {
		fmt.Sscanf(envRuns, "%d", &simulationRuns)
	}

	redisDB := 0
	if envDB := os.Getenv("REDIS_DB"); envDB != "" {
		fmt.Sscanf(envDB, "%d", &redisDB)
	}

	origins := []string{"http://localhost:3000", "http://localhost:8080"}
	if envOrigins := os.Getenv("ALLOWED_ORIGINS"); envOrigins != "" {
		origins = strings.Split(envOrigins, ",")
	}

	return &Config{
		Port:           getEnv("PORT", "8082"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "props_user"),
		DBPassword:     getEnv("DB_PASSWORD", "props_pass"),
		DBName:         getEnv("DB_NAME", "pitcher_props"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		RedisDB:        redisDB,
		Workers:        workers,
		SimulationRuns: simulationRuns,
		AllowedOrigins: origins,
	}
}

func NewServer(config *Config) (*Server, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	dbURL := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s",
		config.DBUser, config.DBPassword, config.DBHost, config.DBPort, config.DBName)

	store, err := providers.Connect(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	redisClient := cache.New(config.RedisAddr, config.RedisPassword, config.RedisDB)
	if err := redisClient.Ping(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	closeAll := func() {
		store.Close()
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing redis client: %v", err)
		}
	}

	pitchers, err := store.LoadPitcherIndex(ctx)
	if err != nil {
		closeAll()
		return nil, fmt.Errorf("failed to load pitcher ratings: %w", err)
	}
	batters, err := store.LoadBatterIndex(ctx)
	if err != nil {
		closeAll()
		return nil, fmt.Errorf("failed to load batter splits: %w", err)
	}
	trends, err := store.LoadTrendTables(ctx)
	if err != nil {
		closeAll()
		return nil, fmt.Errorf("failed to load team trends: %w", err)
	}
	framing, err := store.LoadFramingTable(ctx)
	if err != nil {
		closeAll()
		return nil, fmt.Errorf("failed to load catcher framing: %w", err)
	}

	engine := projection.NewEngine(redisClient, redisClient, pitchers, batters, framing, trends)
	engine.SimRuns = config.SimulationRuns

	s := &Server{
		store:  store,
		cache:  redisClient,
		engine: engine,
		slate:  props.NewSlateEngine(engine, store, config.Workers),
		config: config,
		router: mux.NewRouter(),
	}

	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("/health", s.healthHandler).Methods("GET")
	s.router.HandleFunc("/metrics", s.metricsHandler).Methods("GET")

	// Projection endpoints
	s.router.HandleFunc("/project", s.projectHandler).Methods("POST")
	s.router.HandleFunc("/project/daily", s.projectDailyHandler).Methods("POST")
	s.router.HandleFunc("/project/run/{id}/status", s.runStatusHandler).Methods("GET")
	s.router.HandleFunc("/project/run/{id}/result", s.runResultHandler).Methods("GET")

	s.router.Use(s.loggingMiddleware)
	s.router.Use(s.recoveryMiddleware)
}

func (s *Server) Start() error {
	c := cors.New(cors.Options{
		AllowedOrigins: s.config.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         86400,
	})

	s.httpServer = &http.Server{
		Addr:         ":" + s.config.Port,
		Handler:      c.Handler(s.router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting Projection Engine on port %s with %d workers",
		s.config.Port, s.config.Workers)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Println("Shutting down Projection Engine...")

	s.store.Close()
	if err := s.cache.Close(); err != nil {
		log.Printf("Error closing redis client: %v", err)
	}

	return s.httpServer.Shutdown(ctx)
}

// Handlers

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	health := map[string]interface{}{
		"status":   "healthy",
		"time":     time.Now().UTC(),
		"workers":  s.config.Workers,
		"database": "connected",
		"redis":    "connected",
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.store.Ping(ctx); err != nil {
		health["database"] = "disconnected"
		health["status"] = "unhealthy"
	}
	if err := s.cache.Ping(ctx); err != nil {
		health["redis"] = "disconnected"
		health["status"] = "unhealthy"
	}
	if health["status"] == "unhealthy" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	writeJSON(w, health)
}

// ProjectRequest is a single projection query, optionally carrying the
// book's line for an edge read.
type ProjectRequest struct {
	projection.Request
	Line float64 `json:"line,omitempty"`
}

type ProjectResponse struct {
	Projection interface{} `json:"projection"`
	Edge       *props.Edge `json:"edge,omitempty"`
}

func (s *Server) projectHandler(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if req.Pitcher == "" || req.Opponent == "" {
		http.Error(w, "pitcher and opponent are required", http.StatusBadRequest)
		return
	}

	result, err := s.engine.Project(r.Context(), req.Request)
	if err != nil {
		if errors.Is(err, projection.ErrNotFound) {
			appMetrics.IncrementNotFound()
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		log.Printf("Projection failed for %s: %v", req.Pitcher, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	appMetrics.IncrementProjections()

	response := ProjectResponse{Projection: result}
	if req.Line > 0 {
		edge := props.CalculateEdge(result.Mean, req.Line)
		response.Edge = &edge
	}

	writeJSON(w, response)
}

type DailySlateRequest struct {
	Props []props.Prop `json:"props"`
}

type DailySlateResponse struct {
	RunID      string    `json:"run_id"`
	Status     string    `json:"status"`
	PropsCount int       `json:"props_count"`
	Message    string    `json:"message"`
	StartedAt  time.Time `json:"started_at"`
}

func (s *Server) projectDailyHandler(w http.ResponseWriter, r *http.Request) {
	var req DailySlateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Props) == 0 {
		http.Error(w, "props list is empty", http.StatusBadRequest)
		return
	}
	for _, p := range req.Props {
		if p.Pitcher == "" || p.Opponent == "" {
			http.Error(w, "every prop needs a pitcher and opponent", http.StatusBadRequest)
			return
		}
	}

	runID, err := s.slate.Start(req.Props)
	if err != nil {
		log.Printf("Failed to start slate run: %v", err)
		http.Error(w, "Failed to start slate run", http.StatusInternalServerError)
		return
	}

	writeJSON(w, DailySlateResponse{
		RunID:      runID,
		Status:     "started",
		PropsCount: len(req.Props),
		Message:    fmt.Sprintf("Projecting %d props", len(req.Props)),
		StartedAt:  time.Now().UTC(),
	})
}

func (s *Server) runStatusHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	runID := vars["id"]

	status, err := s.slate.Status(r.Context(), runID)
	if err != nil {
		if errors.Is(err, projection.ErrNotFound) {
			http.Error(w, "Run not found", http.StatusNotFound)
			return
		}
		log.Printf("Failed to load run %s: %v", runID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// The status view stays light; results have their own endpoint.
	status.Results = nil
	writeJSON(w, status)
}

type RunResultResponse struct {
	RunID   string             `json:"run_id"`
	Status  string             `json:"status"`
	Results []props.PropResult `json:"results"`
}

func (s *Server) runResultHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	runID := vars["id"]

	status, err := s.slate.Status(r.Context(), runID)
	if err != nil {
		if errors.Is(err, projection.ErrNotFound) {
			http.Error(w, "Run not found", http.StatusNotFound)
			return
		}
		log.Printf("Failed to load run %s: %v", runID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if status.Status == "running" {
		http.Error(w, "Run not yet complete", http.StatusAccepted)
		return
	}

	results, err := s.slate.Results(r.Context(), runID)
	if err != nil {
		log.Printf("Failed to load results for run %s: %v", runID, err)
		http.Error(w, "Results not available", http.StatusInternalServerError)
		return
	}

	writeJSON(w, RunResultResponse{
		RunID:   runID,
		Status:  status.Status,
		Results: results,
	})
}

// Middleware

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lrw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(lrw, r)

		duration := time.Since(start)
		appMetrics.IncrementRequests()
		appMetrics.AddResponseTime(duration)
		if lrw.statusCode >= 500 {
			appMetrics.IncrementErrors()
		}
		log.Printf("%s %s %d %v", r.Method, r.RequestURI, lrw.statusCode, duration)
	})
}

func (s *Server) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("Panic recovered: %v", err)
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	config := NewConfig()

	server, err := NewServer(config)
	if err != nil {
		log.Fatal("Failed to create server:", err)
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Fatal("Server shutdown failed:", err)
		}
		log.Println("Server shutdown complete")
	}()

	if err := server.Start(); err != nil && err != http.ErrServerClosed {
		log.Fatal("Server failed to start:", err)
	}
}
