package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/HxshPatil/indian-names-corrector/internal/config"
	nc "github.com/HxshPatil/indian-names-corrector/internal/corrector"
	"github.com/HxshPatil/indian-names-corrector/internal/customdict"
	"github.com/HxshPatil/indian-names-corrector/internal/oracle"
	"github.com/HxshPatil/indian-names-corrector/internal/vocabulary"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	firstNames, err := vocabulary.LoadCSV(cfg.Vocabulary.FirstNames, "firstName")
	if err != nil {
		log.Fatalf("first-name vocabulary: %v", err)
	}
	lastNames, err := vocabulary.LoadCSV(cfg.Vocabulary.LastNames, "lastName")
	if err != nil {
		log.Fatalf("last-name vocabulary: %v", err)
	}
	log.Printf("vocabularies loaded: %d first names, %d last names", firstNames.Len(), lastNames.Len())

	vocabFor := func(category string) *vocabulary.Vocabulary {
		switch category {
		case "first":
			return firstNames
		case "last":
			return lastNames
		}
		return nil
	}

	var store *customdict.Store
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store = customdict.New(client)
		for _, category := range []string{"first", "last"} {
			names, err := store.All(context.Background(), category)
			if err != nil {
				log.Printf("warning: could not load custom %s names: %v", category, err)
				continue
			}
			for _, n := range names {
				vocabFor(category).Add(n)
			}
		}
	}

	opts := []nc.Option{
		nc.WithMaxEditDistance(cfg.Corrector.MaxEditDistance),
		nc.WithTopKCandidates(cfg.Corrector.TopKCandidates),
	}
	if key := cfg.AnthropicAPIKey(); key != "" {
		opts = append(opts, nc.WithOracle(oracle.NewAnthropicClient(
			key, cfg.Oracle.Model, cfg.Oracle.RequestsPerMinute, cfg.OracleTimeout(), slog.Default())))
	} else {
		log.Printf("ANTHROPIC_API_KEY not set, oracle fallback disabled")
	}
	corrector := nc.New(firstNames, lastNames, opts...)

	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/correct", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Name string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid request"})
			return
		}
		corrected, err := corrector.CorrectFullName(r.Context(), req.Name)
		if err != nil {
			if errors.Is(err, nc.ErrEmptyName) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(map[string]string{"error": "please enter a name in 'First Last' format"})
				return
			}
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(nc.Correction{
			Original:  req.Name,
			Corrected: corrected,
			Changed:   corrected != strings.TrimSpace(req.Name),
		})
	})

	mux.HandleFunc("/api/v1/custom-name", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req struct {
			Category string `json:"category"`
			Name     string `json:"name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Name) == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid request"})
			return
		}
		vocab := vocabFor(req.Category)
		if vocab == nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "category must be \"first\" or \"last\""})
			return
		}
		if store == nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{"error": "custom names require redis to be configured"})
			return
		}
		if err := store.Add(r.Context(), req.Category, req.Name); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		vocab.Add(req.Name)
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	mux.HandleFunc("/api/v1/custom-name/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			http.NotFound(w, r)
			return
		}
		rest := strings.TrimPrefix(r.URL.Path, "/api/v1/custom-name/")
		parts := strings.SplitN(rest, "/", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "category and name are required"})
			return
		}
		category, name := parts[0], parts[1]
		vocab := vocabFor(category)
		if vocab == nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "category must be \"first\" or \"last\""})
			return
		}
		if store == nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{"error": "custom names require redis to be configured"})
			return
		}
		if err := store.Remove(r.Context(), category, name); err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
			return
		}
		vocab.Remove(name)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	log.Printf("listening on %s", cfg.HTTPAddr)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, mux))
}
