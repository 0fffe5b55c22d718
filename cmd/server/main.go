// Command entailer-server exposes the entailment Driver over HTTP,
// mirroring the teacher's cmd/server shape: a flag-configured port, a CORS
// middleware, and a single JSON POST endpoint.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-hclog"

	"github.com/entailer/entailer/internal/entailment"
	"github.com/entailer/entailer/internal/folparser"
	"github.com/entailer/entailer/internal/sat"
)

var allowedOrigins = []string{
	"http://localhost:5173",
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func corsMiddleware(next http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if _, ok := allowed[origin]; ok {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		}
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type entailRequest struct {
	Premises           []string `json:"premises"`
	Conclusion         string   `json:"conclusion"`
	ExistentialClosure bool     `json:"existential_closure"`
}

type entailResponse struct {
	Entails      bool     `json:"entails"`
	Countermodel []string `json:"countermodel,omitempty"`
}

func main() {
	port := flag.Int("port", 8080, "port to listen on")
	flag.Parse()

	logger := hclog.New(&hclog.LoggerOptions{Name: "entailer-server", Level: hclog.Info})

	mux := http.NewServeMux()
	mux.HandleFunc("/entails", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var body entailRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		if body.Conclusion == "" {
			writeError(w, http.StatusBadRequest, "missing field: conclusion")
			return
		}

		var opts []entailment.Option
		opts = append(opts, entailment.WithLogger(logger))
		if body.ExistentialClosure {
			opts = append(opts, entailment.WithExistentialClosure())
		}
		driver := entailment.NewDriver(folparser.New(), sat.DPLLSolver{}, opts...)

		result, err := driver.Entails(r.Context(), body.Premises, body.Conclusion)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, entailResponse{
			Entails:      result.Entails,
			Countermodel: result.Countermodel,
		})
	})

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("listening", "addr", addr)
	if err := http.ListenAndServe(addr, corsMiddleware(mux)); err != nil {
		logger.Error("server error", "err", err)
	}
}
