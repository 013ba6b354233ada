// Package transport adapta os handlers (formato API Gateway proxy) para um
// servidor HTTP local, usado pelo emulador de desenvolvimento.
package transport

import (
	"context"
	"io"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/raywall/tenant-auth-service/pkg/handlers"
)

// proxyFunc é a assinatura comum dos três handlers.
type proxyFunc func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// NewRouter monta as rotas locais equivalentes às três funções Lambda.
func NewRouter(h *handlers.Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/register", proxy(h.Register)).Methods(http.MethodPost)
	r.HandleFunc("/login", proxy(h.Login)).Methods(http.MethodPost)
	r.HandleFunc("/validate", proxy(h.ValidateToken)).Methods(http.MethodPost)
	r.PathPrefix("/").HandlerFunc(preflight).Methods(http.MethodOptions)
	return r
}

// proxy converte http.Request -> evento proxy e escreve o envelope de volta.
func proxy(fn proxyFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
			return
		}

		headers := make(map[string]string, len(r.Header))
		for name, values := range r.Header {
			if len(values) > 0 {
				headers[name] = values[0]
			}
		}

		resp, err := fn(r.Context(), events.APIGatewayProxyRequest{
			HTTPMethod: r.Method,
			Path:       r.URL.Path,
			Headers:    headers,
			Body:       string(body),
		})
		if err != nil {
			// os handlers convertem toda falha em envelope e não retornam erro
			log.Error().Err(err).Msg("handler returned error")
			http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
			return
		}

		for name, value := range resp.Headers {
			w.Header().Set(name, value)
		}
		w.WriteHeader(resp.StatusCode)
		_, _ = io.WriteString(w, resp.Body)
	}
}

// preflight responde OPTIONS com o mesmo envelope CORS dos handlers.
func preflight(w http.ResponseWriter, r *http.Request) {
	for name, value := range handlers.CORSHeaders() {
		w.Header().Set(name, value)
	}
	w.WriteHeader(http.StatusNoContent)
}
