package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

// CFBDTestKey is the API key the fake CFBD server accepts.
const CFBDTestKey = "test-cfbd-key"

//go:embed cfbddata
var cfbddata embed.FS

type FakeCFBDServer struct {
	s *httptest.Server
}

func NewFakeCFBDServer() *FakeCFBDServer {
	r := chi.NewRouter()
	r.Use(requireBearerToken)
	r.Get("/games", cfbdGamesHandler)
	r.Get("/plays", cfbdPlaysHandler)

	return &FakeCFBDServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeCFBDServer) Close() {
	f.s.Close()
}

func (f *FakeCFBDServer) URL() string {
	return f.s.URL
}

func requireBearerToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != fmt.Sprintf("Bearer %s", CFBDTestKey) {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func cfbdGamesHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("year") == "2025" && r.URL.Query().Get("team") == "Maryland" {
		serveCFBDFile(w, "games.json")
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("[]"))
}

func cfbdPlaysHandler(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("gameId")
	if gameID == "401752873" {
		serveCFBDFile(w, fmt.Sprintf("plays_%s.json", gameID))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("[]"))
}

func serveCFBDFile(w http.ResponseWriter, name string) {
	b, err := cfbddata.ReadFile(fmt.Sprintf("cfbddata/%s", name))
	if err != nil {
		log.Printf("error reading cfbddata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
