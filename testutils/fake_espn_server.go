package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed espndata
var espndata embed.FS

type FakeESPNServer struct {
	s *httptest.Server
}

func NewFakeESPNServer() *FakeESPNServer {
	r := chi.NewRouter()
	r.Get("/apis/site/v2/sports/football/college-football/summary", summaryHandler)

	return &FakeESPNServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeESPNServer) Close() {
	f.s.Close()
}

func (f *FakeESPNServer) URL() string {
	return f.s.URL
}

func summaryHandler(w http.ResponseWriter, r *http.Request) {
	event := r.URL.Query().Get("event")
	if event != "401752873" {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	serveESPNFile(w, fmt.Sprintf("summary_%s.json", event))
}

func serveESPNFile(w http.ResponseWriter, name string) {
	b, err := espndata.ReadFile(fmt.Sprintf("espndata/%s", name))
	if err != nil {
		log.Printf("error reading espndata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
