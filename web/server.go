package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/unrolled/render"
	"github.com/victorres11/football-data-adhoc/controller"
	"github.com/victorres11/football-data-adhoc/model"
)

//go:embed templates
var templates embed.FS

type Server struct {
	server *http.Server
}

func NewServer(port int, ctrl controller.C) (*Server, error) {
	render := newRender()
	router := getRouter(ctrl, render)

	s := &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.Fatalf("fatal error shutting down server: %v", err)
		}
	}()

	log.Printf("web server is listening on %s", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("fatal error with server: %v", err)
	}
}

func newRender() *render.Render {
	return render.New(render.Options{
		Directory: "templates",
		Layout:    "layout",
		FileSystem: &render.EmbedFileSystem{
			FS: templates,
		},
		Funcs: []template.FuncMap{
			{
				"pct":   pctFormatter,
				"avg":   avgFormatter,
				"down":  downFormatter,
				"yards": yardsFormatter,
				"date":  dateFormatter,
				"mark":  markFormatter,
			},
		},
	})
}

// pctFormatter renders a success rate like 47.4%, or an em dash when the
// rate is undefined because there were no attempts.
func pctFormatter(rate *float64) string {
	if rate == nil {
		return "—"
	}
	return fmt.Sprintf("%.1f%%", *rate*100)
}

// avgFormatter renders a per-attempt average to one decimal place, or an em
// dash when there were no attempts.
func avgFormatter(v *float64) string {
	if v == nil {
		return "—"
	}
	return fmt.Sprintf("%.1f", *v)
}

func downFormatter(d model.Down) string {
	return d.String()
}

func yardsFormatter(y int) string {
	if y > 0 {
		return fmt.Sprintf("+%d", y)
	}
	return fmt.Sprintf("%d", y)
}

func dateFormatter(t time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}
	return t.Format("Jan 2, 2006")
}

func markFormatter(successful bool) string {
	if successful {
		return "✓"
	}
	return "✗"
}
