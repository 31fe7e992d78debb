package web

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
	"github.com/victorres11/football-data-adhoc/controller"
	"github.com/victorres11/football-data-adhoc/db"
)

func rootHandler(_ controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/games", http.StatusSeeOther)
	}
}

func gamesHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		games, err := ctrl.ListGames(r.Context())
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		render.HTML(w, http.StatusOK, "games", games)
	}
}

func analyzeGameHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		gameID := r.FormValue("event")
		team := r.FormValue("team")
		if gameID == "" || team == "" {
			render.HTML(w, http.StatusBadRequest, "400", "both an event id and a team are required")
			return
		}

		a, err := ctrl.AnalyzeGame(r.Context(), gameID, team)
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		http.Redirect(w, r, gameURL(a.Game.ID, a.Team), http.StatusSeeOther)
	}
}

func gameHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, "gameID")
		team, err := resolveTeam(r, ctrl, gameID)
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		a, err := ctrl.GetGameAnalysis(r.Context(), gameID, team)
		if err != nil {
			if errors.Is(err, db.ErrGameNotFound) {
				render.HTML(w, http.StatusNotFound, "404", "game not found")
			} else {
				render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			}
			return
		}

		render.HTML(w, http.StatusOK, "game", a)
	}
}

func snapshotHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, "gameID")
		team, err := resolveTeam(r, ctrl, gameID)
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("analysis_%s.json", gameID)))
		if err := ctrl.ExportSnapshot(r.Context(), w, gameID, team); err != nil {
			render.Text(w, http.StatusInternalServerError, err.Error())
		}
	}
}

func importSnapshotHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Parse the multipart form. 5 << 20 specifies a maximum upload of 5 MB files.
		r.ParseMultipartForm(5 << 20)

		file, handler, err := r.FormFile("snapshot-file")
		if err != nil {
			render.HTML(w, http.StatusBadRequest, "400", err.Error())
			return
		}
		defer file.Close()

		if handler.Header.Get("Content-Type") != "application/json" {
			msg := fmt.Sprintf("Only JSON snapshots are supported. Got %s", handler.Header.Get("Content-Type"))
			render.HTML(w, http.StatusBadRequest, "400", msg)
			return
		}

		a, err := ctrl.ImportSnapshot(r.Context(), file)
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		http.Redirect(w, r, gameURL(a.Game.ID, a.Team), http.StatusSeeOther)
	}
}

func seasonHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team := r.URL.Query().Get("team")
		if team == "" {
			render.HTML(w, http.StatusBadRequest, "400", "a team is required")
			return
		}

		summary, err := ctrl.GetSeasonSummary(r.Context(), team)
		if err != nil {
			render.HTML(w, http.StatusInternalServerError, "500", err.Error())
			return
		}

		data := map[string]any{
			"team":    team,
			"summary": summary,
		}
		render.HTML(w, http.StatusOK, "season", data)
	}
}

func apiGameHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gameID := chi.URLParam(r, "gameID")
		team, err := resolveTeam(r, ctrl, gameID)
		if err != nil {
			render.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		a, err := ctrl.GetGameAnalysis(r.Context(), gameID, team)
		if err != nil {
			if errors.Is(err, db.ErrGameNotFound) {
				render.JSON(w, http.StatusNotFound, map[string]string{"error": "game not found"})
			} else {
				render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			}
			return
		}

		render.JSON(w, http.StatusOK, a)
	}
}

func apiSeasonHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team := chi.URLParam(r, "team")

		summary, err := ctrl.GetSeasonSummary(r.Context(), team)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			return
		}

		render.JSON(w, http.StatusOK, summary)
	}
}

func importSeasonHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render.Text(w, http.StatusBadRequest, err.Error())
			return
		}

		year, err := strconv.Atoi(r.FormValue("year"))
		if err != nil {
			render.Text(w, http.StatusBadRequest, fmt.Sprintf("error parsing year: %v", err))
			return
		}
		team := r.FormValue("team")
		if team == "" {
			render.Text(w, http.StatusBadRequest, "a team is required")
			return
		}

		imported, err := ctrl.ImportSeason(r.Context(), year, team)
		if err != nil {
			render.Text(w, http.StatusInternalServerError, fmt.Sprintf("error importing season: %v", err))
			return
		}

		render.Text(w, http.StatusOK, fmt.Sprintf("imported %d games for %s", imported, team))
	}
}

// resolveTeam picks the team for a report from the query string, falling back
// to the only analyzed team of the game when the parameter is missing.
func resolveTeam(r *http.Request, ctrl controller.C, gameID string) (string, error) {
	team := r.URL.Query().Get("team")
	if team != "" {
		return team, nil
	}

	teams, err := ctrl.ListAnalyzedTeams(r.Context(), gameID)
	if err != nil {
		return "", fmt.Errorf("error listing analyzed teams: %w", err)
	}
	if len(teams) != 1 {
		return "", fmt.Errorf("a team parameter is required for game %s", gameID)
	}
	return teams[0], nil
}

func gameURL(gameID, team string) string {
	return fmt.Sprintf("/games/%s?team=%s", gameID, url.QueryEscape(team))
}
