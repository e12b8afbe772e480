package view

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"

	"healthsync/internal/app/server/api/http/records"
	"healthsync/internal/domain/event"
	"healthsync/internal/domain/sharing"
)

type eventRow struct {
	Title       string
	Date        string
	Description string
}

type travelRow struct {
	Location string
	Year     string
	Notes    string
}

type pageData struct {
	Error        string
	Name         string
	Age          string
	Height       string
	Weight       string
	DoctorVisits []eventRow
	Medications  []eventRow
	Diseases     []eventRow
	RiskFactors  string
	Travel       []travelRow
}

// Handler renders a shared snapshot as a read-only HTML page.
func Handler(log *slog.Logger) http.HandlerFunc {
	log = log.With("component", "view.Handler")

	return func(w http.ResponseWriter, r *http.Request) {
		data := chi.URLParam(r, "data")

		snap, err := sharing.Decode(data)
		if err != nil {
			log.Warn("failed to decode share link", "error", err)
			w.WriteHeader(http.StatusUnprocessableEntity)
			_ = pageTmpl.Execute(w, pageData{Error: records.CorruptLinkMessage})
			return
		}

		pd := pageData{
			Name:         orNA(snap.PersonalInfo.Name),
			Age:          orNA(snap.PersonalInfo.Age),
			Height:       orNA(snap.PersonalInfo.Height),
			Weight:       orNA(snap.PersonalInfo.Weight),
			DoctorVisits: rows(event.FilterByType(snap.Timeline, event.TypeDoctorVisit)),
			Medications:  rows(event.FilterByType(snap.Timeline, event.TypeMedication)),
			Diseases:     rows(event.FilterByType(snap.Timeline, event.TypeDisease)),
		}

		var fh struct {
			Analysis struct {
				RiskFactors string `json:"riskFactors"`
			} `json:"analysis"`
		}
		if len(snap.FamilyHistory) > 0 {
			if err := json.Unmarshal(snap.FamilyHistory, &fh); err == nil {
				pd.RiskFactors = fh.Analysis.RiskFactors
			}
		}

		for _, raw := range snap.TravelHistory {
			var t struct {
				Location string `json:"location"`
				Year     string `json:"year"`
				Notes    string `json:"notes"`
			}
			if err := json.Unmarshal(raw, &t); err != nil {
				continue
			}
			pd.Travel = append(pd.Travel, travelRow{Location: t.Location, Year: t.Year, Notes: t.Notes})
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pageTmpl.Execute(w, pd); err != nil {
			log.Error("failed to render page", "error", err)
		}
	}
}

func rows(events []event.Event) []eventRow {
	out := make([]eventRow, 0, len(events))
	for _, e := range events {
		out = append(out, eventRow{Title: e.Title, Date: e.Date, Description: e.Description})
	}
	return out
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}
