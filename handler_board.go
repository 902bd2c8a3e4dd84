package commutedash

import (
	"net/http"
)

var boardPage = parseBoardTemplate()

type pageData struct {
	Snapshot
	SegmentOrder []string
}

func (d *Dashboard) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	data := pageData{
		Snapshot:     d.Refresh(r.Context()),
		SegmentOrder: []string{"morning", "midday", "afternoon", "evening"},
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := boardPage.Execute(w, data); err != nil {
		d.log.Error().Err(err).Msg("template render failed")
	}
}
