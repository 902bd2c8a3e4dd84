package commutedash

import "net/http"

type healthResponse struct {
	Status            string `json:"status"`
	RailConfigured    bool   `json:"rail_configured"`
	BusStopConfigured bool   `json:"bus_stop_configured"`
	FallbackCache     bool   `json:"fallback_cache"`
}

func (d *Dashboard) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:            "ok",
		RailConfigured:    d.cfg.Rail.Token != "",
		BusStopConfigured: d.cfg.TfL.BusStopID != "",
		FallbackCache:     d.fallback != nil,
	})
}
