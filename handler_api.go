package commutedash

import "net/http"

// The API handlers mirror the page: every call triggers a fresh fetch of
// just that source, degrading to cached/empty/default data on upstream
// failure.

func (d *Dashboard) handleTrains(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, d.Trains(r.Context()))
}

func (d *Dashboard) handleTubes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, d.Tubes(r.Context()))
}

func (d *Dashboard) handleBuses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, d.Buses(r.Context()))
}

func (d *Dashboard) handleWeather(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, d.Weather(r.Context()))
}
