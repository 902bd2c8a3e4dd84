package tfl

// Line is one entry of the /Line/Mode/{modes}/Status response. Only the
// first status entry is consulted downstream.
type Line struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	ModeName     string       `json:"modeName"`
	LineStatuses []LineStatus `json:"lineStatuses"`
}

// LineStatus is one status entry for a line.
type LineStatus struct {
	StatusSeverity            int    `json:"statusSeverity"`
	StatusSeverityDescription string `json:"statusSeverityDescription"`
	Reason                    string `json:"reason"`
}

// Arrival is one entry of the /StopPoint/{id}/Arrivals response.
// TimeToStation is seconds until arrival and drives both ordering and the
// derived whole-minutes value.
type Arrival struct {
	VehicleID       string `json:"vehicleId"`
	LineName        string `json:"lineName"`
	DestinationName string `json:"destinationName"`
	Towards         string `json:"towards"`
	StationName     string `json:"stationName"`
	TimeToStation   int    `json:"timeToStation"`
}
