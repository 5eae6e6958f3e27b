package models

// Station is a facility identified by its unique, case-sensitive code.
// Stations are the parent rows for every task table.
type Station struct {
	StationCode string `json:"stationCode"`
}

// NewStation is the payload for inserting a station
type NewStation struct {
	StationCode string `json:"stationCode"`
}

// ToNew projects the stored row back onto its insert payload
func (s Station) ToNew() NewStation {
	return NewStation{StationCode: s.StationCode}
}
