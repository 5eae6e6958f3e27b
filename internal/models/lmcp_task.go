package models

// LMCPTask is a labor/capacity planning adjustment as stored in lmcp_task.
// Type maps to the reserved-word column "type".
type LMCPTask struct {
	ID                     int     `json:"id"`
	StationCode            string  `json:"stationCode"`
	OfdDate                string  `json:"ofdDate"`
	Ead                    string  `json:"ead"`
	CurrentLmcp            int     `json:"currentLmcp"`
	CurrentAtrops          int     `json:"currentAtrops"`
	Pdr                    int     `json:"pdr"`
	Requested              int     `json:"requested"`
	SimLink                string  `json:"simLink"`
	Value                  int     `json:"value"`
	StartTime              *string `json:"startTime"`
	ExportTime             *string `json:"exportTime"`
	EndTime                *string `json:"endTime"`
	Source                 string  `json:"source"`
	Namespace              string  `json:"namespace"`
	Type                   string  `json:"type"`
	WaveGroupName          string  `json:"waveGroupName"`
	ShipOptionCategory     string  `json:"shipOptionCategory"`
	AddressType            string  `json:"addressType"`
	PackageType            string  `json:"packageType"`
	Cluster                string  `json:"cluster"`
	FulfillmentNetworkType string  `json:"fulfillmentNetworkType"`
	VolumeType             string  `json:"volumeType"`
	Week                   int     `json:"week"`
	F                      string  `json:"f"`
}

// NewLMCPTask is the payload for inserting an LMCP task (no id)
type NewLMCPTask struct {
	StationCode            string  `json:"stationCode"`
	OfdDate                string  `json:"ofdDate"`
	Ead                    string  `json:"ead"`
	CurrentLmcp            int     `json:"currentLmcp"`
	CurrentAtrops          int     `json:"currentAtrops"`
	Pdr                    int     `json:"pdr"`
	Requested              int     `json:"requested"`
	SimLink                string  `json:"simLink"`
	Value                  int     `json:"value"`
	StartTime              *string `json:"startTime"`
	ExportTime             *string `json:"exportTime"`
	EndTime                *string `json:"endTime"`
	Source                 string  `json:"source"`
	Namespace              string  `json:"namespace"`
	Type                   string  `json:"type"`
	WaveGroupName          string  `json:"waveGroupName"`
	ShipOptionCategory     string  `json:"shipOptionCategory"`
	AddressType            string  `json:"addressType"`
	PackageType            string  `json:"packageType"`
	Cluster                string  `json:"cluster"`
	FulfillmentNetworkType string  `json:"fulfillmentNetworkType"`
	VolumeType             string  `json:"volumeType"`
	Week                   int     `json:"week"`
	F                      string  `json:"f"`
}

// ToNew projects the stored row back onto its insert payload
func (t LMCPTask) ToNew() NewLMCPTask {
	return NewLMCPTask{
		StationCode:            t.StationCode,
		OfdDate:                t.OfdDate,
		Ead:                    t.Ead,
		CurrentLmcp:            t.CurrentLmcp,
		CurrentAtrops:          t.CurrentAtrops,
		Pdr:                    t.Pdr,
		Requested:              t.Requested,
		SimLink:                t.SimLink,
		Value:                  t.Value,
		StartTime:              t.StartTime,
		ExportTime:             t.ExportTime,
		EndTime:                t.EndTime,
		Source:                 t.Source,
		Namespace:              t.Namespace,
		Type:                   t.Type,
		WaveGroupName:          t.WaveGroupName,
		ShipOptionCategory:     t.ShipOptionCategory,
		AddressType:            t.AddressType,
		PackageType:            t.PackageType,
		Cluster:                t.Cluster,
		FulfillmentNetworkType: t.FulfillmentNetworkType,
		VolumeType:             t.VolumeType,
		Week:                   t.Week,
		F:                      t.F,
	}
}
