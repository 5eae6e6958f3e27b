package models

// SameDayTask is a same-day routing planning record as stored in
// same_day_route_task.
//
// The date columns are non-null text in the current schema, but rows written
// before the same_day_dates_not_null migration may still carry empty values,
// and the UI contract allows null, so they are pointers here.
//
// External names are part of the UI contract; note the PascalCase
// SameDayType, BufferPercent and RouteCount keys.
type SameDayTask struct {
	ID                int     `json:"id"`
	StationCode       string  `json:"stationCode"`
	StartTime         *string `json:"startTime"`
	TbaSubmittedCount *int    `json:"tbaSubmittedCount"`
	DpoCompleteTime   *string `json:"dpoCompleteTime"`
	EndTime           *string `json:"endTime"`
	SameDayType       string  `json:"SameDayType"`
	BufferPercent     int     `json:"BufferPercent"`
	DpoLink           string  `json:"dpoLink"`
	TbaRoutedCount    int     `json:"tbaRoutedCount"`
	RouteCount        int     `json:"RouteCount"`
}

// NewSameDayTask is the payload for inserting a same-day task (no id)
type NewSameDayTask struct {
	StationCode       string `json:"stationCode"`
	StartTime         string `json:"startTime"`
	TbaSubmittedCount *int   `json:"tbaSubmittedCount"`
	DpoCompleteTime   string `json:"dpoCompleteTime"`
	EndTime           string `json:"endTime"`
	SameDayType       string `json:"SameDayType"`
	BufferPercent     int    `json:"BufferPercent"`
	DpoLink           string `json:"dpoLink"`
	TbaRoutedCount    int    `json:"tbaRoutedCount"`
	RouteCount        int    `json:"RouteCount"`
}

// ToNew projects the stored row back onto its insert payload.
// Null date columns project to the empty string.
func (t SameDayTask) ToNew() NewSameDayTask {
	return NewSameDayTask{
		StationCode:       t.StationCode,
		StartTime:         derefString(t.StartTime),
		TbaSubmittedCount: t.TbaSubmittedCount,
		DpoCompleteTime:   derefString(t.DpoCompleteTime),
		EndTime:           derefString(t.EndTime),
		SameDayType:       t.SameDayType,
		BufferPercent:     t.BufferPercent,
		DpoLink:           t.DpoLink,
		TbaRoutedCount:    t.TbaRoutedCount,
		RouteCount:        t.RouteCount,
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
