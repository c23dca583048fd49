package entities

// Metadata this struct contains extra information about a report generated in a session
// + SessionID: ID of the session iteration that produced the data
// + City: city which belongs the data
// + Month: month filter applied, "all" if none
// + Day: day filter applied, "all" if none
type Metadata struct {
	SessionID string `json:"session_id"`
	City      string `json:"city"`
	Month     string `json:"month"`
	Day       string `json:"day"`
}

func NewMetadata(sessionID string, city string, month string, day string) Metadata {
	return Metadata{
		SessionID: sessionID,
		City:      city,
		Month:     month,
		Day:       day,
	}
}

func (m Metadata) GetSessionID() string {
	return m.SessionID
}

func (m Metadata) GetCity() string {
	return m.City
}
