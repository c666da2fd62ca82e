package attendance

import "time"

type SessionResponse struct {
	ID           string   `json:"id"`
	EmployeeID   string   `json:"employee_id"`
	CheckIn      string   `json:"check_in"`
	CheckOut     *string  `json:"check_out,omitempty"`
	WorkingHours *float64 `json:"working_hours,omitempty"`
	CreatedAt    string   `json:"created_at"`
}

func NewSessionResponse(s Session) SessionResponse {
	return SessionResponse{
		ID:           s.ID,
		EmployeeID:   s.EmployeeID,
		CheckIn:      s.CheckIn.Format(time.RFC3339),
		CheckOut:     timePtrToString(s.CheckOut),
		WorkingHours: s.WorkingHours,
		CreatedAt:    s.CreatedAt.Format(time.RFC3339),
	}
}

func NewSessionResponses(sessions []Session) []SessionResponse {
	responses := make([]SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		responses = append(responses, NewSessionResponse(s))
	}
	return responses
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}
