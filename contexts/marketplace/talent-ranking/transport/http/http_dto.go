package httptransport

type ListTalentsRequest struct {
	Limit int
}

// TalentDTO is one ranked entry. HourlyRate is always null until rates are
// modelled.
type TalentDTO struct {
	UserID        string   `json:"user_id"`
	Name          string   `json:"name"`
	Skill         string   `json:"skill,omitempty"`
	University    string   `json:"university,omitempty"`
	Rating        float64  `json:"rating"`
	Reviews       int      `json:"reviews"`
	CompletedGigs int      `json:"gigs"`
	HourlyRate    *string  `json:"hourly_rate"`
	AvatarURL     string   `json:"avatar_url,omitempty"`
	Skills        []string `json:"skills"`
}

type ListTalentsResponse struct {
	Items []TalentDTO `json:"items"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
