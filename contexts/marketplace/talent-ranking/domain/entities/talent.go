package entities

// TalentRow is one reviewed student joined with its profile and completed
// gig count, before ranking.
type TalentRow struct {
	UserID        string
	FirstName     string
	LastName      string
	AvatarURL     string
	University    string
	AverageRating float64
	ReviewCount   int
	CompletedGigs int
}

// Talent is a ranked entry of the public feed.
type Talent struct {
	UserID        string
	Name          string
	PrimarySkill  string
	University    string
	AvatarURL     string
	Rating        float64
	Reviews       int
	CompletedGigs int
	Skills        []string
	// HourlyRate is not modelled yet and is always nil.
	HourlyRate *string
}
