package model

// InterviewQuestion is a question asked during a recorded interview.
type InterviewQuestion struct {
	ID   int64  `json:"id" db:"id"`
	Text string `json:"text" db:"text"`
}

// Interview is a historical interview record. Read-only.
type Interview struct {
	ID          int64               `json:"id" db:"id"`
	Date        string              `json:"date" db:"date"`
	Client      string              `json:"client" db:"client"`
	Vendor      string              `json:"vendor" db:"vendor"`
	Interviewer string              `json:"interviewer" db:"interviewer"`
	Candidate   string              `json:"candidate" db:"candidate"`
	Position    string              `json:"position" db:"position"`
	Questions   []InterviewQuestion `json:"questions" db:"questions"`
}

type ListInterviewQuery struct {
	Position string `form:"position"`
	Client   string `form:"client"`
}

type InterviewsRes struct {
	Interviews []Interview `json:"interviews"`
	Showing    int         `json:"showing"`
	Total      int         `json:"total"`
	LoadError  string      `json:"load_error,omitempty"`
}

type InterviewFiltersRes struct {
	Positions []string `json:"positions"`
	Clients   []string `json:"clients"`
}
