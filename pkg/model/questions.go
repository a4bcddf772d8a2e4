package model

// Question is one catalog entry. Answer may carry HTML.
type Question struct {
	ID        int64  `json:"id" db:"id"`
	Question  string `json:"question" db:"question"`
	Answer    string `json:"answer" db:"answer"`
	Keyword   string `json:"keyword" db:"keyword"`
	Frequency int    `json:"frequency" db:"frequency"`
	Top       bool   `json:"top" db:"top"`
}

type ListQuestionsQuery struct {
	Keyword string `form:"keyword"`
}

type KeywordsRes struct {
	Keywords []string `json:"keywords"`
}

type QuestionsRes struct {
	Questions []Question `json:"questions"`
	Total     int        `json:"total"`
	MockMode  bool       `json:"mock_mode"`
	LoadError string     `json:"load_error,omitempty"`
}
