package domain

import "time"

// Generation identifies one upload-to-index lifecycle instance. Exactly
// one generation is live at a time; processing a new document replaces
// it entirely.
type Generation struct {
	ID        string    `json:"id"`
	Filename  string    `json:"filename"`
	Segments  int       `json:"segments"`
	CreatedAt time.Time `json:"created_at"`
}

// Turn is one question/answer exchange in the conversation history.
type Turn struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
