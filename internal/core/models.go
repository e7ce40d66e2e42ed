package core

import "time"

type CredentialsMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Identity is the decoded token subject used for ownership checks.
type Identity struct {
	ID       string
	Username string
}

type AuthorRecord struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type GameRecord struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	HTML      string       `json:"html"`
	Author    AuthorRecord `json:"author"`
	Published bool         `json:"published"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

type NewGameMessage struct {
	Name string
	HTML string
}

// GameUpdateMessage carries optional fields; nil leaves the stored value unchanged.
type GameUpdateMessage struct {
	Name *string
	HTML *string
}
