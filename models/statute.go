package models

// StatuteEntry represents one row of the statute dataset
// (URL, Description, Offense, Punishment, Cognizable, Bailable, Court).
// Entries are loaded once at startup and never mutated.
type StatuteEntry struct {
	URL         string `json:"url"`
	Description string `json:"description"`
	Offense     string `json:"offense"`
	Punishment  string `json:"punishment"`
	Cognizable  string `json:"cognizable"`
	Bailable    string `json:"bailable"`
	Court       string `json:"court"`
}
