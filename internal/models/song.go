package models

import "time"

// Song is one entry in the auxiliary song library, keyed by a slug derived
// from the title. Links point at lyrics/chords/streaming resources.
type Song struct {
	Slug      string    `db:"slug" json:"slug"`
	Title     string    `db:"title" json:"title"`
	Artist    string    `db:"artist" json:"artist"`
	Link1     string    `db:"link1" json:"link1"`
	Link2     string    `db:"link2" json:"link2"`
	Spotify   string    `db:"spotify" json:"spotify"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
