package dto

// SongRequest is the payload for adding or updating a song. The slug is
// derived from the title server-side.
type SongRequest struct {
	Title   string `json:"title" validate:"required"`
	Artist  string `json:"artist"`
	Link1   string `json:"link1" validate:"omitempty,url"`
	Link2   string `json:"link2" validate:"omitempty,url"`
	Spotify string `json:"spotify" validate:"omitempty,url"`
}

// SongImportRequest holds a batch of songs for library import.
type SongImportRequest struct {
	Songs []SongRequest `json:"songs" validate:"required,min=1,dive"`
}
