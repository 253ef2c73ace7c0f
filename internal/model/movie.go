package model

// Movie is a catalog entry joined with its director, if any.
// DirectorID and DirectorName are null when the movie has no director.
type Movie struct {
	ID           int64   `json:"id"`
	Title        string  `json:"title"`
	Year         int     `json:"year"`
	DirectorID   *int64  `json:"director_id"`
	DirectorName *string `json:"director_name"`
}

// MovieRequest is used for both creating and replacing a movie
type MovieRequest struct {
	Title      string `json:"title" binding:"required"`
	DirectorID int64  `json:"director_id" binding:"required"`
	Year       int    `json:"year" binding:"required"`
}
