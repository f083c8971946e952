package main

import (
	"strconv"
	"strings"

	"moviescout/internal/genres"
	"moviescout/internal/movie"
)

// movieView is the rendered form of a movie, shared by the table and JSON output.
type movieView struct {
	Rank        int      `json:"rank"`
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Year        int      `json:"year,omitempty"`
	VoteAverage *float64 `json:"vote_average,omitempty"`
	Runtime     *int     `json:"runtime,omitempty"`
	Popularity  float64  `json:"popularity"`
	Genres      []string `json:"genres,omitempty"`
	PosterURL   string   `json:"poster_url,omitempty"`
	Overview    string   `json:"overview,omitempty"`
}

func movieViews(list movie.ResultList, catalog *genres.Catalog) []movieView {
	views := make([]movieView, 0, len(list))
	for i, m := range list {
		view := movieView{
			Rank:        i + 1,
			ID:          m.ID,
			Title:       m.Title,
			VoteAverage: m.VoteAverage,
			Runtime:     m.Runtime,
			Popularity:  m.Popularity,
			PosterURL:   m.PosterURL(),
			Overview:    m.Overview,
		}
		if year, ok := m.ReleaseYear(); ok {
			view.Year = year
		}
		for _, id := range m.GenreIDs {
			if name, ok := catalog.Name(id); ok {
				view.Genres = append(view.Genres, name)
			}
		}
		views = append(views, view)
	}
	return views
}

func renderMovieTable(views []movieView) string {
	headers := []string{"#", "Title", "Year", "Rating", "Runtime", "Popularity", "Genres"}
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, []string{
			strconv.Itoa(v.Rank),
			v.Title,
			yearLabel(v.Year),
			ratingLabel(v.VoteAverage),
			runtimeLabel(v.Runtime),
			strconv.FormatFloat(v.Popularity, 'f', 1, 64),
			strings.Join(v.Genres, ", "),
		})
	}
	aligns := []columnAlignment{alignRight, alignLeft, alignRight, alignRight, alignRight, alignRight, alignLeft}
	return renderTable(headers, rows, aligns)
}

func yearLabel(year int) string {
	if year <= 0 {
		return "-"
	}
	return strconv.Itoa(year)
}

func ratingLabel(score *float64) string {
	if score == nil {
		return "-"
	}
	return strconv.FormatFloat(*score, 'f', 1, 64)
}

func runtimeLabel(minutes *int) string {
	if minutes == nil || *minutes <= 0 {
		return "-"
	}
	return strconv.Itoa(*minutes) + "m"
}
