package main

import (
	"fmt"
	"io"
	"strings"

	"marquee/internal/catalog"
	"marquee/internal/language"
	"marquee/internal/movieview"
	"marquee/internal/staff"
)

// renderMovieDetail writes the loaded detail view. Sections with no data
// render nothing rather than an empty placeholder.
func renderMovieDetail(out io.Writer, state movieview.ViewState, authenticated, styled bool) {
	movie := state.Movie
	if movie == nil {
		return
	}

	if authenticated && state.Favorite.Known {
		fmt.Fprintf(out, "Liked: %s\n", yesNo(state.Favorite.Liked))
		if state.Favorite.Err != nil {
			fmt.Fprintf(out, "Favorite update failed: %v (retry with `marquee like %s`)\n", state.Favorite.Err, state.MovieID)
		}
	}

	if movie.OriginalTitle != "" {
		if year, ok := catalog.ReleaseYear(movie.ReleaseDate); ok {
			fmt.Fprintf(out, "%s (%d)\n", movie.OriginalTitle, year)
		} else {
			fmt.Fprintf(out, "%s\n", movie.OriginalTitle)
		}
	}
	if !language.IsEnglish(movie.OriginalLanguage) && movie.Title != "" {
		fmt.Fprintf(out, "English Title: %s\n", movie.Title)
	}
	if movie.OriginalLanguage != "" {
		fmt.Fprintf(out, "Language: %s\n", language.DisplayName(movie.OriginalLanguage))
	}
	if len(movie.Genres) > 0 {
		fmt.Fprintf(out, "Genres: %s\n", strings.Join(movie.Genres, ", "))
	}
	if movie.Overview != "" {
		fmt.Fprintf(out, "\n%s\n\n", movie.Overview)
	}
	if movie.ReleaseDate != "" {
		if formatted, err := catalog.FormatReleaseDate(movie.ReleaseDate); err == nil {
			fmt.Fprintf(out, "Release Date: %s\n", formatted)
		} else {
			fmt.Fprintf(out, "Release Date: %s\n", movie.ReleaseDate)
		}
	}
	if movie.Runtime > 0 {
		fmt.Fprintf(out, "Runtime: %d min\n", movie.Runtime)
	}
	if movie.VoteAverage > 0 {
		fmt.Fprintf(out, "Rating: %.1f\n", movie.VoteAverage)
	}
	if movie.VoteCount > 0 {
		fmt.Fprintf(out, "Rating Count: %d\n", movie.VoteCount)
	}
	if movie.ProductionCompanies != "" {
		fmt.Fprintf(out, "Production Companies: %s\n", movie.ProductionCompanies)
	}
	if movie.Homepage != "" {
		fmt.Fprintf(out, "Homepage: %s\n", movie.Homepage)
	}

	renderStaffSections(out, state.Staff, styled)
}

func renderStaffSections(out io.Writer, groups staff.Groups, styled bool) {
	crew := make([][]string, 0)
	for _, section := range [][]staff.Line{groups.Directors, groups.Composers, groups.Writers, groups.Producers} {
		for _, line := range section {
			crew = append(crew, []string{line.Label, line.Name, line.PersonID})
		}
	}
	if len(crew) > 0 {
		fmt.Fprintf(out, "\n%s\n", renderTable("Staff", []string{"Role", "Name", "Person"}, crew, styled))
	}

	if len(groups.Actors) > 0 {
		actors := make([][]string, 0, len(groups.Actors))
		for _, line := range groups.Actors {
			actors = append(actors, []string{line.Label, line.Name, line.PersonID})
		}
		fmt.Fprintf(out, "\n%s\n", renderTable("Actors", []string{"Characters", "Name", "Person"}, actors, styled))
	}
}
