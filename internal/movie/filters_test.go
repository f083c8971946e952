package movie_test

import (
	"testing"

	"moviescout/internal/movie"
)

func TestDecadeRange(t *testing.T) {
	start, end, err := movie.DecadeRange("2020s")
	if err != nil {
		t.Fatalf("DecadeRange returned error: %v", err)
	}
	if *start != 2020 || *end != 2025 {
		t.Fatalf("unexpected 2020s range %d-%d", *start, *end)
	}
	start, end, err = movie.DecadeRange("1970S")
	if err != nil || *start != 1970 || *end != 1979 {
		t.Fatalf("expected case-insensitive 1970s lookup, got %v %v %v", start, end, err)
	}
	start, end, err = movie.DecadeRange("Any")
	if err != nil || start != nil || end != nil {
		t.Fatalf("expected unset bounds for Any, got %v %v %v", start, end, err)
	}
	if _, _, err := movie.DecadeRange("1960s"); err == nil {
		t.Fatal("expected error for unknown decade")
	}
}

func TestDecadesListsAnyFirst(t *testing.T) {
	labels := movie.Decades()
	if len(labels) != 7 || labels[0] != movie.DecadeAny || labels[6] != "2020s" {
		t.Fatalf("unexpected decades %v", labels)
	}
}

func TestManualSelectionFilters(t *testing.T) {
	f, err := movie.ManualSelection{
		Genres:      []string{" Action ", "action", ""},
		Decade:      "1990s",
		CriticsOnly: true,
	}.Filters()
	if err != nil {
		t.Fatalf("Filters returned error: %v", err)
	}
	if len(f.Genres) != 1 || f.Genres[0] != "Action" {
		t.Fatalf("unexpected genres %v", f.Genres)
	}
	if f.MinScore == nil || *f.MinScore != movie.CriticScoreThreshold {
		t.Fatalf("expected critics-only score, got %v", f.MinScore)
	}
	if !f.HasYearRange() || *f.YearStart != 1990 || *f.YearEnd != 1999 {
		t.Fatalf("unexpected year range %v %v", f.YearStart, f.YearEnd)
	}

	plain, err := movie.ManualSelection{}.Filters()
	if err != nil {
		t.Fatalf("Filters returned error: %v", err)
	}
	if !plain.IsEmpty() {
		t.Fatalf("expected empty filter set, got %s", plain.Summary())
	}
}

func TestMergePrefersManualValues(t *testing.T) {
	manual := movie.FilterSet{
		Genres:    []string{"Drama"},
		YearStart: movie.Int(1990),
		YearEnd:   movie.Int(1999),
		MinScore:  movie.Float(7),
	}
	interpreted := movie.FilterSet{
		Genres:        []string{"Comedy"},
		YearStart:     movie.Int(2000),
		YearEnd:       movie.Int(2009),
		MinScore:      movie.Float(8.5),
		MinRuntime:    movie.Int(90),
		Certification: movie.String("PG-13"),
	}
	merged := movie.Merge(manual, interpreted)
	if merged.Genres[0] != "Drama" {
		t.Fatalf("expected manual genres, got %v", merged.Genres)
	}
	if *merged.YearStart != 1990 || *merged.YearEnd != 1999 {
		t.Fatalf("expected manual decade, got %d-%d", *merged.YearStart, *merged.YearEnd)
	}
	if *merged.MinScore != 7 {
		t.Fatalf("expected manual score, got %v", *merged.MinScore)
	}
	if merged.MinRuntime == nil || *merged.MinRuntime != 90 {
		t.Fatalf("expected interpreted runtime, got %v", merged.MinRuntime)
	}
	if merged.Certification == nil || *merged.Certification != "PG-13" {
		t.Fatalf("expected interpreted certification, got %v", merged.Certification)
	}
}

func TestMergeFillsGapsFromInterpreter(t *testing.T) {
	interpreted := movie.FilterSet{
		Genres:    []string{"Comedy"},
		YearStart: movie.Int(2000),
		YearEnd:   movie.Int(2009),
		MinScore:  movie.Float(8.5),
	}
	merged := movie.Merge(movie.FilterSet{IncludeAdult: true}, interpreted)
	if len(merged.Genres) != 1 || merged.Genres[0] != "Comedy" {
		t.Fatalf("expected interpreted genres, got %v", merged.Genres)
	}
	if !merged.HasYearRange() || *merged.YearStart != 2000 {
		t.Fatalf("expected interpreted year range, got %v %v", merged.YearStart, merged.YearEnd)
	}
	if *merged.MinScore != 8.5 {
		t.Fatalf("expected interpreted score, got %v", *merged.MinScore)
	}
	if !merged.IncludeAdult {
		t.Fatal("expected include_adult to survive merge")
	}
}

func TestMergeIgnoresHalfOpenInterpretedYears(t *testing.T) {
	merged := movie.Merge(movie.FilterSet{}, movie.FilterSet{YearStart: movie.Int(2001)})
	if merged.YearStart != nil || merged.YearEnd != nil {
		t.Fatalf("expected year range to stay unset, got %v %v", merged.YearStart, merged.YearEnd)
	}
}

func TestCloneDoesNotAlias(t *testing.T) {
	original := movie.FilterSet{Genres: []string{"Action", "Drama"}, MinScore: movie.Float(8)}
	clone := original.Clone()
	clone.Genres[0] = "Horror"
	*clone.MinScore = 1
	if original.Genres[0] != "Action" || *original.MinScore != 8 {
		t.Fatalf("clone aliased original: %+v", original)
	}
}

func TestValidate(t *testing.T) {
	bad := []movie.FilterSet{
		{YearStart: movie.Int(2010), YearEnd: movie.Int(2000)},
		{MinScore: movie.Float(11)},
		{MinRuntime: movie.Int(-1)},
		{MinRuntime: movie.Int(120), MaxRuntime: movie.Int(90)},
	}
	for i, f := range bad {
		if err := f.Validate(); err == nil {
			t.Fatalf("case %d: expected validation error for %s", i, f.Summary())
		}
	}
	good := movie.FilterSet{YearStart: movie.Int(2000), YearEnd: movie.Int(2000), MinScore: movie.Float(10)}
	if err := good.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSummary(t *testing.T) {
	if got := (movie.FilterSet{}).Summary(); got != "(no filters)" {
		t.Fatalf("unexpected empty summary %q", got)
	}
	f := movie.FilterSet{Genres: []string{"Action"}, MinScore: movie.Float(8.5), MinRuntime: movie.Int(90)}
	if got := f.Summary(); got != "genres=Action min_score=8.5 min_runtime=90" {
		t.Fatalf("unexpected summary %q", got)
	}
}
