package recommend

import "moviescout/internal/movie"

// Stage names a state of the fallback sequence.
type Stage string

const (
	StageFull              Stage = "full"
	StageDropScore         Stage = "drop_score"
	StageDropRuntime       Stage = "drop_runtime"
	StageDropCertification Stage = "drop_certification"
	StageSingleGenre       Stage = "single_genre"
	StageExhausted         Stage = "exhausted"
)

// ExhaustedMessage is announced when every step came back empty.
const ExhaustedMessage = "No results found at all. Try a more general query."

// Step is one relaxation. Applies sees the filters accumulated so far and
// reports whether the step is worth a search; Relax returns the loosened copy.
type Step struct {
	Stage   Stage
	Message string
	Applies func(movie.FilterSet) bool
	Relax   func(movie.FilterSet) movie.FilterSet
}

// Steps returns the relaxation sequence in the order it is tried.
func Steps() []Step {
	return []Step{
		{
			Stage:   StageFull,
			Message: "Searching TMDb with all filters...",
			Applies: always,
			Relax:   movie.FilterSet.Clone,
		},
		{
			Stage:   StageDropScore,
			Message: "No results with all filters. Trying without critic score...",
			Applies: always,
			Relax:   dropScore,
		},
		{
			Stage:   StageDropRuntime,
			Message: "Still nothing. Trying without runtime filter...",
			Applies: always,
			Relax:   dropRuntime,
		},
		{
			Stage:   StageDropCertification,
			Message: "Still no results. Trying without certification filter...",
			Applies: func(f movie.FilterSet) bool { return f.Certification != nil },
			Relax:   dropCertification,
		},
		{
			Stage:   StageSingleGenre,
			Message: "Trying again with only one genre...",
			Applies: func(f movie.FilterSet) bool { return len(f.Genres) > 0 },
			Relax:   firstGenreOnly,
		},
	}
}

func always(movie.FilterSet) bool { return true }

func dropScore(f movie.FilterSet) movie.FilterSet {
	out := f.Clone()
	out.MinScore = nil
	return out
}

func dropRuntime(f movie.FilterSet) movie.FilterSet {
	out := f.Clone()
	out.MinRuntime = nil
	out.MaxRuntime = nil
	return out
}

func dropCertification(f movie.FilterSet) movie.FilterSet {
	out := f.Clone()
	out.Certification = nil
	return out
}

func firstGenreOnly(f movie.FilterSet) movie.FilterSet {
	out := f.Clone()
	if len(out.Genres) > 1 {
		out.Genres = out.Genres[:1]
	}
	return out
}
