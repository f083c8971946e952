package movie

// CriticScoreThreshold is the min_score applied by the critics-only toggle.
const CriticScoreThreshold = 7.0

// ManualSelection is what the user picked directly, before any interpretation.
type ManualSelection struct {
	Genres       []string
	Decade       string
	CriticsOnly  bool
	IncludeAdult bool
}

// Filters converts the manual selection into a FilterSet.
func (m ManualSelection) Filters() (FilterSet, error) {
	start, end, err := DecadeRange(m.Decade)
	if err != nil {
		return FilterSet{}, err
	}
	f := FilterSet{
		Genres:       NormalizeGenres(m.Genres),
		YearStart:    start,
		YearEnd:      end,
		IncludeAdult: m.IncludeAdult,
	}
	if m.CriticsOnly {
		f.MinScore = Float(CriticScoreThreshold)
	}
	return f, nil
}

// Merge layers interpreted filters under the manual ones. Manual genres, an
// explicit decade, and a manual score win; the interpreted year range is only
// taken when both bounds are present; runtimes and certification can only come
// from the interpreter.
func Merge(manual, interpreted FilterSet) FilterSet {
	out := manual.Clone()
	in := interpreted.Clone()

	if len(out.Genres) == 0 && len(in.Genres) > 0 {
		out.Genres = in.Genres
	}
	if out.YearStart == nil && out.YearEnd == nil && in.HasYearRange() {
		out.YearStart = in.YearStart
		out.YearEnd = in.YearEnd
	}
	if out.MinScore == nil && in.MinScore != nil {
		out.MinScore = in.MinScore
	}
	out.MinRuntime = in.MinRuntime
	out.MaxRuntime = in.MaxRuntime
	out.Certification = in.Certification
	return out
}
