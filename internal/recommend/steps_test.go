package recommend

import (
	"testing"

	"moviescout/internal/movie"
)

func TestStepsOrder(t *testing.T) {
	want := []Stage{StageFull, StageDropScore, StageDropRuntime, StageDropCertification, StageSingleGenre}
	steps := Steps()
	if len(steps) != len(want) {
		t.Fatalf("expected %d steps, got %d", len(want), len(steps))
	}
	for i, step := range steps {
		if step.Stage != want[i] {
			t.Fatalf("step %d is %s, want %s", i, step.Stage, want[i])
		}
	}
}

func TestRelaxationsArePure(t *testing.T) {
	base := movie.FilterSet{
		Genres:        []string{"Action", "Drama"},
		MinScore:      movie.Float(7),
		MinRuntime:    movie.Int(90),
		MaxRuntime:    movie.Int(120),
		Certification: movie.String("R"),
		IncludeAdult:  true,
	}
	before := base.Summary()
	for _, step := range Steps() {
		first := step.Relax(base)
		second := step.Relax(base)
		if first.Summary() != second.Summary() {
			t.Fatalf("%s is not deterministic", step.Stage)
		}
		if base.Summary() != before {
			t.Fatalf("%s mutated its input", step.Stage)
		}
		if !first.IncludeAdult {
			t.Fatalf("%s must keep include_adult", step.Stage)
		}
	}

	single := firstGenreOnly(base)
	single.Genres[0] = "Changed"
	if base.Genres[0] != "Action" {
		t.Fatal("firstGenreOnly aliases the input genres")
	}
}

func TestStepApplicability(t *testing.T) {
	steps := map[Stage]Step{}
	for _, step := range Steps() {
		steps[step.Stage] = step
	}
	empty := movie.FilterSet{}
	if steps[StageDropCertification].Applies(empty) {
		t.Fatal("drop_certification should be skipped without a certification")
	}
	if !steps[StageDropCertification].Applies(movie.FilterSet{Certification: movie.String("PG")}) {
		t.Fatal("drop_certification should apply with a certification")
	}
	if steps[StageSingleGenre].Applies(empty) {
		t.Fatal("single_genre should be skipped without genres")
	}
	if !steps[StageSingleGenre].Applies(movie.FilterSet{Genres: []string{"Drama"}}) {
		t.Fatal("single_genre should apply with genres")
	}
	for _, stage := range []Stage{StageFull, StageDropScore, StageDropRuntime} {
		if !steps[stage].Applies(empty) {
			t.Fatalf("%s should always apply", stage)
		}
	}
}
