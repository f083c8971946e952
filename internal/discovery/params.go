package discovery

import (
	"net/url"
	"strconv"
	"strings"

	"moviescout/internal/movie"
)

// TMDB discover query parameter names.
const (
	ParamSortBy               = "sort_by"
	ParamMinScore             = "vote_average.gte"
	ParamMinRuntime           = "with_runtime.gte"
	ParamMaxRuntime           = "with_runtime.lte"
	ParamCertification        = "certification.lte"
	ParamCertificationCountry = "certification_country"
	ParamGenres               = "with_genres"
	ParamIncludeAdult         = "include_adult"

	sortPopularityDesc = "popularity.desc"
)

// BuildParams converts filters into discover parameters. A parameter is
// present only when its filter is set; include_adult is a plain flag and is
// always sent. Year bounds are applied after the fetch rather than sent.
func BuildParams(filters movie.FilterSet, genreIDs []int, certificationCountry string) url.Values {
	params := url.Values{}
	params.Set(ParamSortBy, sortPopularityDesc)
	if filters.MinScore != nil {
		params.Set(ParamMinScore, strconv.FormatFloat(*filters.MinScore, 'f', -1, 64))
	}
	if filters.MinRuntime != nil {
		params.Set(ParamMinRuntime, strconv.Itoa(*filters.MinRuntime))
	}
	if filters.MaxRuntime != nil {
		params.Set(ParamMaxRuntime, strconv.Itoa(*filters.MaxRuntime))
	}
	if filters.Certification != nil {
		params.Set(ParamCertification, *filters.Certification)
		if country := strings.TrimSpace(certificationCountry); country != "" {
			params.Set(ParamCertificationCountry, country)
		}
	}
	if len(genreIDs) > 0 {
		ids := make([]string, 0, len(genreIDs))
		for _, id := range genreIDs {
			ids = append(ids, strconv.Itoa(id))
		}
		params.Set(ParamGenres, strings.Join(ids, ","))
	}
	params.Set(ParamIncludeAdult, strconv.FormatBool(filters.IncludeAdult))
	return params
}
