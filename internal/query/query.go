// Package query maps inbound list parameters onto RM API search parameters.
//
// Every input is validated against a fixed vocabulary before anything is sent
// upstream; unknown filters, sorts or malformed paging values come back as
// *domain.ValidationError.
package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/phrazzld/eholdings-api/internal/domain"
)

// Paging defaults and bounds shared by every list endpoint.
const (
	DefaultCount = 25
	MaxCount     = 100
	DefaultPage  = 1
)

// RM API ordering values.
const (
	OrderTitleName   = "titlename"
	OrderPackageName = "packagename"
	OrderRelevance   = "relevance"
)

var titleSearchFields = map[string]bool{
	"titlename": true,
	"publisher": true,
	"isxn":      true,
	"subject":   true,
}

type filterRule struct {
	param   string
	resolve func(string) (string, bool)
}

var packageFilters = map[string]filterRule{
	"filter[type]":     {param: "contenttype", resolve: domain.ContentTypeFilter},
	"filter[selected]": {param: "selection", resolve: domain.SelectionFilter},
}

var packageTitleFilters = map[string]filterRule{
	"filter[type]":     {param: "resourcetype", resolve: domain.PublicationTypeFilter},
	"filter[selected]": {param: "selection", resolve: domain.SelectionFilter},
}

// Titles maps GET /titles parameters (q, searchfield, orderby, count, offset).
func Titles(in url.Values) (url.Values, error) {
	if err := applyFilters(in, nil, url.Values{}); err != nil {
		return nil, err
	}

	out := url.Values{}
	q := in.Get("q")
	out.Set("search", q)

	searchField := OrderTitleName
	if in.Has("searchfield") {
		searchField = in.Get("searchfield")
		if !titleSearchFields[searchField] {
			return nil, invalidParameter(domain.TitleInvalidSearchField, "searchfield", searchField)
		}
	}
	out.Set("searchfield", searchField)

	// Any explicit orderby, or a q parameter even when empty, asks for
	// relevance ordering.
	orderBy := OrderTitleName
	if in.Has("orderby") || in.Has("q") {
		orderBy = OrderRelevance
	}
	out.Set("orderby", orderBy)

	count, err := intParam(in, "count", DefaultCount, 1, MaxCount, domain.TitleInvalidCount)
	if err != nil {
		return nil, err
	}
	out.Set("count", strconv.Itoa(count))

	offset, err := intParam(in, "offset", DefaultPage, 1, 0, domain.TitleInvalidOffset)
	if err != nil {
		return nil, err
	}
	out.Set("offset", strconv.Itoa(offset))

	return out, nil
}

// Packages maps GET /packages parameters (q, filter[type], filter[selected],
// sort, page, count).
func Packages(in url.Values) (url.Values, error) {
	return list(in, OrderPackageName, packageFilters, nil)
}

// PackageTitles maps GET /packages/{id}/customer-resources parameters.
func PackageTitles(in url.Values) (url.Values, error) {
	return list(in, OrderTitleName, packageTitleFilters, url.Values{"searchfield": {OrderTitleName}})
}

// list implements the sort/page/count/filter table shared by packages and
// package titles. nameOrder is the RM API value for sort=name.
func list(in url.Values, nameOrder string, filters map[string]filterRule, fixed url.Values) (url.Values, error) {
	out := url.Values{}
	for k, v := range fixed {
		out[k] = v
	}

	if err := applyFilters(in, filters, out); err != nil {
		return nil, err
	}

	q := in.Get("q")
	out.Set("search", q)

	var orderBy string
	switch sort := in.Get("sort"); {
	case sort == "name":
		orderBy = nameOrder
	case sort == "relevance":
		orderBy = OrderRelevance
	case sort != "":
		return nil, invalidParameter(domain.TitleInvalidSort, "sort", sort)
	case q != "":
		orderBy = OrderRelevance
	default:
		orderBy = nameOrder
	}
	out.Set("orderby", orderBy)

	page, err := intParam(in, "page", DefaultPage, 1, 0, domain.TitleInvalidPage)
	if err != nil {
		return nil, err
	}
	out.Set("offset", strconv.Itoa(page))

	count, err := intParam(in, "count", DefaultCount, 1, MaxCount, domain.TitleInvalidCount)
	if err != nil {
		return nil, err
	}
	out.Set("count", strconv.Itoa(count))

	return out, nil
}

// applyFilters validates every filter key in the request. Keys that are not
// in rules, including a bare "filter", are rejected.
func applyFilters(in url.Values, rules map[string]filterRule, out url.Values) error {
	for key, values := range in {
		if key != "filter" && !strings.HasPrefix(key, "filter[") {
			continue
		}
		rule, ok := rules[key]
		if !ok {
			return domain.NewValidationError(domain.ErrInvalidFilter, domain.TitleInvalidFilter,
				"unknown filter "+key)
		}
		value := ""
		if len(values) > 0 {
			value = values[0]
		}
		resolved, ok := rule.resolve(value)
		if !ok {
			return domain.NewValidationError(domain.ErrInvalidFilter, domain.TitleInvalidFilter,
				"unknown value "+strconv.Quote(value)+" for "+key)
		}
		out.Set(rule.param, resolved)
	}
	return nil
}

// intParam parses an integer parameter. hi of 0 means unbounded.
func intParam(in url.Values, name string, def, lo, hi int, title string) (int, error) {
	if !in.Has(name) {
		return def, nil
	}
	raw := in.Get(name)
	n, err := strconv.Atoi(raw)
	if err != nil || n < lo || (hi > 0 && n > hi) {
		return 0, invalidParameter(title, name, raw)
	}
	return n, nil
}

func invalidParameter(title, name, value string) error {
	return domain.NewValidationError(domain.ErrInvalidParameter, title,
		"unsupported value "+strconv.Quote(value)+" for "+name)
}

// Includes splits an include parameter into relation names, dropping blanks.
func Includes(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
