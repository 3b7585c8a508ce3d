package httputil

import (
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// GetURLFields checks which query parameters of the filter are set.
//
// The first return value contains the names of all fields that can be passed
// to gorm's Where as field selection, the second one the names of all set fields.
// Fields tagged with filterField:"false" are only contained in the second one,
// they need to be filtered on by the caller.
//
// This can be useful to filter for zero values without defining them
// as pointer fields.
func GetURLFields(url *url.URL, filter any) ([]any, []string) {
	var queryFields []any
	var setFields []string

	val := reflect.Indirect(reflect.ValueOf(filter))
	for i := 0; i < val.NumField(); i++ {
		field := val.Type().Field(i)
		param := field.Tag.Get("form")

		if param == "" || !url.Query().Has(param) {
			continue
		}

		setFields = append(setFields, field.Name)
		if field.Tag.Get("filterField") != "false" {
			queryFields = append(queryFields, field.Name)
		}
	}
	return queryFields, setFields
}

// QueryInt returns the integer value of the query parameter.
//
// Missing and non-numeric values yield the fallback, the caller
// decides about the valid range.
func QueryInt(url *url.URL, param string, fallback int) int {
	value := strings.TrimSpace(url.Query().Get(param))
	if value == "" {
		return fallback
	}

	i, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}

	return i
}
