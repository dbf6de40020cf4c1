// SPDX-FileCopyrightText: 2026 validoc
// SPDX-License-Identifier: FSL-1.1-MIT

// Package util provides shared string helpers.
package util

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var nonWord = regexp.MustCompile(`\W`)

var titleCaser = cases.Title(language.English, cases.NoLower)

// TitleCase upper-cases the first letter of each word in s.
func TitleCase(s string) string {
	return titleCaser.String(s)
}

// OperationID derives an operation identifier from an HTTP method and a
// path template: lower-cased method followed by title-cased path segments,
// with placeholder braces and other non-word characters stripped.
// "GET /store/{id?}" becomes "getStoreId".
func OperationID(method, path string) string {
	var sb strings.Builder
	sb.WriteString(strings.ToLower(method))
	for _, segment := range strings.Split(path, "/") {
		if segment == "" {
			continue
		}
		sb.WriteString(titleCaser.String(segment))
	}
	return nonWord.ReplaceAllString(sb.String(), "")
}

// FirstSegment returns the first non-empty path segment with any
// placeholder braces stripped, or "" when the path has none.
func FirstSegment(path string) string {
	for _, segment := range strings.Split(path, "/") {
		if segment == "" {
			continue
		}
		segment = strings.Trim(segment, "{}?")
		return segment
	}
	return ""
}
