/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package collection

import (
	"fmt"
	"strings"
)

// ParseList splits a string into a list like strings.Split but also removes any whitespace surrounding the different items.
// Items which are empty once trimmed are kept, so that callers can reject them. A blank input gives an empty list.
// For example, ParseList("a, ,c", ",") returns []{"a","","c"}
func ParseList(input string, sep string) []string {
	newS := []string{}
	if strings.TrimSpace(input) == "" {
		return newS
	}
	for s := range strings.SplitSeq(input, sep) {
		newS = append(newS, strings.TrimSpace(s))
	}
	return newS
}

// ParseListWithCleanup is similar to ParseList but items which are empty once trimmed are dropped.
// For example, ParseListWithCleanup("a, b ,  c,", ",") returns []{"a","b","c"}
func ParseListWithCleanup(input string, sep string) []string {
	newS := []string{}
	for _, s := range ParseList(input, sep) {
		if s != "" {
			newS = append(newS, s)
		}
	}
	return newS
}

// ConvertSliceToList converts a slice into a string listing its elements separated by sep.
// Elements are rendered using their default format i.e. String() when they implement fmt.Stringer.
func ConvertSliceToList[T any](slice []T, sep string) string {
	if len(slice) == 0 {
		return ""
	}
	return strings.Join(Map(slice, func(e T) string { return fmt.Sprintf("%v", e) }), sep)
}

// ConvertSliceToCommaSeparatedList converts a slice into a string containing a comma separated list
func ConvertSliceToCommaSeparatedList[T any](slice []T) string {
	return ConvertSliceToList(slice, ",")
}
