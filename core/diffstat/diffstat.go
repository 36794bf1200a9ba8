// Package diffstat extracts line counts from the summary lines git prints for --stat.
package diffstat

import (
	"regexp"
	"strconv"
	"strings"
)

// git prints the singular form when the count is one.
var (
	insertionsPattern = regexp.MustCompile(`(\d+) insertions?\(\+\)`)
	deletionsPattern  = regexp.MustCompile(`(\d+) deletions?\(-\)`)
)

// Insertions returns the count preceding "insertions(+)" in line, or 0 when
// the marker is absent.
func Insertions(line string) int {
	return firstCount(insertionsPattern, line)
}

// Deletions returns the count preceding "deletions(-)" in line, or 0 when
// the marker is absent.
func Deletions(line string) int {
	return firstCount(deletionsPattern, line)
}

// Sum adds insertions and deletions over every line of a diffstat.
// Per-file lines, renames and binary entries carry no marker and add nothing.
func Sum(output string) (insertions, deletions int) {
	for line := range strings.SplitSeq(output, "\n") {
		insertions += Insertions(line)
		deletions += Deletions(line)
	}
	return insertions, deletions
}

// firstCount returns the integer captured by the first match of re.
func firstCount(re *regexp.Regexp, line string) int {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0 // overflow on absurdly long digit runs
	}
	return n
}
