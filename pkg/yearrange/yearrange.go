// Package yearrange normalizes the production year windows of vehicle
// models: it deduplicates (manufacture year, model year) entries, takes the
// union of all individual years, and compresses that union into minimal
// contiguous inclusive ranges. All functions are total; invalid input yields
// an empty result or an advisory message, never an error or panic.
package yearrange

import (
	"sort"
)

// Entry is one (manufacture year, model year) pair from a vehicle model
// catalog record.
type Entry struct {
	ManufactureYear int `json:"manufactureYear"`
	ModelYear       int `json:"modelYear"`
}

// Range is one contiguous inclusive span of production years.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Rules describes how a Result's ranges were derived. It is carried through
// for audit display and never read back by the computation.
type Rules struct {
	Sources []string `json:"sources"`
	Logic   string   `json:"logic"`
}

// Result is the normalized production window for one model.
type Result struct {
	YearEntries []Entry `json:"yearEntries"`
	YearRanges  []Range `json:"yearRanges"`
	YearRules   Rules   `json:"yearRules"`
	SourceCount int     `json:"sourceCount"`
}

// DedupeAndSort removes exact duplicate pairs and sorts ascending by
// manufacture year, then model year. Two entries differing in only one field
// are distinct. The result is deterministic and applying it twice yields the
// same sequence as applying it once.
func DedupeAndSort(entries []Entry) []Entry {
	seen := make(map[Entry]struct{}, len(entries))
	var deduped []Entry
	for _, entry := range entries {
		if _, ok := seen[entry]; ok {
			continue
		}
		seen[entry] = struct{}{}
		deduped = append(deduped, entry)
	}

	sort.Slice(deduped, func(i, j int) bool {
		if deduped[i].ManufactureYear != deduped[j].ManufactureYear {
			return deduped[i].ManufactureYear < deduped[j].ManufactureYear
		}
		return deduped[i].ModelYear < deduped[j].ModelYear
	})

	return deduped
}

// ExtractYears returns the union of every manufacture year and every model
// year across all entries, deduplicated and ascending. Individual year
// values, not pairs.
func ExtractYears(entries []Entry) []int {
	seen := make(map[int]struct{}, 2*len(entries))
	var years []int
	for _, entry := range entries {
		if _, ok := seen[entry.ManufactureYear]; !ok {
			seen[entry.ManufactureYear] = struct{}{}
			years = append(years, entry.ManufactureYear)
		}
		if _, ok := seen[entry.ModelYear]; !ok {
			seen[entry.ModelYear] = struct{}{}
			years = append(years, entry.ModelYear)
		}
	}
	sort.Ints(years)
	return years
}

// CompressRanges compresses years into minimal contiguous inclusive ranges.
// The input must already be sorted ascending with no duplicates; this
// function does not sort (FromEntries enforces the pipeline order). A
// single-element run produces a range with Start == End.
func CompressRanges(years []int) []Range {
	if len(years) == 0 {
		return nil
	}

	var ranges []Range
	current := Range{Start: years[0], End: years[0]}
	for _, year := range years[1:] {
		if year == current.End+1 {
			current.End = year
			continue
		}
		ranges = append(ranges, current)
		current = Range{Start: year, End: year}
	}
	return append(ranges, current)
}

// FromEntries runs the full pipeline: dedupe/sort the entries, take the
// union of their years, and compress the union into ranges. SourceCount is
// the deduplicated entry count.
func FromEntries(entries []Entry) Result {
	deduped := DedupeAndSort(entries)
	years := ExtractYears(deduped)
	return Result{
		YearEntries: deduped,
		YearRanges:  CompressRanges(years),
		YearRules: Rules{
			Sources: []string{"yearEntries"},
			Logic:   "union->ranges; start=min(years); end=max(years); segments=contiguous",
		},
		SourceCount: len(deduped),
	}
}

// EntriesFromRange generates one entry per year in the inclusive range, each
// with manufacture year equal to model year. A start greater than end yields
// an empty sequence, not an error.
func EntriesFromRange(start, end int) []Entry {
	if start > end {
		return nil
	}
	entries := make([]Entry, 0, end-start+1)
	for year := start; year <= end; year++ {
		entries = append(entries, Entry{ManufactureYear: year, ModelYear: year})
	}
	return entries
}
