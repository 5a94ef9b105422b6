package httpbuster

import "strings"

// SwapMarker is replaced by every swap value in wordlist entries that contain it.
const SwapMarker = "{SWAP}"

// PermutationSpec describes how each wordlist entry is expanded into candidates.
// Every list holds at least one entry; an unconfigured list is a single empty string.
type PermutationSpec struct {
	Prepend    []string
	Append     []string
	Swap       []string
	Extensions []string

	// Unique removes duplicate candidates produced from the same wordlist line.
	Unique bool
}

// ParseList splits a comma separated combinator list.
// Empty fields are kept so "" becomes a single empty entry and ",.php" tests the bare word too.
func ParseList(csv string) []string {
	return strings.Split(csv, ",")
}

// NewPermutationSpec builds a PermutationSpec from comma separated combinator lists.
func NewPermutationSpec(prepend, append, swap, extensions string) PermutationSpec {
	return PermutationSpec{
		Prepend:    ParseList(prepend),
		Append:     ParseList(append),
		Swap:       ParseList(swap),
		Extensions: ParseList(extensions),
	}
}

// withDefaults fills any nil or empty list with the single empty entry.
func (p PermutationSpec) withDefaults() PermutationSpec {
	fill := func(list []string) []string {
		if len(list) == 0 {
			return []string{""}
		}
		return list
	}

	return PermutationSpec{
		Prepend:    fill(p.Prepend),
		Append:     fill(p.Append),
		Swap:       fill(p.Swap),
		Extensions: fill(p.Extensions),
		Unique:     p.Unique,
	}
}

// TotalCount estimates how many candidates a wordlist of baseCount lines expands to.
// It multiplies every combinator length, so it ignores lines without the swap marker and the
// bare-word emissions; the real count can be lower or higher.
// Without Unique every plain line yields its bare word twice, so the estimate undercounts.
// It is only an upper bound when Unique is set and every list includes the empty entry, as the defaults do.
func (p PermutationSpec) TotalCount(baseCount int) int {
	spec := p.withDefaults()
	return baseCount * len(spec.Prepend) * len(spec.Append) * len(spec.Swap) * len(spec.Extensions)
}
