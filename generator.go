package httpbuster

import "strings"

// expandLine returns every candidate generated from a single wordlist line, in the order they are tested.
// The spec must already have its defaults applied.
func expandLine(line string, spec PermutationSpec) []string {
	candidates := []string{}

	bases := []string{}
	if strings.Contains(line, SwapMarker) {
		for _, swap := range spec.Swap {
			bases = append(bases, strings.ReplaceAll(line, SwapMarker, swap))
		}
	} else {
		// The bare word is always tested, even when prepend/append reproduce it.
		candidates = append(candidates, line)
		bases = append(bases, line)
	}

	for _, base := range bases {
		for _, prefix := range spec.Prepend {
			candidates = append(candidates, prefix+base)
			for _, suffix := range spec.Append {
				if suffix == "" {
					continue
				}
				candidates = append(candidates, prefix+base+suffix)
			}
		}
	}

	candidates = withExtensions(candidates, spec.Extensions)

	if spec.Unique {
		return uniqueCandidates(candidates)
	}
	return candidates
}

// withExtensions appends each candidate with every non-empty extension after the candidates themselves.
// An empty extension is the bare candidate, which is already present.
func withExtensions(candidates []string, extensions []string) []string {
	queued := len(candidates)
	for _, candidate := range candidates[:queued] {
		for _, extension := range extensions {
			if extension == "" {
				continue
			}
			candidates = append(candidates, candidate+extension)
		}
	}
	return candidates
}

func uniqueCandidates(candidates []string) []string {
	seen := make(map[string]struct{}, len(candidates))
	unique := candidates[:0]
	for _, candidate := range candidates {
		if _, found := seen[candidate]; found {
			continue
		}
		seen[candidate] = struct{}{}
		unique = append(unique, candidate)
	}
	return unique
}
