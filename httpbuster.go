// Package httpbuster is a fast content discovery tool that finds hidden paths on HTTP servers.
// It expands every word of a wordlist with prepend, append, swap and extension rules, and requests the results
// through a fixed-size worker pool.
// It doesn't read the entire wordlist into memory. Instead, it estimates how many requests it's going to send ahead of time
// and streams through the wordlist line-by-line, holding only the permutations of the current line.
package httpbuster
