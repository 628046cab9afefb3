package mnemonic

// damerauLevenshtein computes the optimal-string-alignment (restricted)
// Damerau-Levenshtein distance between a and b: adjacent
// transpositions count as one edit, but a transposed pair is not
// edited again. The wordlist's own library dependency,
// github.com/agnivade/levenshtein, computes plain Levenshtein distance
// with no transposition step, so word correction
// for transposed letters — the single most common handwriting-to-paper
// transcription error — needs this classic dynamic-programming
// extension layered on top.
func damerauLevenshtein(a, b string) int {
	la, lb := len(a), len(b)
	d := make([][]int, la+1)
	for i := range d {
		d[i] = make([]int, lb+1)
		d[i][0] = i
	}
	for j := 0; j <= lb; j++ {
		d[0][j] = j
	}

	for i := 1; i <= la; i++ {
		for j := 1; j <= lb; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			del := d[i-1][j] + 1
			ins := d[i][j-1] + 1
			sub := d[i-1][j-1] + cost
			best := del
			if ins < best {
				best = ins
			}
			if sub < best {
				best = sub
			}
			if i > 1 && j > 1 && a[i-1] == b[j-2] && a[i-2] == b[j-1] {
				if t := d[i-2][j-2] + cost; t < best {
					best = t
				}
			}
			d[i][j] = best
		}
	}
	return d[la][lb]
}
