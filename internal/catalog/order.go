package catalog

import (
	"sort"

	"github.com/mrlokans/signbook/internal/entities"
)

const (
	CategoryFingerspelling = "Fingeralphabet"
	CategoryNumbers        = "Zahlen"
)

var fingerspellingSequence = []string{
	"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z",
	"Ä", "Ö", "Ü", "ß", "SCH",
}

var numberSequence = []string{
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12",
	"13", "14", "15", "16", "17", "18", "19", "20", "21", "22", "23",
	"30", "40", "50", "60", "70", "80", "90",
	"100", "101", "105", "106", "110", "1000", "2000", "3000",
	"10.000", "20.000", "60.000", "100.000", "500.000",
	"1 Million", "1 Milliarden", "1 Billionen",
	"1980", "2025", "90er", "2000er", "60er",
}

var (
	fingerspellingRank = rankOf(fingerspellingSequence)
	numberRank         = rankOf(numberSequence)
)

func rankOf(seq []string) map[string]int {
	m := make(map[string]int, len(seq))
	for i, term := range seq {
		m[term] = i
	}
	return m
}

// orderForCategory applies the ordering policy of the category. The input
// slice may be reordered in place.
func orderForCategory(category string, entries []entities.VocabularyEntry) []entities.VocabularyEntry {
	switch category {
	case CategoryFingerspelling:
		return orderFingerspelling(entries)
	case CategoryNumbers:
		return orderNumbers(entries)
	default:
		sortByTerm(entries)
		return entries
	}
}

// orderFingerspelling keeps only letters from the fixed alphabet and orders
// them by it. Terms outside the alphabet are dropped.
func orderFingerspelling(entries []entities.VocabularyEntry) []entities.VocabularyEntry {
	out := make([]entities.VocabularyEntry, 0, len(entries))
	for _, e := range entries {
		if _, ok := fingerspellingRank[e.Term]; ok {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return fingerspellingRank[out[i].Term] < fingerspellingRank[out[j].Term]
	})
	return out
}

// orderNumbers puts numerals from the fixed sequence first, in sequence order.
// Anything else follows, sorted lexicographically.
func orderNumbers(entries []entities.VocabularyEntry) []entities.VocabularyEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		ri, iKnown := numberRank[entries[i].Term]
		rj, jKnown := numberRank[entries[j].Term]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown != jKnown:
			return iKnown
		default:
			return entities.LessByTerm(entries[i], entries[j])
		}
	})
	return entries
}

func sortByTerm(entries []entities.VocabularyEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entities.LessByTerm(entries[i], entries[j])
	})
}
