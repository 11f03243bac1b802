package chanrt

import "sort"

// lockOrder returns the indices of clauses sorted by their channel's
// address, deduplicated so a channel appearing in more than one clause is
// locked exactly once. Locking (and later unlocking) in a single global
// order regardless of the order the caller wrote the clauses in is what
// makes two concurrent Choose calls over an overlapping clause set
// deadlock-free: both sort by the same channel-address key before taking
// any lock, so they can never acquire a shared channel's mutex in
// opposite orders.
func lockOrder(clauses []Clause) []int {
	idx := make([]int, len(clauses))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool {
		return clauses[idx[i]].addr() < clauses[idx[j]].addr()
	})

	unique := idx[:0:0]
	var last uintptr
	haveLast := false
	for _, i := range idx {
		a := clauses[i].addr()
		if haveLast && a == last {
			continue
		}
		unique = append(unique, i)
		last = a
		haveLast = true
	}
	return unique
}
