package scene

// Patch is the result of reconciling a new mark list against the previous
// one. Enter, Update and Exit are disjoint.
type Patch struct {
	Enter  []Mark   // Keys absent from the previous list
	Update []Mark   // Keys present in both, with their new target state
	Exit   []string // Keys absent from the new list

	// Next is the new mark list in draw order with duplicate keys removed.
	Next []Mark
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return len(p.Enter) == 0 && len(p.Update) == 0 && len(p.Exit) == 0
}

// Reconcile performs a keyed enter/update/exit join of next against prev.
//
// If next holds several marks with the same key, the last one wins and
// takes the draw position of the first.
func Reconcile(prev, next []Mark) Patch {
	old := make(map[string]struct{}, len(prev))
	for _, m := range prev {
		old[m.Key] = struct{}{}
	}

	var p Patch
	pos := make(map[string]int, len(next))
	for _, m := range next {
		if i, dup := pos[m.Key]; dup {
			p.Next[i] = m
			continue
		}
		pos[m.Key] = len(p.Next)
		p.Next = append(p.Next, m)
	}

	for _, m := range p.Next {
		if _, ok := old[m.Key]; ok {
			p.Update = append(p.Update, m)
		} else {
			p.Enter = append(p.Enter, m)
		}
	}
	for _, m := range prev {
		if _, ok := pos[m.Key]; !ok {
			p.Exit = append(p.Exit, m.Key)
		}
	}
	return p
}
