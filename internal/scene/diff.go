package scene

import "sort"

// Change is one parameter that differs between two snapshots. Prev is nil
// when the parameter was absent from the previous snapshot.
type Change struct {
	Key  Key
	Prev Value
	Next Value
}

// Diff reports every key in next that is absent from prev or carries a
// different value. Keys present only in prev are deliberately not reported:
// the console has no generic unset operation for these parameters, so a
// removal has nothing to send.
//
// Output order is deterministic: kind, then ascending entity number, then
// the Param constant order (on, fader, pan, name), which matches the scene
// format's own column order and sets mute state before level changes.
func Diff(prev, next Snapshot) []Change {
	var changes []Change
	for key, val := range next {
		old, ok := prev[key]
		if ok && old == val {
			continue
		}
		change := Change{Key: key, Next: val}
		if ok {
			change.Prev = old
		}
		changes = append(changes, change)
	}

	sort.Slice(changes, func(i, j int) bool {
		a, b := changes[i].Key, changes[j].Key
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}
		if a.Number != b.Number {
			return a.Number < b.Number
		}
		return a.Param < b.Param
	})
	return changes
}
