// Package scene holds the retained description of a rendered chart.
//
// A Scene is an ordered, keyed list of drawable marks plus axis, legend and
// tooltip descriptors. It is owned by exactly one chart instance and is
// mutated in place by every reconciliation pass:
//
//	patch := scene.Reconcile(sc.Marks(), next)
//	transitions := sc.Apply(patch, baseline, false)
//
// Reconcile classifies marks by key into entering, updating and exiting
// sets. Apply removes exiting marks immediately, installs the new marks in
// their starting state and returns one Transition per mark for the animator
// to tween. Marks are matched by key, never by position, so reordering a
// dataset does not recreate its marks.
package scene
