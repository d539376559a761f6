// Package field makes downstream geometry alliance-agnostic: trajectories and
// regions are authored for one half of a mirrored field and reflected onto
// the other half at the moment they are used.
package field

// Side identifies which half of the mirrored field the vehicle operates from.
type Side int

const (
	// SideUnknown means the operating side has not been reported yet. It
	// behaves as SideNormal: geometry is passed through unflipped.
	SideUnknown Side = iota
	// SideNormal is the side trajectories and regions are authored for.
	SideNormal
	// SideMirrored is the reflected side; geometry must be mirrored.
	SideMirrored
)

// SideFunc reports the current operating side. It is queried fresh on every
// mirroring call, never cached, because the reported side can change during
// warm-up before it is locked in.
type SideFunc func() Side
