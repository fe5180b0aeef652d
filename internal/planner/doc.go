// Package planner turns a discovery result into a deterministic plan.
//
// The planner partitions candidates into N target folders whose sizes differ
// by at most one, names the folders, and runs every preflight check before
// the executor is allowed to touch the filesystem.
//
// Key responsibilities:
//   - Partition candidates contiguously in discovery order
//   - Name target folders under the active suffix style
//   - Detect conflicts (folder paths occupied by files, occupied destinations,
//     destinations claimed twice)
//   - Schedule removal of prior output folders beyond the new folder count
package planner
