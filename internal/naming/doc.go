// Package naming maps target folder indexes to folder names and back.
//
// A folder name is a prefix joined to a suffix by a dash. Three suffix
// styles exist:
//   - numbers: group-1, group-2, ... (1-based decimal)
//   - letters: group-a ... group-z, group-aa, group-ab, ... (bijective base-26)
//   - none:    the bare prefix; only usable with a single folder
//
// ParseFolderName is the inverse of FolderName and only accepts the
// canonical spelling, so "group-01" or "group-A" are never recognized as
// output folders.
package naming
