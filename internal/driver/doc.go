// Package driver runs the name check over sets of files: load, scan every
// file in parallel, then collect the valid names into one table.
package driver
