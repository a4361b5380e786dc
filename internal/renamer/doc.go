// Package renamer produces a rename Plan for a Series per spec section
// 4.8: target series name selection, folder and file-extension
// normalization, file-name alignment, and collision detection. Building a
// Plan never touches the filesystem; Apply executes a finished Plan and
// Simulate previews it.
package renamer
