// Package models defines the VibeManga library hierarchy: Volume,
// SubGroup, Series, Category, and Library, plus the Metadata record that is
// the source of truth for a Series' identity.
//
// The hierarchy owns its children by value sequence, never by pointer back
// reference: a Library owns Categories, a Category owns Series or child
// Categories, a Series owns Volumes and SubGroups. Any code that needs the
// inverse direction (which Series a Volume belongs to, which Category a
// Series sits under) must go through internal/index or plain path
// comparison instead of a stored pointer.
package models
