// Package index builds the two lookup structures a Library is queried
// through: an ID-keyed one-to-one map and a normalized-title-keyed
// one-to-many map, both populated in stable category-then-series
// traversal order.
package index
