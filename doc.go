// Package corekit provides Key, a byte-block key representation for the
// hashing-parameterized containers in the sibling packages (buffer, dlist,
// hashtable, heap, graph); graph's TSP uses it to build its subset keys.
// It carries no container logic of its own.
package corekit
