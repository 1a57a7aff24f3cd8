package verify

import "errors"

var (
	ErrOrder      = errors.New("bst order violated")
	ErrParentLink = errors.New("parent link inconsistent")
	ErrCycle      = errors.New("node reachable twice")
	ErrSize       = errors.New("size does not match reachable nodes")
)
