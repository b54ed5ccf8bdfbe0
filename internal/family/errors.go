// internal/family/errors.go
package family

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingTier is returned when an index has no tier assignment
	ErrMissingTier = errors.New("missing tier assignment")

	// ErrUnrecognizedTier is returned for a tier label outside hot/warm
	ErrUnrecognizedTier = errors.New("unrecognized tier label")

	// ErrZeroShardDivision is returned in strict mode for a family with no shards
	ErrZeroShardDivision = errors.New("zero shard count")
)

// MissingTierError identifies the index lacking a tier assignment
type MissingTierError struct {
	Index string
}

func (e *MissingTierError) Error() string {
	return fmt.Sprintf("index %q: %v", e.Index, ErrMissingTier)
}

func (e *MissingTierError) Unwrap() error { return ErrMissingTier }

// UnrecognizedTierError identifies an index pinned to an unknown tier
type UnrecognizedTierError struct {
	Index string
	Tier  string
}

func (e *UnrecognizedTierError) Error() string {
	return fmt.Sprintf("index %q: %v %q", e.Index, ErrUnrecognizedTier, e.Tier)
}

func (e *UnrecognizedTierError) Unwrap() error { return ErrUnrecognizedTier }

// ZeroShardError identifies a family whose average shard size is undefined
type ZeroShardError struct {
	Family string
}

func (e *ZeroShardError) Error() string {
	return fmt.Sprintf("family %q: %v", e.Family, ErrZeroShardDivision)
}

func (e *ZeroShardError) Unwrap() error { return ErrZeroShardDivision }
