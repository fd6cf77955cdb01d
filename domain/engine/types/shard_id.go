package types

import (
	"encoding/hex"
)

// ShardID identifies the shard responsible for a versioned substate
type ShardID Hash

// ShardIDFromString parses a hexadecimal shard id
func ShardIDFromString(s string) (ShardID, error) {
	var id ShardID
	err := decodeHex(id[:], s)
	return id, err
}

func (id ShardID) String() string {
	return hex.EncodeToString(id[:])
}

// MarshalText implements encoding.TextMarshaler
func (id ShardID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (id *ShardID) UnmarshalText(text []byte) error {
	parsed, err := ShardIDFromString(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
