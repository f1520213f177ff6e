// Package serialization provides the encoding pipeline used by the
// checkpoint savers: a pluggable codec plus optional compression.
// PRINCIPLES:
// - KISS: Simple interface with multiple codec implementations
// - DRY: Reusable across all checkpoint implementations
package serialization

import (
	"encoding/json"

	"github.com/vmihailenco/msgpack/v5"
)

// Codec interface for serialization
// PRINCIPLES:
// - ISP: Simple interface with ≤5 methods
// - SRP: Single responsibility for serialization
type Codec interface {
	Encode(v interface{}) ([]byte, error)
	Decode(data []byte, v interface{}) error
	Name() string
}

// JSONCodec encodes with encoding/json. Human-readable, useful when
// checkpoints land in a database column that should stay inspectable.
type JSONCodec struct{}

func (JSONCodec) Encode(v interface{}) ([]byte, error)    { return json.Marshal(v) }
func (JSONCodec) Decode(data []byte, v interface{}) error { return json.Unmarshal(data, v) }
func (JSONCodec) Name() string                            { return "json" }

// MsgpackCodec encodes with MessagePack. Compact binary default for the
// in-memory saver.
type MsgpackCodec struct{}

func (MsgpackCodec) Encode(v interface{}) ([]byte, error)    { return msgpack.Marshal(v) }
func (MsgpackCodec) Decode(data []byte, v interface{}) error { return msgpack.Unmarshal(data, v) }
func (MsgpackCodec) Name() string                            { return "msgpack" }
