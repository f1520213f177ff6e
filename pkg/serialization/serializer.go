package serialization

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

// CompressionType represents compression algorithms
type CompressionType string

const (
	CompressionNone CompressionType = "none"
	CompressionGzip CompressionType = "gzip"
	CompressionZstd CompressionType = "zstd"
)

// Config holds serialization settings
type Config struct {
	Codec       Codec
	Compression CompressionType
}

// Serializer runs the encode+compress pipeline in one direction and the
// mirror pipeline in the other.
// PRINCIPLES:
// - KISS: Simple interface hiding the pipeline
// - SRP: Single responsibility for the complete serialization path
type Serializer struct {
	config Config
}

// NewSerializer creates a serializer with the given configuration.
func NewSerializer(config Config) *Serializer {
	if config.Codec == nil {
		config.Codec = MsgpackCodec{}
	}
	if config.Compression == "" {
		config.Compression = CompressionNone
	}
	return &Serializer{config: config}
}

// DefaultSerializer returns the msgpack/no-compression pipeline used by
// the in-memory saver.
func DefaultSerializer() *Serializer {
	return NewSerializer(Config{})
}

// Serialize encodes and then compresses v.
func (s *Serializer) Serialize(v interface{}) ([]byte, error) {
	data, err := s.config.Codec.Encode(v)
	if err != nil {
		return nil, fmt.Errorf("codec encoding failed: %w", err)
	}
	data, err = s.compress(data)
	if err != nil {
		return nil, fmt.Errorf("compression failed: %w", err)
	}
	return data, nil
}

// Deserialize decompresses and then decodes data into v.
func (s *Serializer) Deserialize(data []byte, v interface{}) error {
	data, err := s.decompress(data)
	if err != nil {
		return fmt.Errorf("decompression failed: %w", err)
	}
	if err := s.config.Codec.Decode(data, v); err != nil {
		return fmt.Errorf("codec decoding failed: %w", err)
	}
	return nil
}

func (s *Serializer) compress(data []byte) ([]byte, error) {
	switch s.config.Compression {
	case CompressionGzip:
		var buf bytes.Buffer
		writer := gzip.NewWriter(&buf)
		if _, err := writer.Write(data); err != nil {
			return nil, err
		}
		if err := writer.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case CompressionZstd:
		encoder, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		defer encoder.Close()
		return encoder.EncodeAll(data, nil), nil
	default:
		return data, nil
	}
}

func (s *Serializer) decompress(data []byte) ([]byte, error) {
	switch s.config.Compression {
	case CompressionGzip:
		reader, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer reader.Close()
		return io.ReadAll(reader)
	case CompressionZstd:
		decoder, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer decoder.Close()
		return decoder.DecodeAll(data, nil)
	default:
		return data, nil
	}
}
