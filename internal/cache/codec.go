// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cache

import (
	"encoding/json"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Codec converts cached values to and from their on-disk representation.
type Codec[T any] interface {
	Encode(value T) ([]byte, error)
	Decode(data []byte) (T, error)
}

// JSONCodec stores values as JSON documents.
type JSONCodec[T any] struct{}

// Encode implements [Codec].
func (JSONCodec[T]) Encode(value T) ([]byte, error) {
	return json.Marshal(value)
}

// Decode implements [Codec].
func (JSONCodec[T]) Decode(data []byte) (T, error) {
	var v T
	err := json.Unmarshal(data, &v)
	return v, err
}

// BytesCodec stores byte slices verbatim.
type BytesCodec struct{}

// Encode implements [Codec].
func (BytesCodec) Encode(value []byte) ([]byte, error) {
	return append([]byte(nil), value...), nil
}

// Decode implements [Codec].
func (BytesCodec) Decode(data []byte) ([]byte, error) {
	return data, nil
}

// ZstdCodec compresses the output of an inner codec with zstd.
type ZstdCodec[T any] struct {
	inner Codec[T]
	enc   *zstd.Encoder
	dec   *zstd.Decoder
}

// NewZstdCodec wraps inner with zstd compression. EncodeAll and DecodeAll
// are safe for concurrent use, so one codec can serve a whole [Store].
func NewZstdCodec[T any](inner Codec[T]) (*ZstdCodec[T], error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}

	return &ZstdCodec[T]{inner: inner, enc: enc, dec: dec}, nil
}

// Encode implements [Codec].
func (c *ZstdCodec[T]) Encode(value T) ([]byte, error) {
	raw, err := c.inner.Encode(value)
	if err != nil {
		return nil, err
	}
	return c.enc.EncodeAll(raw, nil), nil
}

// Decode implements [Codec].
func (c *ZstdCodec[T]) Decode(data []byte) (T, error) {
	raw, err := c.dec.DecodeAll(data, nil)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("decompress: %w", err)
	}
	return c.inner.Decode(raw)
}
