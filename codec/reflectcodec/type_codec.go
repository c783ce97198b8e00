// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package reflectcodec

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"github.com/ava-labs/movegenesis/codec"
	"github.com/ava-labs/movegenesis/utils/wrappers"
)

// DefaultTagName that enables serialization.
const DefaultTagName = "serialize"

var (
	_ codec.Codec = (*genericCodec)(nil)

	errNeedPointer = errors.New("argument to unmarshal must be a pointer")
)

// genericCodec handles marshaling and unmarshaling of structs with a generic
// implementation for every kind it supports. Supported kinds are bools,
// signed and unsigned integers of every width (except int and uint), strings,
// slices, arrays, structs and pointers to any of the above.
//
// Fields are only (de)serialized if they are exported and tagged with one of
// the codec's tag names set to "true". Slices are prefixed by a 4 byte
// element count; empty slices unmarshal as nil.
type genericCodec struct {
	maxSliceLen uint32
	fielder     StructFielder
}

// New returns a new, concurrency-safe codec
func New(tagNames []string, maxSliceLen uint32) codec.Codec {
	return &genericCodec{
		maxSliceLen: maxSliceLen,
		fielder:     NewStructFielder(tagNames, maxSliceLen),
	}
}

func (c *genericCodec) Size(value interface{}) (int, error) {
	if value == nil {
		return 0, codec.ErrMarshalNil // can't marshal nil
	}
	return c.size(reflect.ValueOf(value), c.maxSliceLen)
}

func (c *genericCodec) size(value reflect.Value, maxSliceLen uint32) (int, error) {
	switch kind := value.Kind(); kind {
	case reflect.Uint8, reflect.Int8, reflect.Bool:
		return wrappers.ByteLen, nil
	case reflect.Uint16, reflect.Int16:
		return wrappers.ShortLen, nil
	case reflect.Uint32, reflect.Int32:
		return wrappers.IntLen, nil
	case reflect.Uint64, reflect.Int64:
		return wrappers.LongLen, nil
	case reflect.String:
		return wrappers.StringLen(value.String()), nil
	case reflect.Ptr:
		if value.IsNil() {
			return 0, codec.ErrMarshalNil
		}
		return c.size(value.Elem(), maxSliceLen)
	case reflect.Slice:
		numElts := value.Len()
		if uint32(numElts) > maxSliceLen {
			return 0, fmt.Errorf("%w: %d > %d", codec.ErrMaxSliceLenExceeded, numElts, maxSliceLen)
		}
		if value.Type().Elem().Kind() == reflect.Uint8 {
			return wrappers.IntLen + numElts, nil
		}
		size := wrappers.IntLen
		for i := 0; i < numElts; i++ {
			innerSize, err := c.size(value.Index(i), c.maxSliceLen)
			if err != nil {
				return 0, err
			}
			size += innerSize
		}
		return size, nil
	case reflect.Array:
		numElts := value.Len()
		if value.Type().Elem().Kind() == reflect.Uint8 {
			return numElts, nil
		}
		size := 0
		for i := 0; i < numElts; i++ {
			innerSize, err := c.size(value.Index(i), c.maxSliceLen)
			if err != nil {
				return 0, err
			}
			size += innerSize
		}
		return size, nil
	case reflect.Struct:
		serializedFields, err := c.fielder.GetSerializedFields(value.Type())
		if err != nil {
			return 0, err
		}
		size := 0
		for _, fieldDesc := range serializedFields {
			innerSize, err := c.size(value.Field(fieldDesc.Index), fieldDesc.MaxSliceLen)
			if err != nil {
				return 0, err
			}
			size += innerSize
		}
		return size, nil
	default:
		return 0, fmt.Errorf("%w: %s", codec.ErrUnsupportedType, kind)
	}
}

// To marshal an interface, [value] must be a pointer to the interface
func (c *genericCodec) MarshalInto(value interface{}, p *wrappers.Packer) error {
	if value == nil {
		return codec.ErrMarshalNil // can't marshal nil
	}
	return c.marshal(reflect.ValueOf(value), p, c.maxSliceLen)
}

// marshal writes the byte representation of [value] to [p]
func (c *genericCodec) marshal(value reflect.Value, p *wrappers.Packer, maxSliceLen uint32) error {
	switch kind := value.Kind(); kind {
	case reflect.Uint8:
		p.PackByte(uint8(value.Uint()))
	case reflect.Int8:
		p.PackByte(uint8(value.Int()))
	case reflect.Uint16:
		p.PackShort(uint16(value.Uint()))
	case reflect.Int16:
		p.PackShort(uint16(value.Int()))
	case reflect.Uint32:
		p.PackInt(uint32(value.Uint()))
	case reflect.Int32:
		p.PackInt(uint32(value.Int()))
	case reflect.Uint64:
		p.PackLong(value.Uint())
	case reflect.Int64:
		p.PackLong(uint64(value.Int()))
	case reflect.Bool:
		p.PackBool(value.Bool())
	case reflect.String:
		p.PackStr(value.String())
	case reflect.Ptr:
		if value.IsNil() {
			return codec.ErrMarshalNil
		}
		return c.marshal(value.Elem(), p, maxSliceLen)
	case reflect.Slice:
		numElts := value.Len()
		if uint32(numElts) > maxSliceLen {
			return fmt.Errorf("%w: %d > %d", codec.ErrMaxSliceLenExceeded, numElts, maxSliceLen)
		}
		p.PackInt(uint32(numElts))
		if value.Type().Elem().Kind() == reflect.Uint8 {
			p.PackFixedBytes(value.Bytes())
			return p.Err
		}
		for i := 0; i < numElts; i++ {
			if err := c.marshal(value.Index(i), p, c.maxSliceLen); err != nil {
				return err
			}
		}
	case reflect.Array:
		numElts := value.Len()
		for i := 0; i < numElts; i++ {
			if err := c.marshal(value.Index(i), p, c.maxSliceLen); err != nil {
				return err
			}
		}
	case reflect.Struct:
		serializedFields, err := c.fielder.GetSerializedFields(value.Type())
		if err != nil {
			return err
		}
		for _, fieldDesc := range serializedFields {
			if err := c.marshal(value.Field(fieldDesc.Index), p, fieldDesc.MaxSliceLen); err != nil {
				return err
			}
		}
	default:
		return fmt.Errorf("%w: %s", codec.ErrUnsupportedType, kind)
	}
	return p.Err
}

// Unmarshal unmarshals [bytes] into [dest], where [dest] must be a pointer
func (c *genericCodec) Unmarshal(bytes []byte, dest interface{}) error {
	if dest == nil {
		return codec.ErrUnmarshalNil
	}

	p := wrappers.Packer{
		Bytes: bytes,
	}
	destPtr := reflect.ValueOf(dest)
	if destPtr.Kind() != reflect.Ptr || destPtr.IsNil() {
		return errNeedPointer
	}
	if err := c.unmarshal(&p, destPtr.Elem(), c.maxSliceLen); err != nil {
		return err
	}
	if p.Offset != len(bytes) {
		return fmt.Errorf("%w: read %d provided %d", codec.ErrExtraSpace, p.Offset, len(bytes))
	}
	return nil
}

// Unmarshal from p.Bytes into [value]. [value] must be addressable.
func (c *genericCodec) unmarshal(p *wrappers.Packer, value reflect.Value, maxSliceLen uint32) error {
	switch kind := value.Kind(); kind {
	case reflect.Uint8:
		value.SetUint(uint64(p.UnpackByte()))
	case reflect.Int8:
		value.SetInt(int64(int8(p.UnpackByte())))
	case reflect.Uint16:
		value.SetUint(uint64(p.UnpackShort()))
	case reflect.Int16:
		value.SetInt(int64(int16(p.UnpackShort())))
	case reflect.Uint32:
		value.SetUint(uint64(p.UnpackInt()))
	case reflect.Int32:
		value.SetInt(int64(int32(p.UnpackInt())))
	case reflect.Uint64:
		value.SetUint(p.UnpackLong())
	case reflect.Int64:
		value.SetInt(int64(p.UnpackLong()))
	case reflect.Bool:
		value.SetBool(p.UnpackBool())
	case reflect.String:
		value.SetString(p.UnpackStr())
	case reflect.Slice:
		numElts32 := p.UnpackInt()
		if p.Err != nil {
			return p.Err
		}
		if numElts32 > maxSliceLen {
			return fmt.Errorf("%w: %d > %d", codec.ErrMaxSliceLenExceeded, numElts32, maxSliceLen)
		}
		numElts := int(numElts32)
		if numElts == 0 {
			value.Set(reflect.Zero(value.Type()))
			return nil
		}
		if value.Type().Elem().Kind() == reflect.Uint8 {
			bytes := p.UnpackFixedBytes(numElts)
			if p.Err != nil {
				return p.Err
			}
			// Copy so the result never aliases the input buffer.
			value.SetBytes(slices.Clone(bytes))
			return nil
		}
		minEltSize, err := c.minSize(value.Type().Elem())
		if err != nil {
			return err
		}
		if bytesLeft := len(p.Bytes) - p.Offset; minEltSize > 0 && numElts > bytesLeft/minEltSize {
			return fmt.Errorf("%w: %d elements of at least %d bytes with %d bytes left",
				wrappers.ErrInsufficientLength,
				numElts,
				minEltSize,
				bytesLeft,
			)
		}
		slice := reflect.MakeSlice(value.Type(), numElts, numElts)
		for i := 0; i < numElts; i++ {
			if err := c.unmarshal(p, slice.Index(i), c.maxSliceLen); err != nil {
				return err
			}
		}
		value.Set(slice)
	case reflect.Array:
		numElts := value.Len()
		for i := 0; i < numElts; i++ {
			if err := c.unmarshal(p, value.Index(i), c.maxSliceLen); err != nil {
				return err
			}
		}
	case reflect.Struct:
		serializedFields, err := c.fielder.GetSerializedFields(value.Type())
		if err != nil {
			return err
		}
		for _, fieldDesc := range serializedFields {
			if err := c.unmarshal(p, value.Field(fieldDesc.Index), fieldDesc.MaxSliceLen); err != nil {
				return err
			}
		}
	case reflect.Ptr:
		v := reflect.New(value.Type().Elem())
		if err := c.unmarshal(p, v.Elem(), maxSliceLen); err != nil {
			return err
		}
		value.Set(v)
	default:
		return fmt.Errorf("%w: %s", codec.ErrUnsupportedType, kind)
	}
	return p.Err
}

// minSize returns the fewest bytes a value of type [t] can be marshaled into.
func (c *genericCodec) minSize(t reflect.Type) (int, error) {
	switch kind := t.Kind(); kind {
	case reflect.Uint8, reflect.Int8, reflect.Bool:
		return wrappers.ByteLen, nil
	case reflect.Uint16, reflect.Int16, reflect.String:
		return wrappers.ShortLen, nil
	case reflect.Uint32, reflect.Int32, reflect.Slice:
		return wrappers.IntLen, nil
	case reflect.Uint64, reflect.Int64:
		return wrappers.LongLen, nil
	case reflect.Ptr:
		return c.minSize(t.Elem())
	case reflect.Array:
		eltSize, err := c.minSize(t.Elem())
		return t.Len() * eltSize, err
	case reflect.Struct:
		serializedFields, err := c.fielder.GetSerializedFields(t)
		if err != nil {
			return 0, err
		}
		size := 0
		for _, fieldDesc := range serializedFields {
			fieldSize, err := c.minSize(t.Field(fieldDesc.Index).Type)
			if err != nil {
				return 0, err
			}
			size += fieldSize
		}
		return size, nil
	default:
		return 0, fmt.Errorf("%w: %s", codec.ErrUnsupportedType, kind)
	}
}
