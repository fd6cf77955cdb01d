package encoding

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"sync"

	"github.com/algorand/go-codec/codec"
	"github.com/danlabs/danwallet/domain/engine/engineerrors"
	"github.com/pkg/errors"
)

// CBORHandle is used to instantiate the canonical CBOR encoders and decoders
// that produce the bytes fed into every engine hash.
var CBORHandle *codec.CborHandle

// JSONHandle is used to instantiate JSON encoders and decoders for values
// handed to a host environment (canonical, indented).
var JSONHandle *codec.JsonHandle

func init() {
	CBORHandle = new(codec.CborHandle)
	CBORHandle.Canonical = true
	CBORHandle.ErrorIfNoField = true
	CBORHandle.ErrorIfNoArrayExpand = true
	CBORHandle.RecursiveEmptyCheck = true

	JSONHandle = new(codec.JsonHandle)
	JSONHandle.Canonical = true
	JSONHandle.ErrorIfNoField = true
	JSONHandle.ErrorIfNoArrayExpand = true
	JSONHandle.RecursiveEmptyCheck = true
	JSONHandle.Indent = 2
	JSONHandle.HTMLCharsAsIs = true
}

var encoderPool = sync.Pool{
	New: func() interface{} {
		return codec.NewEncoder(nil, CBORHandle)
	},
}

// Encode writes the canonical CBOR encoding of obj to w. Values whose type
// holds a func, chan or unsafe pointer have no canonical encoding and are
// rejected.
func Encode(w io.Writer, obj interface{}) error {
	err := checkEncodable(reflect.TypeOf(obj))
	if err != nil {
		return engineerrors.WrapEncodingFault(err, typeName(obj))
	}

	enc := encoderPool.Get().(*codec.Encoder)
	enc.Reset(w)
	err = enc.Encode(obj)
	// Encoders are only returned to the pool after a clean encode, a
	// failed one may hold partial state.
	if err != nil {
		return engineerrors.WrapEncodingFault(err, typeName(obj))
	}
	encoderPool.Put(enc)
	return nil
}

// EncodeToBytes returns the canonical CBOR encoding of obj.
func EncodeToBytes(obj interface{}) ([]byte, error) {
	var buf bytes.Buffer
	err := Encode(&buf, obj)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MustEncode is like EncodeToBytes but panics if obj cannot be encoded.
// Use it only for values which are encodable by construction.
func MustEncode(obj interface{}) []byte {
	encoded, err := EncodeToBytes(obj)
	if err != nil {
		panic(err)
	}
	return encoded
}

// Decode decodes canonical CBOR bytes into objptr.
func Decode(b []byte, objptr interface{}) error {
	dec := codec.NewDecoderBytes(b, CBORHandle)
	err := dec.Decode(objptr)
	if err != nil {
		return engineerrors.WrapMalformedInput(err, "failed to decode CBOR value")
	}
	return nil
}

// EncodeJSON returns the indented JSON encoding of obj.
func EncodeJSON(obj interface{}) ([]byte, error) {
	var buf []byte
	enc := codec.NewEncoderBytes(&buf, JSONHandle)
	err := enc.Encode(obj)
	if err != nil {
		return nil, engineerrors.WrapEncodingFault(err, typeName(obj))
	}
	return buf, nil
}

// DecodeJSON decodes JSON bytes into objptr.
func DecodeJSON(b []byte, objptr interface{}) error {
	dec := codec.NewDecoderBytes(b, JSONHandle)
	err := dec.Decode(objptr)
	if err != nil {
		return engineerrors.WrapMalformedInput(err, "failed to decode JSON value")
	}
	return nil
}

func typeName(obj interface{}) string {
	return fmt.Sprintf("%T", obj)
}

// encodableTypes caches the result of checkEncodable per type
var encodableTypes sync.Map

// checkEncodable walks the static type t and returns an error if any part
// of it has no canonical encoding. Values held by interface fields are not
// visible here and are left to the codec.
func checkEncodable(t reflect.Type) error {
	if t == nil {
		return nil
	}
	if cached, ok := encodableTypes.Load(t); ok {
		if cached == nil {
			return nil
		}
		return cached.(error)
	}
	err := walkEncodable(t, make(map[reflect.Type]bool))
	if err != nil {
		encodableTypes.Store(t, err)
	} else {
		encodableTypes.Store(t, nil)
	}
	return err
}

func walkEncodable(t reflect.Type, visited map[reflect.Type]bool) error {
	if visited[t] {
		return nil
	}
	visited[t] = true

	switch t.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return errors.Errorf("unsupported kind %s in %s", t.Kind(), t)
	case reflect.Ptr, reflect.Slice, reflect.Array:
		return walkEncodable(t.Elem(), visited)
	case reflect.Map:
		err := walkEncodable(t.Key(), visited)
		if err != nil {
			return err
		}
		return walkEncodable(t.Elem(), visited)
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if field.PkgPath != "" || field.Tag.Get("codec") == "-" {
				continue
			}
			err := walkEncodable(field.Type, visited)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
