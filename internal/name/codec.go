package name

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Text and msgpack codecs. Decoding is construction: the decoded text goes
// through the same checker as the constructors, and the receiver is left
// untouched on failure.

func (id Identifier) MarshalText() ([]byte, error) { return []byte(id.text), nil }
func (tn TypeName) MarshalText() ([]byte, error)   { return []byte(tn.text), nil }
func (op Operator) MarshalText() ([]byte, error)   { return []byte(op.text), nil }

func (id *Identifier) UnmarshalText(b []byte) error {
	v, err := NewIdentifierBytes(b)
	if err != nil {
		return err
	}
	*id = v
	return nil
}

func (tn *TypeName) UnmarshalText(b []byte) error {
	v, err := NewTypeNameBytes(b)
	if err != nil {
		return err
	}
	*tn = v
	return nil
}

func (op *Operator) UnmarshalText(b []byte) error {
	v, err := NewOperatorBytes(b)
	if err != nil {
		return err
	}
	*op = v
	return nil
}

var (
	_ msgpack.CustomEncoder = Identifier{}
	_ msgpack.CustomDecoder = (*Identifier)(nil)
	_ msgpack.CustomEncoder = TypeName{}
	_ msgpack.CustomDecoder = (*TypeName)(nil)
	_ msgpack.CustomEncoder = Operator{}
	_ msgpack.CustomDecoder = (*Operator)(nil)
)

func (id Identifier) EncodeMsgpack(enc *msgpack.Encoder) error { return enc.EncodeString(id.text) }
func (tn TypeName) EncodeMsgpack(enc *msgpack.Encoder) error   { return enc.EncodeString(tn.text) }
func (op Operator) EncodeMsgpack(enc *msgpack.Encoder) error   { return enc.EncodeString(op.text) }

func (id *Identifier) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	return id.UnmarshalText([]byte(s))
}

func (tn *TypeName) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	return tn.UnmarshalText([]byte(s))
}

func (op *Operator) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return err
	}
	return op.UnmarshalText([]byte(s))
}

// MarshalText writes the category name, so JSON and TOML stay readable.
func (c Category) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("cannot marshal category %d", uint8(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	v, err := ParseCategory(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Categories stay one byte on the msgpack wire.
func (c Category) EncodeMsgpack(enc *msgpack.Encoder) error { return enc.EncodeUint8(uint8(c)) }

func (c *Category) DecodeMsgpack(dec *msgpack.Decoder) error {
	v, err := dec.DecodeUint8()
	if err != nil {
		return err
	}
	if !Category(v).Valid() {
		return fmt.Errorf("cannot unmarshal category %d", v)
	}
	*c = Category(v)
	return nil
}

// Tagged is the self-describing wire form of a Name whose category is not
// known statically.
type Tagged struct {
	Category Category `msgpack:"c" json:"category"`
	Text     string   `msgpack:"t" json:"text"`
}

// Tag converts n to its wire form.
func Tag(n Name) Tagged {
	return Tagged{Category: n.Category(), Text: n.Text()}
}

// Name validates the wire form and rebuilds the name.
func (t Tagged) Name() (Name, error) {
	return New(t.Category, t.Text)
}
