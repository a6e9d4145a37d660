package hir

import (
	"fmt"
	"reflect"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"
)

// Nodes with a kind-specific Data payload are encoded as fixed-length
// msgpack arrays. The payload's concrete type is not written; on decode it
// is recovered from the Kind field, which always precedes Data.

func decodeArrayHeader(dec *msgpack.Decoder, want int, what string) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	if n != want {
		return fmt.Errorf("%s: got %d fields, want %d", what, n, want)
	}
	return nil
}

// decodePayload decodes the payload for kind into a fresh value of the
// type registered in protos. An encoded nil yields a nil payload.
func decodePayload[D any](dec *msgpack.Decoder, protos []D, kind int, what string) (D, error) {
	var zero D
	code, err := dec.PeekCode()
	if err != nil {
		return zero, fmt.Errorf("%s payload: %w", what, err)
	}
	if code == msgpcode.Nil {
		return zero, dec.DecodeNil()
	}
	if kind < 0 || kind >= len(protos) || any(protos[kind]) == nil {
		return zero, fmt.Errorf("%s: kind %d carries no payload", what, kind)
	}
	p := reflect.New(reflect.TypeOf(protos[kind]))
	if err := dec.Decode(p.Interface()); err != nil {
		return zero, fmt.Errorf("%s payload: %w", what, err)
	}
	return p.Elem().Interface().(D), nil
}

func (e Expr) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(5); err != nil {
		return err
	}
	return enc.EncodeMulti(e.ID, e.Kind, e.Data, e.Attrs, e.Span)
}

func (e *Expr) DecodeMsgpack(dec *msgpack.Decoder) error {
	if err := decodeArrayHeader(dec, 5, "expr"); err != nil {
		return err
	}
	if err := dec.DecodeMulti(&e.ID, &e.Kind); err != nil {
		return err
	}
	data, err := decodePayload(dec, exprPayloads[:], int(e.Kind), "expr")
	if err != nil {
		return err
	}
	e.Data = data
	return dec.DecodeMulti(&e.Attrs, &e.Span)
}

func (p Pat) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(4); err != nil {
		return err
	}
	return enc.EncodeMulti(p.ID, p.Kind, p.Data, p.Span)
}

func (p *Pat) DecodeMsgpack(dec *msgpack.Decoder) error {
	if err := decodeArrayHeader(dec, 4, "pat"); err != nil {
		return err
	}
	if err := dec.DecodeMulti(&p.ID, &p.Kind); err != nil {
		return err
	}
	data, err := decodePayload(dec, patPayloads[:], int(p.Kind), "pat")
	if err != nil {
		return err
	}
	p.Data = data
	return dec.Decode(&p.Span)
}

func (t Ty) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(4); err != nil {
		return err
	}
	return enc.EncodeMulti(t.ID, t.Kind, t.Data, t.Span)
}

func (t *Ty) DecodeMsgpack(dec *msgpack.Decoder) error {
	if err := decodeArrayHeader(dec, 4, "ty"); err != nil {
		return err
	}
	if err := dec.DecodeMulti(&t.ID, &t.Kind); err != nil {
		return err
	}
	data, err := decodePayload(dec, tyPayloads[:], int(t.Kind), "ty")
	if err != nil {
		return err
	}
	t.Data = data
	return dec.Decode(&t.Span)
}

func (it Item) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(7); err != nil {
		return err
	}
	return enc.EncodeMulti(it.Ident, it.ID, it.Attrs, it.Kind, it.Data, it.Vis, it.Span)
}

func (it *Item) DecodeMsgpack(dec *msgpack.Decoder) error {
	if err := decodeArrayHeader(dec, 7, "item"); err != nil {
		return err
	}
	if err := dec.DecodeMulti(&it.Ident, &it.ID, &it.Attrs, &it.Kind); err != nil {
		return err
	}
	data, err := decodePayload(dec, itemPayloads[:], int(it.Kind), "item")
	if err != nil {
		return err
	}
	it.Data = data
	return dec.DecodeMulti(&it.Vis, &it.Span)
}

func (ti TraitItem) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(7); err != nil {
		return err
	}
	return enc.EncodeMulti(ti.Ident, ti.ID, ti.Attrs, ti.Generics, ti.Kind, ti.Data, ti.Span)
}

func (ti *TraitItem) DecodeMsgpack(dec *msgpack.Decoder) error {
	if err := decodeArrayHeader(dec, 7, "trait item"); err != nil {
		return err
	}
	if err := dec.DecodeMulti(&ti.Ident, &ti.ID, &ti.Attrs, &ti.Generics, &ti.Kind); err != nil {
		return err
	}
	data, err := decodePayload(dec, traitItemPayloads[:], int(ti.Kind), "trait item")
	if err != nil {
		return err
	}
	ti.Data = data
	return dec.Decode(&ti.Span)
}

func (ii ImplItem) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(9); err != nil {
		return err
	}
	return enc.EncodeMulti(ii.ID, ii.Ident, ii.Vis, ii.Defaultness, ii.Attrs, ii.Generics, ii.Kind, ii.Data, ii.Span)
}

func (ii *ImplItem) DecodeMsgpack(dec *msgpack.Decoder) error {
	if err := decodeArrayHeader(dec, 9, "impl item"); err != nil {
		return err
	}
	if err := dec.DecodeMulti(&ii.ID, &ii.Ident, &ii.Vis, &ii.Defaultness, &ii.Attrs, &ii.Generics, &ii.Kind); err != nil {
		return err
	}
	data, err := decodePayload(dec, implItemPayloads[:], int(ii.Kind), "impl item")
	if err != nil {
		return err
	}
	ii.Data = data
	return dec.Decode(&ii.Span)
}

func (fi ForeignItem) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(7); err != nil {
		return err
	}
	return enc.EncodeMulti(fi.Ident, fi.Attrs, fi.Kind, fi.Data, fi.ID, fi.Span, fi.Vis)
}

func (fi *ForeignItem) DecodeMsgpack(dec *msgpack.Decoder) error {
	if err := decodeArrayHeader(dec, 7, "foreign item"); err != nil {
		return err
	}
	if err := dec.DecodeMulti(&fi.Ident, &fi.Attrs, &fi.Kind); err != nil {
		return err
	}
	data, err := decodePayload(dec, foreignItemPayloads[:], int(fi.Kind), "foreign item")
	if err != nil {
		return err
	}
	fi.Data = data
	return dec.DecodeMulti(&fi.ID, &fi.Span, &fi.Vis)
}
