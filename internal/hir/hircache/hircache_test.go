package hircache_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"oxbow/internal/def"
	"oxbow/internal/hir"
	"oxbow/internal/hir/hircache"
	"oxbow/internal/source"
	"oxbow/internal/trace"
)

// constFn builds the crate `fn <name>() { <n> }`.
func constFn(t *testing.T, name string, n uint64) *hir.Crate {
	t.Helper()
	alloc := hir.NewIDAllocator(def.DefaultPolicy())
	b := hir.NewCrateBuilder()

	id := alloc.NewOwner(def.ClassItem)
	value := &hir.Expr{
		ID:   alloc.Next(id.Owner),
		Kind: hir.ExprLit,
		Data: hir.LitData{Lit: hir.Lit{Kind: hir.LitInt, Int: n, Span: source.Span{Start: 10, End: 12}}},
		Span: source.Span{Start: 10, End: 12},
	}
	body := hir.BodyID{HirID: value.ID}
	if err := b.AddBody(body, &hir.Body{Value: value}); err != nil {
		t.Fatal(err)
	}
	item := &hir.Item{
		Ident: hir.IdentWithDummySpan(name),
		ID:    id,
		Kind:  hir.ItemFn,
		Data: hir.FnItem{
			Sig:      hir.FnSig{Decl: &hir.FnDecl{Output: hir.FnRetTy{Kind: hir.RetDefault}}},
			Generics: *hir.EmptyGenerics(),
			Body:     body,
		},
		Vis:  hir.Visibility{Kind: hir.VisInherited},
		Span: source.Span{Start: 0, End: 14},
	}
	if err := b.AddItem(item); err != nil {
		t.Fatal(err)
	}
	b.SetRoot(hir.Mod{Inner: source.Span{End: 14}, ItemIDs: []hir.ItemID{{ID: id}}}, nil, source.Span{End: 14})
	return b.Build()
}

func TestEncodeDecode(t *testing.T) {
	c := constFn(t, "answer", 42)
	data, fp, err := hircache.Encode(c)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if fp != hircache.Sum(data) {
		t.Errorf("fingerprint does not match the encoding")
	}

	got, err := hircache.Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Items.Len() != 1 || got.Bodies.Len() != 1 {
		t.Fatalf("decoded %d items, %d bodies", got.Items.Len(), got.Bodies.Len())
	}
	it := got.Item(c.Module.ItemIDs[0])
	if it.Ident.Name != "answer" {
		t.Errorf("item name = %q", it.Ident.Name)
	}
	fn := it.Data.(hir.FnItem)
	if lit := got.Body(fn.Body).Value.Data.(hir.LitData).Lit; lit.Int != 42 {
		t.Errorf("body literal = %d", lit.Int)
	}

	again, fp2, err := hircache.Encode(got)
	if err != nil {
		t.Fatal(err)
	}
	if fp2 != fp || !bytes.Equal(again, data) {
		t.Errorf("re-encoding changed the crate")
	}
}

func TestFingerprintDistinguishesCrates(t *testing.T) {
	_, a, err := hircache.Encode(constFn(t, "answer", 42))
	if err != nil {
		t.Fatal(err)
	}
	_, b, err := hircache.Encode(constFn(t, "answer", 43))
	if err != nil {
		t.Fatal(err)
	}
	_, a2, err := hircache.Encode(constFn(t, "answer", 42))
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Errorf("different crates share fingerprint %s", a)
	}
	if a != a2 {
		t.Errorf("same crate fingerprinted as %s and %s", a, a2)
	}

	parsed, err := hircache.ParseFingerprint(a.String())
	if err != nil || parsed != a {
		t.Errorf("ParseFingerprint(%s) = %s, %v", a, parsed, err)
	}
	if _, err := hircache.ParseFingerprint("abcd"); err == nil {
		t.Errorf("short fingerprint accepted")
	}
	if len(a.Short()) != 12 || !strings.HasPrefix(a.String(), a.Short()) {
		t.Errorf("Short() = %q", a.Short())
	}
}

func TestDecode_SchemaMismatch(t *testing.T) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.EncodeArrayLen(2); err != nil {
		t.Fatal(err)
	}
	if err := enc.EncodeUint16(hircache.SchemaVersion + 1); err != nil {
		t.Fatal(err)
	}
	if err := enc.EncodeNil(); err != nil {
		t.Fatal(err)
	}
	_, err := hircache.Decode(buf.Bytes())
	if !errors.Is(err, hircache.ErrSchemaMismatch) {
		t.Errorf("Decode error = %v, want ErrSchemaMismatch", err)
	}
}

func TestDecode_Garbage(t *testing.T) {
	for _, data := range [][]byte{nil, {0xc3}, {0x93, 0x01, 0x02, 0x03}} {
		if _, err := hircache.Decode(data); err == nil {
			t.Errorf("Decode(%x) succeeded", data)
		}
	}
}

func TestStore_PutGet(t *testing.T) {
	ring := trace.NewRingTracer(16, trace.LevelDetail)
	ctx := trace.WithTracer(context.Background(), ring)

	s, err := hircache.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	c := constFn(t, "answer", 42)
	fp, err := s.Put(ctx, c)
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if _, err := os.Stat(filepath.Join(s.Dir(), "crates", fp.String()+".mp")); err != nil {
		t.Errorf("entry not on disk: %v", err)
	}
	entries, err := os.ReadDir(filepath.Join(s.Dir(), "crates"))
	if err != nil || len(entries) != 1 {
		t.Errorf("crates dir holds %d entries (%v), want only the crate", len(entries), err)
	}

	got, ok, err := s.Get(ctx, fp)
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	if got.Items.Len() != 1 {
		t.Errorf("cached crate has %d items", got.Items.Len())
	}

	other, _, _ := hircache.Encode(constFn(t, "answer", 7))
	if _, ok, err := s.Get(ctx, hircache.Sum(other)); ok || err != nil {
		t.Errorf("Get of an absent entry = %v, %v", ok, err)
	}

	var names []string
	for _, ev := range ring.Snapshot() {
		names = append(names, ev.Name)
	}
	if want := "cache.put cache.hit cache.miss"; strings.Join(names, " ") != want {
		t.Errorf("trace events = %v, want %s", names, want)
	}

	if err := s.Drop(fp); err != nil {
		t.Fatal(err)
	}
	if _, ok, _ := s.Get(ctx, fp); ok {
		t.Errorf("dropped entry still served")
	}
	if err := s.Drop(fp); err != nil {
		t.Errorf("second Drop: %v", err)
	}
}

func TestStore_StaleSchemaIsMiss(t *testing.T) {
	s, err := hircache.Open(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	fp, err := s.Put(context.Background(), constFn(t, "answer", 42))
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	_ = enc.EncodeArrayLen(2)
	_ = enc.EncodeUint16(0)
	_ = enc.EncodeNil()
	path := filepath.Join(s.Dir(), "crates", fp.String()+".mp")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok, err := s.Get(context.Background(), fp); ok || err != nil {
		t.Errorf("stale entry: Get = %v, %v; want a miss", ok, err)
	}
}

func TestStore_DefaultDirAndNil(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	s, err := hircache.Open("")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(os.Getenv("XDG_CACHE_HOME"), "oxbow"); s.Dir() != want {
		t.Errorf("Dir() = %q, want %q", s.Dir(), want)
	}
	if err := s.DropAll(); err != nil {
		t.Errorf("DropAll on an empty store: %v", err)
	}

	var none *hircache.Store
	if _, ok, err := none.Get(context.Background(), hircache.Fingerprint{}); ok || err != nil {
		t.Errorf("nil store Get = %v, %v", ok, err)
	}
	if _, err := none.Put(context.Background(), constFn(t, "f", 1)); err != nil {
		t.Errorf("nil store Put: %v", err)
	}
}

func TestSaveLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crate.mp")
	fp, err := hircache.SaveFile(path, constFn(t, "answer", 42))
	if err != nil {
		t.Fatal(err)
	}
	c, fp2, err := hircache.LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if fp != fp2 || c.Items.Len() != 1 {
		t.Errorf("LoadFile = %d items, fp %s vs %s", c.Items.Len(), fp2, fp)
	}
}
