package source

import "testing"

func TestDecode_StripsUTF8BOM(t *testing.T) {
	bom := []byte{0xEF, 0xBB, 0xBF}
	raw := append(bom, []byte("int main(){return 0;}")...)

	got, err := Decode(raw, "t.bl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "int main(){return 0;}" {
		t.Errorf("expected BOM stripped, got %q", got)
	}
}

func TestDecode_PlainUTF8Unaffected(t *testing.T) {
	src := "int main(){return 0;}"
	got, err := Decode([]byte(src), "t.bl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != src {
		t.Errorf("expected unchanged source, got %q", got)
	}
}

func TestDecode_InvalidUTF8Rejected(t *testing.T) {
	// Lone continuation bytes: invalid UTF-8, and not a BOM prefix of any
	// kind, so BOMOverride hands them to its UTF-8 validating fallback,
	// which rejects them.
	raw := []byte{0x80, 0x80, 0x80}
	_, err := Decode(raw, "bad.bl")
	if err == nil {
		t.Fatal("expected an error for non-UTF-8 input")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/path/does/not/exist.bl")
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
