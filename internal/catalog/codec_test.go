package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCodecRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")

	if err := WriteRecords(path, sampleRecords()); err != nil {
		t.Fatalf("WriteRecords failed: %v", err)
	}

	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cat.Len() != 3 {
		t.Errorf("loaded catalog has %d pieces, want 3", cat.Len())
	}

	out := filepath.Join(dir, "out.json")
	if err := SaveFile(out, cat); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}
	records, err := ReadRecords(out)
	if err != nil {
		t.Fatalf("ReadRecords failed: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("round-tripped %d records, want 3", len(records))
	}
}

func TestWriteRecordsOmitsSubstituteFieldsOnDirectEntries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.json")
	if err := WriteRecords(path, sampleRecords()); err != nil {
		t.Fatalf("WriteRecords failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	text := string(data)
	if strings.Contains(text, "is_substitute") {
		t.Error("direct-only document should not contain is_substitute")
	}
	if strings.Contains(text, "substitutes") {
		t.Error("direct-only document should not contain substitutes")
	}
}

func TestReadRecordsMissingFile(t *testing.T) {
	_, err := ReadRecords(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Error("ReadRecords on a missing file should fail")
	}
}

func TestReadRecordsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadRecords(path); err == nil {
		t.Error("ReadRecords on malformed JSON should fail")
	}
}
