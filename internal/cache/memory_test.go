package cache

import (
	"testing"
	"time"
)

func TestMemory_SetGet(t *testing.T) {
	m := NewMemory(time.Minute)

	key := Key("JOHN SMITH\nCERTIFICATE")
	if _, found := m.Get(key); found {
		t.Fatal("unexpected hit on empty cache")
	}

	m.Set(key, []byte(`[{"label":"PERSON","text":"John Smith"}]`), 0)

	got, found := m.Get(key)
	if !found {
		t.Fatal("expected hit after Set")
	}
	if string(got) != `[{"label":"PERSON","text":"John Smith"}]` {
		t.Errorf("Get = %q", got)
	}

	m.Clear()
	if _, found := m.Get(key); found {
		t.Error("expected miss after Clear")
	}
}

func TestKey_DistinctForDistinctText(t *testing.T) {
	if Key("block one") == Key("block two") {
		t.Error("distinct blocks produced the same key")
	}
	if Key("block one") != Key("block one") {
		t.Error("identical blocks produced different keys")
	}
}
