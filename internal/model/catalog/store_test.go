package catalog

import "testing"

func TestSeedContainsOriginalModels(t *testing.T) {
	store := NewMemoryStore(Seed("ep-123"))

	want := map[string]Provider{
		"gpt-4":   ProviderOpenAI,
		"gpt-3.5": ProviderOpenAI,
		"claude":  ProviderAnthropic,
		"llama":   ProviderHuggingFace,
		"gemini":  ProviderGoogle,
		"doubao":  ProviderArk,
	}
	for id, provider := range want {
		got, ok := store.FindByID(id)
		if !ok {
			t.Fatalf("model %s missing from seed", id)
		}
		if got.Provider != provider {
			t.Fatalf("model %s: provider %s, want %s", id, got.Provider, provider)
		}
		if got.MaxTokens != 500 {
			t.Fatalf("model %s: max tokens %d, want 500", id, got.MaxTokens)
		}
	}

	doubao, _ := store.FindByID("doubao")
	if doubao.ModelName != "ep-123" {
		t.Fatalf("expected ark model name to come from argument, got %q", doubao.ModelName)
	}
}

func TestMemoryStoreListIsACopy(t *testing.T) {
	store := NewMemoryStore(Seed(""))
	list := store.List()
	list[0].ID = "mutated"

	if _, ok := store.FindByID("gpt-4"); !ok {
		t.Fatal("mutating List result must not affect the store")
	}
	if first := store.List()[0].ID; first != "gpt-4" {
		t.Fatalf("expected insertion order to be kept, got first=%s", first)
	}
}

func TestMemoryStoreFindByIDMissing(t *testing.T) {
	store := NewMemoryStore(nil)
	if _, ok := store.FindByID("gpt-4"); ok {
		t.Fatal("expected lookup on empty store to fail")
	}
}
