package suggestion

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/go-cmp/cmp"

	suggestionModel "github.com/chatterbox-app/backend/internal/model/suggestion"
)

func setupRouter() *chi.Mux {
	store := suggestionModel.NewMemoryStore(suggestionModel.Seed())
	handler := New(store)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestListSuggestions(t *testing.T) {
	r := setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/suggestions", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var suggestions []string
	if err := json.Unmarshal(resp.Body.Bytes(), &suggestions); err != nil {
		t.Fatalf("decode suggestions: %v", err)
	}
	if len(suggestions) != 4 {
		t.Fatalf("expected 4 suggestions, got %d", len(suggestions))
	}
	if diff := cmp.Diff(suggestionModel.Seed(), suggestions); diff != "" {
		t.Fatalf("unexpected suggestion list:\n%s", diff)
	}
}
