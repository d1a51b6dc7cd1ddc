package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func ctxWithQuery(query string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?"+query, nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestFromContext_Defaults(t *testing.T) {
	p := FromContext(ctxWithQuery(""))
	if p.Limit != DefaultLimit {
		t.Errorf("expected default limit %d, got %d", DefaultLimit, p.Limit)
	}
	if p.Offset != 0 {
		t.Errorf("expected offset 0, got %d", p.Offset)
	}
}

func TestFromContext_Clamped(t *testing.T) {
	p := FromContext(ctxWithQuery("limit=9999&offset=-3"))
	if p.Limit != MaxLimit {
		t.Errorf("expected limit clamped to %d, got %d", MaxLimit, p.Limit)
	}
	if p.Offset != 0 {
		t.Errorf("expected negative offset clamped to 0, got %d", p.Offset)
	}
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	got := Slice(items, Params{Limit: 2, Offset: 1})
	if len(got) != 2 || got[0] != 2 || got[1] != 3 {
		t.Errorf("unexpected page: %v", got)
	}

	got = Slice(items, Params{Limit: 10, Offset: 4})
	if len(got) != 1 || got[0] != 5 {
		t.Errorf("unexpected tail page: %v", got)
	}

	got = Slice(items, Params{Limit: 10, Offset: 99})
	if len(got) != 0 {
		t.Errorf("expected empty page past the end, got %v", got)
	}
}

func TestNewResponse_HasMore(t *testing.T) {
	r := NewResponse(nil, 10, 5, 0)
	if !r.HasMore {
		t.Error("expected hasMore true when a further page exists")
	}
	r = NewResponse(nil, 10, 5, 5)
	if r.HasMore {
		t.Error("expected hasMore false on the final page")
	}
}
