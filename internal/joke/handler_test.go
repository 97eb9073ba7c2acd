package joke_test

import (
	"errors"
	"net/http"
	"reflect"
	"sync"
	"testing"

	"github.com/dedeco/cloudfunctions-gcp-deploy-approaches/internal/joke"
)

type fakeRequest struct{ method string }

func (r fakeRequest) Method() string { return r.method }

// recorder captures what the handler writes and counts terminal calls.
type recorder struct {
	headers   map[string]string
	status    int
	body      any
	terminals int
	err       error
}

func newRecorder() *recorder { return &recorder{headers: map[string]string{}} }

func (r *recorder) SetHeader(k, v string) {
	if r.terminals > 0 {
		panic("header set after response was sent")
	}
	r.headers[k] = v
}

func (r *recorder) NoContent(status int) error {
	r.terminals++
	r.status = status
	return r.err
}

func (r *recorder) JSON(status int, v any) error {
	r.terminals++
	r.status = status
	r.body = v
	return r.err
}

func TestHandlePreflight(t *testing.T) {
	h := joke.New(joke.Default())
	rec := newRecorder()

	if err := h.Handle(fakeRequest{method: http.MethodOptions}, rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.status != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.status)
	}
	if rec.terminals != 1 {
		t.Fatalf("expected one terminal write, got %d", rec.terminals)
	}
	if rec.body != nil {
		t.Fatalf("expected empty body, got %#v", rec.body)
	}
	want := map[string]string{
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET",
		"Access-Control-Allow-Headers": "Content-Type",
		"Access-Control-Max-Age":       "3600",
	}
	if !reflect.DeepEqual(rec.headers, want) {
		t.Fatalf("headers = %v, want %v", rec.headers, want)
	}
}

func TestHandlePreflightHeadersStable(t *testing.T) {
	h := joke.New(joke.Default())
	first, second := newRecorder(), newRecorder()
	_ = h.Handle(fakeRequest{method: http.MethodOptions}, first)
	_ = h.Handle(fakeRequest{method: http.MethodOptions}, second)
	if !reflect.DeepEqual(first.headers, second.headers) {
		t.Fatalf("preflight headers differ: %v vs %v", first.headers, second.headers)
	}
}

func TestHandleJokeForAnyOtherMethod(t *testing.T) {
	cat := joke.Default()
	h := joke.New(cat)

	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodDelete, "", "options", "Options"} {
		t.Run("method="+method, func(t *testing.T) {
			rec := newRecorder()
			if err := h.Handle(fakeRequest{method: method}, rec); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.status != http.StatusOK {
				t.Fatalf("expected 200, got %d", rec.status)
			}
			if rec.terminals != 1 {
				t.Fatalf("expected one terminal write, got %d", rec.terminals)
			}
			if got := rec.headers["Access-Control-Allow-Origin"]; got != "*" {
				t.Fatalf("allow-origin = %q", got)
			}
			if _, ok := rec.headers["Access-Control-Allow-Methods"]; ok {
				t.Fatalf("preflight headers leaked into joke response")
			}
			body, ok := rec.body.(joke.Body)
			if !ok {
				t.Fatalf("unexpected body type %T", rec.body)
			}
			if !cat.Contains(body.Joke) {
				t.Fatalf("joke %q is not in the catalog", body.Joke)
			}
		})
	}
}

func TestHandleUsesPicker(t *testing.T) {
	cat := joke.Default()
	var gotN int
	h := joke.New(cat, joke.WithPicker(func(n int) int { gotN = n; return 3 }))

	rec := newRecorder()
	_ = h.Handle(fakeRequest{method: http.MethodGet}, rec)

	if gotN != cat.Len() {
		t.Fatalf("picker called with n=%d, want %d", gotN, cat.Len())
	}
	if body := rec.body.(joke.Body); body.Joke != "Chuck Norris can divide by zero." {
		t.Fatalf("unexpected joke %q", body.Joke)
	}
}

func TestPickFoldsOutOfRangeIndex(t *testing.T) {
	cat := joke.NewCatalog("a", "b", "c")
	for idx, want := range map[int]string{3: "a", 4: "b", -1: "c", -3: "a"} {
		h := joke.New(cat, joke.WithPicker(func(int) int { return idx }))
		if got := h.Pick(); got != want {
			t.Fatalf("picker %d: got %q, want %q", idx, got, want)
		}
	}
}

func TestHandlePropagatesWriteError(t *testing.T) {
	h := joke.New(joke.Default())
	boom := errors.New("connection reset")

	for _, method := range []string{http.MethodOptions, http.MethodGet} {
		rec := newRecorder()
		rec.err = boom
		if err := h.Handle(fakeRequest{method: method}, rec); !errors.Is(err, boom) {
			t.Fatalf("%s: expected write error, got %v", method, err)
		}
	}
}

func TestDefaultPickerCoversCatalog(t *testing.T) {
	cat := joke.Default()
	h := joke.New(cat)

	seen := make(map[string]int, cat.Len())
	for i := 0; i < 5000; i++ {
		j := h.Pick()
		if !cat.Contains(j) {
			t.Fatalf("joke %q is not in the catalog", j)
		}
		seen[j]++
	}
	if len(seen) != cat.Len() {
		t.Fatalf("saw %d distinct jokes, want %d", len(seen), cat.Len())
	}
}

func TestHandleConcurrent(t *testing.T) {
	cat := joke.Default()
	h := joke.New(cat)

	var wg sync.WaitGroup
	errs := make(chan string, 64)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				rec := newRecorder()
				_ = h.Handle(fakeRequest{method: http.MethodGet}, rec)
				if b := rec.body.(joke.Body); !cat.Contains(b.Joke) {
					errs <- b.Joke
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for j := range errs {
		t.Errorf("joke %q is not in the catalog", j)
	}
}

func TestNewPanicsOnEmptyCatalog(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for empty catalog")
		}
	}()
	joke.New(joke.Catalog{})
}
