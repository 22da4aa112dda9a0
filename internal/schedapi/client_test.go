package schedapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, 2*time.Second)
}

func TestProductName(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/product/name" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Write([]byte("Расписание МГУ"))
	}))

	name, err := c.ProductName(context.Background())
	if err != nil {
		t.Fatalf("ProductName: %v", err)
	}
	if name != "Расписание МГУ" {
		t.Errorf("name = %q", name)
	}
}

func TestGroups(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":[{"id":"1","name":"ПМИ-101"},{"id":"2","name":"ФИТ-202"}]}`))
	}))

	groups, err := c.Groups(context.Background())
	if err != nil {
		t.Fatalf("Groups: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("groups = %d, expected 2", len(groups))
	}
	if groups[0].ID != "1" || groups[0].Name != "ПМИ-101" {
		t.Errorf("first group = %+v", groups[0])
	}
}

func TestEpoch(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("group_id"); got != "7" {
			t.Errorf("group_id = %q", got)
		}
		w.Write([]byte(`{"ok":{"epoch":1756684800000}}`))
	}))

	epoch, err := c.Epoch(context.Background(), "7")
	if err != nil {
		t.Fatalf("Epoch: %v", err)
	}
	if epoch != 1756684800000 {
		t.Errorf("epoch = %d", epoch)
	}
}

func TestSchedule(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("group_id") != "7" || q.Get("week") != "3" {
			t.Errorf("query = %v", q)
		}
		w.Write([]byte(`{"ok":[
			[{"name":"Физика","lesson_type":"Лекция","auditorium":"101"},{"empty":true}],
			[],[],[],[],[]
		]}`))
	}))

	days, err := c.Schedule(context.Background(), "7", 3)
	if err != nil {
		t.Fatalf("Schedule: %v", err)
	}
	if len(days) != 6 {
		t.Fatalf("days = %d, expected 6", len(days))
	}
	if len(days[0]) != 2 {
		t.Fatalf("monday lessons = %d, expected 2", len(days[0]))
	}
	if days[0][0].Name != "Физика" || days[0][0].IsEmpty() {
		t.Errorf("first lesson = %+v", days[0][0])
	}
	if !days[0][1].IsEmpty() {
		t.Error("placeholder lesson not detected")
	}
}

func TestErrorStatusPropagates(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))

	if _, err := c.Groups(context.Background()); err == nil {
		t.Error("expected error on 500, got nil")
	}
	if _, err := c.Epoch(context.Background(), "1"); err == nil {
		t.Error("expected error on 500, got nil")
	}
}

func TestMalformedEnvelope(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":`))
	}))

	if _, err := c.Schedule(context.Background(), "1", 1); err == nil {
		t.Error("expected decode error, got nil")
	}
}
