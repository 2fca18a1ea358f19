package service

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/marilyndevx/FinFusion-V1/internal/storage/sqlite"
	"github.com/marilyndevx/FinFusion-V1/pkg/api"
)

var testNow = time.Date(2024, 3, 31, 12, 0, 0, 0, time.UTC)

type testServer struct {
	client   *api.Client
	insights *InsightsService
}

// setupTestServer serves all three services over a fresh database.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	cfg := DefaultInsightsConfig()
	cfg.Now = func() time.Time { return testNow }
	insights := NewInsightsService(store, cfg)

	mux := http.NewServeMux()
	mux.Handle(api.NewExpenseServiceHandler(NewExpenseService(store, nil)))
	mux.Handle(api.NewGroupServiceHandler(NewGroupService(store)))
	mux.Handle(api.NewInsightsServiceHandler(insights))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testServer{
		client:   api.NewClient(http.DefaultClient, server.URL),
		insights: insights,
	}
}

func daysAgo(n int) string {
	return testNow.AddDate(0, 0, -n).Format("2006-01-02")
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Fatalf("expected code %v, got %v (%v)", want, got, err)
	}
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.White)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
	return buf.Bytes()
}

func (s *testServer) addExpense(t *testing.T, amount float64, category string, date string) api.Expense {
	t.Helper()
	resp, err := s.client.CreateExpense(context.Background(), connect.NewRequest(&api.CreateExpenseRequest{
		Amount:   amount,
		Category: category,
		Date:     date,
	}))
	if err != nil {
		t.Fatalf("CreateExpense failed: %v", err)
	}
	return resp.Msg.Expense
}

func (s *testServer) addGroup(t *testing.T, name string, members ...string) api.Group {
	t.Helper()
	resp, err := s.client.CreateGroup(context.Background(), connect.NewRequest(&api.CreateGroupRequest{
		Name:    name,
		Members: members,
	}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	return resp.Msg.Group
}
