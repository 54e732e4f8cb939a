package figma

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"slices"
	"sync/atomic"
	"testing"
)

func TestExtractFileKey(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"file URL", "https://www.figma.com/file/ABC123XYZ/Design-Name", "ABC123XYZ", false},
		{"design URL", "https://www.figma.com/design/ABC123XYZ/Design-Name", "ABC123XYZ", false},
		{"with node-id", "https://www.figma.com/design/4gkABR5gEZnIvlCaXmA4KI/Landing?node-id=11933-305884&t=x-1", "4gkABR5gEZnIvlCaXmA4KI", false},
		{"without www", "https://figma.com/file/ABC123XYZ/Design-Name", "ABC123XYZ", false},
		{"http", "http://www.figma.com/file/ABC123XYZ/Design-Name", "ABC123XYZ", false},
		{"key only", "https://www.figma.com/file/ABC123XYZ", "ABC123XYZ", false},
		{"key then query", "https://www.figma.com/file/ABC123XYZ?node-id=1-2", "ABC123XYZ", false},
		{"missing key", "https://www.figma.com/file/", "", true},
		{"wrong domain", "https://www.example.com/file/ABC123XYZ", "", true},
		{"wrong path", "https://www.figma.com/dashboard/ABC123XYZ", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractFileKey(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ExtractFileKey() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if err != nil && !errors.Is(err, ErrInvalidURL) {
				t.Errorf("ExtractFileKey() error = %v, want ErrInvalidURL", err)
			}
			if got != tt.want {
				t.Errorf("ExtractFileKey() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractNodeIDs(t *testing.T) {
	const base = "https://www.figma.com/file/ABC123/Design"

	tests := []struct {
		name string
		url  string
		want []string
	}{
		{"query colon", base + "?node-id=123:456", []string{"123:456"}},
		{"query dash", base + "?node-id=11933-305884&t=ObvUckUHZc8tSjeT-1", []string{"11933:305884"}},
		{"query list mixed", base + "?node-id=123:456,789-012", []string{"123:456", "789:012"}},
		{"query middle", base + "?first=value&node-id=123:456&last=value", []string{"123:456"}},
		{"fragment", base + "#123:456,789:012", []string{"123:456", "789:012"}},
		{"fragment anchor", base + "#comments", []string{}},
		{"fragment partly anchor", base + "#123:456,top", []string{}},
		{"fragment dash", base + "#12-34", []string{"12:34"}},
		{"path", base + "/nodes/123:456,789:012", []string{"123:456", "789:012"}},
		{"trimmed", base + "?node-id=123:456, 789:012", []string{"123:456", "789:012"}},
		{"deduplicated", base + "?node-id=123:456,123-456,789:012", []string{"123:456", "789:012"}},
		{"none", base, []string{}},
		{"empty parameter", base + "?node-id=", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractNodeIDs(tt.url)
			if err != nil {
				t.Fatalf("ExtractNodeIDs() error = %v", err)
			}
			if got == nil || !slices.Equal(got, tt.want) {
				t.Errorf("ExtractNodeIDs() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestDeduplicateNodeIDs(t *testing.T) {
	tests := []struct {
		ids  []string
		want []string
	}{
		{[]string{"1:2", "3:4"}, []string{"1:2", "3:4"}},
		{[]string{"7:8", "1:2", "7:8", "3:4", "1:2"}, []string{"7:8", "1:2", "3:4"}},
		{[]string{}, []string{}},
	}

	for _, tt := range tests {
		if got := deduplicateNodeIDs(tt.ids); !slices.Equal(got, tt.want) {
			t.Errorf("deduplicateNodeIDs(%v) = %v, want %v", tt.ids, got, tt.want)
		}
	}
}

func TestGetFileRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Figma-Token") != "secret" {
			t.Errorf("token header = %q", r.Header.Get("X-Figma-Token"))
		}
		if r.URL.Path != "/files/KEY" {
			t.Errorf("path = %q, want /files/KEY", r.URL.Path)
		}
		if calls.Add(1) == 1 {
			http.Error(w, "slow down", http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"name":"Landing","document":{"id":"0:0","type":"DOCUMENT"}}`))
	}))
	defer srv.Close()

	c := NewClient("secret", WithBaseURL(srv.URL), WithBackoff(0))
	file, err := c.GetFile("KEY")
	if err != nil {
		t.Fatalf("GetFile() error = %v", err)
	}
	if file.Name != "Landing" || file.Document.Type != "DOCUMENT" {
		t.Errorf("GetFile() = %+v", file)
	}
	if n := calls.Load(); n != 2 {
		t.Errorf("calls = %d, want 2", n)
	}
}

func TestGetFileNoRetryOnClientError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := NewClient("x", WithBaseURL(srv.URL), WithBackoff(0)).GetFile("KEY")
	if err == nil {
		t.Fatal("GetFile() error = nil, want 403")
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("calls = %d, want 1", n)
	}
}

func TestGetFileNodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("ids"); got != "1:2,3:4" {
			t.Errorf("ids = %q, want 1:2,3:4", got)
		}
		w.Write([]byte(`{"name":"F","nodes":{"1:2":{"document":{"id":"1:2","name":"Hero","type":"FRAME"}}}}`))
	}))
	defer srv.Close()

	c := NewClient("x", WithBaseURL(srv.URL+"/"), WithBackoff(0))
	resp, err := c.GetFileNodes("KEY", []string{"1:2", "3:4"})
	if err != nil {
		t.Fatalf("GetFileNodes() error = %v", err)
	}
	if got := resp.Nodes["1:2"].Document.Name; got != "Hero" {
		t.Errorf("node name = %q, want Hero", got)
	}

	if _, err := c.GetFileNodes("KEY", nil); err == nil {
		t.Error("GetFileNodes(nil) error = nil")
	}
}
