package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

func newTestDriveService(t *testing.T, handler http.Handler) *DriveService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := drive.NewService(context.Background(),
		option.WithEndpoint(server.URL+"/drive/v3/"),
		option.WithoutAuthentication(),
		option.WithHTTPClient(server.Client()),
	)
	require.NoError(t, err)
	return &DriveService{client: client}
}

func TestDriveServiceListsJSONSnapshotsAcrossPages(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/drive/v3/files", func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.URL.Query().Get("q"), "'folder-9' in parents")
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("pageToken") == "" {
			json.NewEncoder(w).Encode(map[string]interface{}{
				"nextPageToken": "p2",
				"files": []map[string]string{
					{"id": "a", "name": "mirrorA.json", "mimeType": "text/plain", "modifiedTime": "2024-03-01T00:00:00Z"},
					{"id": "b", "name": "notes.txt", "mimeType": "text/plain", "modifiedTime": "2024-03-02T00:00:00Z"},
				},
			})
			return
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"files": []map[string]string{
				{"id": "c", "name": "dump", "mimeType": "application/json", "modifiedTime": "2024-01-01T00:00:00Z"},
			},
		})
	})
	svc := newTestDriveService(t, mux)

	snapshots, err := svc.ListSnapshots(context.Background(), "folder-9")
	require.NoError(t, err)
	require.Len(t, snapshots, 2)
	assert.Equal(t, "a", snapshots[0].FileID)
	assert.Equal(t, "c", snapshots[1].FileID)
	assert.Equal(t, "2024-03-01T00:00:00Z", snapshots[0].ModifiedAt)
}

func TestDriveServiceDownload(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/drive/v3/files/abc", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "media", r.URL.Query().Get("alt"))
		w.Write([]byte(`{"items": []}`))
	})
	svc := newTestDriveService(t, mux)

	data, err := svc.DownloadFile(context.Background(), "abc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"items": []}`, string(data))

	_, err = svc.DownloadFile(context.Background(), "missing")
	assert.Error(t, err)
}
