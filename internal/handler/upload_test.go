package handler_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/niklaus0x/viral-blog/internal/config"
	"github.com/niklaus0x/viral-blog/internal/handler"
	"github.com/niklaus0x/viral-blog/internal/repository"
	"github.com/niklaus0x/viral-blog/internal/service"
	"github.com/niklaus0x/viral-blog/internal/storage"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

func newUploadRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	viper.Set("uploads.dir", dir)
	viper.Set("client.origin", "http://localhost")

	store, err := storage.NewFSStore(dir, "http://localhost:8080/uploads")
	if err != nil {
		t.Fatalf("store error: %v", err)
	}

	authConfig := config.AuthConfig{AccessSecret: []byte("test-secret"), AccessTTL: time.Hour}
	services := service.New(zap.NewNop(), &repository.Repository{}, store, authConfig)
	h := handler.New(services, authConfig)

	return h.InitRoutes(), dir
}

func multipartBody(t *testing.T, field string, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("form file error: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write error: %v", err)
	}
	w.Close()
	return &body, w.FormDataContentType()
}

func TestUploadRejectsNonPost(t *testing.T) {
	r, _ := newUploadRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/upload-image", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Method not allowed") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestUploadRejectsMissingFile(t *testing.T) {
	r, _ := newUploadRouter(t)

	body, contentType := multipartBody(t, "attachment", "photo.png", pngHeader)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload-image", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No file provided") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	r, dir := newUploadRouter(t)

	oversized := make([]byte, 6<<20)
	copy(oversized, pngHeader)

	body, contentType := multipartBody(t, "file", "big.png", oversized)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload-image", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "File too large. Maximum size is 5MB") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	assertNoStoredObjects(t, dir)
}

func TestUploadRejectsWrongType(t *testing.T) {
	r, dir := newUploadRouter(t)

	body, contentType := multipartBody(t, "file", "notes.txt", []byte("plain text, definitely not an image"))
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload-image", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid file type") {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
	assertNoStoredObjects(t, dir)
}

func TestUploadStoresImage(t *testing.T) {
	r, dir := newUploadRouter(t)

	content := append(append([]byte{}, pngHeader...), []byte("fake image payload")...)
	body, contentType := multipartBody(t, "file", "my photo!.png", content)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/upload-image", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		URL string `json:"url"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if !strings.HasPrefix(resp.URL, "http://localhost:8080/uploads/") {
		t.Fatalf("unexpected url: %q", resp.URL)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected exactly one stored object, got %d", len(entries))
	}
	name := entries[0].Name()
	// Spaces and the bang are sanitized to underscores, the key keeps
	// the timestamp prefix.
	if !strings.HasSuffix(name, "-my_photo_.png") {
		t.Fatalf("unexpected object key: %q", name)
	}

	stored, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read error: %v", err)
	}
	if !bytes.Equal(stored, content) {
		t.Fatal("stored object does not match the upload")
	}
}

func assertNoStoredObjects(t *testing.T, dir string) {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no stored objects, found %d", len(entries))
	}
}
