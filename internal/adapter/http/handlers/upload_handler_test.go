package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	mock_interfaces "unimarket/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := io.Copy(fw, strings.NewReader(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return buf, mw.FormDataContentType()
}

func TestUploadHandler_Upload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing file returns 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mock_interfaces.NewMockIFileStorage(ctrl)
		h := NewUploadHandler(storage)

		r := gin.New()
		r.POST("/v1/upload", h.Upload)

		req := httptest.NewRequest(http.MethodPost, "/v1/upload", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("stores file and returns url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mock_interfaces.NewMockIFileStorage(ctrl)
		h := NewUploadHandler(storage)

		storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key, contentType string, body io.Reader) (string, error) {
				if !strings.HasSuffix(key, ".png") {
					t.Fatalf("expected key to keep the .png extension, got %q", key)
				}
				data, err := io.ReadAll(body)
				if err != nil {
					t.Fatalf("read body: %v", err)
				}
				if string(data) != "fake image bytes" {
					t.Fatalf("unexpected body: %q", data)
				}
				return "https://bucket.example.com/" + key, nil
			})

		body, contentType := multipartBody(t, "file", "photo.png", "fake image bytes")

		r := gin.New()
		r.POST("/v1/upload", h.Upload)

		req := httptest.NewRequest(http.MethodPost, "/v1/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if resp["success"] != true || resp["url"] == "" || resp["key"] == "" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})

	t.Run("storage error returns 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		storage := mock_interfaces.NewMockIFileStorage(ctrl)
		h := NewUploadHandler(storage)

		storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", io.ErrUnexpectedEOF)

		body, contentType := multipartBody(t, "file", "photo.jpg", "x")

		r := gin.New()
		r.POST("/v1/upload", h.Upload)

		req := httptest.NewRequest(http.MethodPost, "/v1/upload", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
