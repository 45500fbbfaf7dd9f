package errhttp

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ghuser/inventory/pkg/config"
	"github.com/ghuser/inventory/pkg/logger"
	inventorydomain "github.com/ghuser/inventory/services/inventory/domain"
)

func TestWriteError_StatusCodes(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"ErrInvalidTitle", inventorydomain.ErrInvalidTitle, http.StatusBadRequest, MsgInvalidTitle},
		{"ErrInvalidLocationID", inventorydomain.ErrInvalidLocationID, http.StatusBadRequest, MsgInvalidLocationID},
		{"ErrInvalidCoordinates", inventorydomain.ErrInvalidCoordinates, http.StatusBadRequest, MsgInvalidCoordinates},
		{"ErrDuplicateCoordinates", inventorydomain.ErrDuplicateCoordinates, http.StatusBadRequest, MsgDuplicateCoordinates},
		{"ErrItemNotFound", inventorydomain.ErrItemNotFound, http.StatusNotFound, MsgItemNotFound},
		{"ErrItemNotUpdated", inventorydomain.ErrItemNotUpdated, http.StatusNotFound, MsgItemNotUpdated},
		{"ErrLocationNotFound", inventorydomain.ErrLocationNotFound, http.StatusNotFound, MsgLocationNotFound},
		{"ErrLocationInUse", inventorydomain.ErrLocationInUse, http.StatusConflict, MsgLocationInUse},
		{"wrapped ErrItemNotFound", fmt.Errorf("get item: %w", inventorydomain.ErrItemNotFound), http.StatusNotFound, MsgItemNotFound},
		{"double wrapped ErrInvalidTitle", fmt.Errorf("%w: %w", inventorydomain.ErrInvalidTitle, errors.New("too long")), http.StatusBadRequest, MsgInvalidTitle},
		{"unknown error", errors.New("something unexpected"), http.StatusInternalServerError, "Unable to get items!"},
		{"generic wrapped error", fmt.Errorf("context: %w", errors.New("db down")), http.StatusInternalServerError, "Unable to get items!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/item", http.NoBody)
			WriteError(w, r, logger.Nop(), tt.err, "Unable to get items!")

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			var body map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("response body is not valid JSON: %v", err)
			}
			if body["message"] != tt.wantMessage {
				t.Errorf("message: got %q, want %q", body["message"], tt.wantMessage)
			}
		})
	}
}

func TestWriteError_ContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody), logger.Nop(), inventorydomain.ErrItemNotFound, "x")

	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Fatalf("unexpected Content-Type %q", ct)
	}
}

// TestWriteError_InternalErrorLoggedNotLeaked checks the cause stays server-side.
func TestWriteError_InternalErrorLoggedNotLeaked(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, &config.Config{LogLevel: "debug"})

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/location/3", http.NoBody)
	WriteError(w, r, log, errors.New("pq: connection refused"), "Unable to delete location!")

	if strings.Contains(w.Body.String(), "connection refused") {
		t.Fatalf("internal error leaked to client: %s", w.Body.String())
	}
	if !strings.Contains(buf.String(), "connection refused") {
		t.Fatalf("internal error not logged: %s", buf.String())
	}
}

func TestWriteError_DomainErrorNotLogged(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, &config.Config{LogLevel: "debug"})

	w := httptest.NewRecorder()
	WriteError(w, httptest.NewRequest(http.MethodGet, "/item/9", http.NoBody), log, inventorydomain.ErrItemNotFound, "Unable to get item!")

	if buf.Len() != 0 {
		t.Fatalf("expected no log output, got %s", buf.String())
	}
}
