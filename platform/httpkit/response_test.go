package httpkit

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"leadscoring_backend/platform/apperr"
)

func handleOnTestContext(t *testing.T, err error) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	return recorder, HandleError(c, err)
}

func TestHandleError_NilError_NotHandled(t *testing.T) {
	_, handled := handleOnTestContext(t, nil)
	if handled {
		t.Fatalf("nil error must not be handled")
	}
}

func TestHandleError_TypedErrorUsesKindStatus(t *testing.T) {
	recorder, handled := handleOnTestContext(t, apperr.NotFound("no offer configured"))
	if !handled {
		t.Fatalf("expected error to be handled")
	}
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", recorder.Code)
	}
}

func TestHandleError_UntypedErrorIsInternal(t *testing.T) {
	recorder, handled := handleOnTestContext(t, errors.New("pg connection reset"))
	if !handled {
		t.Fatalf("expected error to be handled")
	}
	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500 for untyped error, got %d", recorder.Code)
	}
}
