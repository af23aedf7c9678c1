package pprof

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouterServesIndex(t *testing.T) {
	w := httptest.NewRecorder()
	Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
