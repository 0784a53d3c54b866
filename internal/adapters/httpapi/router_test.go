package httpapi

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouter_Health(t *testing.T) {
	base := RouterConfig{
		Checkins:   &fakeCheckinUC{},
		Events:     &fakeEventUC{},
		Students:   &fakeStudentUC{},
		Leads:      &fakeLeadUC{},
		Translator: stubTranslator{},
	}

	t.Run("storage reachable", func(t *testing.T) {
		cfg := base
		cfg.PingStorage = func(context.Context) error { return nil }
		w := doJSON(t, NewRouter(cfg), http.MethodGet, "/health", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("storage down", func(t *testing.T) {
		cfg := base
		cfg.PingStorage = func(context.Context) error { return errors.New("connection refused") }
		w := doJSON(t, NewRouter(cfg), http.MethodGet, "/health", "", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("no ping configured", func(t *testing.T) {
		w := doJSON(t, NewRouter(base), http.MethodGet, "/health", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
