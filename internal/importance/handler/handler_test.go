package handler

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"churnsight/internal/importance"
	"churnsight/pkg/testutil"
)

func TestHandleImportance(t *testing.T) {
	rows := []importance.Row{
		{Feature: "vintage", Score: 0.12},
		{Feature: "current_balance", Score: 0.31},
	}
	r := chi.NewRouter()
	New(rows).Register(r)

	req := testutil.NewRequestWithBody(t, http.MethodGet, "/api/importance", "")
	rr := testutil.DoRequest(r, req)

	require.Equal(t, http.StatusOK, rr.Code)
	resp := testutil.UnmarshalResponse[struct {
		Rows []importance.Row `json:"rows"`
	}](t, rr)
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, "vintage", resp.Rows[0].Feature)
}
