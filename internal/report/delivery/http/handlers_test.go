package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"donation-report-srv/internal/middleware"
	"donation-report-srv/internal/model"
	"donation-report-srv/internal/report"
	"donation-report-srv/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUseCase struct {
	lastInput report.GetOrBuildInput
	out       report.GetOrBuildOutput
	err       error
	files     []report.ReportFile
	recent    []string
	lastLimit int64
	lastDays  int
	cleared   int
}

func (f *fakeUseCase) GetOrBuild(ctx context.Context, input report.GetOrBuildInput) (report.GetOrBuildOutput, error) {
	f.lastInput = input
	return f.out, f.err
}

func (f *fakeUseCase) ListReports(ctx context.Context) ([]report.ReportFile, error) {
	return f.files, f.err
}

func (f *fakeUseCase) ListRecent(ctx context.Context, limit int64) ([]string, error) {
	f.lastLimit = limit
	return f.recent, f.err
}

func (f *fakeUseCase) CleanupOldReports(ctx context.Context, days int) (int, error) {
	f.lastDays = days
	return 3, f.err
}

func (f *fakeUseCase) CleanupExpired(ctx context.Context) (int, error) {
	return 0, nil
}

func (f *fakeUseCase) InvalidateAll(ctx context.Context) (int, error) {
	return f.cleared, f.err
}

func newTestRouter(uc report.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Recovery(log.NewNop(), nil))
	New(log.NewNop(), uc, nil).RegisterRoutes(&r.RouterGroup)
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	return e
}

func TestServeReport(t *testing.T) {
	t.Run("local file is streamed as attachment", func(t *testing.T) {
		p := filepath.Join(t.TempDir(), "donation_report_weekly_current_20240315_103000.pdf")
		require.NoError(t, os.WriteFile(p, []byte("%PDF-1.3"), 0o644))
		uc := &fakeUseCase{out: report.GetOrBuildOutput{Location: p}}

		w := do(newTestRouter(uc), http.MethodGet, "/reports/weekly", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Disposition"), "donation_report_weekly_current_20240315_103000.pdf")
		assert.Equal(t, "%PDF-1.3", w.Body.String())
		assert.Equal(t, model.PeriodWeekly, uc.lastInput.PeriodType)
		assert.False(t, uc.lastInput.ForceRegenerate)
	})

	t.Run("remote location redirects", func(t *testing.T) {
		uc := &fakeUseCase{out: report.GetOrBuildOutput{Location: "https://cdn.example.com/reports/a.pdf"}}

		w := do(newTestRouter(uc), http.MethodGet, "/reports/monthly?force=true", "")
		assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
		assert.Equal(t, "https://cdn.example.com/reports/a.pdf", w.Header().Get("Location"))
		assert.Equal(t, model.PeriodMonthly, uc.lastInput.PeriodType)
		assert.True(t, uc.lastInput.ForceRegenerate)
	})

	t.Run("yearly passes the year", func(t *testing.T) {
		uc := &fakeUseCase{out: report.GetOrBuildOutput{Location: "https://cdn.example.com/reports/a.pdf"}}

		w := do(newTestRouter(uc), http.MethodGet, "/reports/yearly/2023", "")
		assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
		require.NotNil(t, uc.lastInput.Year)
		assert.Equal(t, 2023, *uc.lastInput.Year)
	})

	t.Run("bad year", func(t *testing.T) {
		w := do(newTestRouter(&fakeUseCase{}), http.MethodGet, "/reports/yearly/abc", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad force flag", func(t *testing.T) {
		w := do(newTestRouter(&fakeUseCase{}), http.MethodGet, "/reports/weekly?force=maybe", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("build failure is a 500", func(t *testing.T) {
		uc := &fakeUseCase{err: report.ErrBuildFailed}
		w := do(newTestRouter(uc), http.MethodGet, "/reports/weekly", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Report generation failed", decode(t, w).Message)
	})
}

func TestGenerate(t *testing.T) {
	t.Run("returns the decision", func(t *testing.T) {
		uc := &fakeUseCase{out: report.GetOrBuildOutput{
			Location:    "/srv/reports/a.pdf",
			CacheHit:    true,
			CacheKey:    "0123456789abcdef",
			Fingerprint: "fedcba9876543210",
		}}

		w := do(newTestRouter(uc), http.MethodPost, "/api/v1/reports/generate", `{"period_type":"Yearly","year":2022,"force_regenerate":true}`)
		require.Equal(t, http.StatusOK, w.Code)

		var data generateResp
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
		assert.Equal(t, generateResp{Location: "/srv/reports/a.pdf", CacheHit: true, CacheKey: "0123456789abcdef", Fingerprint: "fedcba9876543210"}, data)

		assert.Equal(t, model.PeriodYearly, uc.lastInput.PeriodType)
		require.NotNil(t, uc.lastInput.Year)
		assert.Equal(t, 2022, *uc.lastInput.Year)
		assert.True(t, uc.lastInput.ForceRegenerate)
	})

	t.Run("unknown period", func(t *testing.T) {
		w := do(newTestRouter(&fakeUseCase{}), http.MethodPost, "/api/v1/reports/generate", `{"period_type":"daily"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing body", func(t *testing.T) {
		w := do(newTestRouter(&fakeUseCase{}), http.MethodPost, "/api/v1/reports/generate", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid year from usecase", func(t *testing.T) {
		uc := &fakeUseCase{err: report.ErrInvalidYear}
		w := do(newTestRouter(uc), http.MethodPost, "/api/v1/reports/generate", `{"period_type":"yearly","year":-1}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAdminEndpoints(t *testing.T) {
	t.Run("list reports", func(t *testing.T) {
		uc := &fakeUseCase{files: []report.ReportFile{
			{Filename: "b.pdf", Path: "/r/b.pdf", SizeMB: 0.12, CreatedAt: time.Date(2024, 3, 15, 10, 0, 0, 0, time.Local)},
		}}
		w := do(newTestRouter(uc), http.MethodGet, "/api/v1/reports", "")
		require.Equal(t, http.StatusOK, w.Code)

		var data struct {
			Reports []map[string]any `json:"reports"`
			Count   int              `json:"count"`
		}
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
		assert.Equal(t, 1, data.Count)
		require.Len(t, data.Reports, 1)
		assert.Equal(t, "b.pdf", data.Reports[0]["filename"])
		assert.Equal(t, "2024-03-15 10:00:00", data.Reports[0]["created_at"])
	})

	t.Run("recent uses the default limit", func(t *testing.T) {
		uc := &fakeUseCase{recent: []string{"a", "b"}}
		w := do(newTestRouter(uc), http.MethodGet, "/api/v1/reports/recent", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, int64(report.DefaultRecentLimit), uc.lastLimit)

		var data recentResp
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
		assert.Equal(t, recentResp{ReportIDs: []string{"a", "b"}, Count: 2}, data)
	})

	t.Run("cleanup", func(t *testing.T) {
		uc := &fakeUseCase{}
		w := do(newTestRouter(uc), http.MethodPost, "/api/v1/reports/cleanup?days=14", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 14, uc.lastDays)

		var data cleanupResp
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
		assert.Equal(t, cleanupResp{Deleted: 3, Days: 14}, data)
	})

	t.Run("cleanup rejects zero days", func(t *testing.T) {
		w := do(newTestRouter(&fakeUseCase{}), http.MethodPost, "/api/v1/reports/cleanup?days=0", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalidate", func(t *testing.T) {
		uc := &fakeUseCase{cleared: 5}
		w := do(newTestRouter(uc), http.MethodDelete, "/api/v1/reports/cache", "")
		require.Equal(t, http.StatusOK, w.Code)

		var data invalidateResp
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
		assert.Equal(t, 5, data.Cleared)
	})

	t.Run("unexpected error is recovered as 500", func(t *testing.T) {
		uc := &fakeUseCase{err: context.DeadlineExceeded}
		w := do(newTestRouter(uc), http.MethodDelete, "/api/v1/reports/cache", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
