package http

import (
	"donation-report-srv/internal/model"
	"donation-report-srv/internal/report"
	"donation-report-srv/pkg/response"
)

type getReportReq struct {
	PeriodType model.PeriodType
	Year       *int
	Force      bool
}

func (r getReportReq) toInput() report.GetOrBuildInput {
	return report.GetOrBuildInput{
		PeriodType:      r.PeriodType,
		Year:            r.Year,
		ForceRegenerate: r.Force,
	}
}

type generateReq struct {
	PeriodType      string `json:"period_type" binding:"required" example:"weekly"`
	Year            *int   `json:"year,omitempty" example:"2024"`
	ForceRegenerate bool   `json:"force_regenerate"`
}

func (r generateReq) toInput() (report.GetOrBuildInput, error) {
	p, err := model.ParsePeriodType(r.PeriodType)
	if err != nil {
		return report.GetOrBuildInput{}, errInvalidPeriodType
	}
	return report.GetOrBuildInput{
		PeriodType:      p,
		Year:            r.Year,
		ForceRegenerate: r.ForceRegenerate,
	}, nil
}

type generateResp struct {
	Location    string `json:"location"`
	CacheHit    bool   `json:"cache_hit"`
	CacheKey    string `json:"cache_key"`
	Fingerprint string `json:"fingerprint"`
}

type reportFileResp struct {
	Filename  string            `json:"filename"`
	Path      string            `json:"path"`
	SizeMB    float64           `json:"size_mb"`
	CreatedAt response.DateTime `json:"created_at" swaggertype:"string"`
}

type listReportsResp struct {
	Reports []reportFileResp `json:"reports"`
	Count   int              `json:"count"`
}

type recentResp struct {
	ReportIDs []string `json:"report_ids"`
	Count     int      `json:"count"`
}

type cleanupResp struct {
	Deleted int `json:"deleted"`
	Days    int `json:"days"`
}

type invalidateResp struct {
	Cleared int `json:"cleared"`
}

func (h *handler) newGenerateResp(o report.GetOrBuildOutput) generateResp {
	return generateResp{
		Location:    o.Location,
		CacheHit:    o.CacheHit,
		CacheKey:    string(o.CacheKey),
		Fingerprint: string(o.Fingerprint),
	}
}

func (h *handler) newListReportsResp(files []report.ReportFile) listReportsResp {
	out := make([]reportFileResp, 0, len(files))
	for _, f := range files {
		out = append(out, reportFileResp{
			Filename:  f.Filename,
			Path:      f.Path,
			SizeMB:    f.SizeMB,
			CreatedAt: response.DateTime(f.CreatedAt),
		})
	}
	return listReportsResp{Reports: out, Count: len(out)}
}

func (h *handler) newRecentResp(ids []string) recentResp {
	if ids == nil {
		ids = []string{}
	}
	return recentResp{ReportIDs: ids, Count: len(ids)}
}
