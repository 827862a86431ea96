package httpkit

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"prlens/internal/platform/config"
	perr "prlens/internal/platform/errors"
	phttp "prlens/internal/platform/net/http"
	kit "prlens/internal/platform/testkit"
)

type echoReq struct {
	Login string `json:"contributor" validate:"required"`
}

func api(t *testing.T) http.Handler {
	t.Helper()
	r := phttp.NewServer(phttp.ServerConfig{}).Router()
	MountAPIV1(r, CommonStack(StackOptions{Timeout: time.Second, SlowRequest: time.Hour}), func(api Router) {
		MountUnder(api, "/prs", nil, func(prs Router) {
			PostJSON(prs, "/author", func(_ *http.Request, in echoReq) (any, error) {
				if in.Login == "ghost" {
					return nil, perr.NotFoundf("no pull requests for %s", in.Login)
				}
				return map[string]string{"login": in.Login}, nil
			})
		})
		GetJSON(api, "/meta/version", func(*http.Request) (any, error) { return "dev", nil })
	})
	return r.Mux()
}

func TestMountAPIV1_Routes(t *testing.T) {
	h := api(t)

	rec := kit.PostJSON(t, h, "/api/v1/prs/author", echoReq{Login: "octocat"})
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"login":"octocat"`) {
		t.Fatalf("author = %d %s", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("X-Request-ID") == "" && !strings.Contains(rec.Body.String(), "request_id") {
		t.Fatalf("request id missing from response")
	}

	rec = kit.PostJSON(t, h, "/api/v1/prs/author", echoReq{Login: "ghost"})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("ghost = %d", rec.Code)
	}

	rec = kit.PostJSON(t, h, "/api/v1/prs/author", echoReq{})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing login = %d", rec.Code)
	}

	rec = kit.Get(t, h, "/api/v1/meta/version")
	if rec.Code != http.StatusOK {
		t.Fatalf("version = %d", rec.Code)
	}
}

func TestCommonStack_RejectsOtherContentTypes(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/prs/author", strings.NewReader("contributor=x"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	api(t).ServeHTTP(rec, req)
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("form post = %d", rec.Code)
	}
}

func TestStackOptionsFrom(t *testing.T) {
	t.Setenv("CORE_API_REQUEST_TIMEOUT", "5s")
	t.Setenv("CORE_API_CORS_ORIGINS", "https://a.example, https://b.example")
	o := StackOptionsFrom(config.New().Prefix("CORE_API_"))
	if o.Timeout != 5*time.Second || o.SlowRequest != 500*time.Millisecond || len(o.CORSOrigins) != 2 {
		t.Fatalf("options = %+v", o)
	}
}
