package bind

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	perr "prlens/internal/platform/errors"
)

type listReq struct {
	Repos  []string `json:"repos" validate:"omitempty,dive,repo_name"`
	Range  int      `json:"range" validate:"omitempty,min=1,max=365"`
	Cohort string   `json:"cohort" validate:"omitempty,oneof=all active new alumni churn repeat"`
	Hidden string   `json:"-"`
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
}

func TestParseJSON_Success(t *testing.T) {
	got, err := ParseJSON[listReq](post(`{"repos":["open-sauced/app"],"range":30,"cohort":"alumni"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Repos) != 1 || got.Range != 30 || got.Cohort != "alumni" {
		t.Fatalf("got %+v", got)
	}
}

func TestParseJSON_EmptyBody(t *testing.T) {
	got, err := ParseJSON[listReq](httptest.NewRequest(http.MethodPost, "/", http.NoBody))
	if err != nil || got.Range != 0 {
		t.Fatalf("empty body = %+v, %v", got, err)
	}
	if _, err := ParseJSON[listReq](post("  "), JSONOptions{RequireBody: true}); perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("required body code = %v", perr.CodeOf(err))
	}
}

func TestParseJSON_DecodeFailures(t *testing.T) {
	cases := map[string]string{
		"malformed":     `{"repos":`,
		"unknown field": `{"nope":true}`,
		"trailing":      `{"range":1} {"range":2}`,
		"wrong type":    `{"range":"thirty"}`,
	}
	for name, body := range cases {
		if _, err := ParseJSON[listReq](post(body)); perr.CodeOf(err) != perr.ErrorCodeJSON {
			t.Errorf("%s: code = %v (%v)", name, perr.CodeOf(err), err)
		}
	}
}

func TestParseJSON_AllowUnknown(t *testing.T) {
	got, err := ParseJSON[listReq](post(`{"range":3,"extra":1}`), JSONOptions{})
	if err != nil || got.Range != 3 {
		t.Fatalf("got %+v, %v", got, err)
	}
}

func TestParseJSON_MaxBytes(t *testing.T) {
	_, err := ParseJSON[listReq](post(`{"repos":["a/b","c/d"]}`), JSONOptions{MaxBytes: 8})
	if perr.CodeOf(err) != perr.ErrorCodeJSON {
		t.Fatalf("oversized body code = %v", perr.CodeOf(err))
	}
}

func TestParseJSON_ValidationCarriesField(t *testing.T) {
	cases := []struct {
		body, field, msg string
	}{
		{`{"range":400}`, "range", "range must be at most 365"},
		{`{"range":-1}`, "range", "range must be at least 1"},
		{`{"repos":["a/b","bad"]}`, "repos[1]", "repos[1] must look like owner/name"},
		{`{"cohort":"lurkers"}`, "cohort", ""},
	}
	for _, c := range cases {
		_, err := ParseJSON[listReq](post(c.body))
		e, ok := perr.As(err)
		if !ok || e.Code() != perr.ErrorCodeValidation || e.Field() != c.field {
			t.Errorf("%s: err = %v", c.body, err)
			continue
		}
		if c.msg != "" && err.Error() != c.msg {
			t.Errorf("%s: message = %q want %q", c.body, err.Error(), c.msg)
		}
	}
}

func TestRepoNameRule(t *testing.T) {
	type one struct {
		Repo string `validate:"repo_name"`
	}
	for in, ok := range map[string]bool{
		"open-sauced/app": true,
		"a/b":             true,
		"/b":              false,
		"a/":              false,
		"a/b/c":           false,
		"ab":              false,
	} {
		if got := Validate(one{Repo: in}) == nil; got != ok {
			t.Errorf("repo_name(%q) = %v want %v", in, got, ok)
		}
	}
}

func TestRepoNamesRule(t *testing.T) {
	type many struct {
		Repos string `validate:"repo_names"`
	}
	for in, ok := range map[string]bool{
		"open-sauced/app":            true,
		"open-sauced/app,other/repo": true,
		" a/b , c/d ,":               true,
		"a/b,nope":                   false,
		",":                          false,
		"":                           false,
	} {
		if got := Validate(many{Repos: in}) == nil; got != ok {
			t.Errorf("repo_names(%q) = %v want %v", in, got, ok)
		}
	}
}

func TestJSONName(t *testing.T) {
	typ := reflect.TypeOf(struct {
		A string `json:"alpha,omitempty"`
		B string `json:"-"`
		C string
	}{})
	want := []string{"alpha", "B", "C"}
	for i, w := range want {
		if got := jsonName(typ.Field(i)); got != w {
			t.Errorf("jsonName(field %d) = %q want %q", i, got, w)
		}
	}

	err := Validate(struct {
		In struct{ X int } `json:"in" validate:"required"`
	}{})
	if e, _ := perr.As(err); e == nil || e.Field() != "in" {
		t.Fatalf("field = %v", err)
	}
}

func TestValidate_NonStruct(t *testing.T) {
	if err := Validate(42); err != nil {
		t.Fatalf("non struct should pass, got %v", err)
	}
}

func TestFieldAndMessage_Generic(t *testing.T) {
	if f, m := FieldAndMessage(errors.New("boom")); f != "" || m != "boom" {
		t.Fatalf("got %q %q", f, m)
	}
	if f, m := FieldAndMessage(nil); f != "" || m != "" {
		t.Fatalf("nil got %q %q", f, m)
	}
}
