package criteria

import (
	"math"
	"testing"

	"prlens/internal/core/page"
	perr "prlens/internal/platform/errors"
	"prlens/internal/platform/net/http/bind"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaging_Request(t *testing.T) {
	cases := []struct {
		in   Paging
		want page.Request
	}{
		{Paging{}, page.Request{Skip: 0, Limit: DefaultLimit}},
		{Paging{Page: 1, Limit: 25}, page.Request{Skip: 0, Limit: 25}},
		{Paging{Page: 3, Limit: 10}, page.Request{Skip: 20, Limit: 10}},
		{Paging{Page: 101, Limit: 10}, page.Request{Skip: 1000, Limit: 10}},
		{Paging{Page: math.MaxInt/10 + 2, Limit: 10}, page.Request{Skip: math.MaxInt, Limit: 10}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.in.Request(), "%+v", tc.in)
	}
}

func TestCriteria_Mapping(t *testing.T) {
	c := Criteria{
		Range:             7,
		PrevDaysStartDate: 2,
		Contributor:       "Octocat",
		Repos:             []string{"open-sauced/app"},
		RepoIDs:           []int64{42},
		Status:            "open",
	}
	f := c.FilterCriteria()
	assert.Equal(t, "Octocat", f.Contributor)
	assert.Equal(t, []string{"open-sauced/app"}, f.Repos)
	assert.Equal(t, []int64{42}, f.RepoIDs)
	assert.Equal(t, "open", f.Status)

	w := c.Window()
	assert.Equal(t, 7, w.RangeDays)
	assert.Equal(t, 2, w.OffsetDays)
	assert.True(t, w.Now.IsZero())
}

func TestCriteria_Validation(t *testing.T) {
	require.NoError(t, bind.Validate(Criteria{}))
	require.NoError(t, bind.Validate(Criteria{Range: 365, Repos: []string{"a/b"}, Status: "closed"}))
	require.NoError(t, bind.Validate(Criteria{Repos: []string{"open-sauced/app,other/repo"}}))

	cases := map[string]Criteria{
		"range":      {Range: 366},
		"repos[0]":   {Repos: []string{"not-a-repo"}},
		"repos[1]":   {Repos: []string{"a/b", "a/b,bad"}},
		"status":     {Status: "merged"},
		"repoIds[0]": {RepoIDs: []int64{0}},
	}
	for field, in := range cases {
		err := bind.Validate(in)
		require.Error(t, err, field)
		assert.True(t, perr.IsCode(err, perr.ErrorCodeValidation), field)
		e, ok := perr.As(err)
		require.True(t, ok)
		assert.Equal(t, field, e.Field())
	}

	require.Error(t, bind.Validate(Paging{Limit: 101}))
	require.NoError(t, bind.Validate(Paging{Page: 2, Limit: 100}))
	require.NoError(t, bind.Validate(Paging{Page: MaxPage}))
	require.Error(t, bind.Validate(Paging{Page: MaxPage + 1}))
}

func TestPaging_FarPastEndIsEmpty(t *testing.T) {
	req := Paging{Page: math.MaxInt/10 + 2, Limit: 10}.Request()
	r := page.Paginate([]int{1, 2, 3}, req)
	assert.Empty(t, r.Items)
	assert.Greater(t, r.Meta.Page, 1)
	assert.False(t, r.Meta.HasNextPage)
}
