package prevent

import (
	"reflect"
	"testing"
	"time"
)

func at(day, hour int) time.Time {
	return time.Date(2024, time.January, day, hour, 0, 0, 0, time.UTC)
}

func sample() []Event {
	return []Event{
		{EventID: 1, PRNumber: 7, RepoName: "open-sauced/app", AuthorLogin: "x", EventTime: at(1, 9), Action: ActionOpened},
		{EventID: 2, PRNumber: 7, RepoName: "Open-Sauced/App", AuthorLogin: "x", EventTime: at(3, 9), Action: ActionClosed, IsMerged: true},
		{EventID: 3, PRNumber: 7, RepoName: "open-sauced/app", AuthorLogin: "x", EventTime: at(3, 9), Action: ActionClosed, IsMerged: true},
		{EventID: 4, PRNumber: 8, RepoName: "open-sauced/app", AuthorLogin: "y", EventTime: at(2, 9), Action: ActionOpened},
		{EventID: 5, PRNumber: 7, RepoName: "open-sauced/api", AuthorLogin: "X", EventTime: at(5, 9), Action: ActionOpened},
	}
}

func TestResolve_OnePerPartitionMaxTime(t *testing.T) {
	t.Parallel()

	got := Resolve(sample(), ByPullRequest, Desc)
	if len(got) != 3 {
		t.Fatalf("Resolve returned %d records, want 3: %+v", len(got), got)
	}

	byKey := map[partition]State{}
	for _, s := range got {
		p := partitionOf(s, ByPullRequest)
		if _, dup := byKey[p]; dup {
			t.Fatalf("partition %+v appears twice", p)
		}
		byKey[p] = s
	}

	// repo name case must not split the partition and the tie at day 3 goes to the higher id
	app7 := byKey[partition{pr: 7, repo: "open-sauced/app"}]
	if app7.EventID != 3 {
		t.Fatalf("pr 7 app winner = %d, want 3", app7.EventID)
	}
	for _, e := range sample() {
		w := byKey[partitionOf(e, ByPullRequest)]
		if e.EventTime.After(w.EventTime) {
			t.Fatalf("event %d is later than its partition winner %d", e.EventID, w.EventID)
		}
	}
}

func TestResolve_AscKeepsEarliest(t *testing.T) {
	t.Parallel()

	got := Resolve(sample(), ByPullRequest, Asc)
	for _, s := range got {
		if s.PRNumber == 7 && s.RepoName == "open-sauced/app" && s.EventID != 1 {
			t.Fatalf("asc winner = %d, want 1", s.EventID)
		}
	}
	if got[0].EventID != 1 {
		t.Fatalf("asc output should start with the earliest winner, got %d", got[0].EventID)
	}
}

func TestResolve_Idempotent(t *testing.T) {
	t.Parallel()

	for _, k := range []Key{ByPullRequest, ByAuthor} {
		for _, o := range []Order{Desc, Asc} {
			once := Resolve(sample(), k, o)
			twice := Resolve(once, k, o)
			if !reflect.DeepEqual(once, twice) {
				t.Fatalf("key=%d order=%s not idempotent\nonce=%+v\ntwice=%+v", k, o, once, twice)
			}
		}
	}
}

func TestResolve_Deterministic(t *testing.T) {
	t.Parallel()

	in := sample()
	rev := make([]Event, len(in))
	for i := range in {
		rev[len(in)-1-i] = in[i]
	}
	if !reflect.DeepEqual(Resolve(in, ByPullRequest, Desc), Resolve(rev, ByPullRequest, Desc)) {
		t.Fatalf("input order changed the result")
	}
}

func TestResolveAuthors(t *testing.T) {
	t.Parallel()

	got := ResolveAuthors(sample())
	if len(got) != 2 {
		t.Fatalf("ResolveAuthors = %d records, want 2", len(got))
	}
	// x and X fold together and the day 5 event is the latest
	if got[0].EventID != 5 {
		t.Fatalf("latest author record = %d, want 5", got[0].EventID)
	}
}

func TestResolve_Empty(t *testing.T) {
	t.Parallel()

	if got := Resolve(nil, ByPullRequest, Desc); got == nil || len(got) != 0 {
		t.Fatalf("Resolve(nil) = %#v, want empty non nil", got)
	}
}

func TestEventPredicates(t *testing.T) {
	t.Parallel()

	merged := at(4, 23)
	cases := []struct {
		name string
		e    Event
		want [6]bool // accepted open closed draft active spam
	}{
		{"merged", Event{Action: ActionClosed, IsMerged: true, MergedAt: &merged}, [6]bool{true, false, false, false, false, false}},
		{"closed", Event{Action: ActionClosed}, [6]bool{false, false, true, false, false, false}},
		{"open", Event{Action: ActionOpened}, [6]bool{false, true, false, false, true, false}},
		{"draft", Event{Action: ActionOpened, IsDraft: true}, [6]bool{false, false, false, true, true, false}},
		{"spam", Event{Action: ActionReopened, ActiveLockReason: "SPAM"}, [6]bool{false, false, false, false, false, true}},
	}
	for _, c := range cases {
		got := [6]bool{c.e.IsAccepted(), c.e.IsOpen(), c.e.IsClosedUnmerged(), c.e.IsDraftOpen(), c.e.IsActive(), c.e.IsSpam()}
		if got != c.want {
			t.Errorf("%s: got %v want %v", c.name, got, c.want)
		}
	}
}

func TestMergeDays(t *testing.T) {
	t.Parallel()

	merged := at(6, 1)
	e := Event{IsMerged: true, CreatedAt: at(1, 23), MergedAt: &merged}
	if d, ok := e.MergeDays(); !ok || d != 5 {
		t.Fatalf("MergeDays = %d,%v want 5,true", d, ok)
	}
	if _, ok := (Event{IsMerged: true}).MergeDays(); ok {
		t.Fatalf("MergeDays without merged_at should not be ok")
	}
}

func TestParseOrder(t *testing.T) {
	t.Parallel()

	if ParseOrder(" ASC ") != Asc || ParseOrder("desc") != Desc || ParseOrder("") != Desc {
		t.Fatalf("ParseOrder mapping wrong")
	}
}
