package view

import (
	"context"
	"errors"
	"strings"
	"testing"

	"club-calendar-service/internal/category"
	"club-calendar-service/internal/i18n"
	"club-calendar-service/internal/render"
	"club-calendar-service/internal/testutil"
)

func newTestTable(p *testutil.StubProvider) *TableController {
	return NewTable(TableConfig{
		Provider: p,
		Renderer: render.New(i18n.Load("es"), "RC Mallorca"),
	})
}

func TestTableLoadSortsAndRendersAll(t *testing.T) {
	stub := testutil.NewStubProvider(
		testutil.Match("m2", "2024-04-06", "SENIOR", "Ibiza RFC"),
		testutil.Match("m1", "2024-03-02", "SENIOR", "CR Sant Cugat"),
	)
	table := newTestTable(stub)

	if err := table.Load(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if table.State() != StateRendered {
		t.Fatalf("expected rendered, got %v", table.State())
	}

	html := string(table.HTML())
	first := strings.Index(html, "CR Sant Cugat")
	second := strings.Index(html, "Ibiza RFC")
	if first < 0 || second < 0 {
		t.Fatalf("table missing rows")
	}
	if first > second {
		t.Fatalf("rows must be sorted ascending by date")
	}
	if !strings.Contains(html, "matches-table") {
		t.Fatalf("expected the table wrapper")
	}
}

func TestTableCategoryFilterIsClientSide(t *testing.T) {
	stub := testutil.NewStubProvider(marchFixtures()...)
	table := newTestTable(stub)
	ctx := context.Background()

	if err := table.Load(ctx); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	fetches := stub.Calls()

	table.SetCategory(category.Sub8)
	html := string(table.HTML())
	for _, want := range []string{"Bahia RC", "Varios clubes", "Ponent RC"} {
		if !strings.Contains(html, want) {
			t.Errorf("SUB8 filter should keep %q", want)
		}
	}
	if strings.Contains(html, "CR Sant Cugat") {
		t.Errorf("SUB8 filter should drop the SENIOR row")
	}

	table.SetCategory(category.All)
	if !strings.Contains(string(table.HTML()), "CR Sant Cugat") {
		t.Fatalf("all filter should restore every row")
	}

	if got := stub.Calls(); got != fetches {
		t.Fatalf("filter changes must not refetch: %d -> %d", fetches, got)
	}
	if got := len(table.Matches()); got != 4 {
		t.Fatalf("expected 4 matches in the view model, got %d", got)
	}
}

func TestTableSecondLoadReusesHeldSet(t *testing.T) {
	stub := testutil.NewStubProvider(marchFixtures()...)
	table := newTestTable(stub)
	ctx := context.Background()

	if err := table.Load(ctx); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if err := table.Load(ctx); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if got := stub.Calls(); got != 1 {
		t.Fatalf("expected a single fetch, got %d", got)
	}
}

func TestTableErrorThenRetry(t *testing.T) {
	stub := testutil.NewStubProvider().FailWith(errors.New("upstream down"))
	table := newTestTable(stub)
	ctx := context.Background()

	if err := table.Load(ctx); err == nil {
		t.Fatalf("expected load error")
	}
	if table.State() != StateError {
		t.Fatalf("expected error state, got %v", table.State())
	}
	if !strings.Contains(string(table.HTML()), "calendar-error") {
		t.Fatalf("expected the error panel")
	}

	stub.SetMatches(marchFixtures()...)
	if err := table.Load(ctx); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if table.State() != StateRendered {
		t.Fatalf("expected rendered after retry, got %v", table.State())
	}
}
