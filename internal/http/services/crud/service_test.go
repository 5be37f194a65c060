package crud

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/MezaMaximiliano/OT168-Java-server/internal/domain/repository"
	"github.com/MezaMaximiliano/OT168-Java-server/internal/store/memory"
)

func newMemberService(pageSize int) Service[repository.Member] {
	return New(Deps[repository.Member]{
		Repo:      memory.New().Members(),
		PageSize:  pageSize,
		Normalize: func(m *repository.Member) { m.Name = strings.TrimSpace(m.Name) },
	})
}

func seed(t *testing.T, svc Service[repository.Member], n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if _, err := svc.Save(context.Background(), repository.Member{Name: "m"}); err != nil {
			t.Fatalf("Save err: %v", err)
		}
	}
}

func TestSaveTrimsName(t *testing.T) {
	svc := newMemberService(10)

	out, err := svc.Save(context.Background(), repository.Member{Name: "  Lucía  "})
	if err != nil {
		t.Fatalf("Save err: %v", err)
	}
	if out.Name != "Lucía" {
		t.Fatalf("expected trimmed name, got %q", out.Name)
	}
}

func TestFindAll_InvalidPage(t *testing.T) {
	svc := newMemberService(10)

	for _, page := range []int{0, -1} {
		if _, err := svc.FindAll(context.Background(), page); err != ErrInvalidPage {
			t.Fatalf("page %d: expected ErrInvalidPage, got %v", page, err)
		}
	}
}

func TestFindAll_EmptyFirstPage(t *testing.T) {
	svc := newMemberService(10)

	page, err := svc.FindAll(context.Background(), 1)
	if err != nil {
		t.Fatalf("FindAll err: %v", err)
	}
	if len(page.Items) != 0 {
		t.Fatalf("expected empty page, got %d items", len(page.Items))
	}
	if page.Previous != nil || page.Next != nil {
		t.Fatal("expected no prev/next links on empty single page")
	}
}

func TestFindAll_Links(t *testing.T) {
	svc := newMemberService(2)
	seed(t, svc, 5) // 3 pages: 2+2+1

	first, err := svc.FindAll(context.Background(), 1)
	if err != nil {
		t.Fatalf("FindAll err: %v", err)
	}
	if first.Previous != nil {
		t.Fatal("page 1 should have no previous link")
	}
	if first.Next == nil || *first.Next != 2 {
		t.Fatalf("page 1 next link: got %v, want 2", first.Next)
	}

	middle, err := svc.FindAll(context.Background(), 2)
	if err != nil {
		t.Fatalf("FindAll err: %v", err)
	}
	if middle.Previous == nil || *middle.Previous != 1 {
		t.Fatalf("page 2 previous link: got %v, want 1", middle.Previous)
	}
	if middle.Next == nil || *middle.Next != 3 {
		t.Fatalf("page 2 next link: got %v, want 3", middle.Next)
	}

	last, err := svc.FindAll(context.Background(), 3)
	if err != nil {
		t.Fatalf("FindAll err: %v", err)
	}
	if len(last.Items) != 1 {
		t.Fatalf("last page items: got %d, want 1", len(last.Items))
	}
	if last.Next != nil {
		t.Fatal("last page should have no next link")
	}
}

func TestFindAll_BeyondEnd(t *testing.T) {
	svc := newMemberService(2)
	seed(t, svc, 3)

	page, err := svc.FindAll(context.Background(), 9)
	if err != nil {
		t.Fatalf("FindAll err: %v", err)
	}
	if len(page.Items) != 0 {
		t.Fatalf("expected empty items beyond end, got %d", len(page.Items))
	}
	if page.Next != nil {
		t.Fatal("expected no next link beyond end")
	}
}

func TestFindAll_HugePageDoesNotOverflow(t *testing.T) {
	svc := newMemberService(3)
	seed(t, svc, 2)

	for _, page := range []int{math.MaxInt, math.MaxInt / 3, math.MaxInt/3 + 1} {
		got, err := svc.FindAll(context.Background(), page)
		if err != nil {
			t.Fatalf("page %d: FindAll err: %v", page, err)
		}
		if len(got.Items) != 0 {
			t.Fatalf("page %d: expected empty items, got %d", page, len(got.Items))
		}
		if got.Next != nil {
			t.Fatalf("page %d: expected no next link", page)
		}
		if got.Previous == nil || *got.Previous != page-1 {
			t.Fatalf("page %d: previous link: got %v", page, got.Previous)
		}
	}
}

func TestDeletePropagatesNotFound(t *testing.T) {
	svc := newMemberService(10)

	if err := svc.Delete(context.Background(), 42); !repository.IsNotFound(err) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdatePropagatesNotFound(t *testing.T) {
	svc := newMemberService(10)

	_, err := svc.Update(context.Background(), 42, repository.Member{Name: "x"})
	if !repository.IsNotFound(err) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
