package memory

import (
	"context"
	"testing"

	"github.com/MezaMaximiliano/OT168-Java-server/internal/domain/repository"
)

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	ctx := context.Background()
	repo := New().Members()

	out, err := repo.Create(ctx, &repository.Member{Name: "Lucía"})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if out.ID == 0 {
		t.Fatal("expected assigned id")
	}
	if out.CreatedAt.IsZero() || out.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps assigned")
	}

	got, err := repo.FindByID(ctx, out.ID)
	if err != nil {
		t.Fatalf("FindByID err: %v", err)
	}
	if got.Name != "Lucía" {
		t.Fatalf("name mismatch: got %q", got.Name)
	}
}

func TestSoftDeleteHidesRow(t *testing.T) {
	ctx := context.Background()
	repo := New().Activities()

	out, err := repo.Create(ctx, &repository.Activity{Name: "Apoyo escolar", Content: "..."})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}

	if err := repo.SoftDelete(ctx, out.ID); err != nil {
		t.Fatalf("SoftDelete err: %v", err)
	}
	if _, err := repo.FindByID(ctx, out.ID); !repository.IsNotFound(err) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.SoftDelete(ctx, out.ID); !repository.IsNotFound(err) {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
	if _, err := repo.Update(ctx, out.ID, &repository.Activity{Name: "x", Content: "y"}); !repository.IsNotFound(err) {
		t.Fatalf("expected ErrNotFound on update after delete, got %v", err)
	}

	n, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count err: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected count 0, got %d", n)
	}
}

func TestUpdatePreservesIDAndCreatedAt(t *testing.T) {
	ctx := context.Background()
	repo := New().Testimonials()

	created, err := repo.Create(ctx, &repository.Testimonial{Name: "Ana", Content: "gracias"})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}

	updated, err := repo.Update(ctx, created.ID, &repository.Testimonial{Name: "Ana María", Content: "gracias!"})
	if err != nil {
		t.Fatalf("Update err: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("id changed on update: %d -> %d", created.ID, updated.ID)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("created_at changed on update")
	}
	if updated.Name != "Ana María" {
		t.Fatalf("name not updated: %q", updated.Name)
	}
}

func TestListWindow(t *testing.T) {
	ctx := context.Background()
	repo := New().News()

	for i := 0; i < 5; i++ {
		if _, err := repo.Create(ctx, &repository.News{Name: "n", Content: "c"}); err != nil {
			t.Fatalf("Create err: %v", err)
		}
	}

	page, err := repo.List(ctx, 2, 2)
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("expected 2 items, got %d", len(page))
	}
	if page[0].ID != 3 || page[1].ID != 4 {
		t.Fatalf("unexpected window: ids %d, %d", page[0].ID, page[1].ID)
	}

	beyond, err := repo.List(ctx, 10, 2)
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(beyond) != 0 {
		t.Fatalf("expected empty window beyond end, got %d items", len(beyond))
	}
}

func TestUserEmailUniqueness(t *testing.T) {
	ctx := context.Background()
	users := New().Users()

	if _, err := users.Create(ctx, &repository.User{
		FirstName: "James", LastName: "Potter", Email: "james@gmail.com",
		PasswordHash: "x", RoleID: 1,
	}); err != nil {
		t.Fatalf("Create err: %v", err)
	}

	_, err := users.Create(ctx, &repository.User{
		FirstName: "Other", LastName: "User", Email: "JAMES@gmail.com",
		PasswordHash: "x", RoleID: 1,
	})
	if err != repository.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestFindByEmailResolvesRole(t *testing.T) {
	ctx := context.Background()
	st := New()

	admin, err := st.Roles().FindByName(ctx, repository.RoleAdmin)
	if err != nil {
		t.Fatalf("FindByName err: %v", err)
	}

	if _, err := st.Users().Create(ctx, &repository.User{
		FirstName: "Admin", LastName: "User", Email: "admin@ong.example",
		PasswordHash: "x", RoleID: admin.ID,
	}); err != nil {
		t.Fatalf("Create err: %v", err)
	}

	got, err := st.Users().FindByEmail(ctx, "Admin@ONG.example")
	if err != nil {
		t.Fatalf("FindByEmail err: %v", err)
	}
	if got.Role == nil || got.Role.Name != repository.RoleAdmin {
		t.Fatalf("expected role ADMIN resolved, got %+v", got.Role)
	}
}
