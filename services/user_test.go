package services

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/duoblog/duoblog/apperr"
	"github.com/duoblog/duoblog/dto"
	"github.com/duoblog/duoblog/models"
	"github.com/duoblog/duoblog/utils"
)

func newUserService(t *testing.T) (UserService, *fakeUserStore, *fakePostStore, *fakeCommentStore, *utils.TokenManager) {
	t.Helper()
	st, users, posts, comments := testStore()
	tokens := utils.NewTokenManager("test-secret", time.Hour)
	svc := NewUserService(st, tokens, zap.NewNop().Sugar())
	return svc, users, posts, comments, tokens
}

func wantKind(t *testing.T, err error, kind apperr.Kind) {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error, got nil")
	}
	if !apperr.IsKind(err, kind) {
		t.Fatalf("error kind mismatch: got %v", err)
	}
}

func TestUserCreate(t *testing.T) {
	svc, users, _, _, _ := newUserService(t)
	ctx := context.Background()

	pub, err := svc.Create(ctx, dto.CreateUser{Name: "Ann", Username: "ann", Password: "secret1"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	if len(pub.ID) != 24 {
		t.Errorf("ID = %q, want 24-hex string", pub.ID)
	}
	if pub.Username != "ann" || pub.Name != "Ann" {
		t.Errorf("public projection = %+v", pub)
	}

	stored, err := users.FindByUsername(ctx, "ann")
	if err != nil {
		t.Fatalf("stored user missing: %v", err)
	}
	if stored.PasswordHash == "secret1" {
		t.Error("password stored unhashed")
	}
	if !utils.CheckPassword(stored.PasswordHash, "secret1") {
		t.Error("stored hash does not verify the original password")
	}
}

func TestUserCreateTakenUsername(t *testing.T) {
	svc, users, _, _, _ := newUserService(t)
	seedUser(users, "Ann", "ann")

	_, err := svc.Create(context.Background(), dto.CreateUser{Name: "Other", Username: "ann", Password: "secret1"})
	wantKind(t, err, apperr.KindConflict)
}

func TestUserLogin(t *testing.T) {
	svc, _, _, _, tokens := newUserService(t)
	ctx := context.Background()

	pub, err := svc.Create(ctx, dto.CreateUser{Name: "Ann", Username: "ann", Password: "secret1"})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	token, err := svc.Login(ctx, dto.LoginUser{Username: "ann", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login() error: %v", err)
	}
	claims, err := tokens.Parse(token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.UserID != pub.ID {
		t.Errorf("token UserID = %q, want %q", claims.UserID, pub.ID)
	}
}

func TestUserLoginFailures(t *testing.T) {
	svc, _, _, _, _ := newUserService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, dto.CreateUser{Name: "Ann", Username: "ann", Password: "secret1"}); err != nil {
		t.Fatalf("Create() error: %v", err)
	}

	_, err := svc.Login(ctx, dto.LoginUser{Username: "nobody", Password: "secret1"})
	wantKind(t, err, apperr.KindNotFound)

	_, err = svc.Login(ctx, dto.LoginUser{Username: "ann", Password: "wrong-password"})
	wantKind(t, err, apperr.KindUnauthorized)

	// Both failures read the same to the caller so usernames cannot be
	// probed through the login endpoint.
	if apperr.From(err).Message != "invalid credentials" {
		t.Errorf("message = %q", apperr.From(err).Message)
	}
}

func TestUserGetByID(t *testing.T) {
	svc, users, _, _, _ := newUserService(t)
	ctx := context.Background()
	id := seedUser(users, "Ann", "ann")

	pub, err := svc.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if pub.ID != id {
		t.Errorf("ID = %q, want %q", pub.ID, id)
	}

	_, err = svc.GetByID(ctx, "not-an-object-id")
	wantKind(t, err, apperr.KindValidation)

	_, err = svc.GetByID(ctx, "ffffffffffffffffffffffff")
	wantKind(t, err, apperr.KindNotFound)
}

func TestUserUpdateOwnershipAndConflict(t *testing.T) {
	svc, users, _, _, _ := newUserService(t)
	ctx := context.Background()
	annID := seedUser(users, "Ann", "ann")
	bobID := seedUser(users, "Bob", "bob")

	name := "Hacked"
	_, err := svc.Update(ctx, annID, dto.UpdateUser{Name: &name}, bobID)
	wantKind(t, err, apperr.KindUnauthorized)

	stored, _ := users.FindByID(ctx, annID)
	if stored.Name != "Ann" {
		t.Errorf("user modified by unauthorized update: %q", stored.Name)
	}

	taken := "bob"
	_, err = svc.Update(ctx, annID, dto.UpdateUser{Username: &taken}, annID)
	wantKind(t, err, apperr.KindConflict)

	newName := "Ann B"
	pub, err := svc.Update(ctx, annID, dto.UpdateUser{Name: &newName}, annID)
	if err != nil {
		t.Fatalf("Update() error: %v", err)
	}
	if pub.Name != "Ann B" {
		t.Errorf("Name = %q, want %q", pub.Name, "Ann B")
	}
}

func TestUserDeleteCascades(t *testing.T) {
	svc, users, posts, comments, _ := newUserService(t)
	ctx := context.Background()
	annID := seedUser(users, "Ann", "ann")
	bobID := seedUser(users, "Bob", "bob")

	posts.Create(ctx, &models.Post{Title: "Ann's post", Content: "x", UserID: annID})
	posts.Create(ctx, &models.Post{Title: "Bob's post", Content: "y", UserID: bobID})
	comments.Create(ctx, &models.Comment{PostID: 2, UserID: annID, Content: "ann on bob"})
	comments.Create(ctx, &models.Comment{PostID: 2, UserID: bobID, Content: "bob on bob"})

	if err := svc.Delete(ctx, annID); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}

	if _, err := users.FindByID(ctx, annID); err == nil {
		t.Error("user still present after delete")
	}
	if _, _, err := posts.FindPage(ctx, 1, 10); err != nil {
		t.Fatalf("FindPage() error: %v", err)
	}
	remaining, _, _ := posts.FindPage(ctx, 1, 10)
	if len(remaining) != 1 || remaining[0].UserID != bobID {
		t.Errorf("posts after cascade = %+v, want only Bob's", remaining)
	}
	left, _, _ := comments.FindPageByPost(ctx, 2, 1, 10)
	if len(left) != 1 || left[0].UserID != bobID {
		t.Errorf("comments after cascade = %+v, want only Bob's", left)
	}
}

func TestUserList(t *testing.T) {
	svc, users, _, _, _ := newUserService(t)
	for i := 0; i < 12; i++ {
		seedUser(users, "User", "user"+string(rune('a'+i)))
	}

	env, err := svc.List(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	page, ok := env.Data.([]*models.PublicUser)
	if !ok {
		t.Fatalf("Data type = %T", env.Data)
	}
	if len(page) != 2 {
		t.Errorf("page size = %d, want 2", len(page))
	}
	if env.Pagination.Total != 12 || env.Pagination.TotalPages != 2 {
		t.Errorf("pagination = %+v", env.Pagination)
	}
	if env.Pagination.HasNext || !env.Pagination.HasPrev {
		t.Errorf("page 2 of 2: HasNext=%v HasPrev=%v", env.Pagination.HasNext, env.Pagination.HasPrev)
	}
}
