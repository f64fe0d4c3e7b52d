package handlers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/thereayou/campus-connect/internal/handlers/dto"
)

func TestGetMe(t *testing.T) {
	env := newTestEnv(t)
	user, token := env.seedUser(t, "Alice", "Alice@Example.com")

	w := env.do(t, http.MethodGet, "/api/users/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp dto.UserResponse
	decodeJSON(t, w, &resp)
	if resp.ID != user.ID {
		t.Fatalf("expected id %s, got %s", user.ID, resp.ID)
	}
	if resp.Email != "alice@example.com" {
		t.Fatalf("expected lowercased email, got %q", resp.Email)
	}
	// Пустые skills сериализуются как [], а не null
	if resp.Skills == nil {
		t.Fatal("expected skills to be an empty list, got null")
	}
}

func TestGetUser_PublicProfile(t *testing.T) {
	env := newTestEnv(t)
	user, _ := env.seedUser(t, "Alice", "alice@example.com")

	w := env.do(t, http.MethodGet, "/api/users/"+user.ID.String(), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp dto.UserResponse
	decodeJSON(t, w, &resp)
	if resp.Name != "Alice" {
		t.Fatalf("expected name Alice, got %q", resp.Name)
	}
	// Хэш пароля наружу не уходит
	if strings.Contains(w.Body.String(), user.PasswordHash) {
		t.Fatal("response must not expose the password hash")
	}
}

func TestGetUser_NotFound(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/api/users/"+uuid.NewString(), "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestUpdateMe_PartialUpdate(t *testing.T) {
	env := newTestEnv(t)
	user, token := env.seedUser(t, "Alice", "alice@example.com")

	w := env.do(t, http.MethodPut, "/api/users/me", token, map[string]interface{}{
		"college": "MIT",
		"skills":  []string{"go", "sql"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp dto.UserResponse
	decodeJSON(t, w, &resp)
	if resp.College != "MIT" {
		t.Fatalf("expected college MIT, got %q", resp.College)
	}
	if len(resp.Skills) != 2 {
		t.Fatalf("expected 2 skills, got %v", resp.Skills)
	}
	// Непереданные поля не трогаются
	if resp.Name != "Alice" {
		t.Fatalf("expected name untouched, got %q", resp.Name)
	}

	stored, err := env.store.GetUser(user.ID.String())
	if err != nil {
		t.Fatalf("GetUser: %v", err)
	}
	if stored.College != "MIT" {
		t.Fatalf("expected persisted college MIT, got %q", stored.College)
	}
	// Пароль через этот маршрут не меняется
	if stored.PasswordHash != user.PasswordHash {
		t.Fatal("profile update must not touch the password hash")
	}
}

func TestUpdateMe_RequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPut, "/api/users/me", "", map[string]string{"name": "X"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
