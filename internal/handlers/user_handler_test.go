package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func TestRegisterThenProfile(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)

	w := doMultipart(t, r, http.MethodPost, "/api/users/register", "", url.Values{
		"name":       {"Jane"},
		"email":      {"jane@example.com"},
		"password":   {"secret1"},
		"role":       {"user"},
		"workStatus": {"experienced"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		Token string `json:"token"`
		User  struct {
			ID    uint   `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	decode(t, w, &created)
	if strings.Contains(w.Body.String(), "password") {
		t.Fatal("password leaked in register response")
	}

	w = doJSON(t, r, http.MethodGet, "/api/users/profile", created.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var profile struct {
		ID         uint   `json:"id"`
		WorkStatus string `json:"workStatus"`
	}
	decode(t, w, &profile)
	if profile.ID != created.User.ID {
		t.Fatalf("profile id %d does not match created id %d", profile.ID, created.User.ID)
	}
	if profile.WorkStatus != "experienced" {
		t.Fatalf("expected workStatus experienced, got %q", profile.WorkStatus)
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Fatal("password leaked in profile response")
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)

	registerSeeker(t, r, "First", "dup@example.com")

	// Same address with different casing and whitespace
	w := doMultipart(t, r, http.MethodPost, "/api/users/register", "", url.Values{
		"name":     {"Second"},
		"email":    {"  DUP@Example.COM "},
		"password": {"secret2"},
		"role":     {"user"},
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRegisterInvalidRole(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)

	w := doMultipart(t, r, http.MethodPost, "/api/users/register", "", url.Values{
		"name":     {"Nope"},
		"email":    {"nope@example.com"},
		"password": {"secret1"},
		"role":     {"admin"},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)

	registerSeeker(t, r, "Jane", "login@example.com")

	w := doJSON(t, r, http.MethodPost, "/api/users/login", "", map[string]string{
		"email":    "login@example.com",
		"password": "secret1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/users/login", "", map[string]string{
		"email":    "login@example.com",
		"password": "wrong",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad password, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/users/login", "", map[string]string{
		"email":    "ghost@example.com",
		"password": "secret1",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown email, got %d", w.Code)
	}
}

func TestProfileRequiresToken(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/users/profile", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodGet, "/api/users/profile", "garbage.token.here", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad token, got %d", w.Code)
	}
}

func TestUpdateProfileSparse(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)

	token := registerSeeker(t, r, "Jane", "sparse@example.com")

	w := doMultipart(t, r, http.MethodPut, "/api/users/profile", token, url.Values{
		"mobile": {"555-0101"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		User struct {
			Name   string `json:"name"`
			Mobile string `json:"mobile"`
		} `json:"user"`
	}
	decode(t, w, &resp)
	if resp.User.Mobile != "555-0101" {
		t.Fatalf("mobile not updated: %q", resp.User.Mobile)
	}
	if resp.User.Name != "Jane" {
		t.Fatalf("name should be untouched, got %q", resp.User.Name)
	}
}

func TestUpdateProfileAvatarUpload(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)

	token := registerSeeker(t, r, "Jane", "avatar@example.com")

	w := doMultipart(t, r, http.MethodPut, "/api/users/profile", token, url.Values{},
		fileSpec{field: "avatar", name: "me.png", contentType: "image/png", content: []byte("png-bytes")})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		User struct {
			Avatar string `json:"avatar"`
		} `json:"user"`
	}
	decode(t, w, &resp)
	if !strings.HasPrefix(resp.User.Avatar, "http://test.local/uploads/images/") {
		t.Fatalf("unexpected avatar URL: %q", resp.User.Avatar)
	}

	// A text file is not a valid avatar
	w = doMultipart(t, r, http.MethodPut, "/api/users/profile", token, url.Values{},
		fileSpec{field: "avatar", name: "me.txt", contentType: "text/plain", content: []byte("hi")})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for non-image avatar, got %d", w.Code)
	}
}
