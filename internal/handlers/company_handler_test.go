package handlers

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/hirelane/hirelane/internal/models"
)

func TestRegisterCompanyThenMe(t *testing.T) {
	t.Parallel()
	r, db := newTestRouter(t)

	w := doMultipart(t, r, http.MethodPost, "/api/companies/register", "", url.Values{
		"name":        {"Acme"},
		"email":       {"hr@acme.com"},
		"password":    {"secret1"},
		"description": {"We make everything"},
		"location":    {"Berlin"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		Token   string `json:"token"`
		Company struct {
			ID      uint `json:"id"`
			OwnerID uint `json:"owner_id"`
		} `json:"company"`
		User struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	decode(t, w, &created)
	if created.Company.OwnerID != created.User.ID {
		t.Fatalf("company owner %d does not match user %d", created.Company.OwnerID, created.User.ID)
	}

	// The owner user must exist with the employer role
	var owner models.User
	if err := db.First(&owner, created.User.ID).Error; err != nil {
		t.Fatalf("owner user missing: %v", err)
	}
	if owner.Role != models.RoleEmployer {
		t.Fatalf("expected role employer, got %q", owner.Role)
	}

	w = doJSON(t, r, http.MethodGet, "/api/companies/me", created.Token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var me struct {
		Success bool `json:"success"`
		Company struct {
			ID   uint   `json:"id"`
			Name string `json:"name"`
		} `json:"company"`
	}
	decode(t, w, &me)
	if !me.Success || me.Company.ID != created.Company.ID {
		t.Fatalf("unexpected me response: %s", w.Body.String())
	}
	if strings.Contains(w.Body.String(), `"password"`) {
		t.Fatal("password leaked in company response")
	}
}

func TestRegisterCompanyMissingFields(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)

	w := doMultipart(t, r, http.MethodPost, "/api/companies/register", "", url.Values{
		"name": {"Acme"},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRegisterCompanyDuplicateEmail(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)

	registerEmployer(t, r, "Acme", "dup@acme.com")

	w := doMultipart(t, r, http.MethodPost, "/api/companies/register", "", url.Values{
		"name":     {"Acme Clone"},
		"email":    {"DUP@acme.com"},
		"password": {"secret1"},
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCompanyLogin(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)

	registerEmployer(t, r, "Acme", "a@acme.com")

	w := doJSON(t, r, http.MethodPost, "/api/companies/login", "", map[string]string{
		"email":    "a@acme.com",
		"password": "secret1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token   string `json:"token"`
		Company struct {
			Name string `json:"name"`
		} `json:"company"`
	}
	decode(t, w, &resp)
	if resp.Token == "" || resp.Company.Name != "Acme" {
		t.Fatalf("unexpected login response: %s", w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/companies/login", "", map[string]string{
		"email":    "a@acme.com",
		"password": "wrong",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad password, got %d", w.Code)
	}
}

func TestSeekerCannotLoginAsCompany(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)

	registerSeeker(t, r, "Jane", "jane@seek.com")

	w := doJSON(t, r, http.MethodPost, "/api/companies/login", "", map[string]string{
		"email":    "jane@seek.com",
		"password": "secret1",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestUpdateCompanyProfile(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)

	token := registerEmployer(t, r, "Acme", "update@acme.com")

	w := doMultipart(t, r, http.MethodPut, "/api/companies/update", token, url.Values{
		"website": {"https://acme.example"},
		"phone":   {"555-0100"},
	}, fileSpec{field: "logo", name: "logo.png", contentType: "image/png", content: []byte("png")})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		Company struct {
			Name    string `json:"name"`
			Website string `json:"website"`
			Phone   string `json:"phone"`
			Logo    string `json:"logo"`
		} `json:"company"`
	}
	decode(t, w, &resp)
	if resp.Company.Website != "https://acme.example" || resp.Company.Phone != "555-0100" {
		t.Fatalf("fields not updated: %+v", resp.Company)
	}
	if resp.Company.Name != "Acme" {
		t.Fatalf("name should be untouched, got %q", resp.Company.Name)
	}
	if !strings.Contains(resp.Company.Logo, "/uploads/company_logos/") {
		t.Fatalf("unexpected logo URL: %q", resp.Company.Logo)
	}
}

func TestCompanyEndpointsRejectSeeker(t *testing.T) {
	t.Parallel()
	r, _ := newTestRouter(t)

	token := registerSeeker(t, r, "Jane", "seek@example.com")

	w := doJSON(t, r, http.MethodGet, "/api/companies/me", token, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d: %s", w.Code, w.Body.String())
	}
}
