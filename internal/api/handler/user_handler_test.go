package handler

import (
	"net/http"
	"strings"
	"testing"
)

func TestCreateUser(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "valid user",
			body:           `{"name":"Ana","email":"ana@x.com","password":"pw123"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "with phone",
			body:           `{"name":"Bea","email":"bea@x.com","password":"pw123","phone":"555-0100"}`,
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "missing name",
			body:           `{"email":"carl@x.com","password":"pw123"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing email",
			body:           `{"name":"Carl","password":"pw123"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing password",
			body:           `{"name":"Carl","email":"carl@x.com"}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnv(t)
			defer env.cleanup()

			w := env.makeRequest(t, http.MethodPost, "/user", tt.body)
			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d\nBody: %s", tt.expectedStatus, w.Code, w.Body.String())
			}

			if tt.expectedStatus == http.StatusCreated {
				resp := parseUserResponse(t, w)
				if resp.ID == 0 {
					t.Error("expected a non-zero id")
				}
				if strings.Contains(w.Body.String(), "password") {
					t.Errorf("response must not expose the password digest: %s", w.Body.String())
				}
			}
		})
	}
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	w := env.makeRequest(t, http.MethodPost, "/user", `{"name":"Ana","email":"ana@x.com","password":"pw123"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", w.Code)
	}

	w = env.makeRequest(t, http.MethodPost, "/user", `{"name":"Bea","email":"ana@x.com","password":"zzz"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on duplicate email, got %d", w.Code)
	}

	resp := parseErrorResponse(t, w)
	if resp.Message != "Email already registered" {
		t.Errorf("unexpected error message: %s", resp.Message)
	}

	// Still exactly one user
	users := parseUserListResponse(t, env.makeRequest(t, http.MethodGet, "/users", ""))
	if len(users) != 1 {
		t.Errorf("expected 1 user, got %d", len(users))
	}
}

func TestGetUser(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	env.makeRequest(t, http.MethodPost, "/user", `{"name":"Ana","email":"ana@x.com","password":"pw123"}`)

	w := env.makeRequest(t, http.MethodGet, "/user/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	resp := parseUserResponse(t, w)
	if resp.Name != "Ana" || resp.Email != "ana@x.com" {
		t.Errorf("unexpected user: %+v", resp)
	}
	if resp.Phone != nil {
		t.Errorf("expected nil phone, got %v", *resp.Phone)
	}

	w = env.makeRequest(t, http.MethodGet, "/user/999", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}

	w = env.makeRequest(t, http.MethodGet, "/user/abc", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a non-numeric id, got %d", w.Code)
	}
}

func TestListUsers(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	w := env.makeRequest(t, http.MethodGet, "/users", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if len(parseUserListResponse(t, w)) != 0 {
		t.Error("expected an empty listing")
	}

	env.makeRequest(t, http.MethodPost, "/user", `{"name":"Ana","email":"ana@x.com","password":"pw123"}`)
	env.makeRequest(t, http.MethodPost, "/user", `{"name":"Bea","email":"bea@x.com","password":"pw123"}`)

	w = env.makeRequest(t, http.MethodGet, "/users", "")
	users := parseUserListResponse(t, w)
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Error("listing must not expose digests")
	}
}

func TestUpdateUser(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	env.makeRequest(t, http.MethodPost, "/user", `{"name":"Ana","email":"ana@x.com","password":"pw123"}`)

	// Partial update: only the phone changes
	w := env.makeRequest(t, http.MethodPut, "/user/1", `{"phone":"555-0100"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d\nBody: %s", w.Code, w.Body.String())
	}

	resp := parseUserResponse(t, w)
	if resp.Name != "Ana" || resp.Email != "ana@x.com" {
		t.Errorf("unrelated fields changed: %+v", resp)
	}
	if resp.Phone == nil || *resp.Phone != "555-0100" {
		t.Errorf("phone not updated: %+v", resp)
	}

	w = env.makeRequest(t, http.MethodPut, "/user/999", `{"name":"Nobody"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestUpdateUser_DuplicateEmail(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	env.makeRequest(t, http.MethodPost, "/user", `{"name":"Ana","email":"ana@x.com","password":"pw123"}`)
	env.makeRequest(t, http.MethodPost, "/user", `{"name":"Bea","email":"bea@x.com","password":"pw123"}`)

	// Taking another user's email is a client error, same as on create
	w := env.makeRequest(t, http.MethodPut, "/user/2", `{"email":"ana@x.com"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d\nBody: %s", w.Code, w.Body.String())
	}
}

func TestDeleteUser(t *testing.T) {
	env := setupTestEnv(t)
	defer env.cleanup()

	env.makeRequest(t, http.MethodPost, "/user", `{"name":"Ana","email":"ana@x.com","password":"pw123"}`)

	w := env.makeRequest(t, http.MethodDelete, "/user/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Ana") || !strings.Contains(w.Body.String(), "1") {
		t.Errorf("confirmation should name the user and id: %s", w.Body.String())
	}

	// Deleting again is not a silent no-op
	w = env.makeRequest(t, http.MethodDelete, "/user/1", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
