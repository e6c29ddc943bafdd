package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/threaded-comments-api/internal/api"
	"github.com/threaded-comments-api/internal/config"
	"github.com/threaded-comments-api/internal/repository"
	"github.com/threaded-comments-api/internal/service"
)

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	repos := repository.New(repository.NewStore())
	cfg := &config.Config{
		Server: config.ServerConfig{Port: "8080"},
		Comments: config.CommentConfig{
			EditWindow:       15 * time.Minute,
			RestoreWindow:    15 * time.Minute,
			MaxContentLength: 1000,
			PageSize:         20,
		},
		Auth: config.AuthConfig{MinPasswordLength: 8, BcryptCost: 4},
	}

	services := service.NewServices(repos, cfg, zerolog.Nop())
	return api.NewRouter(services, cfg, zerolog.Nop())
}

func doJSON(router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerUser(t *testing.T, router *gin.Engine, email, username string) string {
	t.Helper()
	w := doJSON(router, "POST", "/v1/auth/register", "", map[string]string{
		"email":    email,
		"username": username,
		"password": "hunter2hunter2",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: expected 201, got %d: %s", email, w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.Token == "" {
		t.Fatalf("register %s: no token in response", email)
	}
	return resp.Token
}

func TestHealthEndpoint(t *testing.T) {
	router := setupTestRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "threaded-comments-api" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := setupTestRouter()
	token := registerUser(t, router, "alice@example.com", "alice")
	doJSON(router, "POST", "/v1/comments", token, map[string]string{"content": "hello"})

	req := httptest.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	store := response["store"].(map[string]interface{})
	if store["users"].(float64) != 1 {
		t.Errorf("Expected 1 user, got %v", store["users"])
	}
	if store["comments"].(float64) != 1 {
		t.Errorf("Expected 1 comment, got %v", store["comments"])
	}
}

func TestRegisterConflict(t *testing.T) {
	router := setupTestRouter()
	registerUser(t, router, "alice@example.com", "alice")

	w := doJSON(router, "POST", "/v1/auth/register", "", map[string]string{
		"email":    "alice@example.com",
		"username": "alice2",
		"password": "hunter2hunter2",
	})
	if w.Code != http.StatusConflict {
		t.Errorf("Expected 409 for duplicate email, got %d", w.Code)
	}
}

func TestRegisterValidation(t *testing.T) {
	router := setupTestRouter()

	w := doJSON(router, "POST", "/v1/auth/register", "", map[string]string{
		"email":    "not-an-email",
		"username": "alice",
		"password": "hunter2hunter2",
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for bad email, got %d", w.Code)
	}
}

func TestLoginFlow(t *testing.T) {
	router := setupTestRouter()
	registerUser(t, router, "alice@example.com", "alice")

	w := doJSON(router, "POST", "/v1/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "hunter2hunter2",
	})
	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(router, "POST", "/v1/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 for wrong password, got %d", w.Code)
	}
}

func TestLogoutInvalidatesToken(t *testing.T) {
	router := setupTestRouter()
	token := registerUser(t, router, "alice@example.com", "alice")

	if w := doJSON(router, "POST", "/v1/auth/logout", token, nil); w.Code != http.StatusOK {
		t.Fatalf("Expected 200 on logout, got %d", w.Code)
	}
	if w := doJSON(router, "GET", "/v1/comments", token, nil); w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 after logout, got %d", w.Code)
	}
}

func TestCommentsRequireSession(t *testing.T) {
	router := setupTestRouter()

	if w := doJSON(router, "GET", "/v1/comments", "", nil); w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 listing without token, got %d", w.Code)
	}
	if w := doJSON(router, "POST", "/v1/comments", "bogus-token", map[string]string{"content": "x"}); w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401 with bogus token, got %d", w.Code)
	}
}

func TestCommentThreadFlow(t *testing.T) {
	router := setupTestRouter()
	aliceToken := registerUser(t, router, "alice@example.com", "alice")
	bobToken := registerUser(t, router, "bob@example.com", "bob")

	// Alice posts a top-level comment
	w := doJSON(router, "POST", "/v1/comments", aliceToken, map[string]string{"content": "hello"})
	if w.Code != http.StatusCreated {
		t.Fatalf("Create: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var parent struct {
		ID string `json:"id"`
	}
	json.Unmarshal(w.Body.Bytes(), &parent)

	// Bob replies
	w = doJSON(router, "POST", "/v1/comments", bobToken, map[string]string{"content": "hi alice", "parent_id": parent.ID})
	if w.Code != http.StatusCreated {
		t.Fatalf("Reply: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	// Top-level listing shows the parent with one reply
	w = doJSON(router, "GET", "/v1/comments", bobToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("List: expected 200, got %d", w.Code)
	}
	var list struct {
		Comments []struct {
			ID         string `json:"id"`
			ReplyCount int    `json:"reply_count"`
		} `json:"comments"`
		Pagination struct {
			Total int `json:"total"`
		} `json:"pagination"`
	}
	json.Unmarshal(w.Body.Bytes(), &list)
	if len(list.Comments) != 1 || list.Comments[0].ReplyCount != 1 {
		t.Errorf("Expected one comment with reply_count 1, got %+v", list.Comments)
	}
	if list.Pagination.Total != 1 {
		t.Errorf("Expected pagination total 1, got %d", list.Pagination.Total)
	}

	// Alice received a REPLY notification
	w = doJSON(router, "GET", "/v1/notifications", aliceToken, nil)
	var feed struct {
		Notifications []struct {
			Type   string `json:"type"`
			IsRead bool   `json:"is_read"`
		} `json:"notifications"`
		UnreadCount int `json:"unread_count"`
	}
	json.Unmarshal(w.Body.Bytes(), &feed)
	if feed.UnreadCount != 1 || len(feed.Notifications) != 1 || feed.Notifications[0].Type != "REPLY" {
		t.Errorf("Expected one unread REPLY notification, got %+v", feed)
	}

	// Mark-all-read flips it
	doJSON(router, "POST", "/v1/notifications/read-all", aliceToken, nil)
	w = doJSON(router, "GET", "/v1/notifications", aliceToken, nil)
	json.Unmarshal(w.Body.Bytes(), &feed)
	if feed.UnreadCount != 0 || !feed.Notifications[0].IsRead {
		t.Errorf("Expected all read, got %+v", feed)
	}
}

func TestCommentUpdateForbiddenForNonAuthor(t *testing.T) {
	router := setupTestRouter()
	aliceToken := registerUser(t, router, "alice@example.com", "alice")
	bobToken := registerUser(t, router, "bob@example.com", "bob")

	w := doJSON(router, "POST", "/v1/comments", aliceToken, map[string]string{"content": "mine"})
	var comment struct {
		ID string `json:"id"`
	}
	json.Unmarshal(w.Body.Bytes(), &comment)

	if w := doJSON(router, "PUT", "/v1/comments/"+comment.ID, bobToken, map[string]string{"content": "hijack"}); w.Code != http.StatusForbidden {
		t.Errorf("Expected 403, got %d", w.Code)
	}
	if w := doJSON(router, "PUT", "/v1/comments/no-such-id", aliceToken, map[string]string{"content": "x"}); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestCommentDeleteRestoreAndLike(t *testing.T) {
	router := setupTestRouter()
	aliceToken := registerUser(t, router, "alice@example.com", "alice")
	bobToken := registerUser(t, router, "bob@example.com", "bob")

	w := doJSON(router, "POST", "/v1/comments", aliceToken, map[string]string{"content": "like me"})
	var comment struct {
		ID string `json:"id"`
	}
	json.Unmarshal(w.Body.Bytes(), &comment)

	// Toggle pair: liked then unliked
	w = doJSON(router, "POST", "/v1/comments/"+comment.ID+"/like", bobToken, nil)
	var likeResp struct {
		Liked bool `json:"liked"`
	}
	json.Unmarshal(w.Body.Bytes(), &likeResp)
	if w.Code != http.StatusOK || !likeResp.Liked {
		t.Errorf("First like: expected liked=true, got %d %v", w.Code, likeResp.Liked)
	}
	w = doJSON(router, "POST", "/v1/comments/"+comment.ID+"/like", bobToken, nil)
	json.Unmarshal(w.Body.Bytes(), &likeResp)
	if likeResp.Liked {
		t.Error("Second like: expected liked=false")
	}

	// Restore before delete conflicts
	if w := doJSON(router, "POST", "/v1/comments/"+comment.ID+"/restore", aliceToken, nil); w.Code != http.StatusConflict {
		t.Errorf("Expected 409 restoring active comment, got %d", w.Code)
	}

	// Delete hides it, restore brings it back
	if w := doJSON(router, "DELETE", "/v1/comments/"+comment.ID, aliceToken, nil); w.Code != http.StatusOK {
		t.Fatalf("Delete: expected 200, got %d", w.Code)
	}
	if w := doJSON(router, "POST", "/v1/comments/"+comment.ID+"/like", bobToken, nil); w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 liking deleted comment, got %d", w.Code)
	}
	if w := doJSON(router, "POST", "/v1/comments/"+comment.ID+"/restore", aliceToken, nil); w.Code != http.StatusOK {
		t.Errorf("Restore: expected 200, got %d", w.Code)
	}
}
