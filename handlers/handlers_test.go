// File: handlers/handlers_test.go
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medinatours/database"
	sessionRepo "medinatours/database/repository/session"
	subscriberRepo "medinatours/database/repository/subscriber"
	"medinatours/models"
	"medinatours/services/booking"
	"medinatours/services/newsletter"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func postJSON(r *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type noopSender struct{ calls int }

func (n *noopSender) Send(ctx context.Context, to []string, subject, htmlBody string) error {
	n.calls++
	return nil
}

func newCoachingRouter() (*gin.Engine, *booking.Coordinator) {
	coord := booking.NewCoordinator(sessionRepo.NewKeyedSessionRepo(database.NewMemoryStore()))
	h := NewCoachingHandler(coord)

	r := gin.New()
	r.GET("/api/coaching/sessions", h.List)
	r.POST("/api/coaching/sessions", h.Create)
	r.POST("/api/coaching/book", h.Book)
	return r, coord
}

func TestCoachingBookSuccess(t *testing.T) {
	r, coord := newCoachingRouter()

	id, err := coord.CreateSession(context.Background(), models.CoachingSession{Date: "2026-09-20"})
	require.NoError(t, err)

	w := postJSON(r, "/api/coaching/book", gin.H{"user_email": "user@example.com", "session_id": id})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Session booked successfully")
}

func TestCoachingBookTakenAndMissingLookAlike(t *testing.T) {
	r, coord := newCoachingRouter()

	id, err := coord.CreateSession(context.Background(), models.CoachingSession{Date: "2026-09-20"})
	require.NoError(t, err)
	require.NoError(t, coord.BookSession(context.Background(), id, "first@example.com"))

	taken := postJSON(r, "/api/coaching/book", gin.H{"user_email": "x@example.com", "session_id": id})
	missing := postJSON(r, "/api/coaching/book", gin.H{"user_email": "x@example.com", "session_id": "nope"})

	assert.Equal(t, http.StatusBadRequest, taken.Code)
	assert.Equal(t, http.StatusBadRequest, missing.Code)
	assert.Equal(t, taken.Body.String(), missing.Body.String(), "taken and missing sessions are indistinguishable to callers")
}

func TestCoachingBookMissingFields(t *testing.T) {
	r, _ := newCoachingRouter()

	w := postJSON(r, "/api/coaching/book", gin.H{"user_email": "x@example.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func newNewsletterRouter(sender *noopSender) *gin.Engine {
	repo := subscriberRepo.NewKeyedSubscriberRepo(database.NewMemoryStore())
	h := NewNewsletterHandler(newsletter.NewService(repo, sender))

	r := gin.New()
	r.POST("/api/newsletter/subscribe", h.Subscribe)
	r.POST("/api/newsletter/send-newsletter", h.Send)
	return r
}

func TestNewsletterSubscribe(t *testing.T) {
	r := newNewsletterRouter(&noopSender{})

	w := postJSON(r, "/api/newsletter/subscribe", gin.H{"email": "user@example.com"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Successfully subscribed")

	dup := postJSON(r, "/api/newsletter/subscribe", gin.H{"email": "user@example.com"})
	assert.Equal(t, http.StatusBadRequest, dup.Code)
	assert.Contains(t, dup.Body.String(), "Email already subscribed.")
}

func TestNewsletterSendWithoutSubscribers(t *testing.T) {
	r := newNewsletterRouter(&noopSender{})

	w := postJSON(r, "/api/newsletter/send-newsletter", gin.H{"subject": "News", "content": "<p>hi</p>"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "No subscribers found.")
}

func TestNewsletterSend(t *testing.T) {
	sender := &noopSender{}
	r := newNewsletterRouter(sender)

	require.Equal(t, http.StatusOK, postJSON(r, "/api/newsletter/subscribe", gin.H{"email": "user@example.com"}).Code)

	w := postJSON(r, "/api/newsletter/send-newsletter", gin.H{"subject": "News", "content": "<p>hi</p>"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Newsletter sent successfully")
	assert.Equal(t, 1, sender.calls)
}

type fakeDirectory struct {
	user *auth.UserRecord
	err  error
}

func (f *fakeDirectory) GetUserByEmail(ctx context.Context, email string) (*auth.UserRecord, error) {
	return f.user, f.err
}

func (f *fakeDirectory) CustomToken(ctx context.Context, uid string) (string, error) {
	return "custom-token-for-" + uid, nil
}

func newAdminRouter(dir UserDirectory) *gin.Engine {
	h := NewAdminHandler(dir)
	r := gin.New()
	r.POST("/api/admin/login", h.Login)
	return r
}

func adminUser(isAdmin bool) *auth.UserRecord {
	return &auth.UserRecord{
		UserInfo:     &auth.UserInfo{UID: "u1"},
		CustomClaims: map[string]interface{}{"isAdmin": isAdmin},
	}
}

func TestAdminLoginSuccess(t *testing.T) {
	r := newAdminRouter(&fakeDirectory{user: adminUser(true)})

	w := postJSON(r, "/api/admin/login", gin.H{"email": "admin@example.com"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "custom-token-for-u1")
}

func TestAdminLoginNonAdmin(t *testing.T) {
	r := newAdminRouter(&fakeDirectory{user: adminUser(false)})

	w := postJSON(r, "/api/admin/login", gin.H{"email": "user@example.com"})
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized")
}

func TestAdminLoginUnknownUser(t *testing.T) {
	r := newAdminRouter(&fakeDirectory{err: errors.New("user not found")})

	w := postJSON(r, "/api/admin/login", gin.H{"email": "nobody@example.com"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAdminLoginMissingEmail(t *testing.T) {
	r := newAdminRouter(&fakeDirectory{user: adminUser(true)})

	w := postJSON(r, "/api/admin/login", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
