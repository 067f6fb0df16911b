package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dymun-conference/portal-backend/internal/config"
)

func TestSubmitAndModerateFlow(t *testing.T) {
	app, _ := newTestApp(t, nil)

	// delegate4 is assigned to CTC in the seed roster
	delegate := loginAs(t, app, "delegate4@example.com", "password123")

	created := doRequest(t, app, "POST", "/api/forum/doubts",
		`{"committeeName":"CTC","question":"When is check-in?"}`, delegate)
	require.Equal(t, http.StatusCreated, created.StatusCode)

	doubt := bodyMap(t, created)
	doubtID, _ := doubt["id"].(string)
	require.NotEmpty(t, doubtID)
	assert.Equal(t, false, doubt["isApproved"])
	assert.Nil(t, doubt["response"])

	// pending doubts stay out of the committee feed
	feed := doRequest(t, app, "GET", "/api/forum/doubts/CTC", "")
	require.Equal(t, http.StatusOK, feed.StatusCode)
	assert.Empty(t, bodyList(t, feed))

	// but the author sees their own history
	mine := doRequest(t, app, "GET", "/api/forum/doubts/user/me", "", delegate)
	require.Equal(t, http.StatusOK, mine.StatusCode)
	require.Len(t, bodyList(t, mine), 1)

	moderator := loginAs(t, app, "moderator@dymun.org", "moderator123")
	patched := doRequest(t, app, "PATCH", "/api/forum/doubts/"+doubtID,
		`{"isApproved":true,"response":"Doors open at 8am."}`, moderator)
	require.Equal(t, http.StatusOK, patched.StatusCode)

	updated := bodyMap(t, patched)
	assert.Equal(t, true, updated["isApproved"])
	assert.Equal(t, "Doors open at 8am.", updated["response"])

	feed = doRequest(t, app, "GET", "/api/forum/doubts/CTC", "")
	require.Equal(t, http.StatusOK, feed.StatusCode)
	items := bodyList(t, feed)
	require.Len(t, items, 1)
	assert.Equal(t, doubtID, items[0]["id"])
	assert.Equal(t, "Doors open at 8am.", items[0]["response"])
}

func TestCreateDoubtRequiresAuth(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp := doRequest(t, app, "POST", "/api/forum/doubts",
		`{"committeeName":"CTC","question":"anyone there?"}`)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateDoubtRejectsUnknownCommittee(t *testing.T) {
	app, _ := newTestApp(t, nil)
	delegate := loginAs(t, app, "delegate1@example.com", "password123")

	resp := doRequest(t, app, "POST", "/api/forum/doubts",
		`{"committeeName":"Not A Committee","question":"hello?"}`, delegate)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	missing := doRequest(t, app, "POST", "/api/forum/doubts",
		`{"committeeName":"CTC"}`, delegate)
	assert.Equal(t, http.StatusBadRequest, missing.StatusCode)
}

func TestModerationIsGated(t *testing.T) {
	app, _ := newTestApp(t, nil)
	delegate := loginAs(t, app, "delegate4@example.com", "password123")

	created := doRequest(t, app, "POST", "/api/forum/doubts",
		`{"committeeName":"CTC","question":"When is check-in?"}`, delegate)
	require.Equal(t, http.StatusCreated, created.StatusCode)
	doubtID := bodyMap(t, created)["id"].(string)

	anonymous := doRequest(t, app, "PATCH", "/api/forum/doubts/"+doubtID, `{"isApproved":true}`)
	assert.Equal(t, http.StatusUnauthorized, anonymous.StatusCode)

	asDelegate := doRequest(t, app, "PATCH", "/api/forum/doubts/"+doubtID,
		`{"isApproved":true}`, delegate)
	assert.Equal(t, http.StatusForbidden, asDelegate.StatusCode)

	// same gate on the list-all moderation view
	assert.Equal(t, http.StatusUnauthorized,
		doRequest(t, app, "GET", "/api/forum/doubts", "").StatusCode)
	assert.Equal(t, http.StatusForbidden,
		doRequest(t, app, "GET", "/api/forum/doubts", "", delegate).StatusCode)

	moderator := loginAs(t, app, "moderator@dymun.org", "moderator123")
	all := doRequest(t, app, "GET", "/api/forum/doubts", "", moderator)
	require.Equal(t, http.StatusOK, all.StatusCode)
	assert.Len(t, bodyList(t, all), 1)
}

func TestUpdateRejectsUnknownFields(t *testing.T) {
	app, _ := newTestApp(t, nil)
	delegate := loginAs(t, app, "delegate4@example.com", "password123")

	created := doRequest(t, app, "POST", "/api/forum/doubts",
		`{"committeeName":"CTC","question":"When is check-in?"}`, delegate)
	doubtID := bodyMap(t, created)["id"].(string)

	moderator := loginAs(t, app, "moderator@dymun.org", "moderator123")
	resp := doRequest(t, app, "PATCH", "/api/forum/doubts/"+doubtID,
		`{"userId":"someone-else","isApproved":true}`, moderator)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUpdateUnknownDoubtReturns404(t *testing.T) {
	app, _ := newTestApp(t, nil)
	moderator := loginAs(t, app, "moderator@dymun.org", "moderator123")

	resp := doRequest(t, app, "PATCH", "/api/forum/doubts/missing-id",
		`{"isApproved":true}`, moderator)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCommitteeFeedHandlesEscapedNames(t *testing.T) {
	app, _ := newTestApp(t, nil)
	delegate := loginAs(t, app, "delegate1@example.com", "password123")

	created := doRequest(t, app, "POST", "/api/forum/doubts",
		`{"committeeName":"Harry Potter","question":"Which house wins?"}`, delegate)
	require.Equal(t, http.StatusCreated, created.StatusCode)
	doubtID := bodyMap(t, created)["id"].(string)

	moderator := loginAs(t, app, "moderator@dymun.org", "moderator123")
	patched := doRequest(t, app, "PATCH", "/api/forum/doubts/"+doubtID,
		`{"isApproved":true}`, moderator)
	require.Equal(t, http.StatusOK, patched.StatusCode)

	feed := doRequest(t, app, "GET", "/api/forum/doubts/Harry%20Potter", "")
	require.Equal(t, http.StatusOK, feed.StatusCode)
	assert.Len(t, bodyList(t, feed), 1)
}

func TestUserQueryDisabledByDefault(t *testing.T) {
	app, d := newTestApp(t, nil)
	u, ok := d.Users.FindByGmail("delegate1@example.com")
	require.True(t, ok)

	resp := doRequest(t, app, "GET", "/api/forum/doubts/user/"+u.ID, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestUserQueryRelaxation(t *testing.T) {
	app, d := newTestApp(t, func(cfg *config.Config) {
		cfg.AllowUserQuery = true
	})
	delegate := loginAs(t, app, "delegate1@example.com", "password123")

	created := doRequest(t, app, "POST", "/api/forum/doubts",
		`{"committeeName":"Harry Potter","question":"Which house wins?"}`, delegate)
	require.Equal(t, http.StatusCreated, created.StatusCode)

	u, ok := d.Users.FindByGmail("delegate1@example.com")
	require.True(t, ok)

	resp := doRequest(t, app, "GET", "/api/forum/doubts/user/"+u.ID, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, bodyList(t, resp), 1)
}
