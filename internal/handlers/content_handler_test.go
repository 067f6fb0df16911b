package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetCommitteesGroupedByLevel(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp := doRequest(t, app, "GET", "/api/committees", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	groups := bodyList(t, resp)
	require.Len(t, groups, 3)
	assert.Equal(t, "Primary School (Grades 3-5)", groups[0]["title"])
	assert.Equal(t, "Middle School (Grades 6-8)", groups[1]["title"])
	assert.Equal(t, "High School (Grades 9-12)", groups[2]["title"])
}

func TestGetCommitteeByName(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp := doRequest(t, app, "GET", "/api/committees/CTC", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "CTC (Counter-Terrorism Committee)", bodyMap(t, resp)["subtitle"])

	escaped := doRequest(t, app, "GET", "/api/committees/SDG%205", "")
	require.Equal(t, http.StatusOK, escaped.StatusCode)
	assert.Equal(t, "SDG 5", bodyMap(t, escaped)["name"])

	missing := doRequest(t, app, "GET", "/api/committees/Nonsense", "")
	assert.Equal(t, http.StatusNotFound, missing.StatusCode)
}

func TestGetResourcesMergesGeneralAndCommittee(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp := doRequest(t, app, "GET", "/api/resources/CTC", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	categories := bodyList(t, resp)
	// three general categories followed by CTC's two
	require.Len(t, categories, 5)
	assert.Equal(t, "General Study Guides", categories[0]["title"])
	assert.Equal(t, "Counter-Terrorism Resources", categories[3]["title"])
}

func TestGetContacts(t *testing.T) {
	app, _ := newTestApp(t, nil)

	resp := doRequest(t, app, "GET", "/api/contacts", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	contacts := bodyList(t, resp)
	require.NotEmpty(t, contacts)
	assert.Equal(t, "secretariat", contacts[0]["type"])
}
