package fakeapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/bod/internal/common"
	"github.com/dmitrijs2005/bod/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store, err := NewStore(Seed())
	require.NoError(t, err)
	srv := httptest.NewServer(NewServer("", store, logging.Discard()).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any, out any) int {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestSeed_Shape(t *testing.T) {
	data := Seed()
	assert.Len(t, data["users"], 10)
	assert.Len(t, data["posts"], 100)
	assert.Len(t, data["albums"], 100)
	assert.Len(t, data["todos"], 200)
	assert.Len(t, data["comments"], 500)
	assert.Len(t, data["photos"], 500)

	again := Seed()
	assert.Equal(t, data["users"], again["users"], "seed must be deterministic")
}

func TestStore_CRUD(t *testing.T) {
	s, err := NewStore(map[string][]any{"todos": {
		map[string]any{"id": 1, "userId": 1, "title": "a", "completed": false},
		map[string]any{"id": 2, "userId": 2, "title": "b", "completed": true},
	}})
	require.NoError(t, err)

	items, err := s.List("todos", map[string]string{"completed": "true"})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "b", items[0]["title"])

	created, err := s.Create("todos", Object{"title": "c", "id": 99})
	require.NoError(t, err)
	assert.Equal(t, 3, created["id"])

	require.NoError(t, s.Delete("todos", 3))
	created, err = s.Create("todos", Object{"title": "d"})
	require.NoError(t, err)
	assert.Equal(t, 4, created["id"], "ids are not reused")

	_, err = s.Update("todos", 42, Object{})
	require.ErrorIs(t, err, common.ErrorNotFound)

	_, err = s.List("nope", nil)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestAPI_ListAndFilter(t *testing.T) {
	srv := newTestServer(t)

	var posts []map[string]any
	code := doJSON(t, http.MethodGet, srv.URL+"/posts?userId=3", nil, &posts)
	require.Equal(t, http.StatusOK, code)
	require.Len(t, posts, 10)
	for _, p := range posts {
		assert.EqualValues(t, 3, p["userId"])
	}

	var comments []map[string]any
	code = doJSON(t, http.MethodGet, srv.URL+"/comments?postId=1", nil, &comments)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, comments, 5)
}

func TestAPI_GetCreateUpdateDelete(t *testing.T) {
	srv := newTestServer(t)

	var user map[string]any
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, srv.URL+"/users/1", nil, &user))
	assert.Equal(t, "Leanne Graham", user["name"])

	var created map[string]any
	code := doJSON(t, http.MethodPost, srv.URL+"/todos", map[string]any{"userId": 1, "title": "Buy milk", "completed": false}, &created)
	require.Equal(t, http.StatusCreated, code)
	assert.EqualValues(t, 201, created["id"])

	var updated map[string]any
	code = doJSON(t, http.MethodPut, srv.URL+"/todos/201", map[string]any{"userId": 1, "title": "Buy oat milk", "completed": true}, &updated)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Buy oat milk", updated["title"])
	assert.EqualValues(t, 201, updated["id"])

	require.Equal(t, http.StatusOK, doJSON(t, http.MethodDelete, srv.URL+"/todos/201", nil, nil))

	var eb errorBody
	require.Equal(t, http.StatusNotFound, doJSON(t, http.MethodGet, srv.URL+"/todos/201", nil, &eb))
	assert.Contains(t, eb.Message, "not found")
}

func TestAPI_Errors(t *testing.T) {
	srv := newTestServer(t)

	var eb errorBody
	require.Equal(t, http.StatusBadRequest, doJSON(t, http.MethodGet, srv.URL+"/users/abc", nil, &eb))
	assert.NotEmpty(t, eb.Message)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/posts", bytes.NewBufferString("{"))
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	require.Equal(t, http.StatusNotFound, doJSON(t, http.MethodGet, srv.URL+"/nothing", nil, &eb))
	assert.Equal(t, "no route for /nothing", eb.Message)
}
