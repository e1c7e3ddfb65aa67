package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeIssueAPI emulates the comment endpoints for one issue.
type fakeIssueAPI struct {
	login    string
	comments []Comment
	nextID   int64
}

func (f *fakeIssueAPI) handler(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("GET /user", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(User{Login: f.login})
	})

	mux.HandleFunc("GET /repos/acme/widgets/issues/7/comments", func(w http.ResponseWriter, r *http.Request) {
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page < 1 {
			page = 1
		}
		per, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
		assert.Equal(t, 100, per)

		lo := (page - 1) * per
		hi := min(lo+per, len(f.comments))
		if lo > hi {
			lo = hi
		}
		json.NewEncoder(w).Encode(f.comments[lo:hi])
	})

	mux.HandleFunc("POST /repos/acme/widgets/issues/7/comments", func(w http.ResponseWriter, r *http.Request) {
		var payload commentPayload
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		f.nextID++
		cm := Comment{ID: f.nextID, Body: payload.Body, User: User{Login: f.login}}
		f.comments = append(f.comments, cm)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(cm)
	})

	mux.HandleFunc("PATCH /repos/acme/widgets/issues/comments/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		assert.NoError(t, err)

		var payload commentPayload
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		for i := range f.comments {
			if f.comments[i].ID == id {
				f.comments[i].Body = payload.Body
				json.NewEncoder(w).Encode(f.comments[i])
				return
			}
		}
		http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
	})

	return mux
}

func newTestClient(t *testing.T, api *fakeIssueAPI) *Client {
	t.Helper()
	srv := httptest.NewServer(api.handler(t))
	t.Cleanup(srv.Close)
	return NewClient(context.Background(), srv.URL, "acme/widgets", "test-token")
}

func TestUpsertComment_CreateThenUpdate(t *testing.T) {
	api := &fakeIssueAPI{login: "report-bot", nextID: 100}
	client := newTestClient(t, api)
	ctx := context.Background()
	marker := "<!-- range-hours-summary -->"

	id, updated, err := client.UpsertComment(ctx, 7, marker, marker+"\nfirst run")
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Equal(t, int64(101), id)
	require.Len(t, api.comments, 1)

	id2, updated, err := client.UpsertComment(ctx, 7, marker, marker+"\nsecond run")
	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, id, id2)
	require.Len(t, api.comments, 1, "re-run must not create a duplicate")
	assert.Equal(t, marker+"\nsecond run", api.comments[0].Body)
}

func TestUpsertComment_SkipsOtherAuthorsMarker(t *testing.T) {
	marker := "<!-- range-hours-summary -->"
	api := &fakeIssueAPI{
		login:  "report-bot",
		nextID: 200,
		comments: []Comment{
			{ID: 1, Body: marker + "\nimpostor", User: User{Login: "someone-else"}},
		},
	}
	client := newTestClient(t, api)

	id, updated, err := client.UpsertComment(context.Background(), 7, marker, marker+"\nours")
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Equal(t, int64(201), id)
	assert.Len(t, api.comments, 2)
}

func TestUpsertComment_BlankLoginMatchesAnyAuthor(t *testing.T) {
	marker := "<!-- range-hours-summary -->"
	api := &fakeIssueAPI{
		login:  "",
		nextID: 300,
		comments: []Comment{
			{ID: 5, Body: marker + "\nexisting", User: User{Login: "someone-else"}},
		},
	}
	client := newTestClient(t, api)

	id, updated, err := client.UpsertComment(context.Background(), 7, marker, marker+"\nnew body")
	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, int64(5), id)
}

func TestListComments_Paginates(t *testing.T) {
	api := &fakeIssueAPI{login: "report-bot"}
	for i := 0; i < 150; i++ {
		api.comments = append(api.comments, Comment{
			ID:   int64(i + 1),
			Body: fmt.Sprintf("comment %d", i+1),
			User: User{Login: "report-bot"},
		})
	}
	client := newTestClient(t, api)

	comments, err := client.ListComments(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, comments, 150)
	assert.Equal(t, int64(150), comments[149].ID)
}

func TestClient_NonSuccessStatusIsAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"boom"}`, http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(context.Background(), srv.URL, "acme/widgets", "test-token")

	_, err := client.CurrentLogin(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "boom")
}
