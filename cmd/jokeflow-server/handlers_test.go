package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ANURAGMN/Autosuggestion-different-architectures/internal/app/dto"
	"github.com/ANURAGMN/Autosuggestion-different-architectures/internal/core/state"
)

// stubEngine answers each operation with scripted results.
type stubEngine struct {
	startFn  func(ctx context.Context, threadID, topic string) (state.ThreadState, error)
	resumeFn func(ctx context.Context, threadID string) (state.ThreadState, error)
	actionFn func(ctx context.Context, threadID, action string) (state.ThreadState, error)
	statusFn func(ctx context.Context, threadID string) (*dto.ThreadStatus, error)
}

func (s *stubEngine) Start(ctx context.Context, threadID, topic string) (state.ThreadState, error) {
	return s.startFn(ctx, threadID, topic)
}

func (s *stubEngine) Resume(ctx context.Context, threadID string) (state.ThreadState, error) {
	return s.resumeFn(ctx, threadID)
}

func (s *stubEngine) ApplyAction(ctx context.Context, threadID, action string) (state.ThreadState, error) {
	return s.actionFn(ctx, threadID, action)
}

func (s *stubEngine) GetStatus(ctx context.Context, threadID string) (*dto.ThreadStatus, error) {
	return s.statusFn(ctx, threadID)
}

func newTestMux(engine sessionEngine) *http.ServeMux {
	mux := http.NewServeMux()
	newServer(engine).register(mux)
	return mux
}

func postJSON(t *testing.T, mux *http.ServeMux, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHandleStart(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		engine := &stubEngine{
			startFn: func(_ context.Context, threadID, topic string) (state.ThreadState, error) {
				st := state.New(topic)
				st.Joke = "a cat joke"
				st.Status = state.StatusJokeGenerated
				return st, nil
			},
		}
		rec := postJSON(t, newTestMux(engine), "/start", `{"topic": "cats", "thread_id": "t1"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "t1", body["thread_id"])
		assert.Equal(t, "a cat joke", body["joke"])
		assert.Equal(t, "joke_generated", body["status"])
		assert.Contains(t, body["message"], "/continue")
	})

	t.Run("missing topic is a 400", func(t *testing.T) {
		rec := postJSON(t, newTestMux(&stubEngine{}), "/start", `{"thread_id": "t1"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Contains(t, body["detail"], "topic")
	})

	t.Run("malformed body is a 400", func(t *testing.T) {
		rec := postJSON(t, newTestMux(&stubEngine{}), "/start", `{"topic": `)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleContinue(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		engine := &stubEngine{
			resumeFn: func(_ context.Context, threadID string) (state.ThreadState, error) {
				st := state.New("cats")
				st.Joke = "a cat joke"
				st.Explanation = "it subverts expectations"
				st.Autosuggestions = []state.Suggestion{{ID: "another_joke", Label: "Another joke"}}
				st.Status = state.StatusAwaitingAction
				return st, nil
			},
		}
		rec := postJSON(t, newTestMux(engine), "/continue", `{"thread_id": "t1"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "awaiting_action", body["status"])
		assert.Equal(t, "it subverts expectations", body["explanation"])
		require.Len(t, body["autosuggestions"], 1)
	})

	t.Run("unknown thread is a 404", func(t *testing.T) {
		engine := &stubEngine{
			resumeFn: func(_ context.Context, threadID string) (state.ThreadState, error) {
				return state.ThreadState{}, dto.ErrThreadNotFound
			},
		}
		rec := postJSON(t, newTestMux(engine), "/continue", `{"thread_id": "ghost"}`)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, false, decodeBody(t, rec)["success"])
	})

	t.Run("no joke yet is a 404", func(t *testing.T) {
		engine := &stubEngine{
			resumeFn: func(_ context.Context, threadID string) (state.ThreadState, error) {
				return state.ThreadState{}, dto.ErrNoJokeYet
			},
		}
		rec := postJSON(t, newTestMux(engine), "/continue", `{"thread_id": "t1"}`)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestHandleAction(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		engine := &stubEngine{
			actionFn: func(_ context.Context, threadID, action string) (state.ThreadState, error) {
				st := state.New("cats")
				st.Joke = "a fresh joke"
				st.Status = state.StatusJokeRegenerated
				return st, nil
			},
		}
		rec := postJSON(t, newTestMux(engine), "/action", `{"thread_id": "t1", "action": "another_joke"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "another_joke", body["action_performed"])
		assert.Equal(t, "joke_regenerated", body["status"])
		assert.Contains(t, body["message"], "/continue")
	})

	t.Run("unknown action stays a 200 with error status", func(t *testing.T) {
		engine := &stubEngine{
			actionFn: func(_ context.Context, threadID, action string) (state.ThreadState, error) {
				st := state.New("cats")
				st.Joke = "a cat joke"
				st.Status = state.StatusError
				st.LastError = "unknown action: bogus"
				return st, nil
			},
		}
		rec := postJSON(t, newTestMux(engine), "/action", `{"thread_id": "t1", "action": "bogus"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, "error", body["status"])
		assert.Equal(t, "unknown action: bogus", body["error"])
	})

	t.Run("missing action field is a 400", func(t *testing.T) {
		rec := postJSON(t, newTestMux(&stubEngine{}), "/action", `{"thread_id": "t1"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeBody(t, rec)["detail"], "action")
	})
}

func TestHandleStatus(t *testing.T) {
	t.Run("existing thread", func(t *testing.T) {
		engine := &stubEngine{
			statusFn: func(_ context.Context, threadID string) (*dto.ThreadStatus, error) {
				return &dto.ThreadStatus{
					Exists:   true,
					ThreadID: threadID,
					Status:   "awaiting_action",
					Topic:    "cats",
					HasJoke:  true,
					NextNode: "handle_autosuggestion",
				}, nil
			},
		}
		rec := postJSON(t, newTestMux(engine), "/status", `{"thread_id": "t1"}`)

		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		assert.Equal(t, true, body["exists"])
		assert.Equal(t, "handle_autosuggestion", body["next_node"])
	})

	t.Run("unknown thread is a 404", func(t *testing.T) {
		engine := &stubEngine{
			statusFn: func(_ context.Context, threadID string) (*dto.ThreadStatus, error) {
				return nil, dto.ErrThreadNotFound
			},
		}
		rec := postJSON(t, newTestMux(engine), "/status", `{"thread_id": "ghost"}`)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestInfraEndpoints(t *testing.T) {
	mux := newTestMux(&stubEngine{})

	t.Run("root", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, decodeBody(t, rec), "endpoints")
	})

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "healthy", decodeBody(t, rec)["status"])
	})

	t.Run("metrics renders prometheus text", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "jokeflow_threads_started_total")
	})

	t.Run("unknown path", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
