package mazeapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/beka-birhanu/maze-solver-api/api/identity"
	dmn "github.com/beka-birhanu/maze-solver-api/domain"
	"github.com/beka-birhanu/maze-solver-api/solver"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const corridorMaze = "#-#\n#-#\n#-#"

// stubSolver backs the controller with the real solver core and an
// in-memory record store.
type stubSolver struct {
	records map[uuid.UUID]*dmn.MazeRecord
}

func newStubSolver() *stubSolver {
	return &stubSolver{records: make(map[uuid.UUID]*dmn.MazeRecord)}
}

func (s *stubSolver) SolveText(_ context.Context, text string) (solver.Solution, error) {
	return solver.SolveText(text)
}

func (s *stubSolver) CreateMaze(ctx context.Context, ownerID uuid.UUID, name, text string) (*dmn.MazeRecord, error) {
	solution, err := solver.SolveText(text)
	if err != nil {
		return nil, err
	}
	record := &dmn.MazeRecord{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      name,
		Text:      text,
		Path:      solution.Path,
		Cost:      solution.Cost,
		CreatedAt: time.Now().UTC(),
	}
	s.records[record.ID] = record
	return record, nil
}

func (s *stubSolver) GenerateMaze(ctx context.Context, ownerID uuid.UUID, name string, width, height int) (*dmn.MazeRecord, error) {
	return s.CreateMaze(ctx, ownerID, name, corridorMaze)
}

func (s *stubSolver) MazeByID(id uuid.UUID) (*dmn.MazeRecord, error) {
	record, ok := s.records[id]
	if !ok {
		return nil, assert.AnError
	}
	return record, nil
}

func setupRouter(t *testing.T, callerID uuid.UUID) (*gin.Engine, *stubSolver) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	stub := newStubSolver()
	controller, err := NewMazeController(stub)
	assert.NoError(t, err)

	router := gin.New()
	public := router.Group("/v1")
	controller.RegisterPublic(public)

	protected := router.Group("/v1")
	protected.Use(func(c *gin.Context) {
		c.Set(identity.ContextUserClaims, map[string]interface{}{
			"userID": callerID.String(),
		})
		c.Next()
	})
	controller.RegisterProtected(protected)
	return router, stub
}

func postJSON(router *gin.Engine, url string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	request := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(raw))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestSolveEndpoint(t *testing.T) {
	router, _ := setupRouter(t, uuid.New())

	t.Run("solves a valid maze", func(t *testing.T) {
		recorder := postJSON(router, "/v1/solve", SolveRequest{Maze: corridorMaze})
		assert.Equal(t, http.StatusOK, recorder.Code)

		var response SolveResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, 2, response.Cost)
		assert.Len(t, response.Path, 3)
	})

	t.Run("reports unsolvable mazes", func(t *testing.T) {
		recorder := postJSON(router, "/v1/solve", SolveRequest{Maze: "#-#\n###\n#-#"})
		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	})

	t.Run("rejects malformed maze text", func(t *testing.T) {
		recorder := postJSON(router, "/v1/solve", SolveRequest{Maze: "-#-\n--\n-#-"})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("rejects missing body fields", func(t *testing.T) {
		recorder := postJSON(router, "/v1/solve", gin.H{})
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestMazeEndpoints(t *testing.T) {
	callerID := uuid.New()
	router, stub := setupRouter(t, callerID)

	t.Run("stores and retrieves a maze", func(t *testing.T) {
		recorder := postJSON(router, "/v1/mazes/", CreateMazeRequest{Name: "corridor", Maze: corridorMaze})
		assert.Equal(t, http.StatusCreated, recorder.Code)

		var created dmn.MazeRecord
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
		assert.Equal(t, callerID, created.OwnerID)
		assert.Equal(t, 2, created.Cost)

		request := httptest.NewRequest(http.MethodGet, "/v1/mazes/"+created.ID.String(), nil)
		getRecorder := httptest.NewRecorder()
		router.ServeHTTP(getRecorder, request)
		assert.Equal(t, http.StatusOK, getRecorder.Code)

		var fetched dmn.MazeRecord
		assert.NoError(t, json.Unmarshal(getRecorder.Body.Bytes(), &fetched))
		assert.Equal(t, created.ID, fetched.ID)
		assert.Equal(t, created.Path, fetched.Path)
	})

	t.Run("generates a solvable maze", func(t *testing.T) {
		recorder := postJSON(router, "/v1/mazes/generate", GenerateMazeRequest{Name: "random", Width: 3, Height: 3})
		assert.Equal(t, http.StatusCreated, recorder.Code)

		var created dmn.MazeRecord
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &created))
		assert.NotEmpty(t, created.Path)
		assert.Len(t, stub.records, 2)
	})

	t.Run("rejects malformed maze IDs", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/v1/mazes/not-a-uuid", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("reports unknown mazes", func(t *testing.T) {
		request := httptest.NewRequest(http.MethodGet, "/v1/mazes/"+uuid.NewString(), nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
