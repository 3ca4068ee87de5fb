// Package mazeapi handles maze solving, storage and generation over HTTP.
package mazeapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/maze-solver-api/api/identity"
	"github.com/beka-birhanu/maze-solver-api/maze"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/beka-birhanu/maze-solver-api/solver"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MazeController manages maze operations.
type MazeController struct {
	mazeService i.MazeSolver
}

// NewMazeController initializes a MazeController.
func NewMazeController(ms i.MazeSolver) (*MazeController, error) {
	if ms == nil {
		return nil, errors.New("maze controller needs a maze service")
	}
	return &MazeController{
		mazeService: ms,
	}, nil
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	route.POST("/solve", mc.solve)
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("/", mc.create)
		mazes.POST("/generate", mc.generate)
		mazes.GET("/:ID", mc.mazeInfo)
	}
}

// solve handles one-shot solve requests without persistence.
func (mc *MazeController) solve(ctx *gin.Context) {
	var request SolveRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	solution, err := mc.mazeService.SolveText(ctx, request.Maze)
	if err != nil {
		ctx.JSON(solveStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, &SolveResponse{
		Path:     solution.Path,
		Cost:     solution.Cost,
		Expanded: solution.Expanded,
	})
}

// create handles storing a named maze under the caller.
func (mc *MazeController) create(ctx *gin.Context) {
	var request CreateMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ownerID, err := callerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	record, err := mc.mazeService.CreateMaze(ctx, ownerID, request.Name, request.Maze)
	if err != nil {
		ctx.JSON(solveStatus(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, record)
}

// generate handles random maze creation requests.
func (mc *MazeController) generate(ctx *gin.Context) {
	var request GenerateMazeRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ownerID, err := callerID(ctx)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	record, err := mc.mazeService.GenerateMaze(ctx, ownerID, request.Name, request.Width, request.Height)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, record)
}

// mazeInfo retrieves a stored maze with its solution.
func (mc *MazeController) mazeInfo(ctx *gin.Context) {
	IDString := ctx.Params.ByName("ID")
	ID, err := uuid.Parse(IDString)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return
	}

	record, err := mc.mazeService.MazeByID(ID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no such maze"})
		return
	}

	ctx.JSON(http.StatusOK, record)
}

// callerID extracts the authenticated user's ID from the JWT claims.
func callerID(ctx *gin.Context) (uuid.UUID, error) {
	raw, ok := ctx.Get(identity.ContextUserClaims)
	if !ok {
		return uuid.Nil, errors.New("missing user claims")
	}
	claims, ok := raw.(map[string]interface{})
	if !ok {
		return uuid.Nil, errors.New("malformed user claims")
	}
	idString, ok := claims["userID"].(string)
	if !ok {
		return uuid.Nil, errors.New("malformed user claims")
	}
	return uuid.Parse(idString)
}

// solveStatus maps solver and parser failures to HTTP statuses. An
// unsolvable maze is a valid query with a negative answer, not a bad
// request.
func solveStatus(err error) int {
	switch {
	case errors.Is(err, solver.ErrNoPath):
		return http.StatusUnprocessableEntity
	case errors.Is(err, maze.ErrEmptyMaze),
		errors.Is(err, maze.ErrRaggedRows),
		errors.Is(err, maze.ErrNoOpenings),
		errors.Is(err, maze.ErrDuplicateMarker):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
