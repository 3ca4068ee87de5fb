package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/beka-birhanu/maze-solver-api/api"
	api_i "github.com/beka-birhanu/maze-solver-api/api/i"
	"github.com/beka-birhanu/maze-solver-api/api/identity"
	"github.com/beka-birhanu/maze-solver-api/api/mazeapi"
	"github.com/beka-birhanu/maze-solver-api/config"
	"github.com/beka-birhanu/maze-solver-api/generator"
	"github.com/beka-birhanu/maze-solver-api/infrastruture/cache"
	"github.com/beka-birhanu/maze-solver-api/infrastruture/repo"
	"github.com/beka-birhanu/maze-solver-api/infrastruture/token"
	"github.com/beka-birhanu/maze-solver-api/service"
	"github.com/beka-birhanu/maze-solver-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	userRepo       i.UserRepo
	mazeRepo       i.MazeRepo
	solutionCache  i.SolutionCache
	jwtTokenizer   i.Tokenizer
	authService    i.Authenticator
	solveService   i.MazeSolver
	authController api_i.Controller
	mazeController api_i.Controller
	router         *api.Router
	appLogger      *log.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Printf("Failed to connect to MongoDB: %v", err)
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Printf("MongoDB ping failed: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Printf("Redis ping failed: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Connected to Redis")
}

func initRepos(client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, config.Envs.DBName, "users")
	mazeRepo = repo.NewMazeRepo(client, config.Envs.DBName, "mazes")
	appLogger.Println("Repositories initialized")
}

func initSolutionCache() {
	var err error
	solutionCache, err = cache.NewRedisSolutionCache(redisClient, config.Envs.SolutionCacheTTL)
	if err != nil {
		appLogger.Printf("Creating solution cache: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Solution cache initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Println("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Printf("Creating auth service: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Auth service initialized")
}

func initSolveService() {
	var err error
	solveService, err = service.NewSolveService(&service.SolveConfig{
		MazeRepo: mazeRepo,
		Cache:    solutionCache,
		Gen:      generator.New(),
		Logger:   appLogger,
	})
	if err != nil {
		appLogger.Printf("Creating solve service: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Solve service initialized")
}

func initControllers() {
	authController = identity.NewIdentityServer(authService)

	var err error
	mazeController, err = mazeapi.NewMazeController(solveService)
	if err != nil {
		appLogger.Printf("Creating maze controller: %v", err)
		os.Exit(1)
	}
	appLogger.Println("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, mazeController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Println("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	appLogger = log.New(os.Stdout, config.ColorGreen+"[APP] "+config.ColorReset, log.LstdFlags)
	gin.SetMode(config.Envs.GinMode)

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer redisClient.Close()

	initRepos(mongoClient)
	initSolutionCache()
	initJWTTokenizer()
	initAuthService()
	initSolveService()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Printf("Starting server: %v", err)
		os.Exit(1)
	}
}
