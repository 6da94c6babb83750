package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"bella/internal/genai"
	"bella/internal/handlers"
	"bella/internal/logger"
	"bella/internal/middleware"
	"bella/internal/models"
	"bella/internal/services"
	"bella/internal/store"
	"bella/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB      *gorm.DB
	Router  *gin.Engine
	Gateway *stubGateway
}

// stubGateway is a deterministic stand-in for the Gemini client.
type stubGateway struct {
	chatReply   string
	chatErr     error
	suggestions []genai.BudgetSuggestion
	suggestErr  error
	imageData   string
	imageErr    error
}

func (g *stubGateway) ChatStream(ctx context.Context, history []genai.Turn, message string, onDelta func(text string) error) error {
	if g.chatErr != nil {
		return g.chatErr
	}
	reply := g.chatReply
	if reply == "" {
		reply = "Congratulations on the engagement!"
	}
	return onDelta(reply)
}

func (g *stubGateway) SuggestBudget(ctx context.Context, totalBudget float64, guestCount int, location string) ([]genai.BudgetSuggestion, error) {
	if g.suggestErr != nil {
		return nil, g.suggestErr
	}
	if g.suggestions != nil {
		return g.suggestions, nil
	}
	return []genai.BudgetSuggestion{{Category: "Venue", Estimated: totalBudget * 0.4}}, nil
}

func (g *stubGateway) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if g.imageErr != nil {
		return "", g.imageErr
	}
	return g.imageData, nil
}

var _ services.AIGateway = (*stubGateway)(nil)

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.User{},
		&models.CollectionRecord{},
		&models.AuditLog{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)
	st := store.New(db)
	gateway := &stubGateway{}

	// Services
	userService := services.NewUserService(db)
	auditService := services.NewAuditService(db)
	weddingService := services.NewWeddingService(st)
	budgetService := services.NewBudgetService(st, gateway)
	guestService := services.NewGuestService(st)
	taskService := services.NewTaskService(st)
	eventService := services.NewEventService(st)
	assistantService := services.NewAssistantService(gateway)
	sessionService := services.NewSessionService()

	// Handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	weddingHandler := handlers.NewWeddingHandler(weddingService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	guestHandler := handlers.NewGuestHandler(guestService, auditService)
	taskHandler := handlers.NewTaskHandler(taskService, auditService)
	eventHandler := handlers.NewEventHandler(eventService, auditService)
	assistantHandler := handlers.NewAssistantHandler(assistantService)
	reportHandler := handlers.NewReportHandler(budgetService, guestService, taskService, eventService, weddingService, auditService)
	contactHandler := handlers.NewContactHandler(auditService)
	sessionHandler := handlers.NewSessionHandler(sessionService)

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	protected.GET("/profile", authHandler.GetProfile)
	protected.GET("/wedding/date", weddingHandler.GetDate)
	protected.PUT("/wedding/date", weddingHandler.SetDate)
	protected.GET("/dashboard/stats", weddingHandler.GetStats)

	budget := protected.Group("/budget")
	budget.GET("", budgetHandler.ListItems)
	budget.POST("", budgetHandler.AddItem)
	budget.PUT("/:id", budgetHandler.UpdateItem)
	budget.DELETE("/:id", budgetHandler.RemoveItem)
	budget.POST("/suggest", budgetHandler.Suggest)

	guests := protected.Group("/guests")
	guests.GET("", guestHandler.ListGuests)
	guests.POST("", guestHandler.AddGuest)
	guests.PUT("/:id", guestHandler.UpdateGuest)
	guests.PATCH("/:id/rsvp", guestHandler.SetRSVP)
	guests.DELETE("/:id", guestHandler.DeleteGuest)

	tasks := protected.Group("/tasks")
	tasks.GET("", taskHandler.ListTasks)
	tasks.POST("", taskHandler.AddTask)
	tasks.PATCH("/:id/toggle", taskHandler.ToggleTask)
	tasks.DELETE("/:id", taskHandler.DeleteTask)

	events := protected.Group("/events")
	events.GET("", eventHandler.ListEvents)
	events.POST("", eventHandler.AddEvent)
	events.DELETE("/:id", eventHandler.DeleteEvent)

	protected.POST("/assistant/chat", assistantHandler.Chat)
	protected.GET("/assistant/history", assistantHandler.History)
	protected.DELETE("/assistant/history", assistantHandler.ClearHistory)
	protected.POST("/inspiration", assistantHandler.Inspiration)

	protected.GET("/reports/:kind", reportHandler.Download)
	protected.POST("/contact", contactHandler.Submit)
	protected.GET("/session/view", sessionHandler.GetView)
	protected.PUT("/session/view", sessionHandler.SetView)

	return &testApp{DB: db, Router: router, Gateway: gateway}
}

// request makes an HTTP request to the test router and returns the recorder.
func (app *testApp) request(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}

// registerUser registers a new user and returns the token and user ID.
func (app *testApp) registerUser(t *testing.T, email, password string) (token string, userID float64) {
	t.Helper()
	body := fmt.Sprintf(`{"name":"Test User","email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/auth/register", body, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("register failed: %d %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	user := result["user"].(map[string]interface{})
	return result["token"].(string), user["id"].(float64)
}

// loginUser logs in and returns the token.
func (app *testApp) loginUser(t *testing.T, email, password string) string {
	t.Helper()
	body := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	rec := app.request("POST", "/api/v1/auth/login", body, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", rec.Code, rec.Body.String())
	}
	return parseJSON(t, rec)["token"].(string)
}
