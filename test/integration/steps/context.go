// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/menu-pricing/backend/config"
	"github.com/menu-pricing/backend/internal/infra/dependency"
	"github.com/menu-pricing/backend/internal/integration/email"
	"github.com/menu-pricing/backend/internal/integration/persistence/model"
	"github.com/menu-pricing/backend/test/integration/mock"
)

const (
	testJWTSecret = "test-jwt-secret-key-for-testing-purposes"
	testPOSAPIKey = "pos-test-key"
)

// testContext holds the state of one scenario.
type testContext struct {
	uri         string
	headers     map[string]string
	client      *http.Client
	response    *response
	accessToken string
	accountID   uuid.UUID
	email       string
	ids         map[string]string
	lastID      string
	importID    string
}

type response struct {
	status int
	body   any
}

// Suite-wide resources. The server is started once and shared by every
// scenario; each scenario clears the database, Redis and the upstream mock.
var (
	serverInit  sync.Once
	serverErr   error
	serverPort  int
	testDB      *mock.Db
	testClock   *mock.Time
	upstreamAPI *mock.ApiMock
	injector    *dependency.Injector
)

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)

		serverPort = findAvailablePort()
		testClock = mock.NewTime()
		upstreamAPI = mock.NewApiServer()
		upstreamAPI.Start()
		testDB = mock.NewDb("menu_pricing", model.All()...)

		_ = os.Setenv("ENV", "test")
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(serverPort))
		_ = os.Setenv("JWT_SECRET", testJWTSecret)
		_ = os.Setenv("POS_API_BASE_URL", upstreamAPI.GetUrl())
		_ = os.Setenv("POS_API_KEY", testPOSAPIKey)
		_ = os.Setenv("POS_API_RETRY_COUNT", "0")
		_ = os.Setenv("IMPORT_POLL_INTERVAL", "20ms")
		_ = os.Setenv("IMPORT_JOB_TIMEOUT", "5s")
		_ = os.Setenv("RESEND_API_KEY", "")
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		uri:    fmt.Sprintf("http://localhost:%d", serverPort),
		client: &http.Client{Timeout: 10 * time.Second},
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)

	registerAccountSteps(ctx, test)
	registerDataSteps(ctx, test)
	registerUpstreamSteps(ctx, test)
	registerJobSteps(ctx, test)
	registerRequestSteps(ctx, test)
	registerResponseSteps(ctx, test)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.accountID = uuid.Nil
	t.email = ""
	t.ids = make(map[string]string)
	t.lastID = ""
	t.importID = ""

	testClock.SetCurrentTime(time.Now())
	upstreamAPI.Reset()
	if err := mock.ClearRedis(mock.NewRedis()); err != nil {
		return err
	}
	if sender, ok := emailSender(); ok {
		sender.Reset()
	}
	return testDB.ClearDB()
}

func (t *testContext) startServer() error {
	serverInit.Do(func() {
		cfg := config.Load()

		injector, serverErr = dependency.NewInjector(cfg, testDB.DbConn, mock.NewRedis(), testClock)
		if serverErr != nil {
			return
		}

		engine := injector.Router.Setup(cfg.Server.Environment)
		server := &http.Server{
			Addr:    fmt.Sprintf(":%d", serverPort),
			Handler: engine,
		}

		go func() {
			_ = server.ListenAndServe()
		}()
	})
	if serverErr != nil {
		return serverErr
	}

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil {
			resp.Body.Close()
			return nil
		}
		time.Sleep(100 * time.Millisecond)
	}
	return fmt.Errorf("server did not start on port %d", serverPort)
}

func (t *testContext) theAPIServerIsRunning() error {
	return t.startServer()
}

func (t *testContext) todayIs(date string) error {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return err
	}
	testClock.SetCurrentTime(day.Add(12 * time.Hour))
	return nil
}

func emailSender() (*email.MockEmailSender, bool) {
	if injector == nil {
		return nil, false
	}
	sender, ok := injector.EmailSender.(*email.MockEmailSender)
	return sender, ok
}
