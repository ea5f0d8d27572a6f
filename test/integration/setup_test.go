//go:build integration

package integration

import (
	"context"
	"log"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/linskybing/form-console/internal/config"
	"github.com/linskybing/form-console/internal/testutils"
	"gorm.io/gorm"
)

var (
	gdb    *gorm.DB
	api    *testutils.Server
	server *httptest.Server
)

func TestMain(m *testing.M) {
	_ = os.Setenv("JWT_SECRET", "test-secret-key-for-integration-testing")
	_ = os.Setenv("ISSUER", "form-console-test")
	_ = os.Setenv("PUBLIC_URL", "http://console.test")
	config.LoadConfig()

	var (
		cleanup func()
		err     error
	)
	gdb, cleanup, err = testutils.SetupPostgres(context.Background())
	if err != nil {
		log.Fatalf("Failed to setup test database: %v", err)
	}

	api = testutils.NewServer(gdb)
	server = httptest.NewServer(api.Router)

	code := m.Run()

	server.Close()
	api.Hub.Close()
	cleanup()
	os.Exit(code)
}
