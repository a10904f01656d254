//go:build e2e

// Package e2e provides end-to-end browser tests for the employee directory web UI.
//
// Test organization:
// - e2e_test.go: TestMain, shared helpers, constants, core dashboard tests
// - auth_test.go: authentication tests (login/logout)
// - form_test.go: add and edit form tests
// - delete_test.go: delete confirmation tests
// - search_test.go: search functionality tests
package e2e

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	baseURL    = "http://localhost:18080"
	testBinary = "/tmp/empdir-e2e"
)

// auth server constants (separate server for auth tests to avoid rate limiting main tests)
const (
	authBaseURL  = "http://localhost:18081"
	testPassword = "testpass123"                                                  //nolint:gosec // test password for e2e tests
	passwordHash = "$2y$10$ZcZnRH/ya6JUmBRGE8qlBupIFUYgvOewRXtpkB8HecWtUnryAHr0S" //nolint:gosec // bcrypt hash of testpass123 for e2e tests
)

var (
	pw        *playwright.Playwright
	serverCmd *exec.Cmd
)

func TestMain(m *testing.M) {
	ctx := context.Background()
	build := exec.CommandContext(ctx, "go", "build", "-o", testBinary, "./app")
	build.Dir = ".."
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		fmt.Printf("failed to build: %v\n", err)
		os.Exit(1)
	}

	// memory store, every run starts from the embedded seed
	serverCmd = exec.CommandContext(ctx, testBinary,
		"--log.enabled",
		"--store.driver=memory",
		"--web.address=:18080",
		"--web.hostname=e2e-test",
	)
	serverCmd.Stdout = os.Stdout
	serverCmd.Stderr = os.Stderr
	if err := serverCmd.Start(); err != nil {
		fmt.Printf("failed to start server: %v\n", err)
		os.Exit(1)
	}

	if err := waitForServer(baseURL+"/ping", 30*time.Second); err != nil {
		fmt.Printf("server not ready: %v\n", err)
		_ = serverCmd.Process.Kill()
		os.Exit(1)
	}

	if err := playwright.Install(&playwright.RunOptions{
		Browsers: []string{"chromium"},
	}); err != nil {
		fmt.Printf("failed to install playwright: %v\n", err)
		_ = serverCmd.Process.Kill()
		os.Exit(1)
	}

	var err error
	pw, err = playwright.Run()
	if err != nil {
		fmt.Printf("failed to start playwright: %v\n", err)
		_ = serverCmd.Process.Kill()
		os.Exit(1)
	}

	code := m.Run()

	_ = pw.Stop()
	_ = serverCmd.Process.Kill()
	os.Exit(code)
}

func waitForServer(url string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client := &http.Client{Timeout: 5 * time.Second}
	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("server not ready after %v", timeout)
		default:
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody) // #nosec G107 - test url
			if err != nil {
				time.Sleep(100 * time.Millisecond)
				continue
			}
			resp, err := client.Do(req)
			if err == nil {
				_ = resp.Body.Close()
				if resp.StatusCode == http.StatusOK {
					return nil
				}
			}
			time.Sleep(100 * time.Millisecond)
		}
	}
}

func newPage(t *testing.T) playwright.Page {
	t.Helper()
	headless := os.Getenv("E2E_HEADLESS") != "false"
	slowMo := 0.0
	if !headless {
		slowMo = 50 // 50ms slowdown for UI mode
	}
	brow, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(headless),
		SlowMo:   playwright.Float(slowMo),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = brow.Close() })

	// isolated context, own cookies and form session per test
	ctx, err := brow.NewContext()
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctx.Close() })

	page, err := ctx.NewPage()
	require.NoError(t, err)
	return page
}

func waitVisible(t *testing.T, loc playwright.Locator) {
	t.Helper()
	err := loc.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateVisible,
		Timeout: playwright.Float(5000),
	})
	require.NoError(t, err)
}

func waitHidden(t *testing.T, loc playwright.Locator) {
	t.Helper()
	err := loc.WaitFor(playwright.LocatorWaitForOptions{
		State:   playwright.WaitForSelectorStateHidden,
		Timeout: playwright.Float(5000),
	})
	require.NoError(t, err)
}

// navigateToDashboard navigates to the dashboard and waits for the table
func navigateToDashboard(t *testing.T, page playwright.Page) {
	t.Helper()
	_, err := page.Goto(baseURL)
	require.NoError(t, err)
	waitVisible(t, page.Locator(".header"))
	waitVisible(t, page.Locator("table.employees"))
}

// rowByName returns the table row with the employee name
func rowByName(page playwright.Page, name string) playwright.Locator {
	return page.Locator("table.employees tbody tr").Filter(playwright.LocatorFilterOptions{
		Has: page.Locator("td.name", playwright.PageLocatorOptions{HasText: name}),
	})
}

// --- dashboard tests ---

func TestDashboard_PageLoads(t *testing.T) {
	page := newPage(t)
	navigateToDashboard(t, page)

	title, err := page.Title()
	require.NoError(t, err)
	assert.Equal(t, "TechLambdas - Employees", title)

	text, err := page.Locator(".header .brand").TextContent()
	require.NoError(t, err)
	assert.Equal(t, "TechLambdas", text)

	text, err = page.Locator(".header .hostname").TextContent()
	require.NoError(t, err)
	assert.Contains(t, text, "e2e-test")
}

func TestDashboard_TableHeaders(t *testing.T) {
	page := newPage(t)
	navigateToDashboard(t, page)

	headers, err := page.Locator("table.employees thead th").AllTextContents()
	require.NoError(t, err)
	assert.Equal(t, []string{"S.No", "Employee Name", "Contact Number", "Location", "Gender", "Age", "Action"}, headers)
}

func TestDashboard_ShowsSeed(t *testing.T) {
	page := newPage(t)
	navigateToDashboard(t, page)

	for _, name := range []string{"Karthik Raja", "Priya Lakshmi", "Senthil Kumar", "Meena Devi"} {
		count, err := rowByName(page, name).Count()
		require.NoError(t, err)
		assert.Equal(t, 1, count, name)
	}

	first, err := page.Locator("table.employees tbody tr").First().Locator("td").First().TextContent()
	require.NoError(t, err)
	assert.Equal(t, "1", first, "row numbers start from 1")
}
