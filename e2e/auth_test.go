//go:build e2e

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

// TestAuth runs against a separate password-protected server, login attempts are rate limited
// and would interfere with the main server tests.
func TestAuth(t *testing.T) {
	cmd := exec.CommandContext(context.Background(), testBinary,
		"--log.enabled",
		"--store.driver=memory",
		"--web.address=:18081",
		"--web.password-hash="+passwordHash,
		"--web.hostname=e2e-auth-test",
	)
	cmd.Stdout, cmd.Stderr = os.Stdout, os.Stderr
	require.NoError(t, cmd.Start())
	t.Cleanup(func() { _ = cmd.Process.Kill() })
	require.NoError(t, waitForServer(authBaseURL+"/ping", 10*time.Second))

	t.Run("dashboard redirects to login", func(t *testing.T) {
		page := newPage(t)
		_, err := page.Goto(authBaseURL + "/")
		require.NoError(t, err)
		require.NoError(t, page.WaitForURL(authBaseURL+"/login"))

		title, err := page.Title()
		require.NoError(t, err)
		assert.Equal(t, "TechLambdas - Login", title)
		waitVisible(t, page.Locator(".login-card input[name='password']"))
	})

	t.Run("wrong password keeps login page", func(t *testing.T) {
		page := newPage(t)
		submitPassword(t, page, "not-the-password")

		waitVisible(t, page.Locator(".login-card .error"))
		text, err := page.Locator(".login-card .error").TextContent()
		require.NoError(t, err)
		assert.Equal(t, "Invalid password", text)

		count, err := page.Locator("table.employees").Count()
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("add employee after login", func(t *testing.T) {
		page := newPage(t)
		submitPassword(t, page, testPassword)
		require.NoError(t, page.WaitForURL(authBaseURL+"/"))
		waitVisible(t, page.Locator("table.employees"))

		form := openAddForm(t, page)
		name := fmt.Sprintf("Auth Added %d", time.Now().UnixNano())
		fillEmployee(t, form, name, "9333333333", "Virudhunagar", "Male", "38")
		require.NoError(t, form.Locator("button[type='submit']").Click())
		waitVisible(t, rowByName(page, name))
		waitHidden(t, page.Locator("#employee-form"))
	})

	t.Run("logout revokes session cookie", func(t *testing.T) {
		page := newPage(t)
		submitPassword(t, page, testPassword)
		require.NoError(t, page.WaitForURL(authBaseURL+"/"))
		waitVisible(t, page.Locator(".header"))

		cookies, err := page.Context().Cookies(authBaseURL)
		require.NoError(t, err)
		token := ""
		for _, c := range cookies {
			if c.Name == "empdir-auth" {
				token = c.Value
			}
		}
		require.NotEmpty(t, token, "auth cookie set on login")
		assert.Equal(t, http.StatusOK, apiStatusWithToken(t, token))

		require.NoError(t, page.Locator(".header a[href='/logout']").Click())
		require.NoError(t, page.WaitForURL(authBaseURL+"/login"))

		// the old cookie value is no longer accepted, even if a client kept it
		assert.Equal(t, http.StatusUnauthorized, apiStatusWithToken(t, token))
	})

	t.Run("api accepts basic auth", func(t *testing.T) {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, authBaseURL+"/api/v1/employees", http.NoBody)
		require.NoError(t, err)
		req.Header.Set("Accept", "application/json")
		req.SetBasicAuth("empdir", testPassword)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

// submitPassword opens the login page and submits the password
func submitPassword(t *testing.T, page playwright.Page, password string) {
	t.Helper()
	_, err := page.Goto(authBaseURL + "/login")
	require.NoError(t, err)
	require.NoError(t, page.Locator("input[name='password']").Fill(password))
	require.NoError(t, page.Locator(".login-card button[type='submit']").Click())
}

// apiStatusWithToken calls json api with the given auth cookie and returns the status code
func apiStatusWithToken(t *testing.T, token string) int {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, authBaseURL+"/api/v1/employees", http.NoBody)
	require.NoError(t, err)
	req.Header.Set("Accept", "application/json")
	req.AddCookie(&http.Cookie{Name: "empdir-auth", Value: token})
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp.StatusCode
}
