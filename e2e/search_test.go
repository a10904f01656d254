//go:build e2e

package e2e

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_FiltersByLocation(t *testing.T) {
	page := newPage(t)
	navigateToDashboard(t, page)

	rows := page.Locator("table.employees tbody tr[id^='employee-']")
	initialCount, err := rows.Count()
	require.NoError(t, err)
	require.GreaterOrEqual(t, initialCount, 4, "seed has 4 employees")

	require.NoError(t, page.Locator("#search").Fill("sivakasi"))

	// debounce + htmx swap
	assert.Eventually(t, func() bool {
		count, e := rows.Count()
		return e == nil && count < initialCount
	}, 5*time.Second, 100*time.Millisecond)

	count, err := rowByName(page, "Priya Lakshmi").Count()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = rowByName(page, "Karthik Raja").Count()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestSearch_NoResults(t *testing.T) {
	page := newPage(t)
	navigateToDashboard(t, page)

	require.NoError(t, page.Locator("#search").Fill("nonexistentemployee12345"))

	waitVisible(t, page.Locator("table.employees tr.empty"))
	text, err := page.Locator("table.employees tr.empty").TextContent()
	require.NoError(t, err)
	assert.Contains(t, text, "No employees found")
}

func TestSearch_ClearRestoresAll(t *testing.T) {
	page := newPage(t)
	navigateToDashboard(t, page)

	rows := page.Locator("table.employees tbody tr[id^='employee-']")
	initialCount, err := rows.Count()
	require.NoError(t, err)

	require.NoError(t, page.Locator("#search").Fill("female"))
	assert.Eventually(t, func() bool {
		count, e := rows.Count()
		return e == nil && count < initialCount
	}, 5*time.Second, 100*time.Millisecond)

	require.NoError(t, page.Locator("#search").Fill(""))
	assert.Eventually(t, func() bool {
		count, e := rows.Count()
		return e == nil && count == initialCount
	}, 5*time.Second, 100*time.Millisecond)
}
