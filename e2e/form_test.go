//go:build e2e

package e2e

import (
	"fmt"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openAddForm clicks the add button and waits for the form drawer
func openAddForm(t *testing.T, page playwright.Page) playwright.Locator {
	t.Helper()
	require.NoError(t, page.Locator("#add-employee").Click())
	form := page.Locator("#employee-form")
	waitVisible(t, form)
	return form
}

func fillEmployee(t *testing.T, form playwright.Locator, name, contact, location, gender, age string) {
	t.Helper()
	require.NoError(t, form.Locator("input[name='name']").Fill(name))
	require.NoError(t, form.Locator("input[name='contact']").Fill(contact))
	_, err := form.Locator("select[name='location']").SelectOption(playwright.SelectOptionValues{Values: &[]string{location}})
	require.NoError(t, err)
	require.NoError(t, form.Locator(fmt.Sprintf("input[name='gender'][value='%s']", gender)).Check())
	require.NoError(t, form.Locator("input[name='age']").Fill(age))
}

func TestForm_AddEmployee(t *testing.T) {
	page := newPage(t)
	navigateToDashboard(t, page)

	form := openAddForm(t, page)
	title, err := page.Locator(".form-drawer h2").TextContent()
	require.NoError(t, err)
	assert.Equal(t, "Add Employee", title)

	name := fmt.Sprintf("Asha %d", time.Now().UnixNano())
	fillEmployee(t, form, name, "9998887776", "Madurai", "Female", "29")
	require.NoError(t, form.Locator("button[type='submit']").Click())

	waitVisible(t, rowByName(page, name))
	waitHidden(t, page.Locator("#employee-form"))

	cells, err := rowByName(page, name).Locator("td").AllTextContents()
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(cells), 6)
	assert.Equal(t, []string{name, "9998887776", "Madurai", "Female", "29"}, cells[1:6])
}

func TestForm_ValidationErrors(t *testing.T) {
	page := newPage(t)
	navigateToDashboard(t, page)

	rows := page.Locator("table.employees tbody tr[id^='employee-']")
	before, err := rows.Count()
	require.NoError(t, err)

	form := openAddForm(t, page)
	// bypass browser-side required checks, server validation is the subject here
	_, err = page.Evaluate("() => document.getElementById('employee-form').setAttribute('novalidate', '')")
	require.NoError(t, err)
	require.NoError(t, form.Locator("input[name='contact']").Fill("9000000000"))
	require.NoError(t, form.Locator("button[type='submit']").Click())

	waitVisible(t, page.Locator(".error[data-field='name']"))
	text, err := page.Locator(".error[data-field='name']").TextContent()
	require.NoError(t, err)
	assert.Equal(t, "name is required", text)

	visible, err := page.Locator(".error[data-field='contact']").IsVisible()
	require.NoError(t, err)
	assert.False(t, visible, "contact is valid")

	value, err := page.Locator("#employee-form input[name='contact']").InputValue()
	require.NoError(t, err)
	assert.Equal(t, "9000000000", value, "draft kept after failed submit")

	after, err := rows.Count()
	require.NoError(t, err)
	assert.Equal(t, before, after, "nothing added")
}

func TestForm_EditEmployee(t *testing.T) {
	page := newPage(t)
	navigateToDashboard(t, page)

	// own record to edit, other tests rely on the seed
	form := openAddForm(t, page)
	name := fmt.Sprintf("Edit Me %d", time.Now().UnixNano())
	fillEmployee(t, form, name, "9111111111", "Sattur", "Male", "30")
	require.NoError(t, form.Locator("button[type='submit']").Click())
	waitVisible(t, rowByName(page, name))

	require.NoError(t, rowByName(page, name).Locator("button.edit").Click())
	waitVisible(t, page.Locator("#employee-form"))

	title, err := page.Locator(".form-drawer h2").TextContent()
	require.NoError(t, err)
	assert.Equal(t, "Edit Employee", title)

	value, err := page.Locator("#employee-form input[name='name']").InputValue()
	require.NoError(t, err)
	assert.Equal(t, name, value)

	require.NoError(t, page.Locator("#employee-form input[name='age']").Fill("31"))
	require.NoError(t, page.Locator("#employee-form button[type='submit']").Click())

	assert.Eventually(t, func() bool {
		cells, e := rowByName(page, name).Locator("td").AllTextContents()
		return e == nil && len(cells) > 5 && cells[5] == "31"
	}, 5*time.Second, 100*time.Millisecond)
}

func TestForm_CancelKeepsRecord(t *testing.T) {
	page := newPage(t)
	navigateToDashboard(t, page)

	require.NoError(t, rowByName(page, "Karthik Raja").Locator("button.edit").Click())
	waitVisible(t, page.Locator("#employee-form"))
	require.NoError(t, page.Locator("#employee-form input[name='name']").Fill("Somebody Else"))
	require.NoError(t, page.Locator("#employee-form input[name='name']").Blur())
	require.NoError(t, page.Locator("#employee-form button[type='button']").Click())
	waitHidden(t, page.Locator("#employee-form"))

	_, err := page.Reload()
	require.NoError(t, err)
	waitVisible(t, rowByName(page, "Karthik Raja"))
	count, err := rowByName(page, "Somebody Else").Count()
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
