package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/todopoints/internal/domain"
)

func TestStoreCommand(t *testing.T) {
	c, _ := newTestContainer(t)
	require.NoError(t, c.StoreState.SavePurchased([]string{"Red", "Gold"}))
	require.NoError(t, c.StoreState.SaveSelected("Gold"))

	out, err := runCommand(t, newStoreCommand(c), "")

	require.NoError(t, err)
	assert.Contains(t, out, "ITEM")
	assert.Regexp(t, `Red\s+#FF0000\s+50\s+select`, out)
	assert.Regexp(t, `Blue\s+#0000FF\s+80\s+purchase`, out)
	assert.Regexp(t, `Gold\s+#FFD700\s+200\s+selected`, out)
}

func TestBuyCommand(t *testing.T) {
	c, _ := newTestContainer(t)
	_, err := c.Points.Award(100)
	require.NoError(t, err)

	out, err := runCommand(t, newBuyCommand(c), "", "Blue")
	require.NoError(t, err)
	assert.Contains(t, out, "Purchased Blue (20 points left)")

	_, err = runCommand(t, newBuyCommand(c), "", "Red")
	assert.ErrorIs(t, err, domain.ErrInsufficientFunds)

	_, err = runCommand(t, newBuyCommand(c), "", "Teal")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestSelectAndThemeCommands(t *testing.T) {
	c, _ := newTestContainer(t)

	out, err := runCommand(t, newThemeCommand(c), "")
	require.NoError(t, err)
	assert.Contains(t, out, "#FFFFFF")
	assert.Contains(t, out, "default")

	_, err = runCommand(t, newSelectCommand(c), "", "Purple")
	require.ErrorIs(t, err, domain.ErrInvalidState)

	require.NoError(t, c.StoreState.SavePurchased([]string{"Purple"}))
	out, err = runCommand(t, newSelectCommand(c), "", "Purple")
	require.NoError(t, err)
	assert.Contains(t, out, "Selected Purple (#8E44AD)")

	out, err = runCommand(t, newThemeCommand(c), "")
	require.NoError(t, err)
	assert.Contains(t, out, "#8E44AD\tPurple")
}
