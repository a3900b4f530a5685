package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradekit/pkg/types"
)

func TestDecimalFlag(t *testing.T) {
	require.NoError(t, chartCmd.Flags().Set("support", "123.45"))
	v, err := decimalFlag(chartCmd, "support")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, "123.45", v.String())

	v, err = decimalFlag(chartCmd, "resistance")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, chartCmd.Flags().Set("mark-price", "not-a-price"))
	_, err = decimalFlag(chartCmd, "mark-price")
	assert.Error(t, err)
}

func TestLoadJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "candles.json")
	require.NoError(t, os.WriteFile(p, []byte(`[{"timestamp":1714567800000,"high":"102","low":"98","close":"100"}]`), 0644))

	var w types.KLineWindow
	require.NoError(t, loadJSON(p, &w))
	assert.Equal(t, 1, w.Len())

	assert.Error(t, loadJSON("", &w))
	assert.Error(t, loadJSON(filepath.Join(t.TempDir(), "missing.json"), &w))
}
