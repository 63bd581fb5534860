package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestConvert(t *testing.T) {
	out, err := run(t, "convert", "pounds-to-kilograms", "10")
	require.NoError(t, err)
	assert.Equal(t, "10 lb = 4.5359 kg\n", out)
}

func TestConvertReverse(t *testing.T) {
	out, err := run(t, "convert", "fahrenheit-to-celsius", "100", "--reverse", "--decimals", "2")
	require.NoError(t, err)
	assert.Equal(t, "100 °C = 212 °F\n", out)
}

func TestConvertErrors(t *testing.T) {
	_, err := run(t, "convert", "no-such-converter", "1")
	assert.ErrorContains(t, err, "unknown converter")

	_, err = run(t, "convert", "pounds-to-kilograms", "abc")
	assert.ErrorContains(t, err, "invalid value")

	_, err = run(t, "convert", "pounds-to-kilograms")
	assert.Error(t, err)
}

func TestList(t *testing.T) {
	out, err := run(t, "list", "--category", "temperature")
	require.NoError(t, err)
	assert.Contains(t, out, "fahrenheit-to-celsius")
	assert.NotContains(t, out, "pounds-to-kilograms")

	_, err = run(t, "list", "--category", "nope")
	assert.ErrorContains(t, err, "unknown category")
}

func TestSearch(t *testing.T) {
	out, err := run(t, "search", "pounds", "to", "kg")
	require.NoError(t, err)
	assert.Equal(t, "pounds-to-kilograms  weight  Pounds to Kilograms Converter\n", out)

	out, err = run(t, "search", "zzzz")
	require.NoError(t, err)
	assert.Equal(t, "no converters found\n", out)
}

func TestCategoriesAndVersion(t *testing.T) {
	out, err := run(t, "categories")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "weight"), out)

	out, err = run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "convcalc dev\n", out)
}
