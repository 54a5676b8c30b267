package main

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/delaneyj/proxyparty/cmd/codegen/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const counterSchema = `
package: app
stores:
  - name: counter
    fields:
      - name: count
        type: int
        default: 3
      - name: label
        type: string
        default: clicks
      - name: last_step
        type: float64
`

func TestRender(t *testing.T) {
	src, err := render([]byte(counterSchema), "")
	require.NoError(t, err)

	f, err := parser.ParseFile(token.NewFileSet(), "stores_gen.go", src, parser.ParseComments)
	require.NoError(t, err)
	assert.Equal(t, "app", f.Name.Name)

	out := string(src)
	assert.Contains(t, out, "// Code generated by codegen. DO NOT EDIT.")
	assert.Contains(t, out, "type Counter struct")
	assert.Contains(t, out, `"count": int(3),`)
	assert.Contains(t, out, `"label": string("clicks"),`)
	assert.NotContains(t, out, `"last_step":`)
	assert.Contains(t, out, `func (c *Counter) Count() int {`)
	assert.Contains(t, out, `return reactive.Field[int](c.obj, "count")`)
	assert.Contains(t, out, `func (c *Counter) SetLastStep(v float64) {`)
	assert.Contains(t, out, `c.obj.Set("last_step", v)`)
}

func TestRenderPackageOverride(t *testing.T) {
	src, err := render([]byte(counterSchema), "override")
	require.NoError(t, err)
	assert.Contains(t, string(src), "package override")

	src, err = render([]byte("stores:\n  - name: empty\n"), "")
	require.NoError(t, err)
	assert.Contains(t, string(src), "package "+defaultPackage)
	assert.Contains(t, string(src), "func NewEmpty(rt *reactive.Runtime) *Empty {")
}

func TestRenderRejectsBadSchema(t *testing.T) {
	_, err := render([]byte("stores: []"), "")
	require.ErrorIs(t, err, templates.ErrNoStores)

	_, err = render([]byte("stores: [{name: a, fields: [{name: x}]}]"), "")
	require.ErrorIs(t, err, templates.ErrMissingType)

	_, err = render([]byte(":"), "")
	require.Error(t, err)
}
