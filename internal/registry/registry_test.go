package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GopalTomar/Cloud-Connect/internal/core"
)

// stubResource is a minimal variant for registry tests; real variants live in
// the resources package.
type stubResource struct {
	core.BaseResource
	Engine string
}

func (s *stubResource) Describe() string {
	return "Database: engine=" + s.Engine
}

func newStub(name string, params map[string]interface{}) (core.Resource, error) {
	engine, _ := params["engine"].(string)
	if engine == "" {
		return nil, &core.ValidationError{Field: "engine", Reason: "must not be empty"}
	}
	return &stubResource{
		BaseResource: core.NewBase(name, "Database"),
		Engine:       engine,
	}, nil
}

func TestRegistry_RoundTrip(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register("Database", newStub))

	res, err := reg.Create("Database", "db1", map[string]interface{}{"engine": "postgres"})
	require.NoError(t, err)

	assert.Equal(t, "db1", res.GetName())
	assert.Equal(t, "Database", res.GetType())
	assert.Equal(t, core.StateStopped, res.CurrentState())
	assert.Contains(t, res.Describe(), "postgres")
}

func TestRegistry_UnknownType(t *testing.T) {
	reg := New()

	_, err := reg.Create("Unregistered", "x", nil)
	require.Error(t, err)

	var unknownErr *core.UnknownTypeError
	assert.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "Unregistered", unknownErr.Type)
}

func TestRegistry_DuplicateRegistration(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register("Database", newStub))

	err := reg.Register("Database", newStub)
	require.Error(t, err)

	var dupErr *core.DuplicateTypeError
	assert.ErrorAs(t, err, &dupErr)

	// Original factory still in place
	res, err := reg.Create("Database", "db1", map[string]interface{}{"engine": "redis"})
	require.NoError(t, err)
	assert.Contains(t, res.Describe(), "redis")
}

func TestRegistry_NameValidation(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register("Database", newStub))

	params := map[string]interface{}{"engine": "postgres"}

	// Names end up as log file names, so anything path-like is rejected
	for _, name := range []string{"", "../escape", "a/b", `a\b`} {
		t.Run("name="+name, func(t *testing.T) {
			_, err := reg.Create("Database", name, params)
			var valErr *core.ValidationError
			require.ErrorAs(t, err, &valErr)
			assert.Equal(t, "name", valErr.Field)
		})
	}

	_, err := reg.Create("Database", "db-1", params)
	assert.NoError(t, err)
}

func TestRegistry_TypesOrder(t *testing.T) {
	reg := New()
	require.NoError(t, reg.Register("B", newStub))
	require.NoError(t, reg.Register("A", newStub))
	require.NoError(t, reg.Register("C", newStub))

	assert.Equal(t, []string{"B", "A", "C"}, reg.Types())
}
