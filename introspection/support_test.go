package introspection_test

import (
	"testing"

	"assertkit/introspection"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Name struct {
	First string
	Last  *string
}

type Employee struct {
	ID   int64 `json:"id"`
	Name *Name `json:"name"`
	age  int
}

func newEmployees() (yoda, luke *Employee) {
	skywalker := "Skywalker"

	yoda = &Employee{ID: 1, Name: &Name{First: "Yoda"}, age: 800}
	luke = &Employee{ID: 2, Name: &Name{First: "Luke", Last: &skywalker}, age: 26}

	return yoda, luke
}

const yodaRepr = "Employee[ID=1, Name=Name[First='Yoda', Last=null], age=800]"

func TestFieldValues(t *testing.T) {
	t.Parallel()

	fs := introspection.New()

	t.Run("returns empty slice if targets is nil", func(t *testing.T) {
		t.Parallel()

		ids, err := introspection.FieldValues[int64](fs, "ids", nil)
		require.NoError(t, err)
		assert.NotNil(t, ids)
		assert.Empty(t, ids)

		ids, err = introspection.FieldValues[int64](fs, "ids", []*Employee(nil))
		require.NoError(t, err)
		assert.Equal(t, []int64{}, ids)
	})

	t.Run("returns empty slice if targets is empty", func(t *testing.T) {
		t.Parallel()

		ids, err := introspection.FieldValues[int64](fs, "ids", []*Employee{})
		require.NoError(t, err)
		assert.Equal(t, []int64{}, ids)
	})

	t.Run("returns null elements for null targets", func(t *testing.T) {
		t.Parallel()

		yoda, luke := newEmployees()

		ids, err := introspection.FieldValues[any](fs, "id", []*Employee{nil, nil})
		require.NoError(t, err)
		assert.Equal(t, []any{nil, nil}, ids)

		ids, err = introspection.FieldValues[any](fs, "id", []*Employee{yoda, luke, nil, nil})
		require.NoError(t, err)
		assert.Equal(t, []any{int64(1), int64(2), nil, nil}, ids)
	})

	t.Run("returns values of simple field", func(t *testing.T) {
		t.Parallel()

		yoda, luke := newEmployees()

		ids, err := introspection.FieldValues[int64](fs, "id", []*Employee{yoda, luke})
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 2}, ids)
	})

	t.Run("returns values of nested field", func(t *testing.T) {
		t.Parallel()

		yoda, luke := newEmployees()

		firstNames, err := introspection.FieldValues[string](fs, "name.first", []*Employee{yoda, luke})
		require.NoError(t, err)
		assert.Equal(t, []string{"Yoda", "Luke"}, firstNames)
	})

	t.Run("fails on invalid path", func(t *testing.T) {
		t.Parallel()

		yoda, luke := newEmployees()

		_, err := introspection.FieldValues[int64](fs, "id.", []*Employee{yoda, luke})
		require.Error(t, err)
		assert.ErrorIs(t, err, introspection.ErrInvalidPath)
		assert.EqualError(t, err, "Unable to obtain the value of the field <'id.'> from <"+yodaRepr+">")
	})

	t.Run("fails on unknown field", func(t *testing.T) {
		t.Parallel()

		yoda, _ := newEmployees()

		_, err := introspection.FieldValues[int64](fs, "salary", []*Employee{yoda})
		require.Error(t, err)
		assert.ErrorIs(t, err, introspection.ErrFieldNotFound)
		assert.EqualError(t, err, "Unable to obtain the value of the field <'salary'> from <"+yodaRepr+">")

		var ierr *introspection.IntrospectionError
		require.ErrorAs(t, err, &ierr)
		assert.Equal(t, "salary", ierr.Field)
		assert.Equal(t, yodaRepr, ierr.Target)
	})

	t.Run("returns values of private field", func(t *testing.T) {
		t.Parallel()

		yoda, luke := newEmployees()

		ages, err := introspection.FieldValues[int](fs, "age", []*Employee{yoda, luke})
		require.NoError(t, err)
		assert.Equal(t, []int{800, 26}, ages)
	})

	t.Run("handles array as slice", func(t *testing.T) {
		t.Parallel()

		yoda, luke := newEmployees()

		fromSlice, err := introspection.FieldValues[int64](fs, "id", []*Employee{yoda, luke})
		require.NoError(t, err)

		fromArray, err := introspection.FieldValues[int64](fs, "id", [2]*Employee{yoda, luke})
		require.NoError(t, err)

		fromArrayPtr, err := introspection.FieldValues[int64](fs, "id", &[2]*Employee{yoda, luke})
		require.NoError(t, err)

		assert.Equal(t, fromSlice, fromArray)
		assert.Equal(t, fromSlice, fromArrayPtr)
	})

	t.Run("handles any slice and values", func(t *testing.T) {
		t.Parallel()

		yoda, luke := newEmployees()

		ids, err := introspection.FieldValues[int64](fs, "ID", []any{*yoda, nil, luke})
		require.NoError(t, err)
		assert.Equal(t, []int64{1, 0, 2}, ids)
	})

	t.Run("fails on non iterable targets", func(t *testing.T) {
		t.Parallel()

		yoda, _ := newEmployees()

		_, err := introspection.FieldValues[int64](fs, "id", yoda)
		assert.ErrorIs(t, err, introspection.ErrInvalidTargets)
	})
}

func TestFieldValuesPrivateFieldDisallowed(t *testing.T) {
	t.Parallel()

	yoda, luke := newEmployees()

	fs := introspection.New()
	previous := fs.SetAllowExtractingPrivateFields(false)
	t.Cleanup(func() { fs.SetAllowExtractingPrivateFields(previous) })

	assert.True(t, previous)
	assert.False(t, fs.AllowExtractingPrivateFields())

	_, err := introspection.FieldValues[int](fs, "age", []*Employee{yoda, luke})
	require.Error(t, err)
	assert.ErrorIs(t, err, introspection.ErrFieldNotAccessible)
	assert.EqualError(t, err, "Unable to obtain the value of the field <'age'> from <"+yodaRepr+
		">, check that field is public or allow extracting private fields.")

	fs.SetAllowExtractingPrivateFields(true)

	ages, err := introspection.FieldValues[int](fs, "age", []*Employee{yoda, luke})
	require.NoError(t, err)
	assert.Equal(t, []int{800, 26}, ages)
}

// not parallel: changes the package default
func TestSetAllowExtractingPrivateFieldsDefault(t *testing.T) {
	existing := introspection.Instance()

	previous := introspection.SetAllowExtractingPrivateFields(false)
	t.Cleanup(func() { introspection.SetAllowExtractingPrivateFields(previous) })

	assert.True(t, existing.AllowExtractingPrivateFields())

	fs := introspection.New()
	assert.False(t, fs.AllowExtractingPrivateFields())
	assert.False(t, introspection.AllowExtractingPrivateFieldsByDefault())

	override := introspection.New(introspection.WithAllowExtractingPrivateFields(true))
	assert.True(t, override.AllowExtractingPrivateFields())
}

func TestFieldValue(t *testing.T) {
	t.Parallel()

	fs := introspection.Instance()

	t.Run("extracts field", func(t *testing.T) {
		t.Parallel()

		yoda, _ := newEmployees()

		id, err := introspection.FieldValue[int64](fs, "id", yoda)
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
	})

	t.Run("extracts nested field", func(t *testing.T) {
		t.Parallel()

		yoda, _ := newEmployees()

		firstName, err := introspection.FieldValue[*string](fs, "name.first", yoda)
		require.NoError(t, err)
		require.NotNil(t, firstName)
		assert.Equal(t, "Yoda", *firstName)

		lastName, err := introspection.FieldValue[*string](fs, "name.last", yoda)
		require.NoError(t, err)
		assert.Nil(t, lastName)

		yoda.Name = nil

		firstName, err = introspection.FieldValue[*string](fs, "name.first", yoda)
		require.NoError(t, err)
		assert.Nil(t, firstName)
	})

	t.Run("null target yields zero value", func(t *testing.T) {
		t.Parallel()

		id, err := introspection.FieldValue[any](fs, "id", (*Employee)(nil))
		require.NoError(t, err)
		assert.Nil(t, id)

		id, err = introspection.FieldValue[any](fs, "id.", nil)
		require.NoError(t, err)
		assert.Nil(t, id)
	})

	t.Run("unknown nested segment names the intermediate object", func(t *testing.T) {
		t.Parallel()

		yoda, _ := newEmployees()

		_, err := introspection.FieldValue[string](fs, "name.fist", yoda)
		require.Error(t, err)
		assert.ErrorIs(t, err, introspection.ErrFieldNotFound)
		assert.EqualError(t, err,
			"Unable to obtain the value of the field <'fist'> from <Name[First='Yoda', Last=null]>, did you mean <'First'>?")
	})

	t.Run("incompatible type", func(t *testing.T) {
		t.Parallel()

		yoda, _ := newEmployees()

		_, err := introspection.FieldValue[string](fs, "id", yoda)
		require.Error(t, err)
		assert.ErrorIs(t, err, introspection.ErrIncompatibleType)
		assert.EqualError(t, err, "Unable to cast the value of the field <'id'> from <"+yodaRepr+
			">: int64 is not convertible to string")

		_, err = introspection.FieldValue[int32](fs, "id", yoda)
		assert.ErrorIs(t, err, introspection.ErrIncompatibleType)
	})

	t.Run("lossless numeric conversion", func(t *testing.T) {
		t.Parallel()

		yoda, _ := newEmployees()

		age, err := introspection.FieldValue[int64](fs, "age", yoda)
		require.NoError(t, err)
		assert.Equal(t, int64(800), age)

		agePtr, err := introspection.FieldValue[*int64](fs, "age", yoda)
		require.NoError(t, err)
		require.NotNil(t, agePtr)
		assert.Equal(t, int64(800), *agePtr)
	})
}
