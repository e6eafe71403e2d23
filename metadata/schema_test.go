package metadata

import (
	"testing"

	"github.com/hupe1980/nutridex/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSchema(t *testing.T) {
	s, err := NewSchema("Calories", " fat ")
	require.NoError(t, err)
	assert.Equal(t, Schema{"calories", "fat"}, s)
	assert.True(t, s.Has("fat"))
	assert.False(t, s.Has("Fat"))

	for _, bad := range [][]string{nil, {""}, {"a", "a"}, {"a b"}, {"x,y"}} {
		_, err := NewSchema(bad...)
		assert.ErrorIs(t, err, ErrInvalidSchema, "%v", bad)
	}
}

func TestDefaultSchema(t *testing.T) {
	s := DefaultSchema()
	assert.Equal(t, Schema(model.DefaultAttributes), s)

	s[0] = "changed"
	assert.Equal(t, model.Calories, model.DefaultAttributes[0])
}

func TestSchemaValidate(t *testing.T) {
	s := DefaultSchema()

	ok := model.NewRecord("1", "a").WithNutrient(model.Fat, 1).Build()
	require.NoError(t, s.Validate(ok))

	bad := model.NewRecord("2", "b").WithNutrient("sugar", 1).Build()
	err := s.Validate(bad)
	assert.ErrorIs(t, err, ErrUnknownAttribute)

	var attrErr *UnknownAttributeError
	require.ErrorAs(t, err, &attrErr)
	assert.Equal(t, "sugar", attrErr.Attribute)
}
