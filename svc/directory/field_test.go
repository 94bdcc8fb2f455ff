package directory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/therapist-admin/svc/directory"
)

func TestParseField(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"street", "zip", "city", "canton", "email", "phone"} {
		f, err := directory.ParseField(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, f.String())
		assert.True(t, f.Valid())
	}

	for _, name := range []string{"", "id", "firstName", "contactVerified", "ZIP", `zip"; DROP TABLE "Therapist`} {
		_, err := directory.ParseField(name)
		assert.ErrorIs(t, err, directory.ErrFieldNotEditable, name)
	}
}

func TestField_SetAndValue(t *testing.T) {
	t.Parallel()

	var rec directory.Therapist
	directory.FieldZip.Set(&rec, "8000")
	directory.FieldCanton.Set(&rec, "zh")

	require.NotNil(t, rec.Zip)
	assert.Equal(t, "8000", *rec.Zip)
	assert.Equal(t, "zh", directory.Str(rec.Value(directory.FieldCanton)))
	assert.Nil(t, rec.Value(directory.FieldEmail))
	assert.Nil(t, rec.Value(directory.Field("title")))

	directory.Field("title").Set(&rec, "Dr.")
	assert.Nil(t, rec.Title)
}

func TestField_Column(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `"zip"`, directory.FieldZip.Column())
	assert.Equal(t, `"canton"`, directory.FieldCanton.Column())
	assert.Len(t, directory.Fields(), 6)
}
