package workout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	opts := Catalog()

	require.Len(t, opts, 5)
	assert.Equal(t, Quick, opts[0].Kind)
	assert.Equal(t, Bicycle, opts[4].Kind)

	var runnable []Kind

	for _, o := range opts {
		if o.Runnable() {
			runnable = append(runnable, o.Kind)
		}
	}

	assert.Equal(t, []Kind{Quick, Running}, runnable)

	opts[0].Title = "changed"
	assert.Equal(t, "QUICK WORKOUT", Catalog()[0].Title)
}

func TestLookup(t *testing.T) {
	o, err := Lookup(" Hike ")
	require.NoError(t, err)
	assert.Equal(t, "HIKE/WALK", o.Title)

	_, err = Lookup("swim")
	assert.ErrorIs(t, err, errUnknownKind)
	assert.EqualError(t, err, `unknown workout "swim"`)
}
