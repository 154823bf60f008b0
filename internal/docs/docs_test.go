package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestRegisteredDocsAreValidJSON(t *testing.T) {
	for _, name := range []string{InstanceCatalog, InstanceRecords} {
		raw, err := swag.ReadDoc(name)
		require.NoError(t, err, name)

		var doc struct {
			Swagger string                     `json:"swagger"`
			Paths   map[string]json.RawMessage `json:"paths"`
		}
		require.NoError(t, json.Unmarshal([]byte(raw), &doc), name)
		assert.Equal(t, "2.0", doc.Swagger)
		assert.NotEmpty(t, doc.Paths)
	}
}

func TestCatalogDocListsAdoptRoute(t *testing.T) {
	raw, err := swag.ReadDoc(InstanceCatalog)
	require.NoError(t, err)
	assert.Contains(t, raw, "/animals/{id}/adopt")
}
