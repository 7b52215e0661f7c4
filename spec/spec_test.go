package spec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pkordes/itinerary-planner/spec"
)

type document struct {
	Paths map[string]map[string]struct {
		Responses map[string]struct {
			Description string `yaml:"description"`
		} `yaml:"responses"`
	} `yaml:"paths"`
	Components struct {
		Schemas map[string]struct {
			Properties map[string]struct {
				Minimum *int64 `yaml:"minimum"`
				Maximum *int64 `yaml:"maximum"`
			} `yaml:"properties"`
		} `yaml:"schemas"`
	} `yaml:"components"`
}

func loadDocument(t *testing.T) document {
	t.Helper()
	var doc document
	require.NoError(t, yaml.Unmarshal(spec.OpenAPI, &doc))
	return doc
}

func TestOpenAPI_CreateItinerary500DescribesStoreFailure(t *testing.T) {
	doc := loadDocument(t)

	resp, ok := doc.Paths["/itineraries"]["post"].Responses["500"]
	require.True(t, ok, "POST /itineraries must document a 500 response")
	assert.Contains(t, resp.Description, "GenerationError")
	assert.Contains(t, resp.Description, "internal server error")
}

func TestOpenAPI_DaysBoundedToInt4(t *testing.T) {
	doc := loadDocument(t)

	days := doc.Components.Schemas["CreateItineraryRequest"].Properties["days"]
	require.NotNil(t, days.Minimum)
	require.NotNil(t, days.Maximum)
	assert.EqualValues(t, 1, *days.Minimum)
	assert.EqualValues(t, 2147483647, *days.Maximum)
}
