package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewChunk_Deterministic(t *testing.T) {
	metadata := Metadata{"id": "1", "title": "First post"}

	a := NewChunk(metadata, "some text")
	b := NewChunk(Metadata{"title": "First post", "id": "1"}, "some text")

	require.NotEmpty(t, a.ID)
	assert.Equal(t, a.ID, b.ID, "equal logical input must hash identically")
	assert.Len(t, a.ID, 40, "SHA-1 hex digest")
}

func TestNewChunk_DistinctInputsDistinctIDs(t *testing.T) {
	metadata := Metadata{"id": "1"}

	base := NewChunk(metadata, "some text")

	assert.NotEqual(t, base.ID, NewChunk(metadata, "other text").ID)
	assert.NotEqual(t, base.ID, NewChunk(Metadata{"id": "2"}, "some text").ID)
}

func TestNewChunk_CarriesInput(t *testing.T) {
	metadata := Metadata{"id": "1"}

	chunk := NewChunk(metadata, "body")

	assert.Equal(t, metadata, chunk.Metadata)
	assert.Equal(t, "body", chunk.Text)
}

func TestMetadata_Canonical(t *testing.T) {
	metadata := Metadata{
		"title":     "hello",
		"timestamp": int64(1700000000),
		"score":     0.5,
		"published": true,
	}

	got := metadata.Canonical()

	// Keys render in sorted order regardless of insertion order.
	assert.Equal(t, "published=true;score=0.5;timestamp=1700000000;title=hello", got)
}

func TestMetadata_Validate(t *testing.T) {
	tests := []struct {
		name     string
		metadata Metadata
		wantErr  bool
	}{
		{"scalars", Metadata{"s": "x", "i": 1, "f": 1.5, "b": false}, false},
		{"int64", Metadata{"ts": int64(7)}, false},
		{"empty", Metadata{}, false},
		{"nested map", Metadata{"m": map[string]any{"a": 1}}, true},
		{"slice", Metadata{"tags": []string{"a"}}, true},
		{"nil value", Metadata{"v": nil}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.metadata.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidMetadata)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
