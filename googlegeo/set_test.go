package googlegeo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSet_Dedup(t *testing.T) {
	s := NewSet(TypeCountry, TypeLocality, TypeCountry)

	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(TypeCountry))
	assert.True(t, s.Contains(TypeLocality))
	assert.False(t, s.Contains(TypeRoute))
}

func TestSet_String(t *testing.T) {
	tests := []struct {
		name     string
		set      Set[AddressType]
		expected string
	}{
		{
			name:     "empty",
			set:      NewSet[AddressType](),
			expected: "",
		},
		{
			name:     "single element",
			set:      NewSet(TypeCountry),
			expected: "country",
		},
		{
			name:     "sorted pipe join",
			set:      NewSet(TypeLocality, TypeCountry),
			expected: "country|locality",
		},
		{
			name:     "duplicates collapse",
			set:      NewSet(TypeCountry, TypeLocality, TypeCountry),
			expected: "country|locality",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.set.String())
		})
	}
}

func TestSet_UnmarshalJSON(t *testing.T) {
	var s Set[AddressType]
	err := json.Unmarshal([]byte(`["country", "locality", "country"]`), &s)

	assert.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "country|locality", s.String())
}

func TestSet_MarshalJSON(t *testing.T) {
	s := NewSet(TypeLocality, TypeCountry, TypePolitical)

	data, err := json.Marshal(s)

	assert.NoError(t, err)
	assert.JSONEq(t, `["country", "locality", "political"]`, string(data))
}

func TestSet_ZeroValue(t *testing.T) {
	var s Set[LocationType]

	assert.Equal(t, 0, s.Len())
	assert.Equal(t, "", s.String())
	assert.False(t, s.Contains(Rooftop))
}

func TestComponentFilterRule_String(t *testing.T) {
	tests := []struct {
		name     string
		rule     ComponentFilterRule
		expected string
	}{
		{
			name:     "country",
			rule:     ComponentFilterRule{Kind: ComponentCountry, Value: "US"},
			expected: "country:US",
		},
		{
			name:     "postal code",
			rule:     ComponentFilterRule{Kind: ComponentPostalCode, Value: "94043"},
			expected: "postal_code:94043",
		},
		{
			name:     "value carried verbatim",
			rule:     ComponentFilterRule{Kind: ComponentRoute, Value: "Amphitheatre Pkwy"},
			expected: "route:Amphitheatre Pkwy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.rule.String())
		})
	}
}
