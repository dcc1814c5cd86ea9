package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabetSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc    string
		give    string
		want    alphabet
		wantErr string
	}{
		{desc: "preset", give: "qwerty", want: _defaultAlphabet},
		{desc: "preset/numeric", give: "numeric", want: "1234567890"},
		{desc: "literal", give: "xyz", want: "xyz"},
		{desc: "single", give: "x", want: "x"},
		{desc: "unicode", give: "äöü", want: "äöü"},
		{desc: "empty", give: "", wantErr: "must not be empty"},
		{desc: "uppercase", give: "abC", wantErr: `uppercase character 'C'`},
		{desc: "titlecase", give: "aǅ", wantErr: `uppercase character 'ǅ'`},
		{desc: "uncased letters", give: "aß日", want: "aß日"},
		{desc: "space", give: "a b", wantErr: `unprintable character ' '`},
		{desc: "control", give: "a\tb", wantErr: `unprintable character '\t'`},
		{desc: "duplicates", give: "abcbad", wantErr: `duplicates: ['a' 'b']`},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			var got alphabet
			err := got.Set(tt.give)
			if len(tt.wantErr) > 0 {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Empty(t, got, "must not change on error")
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, string(tt.want), got.String())
		})
	}
}

func TestAlphabetPresetsValid(t *testing.T) {
	t.Parallel()

	for name, chars := range _alphabetPresets {
		assert.NoError(t, alphabet(chars).Validate(), "preset %q", name)
	}
}
