package tone

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"leading digit gets prefix", "1-tone.wav", "tone_1_tone_wav"},
		{"space replaced", "a b.mp3", "a_b_mp3"},
		{"plain name", "beep.wav", "beep_wav"},
		{"multiple separators", "ring-tone v2.final.aac", "ring_tone_v2_final_aac"},
		{"already underscored", "alarm_low.m4a", "alarm_low_m4a"},
		{"digit after separator keeps prefix rule", "2.wav", "tone_2_wav"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestSanitizeProperties(t *testing.T) {
	filename := rapid.StringMatching(`[a-zA-Z0-9 ._-]{1,32}\.(wav|mp3|aac|m4a)`)

	t.Run("no separators survive", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			out := Sanitize(filename.Draw(t, "name"))
			require.NotContains(t, out, "-")
			require.NotContains(t, out, ".")
			require.NotContains(t, out, " ")
		})
	})

	t.Run("never starts with a digit", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			out := Sanitize(filename.Draw(t, "name"))
			require.NotEmpty(t, out)
			require.False(t, out[0] >= '0' && out[0] <= '9',
				"sanitized name %q starts with a digit", out)
		})
	})

	t.Run("idempotent", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			once := Sanitize(filename.Draw(t, "name"))
			require.Equal(t, once, Sanitize(once))
		})
	})

	t.Run("valid identifier characters", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			out := Sanitize(filename.Draw(t, "name"))
			for _, r := range out {
				valid := r == '_' ||
					(r >= 'a' && r <= 'z') ||
					(r >= 'A' && r <= 'Z') ||
					(r >= '0' && r <= '9')
				require.True(t, valid, "invalid identifier rune %q in %q", r, out)
			}
		})
	})
}

func TestSanitizeDoesNotMutateInput(t *testing.T) {
	in := "ring-tone.wav"
	_ = Sanitize(in)
	require.Equal(t, "ring-tone.wav", in)
	require.True(t, strings.Contains(in, "-"))
}
