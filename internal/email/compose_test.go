package email

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustMessage(t *testing.T, kind Kind, tmplCtx map[string]any) Message {
	t.Helper()
	msg, err := NewMessage("a@example.com", kind, tmplCtx)
	require.NoError(t, err)
	return msg
}

func TestRegistrationConfirmation_Compose(t *testing.T) {
	t.Parallel()

	c := registrationConfirmation{appName: "Courierd"}
	msg := mustMessage(t, KindRegistrationConfirmation, map[string]any{
		"name": "Carol",
		"link": "https://x/confirm/1",
	})

	content, err := c.Compose(msg)
	require.NoError(t, err)
	require.Equal(t, "Confirm your account", content.Subject)
	require.Equal(t, FormatHTML, content.Format)
	require.Contains(t, content.Body, "Carol")
	require.Contains(t, content.Body, "https://x/confirm/1")
	require.Contains(t, content.Body, "Courierd")
}

func TestPasswordReset_Compose(t *testing.T) {
	t.Parallel()

	c := passwordReset{appName: "Courierd"}
	msg := mustMessage(t, KindPasswordReset, map[string]any{
		"link":   "https://x/reset/1",
		"expiry": "30 minutes",
	})

	content, err := c.Compose(msg)
	require.NoError(t, err)
	require.Equal(t, "Reset your password", content.Subject)
	require.Equal(t, FormatHTML, content.Format)
	require.Contains(t, content.Body, "https://x/reset/1")
	require.Contains(t, content.Body, "30 minutes")
}

func TestPasswordReset_DefaultExpiry(t *testing.T) {
	t.Parallel()

	c := passwordReset{appName: "Courierd"}
	msg := mustMessage(t, KindPasswordReset, map[string]any{"link": "https://x/reset/1"})

	content, err := c.Compose(msg)
	require.NoError(t, err)
	require.Contains(t, content.Body, "1 hour")
}

func TestCompose_Deterministic(t *testing.T) {
	t.Parallel()

	registry := NewRegistry("Courierd")
	msg := mustMessage(t, KindRegistrationConfirmation, map[string]any{
		"name": "Carol",
		"link": "https://x/confirm/1",
	})

	c, ok := registry.Lookup(msg.Kind())
	require.True(t, ok)

	first, err := c.Compose(msg)
	require.NoError(t, err)
	second, err := c.Compose(msg)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestCompose_MissingRequiredKey(t *testing.T) {
	t.Parallel()

	fullContext := map[string]any{
		"name": "Carol",
		"link": "https://x/confirm/1",
	}

	tests := []struct {
		kind    Kind
		missing string
	}{
		{KindRegistrationConfirmation, "name"},
		{KindRegistrationConfirmation, "link"},
		{KindPasswordReset, "link"},
	}

	registry := NewRegistry("Courierd")
	for _, tt := range tests {
		t.Run(string(tt.kind)+"/"+tt.missing, func(t *testing.T) {
			t.Parallel()

			tmplCtx := make(map[string]any)
			for k, v := range fullContext {
				if k != tt.missing {
					tmplCtx[k] = v
				}
			}
			msg := mustMessage(t, tt.kind, tmplCtx)

			c, ok := registry.Lookup(tt.kind)
			require.True(t, ok)

			_, err := c.Compose(msg)
			var terr *TemplateError
			require.ErrorAs(t, err, &terr)
			require.Equal(t, tt.missing, terr.Key)
			require.Equal(t, tt.kind, terr.Kind)
		})
	}
}

func TestRegistry_EveryKindHasExactlyOneComposer(t *testing.T) {
	t.Parallel()

	registry := NewRegistry("Courierd")
	require.Equal(t, []Kind{KindPasswordReset, KindRegistrationConfirmation}, registry.Kinds())

	for _, kind := range Kinds() {
		c, ok := registry.Lookup(kind)
		require.True(t, ok, "kind %q has no composer", kind)
		require.NotNil(t, c)
	}
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	t.Parallel()

	registry := NewRegistry("Courierd")
	replacement := passwordReset{appName: "Other"}
	registry.Register(KindPasswordReset, replacement)

	c, ok := registry.Lookup(KindPasswordReset)
	require.True(t, ok)
	require.Equal(t, replacement, c)
}
