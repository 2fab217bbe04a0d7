package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/larriantoniy/sms_miniapp/internal/domain"
)

func TestParseLaunchURL(t *testing.T) {
	s, err := domain.ParseLaunchURL("https://app.example.com/?user_id=42&token=abc")
	require.NoError(t, err)
	require.Equal(t, "42", s.UserID)
	require.Equal(t, "abc", s.Token)

	_, err = domain.ParseLaunchURL("https://app.example.com/?user_id=42")
	require.ErrorIs(t, err, domain.ErrNoSession)

	_, err = domain.ParseLaunchURL("https://app.example.com/?token=abc")
	require.ErrorIs(t, err, domain.ErrNoSession)

	_, err = domain.ParseLaunchURL("https://app.example.com/")
	require.ErrorIs(t, err, domain.ErrNoSession)
}
