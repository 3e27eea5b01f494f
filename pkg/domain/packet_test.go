package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/netgrid/pkg/domain"
)

func TestPacketsFromString(t *testing.T) {
	packets := domain.PacketsFromString("hello world!")

	// 12 characters -> one full packet, one partial, one end marker.
	require.Len(t, packets, 3)
	assert.Equal(t, []rune("hello wo"), packets[0].Runes())
	assert.Equal(t, []rune("rld!"), packets[1].Runes())
	assert.True(t, packets[2].End)
	assert.Nil(t, packets[2].Runes())
}

func TestPacketsFromEmptyString(t *testing.T) {
	packets := domain.PacketsFromString("")

	require.Len(t, packets, 1)
	assert.True(t, packets[0].End)
}

func TestDeviceMessageText(t *testing.T) {
	from := domain.ParseDevicePath("main/net3/term1")
	to := domain.ParseDevicePath("main")

	msg := domain.NewDeviceMessage(from, to, "status report")

	assert.Equal(t, "status report", msg.Text())
	assert.Equal(t, "main/net3/term1", msg.From.String())
	assert.Equal(t, "main", msg.To.String())
}

func TestValidKind(t *testing.T) {
	assert.True(t, domain.ValidKind(domain.KindMainframe))
	assert.True(t, domain.ValidKind(domain.KindRelay))
	assert.True(t, domain.ValidKind(domain.KindTerminal))
	assert.False(t, domain.ValidKind("toaster"))
}
