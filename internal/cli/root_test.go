package cli

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = args
}

func TestRun_SettingsFlagsDoNotBreakCommands(t *testing.T) {
	setArgs(t, "snooze", "-a", "http://example.test", "logout")

	f := &fakeSession{}
	a := testApp(f)

	require.NoError(t, a.Run(context.Background()))
	assert.True(t, f.logoutCalled)
}

func TestRun_AllSettingsFlagsStripped(t *testing.T) {
	setArgs(t, "snooze", "-v", "-t", "30", "-d", "state.db", "-c", "cfg.json", "logout")

	f := &fakeSession{}
	a := testApp(f)

	require.NoError(t, a.Run(context.Background()))
	assert.True(t, f.logoutCalled)
}

func TestRun_SubcommandRestoresSessionFirst(t *testing.T) {
	setArgs(t, "snooze", "profile")

	f := &fakeSession{}
	a := testApp(f)

	// anonymous profile reports "log in first" without failing
	require.NoError(t, a.Run(context.Background()))
	assert.False(t, a.isLoggedIn())
}

func TestRun_UnknownCommandFails(t *testing.T) {
	setArgs(t, "snooze", "bogus")

	a := testApp(&fakeSession{})
	require.Error(t, a.Run(context.Background()))
}
