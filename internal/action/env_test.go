package action

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wahlandcase/attuned.releaseprs/internal/models"
)

func TestGetInput(t *testing.T) {
	env, _ := newTestEnv(map[string]string{
		"INPUT_RELEASE_TAG": "  v1.1\n",
		"INPUT_MY_INPUT":    "spaced",
	})

	assert.Equal(t, "v1.1", env.GetInput("release_tag"))
	assert.Equal(t, "spaced", env.GetInput("my input"))
	assert.Equal(t, "", env.GetInput("missing"))
}

func TestGetInputLogsDebug(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	env, _ := newTestEnv(map[string]string{"INPUT_RELEASE_TAG": "v1.1"})
	env.Log = logrus.NewEntry(logger)

	env.GetInput("release_tag")

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.DebugLevel, entry.Level)
	assert.Equal(t, `Getting input for key: "release_tag", resulting input: "v1.1"`, entry.Message)
}

func TestGetSecretInputIsMasked(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	env, stdout := newTestEnv(map[string]string{
		"GITHUB_ACTIONS": "true",
		"INPUT_TOKEN":    "ghs_secret",
	})
	env.Log = logrus.NewEntry(logger)

	assert.Equal(t, "ghs_secret", env.GetSecretInput("token"))

	assert.Equal(t, "::add-mask::ghs_secret\n", stdout.String())
	for _, e := range hook.AllEntries() {
		assert.NotContains(t, e.Message, "ghs_secret")
	}
	assert.Contains(t, hook.LastEntry().Message, `"***"`)
}

func TestAddMaskOutsideActions(t *testing.T) {
	env, stdout := newTestEnv(map[string]string{"INPUT_TOKEN": "ghs_secret"})

	env.GetSecretInput("token")

	assert.Empty(t, stdout.String())
}

func TestRepository(t *testing.T) {
	env, _ := newTestEnv(map[string]string{"GITHUB_REPOSITORY": "octo/hello"})
	repo, err := env.Repository()
	require.NoError(t, err)
	assert.Equal(t, models.RepoRef{Owner: "octo", Name: "hello"}, repo)

	env, _ = newTestEnv(nil)
	_, err = env.Repository()
	assert.Error(t, err)
}

func TestRunnerFlags(t *testing.T) {
	env, _ := newTestEnv(map[string]string{"GITHUB_ACTIONS": "true", "RUNNER_DEBUG": "1"})
	assert.True(t, env.InActions())
	assert.True(t, env.DebugEnabled())

	env, _ = newTestEnv(nil)
	assert.False(t, env.InActions())
	assert.False(t, env.DebugEnabled())
}
