//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package assets

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fasco-shop/storefront/internal/config"
)

func touch(t *testing.T, root string, rel ...string) {
	t.Helper()
	for _, r := range rel {
		p := filepath.Join(root, filepath.FromSlash(r))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("img"), 0o600))
	}
}

func TestCheck_AllPresent(t *testing.T) {
	root := t.TempDir()
	site := config.Default()
	touch(t, root, site.ImageRefs()...)

	rep, err := Check(context.Background(), site, root)
	require.NoError(t, err)
	assert.True(t, rep.OK())
	assert.Len(t, rep.Found, len(site.ImageRefs()))
	assert.Empty(t, rep.Missing)
	assert.Empty(t, rep.Unused)
}

func TestCheck_ReportsMissingAndUnused(t *testing.T) {
	root := t.TempDir()
	site := config.Default()
	refs := site.ImageRefs()
	touch(t, root, refs[1:]...)
	touch(t, root, "extra/banner.jpg", "notes.txt", ".cache/hidden.png", "node_modules/pkg/logo.png")

	rep, err := Check(context.Background(), site, root)
	require.ErrorIs(t, err, ErrMissingAssets)
	assert.Contains(t, err.Error(), refs[0])
	assert.False(t, rep.OK())
	assert.Equal(t, []string{refs[0]}, rep.Missing)
	assert.Len(t, rep.Found, len(refs)-1)
	assert.Equal(t, []string{"extra/banner.jpg"}, rep.Unused)
}

func TestCheck_RemoteRefsSkipped(t *testing.T) {
	root := t.TempDir()
	site := config.Default()
	site.Deal.Images[0].Src = "https://cdn.example.test/deal.png"
	for _, ref := range site.ImageRefs() {
		if !config.IsRemote(ref) {
			touch(t, root, ref)
		}
	}

	rep, err := Check(context.Background(), site, root)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn.example.test/deal.png"}, rep.Remote)
}

func TestCheck_DefaultsToConfiguredDir(t *testing.T) {
	root := t.TempDir()
	site := config.Default()
	site.AssetsDir = root
	touch(t, root, site.ImageRefs()...)

	rep, err := Check(context.Background(), site, "")
	require.NoError(t, err)
	assert.Equal(t, root, rep.Root)
}

func TestCheck_LeadingSlashRefs(t *testing.T) {
	root := t.TempDir()
	site := config.Default()
	touch(t, root, site.ImageRefs()...)
	site.Hero.Left.Src = "/" + site.Hero.Left.Src

	_, err := Check(context.Background(), site, root)
	require.NoError(t, err)
}

func TestScan_MissingDir(t *testing.T) {
	_, err := Scan(context.Background(), filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestScan_NotADirectory(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "file.png")
	_, err := Scan(context.Background(), filepath.Join(root, "file.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")
}

func TestScan_Cancelled(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a.png", "b/c.png")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Scan(ctx, root)
	require.ErrorIs(t, err, context.Canceled)
}

func TestScan_RelativeSlashPaths(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a.png", "b/c.png", ".git/config")

	files, err := Scan(context.Background(), root+string(filepath.Separator))
	require.NoError(t, err)
	assert.Len(t, files, 2)
	assert.Contains(t, files, "a.png")
	assert.Contains(t, files, "b/c.png")
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"HeroImages/left.png":   "HeroImages/left.png",
		"/HeroImages/left.png":  "HeroImages/left.png",
		"./HeroImages/left.png": "HeroImages/left.png",
		"a/../HeroImages/x.png": "HeroImages/x.png",
		"../outside/escape.png": "outside/escape.png",
	}
	for in, want := range tests {
		assert.Equal(t, want, normalize(in), in)
	}
}

func TestIsSkippedDir(t *testing.T) {
	assert.True(t, isSkippedDir(".git"))
	assert.True(t, isSkippedDir("node_modules"))
	assert.True(t, isSkippedDir("__macosx"))
	assert.False(t, isSkippedDir("HeroImages"))
}
