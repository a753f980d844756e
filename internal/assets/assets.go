// Package assets checks that every image the site config references exists
// under the asset directory.
package assets

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charlievieth/fastwalk"
	"github.com/sirupsen/logrus"

	"github.com/fasco-shop/storefront/internal/config"
)

// ErrMissingAssets is returned by Check when referenced files are absent.
var ErrMissingAssets = errors.New("missing assets")

const streamBufferSize = 64

//nolint:gochecknoglobals // immutable lookup tables used across the package.
var (
	skipDirs = []string{"node_modules", "__MACOSX"}

	imageExts = []string{".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp", ".avif", ".ico"}
)

// Report is the outcome of a Check.
type Report struct {
	Root    string   `json:"root"`
	Found   []string `json:"found"`
	Missing []string `json:"missing"`
	Remote  []string `json:"remote,omitempty"`
	Unused  []string `json:"unused,omitempty"`
}

// OK reports whether every local reference resolved.
func (r Report) OK() bool { return len(r.Missing) == 0 }

// Check compares the images referenced by site with the files under root.
// An empty root falls back to site.AssetsDir. The returned error wraps
// ErrMissingAssets when anything is missing; the Report is filled either way.
func Check(ctx context.Context, site config.Site, root string) (Report, error) {
	if root == "" {
		root = site.AssetsDir
	}
	rep := Report{Root: root}

	files, err := Scan(ctx, root)
	if err != nil {
		return rep, err
	}

	referenced := make(map[string]struct{})
	for _, ref := range site.ImageRefs() {
		if config.IsRemote(ref) {
			rep.Remote = append(rep.Remote, ref)
			continue
		}
		rel := normalize(ref)
		referenced[rel] = struct{}{}
		if _, ok := files[rel]; ok {
			rep.Found = append(rep.Found, ref)
		} else {
			rep.Missing = append(rep.Missing, ref)
		}
	}

	for rel := range files {
		if _, ok := referenced[rel]; !ok && isImage(rel) {
			rep.Unused = append(rep.Unused, rel)
		}
	}
	sort.Strings(rep.Unused)

	logrus.WithFields(logrus.Fields{
		"root":    root,
		"found":   len(rep.Found),
		"missing": len(rep.Missing),
		"remote":  len(rep.Remote),
		"unused":  len(rep.Unused),
	}).Debug("asset check complete")

	if !rep.OK() {
		return rep, fmt.Errorf("%w under %s: %s", ErrMissingAssets, root, strings.Join(rep.Missing, ", "))
	}
	return rep, nil
}

// Scan returns every regular file under root as a slash-separated path
// relative to root. Hidden and vendored directories are skipped.
func Scan(ctx context.Context, root string) (map[string]struct{}, error) {
	root = filepath.Clean(root)
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("asset dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("asset dir %s: not a directory", root)
	}

	files := make(map[string]struct{})
	for p := range streamFiles(ctx, root) {
		rel, err := filepath.Rel(root, p)
		if err != nil {
			continue
		}
		files[filepath.ToSlash(rel)] = struct{}{}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return files, nil
}

// streamFiles walks root and streams regular file paths over a channel.
// The channel is closed when walking completes or the context is canceled.
func streamFiles(ctx context.Context, root string) <-chan string {
	out := make(chan string, streamBufferSize)
	go func() {
		defer close(out)
		conf := fastwalk.DefaultConfig
		_ = fastwalk.Walk(&conf, root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				logrus.WithError(err).WithField("path", p).Debug("skipping unreadable entry")
				return nil
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			if d.IsDir() {
				if p != root && isSkippedDir(d.Name()) {
					return fs.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() || strings.HasPrefix(d.Name(), ".") {
				return nil
			}
			select {
			case out <- p:
			case <-ctx.Done():
				return ctx.Err()
			}
			return nil
		})
	}()
	return out
}

func isSkippedDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	for _, s := range skipDirs {
		if strings.EqualFold(name, s) {
			return true
		}
	}
	return false
}

func isImage(rel string) bool {
	ext := strings.ToLower(path.Ext(rel))
	for _, e := range imageExts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalize maps a config reference onto the relative form Scan produces.
func normalize(ref string) string {
	return strings.TrimPrefix(path.Clean("/"+filepath.ToSlash(ref)), "/")
}
