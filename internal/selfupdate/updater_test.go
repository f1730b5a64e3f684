package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseAsset(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"linux amd64", "v2.1.0", "linux", "amd64", "fintype_2.1.0_linux_amd64.tar.gz", false},
		{"linux arm64", "v2.1.0", "linux", "arm64", "fintype_2.1.0_linux_arm64.tar.gz", false},
		{"darwin amd64", "v2.1.0", "darwin", "amd64", "fintype_2.1.0_darwin_amd64.tar.gz", false},
		{"darwin arm64", "v2.1.0", "darwin", "arm64", "fintype_2.1.0_darwin_arm64.tar.gz", false},
		{"windows amd64", "v2.1.0", "windows", "amd64", "fintype_2.1.0_windows_amd64.zip", false},
		{"tag without v prefix", "2.1.0", "linux", "amd64", "fintype_2.1.0_linux_amd64.tar.gz", false},
		{"unsupported os", "v2.1.0", "freebsd", "amd64", "", true},
		{"unsupported arch", "v2.1.0", "linux", "386", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := releaseAsset(tt.tag, tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFetchChecksums(t *testing.T) {
	sum := strings.Repeat("ab", sha256.Size)
	other := strings.Repeat("cd", sha256.Size)
	body := fmt.Sprintf("%s  one.tar.gz\nnot a manifest line\n%s  two.zip\ndeadbeef  short-hash.tar.gz\n", sum, strings.ToUpper(other))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	checker := NewChecker()
	manifest, err := checker.fetchChecksums(context.Background(), server.URL)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"one.tar.gz": sum,
		"two.zip":    other,
	}, manifest)
}

func TestExtractBinary(t *testing.T) {
	binaryContent := []byte("#!/bin/sh\necho fintype")

	t.Run("tar.gz", func(t *testing.T) {
		archive := buildTarGz(t, binaryName(runtime.GOOS), binaryContent)
		got, err := extractBinary(archive, "fintype_2.0.0_linux_amd64.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
	})

	t.Run("zip", func(t *testing.T) {
		archive := buildZip(t, "fintype.exe", binaryContent)
		got, err := extractBinary(archive, "fintype_2.0.0_windows_amd64.zip")
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
	})

	t.Run("missing binary", func(t *testing.T) {
		archive := buildTarGz(t, "README.md", binaryContent)
		_, err := extractBinary(archive, "fintype_2.0.0_linux_amd64.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestInstallBinary(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "fintype")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0o755))

	newBinary := []byte("new-binary-content")
	require.NoError(t, installBinary(newBinary, target))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newBinary, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())

	// No staging leftovers next to the target.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "fintype", entries[0].Name())
}

func TestInstallBinaryMissingTarget(t *testing.T) {
	err := installBinary([]byte("data"), filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stat target")
}

func TestCheck(t *testing.T) {
	t.Run("newer available", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v2.0.0","html_url":"https://example.com/v2.0.0"}`))
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		result, err := checker.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
		assert.Equal(t, "v2.0.0", result.LatestVersion)
	})

	t.Run("same version", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v1.0.0","html_url":"https://example.com/v1.0.0"}`))
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		result, err := checker.Check(context.Background(), &CheckInput{Version: "1.0.0"})
		require.NoError(t, err)
		assert.False(t, result.UpdateAvailable)
	})

	t.Run("unparseable current version treated as older", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"tag_name":"v1.0.0","html_url":"https://example.com/v1.0.0"}`))
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		result, err := checker.Check(context.Background(), &CheckInput{Version: "garbage"})
		require.NoError(t, err)
		assert.True(t, result.UpdateAvailable)
	})
}

// releaseServer serves the GitHub API and download endpoints for one tag.
func releaseServer(t *testing.T, tag string, files map[string][]byte) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/repos/anand/fintype/releases/latest" {
			_, _ = fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/%s"}`, tag, tag)
			return
		}
		prefix := fmt.Sprintf("/anand/fintype/releases/download/%s/", tag)
		if name, ok := strings.CutPrefix(r.URL.Path, prefix); ok {
			if body, found := files[name]; found {
				_, _ = w.Write(body)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	}))
}

func TestUpdate(t *testing.T) {
	binaryContent := []byte("new-fintype-binary")
	asset, err := releaseAsset("v2.0.0", runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err)

	var archive []byte
	if strings.HasSuffix(asset, ".zip") {
		archive = buildZip(t, binaryName(runtime.GOOS), binaryContent)
	} else {
		archive = buildTarGz(t, binaryName(runtime.GOOS), binaryContent)
	}
	archiveHash := sha256.Sum256(archive)
	archiveHex := hex.EncodeToString(archiveHash[:])

	t.Run("happy path", func(t *testing.T) {
		dir := t.TempDir()
		execPath := filepath.Join(dir, "fintype")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0o755))

		server := releaseServer(t, "v2.0.0", map[string][]byte{
			asset:           archive,
			"checksums.txt": []byte(fmt.Sprintf("%s  %s\n", archiveHex, asset)),
		})
		defer server.Close()

		checker := NewChecker(
			WithBaseURL(server.URL),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []Stage
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p Progress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)

		assert.Equal(t, []Stage{StageResolve, StageDownload, StageVerify, StageInstall, StageDone}, stages)
	})

	t.Run("dev build", func(t *testing.T) {
		checker := NewChecker()
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(Progress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		server := releaseServer(t, "v1.0.0", nil)
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(Progress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		bad := strings.Repeat("0", sha256.Size*2)
		server := releaseServer(t, "v2.0.0", map[string][]byte{
			asset:           archive,
			"checksums.txt": []byte(fmt.Sprintf("%s  %s\n", bad, asset)),
		})
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(Progress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("manifest missing asset", func(t *testing.T) {
		server := releaseServer(t, "v2.0.0", map[string][]byte{
			asset:           archive,
			"checksums.txt": []byte(fmt.Sprintf("%s  some_other_file.tar.gz\n", archiveHex)),
		})
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(Progress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no checksum")
	})

	t.Run("missing manifest fails before any download", func(t *testing.T) {
		var archiveFetched bool
		inner := releaseServer(t, "v2.0.0", map[string][]byte{asset: archive})
		defer inner.Close()
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasSuffix(r.URL.Path, "/"+asset) {
				archiveFetched = true
			}
			inner.Config.Handler.ServeHTTP(w, r)
		}))
		defer server.Close()

		checker := NewChecker(WithBaseURL(server.URL), WithDownloadBaseURL(server.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(Progress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "checksum manifest")
		assert.False(t, archiveFetched, "archive downloaded despite a missing manifest")
	})

	t.Run("pinned target version skips the release check", func(t *testing.T) {
		dir := t.TempDir()
		execPath := filepath.Join(dir, "fintype")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0o755))

		server := releaseServer(t, "v2.0.0", map[string][]byte{
			asset:           archive,
			"checksums.txt": []byte(fmt.Sprintf("%s  %s\n", archiveHex, asset)),
		})
		defer server.Close()

		// API base deliberately unreachable; only downloads may be hit.
		checker := NewChecker(
			WithBaseURL("http://127.0.0.1:0"),
			WithDownloadBaseURL(server.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)
		err := checker.Update(context.Background(),
			&UpdateInput{CurrentVersion: "v1.0.0", TargetVersion: "v2.0.0"}, func(Progress) {})
		require.NoError(t, err)
	})
}

// buildTarGz creates a tar.gz archive containing a single file.
func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0o755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

// buildZip creates a zip archive containing a single file.
func buildZip(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create(name)
	require.NoError(t, err)
	_, err = f.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
