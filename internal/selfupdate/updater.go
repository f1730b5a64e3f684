package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

var (
	ErrDevBuild      = errors.New("cannot update a development build")
	ErrAlreadyLatest = errors.New("already running the latest version")
	ErrChecksum      = errors.New("checksum verification failed")
)

// Stage identifies where in the update pipeline a Progress report comes from.
type Stage int

const (
	StageResolve Stage = iota
	StageDownload
	StageVerify
	StageInstall
	StageDone
)

func (s Stage) String() string {
	switch s {
	case StageResolve:
		return "resolve"
	case StageDownload:
		return "download"
	case StageVerify:
		return "verify"
	case StageInstall:
		return "install"
	case StageDone:
		return "done"
	default:
		return fmt.Sprintf("stage(%d)", int(s))
	}
}

// Progress is one pipeline status report, delivered in stage order.
type Progress struct {
	Stage  Stage
	Detail string
}

// UpdateInput selects what to update to. An empty TargetVersion means the
// latest release.
type UpdateInput struct {
	CurrentVersion string
	TargetVersion  string
}

// Update replaces the running binary with a release build. The checksum
// manifest is fetched before the archive so a broken release fails before
// any large download, and the archive hash is computed while it streams in.
func (c *Checker) Update(ctx context.Context, input *UpdateInput, progress func(Progress)) error {
	if input.CurrentVersion == "(devel)" {
		return ErrDevBuild
	}

	tag := input.TargetVersion
	if tag == "" {
		progress(Progress{Stage: StageResolve, Detail: "Resolving latest release..."})
		result, err := c.Check(ctx, &CheckInput{Version: input.CurrentVersion})
		if err != nil {
			return fmt.Errorf("resolve release: %w", err)
		}
		if !result.UpdateAvailable {
			return ErrAlreadyLatest
		}
		tag = result.LatestVersion
	}

	asset, err := releaseAsset(tag, runtime.GOOS, runtime.GOARCH)
	if err != nil {
		return err
	}

	manifest, err := c.fetchChecksums(ctx, c.releaseURL(tag, "checksums.txt"))
	if err != nil {
		return fmt.Errorf("fetch checksum manifest: %w", err)
	}
	want, ok := manifest[asset]
	if !ok {
		return fmt.Errorf("release %s has no checksum for %s", tag, asset)
	}

	progress(Progress{Stage: StageDownload, Detail: fmt.Sprintf("Downloading %s...", asset)})
	archive, got, err := c.downloadHashed(ctx, c.releaseURL(tag, asset))
	if err != nil {
		return fmt.Errorf("download archive: %w", err)
	}

	progress(Progress{Stage: StageVerify, Detail: "Verifying archive..."})
	if got != want {
		return fmt.Errorf("%w: %s: want %s, got %s", ErrChecksum, asset, want, got)
	}

	binary, err := extractBinary(archive, asset)
	if err != nil {
		return fmt.Errorf("extract binary: %w", err)
	}

	progress(Progress{Stage: StageInstall, Detail: "Installing..."})
	target, err := c.execPath()
	if err != nil {
		return fmt.Errorf("resolve executable path: %w", err)
	}
	if err := installBinary(binary, target); err != nil {
		return fmt.Errorf("install binary: %w", err)
	}

	progress(Progress{Stage: StageDone, Detail: fmt.Sprintf("Updated to %s", tag)})
	return nil
}

// releaseAsset names the archive for a tag and platform, matching the
// release build's <name>_<version>_<os>_<arch> convention.
func releaseAsset(tag, goos, goarch string) (string, error) {
	switch goos {
	case "linux", "darwin", "windows":
	default:
		return "", fmt.Errorf("no release build for %s", goos)
	}
	switch goarch {
	case "amd64", "arm64":
	default:
		return "", fmt.Errorf("no release build for %s/%s", goos, goarch)
	}

	ext := "tar.gz"
	if goos == "windows" {
		ext = "zip"
	}
	return fmt.Sprintf("fintype_%s_%s_%s.%s", strings.TrimPrefix(tag, "v"), goos, goarch, ext), nil
}

func (c *Checker) releaseURL(tag, file string) string {
	base := strings.TrimRight(c.downloadBaseURL, "/")
	return fmt.Sprintf("%s/%s/%s/releases/download/%s/%s", base, c.owner, c.repo, tag, file)
}

func (c *Checker) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}
	return resp, nil
}

// fetchChecksums reads a sha256sum-style manifest: one "<hex>  <file>" pair
// per line. Lines that do not fit the shape are skipped.
func (c *Checker) fetchChecksums(ctx context.Context, url string) (map[string]string, error) {
	resp, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	manifest := make(map[string]string)
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) != 2 || len(fields[0]) != sha256.Size*2 {
			continue
		}
		manifest[fields[1]] = strings.ToLower(fields[0])
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return manifest, nil
}

// downloadHashed fetches a URL, hashing the bytes as they arrive.
func (c *Checker) downloadHashed(ctx context.Context, url string) ([]byte, string, error) {
	resp, err := c.get(ctx, url)
	if err != nil {
		return nil, "", err
	}
	defer func() { _ = resp.Body.Close() }()

	h := sha256.New()
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, io.TeeReader(resp.Body, h)); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), hex.EncodeToString(h.Sum(nil)), nil
}

func binaryName(goos string) string {
	if goos == "windows" {
		return "fintype.exe"
	}
	return "fintype"
}

func extractBinary(archive []byte, asset string) ([]byte, error) {
	if strings.HasSuffix(asset, ".zip") {
		return binaryFromZip(archive, binaryName("windows"))
	}
	return binaryFromTarGz(archive, binaryName(runtime.GOOS))
}

func binaryFromTarGz(archive []byte, name string) ([]byte, error) {
	gz, err := gzip.NewReader(bytes.NewReader(archive))
	if err != nil {
		return nil, fmt.Errorf("open gzip: %w", err)
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag == tar.TypeReg && filepath.Base(hdr.Name) == name {
			return io.ReadAll(tr)
		}
	}
	return nil, fmt.Errorf("binary %q not found in archive", name)
}

func binaryFromZip(archive []byte, name string) ([]byte, error) {
	r, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("open zip: %w", err)
	}
	for _, f := range r.File {
		if filepath.Base(f.Name) != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer func() { _ = rc.Close() }()
		return io.ReadAll(rc)
	}
	return nil, fmt.Errorf("binary %q not found in archive", name)
}

// installBinary stages the new binary next to the target and renames it into
// place. Staging in the target's directory keeps the rename on one
// filesystem, so a reader of the path sees either the old binary or the new
// one, never a partial write.
func installBinary(binary []byte, target string) error {
	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("stat target: %w", err)
	}

	staged, err := os.CreateTemp(filepath.Dir(target), ".fintype-staged-*")
	if err != nil {
		return fmt.Errorf("stage binary: %w", err)
	}
	stagedPath := staged.Name()
	defer func() { _ = os.Remove(stagedPath) }()

	if _, err := staged.Write(binary); err != nil {
		_ = staged.Close()
		return fmt.Errorf("write staged binary: %w", err)
	}
	if err := staged.Chmod(info.Mode().Perm()); err != nil {
		_ = staged.Close()
		return fmt.Errorf("chmod staged binary: %w", err)
	}
	if err := staged.Close(); err != nil {
		return fmt.Errorf("close staged binary: %w", err)
	}

	if err := os.Rename(stagedPath, target); err != nil {
		return fmt.Errorf("replace binary: %w", err)
	}
	return nil
}
