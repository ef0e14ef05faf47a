package selfupdate

import (
	"archive/tar"
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewerVersion(t *testing.T) {
	tests := []struct {
		name    string
		current string
		latest  string
		want    bool
	}{
		{"newer patch", "v1.2.0", "v1.2.1", true},
		{"newer minor", "v1.2.0", "v1.3.0", true},
		{"same version", "v1.2.0", "v1.2.0", false},
		{"older latest", "v1.3.0", "v1.2.0", false},
		{"no v prefix", "1.2.0", "v1.2.1", true},
		{"garbage current", "deadbeef", "v1.0.0", true},
		{"garbage latest", "v1.0.0", "not-a-version", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, newerVersion(tt.current, tt.latest))
		})
	}
}

func TestCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/abhisek/storiz/releases/latest", r.URL.Path)
		fmt.Fprint(w, `{"tag_name": "v0.5.0"}`)
	}))
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))

	result, err := c.Check(context.Background(), &CheckInput{Version: "v0.4.0"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v0.5.0", result.LatestVersion)

	result, err = c.Check(context.Background(), &CheckInput{Version: "v0.5.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheck_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))
	_, err := c.Check(context.Background(), &CheckInput{Version: "v0.4.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestAssetNameFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		want    string
		wantErr bool
	}{
		{"darwin amd64", "darwin", "amd64", "storiz_Darwin_all.tar.gz", false},
		{"darwin arm64", "darwin", "arm64", "storiz_Darwin_all.tar.gz", false},
		{"linux amd64", "linux", "amd64", "storiz_Linux_x86_64.tar.gz", false},
		{"linux arm64", "linux", "arm64", "storiz_Linux_arm64.tar.gz", false},
		{"linux 386", "linux", "386", "storiz_Linux_i386.tar.gz", false},
		{"windows amd64", "windows", "amd64", "storiz_Windows_x86_64.zip", false},
		{"unsupported os", "freebsd", "amd64", "", true},
		{"unsupported arch", "linux", "mips", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetNameFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseChecksums(t *testing.T) {
	input := "abc123  storiz_Darwin_all.tar.gz\nbadline\n\ndef456  storiz_Linux_x86_64.tar.gz\n"
	got := parseChecksums([]byte(input))
	assert.Equal(t, map[string]string{
		"storiz_Darwin_all.tar.gz":   "abc123",
		"storiz_Linux_x86_64.tar.gz": "def456",
	}, got)
}

func TestVerifyChecksum(t *testing.T) {
	data := []byte("hello world")
	h := sha256.Sum256(data)
	correctHex := hex.EncodeToString(h[:])

	assert.NoError(t, verifyChecksum(data, correctHex))

	err := verifyChecksum(data, "0000000000000000000000000000000000000000000000000000000000000000")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrChecksum)
}

func TestExtractBinary(t *testing.T) {
	binaryContent := []byte("#!/bin/sh\necho storiz")

	t.Run("tar.gz", func(t *testing.T) {
		archive := buildTarGz(t, "storiz", binaryContent)
		got, err := extractBinary(archive, "storiz_Darwin_all.tar.gz")
		require.NoError(t, err)
		assert.Equal(t, binaryContent, got)
	})

	t.Run("missing binary", func(t *testing.T) {
		archive := buildTarGz(t, "other-file", binaryContent)
		_, err := extractBinary(archive, "storiz_Darwin_all.tar.gz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestUpdate_DevBuild(t *testing.T) {
	c := NewChecker()
	err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrDevBuild)
}

func TestUpdate_AlreadyLatest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"tag_name": "v1.0.0"}`)
	}))
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))
	err := c.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrAlreadyLatest)
}

func TestUpdate_EndToEnd(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("posix rename semantics")
	}

	binaryContent := []byte("#!/bin/sh\necho storiz v1.1.0")
	asset, err := assetName()
	require.NoError(t, err)
	archive := buildTarGz(t, "storiz", binaryContent)

	archiveHash := sha256.Sum256(archive)
	checksums := fmt.Sprintf("%s  %s\n", hex.EncodeToString(archiveHash[:]), asset)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/abhisek/storiz/releases/latest":
			fmt.Fprint(w, `{"tag_name": "v1.1.0"}`)
		case filepath.Base(r.URL.Path) == "checksums.txt":
			fmt.Fprint(w, checksums)
		case filepath.Base(r.URL.Path) == asset:
			_, _ = w.Write(archive)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	target := filepath.Join(t.TempDir(), "storiz")
	require.NoError(t, os.WriteFile(target, []byte("old binary"), 0o755))

	c := NewChecker(
		WithBaseURLs(srv.URL, srv.URL),
		WithExecPath(func() (string, error) { return target, nil }),
	)

	var stages []string
	err = c.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
		stages = append(stages, p.Stage)
	})
	require.NoError(t, err)

	updated, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, binaryContent, updated)
	assert.Contains(t, stages, "download")
	assert.Contains(t, stages, "done")
}

func TestUpdate_ChecksumMismatch(t *testing.T) {
	asset, err := assetName()
	require.NoError(t, err)
	archive := buildTarGz(t, "storiz", []byte("binary"))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case filepath.Base(r.URL.Path) == "checksums.txt":
			fmt.Fprintf(w, "%s  %s\n", "0000000000000000000000000000000000000000000000000000000000000000", asset)
		case filepath.Base(r.URL.Path) == asset:
			_, _ = w.Write(archive)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewChecker(WithBaseURLs(srv.URL, srv.URL))
	err = c.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0", TargetVersion: "v1.1.0"}, func(UpdateProgress) {})
	assert.ErrorIs(t, err, ErrChecksum)
}

func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gz)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name:     name,
		Mode:     0o755,
		Size:     int64(len(content)),
		Typeflag: tar.TypeReg,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gz.Close())

	return buf.Bytes()
}
