package plotter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/banshee-data/trajplot/internal/fsutil"
	"github.com/banshee-data/trajplot/internal/monitoring"
)

// OpenCommand returns the command that opens target in the desktop's
// default viewer on goos.
func OpenCommand(goos, target string) (string, []string, error) {
	switch goos {
	case "darwin":
		return "open", []string{target}, nil
	case "linux", "freebsd", "openbsd", "netbsd":
		return "xdg-open", []string{target}, nil
	case "windows":
		return "cmd", []string{"/c", "start", "", target}, nil
	default:
		return "", nil, fmt.Errorf("unsupported platform: %s", goos)
	}
}

// SystemViewer opens the preferred rendered file with the platform viewer.
type SystemViewer struct {
	// GOOS defaults to runtime.GOOS.
	GOOS string
	// Start launches the viewer without waiting; defaults to exec.
	Start func(ctx context.Context, name string, args ...string) error
}

// Show opens the HTML chart if one was rendered, else the first file.
func (v SystemViewer) Show(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	target := preferredPath(paths)
	if abs, err := filepath.Abs(target); err == nil {
		target = abs
	}

	goos := v.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	name, args, err := OpenCommand(goos, target)
	if err != nil {
		return err
	}

	start := v.Start
	if start == nil {
		// The viewer outlives this process, so it is not tied to ctx.
		start = func(_ context.Context, name string, args ...string) error {
			return exec.Command(name, args...).Start()
		}
	}
	monitoring.Logf("opening %s with %s", target, name)
	if err := start(ctx, name, args...); err != nil {
		return fmt.Errorf("failed to open %s: %w", target, err)
	}
	return nil
}

func preferredPath(paths []string) string {
	for _, p := range paths {
		if strings.EqualFold(filepath.Ext(p), ".html") {
			return p
		}
	}
	return paths[0]
}

// ServeViewer serves the rendered files over HTTP until ctx is cancelled.
// "/" serves the preferred file; every file is also served under its base
// name.
type ServeViewer struct {
	FS   fsutil.FileSystem
	Addr string
	// Out receives the URL to visit.
	Out io.Writer
	// Ready, if set, is called with the base URL once the listener is up.
	Ready func(url string)
}

// Show blocks until ctx is done, then shuts the server down.
func (v ServeViewer) Show(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	files := make(map[string][]byte, len(paths))
	for _, p := range paths {
		data, err := v.FS.ReadFile(p)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", p, err)
		}
		files[filepath.Base(p)] = data
	}
	index := filepath.Base(preferredPath(paths))

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, "/")
		if name == "" {
			name = index
		}
		data, ok := files[name]
		if !ok {
			http.NotFound(w, r)
			return
		}
		http.ServeContent(w, r, name, time.Time{}, bytes.NewReader(data))
	})

	ln, err := net.Listen("tcp", v.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", v.Addr, err)
	}
	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}

	url := "http://" + ln.Addr().String() + "/"
	if v.Out != nil {
		fmt.Fprintf(v.Out, "Serving %s at %s (Ctrl-C to exit)\n", index, url)
	}
	if v.Ready != nil {
		v.Ready(url)
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTP server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return nil
}
