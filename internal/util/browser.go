// Package util small OS helpers for the desktop-style launch.
package util

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
)

// ErrNoBrowser none of the launchers could be started.
var ErrNoBrowser = errors.New("no browser launcher available")

// launchers returns the commands that may open url on goos, most preferred
// first.
func launchers(goos, url string) [][]string {
	switch goos {
	case "windows":
		// rundll32 copes with "&" in the URL, "cmd /c start" does not
		return [][]string{
			{"rundll32", "url.dll,FileProtocolHandler", url},
			{"explorer", url},
		}
	case "darwin":
		return [][]string{{"open", url}}
	default:
		cmds := [][]string{{"xdg-open", url}}
		for _, b := range []string{"sensible-browser", "google-chrome", "firefox", "chromium-browser"} {
			cmds = append(cmds, []string{b, url})
		}
		return cmds
	}
}

// OpenBrowser starts the first launcher found on PATH. It does not wait for
// the browser.
func OpenBrowser(url string) error {
	var errs []error
	for _, argv := range launchers(runtime.GOOS, url) {
		bin, err := exec.LookPath(argv[0])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := exec.Command(bin, argv[1:]...).Start(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", argv[0], err))
			continue
		}
		return nil
	}
	return fmt.Errorf("%w: %w", ErrNoBrowser, errors.Join(errs...))
}

// LocalURL address the browser should open for a server listening on port.
func LocalURL(port int) string {
	return "http://localhost:" + strconv.Itoa(port)
}
