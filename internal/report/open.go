package report

import (
	"fmt"
	"os/exec"
	"runtime"
)

// OpenInBrowser launches path in the OS default handler, the way the
// post-commit/post-push hook surfaces the rendered report (§4.8). There is
// no third-party "open a file" library anywhere in the example corpus, so
// this stays on os/exec + runtime.GOOS, the same per-OS command dispatch
// idiom used elsewhere in the corpus for opening URLs.
func OpenInBrowser(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open report in browser: %w", err)
	}
	return nil
}
