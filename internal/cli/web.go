package cli

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/spf13/cobra"

	"jsonlens/internal/web"
)

func runWeb(cmd *cobra.Command, app *App, raw, source string) error {
	listenAddr := strings.TrimSpace(app.Addr)
	if listenAddr == "" {
		return errors.New("web: missing --addr")
	}

	srv, err := web.NewServer(web.ServerConfig{
		Source:        source,
		RawText:       raw,
		TruncateLimit: app.TruncateLimit,
	})
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return err
	}

	url := "http://" + ln.Addr().String() + "/"
	fmt.Fprintf(cmd.ErrOrStderr(), "jsonlens web running at %s (source=%s)\n", url, source)

	if app.Open {
		if err := openPath(url); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Failed to open browser: %s\n", err)
		}
	}

	return http.Serve(ln, srv.Handler())
}
