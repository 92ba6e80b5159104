package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

// printer writes text output and keeps the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// render writes v in the configured output format. Text output is produced
// by text, json and toml output by marshalling v.
func (a *app) render(cmd *cobra.Command, v any, text func(p *printer)) error {
	w := cmd.OutOrStdout()
	switch a.cfg.Output {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "toml":
		enc := toml.NewEncoder(w)
		return enc.Encode(v)
	}
	p := &printer{w: w}
	text(p)
	return p.err
}
