package reporter

import (
	"io"

	"github.com/pkg/errors"

	"timereport/internal/bgpinfo"
)

// Report writes res to w in protobuf text form, e.g. "success: true".
func Report(w io.Writer, res *bgpinfo.Result) error {
	line := "success: false\n"
	if res.GetValue() {
		line = "success: true\n"
	}
	if _, err := io.WriteString(w, line); err != nil {
		return errors.Wrap(err, "failed to write report")
	}
	return nil
}
