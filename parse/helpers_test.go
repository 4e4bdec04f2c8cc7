package parse

import (
	"bytes"
	"log/slog"
)

func bufLogger() (*slog.Logger, *bytes.Buffer) {
	buf := bytes.NewBuffer(nil)
	return slog.New(slog.NewTextHandler(buf, nil)), buf
}
